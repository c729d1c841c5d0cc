package repos

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql.DB: %v", err)
	}
	// One connection so every statement sees the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("automigrate: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })
	return db
}

func testLog(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

func TestSQLAccountRepoCreateAndGet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewSQLAccountRepo(testDB(t), testLog(t))

	created, err := repo.Create(ctx, &types.Account{
		Email:        "a@x.com",
		FullName:     "Ada",
		PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected assigned id")
	}

	got, err := repo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if got.Email != "a@x.com" {
		t.Fatalf("unexpected email: got=%q", got.Email)
	}
	if got.PasswordHash != "" {
		t.Fatal("GetByID must not expose the password hash")
	}

	byEmail, err := repo.GetByEmail(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if byEmail.PasswordHash != "hash" {
		t.Fatal("GetByEmail must include the password hash")
	}

	exists, err := repo.EmailExists(ctx, "a@x.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if !exists {
		t.Fatal("expected email to exist")
	}
	exists, err = repo.EmailExists(ctx, "b@x.com")
	if err != nil {
		t.Fatalf("email exists: %v", err)
	}
	if exists {
		t.Fatal("unexpected email hit")
	}
}

func TestSQLAccountRepoNotFoundVsMalformed(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := NewSQLAccountRepo(testDB(t), testLog(t))

	_, err := repo.GetByID(ctx, "9999")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("well-formed missing id: expected not-found, got %v", err)
	}

	_, err = repo.GetByID(ctx, "zzz")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("malformed id: expected validation error, got %v", err)
	}
}

func TestSQLModuleRepoListCapsAndOrders(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := testDB(t)
	log := testLog(t)
	accounts := NewSQLAccountRepo(db, log)
	modules := NewSQLModuleRepo(db, log)

	owner, err := accounts.Create(ctx, &types.Account{Email: "owner@x.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}

	for i := 0; i < MaxListResults+50; i++ {
		_, err := modules.Create(ctx, &types.Module{
			AccountID: owner.ID,
			Title:     fmt.Sprintf("Module %d", i),
			Content:   "c",
		})
		if err != nil {
			t.Fatalf("create module %d: %v", i, err)
		}
	}

	listed, err := modules.GetByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != MaxListResults {
		t.Fatalf("unexpected list size: got=%d want=%d", len(listed), MaxListResults)
	}
	if listed[0].Title != "Module 0" {
		t.Fatalf("expected insertion order, first was %q", listed[0].Title)
	}
}

func TestSQLModuleRepoPersistsMCQs(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := testDB(t)
	log := testLog(t)
	accounts := NewSQLAccountRepo(db, log)
	modules := NewSQLModuleRepo(db, log)

	owner, err := accounts.Create(ctx, &types.Account{Email: "owner@x.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}

	created, err := modules.Create(ctx, &types.Module{
		AccountID: owner.ID,
		Title:     "T",
		Content:   "C",
		MCQs: []types.MCQ{
			{Question: "Q?", Options: []string{"A", "B", "C", "D"}, Correct: 3},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := modules.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.MCQs) != 1 || got.MCQs[0].Correct != 3 {
		t.Fatalf("mcqs not persisted: got=%+v", got.MCQs)
	}
}

func TestSQLResultRepoListsByOwnerAndModule(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	db := testDB(t)
	log := testLog(t)
	accounts := NewSQLAccountRepo(db, log)
	modules := NewSQLModuleRepo(db, log)
	results := NewSQLResultRepo(db, log)

	owner, err := accounts.Create(ctx, &types.Account{Email: "owner@x.com", PasswordHash: "h"})
	if err != nil {
		t.Fatalf("create owner: %v", err)
	}
	module, err := modules.Create(ctx, &types.Module{AccountID: owner.ID, Title: "T", Content: "C"})
	if err != nil {
		t.Fatalf("create module: %v", err)
	}
	other, err := modules.Create(ctx, &types.Module{AccountID: owner.ID, Title: "T2", Content: "C"})
	if err != nil {
		t.Fatalf("create module: %v", err)
	}

	for _, score := range []float64{40, 60, 80} {
		_, err := results.Create(ctx, &types.Result{
			AccountID:      owner.ID,
			ModuleID:       module.ID,
			Score:          score,
			TotalQuestions: 5,
		})
		if err != nil {
			t.Fatalf("create result: %v", err)
		}
	}
	if _, err := results.Create(ctx, &types.Result{
		AccountID:      owner.ID,
		ModuleID:       other.ID,
		Score:          100,
		TotalQuestions: 5,
	}); err != nil {
		t.Fatalf("create result: %v", err)
	}

	mine, err := results.GetByOwner(ctx, owner.ID)
	if err != nil {
		t.Fatalf("list by owner: %v", err)
	}
	if len(mine) != 4 {
		t.Fatalf("unexpected owner results: got=%d want=4", len(mine))
	}

	forModule, err := results.GetByModule(ctx, module.ID)
	if err != nil {
		t.Fatalf("list by module: %v", err)
	}
	if len(forModule) != 3 {
		t.Fatalf("unexpected module results: got=%d want=3", len(forModule))
	}
	if forModule[0].Score != 40 || forModule[2].Score != 80 {
		t.Fatalf("expected submission order, got %+v", forModule)
	}
}

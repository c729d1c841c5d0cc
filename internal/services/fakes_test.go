package services

import (
	"context"
	"fmt"
	"strconv"
	"testing"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

func testLog(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	return log
}

// In-memory repo fakes. Identifiers count up from 1.

type fakeAccountRepo struct {
	accounts map[string]*types.Account
	nextID   int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: map[string]*types.Account{}, nextID: 1}
}

func (f *fakeAccountRepo) Create(ctx context.Context, a *types.Account) (*types.Account, error) {
	stored := *a
	stored.ID = strconv.Itoa(f.nextID)
	f.nextID++
	f.accounts[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeAccountRepo) GetByID(ctx context.Context, id string) (*types.Account, error) {
	a, ok := f.accounts[id]
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperr.ErrNotFound, id)
	}
	out := *a
	out.PasswordHash = ""
	return &out, nil
}

func (f *fakeAccountRepo) GetByEmail(ctx context.Context, email string) (*types.Account, error) {
	for _, a := range f.accounts {
		if a.Email == email {
			out := *a
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: account %s", apperr.ErrNotFound, email)
}

func (f *fakeAccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	return false, nil
}

type fakeModuleRepo struct {
	modules map[string]*types.Module
	nextID  int
}

func newFakeModuleRepo() *fakeModuleRepo {
	return &fakeModuleRepo{modules: map[string]*types.Module{}, nextID: 1}
}

func (f *fakeModuleRepo) Create(ctx context.Context, m *types.Module) (*types.Module, error) {
	stored := *m
	stored.ID = strconv.Itoa(f.nextID)
	f.nextID++
	f.modules[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (f *fakeModuleRepo) GetByID(ctx context.Context, id string) (*types.Module, error) {
	m, ok := f.modules[id]
	if !ok {
		return nil, fmt.Errorf("%w: module %s", apperr.ErrNotFound, id)
	}
	out := *m
	return &out, nil
}

func (f *fakeModuleRepo) GetByOwner(ctx context.Context, accountID string) ([]*types.Module, error) {
	var out []*types.Module
	for i := 1; i < f.nextID; i++ {
		if m, ok := f.modules[strconv.Itoa(i)]; ok && m.AccountID == accountID {
			c := *m
			out = append(out, &c)
		}
	}
	return out, nil
}

type fakeResultRepo struct {
	results []*types.Result
	nextID  int
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{nextID: 1}
}

func (f *fakeResultRepo) Create(ctx context.Context, r *types.Result) (*types.Result, error) {
	stored := *r
	stored.ID = strconv.Itoa(f.nextID)
	f.nextID++
	f.results = append(f.results, &stored)
	out := stored
	return &out, nil
}

func (f *fakeResultRepo) GetByOwner(ctx context.Context, accountID string) ([]*types.Result, error) {
	var out []*types.Result
	for _, r := range f.results {
		if r.AccountID == accountID {
			c := *r
			out = append(out, &c)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) GetByModule(ctx context.Context, moduleID string) ([]*types.Result, error) {
	var out []*types.Result
	for _, r := range f.results {
		if r.ModuleID == moduleID {
			c := *r
			out = append(out, &c)
		}
	}
	return out, nil
}

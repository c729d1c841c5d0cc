package repos

import (
	"context"

	"gorm.io/gorm"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type sqlResultRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLResultRepo(db *gorm.DB, baseLog *logger.Logger) ResultRepo {
	repoLog := baseLog.With("repo", "ResultRepo", "engine", "relational")
	return &sqlResultRepo{db: db, log: repoLog}
}

func (r *sqlResultRepo) Create(ctx context.Context, result *types.Result) (*types.Result, error) {
	row, err := resultToRow(result)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	}); err != nil {
		return nil, storageErr("create result", err)
	}
	return resultFromRow(row), nil
}

func (r *sqlResultRepo) GetByOwner(ctx context.Context, ownerID string) ([]*types.Result, error) {
	return r.list(ctx, "user_id", ownerID)
}

func (r *sqlResultRepo) GetByModule(ctx context.Context, moduleID string) ([]*types.Result, error) {
	return r.list(ctx, "module_id", moduleID)
}

func (r *sqlResultRepo) list(ctx context.Context, column, id string) ([]*types.Result, error) {
	key, err := parseIntID(id)
	if err != nil {
		return nil, err
	}
	var rows []resultRow
	if err := r.db.WithContext(ctx).
		Where(column+" = ?", key).
		Order("id ASC").
		Limit(MaxListResults).
		Find(&rows).Error; err != nil {
		return nil, storageErr("list results", err)
	}
	results := make([]*types.Result, 0, len(rows))
	for i := range rows {
		results = append(results, resultFromRow(&rows[i]))
	}
	return results, nil
}

package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type sqlModuleRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLModuleRepo(db *gorm.DB, baseLog *logger.Logger) ModuleRepo {
	repoLog := baseLog.With("repo", "ModuleRepo", "engine", "relational")
	return &sqlModuleRepo{db: db, log: repoLog}
}

func (r *sqlModuleRepo) Create(ctx context.Context, module *types.Module) (*types.Module, error) {
	row, err := moduleToRow(module)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	}); err != nil {
		return nil, storageErr("create module", err)
	}
	return moduleFromRow(row), nil
}

func (r *sqlModuleRepo) GetByID(ctx context.Context, id string) (*types.Module, error) {
	key, err := parseIntID(id)
	if err != nil {
		return nil, err
	}
	var row moduleRow
	if err := r.db.WithContext(ctx).First(&row, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("module", id)
		}
		return nil, storageErr("get module", err)
	}
	return moduleFromRow(&row), nil
}

func (r *sqlModuleRepo) GetByOwner(ctx context.Context, ownerID string) ([]*types.Module, error) {
	key, err := parseIntID(ownerID)
	if err != nil {
		return nil, err
	}
	var rows []moduleRow
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", key).
		Order("id ASC").
		Limit(MaxListResults).
		Find(&rows).Error; err != nil {
		return nil, storageErr("list modules", err)
	}
	modules := make([]*types.Module, 0, len(rows))
	for i := range rows {
		modules = append(modules, moduleFromRow(&rows[i]))
	}
	return modules, nil
}

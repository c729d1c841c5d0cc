package repos

import (
	"context"
	"errors"

	"gorm.io/gorm"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/logger"
)

type sqlAccountRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSQLAccountRepo(db *gorm.DB, baseLog *logger.Logger) AccountRepo {
	repoLog := baseLog.With("repo", "AccountRepo", "engine", "relational")
	return &sqlAccountRepo{db: db, log: repoLog}
}

func (r *sqlAccountRepo) Create(ctx context.Context, account *types.Account) (*types.Account, error) {
	row, err := accountToRow(account)
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(row).Error
	}); err != nil {
		return nil, storageErr("create account", err)
	}
	return accountFromRow(row), nil
}

func (r *sqlAccountRepo) GetByID(ctx context.Context, id string) (*types.Account, error) {
	key, err := parseIntID(id)
	if err != nil {
		return nil, err
	}
	var row accountRow
	if err := r.db.WithContext(ctx).First(&row, key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("account", id)
		}
		return nil, storageErr("get account", err)
	}
	account := accountFromRow(&row)
	account.PasswordHash = ""
	return account, nil
}

func (r *sqlAccountRepo) GetByEmail(ctx context.Context, email string) (*types.Account, error) {
	var row accountRow
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundErr("account", email)
		}
		return nil, storageErr("get account by email", err)
	}
	return accountFromRow(&row), nil
}

func (r *sqlAccountRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&accountRow{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, storageErr("check email", err)
	}
	return count > 0, nil
}

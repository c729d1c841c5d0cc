package repos

import (
	"context"
	"fmt"

	types "github.com/lumenlearn/lumenlearn-backend/internal/domain"
	"github.com/lumenlearn/lumenlearn-backend/internal/pkg/apperr"
)

// MaxListResults caps every list read. Callers needing more must page;
// exceeding the cap silently truncates.
const MaxListResults = 100

// One repository interface per entity, implemented once per storage engine.
// The engine is chosen a single time at wiring; nothing below the interface
// branches per call. All identifiers are canonical strings.

type AccountRepo interface {
	// Create inserts the account and returns it with the assigned id.
	// The caller is responsible for checking EmailExists beforehand.
	Create(ctx context.Context, account *types.Account) (*types.Account, error)
	GetByID(ctx context.Context, id string) (*types.Account, error)
	// GetByEmail includes the password hash; it backs login and
	// duplicate-registration checks.
	GetByEmail(ctx context.Context, email string) (*types.Account, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type ModuleRepo interface {
	Create(ctx context.Context, module *types.Module) (*types.Module, error)
	GetByID(ctx context.Context, id string) (*types.Module, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*types.Module, error)
}

type ResultRepo interface {
	Create(ctx context.Context, result *types.Result) (*types.Result, error)
	GetByOwner(ctx context.Context, ownerID string) ([]*types.Result, error)
	GetByModule(ctx context.Context, moduleID string) ([]*types.Result, error)
}

func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", apperr.ErrStorageUnavailable, op, err)
}

func notFoundErr(entity, id string) error {
	return fmt.Errorf("%w: %s %s", apperr.ErrNotFound, entity, id)
}

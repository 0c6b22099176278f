package interfaces

import (
	"context"

	"monauxiliaire/internal/domain/entities"
)

// IUserRepository stores back-office users. No login flow consumes it yet;
// the contract exists so the storage adapters stay interchangeable when one
// is added.
type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id int) (entities.User, error)
	GetByUsername(ctx context.Context, username string) (entities.User, error)
}

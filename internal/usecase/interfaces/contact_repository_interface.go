package interfaces

import (
	"context"

	"monauxiliaire/internal/domain/entities"
)

// IContactRepository abstracts persistence for contact messages. Same
// contract as IQuoteRepository: server-assigned id/createdAt/status, zero
// value + nil error on a miss, newest-first listing.
type IContactRepository interface {
	Create(ctx context.Context, c entities.Contact) (entities.Contact, error)
	GetByID(ctx context.Context, id int) (entities.Contact, error)
	List(ctx context.Context) ([]entities.Contact, error)
}

package interfaces

import (
	"context"

	"monauxiliaire/internal/domain/entities"
)

// IQuoteRepository abstracts persistence for quote requests.
//
// Contract:
//   - Create stamps ID, CreatedAt and the initial Status server-side; the
//     caller passes a draft with those fields zero.
//   - GetByID returns a zero-value Quote (ID == 0) and a nil error when no
//     row matches.
//   - List returns quotes newest-first by creation timestamp.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id int) (entities.Quote, error)
	List(ctx context.Context) ([]entities.Quote, error)
}

package usecase

import (
	"context"
	"errors"
	"testing"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestContactUseCase_CreateContact(t *testing.T) {
	ctx := context.Background()

	t.Run("missing message", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		_, err := uc.CreateContact(ctx, entities.Contact{
			FirstName: "Karim", LastName: "Bennani", Email: "karim@example.com",
		})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
		if len(verr.Fields) != 1 || verr.Fields[0].Field != "message" {
			t.Fatalf("expected message field, got %v", verr.Fields)
		}
	})

	t.Run("unknown service type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		_, err := uc.CreateContact(ctx, entities.Contact{
			FirstName: "Karim", LastName: "Bennani", Email: "karim@example.com",
			Message: "Bonjour", ServiceType: "piano-only",
		})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Contact) (entities.Contact, error) {
				c.ID = 1
				c.Status = entities.ContactStatusUnread
				return c, nil
			})

		created, err := uc.CreateContact(ctx, entities.Contact{
			FirstName: "Karim", LastName: "Bennani", Email: "karim@example.com",
			Message: "Bonjour", ServiceType: entities.ServiceTypeResidential,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 1 || created.Status != entities.ContactStatusUnread {
			t.Fatalf("unexpected contact: %+v", created)
		}
	})
}

func TestContactUseCase_GetContactByID(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		if _, err := uc.GetContactByID(ctx, 0); !errors.Is(err, ErrInvalidContactID) {
			t.Fatalf("expected ErrInvalidContactID, got %v", err)
		}
	})

	t.Run("missing contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockIContactRepository(ctrl)
		uc := NewContactUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), 3).Return(entities.Contact{}, nil)

		if _, err := uc.GetContactByID(ctx, 3); !errors.Is(err, ErrContactNotFound) {
			t.Fatalf("expected ErrContactNotFound, got %v", err)
		}
	})
}

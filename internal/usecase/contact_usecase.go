package usecase

import (
	"context"
	"errors"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrContactNotFound  = errors.New("contact not found")
	ErrInvalidContactID = errors.New("invalid contact id")
)

// IContactUseCase exposes the contact-message side of the submission API.
type IContactUseCase interface {
	CreateContact(ctx context.Context, c entities.Contact) (entities.Contact, error)
	ListContacts(ctx context.Context) ([]entities.Contact, error)
	GetContactByID(ctx context.Context, id int) (entities.Contact, error)
}

type ContactUseCase struct {
	repo interfaces.IContactRepository
}

var _ IContactUseCase = (*ContactUseCase)(nil)

func NewContactUseCase(repo interfaces.IContactRepository) *ContactUseCase {
	return &ContactUseCase{repo: repo}
}

func (u *ContactUseCase) CreateContact(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	if err := validateContact(c); err != nil {
		return entities.Contact{}, err
	}

	c.ID = 0
	c.Status = ""

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		logrus.Printf("[contact][usecase] create failed err=%v", err)
		return entities.Contact{}, err
	}
	logrus.Printf("[contact][usecase] created contact id=%d", created.ID)
	return created, nil
}

func (u *ContactUseCase) ListContacts(ctx context.Context) ([]entities.Contact, error) {
	return u.repo.List(ctx)
}

func (u *ContactUseCase) GetContactByID(ctx context.Context, id int) (entities.Contact, error) {
	if id <= 0 {
		return entities.Contact{}, ErrInvalidContactID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contact{}, err
	}
	if c.ID == 0 {
		return entities.Contact{}, ErrContactNotFound
	}
	return c, nil
}

func validateContact(c entities.Contact) error {
	verr := &ValidationError{}

	requireString(verr, "firstName", c.FirstName)
	requireString(verr, "lastName", c.LastName)
	requireString(verr, "email", c.Email)
	requireString(verr, "message", c.Message)

	if c.ServiceType != "" && !c.ServiceType.Valid() {
		verr.add("serviceType", "valeur inconnue")
	}

	return verr.orNil()
}

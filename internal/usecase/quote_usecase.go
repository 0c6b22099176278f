package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// IQuoteUseCase exposes the quote side of the submission API.
//
// CreateQuote validates the draft's shape (required identity fields, closed
// enum values) and persists it; the store assigns id/createdAt/status.
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error)
	ListQuotes(ctx context.Context) ([]entities.Quote, error)
	GetQuoteByID(ctx context.Context, id int) (entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) CreateQuote(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	if err := validateQuote(q); err != nil {
		return entities.Quote{}, err
	}

	// Server-assigned identity: never trust these from the caller.
	q.ID = 0
	q.CreatedAt = time.Time{}
	q.Status = ""

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		logrus.Printf("[quote][usecase] create failed err=%v", err)
		return entities.Quote{}, err
	}
	logrus.Printf("[quote][usecase] created quote id=%d housing=%s", created.ID, created.HousingType)
	return created, nil
}

func (u *QuoteUseCase) ListQuotes(ctx context.Context) ([]entities.Quote, error) {
	return u.repo.List(ctx)
}

func (u *QuoteUseCase) GetQuoteByID(ctx context.Context, id int) (entities.Quote, error) {
	if id <= 0 {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == 0 {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func validateQuote(q entities.Quote) error {
	verr := &ValidationError{}

	requireString(verr, "firstName", q.FirstName)
	requireString(verr, "lastName", q.LastName)
	requireString(verr, "email", q.Email)
	requireString(verr, "phone", q.Phone)
	requireString(verr, "departureAddress", q.DepartureAddress)
	requireString(verr, "departureCity", q.DepartureCity)
	requireString(verr, "arrivalAddress", q.ArrivalAddress)
	requireString(verr, "arrivalCity", q.ArrivalCity)

	if !q.HousingType.Valid() {
		verr.add("housingType", "valeur inconnue")
	}
	if q.DepartureAccessibility != "" && !q.DepartureAccessibility.Valid() {
		verr.add("departureAccessibility", "valeur inconnue")
	}
	if q.ArrivalAccessibility != "" && !q.ArrivalAccessibility.Valid() {
		verr.add("arrivalAccessibility", "valeur inconnue")
	}
	if q.DateFlexibility != "" && !q.DateFlexibility.Valid() {
		verr.add("dateFlexibility", "valeur inconnue")
	}
	if q.TimeSlot != "" && !q.TimeSlot.Valid() {
		verr.add("timeSlot", "valeur inconnue")
	}
	if q.BudgetRange != "" && !q.BudgetRange.Valid() {
		verr.add("budgetRange", "valeur inconnue")
	}
	for _, s := range q.AdditionalServices {
		if !s.Valid() {
			verr.add("additionalServices", "valeur inconnue: "+string(s))
		}
	}
	for _, it := range q.FurnitureInventory {
		if !it.Valid() {
			verr.add("furnitureInventory", "valeur inconnue: "+string(it))
		}
	}
	if q.RoomInventory != nil {
		for room := range q.RoomInventory.Rooms {
			if !room.Valid() {
				verr.add("roomInventory", "pièce inconnue: "+string(room))
			}
		}
	}

	return verr.orNil()
}

func requireString(verr *ValidationError, field, value string) {
	if strings.TrimSpace(value) == "" {
		verr.add(field, "champ requis")
	}
}

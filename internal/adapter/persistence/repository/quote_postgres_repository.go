package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"
)

const quoteColumns = `id, first_name, last_name, email, phone, housing_type, surface, floor,
	bedrooms, living_rooms, kitchens, bathrooms, furniture_inventory, room_inventory,
	departure_address, departure_city, departure_postal, departure_accessibility,
	arrival_address, arrival_city, arrival_postal, arrival_accessibility,
	moving_date, date_flexibility, time_slot, additional_services, budget_range,
	additional_comments, created_at, status`

// QuotePostgresRepository persists quotes in the relational store. Inserts
// are parameterized and return the generated row; set-valued fields live in
// JSONB columns.
type QuotePostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IQuoteRepository = (*QuotePostgresRepository)(nil)

func NewQuotePostgresRepository(db *sql.DB) *QuotePostgresRepository {
	return &QuotePostgresRepository{db: db}
}

func (r *QuotePostgresRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	services, err := json.Marshal(q.AdditionalServices)
	if err != nil {
		return entities.Quote{}, err
	}
	furniture, err := json.Marshal(q.FurnitureInventory)
	if err != nil {
		return entities.Quote{}, err
	}
	var rooms []byte
	if q.RoomInventory != nil {
		if rooms, err = json.Marshal(q.RoomInventory); err != nil {
			return entities.Quote{}, err
		}
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO quotes (
			first_name, last_name, email, phone, housing_type, surface, floor,
			bedrooms, living_rooms, kitchens, bathrooms, furniture_inventory, room_inventory,
			departure_address, departure_city, departure_postal, departure_accessibility,
			arrival_address, arrival_city, arrival_postal, arrival_accessibility,
			moving_date, date_flexibility, time_slot, additional_services, budget_range,
			additional_comments
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16,
			$17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27
		) RETURNING id, created_at, status`,
		q.FirstName, q.LastName, q.Email, q.Phone, string(q.HousingType), q.Surface, q.Floor,
		q.Bedrooms, q.LivingRooms, q.Kitchens, q.Bathrooms, furniture, nullableJSON(rooms),
		q.DepartureAddress, q.DepartureCity, q.DeparturePostal, string(q.DepartureAccessibility),
		q.ArrivalAddress, q.ArrivalCity, q.ArrivalPostal, string(q.ArrivalAccessibility),
		q.MovingDate, string(q.DateFlexibility), string(q.TimeSlot), services, string(q.BudgetRange),
		q.AdditionalComments,
	)
	if err := row.Scan(&q.ID, &q.CreatedAt, &q.Status); err != nil {
		return entities.Quote{}, err
	}
	return q, nil
}

func (r *QuotePostgresRepository) GetByID(ctx context.Context, id int) (entities.Quote, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE id = $1`, id)
	q, err := scanQuote(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Quote{}, nil
	}
	return q, err
}

func (r *QuotePostgresRepository) List(ctx context.Context) ([]entities.Quote, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+quoteColumns+` FROM quotes ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Quote
	for rows.Next() {
		q, err := scanQuote(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

func scanQuote(scan func(dest ...any) error) (entities.Quote, error) {
	var (
		q         entities.Quote
		services  []byte
		furniture []byte
		rooms     []byte
	)
	err := scan(
		&q.ID, &q.FirstName, &q.LastName, &q.Email, &q.Phone, &q.HousingType, &q.Surface, &q.Floor,
		&q.Bedrooms, &q.LivingRooms, &q.Kitchens, &q.Bathrooms, &furniture, &rooms,
		&q.DepartureAddress, &q.DepartureCity, &q.DeparturePostal, &q.DepartureAccessibility,
		&q.ArrivalAddress, &q.ArrivalCity, &q.ArrivalPostal, &q.ArrivalAccessibility,
		&q.MovingDate, &q.DateFlexibility, &q.TimeSlot, &services, &q.BudgetRange,
		&q.AdditionalComments, &q.CreatedAt, &q.Status,
	)
	if err != nil {
		return entities.Quote{}, err
	}

	if len(services) > 0 {
		if err := json.Unmarshal(services, &q.AdditionalServices); err != nil {
			return entities.Quote{}, err
		}
	}
	if len(furniture) > 0 {
		if err := json.Unmarshal(furniture, &q.FurnitureInventory); err != nil {
			return entities.Quote{}, err
		}
	}
	if len(rooms) > 0 {
		inv := entities.NewRoomInventory()
		if err := json.Unmarshal(rooms, inv); err != nil {
			return entities.Quote{}, err
		}
		q.RoomInventory = inv
	}
	return q, nil
}

// nullableJSON keeps absent JSONB values as SQL NULL instead of the empty
// string, which Postgres would reject.
func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}
	return b
}

package repository

import (
	"context"
	"database/sql"
	"errors"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"
)

const contactColumns = `id, first_name, last_name, email, phone, service_type, message, created_at, status`

type ContactPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IContactRepository = (*ContactPostgresRepository)(nil)

func NewContactPostgresRepository(db *sql.DB) *ContactPostgresRepository {
	return &ContactPostgresRepository{db: db}
}

func (r *ContactPostgresRepository) Create(ctx context.Context, c entities.Contact) (entities.Contact, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO contacts (first_name, last_name, email, phone, service_type, message)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, status`,
		c.FirstName, c.LastName, c.Email, c.Phone, string(c.ServiceType), c.Message,
	)
	if err := row.Scan(&c.ID, &c.CreatedAt, &c.Status); err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

func (r *ContactPostgresRepository) GetByID(ctx context.Context, id int) (entities.Contact, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+contactColumns+` FROM contacts WHERE id = $1`, id)
	c, err := scanContact(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Contact{}, nil
	}
	return c, err
}

func (r *ContactPostgresRepository) List(ctx context.Context) ([]entities.Contact, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+contactColumns+` FROM contacts ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []entities.Contact
	for rows.Next() {
		c, err := scanContact(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanContact(scan func(dest ...any) error) (entities.Contact, error) {
	var c entities.Contact
	err := scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.ServiceType, &c.Message, &c.CreatedAt, &c.Status)
	if err != nil {
		return entities.Contact{}, err
	}
	return c, nil
}

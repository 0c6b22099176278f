package repository

import (
	"context"
	"database/sql"
	"errors"

	"monauxiliaire/internal/domain/entities"
	"monauxiliaire/internal/usecase/interfaces"
)

type UserPostgresRepository struct {
	db *sql.DB
}

var _ interfaces.IUserRepository = (*UserPostgresRepository)(nil)

func NewUserPostgresRepository(db *sql.DB) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

func (r *UserPostgresRepository) Create(ctx context.Context, u entities.User) (entities.User, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id`,
		u.Username, u.Password,
	)
	if err := row.Scan(&u.ID); err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserPostgresRepository) GetByID(ctx context.Context, id int) (entities.User, error) {
	var u entities.User
	row := r.db.QueryRowContext(ctx, `SELECT id, username, password FROM users WHERE id = $1`, id)
	err := row.Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

func (r *UserPostgresRepository) GetByUsername(ctx context.Context, username string) (entities.User, error) {
	var u entities.User
	row := r.db.QueryRowContext(ctx, `SELECT id, username, password FROM users WHERE username = $1`, username)
	err := row.Scan(&u.ID, &u.Username, &u.Password)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.User{}, nil
	}
	if err != nil {
		return entities.User{}, err
	}
	return u, nil
}

package user

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository is the persistence surface for users. FindByEmail and FindByID
// return (nil, nil) when no row matches.
type Repository interface {
	Insert(ctx context.Context, u *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id int) (*User, error)
}

type PGRepository struct {
	Pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{Pool: pool}
}

func (r *PGRepository) Insert(ctx context.Context, u *User) (*User, error) {
	row := r.Pool.QueryRow(
		ctx,
		`INSERT INTO users (name, email, password, pin)
         VALUES ($1, $2, $3, $4)
         RETURNING id, name, email, password, pin, created_at`,
		u.Name, u.Email, u.Password, u.Pin,
	)
	return scanUser(row)
}

func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	row := r.Pool.QueryRow(
		ctx,
		`SELECT id, name, email, password, pin, created_at
         FROM users
         WHERE email = $1`,
		email,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func (r *PGRepository) FindByID(ctx context.Context, id int) (*User, error) {
	row := r.Pool.QueryRow(
		ctx,
		`SELECT id, name, email, password, pin, created_at
         FROM users
         WHERE id = $1`,
		id,
	)
	u, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	return u, err
}

func scanUser(row pgx.Row) (*User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Password, &u.Pin, &u.CreatedAt); err != nil {
		return nil, err
	}
	return &u, nil
}

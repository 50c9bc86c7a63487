package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"carrental-backend/internal/domain"
	"carrental-backend/internal/repository"
)

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

const selectUser = `SELECT id, username, name, surname, email, age, user_type, password_hash, created_at, updated_at FROM users`

func (r *userRepository) Create(ctx context.Context, u *domain.User) error {
	now := time.Now()
	query := `INSERT INTO users (username, name, surname, email, age, user_type, password_hash, created_at, updated_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query,
		u.Username, u.Name, u.Surname, u.Email, u.Age, u.Type, u.PasswordHash, now, now).Scan(&u.ID); err != nil {
		return &domain.PersistenceError{Op: "create", Entity: "user", Err: err}
	}
	u.CreatedAt = now
	u.UpdatedAt = now
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, selectUser+` WHERE id = $1`, id).Scan(
		&u.ID, &u.Username, &u.Name, &u.Surname, &u.Email, &u.Age, &u.Type,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get", Entity: "user", ID: id, Err: err}
	}
	return u, nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	u := &domain.User{}
	err := r.db.QueryRowContext(ctx, selectUser+` WHERE username = $1`, username).Scan(
		&u.ID, &u.Username, &u.Name, &u.Surname, &u.Email, &u.Age, &u.Type,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, &domain.PersistenceError{Op: "get", Entity: "user", Err: err}
	}
	return u, nil
}

func (r *userRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists); err != nil {
		return false, &domain.PersistenceError{Op: "exists", Entity: "user", Err: err}
	}
	return exists, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists); err != nil {
		return false, &domain.PersistenceError{Op: "exists", Entity: "user", Err: err}
	}
	return exists, nil
}

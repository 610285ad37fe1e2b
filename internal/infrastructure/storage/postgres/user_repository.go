package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"golang.org/x/exp/slog"

	"itemdesk/internal/domain/user"
)

const (
	userColumns         = `id, name, email, role, is_verified, password_hash, created_at, updated_at`
	usersEmailConstrain = "users_email_key"
)

type UserRepository struct {
	db  *Storage
	log *slog.Logger
}

func NewUserRepository(db *Storage, log *slog.Logger) *UserRepository {
	return &UserRepository{
		db:  db,
		log: log.With("component", "user_repository"),
	}
}

func scanUser(row pgx.Row) (user.User, error) {
	var u user.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role, &u.IsVerified, &u.Password, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrNotFound
	}
	return u, err
}

func (r *UserRepository) Create(ctx context.Context, nu user.NewUser) (user.User, error) {
	row := r.db.Pool().QueryRow(ctx,
		`INSERT INTO users (name, email, role, is_verified, password_hash)
         VALUES ($1, $2, $3, $4, $5)
         RETURNING `+userColumns,
		nu.Name, nu.Email, nu.Role, nu.IsVerified, nu.PasswordHash)

	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err, usersEmailConstrain) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

func (r *UserRepository) Get(ctx context.Context, id int) (user.User, error) {
	return scanUser(r.db.Pool().QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (user.User, error) {
	return scanUser(r.db.Pool().QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Pool().Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}
	defer rows.Close()

	var users []user.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) Update(ctx context.Context, id int, f user.Fields) (user.User, error) {
	u, err := scanUser(r.db.Pool().QueryRow(ctx,
		`UPDATE users SET name = $2, email = $3, role = $4, updated_at = NOW()
         WHERE id = $1
         RETURNING `+userColumns,
		id, f.Name, f.Email, f.Role))
	if err != nil {
		if isUniqueViolation(err, usersEmailConstrain) {
			return user.User{}, user.ErrEmailTaken
		}
		return user.User{}, err
	}
	return u, nil
}

func (r *UserRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *UserRepository) ToggleVerified(ctx context.Context, id int) (user.User, error) {
	return scanUser(r.db.Pool().QueryRow(ctx,
		`UPDATE users SET is_verified = NOT is_verified, updated_at = NOW()
         WHERE id = $1
         RETURNING `+userColumns, id))
}

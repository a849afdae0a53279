package user

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"

	"commerce-api/pkg/cerror"
)

// pgx/v5 pgconn error code for unique_violation
const uniqueViolationCode = "23505"

type Repository interface {
	InsertUser(ctx context.Context, user *User) (*User, error)
	FindUserWithEmail(ctx context.Context, email string) (*User, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{
		db: db,
	}
}

// InsertUser persists the user and fills the database assigned fields.
// A unique violation on email maps to the same conflict error the signup
// pre-check produces, so two racing signups behave identically.
func (r *repository) InsertUser(ctx context.Context, user *User) (*User, error) {
	query := `
		INSERT INTO users (name, email, password, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING user_id, created_at, updated_at
	`

	err := r.db.
		QueryRowContext(ctx, query, user.Name, user.Email, user.Password, user.IsAdmin).
		Scan(&user.UserId, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgError *pgconn.PgError
		if errors.As(err, &pgError) && pgError.Code == uniqueViolationCode {
			return nil, cerror.ErrorUserAlreadyExists
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while insert user",
			zap.Error(err),
		)
	}

	return user, nil
}

func (r *repository) FindUserWithEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT user_id, name, email, password, is_admin, created_at, updated_at
		FROM users
		WHERE email = $1
	`

	user := &User{}
	err := r.db.
		QueryRowContext(ctx, query, email).
		Scan(
			&user.UserId,
			&user.Name,
			&user.Email,
			&user.Password,
			&user.IsAdmin,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, cerror.ErrorUserNotFound
		}

		return nil, cerror.NewError(
			fiber.StatusInternalServerError,
			"error occurred while getting user",
			zap.Error(err),
		)
	}

	return user, nil
}

package repos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"tastedive-server/internal/model"
	"tastedive-server/internal/store"
)

type UsersRepo struct {
	db *pgxpool.Pool
	q  *store.Queries
}

// CreateUser inserts a new user. A username or email collision surfaces
// as ErrDuplicateUser via the unique constraints.
func (r *UsersRepo) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	id, err := r.q.InsertUser(ctx, store.InsertUserParams{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return 0, ErrDuplicateUser
		}
		return 0, err
	}
	return id, nil
}

func (r *UsersRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
	row, err := r.q.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return model.User{ID: row.ID, Username: row.Username, Email: row.Email, PasswordHash: row.PasswordHash}, nil
}

func (r *UsersRepo) GetByID(ctx context.Context, id int64) (model.User, error) {
	row, err := r.q.GetUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.User{}, ErrUserNotFound
		}
		return model.User{}, err
	}
	return model.User{ID: row.ID, Username: row.Username, Email: row.Email}, nil
}

func (r *UsersRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return r.q.UserExists(ctx, id)
}

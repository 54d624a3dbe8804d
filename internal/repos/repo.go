package repos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"tastedive-server/internal/model"
	"tastedive-server/internal/store"
)

var (
	ErrDuplicateUser = errors.New("username or email already in use")
	ErrUserNotFound  = errors.New("user not found")
	ErrMovieNotFound = errors.New("movie not found")
)

type Repository struct {
	db *pgxpool.Pool
	q  *store.Queries

	Users        *UsersRepo
	Movies       *MoviesRepo
	Interactions *InteractionsRepo
}

func New(db *pgxpool.Pool) *Repository {
	q := store.New(db)
	r := &Repository{db: db, q: q}
	r.Users = &UsersRepo{db: db, q: q}
	r.Movies = &MoviesRepo{db: db, q: q}
	r.Interactions = &InteractionsRepo{db: db, q: q}
	return r
}

// Forwarders for compatibility
func (r *Repository) CreateUser(ctx context.Context, username, email, passwordHash string) (int64, error) {
	return r.Users.CreateUser(ctx, username, email, passwordHash)
}
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	return r.Users.GetByEmail(ctx, email)
}
func (r *Repository) GetUserByID(ctx context.Context, id int64) (model.User, error) {
	return r.Users.GetByID(ctx, id)
}
func (r *Repository) UserExists(ctx context.Context, id int64) (bool, error) {
	return r.Users.Exists(ctx, id)
}

func (r *Repository) ListMovies(ctx context.Context) ([]model.Movie, error) {
	return r.Movies.List(ctx)
}
func (r *Repository) ListPopularMovies(ctx context.Context, limit int32) ([]model.PopularMovie, error) {
	return r.Movies.ListPopular(ctx, limit)
}
func (r *Repository) MovieExists(ctx context.Context, id int64) (bool, error) {
	return r.Movies.Exists(ctx, id)
}
func (r *Repository) HasMovies(ctx context.Context) (bool, error) { return r.Movies.HasMovies(ctx) }
func (r *Repository) UpsertMovies(ctx context.Context, movies []model.Movie) (int, error) {
	return r.Movies.Upsert(ctx, movies)
}
func (r *Repository) ListLikedMovies(ctx context.Context, userID int64) ([]model.Movie, error) {
	return r.Movies.ListLiked(ctx, userID)
}
func (r *Repository) ListWatchLaterMovies(ctx context.Context, userID int64) ([]model.Movie, error) {
	return r.Movies.ListWatchLater(ctx, userID)
}

func (r *Repository) SetReaction(ctx context.Context, userID, movieID int64, reaction model.Reaction) error {
	return r.Interactions.SetReaction(ctx, userID, movieID, reaction)
}
func (r *Repository) SetWatchLater(ctx context.Context, userID, movieID int64, desired bool) error {
	return r.Interactions.SetWatchLater(ctx, userID, movieID, desired)
}
func (r *Repository) GetInteraction(ctx context.Context, movieID, userID int64) (model.Reaction, bool, error) {
	return r.Interactions.Get(ctx, movieID, userID)
}

package repos

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"tastedive-server/internal/model"
	"tastedive-server/internal/store"
)

type MoviesRepo struct {
	db *pgxpool.Pool
	q  *store.Queries
}

func (r *MoviesRepo) List(ctx context.Context) ([]model.Movie, error) {
	rows, err := r.q.ListMovies(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]model.Movie, 0, len(rows))
	for _, m := range rows {
		out = append(out, movieFromRow(m))
	}
	return out, nil
}

func (r *MoviesRepo) ListPopular(ctx context.Context, limit int32) ([]model.PopularMovie, error) {
	rows, err := r.q.ListPopularMovies(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]model.PopularMovie, 0, len(rows))
	for _, m := range rows {
		out = append(out, model.PopularMovie{Movie: movieFromRow(m.MovieRow), Likes: m.Likes})
	}
	return out, nil
}

func (r *MoviesRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return r.q.MovieExists(ctx, id)
}

func (r *MoviesRepo) HasMovies(ctx context.Context) (bool, error) {
	return r.q.HasAnyMovies(ctx)
}

// Upsert inserts or updates catalog entries by id. Returns count upserted.
func (r *MoviesRepo) Upsert(ctx context.Context, movies []model.Movie) (int, error) {
	count := 0
	for _, m := range movies {
		if err := r.q.UpsertMovie(ctx, store.UpsertMovieParams{
			ID:          m.ID,
			Title:       m.Title,
			Genre:       textVal(m.Genre),
			Rating:      float8Val(m.Rating),
			ReleaseYear: int4Val(m.ReleaseYear),
			Description: textVal(m.Description),
			PosterURL:   textVal(m.PosterURL),
		}); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (r *MoviesRepo) ListLiked(ctx context.Context, userID int64) ([]model.Movie, error) {
	rows, err := r.q.ListLikedMovies(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Movie, 0, len(rows))
	for _, m := range rows {
		out = append(out, movieFromRow(m))
	}
	return out, nil
}

func (r *MoviesRepo) ListWatchLater(ctx context.Context, userID int64) ([]model.Movie, error) {
	rows, err := r.q.ListWatchLaterMovies(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]model.Movie, 0, len(rows))
	for _, m := range rows {
		out = append(out, movieFromRow(m))
	}
	return out, nil
}

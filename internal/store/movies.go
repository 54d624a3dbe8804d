package store

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type MovieRow struct {
	ID          int64
	Title       string
	Genre       pgtype.Text
	Rating      pgtype.Float8
	ReleaseYear pgtype.Int4
	Description pgtype.Text
	PosterURL   pgtype.Text
}

const movieColumns = `id, title, genre, rating, release_year, description, poster_url`

func scanMovieRows(rows pgx.Rows) ([]MovieRow, error) {
	defer rows.Close()
	var out []MovieRow
	for rows.Next() {
		var m MovieRow
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Rating, &m.ReleaseYear, &m.Description, &m.PosterURL); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const listMovies = `
SELECT ` + movieColumns + `
FROM movies
ORDER BY id
`

func (q *Queries) ListMovies(ctx context.Context) ([]MovieRow, error) {
	rows, err := q.db.Query(ctx, listMovies)
	if err != nil {
		return nil, err
	}
	return scanMovieRows(rows)
}

// Zero-like movies rank after every movie with at least one like; ties
// fall back to catalog order.
const listPopularMovies = `
SELECT m.id, m.title, m.genre, m.rating, m.release_year, m.description, m.poster_url,
       COUNT(ui.user_id) AS likes
FROM movies m
LEFT JOIN user_interactions ui
       ON ui.movie_id = m.id AND ui.liked = TRUE
GROUP BY m.id
ORDER BY likes DESC, m.id
LIMIT $1
`

type PopularMovieRow struct {
	MovieRow
	Likes int64
}

func (q *Queries) ListPopularMovies(ctx context.Context, limit int32) ([]PopularMovieRow, error) {
	rows, err := q.db.Query(ctx, listPopularMovies, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []PopularMovieRow
	for rows.Next() {
		var m PopularMovieRow
		if err := rows.Scan(&m.ID, &m.Title, &m.Genre, &m.Rating, &m.ReleaseYear, &m.Description, &m.PosterURL, &m.Likes); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

const movieExists = `SELECT EXISTS(SELECT 1 FROM movies WHERE id = $1)`

func (q *Queries) MovieExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, movieExists, id).Scan(&exists)
	return exists, err
}

const hasAnyMovies = `SELECT EXISTS(SELECT 1 FROM movies)`

func (q *Queries) HasAnyMovies(ctx context.Context) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, hasAnyMovies).Scan(&exists)
	return exists, err
}

const upsertMovie = `
INSERT INTO movies (id, title, genre, rating, release_year, description, poster_url)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
  title = EXCLUDED.title,
  genre = EXCLUDED.genre,
  rating = EXCLUDED.rating,
  release_year = EXCLUDED.release_year,
  description = EXCLUDED.description,
  poster_url = EXCLUDED.poster_url
`

type UpsertMovieParams struct {
	ID          int64
	Title       string
	Genre       pgtype.Text
	Rating      pgtype.Float8
	ReleaseYear pgtype.Int4
	Description pgtype.Text
	PosterURL   pgtype.Text
}

func (q *Queries) UpsertMovie(ctx context.Context, arg UpsertMovieParams) error {
	_, err := q.db.Exec(ctx, upsertMovie,
		arg.ID, arg.Title, arg.Genre, arg.Rating, arg.ReleaseYear, arg.Description, arg.PosterURL)
	return err
}

const listLikedMovies = `
SELECT m.id, m.title, m.genre, m.rating, m.release_year, m.description, m.poster_url
FROM movies m
JOIN user_interactions ui ON ui.movie_id = m.id
WHERE ui.user_id = $1 AND ui.liked = TRUE
ORDER BY m.id
`

func (q *Queries) ListLikedMovies(ctx context.Context, userID int64) ([]MovieRow, error) {
	rows, err := q.db.Query(ctx, listLikedMovies, userID)
	if err != nil {
		return nil, err
	}
	return scanMovieRows(rows)
}

const listWatchLaterMovies = `
SELECT m.id, m.title, m.genre, m.rating, m.release_year, m.description, m.poster_url
FROM movies m
JOIN user_interactions ui ON ui.movie_id = m.id
WHERE ui.user_id = $1 AND ui.watch_later = TRUE
ORDER BY m.id
`

func (q *Queries) ListWatchLaterMovies(ctx context.Context, userID int64) ([]MovieRow, error) {
	rows, err := q.db.Query(ctx, listWatchLaterMovies, userID)
	if err != nil {
		return nil, err
	}
	return scanMovieRows(rows)
}

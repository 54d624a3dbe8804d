package store

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

// The unique constraint on (user_id, movie_id) makes both upserts atomic
// under concurrent writers; the store never holds more than one row per
// pair.

const upsertReaction = `
INSERT INTO user_interactions (user_id, movie_id, liked)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, movie_id) DO UPDATE SET liked = EXCLUDED.liked
`

type UpsertReactionParams struct {
	UserID  int64
	MovieID int64
	Liked   bool
}

// UpsertReaction sets liked without touching watch_later: an existing
// row keeps its watch-later flag, a fresh row starts with the column
// default (false).
func (q *Queries) UpsertReaction(ctx context.Context, arg UpsertReactionParams) error {
	_, err := q.db.Exec(ctx, upsertReaction, arg.UserID, arg.MovieID, arg.Liked)
	return err
}

const upsertWatchLater = `
INSERT INTO user_interactions (user_id, movie_id, watch_later)
VALUES ($1, $2, $3)
ON CONFLICT (user_id, movie_id) DO UPDATE SET watch_later = EXCLUDED.watch_later
`

type UpsertWatchLaterParams struct {
	UserID     int64
	MovieID    int64
	WatchLater bool
}

// UpsertWatchLater sets watch_later without touching liked; a fresh row
// keeps liked NULL, meaning no reaction yet.
func (q *Queries) UpsertWatchLater(ctx context.Context, arg UpsertWatchLaterParams) error {
	_, err := q.db.Exec(ctx, upsertWatchLater, arg.UserID, arg.MovieID, arg.WatchLater)
	return err
}

const getInteraction = `
SELECT liked, watch_later
FROM user_interactions
WHERE movie_id = $1 AND user_id = $2
`

type InteractionRow struct {
	Liked      pgtype.Bool
	WatchLater bool
}

func (q *Queries) GetInteraction(ctx context.Context, movieID, userID int64) (InteractionRow, error) {
	var row InteractionRow
	err := q.db.QueryRow(ctx, getInteraction, movieID, userID).Scan(&row.Liked, &row.WatchLater)
	return row, err
}

package repos

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"tastedive-server/internal/model"
	"tastedive-server/internal/store"
)

type InteractionsRepo struct {
	db *pgxpool.Pool
	q  *store.Queries
}

// SetReaction upserts liked/disliked for the pair. Idempotent: repeating
// the same action leaves the row unchanged. An existing watch-later flag
// is preserved.
func (r *InteractionsRepo) SetReaction(ctx context.Context, userID, movieID int64, reaction model.Reaction) error {
	stored := reaction.Stored()
	if stored == nil {
		return errors.New("reaction must be liked or disliked")
	}
	return r.q.UpsertReaction(ctx, store.UpsertReactionParams{
		UserID:  userID,
		MovieID: movieID,
		Liked:   *stored,
	})
}

// SetWatchLater upserts the watch-later flag without touching the
// reaction.
func (r *InteractionsRepo) SetWatchLater(ctx context.Context, userID, movieID int64, desired bool) error {
	return r.q.UpsertWatchLater(ctx, store.UpsertWatchLaterParams{
		UserID:     userID,
		MovieID:    movieID,
		WatchLater: desired,
	})
}

// Get reports the stored state for a pair. A missing row is the common
// case for a fresh pair and maps to (ReactionNone, false), not an error.
func (r *InteractionsRepo) Get(ctx context.Context, movieID, userID int64) (model.Reaction, bool, error) {
	row, err := r.q.GetInteraction(ctx, movieID, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ReactionNone, false, nil
		}
		return model.ReactionNone, false, err
	}
	var liked *bool
	if row.Liked.Valid {
		liked = &row.Liked.Bool
	}
	return model.ReactionFromStored(liked), row.WatchLater, nil
}

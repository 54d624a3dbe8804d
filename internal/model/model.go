package model

// Reaction is the explicit tri-state a user can hold toward a movie.
// Storage keeps it as a nullable boolean (NULL = none), but everything
// above the store works with this enum so "never interacted" and
// "explicitly disliked" cannot be confused.
type Reaction int

const (
	ReactionNone Reaction = iota
	ReactionLiked
	ReactionDisliked
)

// ReactionFromStored maps the nullable liked column to a Reaction.
func ReactionFromStored(liked *bool) Reaction {
	switch {
	case liked == nil:
		return ReactionNone
	case *liked:
		return ReactionLiked
	default:
		return ReactionDisliked
	}
}

// Stored maps a Reaction back to the nullable liked column. ReactionNone
// has no stored form; callers never persist it.
func (r Reaction) Stored() *bool {
	switch r {
	case ReactionLiked:
		v := true
		return &v
	case ReactionDisliked:
		v := false
		return &v
	default:
		return nil
	}
}

// Status derives the wire flags for an interaction query. disliked is
// computed, never stored.
func (r Reaction) Status(watchLater bool) InteractionStatus {
	return InteractionStatus{
		Liked:      r == ReactionLiked,
		Disliked:   r == ReactionDisliked,
		WatchLater: watchLater,
	}
}

type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

type Movie struct {
	ID          int64    `json:"id"`
	Title       string   `json:"title"`
	Genre       *string  `json:"genre"`
	Rating      *float64 `json:"rating"`
	ReleaseYear *int32   `json:"release_year"`
	Description *string  `json:"description"`
	PosterURL   *string  `json:"poster_url"`
}

// PopularMovie is a catalog entry annotated with its positive-interaction
// count for the popularity ranking.
type PopularMovie struct {
	Movie
	Likes int64 `json:"likes"`
}

// InteractionStatus is the per-(user, movie) state reported to clients.
// The zero value is the correct answer for a pair with no stored row.
type InteractionStatus struct {
	Liked      bool `json:"liked"`
	Disliked   bool `json:"disliked"`
	WatchLater bool `json:"watch_later"`
}

// Interaction is one stored ledger row.
type Interaction struct {
	UserID     int64
	MovieID    int64
	Reaction   Reaction
	WatchLater bool
}

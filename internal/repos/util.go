package repos

import (
	"github.com/jackc/pgx/v5/pgtype"

	"tastedive-server/internal/model"
	"tastedive-server/internal/store"
)

func textPtr(t pgtype.Text) *string {
	if !t.Valid {
		return nil
	}
	s := t.String
	return &s
}

func textVal(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{Valid: false}
	}
	return pgtype.Text{String: *s, Valid: true}
}

func float8Ptr(f pgtype.Float8) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}

func float8Val(f *float64) pgtype.Float8 {
	if f == nil {
		return pgtype.Float8{Valid: false}
	}
	return pgtype.Float8{Float64: *f, Valid: true}
}

func int4Ptr(i pgtype.Int4) *int32 {
	if !i.Valid {
		return nil
	}
	v := i.Int32
	return &v
}

func int4Val(i *int32) pgtype.Int4 {
	if i == nil {
		return pgtype.Int4{Valid: false}
	}
	return pgtype.Int4{Int32: *i, Valid: true}
}

func movieFromRow(m store.MovieRow) model.Movie {
	return model.Movie{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       textPtr(m.Genre),
		Rating:      float8Ptr(m.Rating),
		ReleaseYear: int4Ptr(m.ReleaseYear),
		Description: textPtr(m.Description),
		PosterURL:   textPtr(m.PosterURL),
	}
}

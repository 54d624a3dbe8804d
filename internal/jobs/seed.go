package jobs

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"

	"tastedive-server/internal/model"
	"tastedive-server/internal/repos"
)

// SeedCatalogIfEmpty loads the catalog from a CSV export (MovieLens-style
// dump: id,title,genre,rating,release_year,description,poster_url) if the
// movies table is empty. Intended for testing/dev convenience; no-op if
// path is empty or movies already exist.
func SeedCatalogIfEmpty(ctx context.Context, r *repos.Repository, path string) error {
	if path == "" {
		return nil
	}
	has, err := r.HasMovies(ctx)
	if err != nil {
		return err
	}
	if has {
		return nil
	}
	movies, err := readCatalogCSV(path)
	if err != nil {
		return err
	}
	n, err := r.UpsertMovies(ctx, movies)
	if err != nil {
		return err
	}
	log.Info().Int("count", n).Str("path", path).Msg("seeded catalog as table was empty")
	return nil
}

func readCatalogCSV(path string) ([]model.Movie, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = 7
	// header row
	if _, err := cr.Read(); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	var movies []model.Movie
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		id, err := strconv.ParseInt(rec[0], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("bad movie id %q: %w", rec[0], err)
		}
		m := model.Movie{
			ID:          id,
			Title:       rec[1],
			Genre:       optStr(rec[2]),
			Description: optStr(rec[5]),
			PosterURL:   optStr(rec[6]),
		}
		if rec[3] != "" {
			v, err := strconv.ParseFloat(rec[3], 64)
			if err != nil {
				return nil, fmt.Errorf("bad rating %q: %w", rec[3], err)
			}
			m.Rating = &v
		}
		if rec[4] != "" {
			v, err := strconv.ParseInt(rec[4], 10, 32)
			if err != nil {
				return nil, fmt.Errorf("bad release year %q: %w", rec[4], err)
			}
			y := int32(v)
			m.ReleaseYear = &y
		}
		movies = append(movies, m)
	}
	return movies, nil
}

func optStr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

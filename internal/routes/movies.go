package routes

import (
	"encoding/json"
	"net/http"
	"time"

	"tastedive-server/internal/deps"
	"tastedive-server/internal/model"

	pkghttpx "tastedive-server/pkg/httpx"
)

const (
	cacheKeyAllMovies     = "movies:all"
	cacheKeyPopularMovies = "movies:popular"
	moviesCacheTTL        = 2 * time.Minute
	popularLimit          = 10
)

// MoviesList handles GET /movies
func MoviesList(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cached, ok := d.Cache.Get(ctx, cacheKeyAllMovies); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(cached))
			return
		}
		movies, err := d.Repo.ListMovies(ctx)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to list movies", err))
			return
		}
		if movies == nil {
			movies = []model.Movie{}
		}
		b, _ := json.Marshal(movies)
		_ = d.Cache.Set(ctx, cacheKeyAllMovies, string(b), moviesCacheTTL)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

// MoviesPopular handles GET /movies/popular
func MoviesPopular(d deps.ServerDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if cached, ok := d.Cache.Get(ctx, cacheKeyPopularMovies); ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(cached))
			return
		}
		movies, err := d.Repo.ListPopularMovies(ctx, popularLimit)
		if err != nil {
			pkghttpx.WriteError(w, r, pkghttpx.Internal("failed to rank movies", err))
			return
		}
		if movies == nil {
			movies = []model.PopularMovie{}
		}
		b, _ := json.Marshal(movies)
		_ = d.Cache.Set(ctx, cacheKeyPopularMovies, string(b), moviesCacheTTL)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}

package server

import (
	"net/http"
	"time"

	"tastedive-server/internal/deps"
	"tastedive-server/internal/repos"
	"tastedive-server/internal/routes"

	pkgcache "tastedive-server/pkg/cache"
	pkgoracle "tastedive-server/pkg/oracle"
	pkgtoken "tastedive-server/pkg/token"
)

type Server struct {
	deps.ServerDeps
	corsOrigins []string
}

func New(r *repos.Repository, c pkgcache.Cache, t pkgtoken.Codec, o pkgoracle.Recommender, corsOrigins []string) *Server {
	return &Server{
		ServerDeps: deps.ServerDeps{
			Repo:      r,
			Cache:     c,
			Tokens:    t,
			Oracle:    o,
			Name:      "tastedive-server",
			StartedAt: time.Now().UTC(),
		},
		corsOrigins: corsOrigins,
	}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	sd := s.ServerDeps
	auth := func(h http.HandlerFunc) http.Handler { return requireAuth(sd.Tokens, h) }

	// Endpoints declared here for easy scanning
	mux.HandleFunc("GET /health", routes.Health(sd))
	mux.HandleFunc("POST /signup", routes.Signup(sd))
	mux.HandleFunc("POST /login", routes.Login(sd))
	mux.HandleFunc("GET /movies", routes.MoviesList(sd))
	mux.HandleFunc("GET /movies/popular", routes.MoviesPopular(sd))

	// Everything per-user requires a verified token.
	mux.Handle("GET /movies/{id}/interaction", auth(routes.MovieInteraction(sd)))
	mux.Handle("POST /movies/{id}/like", auth(routes.MovieLike(sd)))
	mux.Handle("POST /movies/{id}/dislike", auth(routes.MovieDislike(sd)))
	mux.Handle("POST /movies/{id}/watch-later", auth(routes.MovieWatchLater(sd)))
	mux.Handle("GET /user/{id}", auth(routes.UserProfile(sd)))
	mux.Handle("GET /user/{id}/liked-movies", auth(routes.UserLikedMovies(sd)))
	mux.Handle("GET /user/{id}/watch-later", auth(routes.UserWatchLater(sd)))
	mux.Handle("GET /recommendations", auth(routes.Recommendations(sd)))

	return withCorrelationID(withLogging(withSecurityHeaders(withCORS(s.corsOrigins)(mux))))
}

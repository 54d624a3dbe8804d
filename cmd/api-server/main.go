package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"tastedive-server/internal/config"
	"tastedive-server/internal/jobs"
	"tastedive-server/internal/migrate"
	"tastedive-server/internal/repos"
	"tastedive-server/internal/server"
	"tastedive-server/pkg/cache"
	pkgdb "tastedive-server/pkg/db"
	"tastedive-server/pkg/oracle"
	"tastedive-server/pkg/token"
)

func main() {
	_ = godotenv.Load() // best-effort
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pkgdb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	if err := migrate.Up(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	var c cache.Cache
	if addr := cfg.ValkeyAddr; addr != "" {
		vc, err := cache.NewValkey(addr, cfg.ValkeyPassword)
		if err != nil {
			log.Error().Err(err).Msg("valkey connect failed, using in-memory cache")
			c = cache.NewInMemory()
		} else {
			c = vc
		}
	} else {
		c = cache.NewInMemory()
	}

	repository := repos.New(pool)
	tokens := token.NewJWT(cfg.TokenSecret, time.Hour)
	recommender, err := oracle.New(cfg.RecommenderCmd, cfg.RecommenderMaxProcs, cfg.RecommenderTimeout)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid recommender command")
	}
	api := server.New(repository, c, tokens, recommender, cfg.CORSAllowedOrigins)

	// Seed the catalog once if the table is empty (useful for testing/dev)
	if err := jobs.SeedCatalogIfEmpty(ctx, repository, cfg.CatalogSeedPath); err != nil {
		log.Error().Err(err).Msg("catalog seed failed")
	}

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Msg("listening")
		if err := server.StartHTTP(ctx, addr, api.Router()); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	_, _ = fmt.Fprintln(os.Stderr, "shutting down...")
	time.Sleep(200 * time.Millisecond)
}

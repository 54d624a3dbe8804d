package deps

import (
	"time"

	"tastedive-server/internal/repos"

	pkgcache "tastedive-server/pkg/cache"
	pkgoracle "tastedive-server/pkg/oracle"
	pkgtoken "tastedive-server/pkg/token"
)

// ServerDeps holds the dependencies required by handlers and server.
type ServerDeps struct {
	Repo      *repos.Repository
	Cache     pkgcache.Cache
	Tokens    pkgtoken.Codec
	Oracle    pkgoracle.Recommender
	Name      string
	StartedAt time.Time
}

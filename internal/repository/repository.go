package repository

import (
	"gamelog/internal/config"
	"gamelog/internal/logging"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/patrickmn/go-cache"
)

// Repository implements the log and game operations on top of a Handle.
type Repository struct {
	handle  *Handle
	Builder squirrel.StatementBuilderType // SQL Query Builder
	Cache   *cache.Cache                  // nil when caching is disabled
}

// NewRepository wires a repository to an already initialized handle.
// A cacheTTL of zero disables the read cache.
func NewRepository(handle *Handle, cacheTTL time.Duration) *Repository {
	repo := &Repository{
		handle:  handle,
		Builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
	}
	if cacheTTL > 0 {
		repo.Cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return repo
}

// Open initializes the store named by the configuration and returns a repository on it.
func Open(cfg *config.Config) (*Repository, error) {
	handle, err := Initialize(cfg.Database.Path)
	if err != nil {
		return nil, err
	}
	return NewRepository(handle, cfg.CacheTTL), nil
}

// Handle returns the store handle the repository runs on.
func (s *Repository) Handle() *Handle {
	return s.handle
}

// Close releases the underlying store handle.
func (s *Repository) Close() error {
	if s.Cache != nil {
		s.Cache.Flush()
	}
	return s.handle.Close()
}

func (s *Repository) cacheGet(key string) (interface{}, bool) {
	if s.Cache == nil {
		return nil, false
	}
	return s.Cache.Get(key)
}

func (s *Repository) cacheSet(key string, value interface{}) {
	if s.Cache == nil {
		return
	}
	logging.Log.Debugf("Setting cache for '%s'", key)
	s.Cache.SetDefault(key, value)
}

func (s *Repository) cacheDelete(key string) {
	if s.Cache == nil {
		return
	}
	s.Cache.Delete(key)
}

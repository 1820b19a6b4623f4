package server

import (
	"context"
	"log/slog"
	"strings"

	"github.com/preston-bernstein/club-studio/internal/config"
	"github.com/preston-bernstein/club-studio/internal/logging"
	"github.com/preston-bernstein/club-studio/internal/store"
	"github.com/preston-bernstein/club-studio/internal/store/sqlstore"
)

const memoryDriver = "memory"

// sqlOpen remains a var for tests to override.
var sqlOpen = func(ctx context.Context, driver, dsn string) (store.Store, error) {
	return sqlstore.Open(ctx, driver, dsn)
}

// buildStore opens the profile database. A failed open falls back to memory so the
// catalog keeps working; profiles are then lost on exit.
func buildStore(ctx context.Context, cfg config.StoreConfig, logger *slog.Logger) store.Store {
	if strings.EqualFold(cfg.Driver, memoryDriver) {
		return store.NewMemoryStore()
	}
	s, err := sqlOpen(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		logging.Warn(logger, "store open failed, falling back to memory",
			"driver", cfg.Driver,
			"err", err,
		)
		return store.NewMemoryStore()
	}
	return s
}

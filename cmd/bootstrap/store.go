package bootstrap

import (
	"fmt"
	"log/slog"

	"equipment-rental/internal/infra/memstore"
	"equipment-rental/internal/infra/uow"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/usecase/shared"

	"go.uber.org/fx"
)

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork selects the transactional store by STORE_DRIVER. The pool is
// only opened for postgres.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Info("using in-memory store")
		return memstore.NewUnitOfWork(memstore.New()), nil
	case config.StoreDriverPostgres:
		pool, err := NewDB(lc, cfg)
		if err != nil {
			return nil, err
		}
		logger.Info("using postgres store", "host", cfg.DB.Host, "db", cfg.DB.DBName)
		return uow.NewPostgresUoW(pool), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/usecase/commands"

	"go.uber.org/fx"
)

var CatalogModule = fx.Module("catalog",
	fx.Invoke(SeedCatalog),
)

// SeedCatalog loads CATALOG_FILE on start, before the server begins serving.
func SeedCatalog(lc fx.Lifecycle, cfg config.Config, catalog commands.CatalogCommands, logger *slog.Logger) {
	if cfg.Catalog.File == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			f, err := os.Open(cfg.Catalog.File)
			if err != nil {
				return fmt.Errorf("open catalog file: %w", err)
			}
			defer f.Close()

			result, err := catalog.LoadCatalog(ctx, f)
			if err != nil {
				return fmt.Errorf("load catalog file: %w", err)
			}
			logger.Info("catalog seeded", "file", cfg.Catalog.File, "loaded", result.Loaded, "skipped", result.Skipped)
			return nil
		},
	})
}

package bootstrap

import (
	"equipment-rental/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	TelemetryModule,
	StoreModule,
	components.UseCaseModule,
	components.HandlerModule,
	CatalogModule,
)

package components

import (
	"equipment-rental/internal/domain/basket"
	"equipment-rental/internal/domain/pricing"
	"equipment-rental/internal/pkg/clock"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/usecase/availability"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		pricing.NewDefaultPriceCalculator,
		fx.As(new(pricing.PriceCalculator)),
	),
	func(cfg config.Config) *basket.Factory {
		return basket.NewFactory(cfg.Rental.MinDays, cfg.Rental.MaxDays)
	},
	availability.NewTracker,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBasketUseCase,
		commands.NewCatalogUseCase,
		commands.NewOrderUseCase,
		// the invoice queries read the last-order pointer through the sequencer
		func(orders commands.OrderCommands) queries.OrderIDPeeker {
			return orders
		},
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBasketQueries,
		queries.NewEquipmentQueries,
		queries.NewInvoiceQueries,
	),
)

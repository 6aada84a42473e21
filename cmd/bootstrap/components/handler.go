package components

import (
	"equipment-rental/internal/handler"
	"equipment-rental/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewEquipmentHandler,
		api.NewBasketHandler,
		api.NewInvoiceHandler,
	),
	fx.Invoke(handler.NewRouter),
)

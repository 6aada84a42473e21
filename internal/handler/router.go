package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"equipment-rental/internal/handler/api"
	"equipment-rental/internal/handler/middleware"
	"equipment-rental/internal/pkg/config"
	"equipment-rental/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Equipment *api.EquipmentHandler
	Basket    *api.BasketHandler
	Invoice   *api.InvoiceHandler
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	logger *middleware.Logger,
	recorder *metrics.Recorder,
	equipmentHandler *api.EquipmentHandler,
	basketHandler *api.BasketHandler,
	invoiceHandler *api.InvoiceHandler,
) {
	setupMiddleware(engine, cfg, logger, recorder)
	setupRoutes(engine, Handlers{Equipment: equipmentHandler, Basket: basketHandler, Invoice: invoiceHandler})
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, recorder *metrics.Recorder) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.Tracing(cfg.Tracing.ServiceName))
	engine.Use(middleware.Metrics(recorder))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup.Group("/equipment"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Equipment.List},
		})

		addRoutes(apiGroup.Group("/basket"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Basket.List},
			{Method: http.MethodDelete, Path: "", Handler: h.Basket.Clear},
			{Method: http.MethodPost, Path: "/close", Handler: h.Basket.Close},
			{Method: http.MethodPut, Path: "/:name/:days", Handler: h.Basket.Reserve},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Basket.Remove},
		})

		addRoutes(apiGroup.Group("/invoices"), []route{
			{Method: http.MethodGet, Path: "", Handler: h.Invoice.List},
			{Method: http.MethodGet, Path: "/download", Handler: h.Invoice.Download},
			{Method: http.MethodGet, Path: "/last", Handler: h.Invoice.Last},
			{Method: http.MethodGet, Path: "/last/download", Handler: h.Invoice.DownloadLast},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Invoice.Get},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

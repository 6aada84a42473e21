//go:build unit

package middleware_test

import (
	"net/http"
	"strings"
	"testing"

	"equipment-rental/internal/handler/middleware"
	"equipment-rental/internal/pkg/metrics"
	"equipment-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func TestMetrics_LabelsByRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	recorder := metrics.NewRecorderWithRegisterer(reg)

	router := gin.New()
	router.Use(middleware.Metrics(recorder))
	router.PUT("/api/basket/:name/:days", func(c *gin.Context) { c.Status(http.StatusCreated) })

	httptest.PerformRequest(t, router, http.MethodPut, "/api/basket/Drill/1")
	httptest.PerformRequest(t, router, http.MethodPut, "/api/basket/Saw/3")
	httptest.PerformRequest(t, router, http.MethodGet, "/nowhere")

	expected := `
# HELP equipment_rental_http_requests_total HTTP requests by route and status
# TYPE equipment_rental_http_requests_total counter
equipment_rental_http_requests_total{method="GET",route="unmatched",status="404"} 1
equipment_rental_http_requests_total{method="PUT",route="/api/basket/:name/:days",status="201"} 2
`
	err := testutil.GatherAndCompare(reg, strings.NewReader(expected), "equipment_rental_http_requests_total")
	require.NoError(t, err)
}

func TestTracing_RecordsServerSpan(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	var spanCtx trace.SpanContext
	router := gin.New()
	router.Use(middleware.Tracing("test"))
	router.GET("/api/invoices/:id", func(c *gin.Context) {
		spanCtx = trace.SpanContextFromContext(c.Request.Context())
		c.Status(http.StatusInternalServerError)
	})

	httptest.PerformRequest(t, router, http.MethodGet, "/api/invoices/123")

	require.True(t, spanCtx.IsValid(), "handler sees the request span")
	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "GET /api/invoices/:id", spans[0].Name())
	assert.Equal(t, trace.SpanKindServer, spans[0].SpanKind())
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), attribute.Int("http.response.status_code", http.StatusInternalServerError))
}

//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"equipment-rental/internal/handler/httperr"
	"equipment-rental/internal/handler/middleware"
	"equipment-rental/tests/common/httptest"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(middleware.CustomRecovery(), middleware.ErrorHandler())
	router.GET("/conflict", func(c *gin.Context) {
		httperr.AbortWithError(c, http.StatusConflict, errors.New("no units"), "Equipment out of stock", nil)
	})
	router.GET("/panic", func(_ *gin.Context) {
		panic("boom")
	})

	t.Run("public error is rendered as is", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/conflict")
		httptest.AssertErrorResponse(t, rec, http.StatusConflict, "Equipment out of stock")
	})

	t.Run("panic becomes 500", func(t *testing.T) {
		rec := httptest.PerformRequest(t, router, http.MethodGet, "/panic")
		httptest.AssertErrorResponse(t, rec, http.StatusInternalServerError, "Internal server error")
	})
}

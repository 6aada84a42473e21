//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"equipment-rental/internal/handler/api"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/usecase/queries"
	"equipment-rental/tests/common/httptest"
	queriesmock "equipment-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestEquipmentHandler_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		views      []queries.EquipmentView
		err        error
		wantStatus int
		want       []resdto.EquipmentResponse
	}{
		{
			name: "out of stock items are flagged in the display name",
			views: []queries.EquipmentView{
				{Name: "Caterpillar bulldozer", Class: "Heavy", Stock: 1, Available: 0, OutOfStock: true},
				{Name: "KamAZ truck", Class: "Regular", Stock: 3, Available: 2},
			},
			wantStatus: http.StatusOK,
			want: []resdto.EquipmentResponse{
				{Name: "Caterpillar bulldozer", DisplayName: "Caterpillar bulldozer (Out of stock)", Class: "Heavy", Stock: 1, Available: 0, OutOfStock: true},
				{Name: "KamAZ truck", DisplayName: "KamAZ truck", Class: "Regular", Stock: 3, Available: 2},
			},
		},
		{
			name:       "empty catalog",
			views:      nil,
			wantStatus: http.StatusOK,
			want:       []resdto.EquipmentResponse{},
		},
		{
			name:       "query failure",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			q := queriesmock.NewMockEquipmentQueries(ctrl)
			q.EXPECT().ListEquipment(gomock.Any()).Return(tt.views, tt.err).Times(1)

			router := gin.New()
			router.GET("/equipment", api.NewEquipmentHandler(q).List)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/equipment")
			if tt.wantStatus != http.StatusOK {
				httptest.AssertErrorResponse(t, rec, tt.wantStatus, "Failed to list equipment")
				return
			}

			var got []resdto.EquipmentResponse
			httptest.AssertSuccessResponse(t, rec, http.StatusOK, &got)
			assert.Equal(t, tt.want, got)
		})
	}
}

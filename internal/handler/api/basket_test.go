//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"equipment-rental/internal/domain/equipment"
	"equipment-rental/internal/handler/api"
	resdto "equipment-rental/internal/handler/dto/response"
	"equipment-rental/internal/pkg/errs"
	"equipment-rental/internal/usecase/commands"
	"equipment-rental/internal/usecase/queries"
	"equipment-rental/tests/common/httptest"
	commandsmock "equipment-rental/tests/mock/commands"
	queriesmock "equipment-rental/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BasketHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockBasket  *commandsmock.MockBasketCommands
	mockOrders  *commandsmock.MockOrderCommands
	mockQueries *queriesmock.MockBasketQueries
	handler     *api.BasketHandler
}

func (s *BasketHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockBasket = commandsmock.NewMockBasketCommands(s.mockCtrl)
	s.mockOrders = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBasketQueries(s.mockCtrl)
	s.handler = api.NewBasketHandler(s.mockBasket, s.mockOrders, s.mockQueries)

	s.router.GET("/basket", s.handler.List)
	s.router.DELETE("/basket", s.handler.Clear)
	s.router.POST("/basket/close", s.handler.Close)
	s.router.PUT("/basket/:name/:days", s.handler.Reserve)
	s.router.DELETE("/basket/:id", s.handler.Remove)
}

func (s *BasketHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBasketHandlerSuite(t *testing.T) {
	suite.Run(t, new(BasketHandlerTestSuite))
}

// ================================================================================
// TestReserve
// ================================================================================

func (s *BasketHandlerTestSuite) TestReserve() {
	id := uuid.New()

	s.Run("success: returns 201 with the reservation", func() {
		s.mockBasket.EXPECT().Reserve(gomock.Any(), "KamAZ truck", 2).
			Return(&commands.ReserveResult{ID: id, Name: "KamAZ truck", Days: 2, Class: equipment.ClassRegular, Admitted: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/basket/KamAZ%20truck/2")

		var res resdto.ReserveResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(id.String(), res.ID)
		s.Equal("Regular", res.Class)
	})

	s.Run("days are passed through unclamped", func() {
		s.mockBasket.EXPECT().Reserve(gomock.Any(), "Drill", 0).
			Return(&commands.ReserveResult{ID: id, Name: "Drill", Days: 1, Class: equipment.ClassHeavy, Admitted: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/basket/Drill/0")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("out of stock: returns 409", func() {
		s.mockBasket.EXPECT().Reserve(gomock.Any(), "Drill", 1).
			Return(&commands.ReserveResult{Name: "Drill", Days: 1, Class: equipment.ClassHeavy}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/basket/Drill/1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "out of stock")
	})

	s.Run("unknown equipment: returns 404", func() {
		s.mockBasket.EXPECT().Reserve(gomock.Any(), "Crane", 1).
			Return(nil, errs.NotFound(errs.ErrEquipmentNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/basket/Crane/1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Equipment not found")
	})

	s.Run("non-numeric days: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/basket/Drill/two")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("store failure: returns 500", func() {
		s.mockBasket.EXPECT().Reserve(gomock.Any(), "Drill", 1).
			Return(nil, errs.Mark(errors.New("connection reset"), errs.ErrDatabaseOperationFailed)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/basket/Drill/1")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Reservation failed")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BasketHandlerTestSuite) TestList() {
	created := time.Date(2024, 3, 4, 15, 30, 0, 0, time.UTC)
	id := uuid.New()

	s.Run("success: maps views to responses in order", func() {
		s.mockQueries.EXPECT().ListBasket(gomock.Any()).Return([]queries.BasketItemView{
			{ID: id, Name: "Drill", Days: 2, Class: "Heavy", Price: 220, CreatedAt: created, ExpiresAt: created.Add(48 * time.Hour)},
		}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/basket")

		var res []resdto.BasketItemResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res, 1)
		s.Equal(id.String(), res[0].ID)
		s.Equal(220, res[0].Price)
		s.True(res[0].ExpiresAt.Equal(created.Add(48 * time.Hour)))
	})

	s.Run("empty basket renders an empty array", func() {
		s.mockQueries.EXPECT().ListBasket(gomock.Any()).Return(nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/basket")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`[]`, rec.Body.String())
	})
}

// ================================================================================
// TestRemove / TestClear / TestClose
// ================================================================================

func (s *BasketHandlerTestSuite) TestRemove() {
	id := uuid.New()

	s.Run("success: returns 204", func() {
		s.mockBasket.EXPECT().Remove(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/basket/"+id.String())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("unknown reservation: returns 404", func() {
		s.mockBasket.EXPECT().Remove(gomock.Any(), id).Return(errs.NotFound(errs.ErrReservationNotFound)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/basket/"+id.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("malformed id: returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/basket/not-a-uuid")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})
}

func (s *BasketHandlerTestSuite) TestClear() {
	s.mockBasket.EXPECT().Clear(gomock.Any()).Return(3, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/basket")
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *BasketHandlerTestSuite) TestClose() {
	orderID := uuid.New()
	s.mockOrders.EXPECT().CloseBasket(gomock.Any()).Return(orderID, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/basket/close")

	var res resdto.CloseBasketResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
	s.Equal(orderID.String(), res.OrderID)
}

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"travel-pack/internal/domain"
	"travel-pack/internal/mocks"
	"travel-pack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testAuth(user *domain.User) Auth {
	return Auth{
		Authenticate: func(c *gin.Context) {
			c.Set(userContextKey, user)
			c.Next()
		},
		AuthorizeAdmin: func(c *gin.Context) { c.Next() },
		AuthorizeAgent: func(c *gin.Context) { c.Next() },
	}
}

func setupOrderRouter(repo *mocks.MockOrderRepository, user *domain.User) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(
		services.NewOrderService(repo, nil),
		nil,
		nil,
		nil,
		nil,
		testAuth(user),
		"test-client-id",
	)
	r := gin.New()
	handler.RegisterRoutes(r)
	return r
}

func pendingOrder(id uint64) *domain.Order {
	return &domain.Order{
		ID:            id,
		UserID:        1,
		PaymentMethod: "PayPal",
		TotalPrice:    500,
		CreatedAt:     time.Now().Add(-time.Hour),
	}
}

func TestMarkOrderPaid_NestedPaymentResultWins(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("FindByID", mock.Anything, uint64(1)).Return(pendingOrder(1), nil)

	var saved *domain.Order
	repo.On("UpdatePayment", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Order)
	})

	r := setupOrderRouter(repo, nil)

	body := `{
		"paymentResult": {"id": "TXN-NESTED", "status": "COMPLETED", "update_time": "2026-01-02T15:04:05Z"},
		"id": "TXN-FLAT",
		"status": "DECLINED"
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/1/pay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, saved)
	assert.Equal(t, "TXN-NESTED", saved.PaymentResult.TransactionID)
	assert.Equal(t, "COMPLETED", saved.PaymentResult.Status)
	assert.True(t, saved.IsPaid)

	var resp domain.Order
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsPaid)
	assert.NotNil(t, resp.PaidAt)
}

func TestMarkOrderPaid_FlatFieldsFallback(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("FindByID", mock.Anything, uint64(1)).Return(pendingOrder(1), nil)

	var saved *domain.Order
	repo.On("UpdatePayment", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
		saved = args.Get(1).(*domain.Order)
	})

	r := setupOrderRouter(repo, nil)

	body := `{"id": "TXN-FLAT", "status": "DECLINED", "update_time": "2026-01-02T15:04:05Z"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/1/pay", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "TXN-FLAT", saved.PaymentResult.TransactionID)
	assert.False(t, saved.IsPaid)
	assert.Nil(t, saved.PaidAt)
}

func TestMarkOrderPaid_OrderMissing(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("FindByID", mock.Anything, uint64(404)).Return(nil, nil)

	r := setupOrderRouter(repo, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/orders/404/pay", strings.NewReader(`{"status": "COMPLETED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	repo.AssertNotCalled(t, "UpdatePayment", mock.Anything, mock.Anything)
}

func TestCreateOrder(t *testing.T) {
	user := &domain.User{ID: 7, Username: "bob", Email: "bob@test.local"}

	t.Run("valid booking returns 201 and an unpaid order", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)
		repo.On("Save", mock.Anything, mock.AnythingOfType("*domain.Order")).Return(nil).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Order).ID = 11
		})

		r := setupOrderRouter(repo, user)

		body := `{
			"bookedItems": [{"package": 1, "hotel": 2, "packageName": "Bali Getaway", "packagePrice": 400, "packageRating": 4.5, "hotelName": "Seaside Resort", "hotelAddress": "1 Beach Road", "hotelRating": 4.2}],
			"paymentMethod": "PayPal",
			"totalPrice": 500
		}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var resp domain.Order
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, uint64(11), resp.ID)
		assert.Equal(t, uint64(7), resp.UserID)
		assert.False(t, resp.IsPaid)
		assert.Nil(t, resp.PaidAt)
	})

	t.Run("empty booked items returns 400 and persists nothing", func(t *testing.T) {
		repo := new(mocks.MockOrderRepository)

		r := setupOrderRouter(repo, user)

		body := `{"bookedItems": [], "paymentMethod": "PayPal", "totalPrice": 500}`
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestGetAllOrders_PaginationDefaults(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	// malformed params fall back to page 1, limit 2
	repo.On("FindPage", mock.Anything, 0, 2).Return([]domain.Order{}, nil)
	repo.On("Count", mock.Anything).Return(int64(0), nil)

	r := setupOrderRouter(repo, &domain.User{ID: 1, IsAdmin: true})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?page=abc&limit=nope", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp services.OrderPage
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.CurrentPage)
	assert.NotNil(t, resp.Orders)
	repo.AssertExpectations(t)
}

func TestGetOrdersByUserID_NoneFound(t *testing.T) {
	repo := new(mocks.MockOrderRepository)
	repo.On("FindByUser", mock.Anything, uint64(5)).Return([]domain.Order{}, nil)

	r := setupOrderRouter(repo, &domain.User{ID: 1})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/5", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPayPalConfig(t *testing.T) {
	r := setupOrderRouter(new(mocks.MockOrderRepository), nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/config/paypal", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "test-client-id", w.Body.String())
}

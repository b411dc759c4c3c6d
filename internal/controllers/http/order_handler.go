package http

import (
	"errors"
	"net/http"

	"travel-pack/internal/domain"
	"travel-pack/internal/services"

	"github.com/gin-gonic/gin"
)

func (h *Handler) CreateOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	order, err := h.orders.CreateOrder(c.Request.Context(), user.ID, req.BookedItems, req.PaymentMethod, req.TotalPrice)
	if err != nil {
		if errors.Is(err, services.ErrNoBookedItems) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) MarkOrderPaid(c *gin.Context) {
	orderID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req PayOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.orders.MarkPaid(c.Request.Context(), orderID, req.toDomain())
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) GetAllOrders(c *gin.Context) {
	page, limit := pageParams(c, 1, 2)

	result, err := h.orders.ListAll(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetMyOrders(c *gin.Context) {
	user := currentUser(c)

	orders, err := h.orders.OrdersByUser(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrdersByUserID returns every order belonging to the user id in the path.
func (h *Handler) GetOrdersByUserID(c *gin.Context) {
	userID, ok := parseID(c, "id")
	if !ok {
		return
	}

	orders, err := h.orders.OrdersByUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(orders) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No orders found for this user"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

func (h *Handler) CountTotalOrders(c *gin.Context) {
	total, err := h.orders.CountOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalOrders": total})
}

func (h *Handler) TotalSales(c *gin.Context) {
	total, err := h.orders.TotalSales(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"totalSales": total})
}

func (h *Handler) TotalSalesByDate(c *gin.Context) {
	sales, err := h.orders.SalesByDate(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, sales)
}

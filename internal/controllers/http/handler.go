package http

import (
	"net/http"
	"strconv"

	"travel-pack/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Handler struct {
	orders   *services.OrderService
	packages *services.PackageService
	hotels   *services.HotelService
	users    *services.UserService
	rdb      *redis.Client
	auth     Auth

	paypalClientID string
}

func NewHandler(
	orders *services.OrderService,
	packages *services.PackageService,
	hotels *services.HotelService,
	users *services.UserService,
	rdb *redis.Client,
	auth Auth,
	paypalClientID string,
) *Handler {
	return &Handler{
		orders:         orders,
		packages:       packages,
		hotels:         hotels,
		users:          users,
		rdb:            rdb,
		auth:           auth,
		paypalClientID: paypalClientID,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api")

	orders := api.Group("/orders")
	orders.POST("", h.auth.Authenticate, h.CreateOrder)
	orders.GET("", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.GetAllOrders)
	orders.GET("/mine", h.auth.Authenticate, h.GetMyOrders)
	orders.GET("/total-orders", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.CountTotalOrders)
	orders.GET("/total-sales", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.TotalSales)
	orders.GET("/total-sales-by-date", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.TotalSalesByDate)
	orders.GET("/:id", h.auth.Authenticate, h.GetOrdersByUserID)
	orders.PUT("/:id/pay", h.MarkOrderPaid)

	packages := api.Group("/package")
	packages.GET("/search", h.SearchPackage)
	packages.GET("/allpackages", h.ListPackages)
	packages.GET("/top", h.TopPackages)
	packages.POST("", h.auth.Authenticate, h.auth.AuthorizeAgent, h.CreatePackage)
	packages.GET("/:id", h.GetPackageByID)
	packages.PUT("/:id", h.auth.Authenticate, h.auth.AuthorizeAgent, h.UpdatePackage)
	packages.DELETE("/:id", h.auth.Authenticate, h.auth.AuthorizeAgent, h.DeletePackage)
	packages.POST("/:id/reviews", h.auth.Authenticate, h.AddPackageReview)

	hotels := api.Group("/hotels")
	hotels.GET("", h.GetAllHotels)
	hotels.GET("/place/:placeId", h.GetHotelsByPlace)
	hotels.POST("", h.auth.Authenticate, h.auth.AuthorizeAgent, h.CreateHotel)
	hotels.GET("/:id", h.GetHotelByID)
	hotels.PUT("/:id", h.auth.Authenticate, h.auth.AuthorizeAgent, h.UpdateHotel)
	hotels.DELETE("/:id", h.auth.Authenticate, h.auth.AuthorizeAgent, h.DeleteHotel)

	users := api.Group("/users")
	users.GET("", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.GetAllUsers)
	users.GET("/profile", h.auth.Authenticate, h.GetProfile)
	users.PUT("/profile", h.auth.Authenticate, h.UpdateProfile)
	users.GET("/:id", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.GetUserByID)
	users.PUT("/:id", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.UpdateUser)
	users.DELETE("/:id", h.auth.Authenticate, h.auth.AuthorizeAdmin, h.DeleteUser)

	api.GET("/config/paypal", h.PayPalConfig)
}

// PayPalConfig hands the public client id to the frontend PayPal SDK.
func (h *Handler) PayPalConfig(c *gin.Context) {
	c.String(http.StatusOK, h.paypalClientID)
}

// pageParams reads page/limit query params, falling back to the given
// defaults when absent or not numeric.
func pageParams(c *gin.Context, defaultPage, defaultLimit int) (int, int) {
	page := defaultPage
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	limit := defaultLimit
	if v, err := strconv.Atoi(c.Query("limit")); err == nil && v > 0 {
		limit = v
	}
	return page, limit
}

func parseID(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

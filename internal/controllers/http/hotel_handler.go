package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"travel-pack/internal/domain"
	"travel-pack/internal/services"

	"github.com/gin-gonic/gin"
)

const hotelListTTL = 10 * time.Second

func (h *Handler) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// the frontend passes the owning package through the query string
	placeID, err := strconv.ParseUint(c.Query("placeId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "placeId is required"})
		return
	}

	hotel := &domain.Hotel{
		Name:          req.Name,
		Address:       req.Address,
		PlaceID:       placeID,
		Rating:        req.Rating,
		PricePerNight: req.PricePerNight,
		Facilities:    req.Facilities,
		Images:        req.Images,
	}

	created, err := h.hotels.Create(c.Request.Context(), hotel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create hotel", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *Handler) GetHotelsByPlace(c *gin.Context) {
	placeID, ok := parseID(c, "placeId")
	if !ok {
		return
	}

	hotels, err := h.hotels.ByPlace(c.Request.Context(), placeID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}

	c.JSON(http.StatusOK, hotels)
}

func (h *Handler) GetHotelByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	hotel, err := h.hotels.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hotel)
}

func (h *Handler) UpdateHotel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hotel, err := h.hotels.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, hotel)
}

func (h *Handler) DeleteHotel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.hotels.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrHotelNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Hotel not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Hotel removed"})
}

func (h *Handler) GetAllHotels(c *gin.Context) {
	page, limit := pageParams(c, 1, 4)
	cacheKey := fmt.Sprintf("hotels:list:%d:%d", page, limit)

	if h.rdb != nil {
		if b, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached services.HotelPage
			if json.Unmarshal([]byte(b), &cached) == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	result, err := h.hotels.List(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if len(result.Hotels) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"message": "No hotels found"})
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(result); err == nil {
			h.rdb.Set(c.Request.Context(), cacheKey, data, hotelListTTL)
		}
	}

	c.JSON(http.StatusOK, result)
}

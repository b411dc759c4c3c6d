package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"travel-pack/internal/domain"
	"travel-pack/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	packageListTTL = 10 * time.Second
	packageTopTTL  = 60 * time.Second
	topPackagesKey = "packages:top"
)

func (h *Handler) CreatePackage(c *gin.Context) {
	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.packages.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create package", "error": err.Error()})
		return
	}

	h.invalidatePackageCache(c)

	c.JSON(http.StatusCreated, pkg)
}

func (h *Handler) ListPackages(c *gin.Context) {
	page, limit := pageParams(c, 1, 4)
	cacheKey := fmt.Sprintf("packages:list:%d:%d", page, limit)

	if h.rdb != nil {
		if b, err := h.rdb.Get(c.Request.Context(), cacheKey).Result(); err == nil {
			var cached services.PackagePage
			if json.Unmarshal([]byte(b), &cached) == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	result, err := h.packages.List(c.Request.Context(), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(result); err == nil {
			h.rdb.Set(c.Request.Context(), cacheKey, data, packageListTTL)
		}
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) TopPackages(c *gin.Context) {
	if h.rdb != nil {
		if b, err := h.rdb.Get(c.Request.Context(), topPackagesKey).Result(); err == nil {
			var cached []domain.Package
			if json.Unmarshal([]byte(b), &cached) == nil {
				c.JSON(http.StatusOK, cached)
				return
			}
		}
	}

	packages, err := h.packages.TopRated(c.Request.Context(), 6)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if h.rdb != nil {
		if data, err := json.Marshal(packages); err == nil {
			h.rdb.Set(c.Request.Context(), topPackagesKey, data, packageTopTTL)
		}
	}

	c.JSON(http.StatusOK, packages)
}

func (h *Handler) GetPackageByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pkg, err := h.packages.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) UpdatePackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pkg, err := h.packages.Update(c.Request.Context(), id, req.toDomain())
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.invalidatePackageCache(c)

	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) DeletePackage(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	pkg, err := h.packages.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error"})
		return
	}

	h.invalidatePackageCache(c)

	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) SearchPackage(c *gin.Context) {
	query := c.Query("query")

	pkg, err := h.packages.Search(c.Request.Context(), query)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Destination not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, pkg)
}

func (h *Handler) AddPackageReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req AddReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Rating and comment are required."})
		return
	}

	user := currentUser(c)
	err := h.packages.AddReview(c.Request.Context(), id, user, req.Rating, req.Comment)
	if err != nil {
		if errors.Is(err, services.ErrPackageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Package not found"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to add review"})
		return
	}

	h.invalidatePackageCache(c)

	c.JSON(http.StatusCreated, gin.H{"message": "Review added"})
}

// invalidatePackageCache drops the top-rated cache; the short-lived page
// caches expire on their own.
func (h *Handler) invalidatePackageCache(c *gin.Context) {
	if h.rdb != nil {
		h.rdb.Del(c.Request.Context(), topPackagesKey)
	}
}

package http

import (
	"time"

	"travel-pack/internal/domain"
)

type CreateOrderRequest struct {
	BookedItems   []domain.BookedItem `json:"bookedItems"`
	PaymentMethod string              `json:"paymentMethod" binding:"required"`
	TotalPrice    float64             `json:"totalPrice" binding:"min=0"`
}

// PayOrderRequest accepts both shapes the frontend has sent over time: the
// documented nested paymentResult object and the older flat fields. The
// nested object wins when present.
type PayOrderRequest struct {
	PaymentResult *PaymentResultDTO `json:"paymentResult"`
	ID            string            `json:"id"`
	Status        string            `json:"status"`
	UpdateTime    string            `json:"update_time"`
}

type PaymentResultDTO struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	UpdateTime string `json:"update_time"`
}

func (r PayOrderRequest) toDomain() domain.PaymentResult {
	if r.PaymentResult != nil {
		return domain.PaymentResult{
			TransactionID: r.PaymentResult.ID,
			Status:        r.PaymentResult.Status,
			UpdateTime:    r.PaymentResult.UpdateTime,
		}
	}
	return domain.PaymentResult{
		TransactionID: r.ID,
		Status:        r.Status,
		UpdateTime:    r.UpdateTime,
	}
}

type CreatePackageRequest struct {
	Name        string                 `json:"name" binding:"required"`
	Description string                 `json:"description" binding:"required"`
	Price       float64                `json:"price" binding:"required"`
	Date        time.Time              `json:"date" binding:"required"`
	Days        int                    `json:"days" binding:"required"`
	Images      []string               `json:"images"`
	Schedule    []domain.ScheduleEntry `json:"schedule" binding:"required"`
}

func (r CreatePackageRequest) toDomain() *domain.Package {
	return &domain.Package{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Date:        r.Date,
		Days:        r.Days,
		Images:      r.Images,
		Schedule:    r.Schedule,
	}
}

type AddReviewRequest struct {
	Rating  float64 `json:"rating" binding:"required"`
	Comment string  `json:"comment" binding:"required"`
}

type CreateHotelRequest struct {
	Name          string   `json:"name" binding:"required"`
	Address       string   `json:"address" binding:"required"`
	Rating        float64  `json:"rating" binding:"required"`
	PricePerNight float64  `json:"pricePerNight" binding:"required"`
	Facilities    []string `json:"facilities"`
	Images        []string `json:"images"`
}

type UpdateHotelRequest struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	PlaceID       uint64   `json:"placeId"`
	Rating        float64  `json:"rating"`
	PricePerNight float64  `json:"pricePerNight"`
	Facilities    []string `json:"facilities"`
	Images        []string `json:"images"`
}

func (r UpdateHotelRequest) toDomain() *domain.Hotel {
	return &domain.Hotel{
		Name:          r.Name,
		Address:       r.Address,
		PlaceID:       r.PlaceID,
		Rating:        r.Rating,
		PricePerNight: r.PricePerNight,
		Facilities:    r.Facilities,
		Images:        r.Images,
	}
}

type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  *bool  `json:"isAdmin"`
}

package services

import (
	"time"

	"travel-pack/internal/domain"
)

func CreateTestBookedItem(packageID, hotelID uint64) domain.BookedItem {
	return domain.BookedItem{
		PackageID:     packageID,
		HotelID:       hotelID,
		PackageName:   "Bali Getaway",
		PackageImages: []string{"https://img.test/bali.jpg"},
		PackageRating: 4.5,
		PackagePrice:  400,
		HotelName:     "Seaside Resort",
		HotelAddress:  "1 Beach Road",
		HotelRating:   4.2,
		HotelImages:   []string{"https://img.test/resort.jpg"},
	}
}

func CreateTestOrder(id, userID uint64, totalPrice float64, isPaid bool) *domain.Order {
	order := &domain.Order{
		ID:            id,
		UserID:        userID,
		BookedItems:   []domain.BookedItem{CreateTestBookedItem(1, 1)},
		PaymentMethod: "PayPal",
		TotalPrice:    totalPrice,
		IsPaid:        isPaid,
		CreatedAt:     time.Now().Add(-time.Hour),
	}
	if isPaid {
		paidAt := time.Now().Add(-30 * time.Minute)
		order.PaidAt = &paidAt
		order.PaymentResult = domain.PaymentResult{
			TransactionID: "TXN-OLD",
			Status:        domain.PaymentCompleted,
			UpdateTime:    paidAt.Format(time.RFC3339),
		}
	}
	return order
}

func CreateTestUser(id uint64, username string, isAdmin bool) *domain.User {
	return &domain.User{
		ID:       id,
		Username: username,
		Email:    username + "@test.local",
		Password: "$2a$10$hashhashhashhashhashha",
		IsAdmin:  isAdmin,
		UserType: domain.TypeUser,
	}
}

func CreateTestPackage(id uint64, name string, rating float64) *domain.Package {
	return &domain.Package{
		ID:          id,
		Name:        name,
		Description: "A test trip",
		Price:       500,
		Date:        time.Now().AddDate(0, 1, 0),
		Days:        5,
		Rating:      rating,
		CreatedAt:   time.Now().Add(-time.Hour),
	}
}

func CreateTestHotel(id, placeID uint64, name string) *domain.Hotel {
	return &domain.Hotel{
		ID:            id,
		Name:          name,
		Address:       "1 Test Street",
		PlaceID:       placeID,
		Rating:        4.0,
		PricePerNight: 120,
		Facilities:    []string{"wifi", "pool"},
		Images:        []string{"https://img.test/hotel.jpg"},
		CreatedAt:     time.Now().Add(-time.Hour),
	}
}

const (
	TestUserID     = uint64(1)
	TestOrderID    = uint64(1)
	TestTotalPrice = float64(500)
)

package domain

import "time"

// Routing keys for booking events on the topic exchange.
const (
	EventBookingCreated = "booking.created"
	EventBookingPaid    = "booking.paid"
)

type BookingCreatedEvent struct {
	OrderID       uint64    `json:"orderId"`
	UserID        uint64    `json:"userId"`
	PaymentMethod string    `json:"paymentMethod"`
	TotalPrice    float64   `json:"totalPrice"`
	ItemCount     int       `json:"itemCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

type BookingPaidEvent struct {
	OrderID       uint64    `json:"orderId"`
	UserID        uint64    `json:"userId"`
	TransactionID string    `json:"transactionId"`
	TotalPrice    float64   `json:"totalPrice"`
	PaidAt        time.Time `json:"paidAt"`
}

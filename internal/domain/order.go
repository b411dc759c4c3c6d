package domain

import "time"

// PaymentCompleted is the status PayPal reports for a captured payment.
// Any other status leaves the order unpaid.
const PaymentCompleted = "COMPLETED"

// PaymentResult mirrors the capture payload reported back by PayPal.
type PaymentResult struct {
	TransactionID string `json:"id" gorm:"column:payment_txn_id"`
	Status        string `json:"status" gorm:"column:payment_status"`
	UpdateTime    string `json:"update_time" gorm:"column:payment_update_time"`
}

type Order struct {
	ID            uint64        `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        uint64        `json:"userId" gorm:"not null;index"`
	User          *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
	BookedItems   []BookedItem  `json:"bookedItems" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	PaymentMethod string        `json:"paymentMethod" gorm:"not null"`
	PaymentResult PaymentResult `json:"paymentResult" gorm:"embedded"`
	TotalPrice    float64       `json:"totalPrice" gorm:"not null;default:0"`
	IsPaid        bool          `json:"isPaid" gorm:"not null;default:false"`
	PaidAt        *time.Time    `json:"paidAt"`
	CreatedAt     time.Time     `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `json:"updatedAt" gorm:"autoUpdateTime"`
}

// BookedItem is a point-in-time snapshot of a package+hotel pairing.
// The denormalized fields are copied at booking time and never refreshed,
// so the order keeps showing what the customer actually booked.
type BookedItem struct {
	ID            uint64   `json:"id" gorm:"primaryKey;autoIncrement"`
	OrderID       uint64   `json:"orderId" gorm:"not null;index"`
	PackageID     uint64   `json:"package" gorm:"not null"`
	HotelID       uint64   `json:"hotel" gorm:"not null"`
	PackageName   string   `json:"packageName" gorm:"not null"`
	PackageImages []string `json:"packageImages" gorm:"serializer:json"`
	PackageRating float64  `json:"packageRating" gorm:"not null"`
	PackagePrice  float64  `json:"packagePrice" gorm:"not null"`
	HotelName     string   `json:"hotelName" gorm:"not null"`
	HotelAddress  string   `json:"hotelAddress" gorm:"not null"`
	HotelRating   float64  `json:"hotelRating" gorm:"not null"`
	HotelImages   []string `json:"hotelImages" gorm:"serializer:json"`
}

// DailySales is one row of the revenue-by-paid-date aggregate.
type DailySales struct {
	Date       string  `json:"date"`
	TotalSales float64 `json:"totalSales"`
}

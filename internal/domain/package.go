package domain

import "time"

// ScheduleEntry describes one day of a package itinerary.
type ScheduleEntry struct {
	Day         int    `json:"day"`
	Description string `json:"description"`
}

type Package struct {
	ID          uint64          `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description" gorm:"not null"`
	Price       float64         `json:"price" gorm:"not null"`
	Date        time.Time       `json:"date" gorm:"not null"`
	Days        int             `json:"days" gorm:"not null"`
	Images      []string        `json:"images" gorm:"serializer:json"`
	Schedule    []ScheduleEntry `json:"schedule" gorm:"serializer:json"`
	Rating      float64         `json:"rating" gorm:"not null;default:0"`
	NumReviews  int             `json:"numReviews" gorm:"not null;default:0"`
	Reviews     []Review        `json:"reviews" gorm:"foreignKey:PackageID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time       `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt   time.Time       `json:"updatedAt" gorm:"autoUpdateTime"`
}

type Review struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	PackageID uint64    `json:"packageId" gorm:"not null;index"`
	UserID    uint64    `json:"user" gorm:"not null"`
	Name      string    `json:"name" gorm:"not null"`
	Rating    float64   `json:"rating" gorm:"not null"`
	Comment   string    `json:"comment" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

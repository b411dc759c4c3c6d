package domain

import "time"

type Hotel struct {
	ID            uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Name          string    `json:"name" gorm:"not null"`
	Address       string    `json:"address" gorm:"not null"`
	PlaceID       uint64    `json:"placeId" gorm:"not null;index"`
	Rating        float64   `json:"rating" gorm:"not null"`
	PricePerNight float64   `json:"pricePerNight" gorm:"not null"`
	Facilities    []string  `json:"facilities" gorm:"serializer:json"`
	Images        []string  `json:"images" gorm:"serializer:json"`
	CreatedAt     time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

package domain

import "time"

type UserType string

const (
	TypeUser        UserType = "user"
	TypeTravelAgent UserType = "travelAgent"
)

type User struct {
	ID        uint64    `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null;uniqueIndex"`
	Password  string    `json:"-" gorm:"not null"`
	IsAdmin   bool      `json:"isAdmin" gorm:"not null;default:false"`
	UserType  UserType  `json:"userType" gorm:"type:enum('user','travelAgent');default:'user'"`
	CreatedAt time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"autoUpdateTime"`
}

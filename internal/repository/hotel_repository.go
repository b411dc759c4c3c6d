package repository

import (
	"context"

	"travel-pack/internal/domain"
)

type HotelRepository interface {
	Save(ctx context.Context, hotel *domain.Hotel) error
	FindByID(ctx context.Context, id uint64) (*domain.Hotel, error)
	FindByPlace(ctx context.Context, placeID uint64) ([]domain.Hotel, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Hotel, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint64) error
}

package repository

import (
	"context"

	"travel-pack/internal/domain"
)

type OrderRepository interface {
	Save(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id uint64) (*domain.Order, error)
	FindPage(ctx context.Context, offset, limit int) ([]domain.Order, error)
	FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error)
	UpdatePayment(ctx context.Context, order *domain.Order) error
	Count(ctx context.Context) (int64, error)
	SumTotalPrice(ctx context.Context) (float64, error)
	SalesByPaidDate(ctx context.Context) ([]domain.DailySales, error)
}

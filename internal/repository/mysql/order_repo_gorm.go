package mysql

import (
	"context"
	"errors"
	"log"

	"travel-pack/internal/domain"
	"travel-pack/internal/repository"

	"gorm.io/gorm"
)

type orderRepo struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Save(ctx context.Context, order *domain.Order) error {
	result := r.db.WithContext(ctx).Create(order)
	if result.Error != nil {
		log.Printf("order save error: %v", result.Error)
		return result.Error
	}
	if order.ID == 0 {
		return errors.New("failed to assign order ID")
	}
	return nil
}

func (r *orderRepo) FindByID(ctx context.Context, id uint64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Preload("BookedItems").First(&o, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		log.Printf("order FindByID error: %v", err)
		return nil, err
	}
	return &o, nil
}

// FindPage returns one page of orders, newest first, with the owning user
// attached for the admin listing.
func (r *orderRepo) FindPage(ctx context.Context, offset, limit int) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("BookedItems").
		Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		log.Printf("order FindPage error: %v", err)
		return nil, err
	}
	return out, nil
}

func (r *orderRepo) FindByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Preload("BookedItems").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
	if err != nil {
		log.Printf("order FindByUser error: %v", err)
		return nil, err
	}
	return out, nil
}

// UpdatePayment persists only the payment-state columns. Booked items and
// totals never change after creation.
func (r *orderRepo) UpdatePayment(ctx context.Context, order *domain.Order) error {
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Where("id = ?", order.ID).
		Select("is_paid", "paid_at", "payment_txn_id", "payment_status", "payment_update_time").
		Updates(map[string]any{
			"is_paid":             order.IsPaid,
			"paid_at":             order.PaidAt,
			"payment_txn_id":      order.PaymentResult.TransactionID,
			"payment_status":      order.PaymentResult.Status,
			"payment_update_time": order.PaymentResult.UpdateTime,
		}).Error
	if err != nil {
		log.Printf("order UpdatePayment error: %v", err)
		return err
	}
	return nil
}

func (r *orderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&domain.Order{}).Count(&count).Error; err != nil {
		log.Printf("order Count error: %v", err)
		return 0, err
	}
	return count, nil
}

func (r *orderRepo) SumTotalPrice(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&total).Error
	if err != nil {
		log.Printf("order SumTotalPrice error: %v", err)
		return 0, err
	}
	return total, nil
}

func (r *orderRepo) SalesByPaidDate(ctx context.Context) ([]domain.DailySales, error) {
	var out []domain.DailySales
	err := r.db.WithContext(ctx).
		Model(&domain.Order{}).
		Select("DATE_FORMAT(paid_at, '%Y-%m-%d') AS date, SUM(total_price) AS total_sales").
		Where("is_paid = ?", true).
		Group("DATE_FORMAT(paid_at, '%Y-%m-%d')").
		Order("date").
		Scan(&out).Error
	if err != nil {
		log.Printf("order SalesByPaidDate error: %v", err)
		return nil, err
	}
	return out, nil
}

package services

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"travel-pack/internal/domain"
	"travel-pack/internal/infra/paypal"
	rabbit "travel-pack/internal/infra/rabbitmq"
	"travel-pack/internal/repository"

	"golang.org/x/sync/errgroup"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoBookedItems = errors.New("no order items")
)

// OrderPage is the admin listing response shape.
type OrderPage struct {
	Orders      []domain.Order `json:"orders"`
	TotalPages  int            `json:"totalPages"`
	CurrentPage int            `json:"currentPage"`
}

type OrderService struct {
	repo      repository.OrderRepository
	publisher rabbit.PublisherInterface
	verifier  paypal.ClientInterface
}

func NewOrderService(r repository.OrderRepository, pub rabbit.PublisherInterface) *OrderService {
	return &OrderService{
		repo:      r,
		publisher: pub,
	}
}

// SetVerifier enables server-side capture verification. Without it the
// client-supplied capture status is trusted as-is, matching the behavior the
// frontend was built against.
func (s *OrderService) SetVerifier(v paypal.ClientInterface) {
	s.verifier = v
}

func (s *OrderService) CreateOrder(ctx context.Context, userID uint64, items []domain.BookedItem, paymentMethod string, totalPrice float64) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, ErrNoBookedItems
	}

	order := &domain.Order{
		UserID:        userID,
		BookedItems:   items,
		PaymentMethod: paymentMethod,
		TotalPrice:    totalPrice,
		IsPaid:        false,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.Save(ctx, order); err != nil {
		return nil, err
	}

	go s.publishEvent(context.Background(), domain.EventBookingCreated, domain.BookingCreatedEvent{
		OrderID:       order.ID,
		UserID:        order.UserID,
		PaymentMethod: order.PaymentMethod,
		TotalPrice:    order.TotalPrice,
		ItemCount:     len(order.BookedItems),
		CreatedAt:     order.CreatedAt,
	})

	return order, nil
}

// MarkPaid applies a capture result to an order. A COMPLETED status moves the
// order to paid; any other status sets it back to unpaid, including an order
// that was already paid. That overwrite mirrors how the checkout flow has
// always behaved and the frontend depends on it.
func (s *OrderService) MarkPaid(ctx context.Context, orderID uint64, result domain.PaymentResult) (*domain.Order, error) {
	order, err := s.repo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	status := result.Status
	if s.verifier != nil {
		verified, err := s.verifier.GetOrderStatus(ctx, result.TransactionID)
		if err != nil {
			return nil, err
		}
		status = verified
	}

	order.PaymentResult = result
	order.PaymentResult.Status = status

	if status == domain.PaymentCompleted {
		now := time.Now()
		order.IsPaid = true
		order.PaidAt = &now
	} else {
		order.IsPaid = false
		order.PaidAt = nil
	}

	if err := s.repo.UpdatePayment(ctx, order); err != nil {
		return nil, err
	}

	if order.IsPaid {
		go s.publishEvent(context.Background(), domain.EventBookingPaid, domain.BookingPaidEvent{
			OrderID:       order.ID,
			UserID:        order.UserID,
			TransactionID: order.PaymentResult.TransactionID,
			TotalPrice:    order.TotalPrice,
			PaidAt:        *order.PaidAt,
		})
	}

	return order, nil
}

// ListAll returns one page of orders, newest first. The page and the total
// count are fetched concurrently.
func (s *OrderService) ListAll(ctx context.Context, page, limit int) (*OrderPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	var (
		orders []domain.Order
		count  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		orders, err = s.repo.FindPage(gctx, (page-1)*limit, limit)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.repo.Count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if orders == nil {
		orders = []domain.Order{}
	}
	return &OrderPage{
		Orders:      orders,
		TotalPages:  int(math.Ceil(float64(count) / float64(limit))),
		CurrentPage: page,
	}, nil
}

func (s *OrderService) OrdersByUser(ctx context.Context, userID uint64) ([]domain.Order, error) {
	return s.repo.FindByUser(ctx, userID)
}

func (s *OrderService) CountOrders(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *OrderService) TotalSales(ctx context.Context) (float64, error) {
	return s.repo.SumTotalPrice(ctx)
}

func (s *OrderService) SalesByDate(ctx context.Context) ([]domain.DailySales, error) {
	return s.repo.SalesByPaidDate(ctx)
}

func (s *OrderService) publishEvent(ctx context.Context, pattern string, data any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, pattern, data); err != nil {
		log.Printf("Failed to publish %s event: %v", pattern, err)
	}
}

package paypal

import "context"

type ClientInterface interface {
	GetOrderStatus(ctx context.Context, orderID string) (string, error)
}

var _ ClientInterface = (*Client)(nil)

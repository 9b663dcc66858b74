package services

import (
	"context"

	"github.com/computeralex/seventh-traditioner/internal/dto"
)

// PayPalSvcFacade is the server-side slice of the checkout flow. The browser
// normally drives checkout through PayPal's hosted JS and only hands us the
// resulting order id; these operations exist for deployments that create and
// capture orders server-side instead.
type PayPalSvcFacade interface {
	CreateOrder(ctx context.Context, req dto.CreatePayPalOrderRequest) (*dto.PayPalOrderResponse, error)
	CaptureOrder(ctx context.Context, orderID string) (*dto.PayPalCaptureResponse, error)
	GetOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error)
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/computeralex/seventh-traditioner/internal/apperrors"
	portssvc "github.com/computeralex/seventh-traditioner/internal/core/ports/services"
	"github.com/computeralex/seventh-traditioner/internal/dto"
	"github.com/computeralex/seventh-traditioner/internal/platform/paypal"
	"github.com/shopspring/decimal"
)

// PayPalOrderClient is the slice of the PayPal REST client the service uses.
type PayPalOrderClient interface {
	CreateOrder(ctx context.Context, value, currency, description, returnURL, cancelURL string) (*paypal.Order, error)
	CaptureOrder(ctx context.Context, orderID string) (*paypal.Order, error)
	GetOrder(ctx context.Context, orderID string) (*paypal.Order, error)
}

// PayPalService adapts the REST client to the checkout operations the form
// needs, enforcing the per-currency amount format PayPal requires.
type PayPalService struct {
	client   PayPalOrderClient
	currency portssvc.CurrencySvcFacade
}

// NewPayPalService creates a PayPalService.
func NewPayPalService(client PayPalOrderClient, currency portssvc.CurrencySvcFacade) *PayPalService {
	return &PayPalService{client: client, currency: currency}
}

// CreateOrder creates a checkout order for the given amount and currency.
func (s *PayPalService) CreateOrder(ctx context.Context, req dto.CreatePayPalOrderRequest) (*dto.PayPalOrderResponse, error) {
	code := strings.ToUpper(req.Currency)
	if !s.currency.IsSupported(code) {
		return nil, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, req.Currency)
	}
	descriptor, err := s.currency.GetCurrencyByCode(code)
	if err != nil {
		return nil, err
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(req.Amount))
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}

	// PayPal rejects fractional values in zero-decimal currencies.
	value := amount.StringFixed(int32(descriptor.Decimals))

	order, err := s.client.CreateOrder(ctx, value, code, req.Description, req.ReturnURL, req.CancelURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create paypal order: %w", err)
	}
	return &dto.PayPalOrderResponse{
		OrderID:    order.ID,
		Status:     order.Status,
		ApproveURL: order.ApproveURL,
	}, nil
}

// CaptureOrder captures an approved order and returns the capture id the
// form submits back as the transaction id.
func (s *PayPalService) CaptureOrder(ctx context.Context, orderID string) (*dto.PayPalCaptureResponse, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", apperrors.ErrValidation)
	}
	order, err := s.client.CaptureOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to capture paypal order %s: %w", orderID, err)
	}
	return &dto.PayPalCaptureResponse{
		OrderID:       order.ID,
		Status:        order.Status,
		TransactionID: order.CaptureID,
		PayerEmail:    order.PayerEmail,
	}, nil
}

// GetOrder retrieves order status.
func (s *PayPalService) GetOrder(ctx context.Context, orderID string) (*dto.PayPalOrderResponse, error) {
	if orderID == "" {
		return nil, fmt.Errorf("%w: order id is required", apperrors.ErrValidation)
	}
	order, err := s.client.GetOrder(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to get paypal order %s: %w", orderID, err)
	}
	return &dto.PayPalOrderResponse{
		OrderID:    order.ID,
		Status:     order.Status,
		ApproveURL: order.ApproveURL,
	}, nil
}

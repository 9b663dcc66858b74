// Package paypal is a thin client for the PayPal Orders v2 REST API,
// authenticating with the client-credentials grant.
package paypal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2/clientcredentials"
)

// Client talks to one PayPal environment (sandbox or live).
type Client struct {
	apiBase    string
	brandName  string
	httpClient *http.Client
}

// NewClient builds a client for the given environment. The oauth2 transport
// caches and refreshes the bearer token transparently.
func NewClient(apiBase, clientID, secret, brandName string) *Client {
	conf := &clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: secret,
		TokenURL:     apiBase + "/v1/oauth2/token",
	}

	httpClient := conf.Client(context.Background())
	httpClient.Timeout = 30 * time.Second

	return &Client{
		apiBase:    apiBase,
		brandName:  brandName,
		httpClient: httpClient,
	}
}

// Order is the subset of the order resource we consume.
type Order struct {
	ID            string
	Status        string
	ApproveURL    string
	CaptureID     string
	PayerEmail    string
	CaptureStatus string
}

type orderResource struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Links  []struct {
		Rel  string `json:"rel"`
		Href string `json:"href"`
	} `json:"links"`
	Payer struct {
		EmailAddress string `json:"email_address"`
	} `json:"payer"`
	PurchaseUnits []struct {
		Payments struct {
			Captures []struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"captures"`
		} `json:"payments"`
	} `json:"purchase_units"`
	Message string `json:"message"`
}

func (r *orderResource) toOrder() *Order {
	o := &Order{
		ID:         r.ID,
		Status:     r.Status,
		PayerEmail: r.Payer.EmailAddress,
	}
	for _, link := range r.Links {
		if link.Rel == "approve" {
			o.ApproveURL = link.Href
			break
		}
	}
	for _, pu := range r.PurchaseUnits {
		if len(pu.Payments.Captures) > 0 {
			o.CaptureID = pu.Payments.Captures[0].ID
			o.CaptureStatus = pu.Payments.Captures[0].Status
			break
		}
	}
	return o
}

// CreateOrder creates a CAPTURE-intent order for the given formatted amount.
// The amount string must already match the currency's decimal convention.
func (c *Client) CreateOrder(ctx context.Context, value, currency, description, returnURL, cancelURL string) (*Order, error) {
	payload := map[string]interface{}{
		"intent": "CAPTURE",
		"purchase_units": []map[string]interface{}{
			{
				"amount": map[string]string{
					"currency_code": currency,
					"value":         value,
				},
				"description": description,
			},
		},
		"application_context": map[string]string{
			"brand_name":          c.brandName,
			"locale":              "en-US",
			"landing_page":        "NO_PREFERENCE",
			"shipping_preference": "NO_SHIPPING",
			"user_action":         "PAY_NOW",
			"return_url":          returnURL,
			"cancel_url":          cancelURL,
		},
	}

	resource, err := c.do(ctx, http.MethodPost, "/v2/checkout/orders", payload, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return resource.toOrder(), nil
}

// CaptureOrder captures an approved order.
func (c *Client) CaptureOrder(ctx context.Context, orderID string) (*Order, error) {
	resource, err := c.do(ctx, http.MethodPost, "/v2/checkout/orders/"+orderID+"/capture", struct{}{}, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return resource.toOrder(), nil
}

// GetOrder retrieves order details.
func (c *Client) GetOrder(ctx context.Context, orderID string) (*Order, error) {
	resource, err := c.do(ctx, http.MethodGet, "/v2/checkout/orders/"+orderID, nil, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return resource.toOrder(), nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}, wantStatus int) (*orderResource, error) {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode paypal request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiBase+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build paypal request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("paypal request failed: %w", err)
	}
	defer resp.Body.Close()

	var resource orderResource
	if err := json.NewDecoder(resp.Body).Decode(&resource); err != nil {
		return nil, fmt.Errorf("invalid paypal response: %w", err)
	}

	if resp.StatusCode != wantStatus || resource.ID == "" {
		msg := resource.Message
		if msg == "" {
			msg = fmt.Sprintf("unexpected status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("paypal %s %s: %s", method, path, msg)
	}
	return &resource, nil
}

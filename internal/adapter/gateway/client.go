// Package gateway implements the payment-gateway port over a
// Flutterwave-compatible HTTP API.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/YepperAds/yepper-backend-sub001/internal/config/configs"
	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

// Client is a minimal payment-gateway API client. It is constructed once
// with its configuration and injected where needed, so tests can substitute
// a double behind port.PaymentGateway.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	secretKey   string
	redirectURL string
}

// NewClient constructs a gateway client from configuration. A nil
// httpClient gets a default one bounded by the configured timeout.
func NewClient(httpClient *http.Client, cfg configs.Gateway) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		httpClient:  httpClient,
		baseURL:     strings.TrimRight(cfg.Addr.String(), "/"),
		secretKey:   cfg.SecretKey,
		redirectURL: cfg.RedirectURL,
	}
}

// RedirectURL returns the configured post-checkout landing page.
func (c *Client) RedirectURL() string { return c.redirectURL }

// CreateCheckout opens a hosted checkout session and returns its redirect
// link. An idempotency key is attached so a retried create cannot open two
// sessions for the same attempt.
func (c *Client) CreateCheckout(ctx context.Context, req port.CheckoutRequest) (*port.Checkout, error) {
	redirect := req.RedirectURL
	if redirect == "" {
		redirect = c.redirectURL
	}
	payload := map[string]interface{}{
		"tx_ref":       req.TxRef,
		"amount":       req.Amount,
		"currency":     req.Currency,
		"redirect_url": redirect,
		"customer": map[string]string{
			"email":       req.Customer.Email,
			"phonenumber": req.Customer.Phone,
			"id":          req.Customer.UserID,
		},
		"meta": map[string]int64{
			"ad_id":      req.Meta.AdID,
			"website_id": req.Meta.WebsiteID,
			"owner_id":   req.Meta.OwnerID,
		},
	}
	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Link string `json:"link"`
		} `json:"data"`
	}
	if err := c.do(ctx, http.MethodPost, "/payments", payload, uuid.NewString(), &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" || resp.Data.Link == "" {
		return nil, fmt.Errorf("%w: checkout status %q", port.ErrGatewayRejected, resp.Status)
	}
	return &port.Checkout{RedirectURL: resp.Data.Link}, nil
}

// Verify re-checks a transaction with the provider and returns its
// authoritative status, amount and currency.
func (c *Client) Verify(ctx context.Context, transactionID string) (*port.Verification, error) {
	var resp struct {
		Status string `json:"status"`
		Data   struct {
			Status   string `json:"status"`
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
		} `json:"data"`
	}
	path := fmt.Sprintf("/transactions/%s/verify", transactionID)
	if err := c.do(ctx, http.MethodGet, path, nil, "", &resp); err != nil {
		return nil, err
	}
	if resp.Status != "success" {
		return nil, fmt.Errorf("%w: verification status %q", port.ErrGatewayRejected, resp.Status)
	}
	return &port.Verification{
		Status:   resp.Data.Status,
		Amount:   resp.Data.Amount,
		Currency: resp.Data.Currency,
	}, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload interface{}, idempotencyKey string, out interface{}) error {
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	if idempotencyKey != "" {
		req.Header.Set("Idempotency-Key", idempotencyKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", port.ErrGatewayUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return fmt.Errorf("%w: unexpected status %s", port.ErrGatewayUnavailable, resp.Status)
	}
	if resp.StatusCode >= 300 {
		return fmt.Errorf("%w: unexpected status %s", port.ErrGatewayRejected, resp.Status)
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %v", port.ErrGatewayRejected, err)
	}
	return nil
}

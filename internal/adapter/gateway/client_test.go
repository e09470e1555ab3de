package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YepperAds/yepper-backend-sub001/internal/config/configs"
	"github.com/YepperAds/yepper-backend-sub001/internal/core/port"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	addr, err := url.Parse(srv.URL)
	require.NoError(t, err)
	return NewClient(srv.Client(), configs.Gateway{
		Addr:        *addr,
		SecretKey:   "sk-test",
		RedirectURL: "https://yepper.cc/payment/complete",
		Timeout:     5 * time.Second,
	})
}

func TestCreateCheckout(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/payments", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			assert.NotEmpty(t, r.Header.Get("Idempotency-Key"))

			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "YEP-1-1-2", body["tx_ref"])
			assert.Equal(t, "https://yepper.cc/payment/complete", body["redirect_url"])

			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "success",
				"data":   map[string]string{"link": "https://pay.example/x"},
			})
		})

		checkout, err := c.CreateCheckout(context.Background(), port.CheckoutRequest{
			TxRef: "YEP-1-1-2", Amount: 5000, Currency: "RWF",
			Customer: port.Customer{Email: "p@example.com"},
			Meta:     port.CheckoutMeta{AdID: 1, WebsiteID: 2, OwnerID: 77},
		})
		require.NoError(t, err)
		assert.Equal(t, "https://pay.example/x", checkout.RedirectURL)
	})

	t.Run("rejected response shape", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{"status": "error"})
		})
		_, err := c.CreateCheckout(context.Background(), port.CheckoutRequest{TxRef: "YEP-1-1-2"})
		assert.ErrorIs(t, err, port.ErrGatewayRejected)
	})

	t.Run("server error is unavailable", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
		_, err := c.CreateCheckout(context.Background(), port.CheckoutRequest{TxRef: "YEP-1-1-2"})
		assert.ErrorIs(t, err, port.ErrGatewayUnavailable)
	})
}

func TestVerify(t *testing.T) {
	t.Run("maps verification fields", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/transactions/txn-1/verify", r.URL.Path)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "success",
				"data": map[string]interface{}{
					"status":   "successful",
					"amount":   5000,
					"currency": "RWF",
				},
			})
		})

		v, err := c.Verify(context.Background(), "txn-1")
		require.NoError(t, err)
		assert.Equal(t, "successful", v.Status)
		assert.Equal(t, int64(5000), v.Amount)
		assert.Equal(t, "RWF", v.Currency)
	})

	t.Run("unauthorized is rejected", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
		_, err := c.Verify(context.Background(), "txn-1")
		assert.ErrorIs(t, err, port.ErrGatewayRejected)
	})
}

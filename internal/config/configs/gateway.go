package configs

import (
	"net/url"
	"time"
)

// Gateway holds configuration for the external payment gateway client. The
// secret key authenticates outbound calls; RedirectURL is where the hosted
// checkout sends the payer afterwards. Timeout bounds every gateway call so
// a stalled provider cannot hold a request open indefinitely.
type Gateway struct {
	// Addr is the base URL of the gateway API.
	Addr url.URL `env:"ADDRESS" envDefault:"https://api.flutterwave.com/v3"`
	// SecretKey is the merchant API key sent as a bearer token.
	SecretKey string `env:"SECRET_KEY"`
	// RedirectURL is the post-checkout landing page for the payer.
	RedirectURL string `env:"REDIRECT_URL" envDefault:"https://yepper.cc/payment/complete"`
	// Timeout bounds checkout-creation and verification calls.
	Timeout time.Duration `env:"TIMEOUT" envDefault:"15s"`
}

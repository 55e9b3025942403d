package razorpay

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"log/slog"

	razorpay "github.com/razorpay/razorpay-go"
)

// ProviderOrder is the payment-provider order the client-side payment UI
// needs to collect a payment.
type ProviderOrder struct {
	ID       string
	Amount   int64
	Currency string
}

// Gateway exposes operations against the payment provider.
type Gateway interface {
	// CreateOrder registers a provider-side order. Amount is in minor
	// currency units (paise). Receipt and notes correlate the provider
	// order back to the internal one.
	CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]any) (*ProviderOrder, error)
	// VerifySignature checks the provider's payment signature:
	// hex HMAC-SHA256(secret, orderID + "|" + paymentID).
	VerifySignature(providerOrderID, paymentID, signature string) bool
	KeyID() string
}

// Client implements Gateway via the Razorpay SDK.
type Client struct {
	sdk    *razorpay.Client
	keyID  string
	secret []byte
	logger *slog.Logger
}

// NewClient creates a Razorpay gateway client.
func NewClient(keyID, keySecret string, logger *slog.Logger) *Client {
	return &Client{
		sdk:    razorpay.NewClient(keyID, keySecret),
		keyID:  keyID,
		secret: []byte(keySecret),
		logger: logger,
	}
}

// CreateOrder registers an order with Razorpay.
func (c *Client) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]any) (*ProviderOrder, error) {
	data := map[string]interface{}{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	body, err := c.sdk.Order.Create(data, nil)
	if err != nil {
		c.logger.Error("razorpay order create failed", slog.String("receipt", receipt), slog.String("error", err.Error()))
		return nil, fmt.Errorf("create provider order: %w", err)
	}

	id, _ := body["id"].(string)
	if id == "" {
		return nil, fmt.Errorf("create provider order: missing id in response")
	}

	order := &ProviderOrder{ID: id, Amount: amount, Currency: currency}
	if a, ok := body["amount"].(float64); ok {
		order.Amount = int64(a)
	}
	if cur, ok := body["currency"].(string); ok && cur != "" {
		order.Currency = cur
	}
	return order, nil
}

// VerifySignature recomputes the expected payment signature and compares it
// in constant time.
func (c *Client) VerifySignature(providerOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, c.secret)
	mac.Write([]byte(providerOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// KeyID returns the public key id the payment UI needs.
func (c *Client) KeyID() string {
	return c.keyID
}

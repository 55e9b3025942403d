package test

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/mailer"
	"github.com/jayeshsingh-11/creative-cascade/internal/adapter/razorpay"
)

// GatewayStub simulates the payment provider.
type GatewayStub struct {
	CreateOrderFn func(context.Context, int64, string, string, map[string]any) (*razorpay.ProviderOrder, error)
	VerifyFn      func(string, string, string) bool
	Key           string

	CreatedOrders []CreatedProviderOrder
}

// CreatedProviderOrder records one CreateOrder invocation.
type CreatedProviderOrder struct {
	Amount   int64
	Currency string
	Receipt  string
	Notes    map[string]any
}

// CreateOrder returns a deterministic provider order.
func (s *GatewayStub) CreateOrder(ctx context.Context, amount int64, currency, receipt string, notes map[string]any) (*razorpay.ProviderOrder, error) {
	s.CreatedOrders = append(s.CreatedOrders, CreatedProviderOrder{Amount: amount, Currency: currency, Receipt: receipt, Notes: notes})
	if s.CreateOrderFn != nil {
		return s.CreateOrderFn(ctx, amount, currency, receipt, notes)
	}
	return &razorpay.ProviderOrder{
		ID:       fmt.Sprintf("order_stub_%d", len(s.CreatedOrders)),
		Amount:   amount,
		Currency: currency,
	}, nil
}

// VerifySignature accepts everything unless overridden.
func (s *GatewayStub) VerifySignature(providerOrderID, paymentID, signature string) bool {
	if s.VerifyFn != nil {
		return s.VerifyFn(providerOrderID, paymentID, signature)
	}
	return true
}

// KeyID returns the configured public key.
func (s *GatewayStub) KeyID() string {
	if s.Key != "" {
		return s.Key
	}
	return "rzp_test_stub"
}

// StoreStub simulates the object store.
type StoreStub struct {
	UploadFn    func(context.Context, string, string, io.Reader, int64, string) error
	SignedURLFn func(context.Context, string, string, time.Duration, string) (string, error)

	Uploads    []StoredObject
	URLCounter int
}

// StoredObject records one Upload invocation.
type StoredObject struct {
	Bucket      string
	Key         string
	Size        int64
	ContentType string
}

// Upload records the object.
func (s *StoreStub) Upload(ctx context.Context, bucket, key string, r io.Reader, size int64, contentType string) error {
	if s.UploadFn != nil {
		return s.UploadFn(ctx, bucket, key, r, size, contentType)
	}
	s.Uploads = append(s.Uploads, StoredObject{Bucket: bucket, Key: key, Size: size, ContentType: contentType})
	return nil
}

// SignedURL returns a URL that differs on every call, matching presigned
// URL behaviour.
func (s *StoreStub) SignedURL(ctx context.Context, bucket, key string, expiry time.Duration, downloadName string) (string, error) {
	if s.SignedURLFn != nil {
		return s.SignedURLFn(ctx, bucket, key, expiry, downloadName)
	}
	s.URLCounter++
	return fmt.Sprintf("https://store.test/%s/%s?sig=%d", bucket, key, s.URLCounter), nil
}

// PublicURL returns a deterministic public URL.
func (s *StoreStub) PublicURL(bucket, key string) string {
	return fmt.Sprintf("https://store.test/%s/%s", bucket, key)
}

// MailerStub captures outgoing messages.
type MailerStub struct {
	SendFn   func(mailer.Message) error
	Messages []mailer.Message
}

// Send records the message.
func (s *MailerStub) Send(msg mailer.Message) error {
	if s.SendFn != nil {
		return s.SendFn(msg)
	}
	s.Messages = append(s.Messages, msg)
	return nil
}

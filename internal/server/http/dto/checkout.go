package dto

// CheckoutRequest lists the cart's product identifiers.
type CheckoutRequest struct {
	ProductIDs []int64 `json:"productIds"`
}

// CheckoutResponse carries what the client needs to open the provider's
// payment widget. Amount is in minor currency units.
type CheckoutResponse struct {
	OrderID         int64  `json:"orderId"`
	ProviderOrderID string `json:"providerOrderId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
	KeyID           string `json:"keyId"`
}

// VerifyPaymentRequest is the provider callback payload posted by the
// client after the payment widget completes. Field names follow the
// provider's checkout handler.
type VerifyPaymentRequest struct {
	OrderID           int64  `json:"orderId"`
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}

// VerifyPaymentResponse reports the settlement outcome.
type VerifyPaymentResponse struct {
	Success       bool   `json:"success"`
	InvoiceNumber string `json:"invoiceNumber,omitempty"`
}

// OrderStatusResponse answers the thank-you page poll.
type OrderStatusResponse struct {
	OrderID int64 `json:"orderId"`
	IsPaid  bool  `json:"isPaid"`
}

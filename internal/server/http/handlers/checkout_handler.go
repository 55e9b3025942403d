package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/dto"
)

// CheckoutHandler drives order intake and payment settlement.
type CheckoutHandler struct {
	facade CheckoutFacade
}

// NewCheckoutHandler creates CheckoutHandler instance.
func NewCheckoutHandler(facade CheckoutFacade) *CheckoutHandler {
	return &CheckoutHandler{facade: facade}
}

// Create handles POST /api/checkout.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	session := CurrentSession(c)
	checkout, err := h.facade.CreateCheckoutSession(c.Request.Context(), session.UserID, req.ProductIDs)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		OrderID:         checkout.OrderID,
		ProviderOrderID: checkout.ProviderOrderID,
		Amount:          checkout.Amount,
		Currency:        checkout.Currency,
		KeyID:           h.facade.PaymentKeyID(),
	})
}

// Verify handles POST /api/checkout/verify.
func (h *CheckoutHandler) Verify(c *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	if req.OrderID <= 0 || req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	session := CurrentSession(c)
	invoiceNumber, err := h.facade.VerifyPayment(c.Request.Context(), session.UserID, req.OrderID,
		req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.VerifyPaymentResponse{
		Success:       true,
		InvoiceNumber: invoiceNumber,
	})
}

// Status handles GET /api/orders/:id/status.
func (h *CheckoutHandler) Status(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	session := CurrentSession(c)
	paid, err := h.facade.OrderStatus(c.Request.Context(), session.UserID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OrderStatusResponse{OrderID: orderID, IsPaid: paid})
}

// List handles GET /api/orders.
func (h *CheckoutHandler) List(c *gin.Context) {
	session := CurrentSession(c)
	orders, err := h.facade.BuyerOrders(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrderResponses(orders))
}

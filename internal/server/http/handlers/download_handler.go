package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/dto"
)

// DownloadHandler serves entitlement-gated downloads and invoices.
type DownloadHandler struct {
	facade DownloadFacade
}

// NewDownloadHandler creates DownloadHandler instance.
func NewDownloadHandler(facade DownloadFacade) *DownloadHandler {
	return &DownloadHandler{facade: facade}
}

// Download handles GET /api/downloads/:id. The response URL is presigned
// and expires quickly; clients should follow it immediately.
func (h *DownloadHandler) Download(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	session := CurrentSession(c)
	url, filename, err := h.facade.SecureDownload(c.Request.Context(), session.UserID, productID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DownloadResponse{URL: url, Filename: filename})
}

// Library handles GET /api/library.
func (h *DownloadHandler) Library(c *gin.Context) {
	session := CurrentSession(c)
	items, err := h.facade.Library(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, err)
		return
	}

	result := make([]dto.LibraryItemResponse, 0, len(items))
	for _, item := range items {
		result = append(result, dto.LibraryItemResponse{
			Product:   dto.NewProductResponse(item.Product),
			GrantedAt: item.GrantedAt,
		})
	}
	c.JSON(http.StatusOK, result)
}

// Invoice handles GET /api/orders/:id/invoice, streaming the regenerated
// PDF.
func (h *DownloadHandler) Invoice(c *gin.Context) {
	orderID, ok := pathID(c, "id")
	if !ok {
		return
	}

	session := CurrentSession(c)
	pdfBytes, filename, err := h.facade.DownloadInvoice(c.Request.Context(), session.UserID, orderID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

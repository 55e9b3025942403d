package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/dto"
)

// AdminHandler serves the admin console.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Stats handles GET /api/admin/stats.
func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.facade.PlatformStats(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewPlatformStatsResponse(stats))
}

// PendingProducts handles GET /api/admin/products/pending.
func (h *AdminHandler) PendingProducts(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	products, err := h.facade.PendingProducts(c.Request.Context(), limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// SetApproval handles PATCH /api/admin/products/:id/approval.
func (h *AdminHandler) SetApproval(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	if err := h.facade.ApproveProduct(c.Request.Context(), productID, req.Approved); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/repository"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/dto"
)

// CatalogHandler serves the public product catalog.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler creates CatalogHandler instance.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// List handles GET /api/products.
func (h *CatalogHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	filter := repository.ProductFilter{
		Category:     c.Query("category"),
		Query:        c.Query("q"),
		SortDesc:     c.Query("sort") != "oldest",
		ApprovedOnly: true,
		Limit:        limit,
		Offset:       offset,
	}

	products, total, err := h.facade.ListProducts(c.Request.Context(), filter)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Products: dto.NewProductResponses(products),
		Total:    total,
	})
}

// Search handles GET /api/products/search.
func (h *CatalogHandler) Search(c *gin.Context) {
	products, err := h.facade.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// Get handles GET /api/products/:id.
func (h *CatalogHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.facade.ProductDetails(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := dto.ProductDetailsResponse{
		ProductResponse: dto.NewProductResponse(details.Product),
		Images:          details.ImageURLs,
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	c.JSON(http.StatusOK, resp)
}

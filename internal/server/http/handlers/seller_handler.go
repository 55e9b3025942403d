package handlers

import (
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/dto"
	"github.com/jayeshsingh-11/creative-cascade/internal/usecase"
)

// SellerHandler serves the seller console.
type SellerHandler struct {
	facade SellerFacade
}

// NewSellerHandler creates SellerHandler instance.
func NewSellerHandler(facade SellerFacade) *SellerHandler {
	return &SellerHandler{facade: facade}
}

// CreateListing handles POST /api/seller/products (multipart form: name,
// description, category, price, file, images).
func (h *SellerHandler) CreateListing(c *gin.Context) {
	price, err := decimal.NewFromString(c.PostForm("price"))
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	file, closeFile, err := openAsset(fileHeader)
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	defer closeFile()

	in := usecase.CreateListingInput{
		Name:        c.PostForm("name"),
		Description: c.PostForm("description"),
		Category:    c.PostForm("category"),
		Price:       price,
		File:        file,
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	for _, imgHeader := range form.File["images"] {
		img, closeImg, err := openAsset(imgHeader)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		defer closeImg()
		in.Images = append(in.Images, *img)
	}

	session := CurrentSession(c)
	product, err := h.facade.CreateListing(c.Request.Context(), session.UserID, in)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewProductResponse(*product))
}

// Listings handles GET /api/seller/products.
func (h *SellerHandler) Listings(c *gin.Context) {
	session := CurrentSession(c)
	products, err := h.facade.SellerListings(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProductResponses(products))
}

// DeleteListing handles DELETE /api/seller/products/:id.
func (h *SellerHandler) DeleteListing(c *gin.Context) {
	productID, ok := pathID(c, "id")
	if !ok {
		return
	}

	session := CurrentSession(c)
	if err := h.facade.DeleteListing(c.Request.Context(), session.UserID, productID); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/seller/stats.
func (h *SellerHandler) Stats(c *gin.Context) {
	session := CurrentSession(c)
	stats, err := h.facade.SellerStats(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewSellerStatsResponse(stats))
}

// Wallet handles GET /api/seller/wallet.
func (h *SellerHandler) Wallet(c *gin.Context) {
	session := CurrentSession(c)
	balance, err := h.facade.WalletBalance(c.Request.Context(), session.UserID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.WalletResponse{Balance: balance.StringFixed(2)})
}

func openAsset(header *multipart.FileHeader) (*usecase.UploadedAsset, func(), error) {
	f, err := header.Open()
	if err != nil {
		return nil, nil, err
	}
	asset := &usecase.UploadedAsset{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Content:     f,
	}
	return asset, func() { _ = f.Close() }, nil
}

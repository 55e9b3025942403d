package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/jayeshsingh-11/creative-cascade/internal/domain/model"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/handlers"
	"github.com/jayeshsingh-11/creative-cascade/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	catalogHandler := handlers.NewCatalogHandler(facade)
	checkoutHandler := handlers.NewCheckoutHandler(facade)
	downloadHandler := handlers.NewDownloadHandler(facade)
	sellerHandler := handlers.NewSellerHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	products := api.Group("/products")
	products.GET("", catalogHandler.List)
	products.GET("/search", catalogHandler.Search)
	products.GET("/:id", catalogHandler.Get)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))
	authed.POST("/checkout", checkoutHandler.Create)
	authed.POST("/checkout/verify", checkoutHandler.Verify)
	authed.GET("/orders", checkoutHandler.List)
	authed.GET("/orders/:id/status", checkoutHandler.Status)
	authed.GET("/orders/:id/invoice", downloadHandler.Invoice)
	authed.GET("/downloads/:id", downloadHandler.Download)
	authed.GET("/library", downloadHandler.Library)

	seller := authed.Group("/seller")
	seller.Use(middleware.RequireRole(model.RoleSeller))
	seller.POST("/products", sellerHandler.CreateListing)
	seller.GET("/products", sellerHandler.Listings)
	seller.DELETE("/products/:id", sellerHandler.DeleteListing)
	seller.GET("/stats", sellerHandler.Stats)
	seller.GET("/wallet", sellerHandler.Wallet)

	admin := authed.Group("/admin")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/products/pending", adminHandler.PendingProducts)
	admin.PATCH("/products/:id/approval", adminHandler.SetApproval)

	return engine
}

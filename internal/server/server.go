package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techstore/storefront/internal/cart"
	"github.com/techstore/storefront/internal/catalog"
	"github.com/techstore/storefront/internal/config"
	"github.com/techstore/storefront/internal/dispatch"
	"github.com/techstore/storefront/internal/order"
)

type Server struct {
	router     *gin.Engine
	store      config.StoreConfig
	catalog    *catalog.Accessor
	cart       *cart.Store
	assembler  *order.Assembler
	dispatcher *dispatch.Dispatcher
	sender     dispatch.Sender
}

// NewServer creates a new server instance
func NewServer(cfg *config.Config, cat *catalog.Accessor, crt *cart.Store, asm *order.Assembler, dsp *dispatch.Dispatcher, sender dispatch.Sender) *Server {
	router := gin.Default()

	server := &Server{
		router:     router,
		store:      cfg.Store,
		catalog:    cat,
		cart:       crt,
		assembler:  asm,
		dispatcher: dsp,
		sender:     sender,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all API routes
func (s *Server) setupRoutes() {
	api := s.router.Group("/api")
	{
		api.GET("/health", s.healthCheck)
		api.GET("/products", s.listProducts)
		api.GET("/products/featured", s.featuredProducts)
		api.GET("/products/:id", s.getProduct)
		api.GET("/cart", s.getCart)
		api.POST("/cart/items", s.addCartItem)
		api.PUT("/cart/items/:id", s.updateCartItem)
		api.DELETE("/cart/items/:id", s.removeCartItem)
		api.DELETE("/cart", s.clearCart)
		api.POST("/checkout", s.checkout)
		api.POST("/contact", s.contact)
	}
}

// Handler exposes the route tree for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server
func (s *Server) Start(addr string) error {
	return s.router.Run(addr)
}

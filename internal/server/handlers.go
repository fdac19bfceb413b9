package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/techstore/storefront/internal/cart"
	"github.com/techstore/storefront/internal/catalog"
	"github.com/techstore/storefront/internal/models"
	"github.com/techstore/storefront/internal/order"
)

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// healthCheck endpoint for monitoring
func (s *Server) healthCheck(c *gin.Context) {
	if err := s.catalog.Err(); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "degraded",
			"error":  "catalog source unavailable",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": s.store.Name,
	})
}

func (s *Server) listProducts(c *gin.Context) {
	state := models.FilterState{
		Search:     c.Query("search"),
		Category:   c.Query("category"),
		PriceRange: c.Query("price"),
		SortBy:     c.DefaultQuery("sort", models.SortByName),
	}

	products := catalog.Apply(s.catalog.Load(c.Request.Context()), state)
	c.JSON(http.StatusOK, gin.H{
		"products": products,
		"count":    len(products),
	})
}

func (s *Server) featuredProducts(c *gin.Context) {
	featured := s.catalog.Featured(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"products": featured,
		"count":    len(featured),
	})
}

func (s *Server) getProduct(c *gin.Context) {
	product, err := s.catalog.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found!"})
		return
	}
	c.JSON(http.StatusOK, product)
}

func (s *Server) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, s.cartState())
}

func (s *Server) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	if err := s.cart.Add(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		switch {
		case errors.Is(err, catalog.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found!"})
		case errors.Is(err, cart.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quantity must be positive!"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product to cart."})
		}
		return
	}

	c.JSON(http.StatusOK, s.cartState("message", "Product added to cart!"))
}

func (s *Server) updateCartItem(c *gin.Context) {
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.cart.SetQuantity(c.Param("id"), *req.Quantity)
	c.JSON(http.StatusOK, s.cartState())
}

func (s *Server) removeCartItem(c *gin.Context) {
	s.cart.Remove(c.Param("id"))
	c.JSON(http.StatusOK, s.cartState("message", "Product removed from cart!"))
}

func (s *Server) clearCart(c *gin.Context) {
	s.cart.Clear()
	c.JSON(http.StatusOK, s.cartState("message", "Cart cleared!"))
}

func (s *Server) checkout(c *gin.Context) {
	var form models.CheckoutForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	record, err := s.assembler.Assemble(c.Request.Context(), s.cart.Lines(), form)
	if err != nil {
		if errors.Is(err, order.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assemble order."})
		return
	}

	result, err := s.dispatcher.Dispatch(c.Request.Context(), record, form.Channel)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order":    result,
		"redirect": "/thank-you",
	})
}

func (s *Server) contact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.sender.SendContact(c.Request.Context(), msg); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send message. Please try again or contact us directly."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully! We'll get back to you soon."})
}

// cartState builds the cart payload shared by all cart responses. Extra
// key/value pairs are merged in.
func (s *Server) cartState(extra ...string) gin.H {
	state := gin.H{
		"items": s.cart.Lines(),
		"count": s.cart.Count(),
		"total": s.cart.Total(),
	}
	for i := 0; i+1 < len(extra); i += 2 {
		state[extra[i]] = extra[i+1]
	}
	return state
}

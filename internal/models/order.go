package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order submission channels.
const (
	ChannelWhatsApp = "whatsapp"
	ChannelEmail    = "email"
)

// Customer holds the buyer's contact details from the checkout form.
// Field formats are not validated beyond presence.
type Customer struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
}

// FullName joins first and last name for display.
func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// ShippingAddress is the delivery destination from the checkout form.
type ShippingAddress struct {
	Address string `json:"address" binding:"required"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state" binding:"required"`
	ZipCode string `json:"zipCode" binding:"required"`
	Country string `json:"country" binding:"required"`
}

// CheckoutForm is the statically-shaped snapshot of the checkout form,
// validated at the API boundary before an order is assembled.
type CheckoutForm struct {
	Customer   Customer        `json:"customer" binding:"required"`
	Shipping   ShippingAddress `json:"shipping" binding:"required"`
	OrderNotes string          `json:"orderNotes"`
	Channel    string          `json:"channel" binding:"required,oneof=whatsapp email"`
}

// OrderRecord is an assembled order: the checkout form snapshot plus the
// cart lines reconciled against the live catalog. It is immutable after
// assembly and discarded after dispatch.
type OrderRecord struct {
	ID        uuid.UUID       `json:"id"`
	Number    string          `json:"orderNumber"`
	Customer  Customer        `json:"customer"`
	Shipping  ShippingAddress `json:"shipping"`
	Notes     string          `json:"orderNotes,omitempty"`
	Items     []CartLine      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// ContactMessage is a support inquiry sent through the contact form.
type ContactMessage struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

package dispatch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/techstore/storefront/internal/models"
)

// Opener hands a deep link to whatever opens URIs for the user. Opening is
// fire-and-forget: the sink's own failures are outside this system.
type Opener interface {
	Open(link string) error
}

// LogOpener records the link instead of opening it. The headless service
// returns the link to the API caller anyway; this keeps a server-side trace.
type LogOpener struct {
	log logrus.FieldLogger
}

func NewLogOpener(log logrus.FieldLogger) *LogOpener {
	return &LogOpener{log: log}
}

func (o *LogOpener) Open(link string) error {
	o.log.WithField("link", link).Info("whatsapp deep link ready")
	return nil
}

// BuildLink assembles the wa.me deep link carrying the order text.
func BuildLink(baseURL, number, text string) string {
	query := url.Values{"text": {text}}
	return fmt.Sprintf("%s/%s?%s", strings.TrimSuffix(baseURL, "/"), number, query.Encode())
}

// FormatOrderMessage renders the order as the WhatsApp text block. Section
// order is fixed: header, customer, shipping, items, total, order number,
// then notes when present.
func FormatOrderMessage(order models.OrderRecord, storeName, currency string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order from %s*\n\n", storeName)
	fmt.Fprintf(&b, "*Customer:* %s\n", order.Customer.FullName())
	fmt.Fprintf(&b, "*Email:* %s\n", order.Customer.Email)
	fmt.Fprintf(&b, "*Phone:* %s\n\n", order.Customer.Phone)

	b.WriteString("*Shipping Address:*\n")
	fmt.Fprintf(&b, "%s\n", order.Shipping.Address)
	fmt.Fprintf(&b, "%s, %s %s\n", order.Shipping.City, order.Shipping.State, order.Shipping.ZipCode)
	fmt.Fprintf(&b, "%s\n\n", order.Shipping.Country)

	b.WriteString("*Order Items:*\n")
	b.WriteString(formatOrderItems(order.Items, currency))

	fmt.Fprintf(&b, "\n*Total:* %s\n", formatPrice(order.Total, currency))
	fmt.Fprintf(&b, "*Order Number:* %s", order.Number)

	if order.Notes != "" {
		fmt.Fprintf(&b, "\n\n*Notes:* %s", order.Notes)
	}
	return b.String()
}

func formatOrderItems(items []models.CartLine, currency string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "• %s x%d - %s\n", item.Name, item.Quantity, formatPrice(item.Subtotal(), currency))
	}
	return b.String()
}

func formatPrice(amount decimal.Decimal, currency string) string {
	return currency + amount.StringFixed(2)
}

// Compile-time interface check
var _ Opener = (*LogOpener)(nil)

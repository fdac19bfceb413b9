// Package dispatch routes assembled orders to exactly one of the two
// external channels: the structured EmailJS template send or the WhatsApp
// deep-link handoff. Cart clearing always happens strictly after the
// dispatch attempt, never before.
package dispatch

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/techstore/storefront/internal/config"
	"github.com/techstore/storefront/internal/models"
)

// CartClearer empties the cart once dispatch has been attempted.
type CartClearer interface {
	Clear()
}

// Result reports what happened during a dispatch, for the confirmation view.
type Result struct {
	OrderNumber string `json:"order_number"`
	Link        string `json:"whatsapp_link"`
	EmailSent   bool   `json:"email_sent"`
	EmailError  string `json:"email_error,omitempty"`
	Cleared     bool   `json:"cart_cleared"`
}

type Dispatcher struct {
	sender    Sender
	opener    Opener
	cart      CartClearer
	storeName string
	currency  string
	waNumber  string
	waBaseURL string
	log       logrus.FieldLogger
}

func NewDispatcher(cfg *config.Config, sender Sender, opener Opener, cart CartClearer, log logrus.FieldLogger) *Dispatcher {
	return &Dispatcher{
		sender:    sender,
		opener:    opener,
		cart:      cart,
		storeName: cfg.Store.Name,
		currency:  cfg.Store.Currency,
		waNumber:  cfg.WhatsApp.Number,
		waBaseURL: cfg.WhatsApp.BaseURL,
		log:       log,
	}
}

// Dispatch routes the order through the requested channel.
//
// WhatsApp mode formats the order text, hands the deep link to the opener,
// then clears the cart.
//
// Email mode submits the structured send first and always proceeds to the
// deep-link handoff afterwards: a failed send is logged and reported in the
// result but blocks neither the fallback channel nor the cart clear. The
// cart is cleared only after both steps have been attempted.
//
// An unknown channel is an error and produces no side effects.
func (d *Dispatcher) Dispatch(ctx context.Context, order models.OrderRecord, channel string) (Result, error) {
	switch channel {
	case models.ChannelWhatsApp:
		return d.dispatchWhatsApp(order), nil
	case models.ChannelEmail:
		return d.dispatchEmail(ctx, order), nil
	default:
		return Result{}, fmt.Errorf("unsupported channel: %s", channel)
	}
}

func (d *Dispatcher) dispatchWhatsApp(order models.OrderRecord) Result {
	link := d.openDeepLink(order)
	d.cart.Clear()
	return Result{
		OrderNumber: order.Number,
		Link:        link,
		Cleared:     true,
	}
}

func (d *Dispatcher) dispatchEmail(ctx context.Context, order models.OrderRecord) Result {
	result := Result{OrderNumber: order.Number, EmailSent: true}

	if err := d.sender.Send(ctx, order); err != nil {
		d.log.WithError(err).WithField("order", order.Number).Warn("structured send failed, proceeding to deep link")
		result.EmailSent = false
		result.EmailError = err.Error()
	}

	result.Link = d.openDeepLink(order)
	d.cart.Clear()
	result.Cleared = true
	return result
}

func (d *Dispatcher) openDeepLink(order models.OrderRecord) string {
	message := FormatOrderMessage(order, d.storeName, d.currency)
	link := BuildLink(d.waBaseURL, d.waNumber, message)
	if err := d.opener.Open(link); err != nil {
		// Fire-and-forget: the opener's failure never reaches the caller.
		d.log.WithError(err).Warn("failed to open whatsapp link")
	}
	return link
}

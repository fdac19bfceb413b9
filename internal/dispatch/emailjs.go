package dispatch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/techstore/storefront/internal/config"
	"github.com/techstore/storefront/internal/models"
)

var ErrSendFailed = errors.New("channel send failed")

// Sender submits structured messages to the template-based email channel.
type Sender interface {
	Send(ctx context.Context, order models.OrderRecord) error
	SendContact(ctx context.Context, msg models.ContactMessage) error
}

// EmailJSSender talks to the EmailJS REST API. Payloads carry a fixed map
// of template parameters; the template itself lives in the EmailJS account.
type EmailJSSender struct {
	baseURL           string
	serviceID         string
	orderTemplateID   string
	contactTemplateID string
	userID            string
	storeName         string
	currency          string
	client            *http.Client
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func NewEmailJSSender(cfg *config.EmailJSConfig, store *config.StoreConfig) *EmailJSSender {
	return &EmailJSSender{
		baseURL:           cfg.BaseURL,
		serviceID:         cfg.ServiceID,
		orderTemplateID:   cfg.OrderTemplateID,
		contactTemplateID: cfg.ContactTemplateID,
		userID:            cfg.UserID,
		storeName:         store.Name,
		currency:          store.Currency,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Send submits an assembled order through the order template.
func (s *EmailJSSender) Send(ctx context.Context, order models.OrderRecord) error {
	params := map[string]string{
		"to_name":          s.storeName + " Orders",
		"customer_name":    order.Customer.FullName(),
		"customer_email":   order.Customer.Email,
		"customer_phone":   order.Customer.Phone,
		"shipping_address": formatShippingLine(order.Shipping),
		"order_items":      formatOrderItems(order.Items, s.currency),
		"total":            formatPrice(order.Total, s.currency),
		"order_number":     order.Number,
		"order_date":       order.CreatedAt.Format("01/02/2006"),
		"order_notes":      order.Notes,
	}
	return s.send(ctx, s.orderTemplateID, params)
}

// SendContact submits a support inquiry through the contact template.
func (s *EmailJSSender) SendContact(ctx context.Context, msg models.ContactMessage) error {
	params := map[string]string{
		"to_name":    s.storeName + " Support",
		"from_name":  msg.Name,
		"from_email": msg.Email,
		"phone":      msg.Phone,
		"subject":    msg.Subject,
		"message":    msg.Message,
	}
	return s.send(ctx, s.contactTemplateID, params)
}

// formatShippingLine flattens the address into the single line the order
// template expects.
func formatShippingLine(addr models.ShippingAddress) string {
	return fmt.Sprintf("%s, %s, %s %s, %s", addr.Address, addr.City, addr.State, addr.ZipCode, addr.Country)
}

func (s *EmailJSSender) send(ctx context.Context, templateID string, params map[string]string) error {
	payload := emailJSRequest{
		ServiceID:      s.serviceID,
		TemplateID:     templateID,
		UserID:         s.userID,
		TemplateParams: params,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/api/v1.0/email/send", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: emailjs error %d: %s", ErrSendFailed, resp.StatusCode, string(body))
	}
	return nil
}

// Compile-time interface check
var _ Sender = (*EmailJSSender)(nil)

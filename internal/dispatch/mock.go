package dispatch

import (
	"context"

	"github.com/techstore/storefront/internal/models"
)

// MockSender records everything it is asked to send. Used in tests and as
// the default provider so the storefront works without EmailJS credentials.
type MockSender struct {
	FailSend    bool
	FailContact bool
	Sent        []models.OrderRecord
	Contacts    []models.ContactMessage
}

func NewMockSender() *MockSender {
	return &MockSender{}
}

func (s *MockSender) Send(ctx context.Context, order models.OrderRecord) error {
	if s.FailSend {
		return ErrSendFailed
	}
	s.Sent = append(s.Sent, order)
	return nil
}

func (s *MockSender) SendContact(ctx context.Context, msg models.ContactMessage) error {
	if s.FailContact {
		return ErrSendFailed
	}
	s.Contacts = append(s.Contacts, msg)
	return nil
}

// Compile-time interface check
var _ Sender = (*MockSender)(nil)

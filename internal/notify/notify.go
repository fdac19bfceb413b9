// Package notify carries transient user-facing messages. In the browser
// storefront these were auto-dismissing toasts; here they surface as
// structured log events with success/error styling.
package notify

import "github.com/sirupsen/logrus"

// Notifier receives human-readable success/error messages for display.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// LogNotifier emits notifications through logrus.
type LogNotifier struct {
	log logrus.FieldLogger
}

func NewLogNotifier(log logrus.FieldLogger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Success(message string) {
	n.log.WithField("style", "success").Info(message)
}

func (n *LogNotifier) Error(message string) {
	n.log.WithField("style", "error").Warn(message)
}

// Noop discards all notifications.
type Noop struct{}

func (Noop) Success(string) {}
func (Noop) Error(string)   {}

// Compile-time interface checks
var (
	_ Notifier = (*LogNotifier)(nil)
	_ Notifier = Noop{}
)

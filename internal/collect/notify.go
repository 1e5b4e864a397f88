package collect

import (
	"fmt"

	"go.uber.org/zap"
)

// Notification announces one collected item to the host's display layer.
type Notification struct {
	DisplayName string
	Quantity    int
	Day         int
}

// Message returns the HUD text: "Collected {name}", with " x{quantity}" when quantity > 1.
func (n Notification) Message() string {
	msg := fmt.Sprintf("Collected %s", n.DisplayName)
	if n.Quantity > 1 {
		msg += fmt.Sprintf(" x%d", n.Quantity)
	}
	return msg
}

// Notifier receives notifications. Implementations must not block.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function into a Notifier.
type NotifierFunc func(Notification)

// Notify calls f(n).
func (f NotifierFunc) Notify(n Notification) { f(n) }

// LogNotifier is a display sink that writes each notification as a log line.
type LogNotifier struct {
	logger *zap.Logger
}

// NewLogNotifier creates a LogNotifier.
//
// Precondition: logger must be non-nil.
func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger}
}

// Notify implements Notifier.
func (l *LogNotifier) Notify(n Notification) {
	l.logger.Info(n.Message(),
		zap.String("item", n.DisplayName),
		zap.Int("quantity", n.Quantity),
		zap.Int("day", n.Day),
	)
}

// discardNotifier drops every notification.
type discardNotifier struct{}

func (discardNotifier) Notify(Notification) {}

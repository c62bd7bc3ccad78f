package notify

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Dispatcher is the fire-and-forget outbound side of the service: SMS
// confirmations, payment links, and agent voice calls. The menu engine
// never waits on a dispatch result.
type Dispatcher interface {
	SMS(ctx context.Context, phone, message string)
	PaymentLink(ctx context.Context, phone string, amount decimal.Decimal)
	VoiceCall(ctx context.Context, phone string)
}

// LogDispatcher logs every dispatch instead of calling a provider.
type LogDispatcher struct{}

// NewLogDispatcher returns the logging stand-in used outside production.
func NewLogDispatcher() *LogDispatcher {
	return &LogDispatcher{}
}

// SMS logs an outbound text message.
func (d *LogDispatcher) SMS(_ context.Context, phone, message string) {
	log.Printf("[notify] sms to=%s message=%q", phone, message)
}

// PaymentLink logs an outbound payment link with a fresh reference.
func (d *LogDispatcher) PaymentLink(_ context.Context, phone string, amount decimal.Decimal) {
	log.Printf("[notify] payment link to=%s amount=₦%s ref=%s", phone, amount.StringFixed(0), uuid.NewString())
}

// VoiceCall logs an outbound agent call request.
func (d *LogDispatcher) VoiceCall(_ context.Context, phone string) {
	log.Printf("[notify] voice call to=%s ref=%s", phone, uuid.NewString())
}

package gateways

import (
	"context"

	"github.com/daybreakhq/daybreak/pkg/domain"
)

// SMSGateway sends outbound text messages.
type SMSGateway interface {
	SendMessage(ctx context.Context, toNumber, body string) error
}

// PushGateway delivers a web-push payload to a stored subscription.
type PushGateway interface {
	Send(ctx context.Context, sub *domain.PushSubscription, payload []byte) error
}

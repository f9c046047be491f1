package interfaces

import (
	"context"

	"printworks/internal/domain/entities"
)

// IPaymentEventRepository abstracts DynamoDB persistence for the payment
// audit trail.

type IPaymentEventRepository interface {
	Create(ctx context.Context, p entities.PaymentEvent) (entities.PaymentEvent, error)
	ListByRequestID(ctx context.Context, requestID string) ([]entities.PaymentEvent, error)
}

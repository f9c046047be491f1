package interfaces

import (
	"context"
	"errors"

	"printworks/internal/domain/entities"
)

// ErrVersionConflict is returned by Save when the stored record's version no
// longer matches the version the caller read. The usecase surfaces it as a
// stale-state conflict; the caller must re-read and retry.
var ErrVersionConflict = errors.New("request record version conflict")

// ListFilter narrows ListRecords results. Zero fields match everything;
// payment/production filtering is a query-time join over the two
// independent state machines.
type ListFilter struct {
	Status           entities.Status
	Kind             entities.RequestKind
	PaymentStatus    entities.PaymentStatus
	ProductionStatus entities.ProductionStatus
}

// IRequestRepository abstracts DynamoDB persistence for RequestRecord.
//
// Not-found reads return a zero record and a nil error. Save is an atomic
// compare-and-swap on the version attribute: it persists the record with
// version expectedVersion+1 and fails with ErrVersionConflict when another
// writer got there first.

type IRequestRepository interface {
	Create(ctx context.Context, r entities.RequestRecord) (entities.RequestRecord, error)
	GetByID(ctx context.Context, id string) (entities.RequestRecord, error)
	GetByPaymentRef(ctx context.Context, ref string) (entities.RequestRecord, error)
	Save(ctx context.Context, r entities.RequestRecord, expectedVersion int64) (entities.RequestRecord, error)
	ListRecords(ctx context.Context, filter ListFilter) ([]entities.RequestRecord, error)
}

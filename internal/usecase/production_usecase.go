package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"printworks/internal/domain/entities"
	"printworks/internal/domain/production"
	"printworks/internal/usecase/interfaces"
)

// IProductionUseCase drives the manufacturing-stage tracker. Transitions are
// operator-driven; the override flag permits non-monotonic correction and is
// logged distinctly for audit.

type IProductionUseCase interface {
	Advance(ctx context.Context, caller entities.Caller, id string, target entities.ProductionStatus, override bool) (entities.RequestRecord, error)
}

type ProductionUseCase struct {
	repo interfaces.IRequestRepository
}

var _ IProductionUseCase = (*ProductionUseCase)(nil)

func NewProductionUseCase(repo interfaces.IRequestRepository) *ProductionUseCase {
	return &ProductionUseCase{repo: repo}
}

func (u *ProductionUseCase) Advance(ctx context.Context, caller entities.Caller, id string, target entities.ProductionStatus, override bool) (entities.RequestRecord, error) {
	if !caller.Operator() {
		return entities.RequestRecord{}, ErrForbidden
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.RequestRecord{}, ErrInvalidRequestID
	}

	rec, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.RequestRecord{}, err
	}
	if rec.ID == "" {
		return entities.RequestRecord{}, ErrRequestNotFound
	}

	current := rec.ProductionStatus
	if current == "" {
		current = entities.ProductionNotStarted
	}
	// The tracker may not leave not_started until payment settled or the
	// audited no-payment exception applies.
	if current == entities.ProductionNotStarted && !rec.ProductionEligible() {
		log.Printf("[production][usecase] gate closed request_id=%s payment_status=%s", rec.ID, rec.PaymentStatus)
		return entities.RequestRecord{}, production.ErrGuardFailed
	}
	if err := production.Advance(current, target, override); err != nil {
		log.Printf("[production][usecase] transition rejected request_id=%s from=%s to=%s override=%t", rec.ID, current, target, override)
		return entities.RequestRecord{}, err
	}

	if override {
		log.Printf("[production][usecase] AUDIT override request_id=%s operator=%s from=%s to=%s", rec.ID, caller.UserID, current, target)
	}

	rec.ProductionStatus = target
	rec.UpdatedAt = time.Now().UTC()
	saved, err := u.repo.Save(ctx, rec, rec.Version)
	if err != nil {
		if errors.Is(err, interfaces.ErrVersionConflict) {
			return entities.RequestRecord{}, ErrStaleState
		}
		return entities.RequestRecord{}, err
	}
	log.Printf("[production][usecase] stage advanced request_id=%s from=%s to=%s override=%t", saved.ID, current, target, override)
	return saved, nil
}

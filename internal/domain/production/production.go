// Package production holds the manufacturing-stage state machine. It is
// independent of the payment lifecycle except for the gate out of
// not_started.
package production

import (
	"errors"

	"printworks/internal/domain/entities"
)

var (
	ErrGuardFailed  = errors.New("production transition guard failed")
	ErrUnknownStage = errors.New("unknown production stage")
)

// stageOrder defines the strict forward ordering of manufacturing stages.
var stageOrder = []entities.ProductionStatus{
	entities.ProductionNotStarted,
	entities.ProductionDesignInProgress,
	entities.ProductionAwaitingProof,
	entities.ProductionApproved,
	entities.ProductionPrinting,
	entities.ProductionFinishing,
	entities.ProductionQualityCheck,
	entities.ProductionReadyForDispatch,
	entities.ProductionDispatched,
}

func index(s entities.ProductionStatus) (int, bool) {
	for i, st := range stageOrder {
		if st == s {
			return i, true
		}
	}
	return -1, false
}

// Advance validates a move from current to target.
//
// Normal operation is strictly monotonic with no backward skipping; the
// override flag permits non-monotonic correction and callers must log it
// distinctly for audit. dispatched is terminal even under override.
func Advance(current, target entities.ProductionStatus, override bool) error {
	ci, ok := index(current)
	if !ok {
		return ErrUnknownStage
	}
	ti, ok := index(target)
	if !ok {
		return ErrUnknownStage
	}
	if current == entities.ProductionDispatched {
		return ErrGuardFailed
	}
	if override {
		return nil
	}
	if ti != ci+1 {
		return ErrGuardFailed
	}
	return nil
}

// Stages returns the ordered stage list, first to last.
func Stages() []entities.ProductionStatus {
	out := make([]entities.ProductionStatus, len(stageOrder))
	copy(out, stageOrder)
	return out
}

package usecase

import (
	"context"

	"github.com/google/uuid"
)

// UpgradePrompt is the structured signal shown instead of a generic error
// when a plan limit is hit. It is terminal for the submission attempt; no
// retry is automatic.
type UpgradePrompt struct {
	CurrentPlan  string
	UpgradePlan  string
	LimitValue   int
	CurrentCount int
}

// PlanLimitUsecase interprets quota-exceeded rejections from the primary
// entity write.
type PlanLimitUsecase interface {
	// Interpret inspects err for a quota-exceeded rejection. When it is
	// one, the returned prompt carries the current plan, its numeric limit
	// and the current count (taken from the rejection payload, or from the
	// live listing as a fallback); ok is false for every other error.
	Interpret(ctx context.Context, placeID uuid.UUID, err error) (prompt *UpgradePrompt, ok bool)
}

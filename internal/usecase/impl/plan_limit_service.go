package impl

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
	"github.com/cetler74/linkuupapp-sub002/internal/usecase"
)

// planLimitService implements the PlanLimitUsecase interface.
type planLimitService struct {
	employees gateway.EmployeeGateway
	logger    *slog.Logger
}

// NewPlanLimitService is the constructor for planLimitService.
func NewPlanLimitService(employees gateway.EmployeeGateway, logger *slog.Logger) usecase.PlanLimitUsecase {
	return &planLimitService{
		employees: employees,
		logger:    logger,
	}
}

// Interpret turns a quota-exceeded rejection into an upgrade prompt. The
// count comes from the rejection payload when present, then from the live
// employee listing, and falls back to the plan limit itself when both are
// unavailable. Any error that is not a quota rejection is left alone.
func (srv *planLimitService) Interpret(ctx context.Context, placeID uuid.UUID, err error) (*usecase.UpgradePrompt, bool) {
	var apiErr *gateway.APIError
	if !errors.As(err, &apiErr) {
		return nil, false
	}

	if apiErr.StatusCode != http.StatusPaymentRequired {
		return nil, false
	}

	payload, ok := apiErr.QuotaPayload()
	if !ok {
		payload = &gateway.QuotaPayload{}
	}

	plan := entity.NormalizePlan(payload.CurrentPlan)
	limit := plan.EmployeeLimit()

	count := limit
	switch {
	case payload.CurrentCount != nil:
		count = *payload.CurrentCount
	default:
		listed, listErr := srv.employees.ListByPlace(ctx, placeID)
		if listErr != nil {
			srv.logger.Warn("fallback employee count failed", "placeID", placeID, "error", listErr)
		} else {
			count = len(listed)
		}
	}

	srv.logger.Info("plan limit reached", "plan", string(plan), "limit", limit, "count", count)

	return &usecase.UpgradePrompt{
		CurrentPlan:  string(plan),
		UpgradePlan:  payload.UpgradePlan,
		LimitValue:   limit,
		CurrentCount: count,
	}, true
}

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/cetler74/linkuupapp-sub002/internal/domain/entity"
	"github.com/cetler74/linkuupapp-sub002/internal/domain/gateway"
)

// scheduleGateway is the REST implementation of gateway.ScheduleGateway.
type scheduleGateway struct {
	client *Client
}

// NewScheduleGateway is the constructor for scheduleGateway.
func NewScheduleGateway(client *Client) gateway.ScheduleGateway {
	return &scheduleGateway{client: client}
}

func (g *scheduleGateway) Replace(ctx context.Context, employeeID uuid.UUID, schedule entity.WeeklySchedule) error {
	path := fmt.Sprintf("/api/employees/%s/schedule", employeeID)

	return g.client.doJSON(ctx, http.MethodPut, path, schedule, nil)
}

func (g *scheduleGateway) Get(ctx context.Context, employeeID uuid.UUID) (entity.WeeklySchedule, error) {
	var schedule entity.WeeklySchedule
	path := fmt.Sprintf("/api/employees/%s/schedule", employeeID)
	if err := g.client.doJSON(ctx, http.MethodGet, path, nil, &schedule); err != nil {
		return nil, err
	}

	return schedule, nil
}

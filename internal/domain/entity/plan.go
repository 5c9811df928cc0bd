package entity

// Plan is a subscription tier of a place owner. The tier caps how many
// employees a place may have.
type Plan string

const (
	PlanBasic Plan = "basic"
	PlanPro   Plan = "pro"
)

// planEmployeeLimits is the fixed per-plan employee cap.
var planEmployeeLimits = map[Plan]int{
	PlanBasic: 2,
	PlanPro:   5,
}

// EmployeeLimit returns the employee cap for the plan. Unknown or empty plan
// names fall back to the basic tier.
func (p Plan) EmployeeLimit() int {
	if limit, ok := planEmployeeLimits[p]; ok {
		return limit
	}

	return planEmployeeLimits[PlanBasic]
}

// NormalizePlan maps a raw plan name from an API payload to a known Plan,
// defaulting to basic.
func NormalizePlan(raw string) Plan {
	switch Plan(raw) {
	case PlanBasic, PlanPro:
		return Plan(raw)
	default:
		return PlanBasic
	}
}

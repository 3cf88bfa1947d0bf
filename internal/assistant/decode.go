package assistant

import (
	"encoding/json"
	"fmt"

	"github.com/planpilothq/planpilot/internal/domain"
)

// rawPlanResponse stages the untrusted payload so required-field presence
// can be checked before the plan shape is interpreted.
type rawPlanResponse struct {
	UpdatedPlan json.RawMessage `json:"updatedPlan"`
	UserReply   *string         `json:"userReply"`
}

// DecodePlanResponse validates an assistant response body against the
// webhook contract. Both updatedPlan and userReply are required; absence
// of either, or a body that is not the expected shape, is a contract
// violation reported as ErrMalformedResponse. The decoded plan is the raw
// proposed shape — structurally incomplete plans are legal here and are
// repaired later by the normalizer.
func DecodePlanResponse(body []byte) (*PlanMessageResponse, error) {
	var raw rawPlanResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if len(raw.UpdatedPlan) == 0 || string(raw.UpdatedPlan) == "null" {
		return nil, fmt.Errorf("%w: missing updatedPlan", ErrMalformedResponse)
	}
	if raw.UserReply == nil {
		return nil, fmt.Errorf("%w: missing userReply", ErrMalformedResponse)
	}

	var plan domain.EventPlan
	if err := json.Unmarshal(raw.UpdatedPlan, &plan); err != nil {
		return nil, fmt.Errorf("%w: updatedPlan: %v", ErrMalformedResponse, err)
	}

	return &PlanMessageResponse{
		UpdatedPlan: &plan,
		UserReply:   *raw.UserReply,
	}, nil
}

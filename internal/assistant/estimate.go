package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/planpilothq/planpilot/internal/budget"
	"github.com/planpilothq/planpilot/internal/domain"
)

// EstimateClient talks to the external budget estimate service. It is an
// optional alternate path; when no endpoint is configured the engine
// derives estimates locally from the plan's decision modules.
type EstimateClient interface {
	FetchEstimate(ctx context.Context, message string, plan *domain.EventPlan) (*budget.Estimate, error)
}

type estimateClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewEstimateClient creates an EstimateClient for cfg.EstimateEndpoint.
func NewEstimateClient(cfg Config, observer Observer) EstimateClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &estimateClient{
		cfg:      cfg,
		http:     &http.Client{},
		observer: observer,
	}
}

func (c *estimateClient) FetchEstimate(ctx context.Context, message string, plan *domain.EventPlan) (*budget.Estimate, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	projected, err := projectPlanForEstimate(plan)
	if err != nil {
		return nil, fmt.Errorf("projecting plan: %w", err)
	}

	payload := map[string]any{
		"user_message": message,
		"plan":         projected,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.EstimateEndpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	est, err := c.doRequest(httpReq)

	event := CallEvent{
		Op:        "budget_estimate",
		Endpoint:  c.cfg.EstimateEndpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	}
	c.observer.OnCallComplete(event)

	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		return nil, err
	}
	return est, nil
}

func (c *estimateClient) doRequest(req *http.Request) (*budget.Estimate, error) {
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, truncate(body, 200))
	}

	var est budget.Estimate
	if err := json.Unmarshal(body, &est); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	switch est.Status {
	case budget.EstimatePlausible, budget.EstimateOverBudget, budget.EstimateNoBudget:
	default:
		return nil, fmt.Errorf("%w: unknown estimate status %q", ErrMalformedResponse, est.Status)
	}
	return &est, nil
}

// projectPlanForEstimate bridges an impedance mismatch: the estimate
// service reads the spending ceiling from eventMetadata.budget.total, not
// from budget.targetAmount where the plan keeps it.
func projectPlanForEstimate(plan *domain.EventPlan) (map[string]any, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	meta, ok := m["eventMetadata"].(map[string]any)
	if !ok {
		meta = map[string]any{}
		m["eventMetadata"] = meta
	}
	meta["budget"] = map[string]any{"total": plan.Budget.TargetAmount}
	return m, nil
}

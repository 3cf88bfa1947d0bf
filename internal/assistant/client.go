// Package assistant is the HTTP boundary to the external planning
// collaborators: the workflow-automation webhook that proposes plan
// updates, and the optional budget estimate service. Both are consumed
// capabilities; all planning intelligence lives behind them.
package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/planpilothq/planpilot/internal/domain"
)

// PlanMessageRequest is the JSON body posted to the planning webhook.
type PlanMessageRequest struct {
	UserMessage string            `json:"userMessage"`
	CurrentPlan *domain.EventPlan `json:"currentPlan"`
	CurrentDate string            `json:"currentDate"`
}

// PlanMessageResponse is the decoded assistant reply. UpdatedPlan has been
// through the tagged decode only; callers still normalize it.
type PlanMessageResponse struct {
	UpdatedPlan *domain.EventPlan
	UserReply   string
}

// Client talks to the planning assistant webhook.
type Client interface {
	// SendPlanMessage posts the user message and current plan, returning
	// the assistant's proposed plan and natural-language reply.
	SendPlanMessage(ctx context.Context, message string, plan *domain.EventPlan) (*PlanMessageResponse, error)

	// Available checks whether the webhook endpoint is reachable.
	Available(ctx context.Context) bool
}

type webhookClient struct {
	cfg      Config
	http     *http.Client
	observer Observer
}

// NewClient creates a Client for the configured webhook endpoint.
func NewClient(cfg Config, observer Observer) Client {
	if observer == nil {
		observer = NoopObserver{}
	}
	return &webhookClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
		observer: observer,
	}
}

func (c *webhookClient) SendPlanMessage(ctx context.Context, message string, plan *domain.EventPlan) (*PlanMessageResponse, error) {
	start := time.Now()

	ctx, cancel := context.WithTimeout(ctx, time.Duration(c.cfg.TimeoutMs)*time.Millisecond)
	defer cancel()

	body := PlanMessageRequest{
		UserMessage: message,
		CurrentPlan: plan,
		CurrentDate: time.Now().UTC().Format(time.RFC3339),
	}

	var lastErr error
	attempts := 1 + c.cfg.MaxRetries

	for i := 0; i < attempts; i++ {
		resp, err := c.doRequest(ctx, body)
		if err == nil {
			c.observer.OnCallComplete(CallEvent{
				Op:        "plan_message",
				Endpoint:  c.cfg.Endpoint,
				LatencyMs: time.Since(start).Milliseconds(),
				Success:   true,
			})
			return resp, nil
		}
		lastErr = err

		// A malformed body will not improve on retry, and a canceled
		// context cannot be retried.
		if isMalformed(err) || ctx.Err() != nil {
			break
		}
	}

	c.observer.OnCallComplete(CallEvent{
		Op:        "plan_message",
		Endpoint:  c.cfg.Endpoint,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   false,
		ErrorCode: errorCode(lastErr),
	})

	if ctx.Err() != nil {
		return nil, ErrTimeout
	}
	if isMalformed(lastErr) {
		return nil, lastErr
	}
	if isConnectionError(lastErr) {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, lastErr)
	}
	// lastErr may already carry ErrUnavailable (non-2xx status); keep it
	// visible to errors.Is alongside the retry sentinel.
	return nil, fmt.Errorf("%w: %w", ErrRetryExhausted, lastErr)
}

func (c *webhookClient) doRequest(ctx context.Context, body PlanMessageRequest) (*PlanMessageResponse, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d: %s", ErrUnavailable, httpResp.StatusCode, truncate(respBody, 200))
	}

	return DecodePlanResponse(respBody)
}

func (c *webhookClient) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.cfg.Endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}

func isTimeout(err error) bool     { return errors.Is(err, ErrTimeout) || errors.Is(err, context.DeadlineExceeded) }
func isUnavailable(err error) bool { return errors.Is(err, ErrUnavailable) }
func isMalformed(err error) bool   { return errors.Is(err, ErrMalformedResponse) }

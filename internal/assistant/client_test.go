package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/planpilothq/planpilot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(endpoint string) Config {
	cfg := DefaultConfig()
	cfg.Endpoint = endpoint
	cfg.MaxRetries = 0
	cfg.TimeoutMs = 2000
	return cfg
}

func TestSendPlanMessage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req PlanMessageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "plan my party", req.UserMessage)
		require.NotNil(t, req.CurrentPlan)
		assert.Equal(t, "abc", req.CurrentPlan.PlanID)
		assert.NotEmpty(t, req.CurrentDate)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"updatedPlan": map[string]any{
				"planId":        "abc",
				"eventMetadata": map[string]any{"title": "Party", "guestCount": 20},
			},
			"userReply": "Here's an updated plan.",
		})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	resp, err := client.SendPlanMessage(context.Background(), "plan my party", domain.NewEmptyPlan("abc"))
	require.NoError(t, err)

	assert.Equal(t, "Here's an updated plan.", resp.UserReply)
	require.NotNil(t, resp.UpdatedPlan)
	assert.Equal(t, "abc", resp.UpdatedPlan.PlanID)
	assert.Equal(t, 20, resp.UpdatedPlan.EventMetadata.GuestCount)
}

func TestSendPlanMessage_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow crashed", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.SendPlanMessage(context.Background(), "hi", domain.NewEmptyPlan(""))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorIs(t, err, ErrRetryExhausted)
}

func TestSendPlanMessage_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL), NoopObserver{})
	_, err := client.SendPlanMessage(context.Background(), "hi", domain.NewEmptyPlan(""))
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestSendPlanMessage_MissingRequiredFields(t *testing.T) {
	cases := map[string]map[string]any{
		"no updatedPlan": {"userReply": "hello"},
		"no userReply":   {"updatedPlan": map[string]any{"planId": "x"}},
		"null plan":      {"updatedPlan": nil, "userReply": "hello"},
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(body)
			}))
			defer srv.Close()

			client := NewClient(testConfig(srv.URL), NoopObserver{})
			_, err := client.SendPlanMessage(context.Background(), "hi", domain.NewEmptyPlan(""))
			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestSendPlanMessage_RetriesTransportFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "busy", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{
			"updatedPlan": map[string]any{"planId": "abc"},
			"userReply":   "ok",
		})
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 1
	client := NewClient(cfg, NoopObserver{})

	resp, err := client.SendPlanMessage(context.Background(), "hi", domain.NewEmptyPlan("abc"))
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.UserReply)
	assert.Equal(t, int32(2), calls.Load())
}

func TestSendPlanMessage_NoRetryOnMalformed(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("{}"))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.MaxRetries = 3
	client := NewClient(cfg, NoopObserver{})

	_, err := client.SendPlanMessage(context.Background(), "hi", domain.NewEmptyPlan(""))
	assert.ErrorIs(t, err, ErrMalformedResponse)
	assert.Equal(t, int32(1), calls.Load(), "a malformed body will not improve on retry")
}

type recordingObserver struct {
	events []CallEvent
}

func (o *recordingObserver) OnCallComplete(e CallEvent) { o.events = append(o.events, e) }

func TestSendPlanMessage_ObserverSeesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	obs := &recordingObserver{}
	client := NewClient(testConfig(srv.URL), obs)
	_, err := client.SendPlanMessage(context.Background(), "hi", domain.NewEmptyPlan(""))
	require.Error(t, err)

	require.Len(t, obs.events, 1)
	assert.Equal(t, "plan_message", obs.events[0].Op)
	assert.False(t, obs.events[0].Success)
	assert.Equal(t, "UNAVAILABLE", obs.events[0].ErrorCode)
}

func TestAvailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	client := NewClient(testConfig(srv.URL), NoopObserver{})
	assert.True(t, client.Available(context.Background()))

	srv.Close()
	assert.False(t, client.Available(context.Background()))
}

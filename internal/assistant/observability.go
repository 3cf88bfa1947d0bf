package assistant

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single webhook invocation.
type CallEvent struct {
	Op        string // "plan_message" or "budget_estimate"
	Endpoint  string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer receives events about webhook calls for logging and metrics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err:" + event.ErrorCode
	}
	fmt.Fprintf(o.w, "[%s] assistant_call op=%s endpoint=%s latency_ms=%d status=%s\n",
		ts, event.Op, event.Endpoint, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

func errorCode(err error) string {
	switch {
	case err == nil:
		return ""
	case isTimeout(err):
		return "TIMEOUT"
	case isUnavailable(err):
		return "UNAVAILABLE"
	case isMalformed(err):
		return "MALFORMED"
	default:
		return "UNKNOWN"
	}
}

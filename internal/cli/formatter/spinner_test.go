package formatter

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *lockedBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestStartSpinner_StopIsIdempotent(t *testing.T) {
	var buf lockedBuffer
	stop := startSpinner(&buf, "asking")

	time.Sleep(3 * spinnerInterval)
	stop()
	stop()

	out := buf.String()
	assert.Contains(t, out, "asking")
	assert.Contains(t, out, "\033[K", "line cleared on stop")
}

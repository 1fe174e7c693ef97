package libemit

import (
	"bytes"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := NewWriterLogger(&buf).(*writerLogger)
	l.now = func() time.Time { return time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC) }

	l.WithField("b", 2).WithField("a", 1).Infof("hello %s", "world")
	l.Errorln("failed")
	l.Debug("plain")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "[2024-05-01 10:30:00] INFO [a=1, b=2]: hello world", lines[0])
	assert.Equal(t, "[2024-05-01 10:30:00] ERROR: failed", lines[1])
	assert.Equal(t, "[2024-05-01 10:30:00] DEBUG: plain", lines[2])
}

func TestWriterLogger_WithFieldDoesNotLeak(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := NewWriterLogger(&buf)
	base.WithField("scope", "child").Warn("child")
	base.Warn("parent")

	out := buf.String()
	assert.Contains(t, out, "WARN [scope=child]: child")
	assert.Contains(t, out, "WARN: parent")
}

func TestSlogLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	emitter := NewEventEmitter[string, int](WithLogger(NewSlogLogger(slog.New(handler))), WithName("billing"))

	listener, _ := emitter.OnFunc("invoice.paid", func(int) { panic("boom") })
	err := emitter.SafeEmit("invoice.paid", 1)
	require.Error(t, err)

	out := buf.String()
	assert.Contains(t, out, "level=DEBUG")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "emitter=billing")
	assert.Contains(t, out, "event=invoice.paid")
	assert.Contains(t, out, "listener failed")
	assert.Contains(t, out, "listener="+itoa(listener.ID()))
}

func TestNoopLogger(t *testing.T) {
	t.Parallel()

	l := NewNoopLogger()
	assert.NotPanics(t, func() {
		l.WithField("k", "v").Errorf("%s", "nothing")
		l.Infoln("nothing")
	})
}

func itoa(n uint64) string {
	return strconv.FormatUint(n, 10)
}

package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func TestSpinnerDrawsAndClears(t *testing.T) {
	var buf bytes.Buffer
	s := newSpinner(context.Background(), &buf, "Rendering factory.toml...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()
	s.Stop()

	out := buf.String()
	if !strings.Contains(out, "Rendering factory.toml...") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.HasSuffix(out, "\r\x1b[K") {
		t.Errorf("line not cleared: %q", out)
	}
	assertStopped(t, s)
}

func TestSpinnerFollowsContext(t *testing.T) {
	tests := []struct {
		name string
		ctx  func() (context.Context, context.CancelFunc)
	}{
		{"cancel", func() (context.Context, context.CancelFunc) {
			return context.WithCancel(context.Background())
		}},
		{"timeout", func() (context.Context, context.CancelFunc) {
			return context.WithTimeout(context.Background(), 20*time.Millisecond)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, cancel := tt.ctx()
			var buf bytes.Buffer
			s := newSpinner(ctx, &buf, "Loading workspace...")
			s.Start()
			cancel()
			assertStopped(t, s)
			s.Stop()
		})
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s := newSpinner(context.Background(), &bytes.Buffer{}, "idle")
	s.Stop()
	if s.ctx.Err() == nil {
		t.Error("Stop before Start left the context running")
	}
}

// assertStopped waits for the animation goroutine of a started spinner.
func assertStopped(t *testing.T, s *spinner) {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("spinner still running")
	}
}

package cli

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// spinner animates a status line on w until it is stopped or its context
// ends.
type spinner struct {
	w       io.Writer
	message string
	ctx     context.Context
	cancel  context.CancelFunc
	done    chan struct{}

	mu      sync.Mutex
	started time.Time
	once    sync.Once
}

func newSpinner(ctx context.Context, w io.Writer, message string) *spinner {
	ctx, cancel := context.WithCancel(ctx)
	return &spinner{w: w, message: message, ctx: ctx, cancel: cancel, done: make(chan struct{})}
}

// Start begins the animation in a separate goroutine.
func (s *spinner) Start() {
	s.mu.Lock()
	s.started = time.Now()
	s.mu.Unlock()
	go s.run()
}

func (s *spinner) run() {
	defer close(s.done)
	ticker := time.NewTicker(80 * time.Millisecond)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-s.ctx.Done():
			s.write("\r\x1b[K")
			return
		case <-ticker.C:
			elapsed := time.Since(s.startTime()).Truncate(100 * time.Millisecond)
			s.write(fmt.Sprintf("\r%s %s %s",
				styleIconSpinner.Render(spinnerFrames[i%len(spinnerFrames)]),
				StyleDim.Render(s.message),
				StyleDim.Render(elapsed.String())))
		}
	}
}

func (s *spinner) startTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *spinner) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	io.WriteString(s.w, text)
}

// Stop ends the animation and clears the line. It is safe to call more than
// once, and before Start.
func (s *spinner) Stop() {
	s.once.Do(func() {
		s.cancel()
		if !s.startTime().IsZero() {
			<-s.done
		}
	})
}

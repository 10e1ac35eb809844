package studyfind

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultDebounce is the pause after the last input change before a search
// is submitted.
const DefaultDebounce = 225 * time.Millisecond

// Submitter coalesces rapid consecutive search submissions. Each Submit
// schedules the callback after the debounce interval, cancelling any pending
// one, and returns a token identifying the invocation. Results arriving for
// a token that is no longer current must be discarded by the caller.
type Submitter struct {
	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	latest string
}

// NewSubmitter creates a Submitter. A non-positive delay takes the default.
func NewSubmitter(delay time.Duration) *Submitter {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Submitter{delay: delay}
}

// Submit schedules fn to run after the debounce interval, replacing any
// pending submission. fn receives the invocation token and runs on a timer
// goroutine.
func (s *Submitter) Submit(fn func(token string)) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
	}

	token := uuid.NewString()
	s.latest = token
	s.timer = time.AfterFunc(s.delay, func() {
		if s.IsCurrent(token) {
			fn(token)
		}
	})
	return token
}

// Flush fires the pending submission immediately, if any.
func (s *Submitter) Flush() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil && s.timer.Stop() {
		s.timer.Reset(0)
	}
}

// Stop cancels the pending submission and invalidates all tokens.
func (s *Submitter) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.latest = ""
}

// Latest returns the most recently issued token, or "" after Stop.
func (s *Submitter) Latest() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest
}

// IsCurrent reports whether token belongs to the most recent submission.
func (s *Submitter) IsCurrent(token string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return token != "" && token == s.latest
}

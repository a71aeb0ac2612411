// Package packaging runs the simulated build that drives the progress
// dialog. No files are read or written.
package packaging

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/packdeck/internal/logger"
)

// DefaultStepDelay is the base delay between steps.
const DefaultStepDelay = time.Second

// drainGrace bounds how long a cancelled run waits for the reader to take
// the final event before closing the channel without it.
const drainGrace = 250 * time.Millisecond

// Step is one stage of a run.
type Step struct {
	StatusKey string
	Percent   int
}

// Steps is the fixed stage sequence.
var Steps = []Step{
	{StatusKey: "packaging_analyzing", Percent: 10},
	{StatusKey: "packaging_optimizing", Percent: 30},
	{StatusKey: "packaging_compiling", Percent: 60},
	{StatusKey: "packaging_bundling", Percent: 85},
	{StatusKey: "packaging_finalizing", Percent: 95},
	{StatusKey: "packaging_complete", Percent: 100},
}

// Event reports progress. The last event on a channel has Done or Cancelled
// set.
type Event struct {
	Step      int
	StatusKey string
	Percent   int
	Done      bool
	Cancelled bool
}

// Simulator produces timed progress events.
type Simulator struct {
	delay time.Duration
	log   *logger.Logger
}

// Option customises a Simulator.
type Option func(*Simulator)

// WithStepDelay sets the base delay. Zero runs without waiting.
func WithStepDelay(d time.Duration) Option {
	return func(s *Simulator) {
		if d >= 0 {
			s.delay = d
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Simulator) {
		s.log = log
	}
}

// New returns a simulator with DefaultStepDelay.
func New(opts ...Option) *Simulator {
	s := &Simulator{delay: DefaultStepDelay}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Delay returns the wait before step i: base plus a fifth of base per step.
func (s *Simulator) Delay(i int) time.Duration {
	return s.delay + time.Duration(i)*s.delay/5
}

// Start runs the sequence on a new goroutine. Events arrive on the returned
// channel, which is closed after the final event. Cancelling ctx ends the run
// with a Cancelled event.
func (s *Simulator) Start(ctx context.Context) <-chan Event {
	events := make(chan Event, 1)
	go s.run(ctx, events)
	return events
}

func (s *Simulator) run(ctx context.Context, events chan<- Event) {
	defer close(events)
	start := time.Now()
	s.log.Info("packaging started")

	for i, step := range Steps {
		if !s.wait(ctx, s.Delay(i)) {
			s.cancelled(events, i, start)
			return
		}
		ev := Event{Step: i, StatusKey: step.StatusKey, Percent: step.Percent}
		select {
		case events <- ev:
		case <-ctx.Done():
			s.cancelled(events, i, start)
			return
		}
		s.log.WithFields(map[string]any{"step": step.StatusKey, "percent": step.Percent}).Debug("packaging progress")
	}

	last := Steps[len(Steps)-1]
	select {
	case events <- Event{Step: len(Steps) - 1, StatusKey: last.StatusKey, Percent: last.Percent, Done: true}:
	case <-ctx.Done():
		s.cancelled(events, len(Steps)-1, start)
		return
	}
	s.log.With("elapsed", time.Since(start).String()).Info("packaging finished")
}

func (s *Simulator) wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		select {
		case <-ctx.Done():
			return false
		default:
			return true
		}
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}

// cancelled reports the cancellation if the reader takes it within
// drainGrace. A reader that has gone away only sees the channel close.
func (s *Simulator) cancelled(events chan<- Event, step int, start time.Time) {
	timer := time.NewTimer(drainGrace)
	defer timer.Stop()
	select {
	case events <- Event{Step: step, StatusKey: "packaging_cancelled_status", Cancelled: true}:
	case <-timer.C:
		s.log.With("step", step).Debug("cancellation event dropped")
	}
	s.log.WithFields(map[string]any{"step": step, "elapsed": time.Since(start).String()}).Warn("packaging cancelled")
}

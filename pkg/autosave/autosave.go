// Package autosave runs every save of the live library through one worker
// goroutine. Timer ticks and explicit save requests share the worker, so two
// saves never overlap, and changing the interval replaces the ticker inside
// the same loop.
package autosave

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/introspection"
	"github.com/aretw0/lifecycle"

	"github.com/aretw0/marsnote/pkg/core"
)

// ErrStopped is returned by SaveNow once the worker has exited.
var ErrStopped = errors.New("auto-save worker stopped")

// Saver persists the live library.
type Saver interface {
	Save(ctx context.Context) error
}

// SaverFunc adapts a function to Saver.
type SaverFunc func(ctx context.Context) error

func (f SaverFunc) Save(ctx context.Context) error { return f(ctx) }

// Clamp bounds an interval in minutes to [0, core.MaxAutoSave].
func Clamp(minutes int) int {
	return max(0, min(minutes, core.MaxAutoSave))
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithUnit sets the length of one interval step. Defaults to a minute; tests
// use milliseconds.
func WithUnit(unit time.Duration) Option {
	return func(s *Scheduler) {
		if unit > 0 {
			s.unit = unit
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) {
		if logger != nil {
			s.logger = logger
		}
	}
}

type request struct {
	ctx  context.Context
	done chan error
}

// Scheduler owns the save worker.
type Scheduler struct {
	saver  Saver
	unit   time.Duration
	logger *slog.Logger

	requests  chan request
	intervals chan int
	stopped   chan struct{}

	mu        sync.RWMutex
	running   bool
	interval  int
	ticks     int
	saves     int
	failures  int
	lastSave  *time.Time
	lastError string
}

// New creates a stopped scheduler.
func New(saver Saver, opts ...Option) *Scheduler {
	s := &Scheduler{
		saver:     saver,
		unit:      time.Minute,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		requests:  make(chan request),
		intervals: make(chan int),
		stopped:   make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start launches the worker with the given interval in minutes. Zero keeps
// the timer off; explicit saves still go through the worker. The worker stops
// when ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context, minutes int) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("auto-save worker already started")
	}
	s.running = true
	s.interval = Clamp(minutes)
	initial := s.interval
	s.mu.Unlock()

	lifecycle.Go(ctx, func(ctx context.Context) error {
		return s.run(ctx, initial)
	}, lifecycle.WithErrorHandler(func(err error) {
		s.logger.Error("auto-save worker failed", "error", err)
	}))
	return nil
}

// Done is closed when the worker has exited.
func (s *Scheduler) Done() <-chan struct{} { return s.stopped }

// Interval returns the current interval in minutes.
func (s *Scheduler) Interval() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.interval
}

// SetInterval changes the timer. The old ticker is stopped before the new one
// starts, so no tick of the old interval fires afterwards.
func (s *Scheduler) SetInterval(minutes int) {
	minutes = Clamp(minutes)

	s.mu.Lock()
	s.interval = minutes
	running := s.running
	s.mu.Unlock()

	if !running {
		return
	}
	select {
	case s.intervals <- minutes:
	case <-s.stopped:
	}
}

// SaveNow saves through the worker and waits for the result. Before Start it
// calls the saver directly.
func (s *Scheduler) SaveNow(ctx context.Context) error {
	s.mu.RLock()
	running := s.running
	s.mu.RUnlock()
	if !running {
		return s.saver.Save(ctx)
	}

	req := request{ctx: ctx, done: make(chan error, 1)}
	select {
	case s.requests <- req:
	case <-s.stopped:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) run(ctx context.Context, minutes int) error {
	defer close(s.stopped)

	var ticker *time.Ticker
	var tick <-chan time.Time
	reset := func(minutes int) {
		if ticker != nil {
			ticker.Stop()
			ticker, tick = nil, nil
		}
		if minutes > 0 {
			ticker = time.NewTicker(time.Duration(minutes) * s.unit)
			tick = ticker.C
		}
		s.logger.Debug("auto-save interval", "interval", minutes)
	}
	reset(minutes)
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case m := <-s.intervals:
			reset(m)

		case <-tick:
			s.mu.Lock()
			s.ticks++
			s.mu.Unlock()
			if err := s.save(ctx); err != nil {
				s.logger.Error("auto-save failed", "error", err)
			}

		case req := <-s.requests:
			req.done <- s.save(req.ctx)
		}
	}
}

func (s *Scheduler) save(ctx context.Context) error {
	err := s.saver.Save(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.failures++
		s.lastError = err.Error()
		return err
	}
	now := time.Now()
	s.saves++
	s.lastSave = &now
	s.lastError = ""
	return nil
}

// SchedulerState exposes internal state for observability.
type SchedulerState struct {
	Running   bool       `json:"running"`
	Interval  int        `json:"interval_minutes"`
	Ticks     int        `json:"ticks"`
	Saves     int        `json:"saves"`
	Failures  int        `json:"failures"`
	LastSave  *time.Time `json:"last_save,omitempty"`
	LastError string     `json:"last_error,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Scheduler) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	running := s.running
	select {
	case <-s.stopped:
		running = false
	default:
	}

	return SchedulerState{
		Running:   running,
		Interval:  s.interval,
		Ticks:     s.ticks,
		Saves:     s.saves,
		Failures:  s.failures,
		LastSave:  s.lastSave,
		LastError: s.lastError,
	}
}

// ComponentType implements introspection.Component.
func (s *Scheduler) ComponentType() string {
	return "autosave"
}

var _ introspection.Introspectable = (*Scheduler)(nil)
var _ introspection.Component = (*Scheduler)(nil)

// Package viewmodel holds per-screen state. Every state write happens on a
// dispatch.Queue; network work runs on goroutines owned by the screen and is
// applied back on the queue only while its load is still the latest one.
package viewmodel

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/sourcegraph/conc"
	"go.opentelemetry.io/otel/codes"

	"github.com/riskibarqy/matchvision/internal/platform/dispatch"
	"github.com/riskibarqy/matchvision/internal/platform/logging"
	"github.com/riskibarqy/matchvision/internal/usecase"
)

// Status is shared by every screen state.
type Status struct {
	Loading bool   `json:"loading"`
	Err     string `json:"error,omitempty"`

	cause error
}

func (s *Status) start() {
	s.Loading = true
	s.Err = ""
	s.cause = nil
}

func (s *Status) finish(err error) {
	s.Loading = false
	s.Err = usecase.Describe(err)
	s.cause = err
}

// Cause is the error behind Err, nil when the last load succeeded.
func (s Status) Cause() error {
	return s.cause
}

// ticket identifies one load of one slot. A completion holding an outdated
// ticket is dropped.
type ticket struct {
	slot string
	n    uint64
}

const mainSlot = "main"

type screen[S any] struct {
	name   string
	queue  *dispatch.Queue
	logger *logging.Logger

	ctx    context.Context
	cancel context.CancelFunc
	wg     conc.WaitGroup
	closed atomic.Bool

	genMu sync.Mutex
	gens  map[string]uint64

	// state is only touched from tasks running on queue.
	state S
}

func newScreen[S any](ctx context.Context, name string, queue *dispatch.Queue, logger *logging.Logger) *screen[S] {
	if ctx == nil {
		ctx = context.Background()
	}
	if logger == nil {
		logger = logging.Default()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &screen[S]{
		name:   name,
		queue:  queue,
		logger: logger.Named(name),
		ctx:    ctx,
		cancel: cancel,
		gens:   make(map[string]uint64),
	}
}

// begin invalidates earlier loads of slot and schedules reset.
func (s *screen[S]) begin(slot string, reset func(*S)) ticket {
	s.genMu.Lock()
	s.gens[slot]++
	t := ticket{slot: slot, n: s.gens[slot]}
	s.genMu.Unlock()

	if reset != nil {
		s.post(t, reset)
	}
	return t
}

func (s *screen[S]) current(t ticket) bool {
	if s.closed.Load() {
		return false
	}
	s.genMu.Lock()
	defer s.genMu.Unlock()
	return s.gens[t.slot] == t.n
}

func (s *screen[S]) post(t ticket, fn func(*S)) {
	err := s.queue.Post(func() {
		if s.current(t) {
			fn(&s.state)
		}
	})
	if err != nil {
		s.logger.Warn("state update dropped", "slot", t.slot, "error", err)
	}
}

// apply runs fn on the queue and waits for it. Must not be called from a
// queue task.
func (s *screen[S]) apply(t ticket, fn func(*S)) {
	err := s.queue.Call(func() {
		if s.current(t) {
			fn(&s.state)
		}
	})
	if err != nil {
		s.logger.Warn("completion dropped", "slot", t.slot, "error", err)
	}
}

// launch runs fetch off the queue and hands its result to done on the queue.
func launch[S, T any](s *screen[S], t ticket, op string, fetch func(context.Context) (T, error), done func(*S, T, error)) {
	s.wg.Go(func() {
		ctx, span := startViewModelSpan(s.ctx, s.name+"."+op)
		value, err := fetch(ctx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			s.logger.WarnContext(ctx, "load failed", "op", op, "error", err)
		}
		span.End()

		s.apply(t, func(state *S) {
			done(state, value, err)
		})
	})
}

func (s *screen[S]) read(fn func(S)) {
	if err := s.queue.Call(func() { fn(s.state) }); err != nil {
		s.logger.Warn("state read failed", "error", err)
	}
}

// Wait blocks until every in-flight load has been applied or dropped.
func (s *screen[S]) Wait() {
	s.wg.Wait()
}

// Close discards the screen. Loads still in flight are cancelled and their
// completions become no-ops.
func (s *screen[S]) Close() {
	s.closed.Store(true)
	s.cancel()
}

// Package dispatch provides the single execution context on which screen
// state is mutated. Tasks posted to a Queue run one at a time, in post order.
package dispatch

import (
	"sync"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"

	"github.com/riskibarqy/matchvision/internal/platform/logging"
)

var ErrClosed = crerr.New("dispatch queue closed")

// Queue serializes tasks onto one ants worker. Posting never blocks on the
// task itself, so tasks may post follow-up tasks.
type Queue struct {
	pool   *ants.Pool
	logger *logging.Logger

	mu      sync.Mutex
	pending []func()
	running bool
	closed  bool
}

func NewQueue(logger *logging.Logger) (*Queue, error) {
	if logger == nil {
		logger = logging.Default()
	}

	q := &Queue{logger: logger}
	pool, err := ants.NewPool(1, ants.WithPanicHandler(q.recoverTask))
	if err != nil {
		return nil, crerr.Wrap(err, "create dispatch pool")
	}
	q.pool = pool
	return q, nil
}

// Post schedules fn and returns immediately.
func (q *Queue) Post(fn func()) error {
	if fn == nil {
		return nil
	}

	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return ErrClosed
	}
	q.pending = append(q.pending, fn)
	if q.running {
		q.mu.Unlock()
		return nil
	}
	q.running = true
	q.mu.Unlock()

	if err := q.pool.Submit(q.drain); err != nil {
		q.mu.Lock()
		q.running = false
		q.mu.Unlock()
		return crerr.Wrap(err, "submit dispatch drain")
	}
	return nil
}

// Call posts fn and blocks until it has run. Calling it from a task on the
// same queue deadlocks.
func (q *Queue) Call(fn func()) error {
	done := make(chan struct{})
	err := q.Post(func() {
		defer close(done)
		fn()
	})
	if err != nil {
		return err
	}
	<-done
	return nil
}

// Release stops accepting tasks and waits for queued ones to finish.
func (q *Queue) Release(timeout time.Duration) error {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()

	if err := q.pool.ReleaseTimeout(timeout); err != nil {
		return crerr.Wrap(err, "release dispatch pool")
	}
	return nil
}

func (q *Queue) drain() {
	for {
		q.mu.Lock()
		if len(q.pending) == 0 {
			q.running = false
			q.mu.Unlock()
			return
		}
		task := q.pending[0]
		q.pending[0] = nil
		q.pending = q.pending[1:]
		q.mu.Unlock()

		q.run(task)
	}
}

func (q *Queue) run(task func()) {
	defer func() {
		if r := recover(); r != nil {
			q.recoverTask(r)
		}
	}()
	task()
}

func (q *Queue) recoverTask(r any) {
	q.logger.Error("dispatch task panicked", "panic", r)
}

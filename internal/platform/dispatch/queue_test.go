package dispatch

import (
	"errors"
	"sync"
	"testing"
	"time"
)

func TestQueue_RunsTasksInPostOrder(t *testing.T) {
	q, err := NewQueue(nil)
	if err != nil {
		t.Fatalf("new queue: %v", err)
	}
	defer func() { _ = q.Release(time.Second) }()

	var got []int
	for i := 0; i < 100; i++ {
		i := i
		if err := q.Post(func() { got = append(got, i) }); err != nil {
			t.Fatalf("post %d: %v", i, err)
		}
	}
	if err := q.Call(func() {}); err != nil {
		t.Fatalf("call: %v", err)
	}

	if len(got) != 100 {
		t.Fatalf("expected 100 tasks, got %d", len(got))
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("expected task %d at position %d, got %d", i, i, v)
		}
	}
}

func TestQueue_TaskCanPostFollowUp(t *testing.T) {
	q, err := NewQueue(nil)
	if err != nil {
		t.Fatalf("new queue: %v", err)
	}
	defer func() { _ = q.Release(time.Second) }()

	var wg sync.WaitGroup
	wg.Add(1)
	order := make([]string, 0, 2)
	_ = q.Post(func() {
		order = append(order, "outer")
		_ = q.Post(func() {
			order = append(order, "inner")
			wg.Done()
		})
	})
	wg.Wait()

	var snapshot []string
	_ = q.Call(func() { snapshot = append(snapshot, order...) })
	if len(snapshot) != 2 || snapshot[0] != "outer" || snapshot[1] != "inner" {
		t.Fatalf("unexpected order: %v", snapshot)
	}
}

func TestQueue_PanicDoesNotStopQueue(t *testing.T) {
	q, err := NewQueue(nil)
	if err != nil {
		t.Fatalf("new queue: %v", err)
	}
	defer func() { _ = q.Release(time.Second) }()

	_ = q.Post(func() { panic("boom") })

	ran := false
	if err := q.Call(func() { ran = true }); err != nil {
		t.Fatalf("call after panic: %v", err)
	}
	if !ran {
		t.Fatalf("expected task after panic to run")
	}
}

func TestQueue_PostAfterRelease(t *testing.T) {
	q, err := NewQueue(nil)
	if err != nil {
		t.Fatalf("new queue: %v", err)
	}
	if err := q.Release(time.Second); err != nil {
		t.Fatalf("release: %v", err)
	}
	if err := q.Post(func() {}); !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
}

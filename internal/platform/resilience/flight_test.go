package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestFlight_DoChan(t *testing.T) {
	var f Flight[[]byte]
	var counter int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			res := <-f.DoChan("/fixtures?date=2024-03-01", func() ([]byte, error) {
				atomic.AddInt32(&counter, 1)
				time.Sleep(20 * time.Millisecond)
				return []byte("ok"), nil
			})
			if res.Err != nil {
				t.Errorf("flight call failed: %v", res.Err)
			}
			if string(res.Val) != "ok" {
				t.Errorf("unexpected payload %q", res.Val)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&counter); got != 1 {
		t.Fatalf("expected function to run once, got %d", got)
	}
}

func TestFlight_DoChanAbandonedReceiver(t *testing.T) {
	var f Flight[string]
	release := make(chan struct{})

	_ = f.DoChan("k", func() (string, error) {
		<-release
		return "first", nil
	})
	second := f.DoChan("k", func() (string, error) {
		return "unused", nil
	})
	close(release)

	res := <-second
	if res.Val != "first" || !res.Shared {
		t.Fatalf("expected shared result from the first call, got %+v", res)
	}
}

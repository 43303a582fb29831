package resilience

import "golang.org/x/sync/singleflight"

// Result is what DoChan delivers to every caller sharing a key.
type Result[T any] struct {
	Val    T
	Err    error
	Shared bool
}

// Flight coalesces concurrent calls that share a key into one execution.
type Flight[T any] struct {
	group singleflight.Group
}

// DoChan runs fn once per in-flight key. The channel receives exactly one Result and
// is buffered, so a caller may stop listening without stalling the flight.
func (f *Flight[T]) DoChan(key string, fn func() (T, error)) <-chan Result[T] {
	src := f.group.DoChan(key, func() (any, error) {
		return fn()
	})
	out := make(chan Result[T], 1)
	go func() {
		res := <-src
		var value T
		if res.Val != nil {
			value = res.Val.(T)
		}
		out <- Result[T]{Val: value, Err: res.Err, Shared: res.Shared}
	}()
	return out
}

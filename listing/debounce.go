package listing

import (
	"sync"
	"time"
)

// DefaultSearchDebounce is the quiet period for remote search boxes.
const DefaultSearchDebounce = 300 * time.Millisecond

// Debounce wraps fn so it only runs after a quiet period of d with no new
// calls: trailing edge, one pending timer, each call cancels and restarts
// it. Meant for the fetch-triggering side of a search box; a synchronous
// local filter path should not go through it.
func Debounce(d time.Duration, fn func()) (call func(), stop func()) {
	var mu sync.Mutex
	var timer *time.Timer

	call = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(d, fn)
	}
	stop = func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
			timer = nil
		}
	}
	return call, stop
}

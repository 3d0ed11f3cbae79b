// Package ticker runs a function periodically until stopped.
package ticker

import (
	"context"
	"sync"
	"time"
)

type Ticker struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Start calls fn once synchronously and then every interval until Stop is
// called or ctx is cancelled. fn is never called concurrently with itself.
func Start(ctx context.Context, interval time.Duration, fn func(now time.Time)) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	fn(time.Now())

	go func() {
		defer close(t.done)

		tick := time.NewTicker(interval)
		defer tick.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case now := <-tick.C:
				fn(now)
			}
		}
	}()

	return t
}

// Stop ends the loop and waits for it to exit. It is safe to call more than once.
func (t *Ticker) Stop() {
	t.once.Do(t.cancel)
	<-t.done
}

// Done is closed once the loop has exited.
func (t *Ticker) Done() <-chan struct{} {
	return t.done
}

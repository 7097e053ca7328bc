package tzclock

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

// TickInterval is the cadence of the render loop.
const TickInterval = time.Second

// renderLoop is a cancellable periodic task. Each tick is posted to a
// Dispatcher so the callback runs on the host's UI thread, never on the
// loop's own goroutine.
type renderLoop struct {
	ticker clockwork.Ticker
	stop   chan struct{}
	done   chan struct{}
	once   sync.Once
}

// startRenderLoop creates the ticker synchronously, so a fake clock observes
// it as soon as this returns, then starts the waiting goroutine.
func startRenderLoop(clock clockwork.Clock, interval time.Duration, d Dispatcher, tick func(*renderLoop)) *renderLoop {
	l := &renderLoop{
		ticker: clock.NewTicker(interval),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go l.run(d, tick)
	return l
}

func (l *renderLoop) run(d Dispatcher, tick func(*renderLoop)) {
	defer close(l.done)
	defer l.ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-l.ticker.Chan():
			select {
			case <-l.stop:
				return
			default:
			}
			d.Post(func() { tick(l) })
		}
	}
}

// Stop cancels the loop and waits for its goroutine to exit. Callbacks that
// were already posted still reach the dispatcher; the tick function is
// expected to ignore loops that are no longer current. Safe to call twice.
func (l *renderLoop) Stop() {
	l.once.Do(func() { close(l.stop) })
	<-l.done
}

// stopped reports whether Stop has been called.
func (l *renderLoop) stopped() bool {
	select {
	case <-l.stop:
		return true
	default:
		return false
	}
}

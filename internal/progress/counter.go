// Package progress counts completed probes. Rendering is left to a Listener.
package progress

import "sync/atomic"

// Listener is notified after every increment. *progressbar.ProgressBar
// satisfies it.
type Listener interface {
	Add(n int) error
}

type Counter struct {
	total    int
	current  atomic.Int64
	listener Listener
}

type Option func(*Counter)

func WithListener(l Listener) Option {
	return func(c *Counter) { c.listener = l }
}

func New(total int, opts ...Option) *Counter {
	c := &Counter{total: total}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Increment records one completed check. Calls beyond Total are ignored.
func (c *Counter) Increment() {
	for {
		cur := c.current.Load()
		if cur >= int64(c.total) {
			return
		}
		if c.current.CompareAndSwap(cur, cur+1) {
			break
		}
	}
	if c.listener != nil {
		_ = c.listener.Add(1)
	}
}

func (c *Counter) Current() int { return int(c.current.Load()) }

func (c *Counter) Total() int { return c.total }

func (c *Counter) Done() bool { return c.Current() >= c.total }

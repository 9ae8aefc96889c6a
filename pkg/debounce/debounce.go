// Package debounce coalesces bursts of calls sharing a key so only the last one
// of a burst goes through.
package debounce

import (
	"context"
	"errors"
	"sync"
	"time"
)

// ErrSuperseded is returned to a caller whose pending call was replaced by a
// newer one for the same key before the quiet period elapsed.
var ErrSuperseded = errors.New("debounce: superseded by a newer call")

type pending struct {
	gen        uint64
	superseded chan struct{}
}

// Debouncer waits for a key to stay quiet for a fixed delay. A new call for a
// key cancels the pending one immediately.
type Debouncer struct {
	delay time.Duration

	mu      sync.Mutex
	seq     uint64
	pending map[string]*pending
}

func New(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay, pending: make(map[string]*pending)}
}

// Wait blocks until no newer call for key arrives within the delay. It returns
// nil when the caller won, ErrSuperseded when a newer call replaced it, or the
// context error.
func (d *Debouncer) Wait(ctx context.Context, key string) error {
	p := d.register(key)

	timer := time.NewTimer(d.delay)
	defer timer.Stop()

	select {
	case <-p.superseded:
		return ErrSuperseded
	case <-ctx.Done():
		d.release(key, p)
		return ctx.Err()
	case <-timer.C:
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if cur, ok := d.pending[key]; !ok || cur.gen != p.gen {
		return ErrSuperseded
	}
	delete(d.pending, key)
	return nil
}

// Do runs fn once key has been quiet for the delay.
func (d *Debouncer) Do(ctx context.Context, key string, fn func(context.Context) error) error {
	if err := d.Wait(ctx, key); err != nil {
		return err
	}
	return fn(ctx)
}

// Pending reports how many keys currently have a call waiting.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *Debouncer) register(key string) *pending {
	d.mu.Lock()
	defer d.mu.Unlock()

	if prev, ok := d.pending[key]; ok {
		close(prev.superseded)
	}
	d.seq++
	p := &pending{gen: d.seq, superseded: make(chan struct{})}
	d.pending[key] = p
	return p
}

func (d *Debouncer) release(key string, p *pending) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if cur, ok := d.pending[key]; ok && cur.gen == p.gen {
		delete(d.pending, key)
	}
}

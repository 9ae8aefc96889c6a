package debounce

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncer_SingleCallRunsAfterDelay(t *testing.T) {
	d := New(20 * time.Millisecond)

	start := time.Now()
	ran := false
	err := d.Do(context.Background(), "owner-1", func(context.Context) error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ran {
		t.Fatalf("expected fn to run")
	}
	if time.Since(start) < 20*time.Millisecond {
		t.Fatalf("fn ran before the quiet period")
	}
	if d.Pending() != 0 {
		t.Fatalf("expected no pending keys, got %d", d.Pending())
	}
}

func TestDebouncer_NewerCallSupersedesOlder(t *testing.T) {
	d := New(50 * time.Millisecond)

	var wg sync.WaitGroup
	var firstErr error
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = d.Wait(context.Background(), "owner-1")
	}()

	// let the first call register
	time.Sleep(10 * time.Millisecond)

	if err := d.Wait(context.Background(), "owner-1"); err != nil {
		t.Fatalf("expected the newest call to win, got %v", err)
	}
	wg.Wait()

	if !errors.Is(firstErr, ErrSuperseded) {
		t.Fatalf("expected ErrSuperseded for the first call, got %v", firstErr)
	}
}

func TestDebouncer_KeysAreIndependent(t *testing.T) {
	d := New(10 * time.Millisecond)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, key := range []string{"owner-1", "owner-2"} {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			errs[i] = d.Wait(context.Background(), key)
		}(i, key)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("call %d: unexpected error %v", i, err)
		}
	}
}

func TestDebouncer_ContextCancel(t *testing.T) {
	d := New(time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := d.Wait(ctx, "owner-1")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if d.Pending() != 0 {
		t.Fatalf("cancelled call must not stay pending")
	}
}

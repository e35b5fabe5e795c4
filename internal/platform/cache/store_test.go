package cache

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
)

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	errCh := make(chan error, workers)

	var wg conc.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Go(func() {
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		})
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_ExpiredEntryIsEvicted(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Millisecond)
	ctx := context.Background()

	store.Set(ctx, "rosters:r1", "v")
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(ctx, "rosters:r1"); ok {
		t.Fatal("expected expired entry to be gone")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	ctx := context.Background()

	store.Set(ctx, "players:team-1", "a")
	store.Set(ctx, "players:team-2", "b")
	store.Set(ctx, "teams:all", "c")

	store.DeletePrefix(ctx, "players:")

	if _, ok := store.Get(ctx, "players:team-1"); ok {
		t.Fatal("expected players:team-1 evicted")
	}
	if _, ok := store.Get(ctx, "teams:all"); !ok {
		t.Fatal("expected teams:all untouched")
	}
}

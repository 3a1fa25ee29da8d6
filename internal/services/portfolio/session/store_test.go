package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/pbhende/portfolio/internal/services/portfolio/domain/project"
	"github.com/pbhende/portfolio/internal/services/portfolio/domain/uistate"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestStore(idle time.Duration) (*Store, *fakeClock, *project.Catalog) {
	catalog := project.NewCatalog(
		project.Record{Title: "Alpha", Problem: "p", Importance: "i", Build: "b"},
		project.Record{Title: "Beta", Problem: "p", Importance: "i", Build: "b"},
	)
	clock := &fakeClock{now: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	store := NewStore(catalog, idle)
	store.now = clock.Now
	next := 0
	store.newID = func() (string, error) {
		next++
		return fmt.Sprintf("s%d", next), nil
	}
	return store, clock, catalog
}

func TestWithCreatesAndReusesSessions(t *testing.T) {
	t.Parallel()

	store, _, catalog := newTestStore(time.Minute)
	alpha := catalog.All()[0]

	id, err := store.With("", func(c *uistate.Controller) { c.Select(alpha) })
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if id != "s1" {
		t.Fatalf("session id = %q, want %q", id, "s1")
	}

	again, err := store.With(id, func(c *uistate.Controller) { c.ToggleTheme() })
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if again != id {
		t.Fatalf("session id = %q, want reuse of %q", again, id)
	}

	state, ok := store.Peek(id)
	if !ok {
		t.Fatal("expected session to exist")
	}
	if state.Selected != alpha || state.Theme != uistate.ThemeLight {
		t.Fatalf("state = %+v", state)
	}
	if store.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", store.Len())
	}
}

func TestWithUnknownIDStartsFreshSession(t *testing.T) {
	t.Parallel()

	store, _, _ := newTestStore(time.Minute)
	id, err := store.With("forged", func(c *uistate.Controller) {
		if c.State().Selecting() || c.State().Theme != uistate.ThemeDark {
			t.Errorf("expected initial state, got %+v", c.State())
		}
	})
	if err != nil {
		t.Fatalf("With() error = %v", err)
	}
	if id == "forged" {
		t.Fatal("expected unknown id to be replaced")
	}
	if _, ok := store.Peek("forged"); ok {
		t.Fatal("expected forged id to stay unknown")
	}
}

func TestSessionsAreIndependent(t *testing.T) {
	t.Parallel()

	store, _, catalog := newTestStore(time.Minute)
	first, _ := store.With("", func(c *uistate.Controller) { c.Select(catalog.All()[1]) })
	second, _ := store.With("", func(c *uistate.Controller) { c.ToggleTheme() })

	a, _ := store.Peek(first)
	b, _ := store.Peek(second)
	if a.Theme != uistate.ThemeDark || !a.Selecting() {
		t.Fatalf("first state = %+v", a)
	}
	if b.Theme != uistate.ThemeLight || b.Selecting() {
		t.Fatalf("second state = %+v", b)
	}
}

func TestExpiredSessionsAreReplacedAndSwept(t *testing.T) {
	t.Parallel()

	store, clock, _ := newTestStore(time.Minute)
	stale, _ := store.With("", func(*uistate.Controller) {})
	clock.Advance(30 * time.Second)
	live, _ := store.With("", func(*uistate.Controller) {})

	clock.Advance(45 * time.Second)
	if _, ok := store.Peek(stale); ok {
		t.Fatal("expected stale session to be expired")
	}
	if _, ok := store.Peek(live); !ok {
		t.Fatal("expected live session to survive")
	}

	replaced, _ := store.With(live, func(*uistate.Controller) {})
	if replaced != live {
		t.Fatalf("live session id = %q, want %q", replaced, live)
	}

	clock.Advance(2 * time.Minute)
	if removed := store.Sweep(); removed != 1 {
		t.Fatalf("Sweep() removed %d, want 1", removed)
	}
	if store.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", store.Len())
	}
}

func TestWithSerialisesAccessPerSession(t *testing.T) {
	t.Parallel()

	store, _, _ := newTestStore(time.Minute)
	id, _ := store.With("", func(*uistate.Controller) {})

	const workers = 16
	const perWorker = 25
	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range perWorker {
				if _, err := store.With(id, func(c *uistate.Controller) { c.ToggleTheme() }); err != nil {
					t.Errorf("With() error = %v", err)
				}
			}
		}()
	}
	wg.Wait()

	state, _ := store.Peek(id)
	if state.Theme != uistate.ThemeDark {
		t.Fatalf("theme after %d toggles = %q, want dark", workers*perWorker, state.Theme)
	}
}

func TestWithErrors(t *testing.T) {
	t.Parallel()

	var nilStore *Store
	if _, err := nilStore.With("", func(*uistate.Controller) {}); err == nil {
		t.Fatal("expected nil store error")
	}

	store, _, _ := newTestStore(time.Minute)
	if _, err := store.With("", nil); err == nil {
		t.Fatal("expected nil callback error")
	}

	want := errors.New("entropy exhausted")
	store.newID = func() (string, error) { return "", want }
	if _, err := store.With("", func(*uistate.Controller) {}); !errors.Is(err, want) {
		t.Fatalf("error = %v, want %v", err, want)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	store, _, _ := newTestStore(time.Minute)
	id, _ := store.With("", func(*uistate.Controller) {})
	store.Delete(id)
	if _, ok := store.Peek(id); ok {
		t.Fatal("expected deleted session to be gone")
	}
}

func TestNewStoreDefaultsIdleTimeout(t *testing.T) {
	t.Parallel()

	if got := NewStore(project.NewCatalog(), 0).IdleTimeout(); got != 30*time.Minute {
		t.Fatalf("IdleTimeout() = %v, want 30m", got)
	}
}

func TestRunSweeperStopsWithContext(t *testing.T) {
	t.Parallel()

	store, clock, _ := newTestStore(time.Minute)
	_, _ = store.With("", func(*uistate.Controller) {})
	clock.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		store.RunSweeper(ctx, time.Millisecond)
		close(done)
	}()

	deadline := time.After(5 * time.Second)
	for store.Len() != 0 {
		select {
		case <-deadline:
			t.Fatal("sweeper did not remove the expired session")
		case <-time.After(time.Millisecond):
		}
	}
	cancel()
	<-done
}

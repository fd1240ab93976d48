package spot

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"
)

// fakeOracle serves canned prices and synthesized histories. An optional
// gate channel blocks history fetches until released, to interleave
// refreshes deterministically.
type fakeOracle struct {
	gold, silver float64
	gate         chan struct{}
	err          error
}

func (f *fakeOracle) CurrentPrice(_ context.Context, metal Metal) (Quote, error) {
	if f.err != nil {
		return Quote{}, f.err
	}
	price := f.gold
	if metal == Silver {
		price = f.silver
	}
	return Quote{Price: price, Sources: []Source{{URI: "https://example.de", Title: "Kurs"}}}, nil
}

func (f *fakeOracle) History(_ context.Context, metal Metal, tf Timeframe, current float64) (Series, error) {
	if f.gate != nil {
		<-f.gate
	}
	if f.err != nil {
		return nil, f.err
	}
	syn := NewSynthesizer(rand.New(rand.NewSource(1)))
	return syn.Series(metal, tf, current, time.Date(2025, 7, 29, 12, 0, 0, 0, time.UTC)), nil
}

// switchOracle delegates to a swappable target, so tests can change the
// oracle behavior between refreshes without racing the service.
type switchOracle struct {
	mu     sync.Mutex
	target Oracle
}

func (s *switchOracle) set(o Oracle) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.target = o
}

func (s *switchOracle) get() Oracle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.target
}

func (s *switchOracle) CurrentPrice(ctx context.Context, metal Metal) (Quote, error) {
	return s.get().CurrentPrice(ctx, metal)
}

func (s *switchOracle) History(ctx context.Context, metal Metal, tf Timeframe, current float64) (Series, error) {
	return s.get().History(ctx, metal, tf, current)
}

func TestServiceRefresh(t *testing.T) {
	svc := NewService(&fakeOracle{gold: 2150.55, silver: 28.50}, nil)

	if got := svc.Snapshot().State; got != StateIdle {
		t.Fatalf("initial state = %v, want idle", got)
	}

	if err := svc.Refresh(context.Background(), Month); err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	snap := svc.Snapshot()
	if snap.State != StateReady {
		t.Fatalf("state = %v, want ready", snap.State)
	}
	if snap.Timeframe != Month {
		t.Errorf("timeframe = %v, want Monat", snap.Timeframe)
	}
	if snap.Gold.Price != 2150.55 || snap.Silver.Price != 28.50 {
		t.Errorf("prices = %v/%v", snap.Gold.Price, snap.Silver.Price)
	}
	if len(snap.Gold.Sources) == 0 {
		t.Error("gold sources missing")
	}

	// the pin invariant holds through the service
	if last, ok := snap.Gold.History.Last(); !ok || last.Price != 2150.55 {
		t.Errorf("gold history last = %+v, want pinned 2150.55", last)
	}
	if last, ok := snap.Silver.History.Last(); !ok || last.Price != 28.50 {
		t.Errorf("silver history last = %+v, want pinned 28.50", last)
	}
	if len(snap.Gold.History) != Month.Points() {
		t.Errorf("gold history len = %d, want %d", len(snap.Gold.History), Month.Points())
	}
}

func TestServiceStaleRefreshIsDiscarded(t *testing.T) {
	slow := &fakeOracle{gold: 1000, silver: 10, gate: make(chan struct{})}
	oracle := &switchOracle{target: slow}
	svc := NewService(oracle, nil)

	done := make(chan error)
	go func() { done <- svc.Refresh(context.Background(), Year) }()

	// wait for the slow refresh to block in its history phase
	for svc.Snapshot().State != StateLoading {
		time.Sleep(time.Millisecond)
	}

	// a newer refresh for another timeframe starts and completes first
	oracle.set(&fakeOracle{gold: 2150.55, silver: 28.50})
	if err := svc.Refresh(context.Background(), Week); err != nil {
		t.Fatalf("fast Refresh: %v", err)
	}

	// release the slow refresh, its result must not overwrite the newer one
	close(slow.gate)
	if err := <-done; err != nil {
		t.Fatalf("slow Refresh: %v", err)
	}

	snap := svc.Snapshot()
	if snap.State != StateReady {
		t.Fatalf("state = %v, want ready", snap.State)
	}
	if snap.Timeframe != Week {
		t.Errorf("timeframe = %v, want Woche (latest refresh wins)", snap.Timeframe)
	}
	if snap.Gold.Price != 2150.55 {
		t.Errorf("gold price = %v, want 2150.55 from the latest refresh", snap.Gold.Price)
	}
}

func TestServiceErrorState(t *testing.T) {
	boom := errors.New("context deadline exceeded")
	oracle := &switchOracle{target: &fakeOracle{err: boom}}
	svc := NewService(oracle, nil)

	if err := svc.Refresh(context.Background(), Month); !errors.Is(err, boom) {
		t.Fatalf("Refresh error = %v, want %v", err, boom)
	}

	snap := svc.Snapshot()
	if snap.State != StateError {
		t.Fatalf("state = %v, want error (never stuck loading)", snap.State)
	}
	if snap.Err != ErrFetchMessage {
		t.Errorf("message = %q, want localized fetch error", snap.Err)
	}

	// a later successful refresh clears the error
	oracle.set(&fakeOracle{gold: 2150, silver: 28})
	if err := svc.Refresh(context.Background(), Month); err != nil {
		t.Fatalf("recovery Refresh: %v", err)
	}
	snap = svc.Snapshot()
	if snap.State != StateReady || snap.Err != "" {
		t.Errorf("after recovery: state = %v, err = %q", snap.State, snap.Err)
	}
}

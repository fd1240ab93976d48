package spot

import (
	"context"
	"log/slog"
	"sync"
)

// State is the lifecycle of the spot price service.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReady
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// ErrFetchMessage is the user-facing message shown when a refresh fails
// for a reason the oracle could not absorb.
const ErrFetchMessage = "Fehler beim Abrufen der Preisdaten. Versuchen Sie es später erneut."

// MetalPrices is the fetched state for one metal.
type MetalPrices struct {
	Price   float64
	History Series
	Sources []Source
}

// Snapshot is a copy of the service state handed to presentation.
type Snapshot struct {
	State     State
	Err       string // localized message, set only in StateError
	Timeframe Timeframe
	Gold      MetalPrices
	Silver    MetalPrices
}

// Service coordinates the oracle per timeframe: it fetches both metals'
// current prices concurrently, then both histories concurrently (history
// requests are seeded with the current price, so the phases are
// sequential), and caches the latest completed fetch.
//
// Concurrent refreshes are resolved with a generation counter: a fetch
// only commits if no newer refresh has started since, so a stale result
// never overwrites newer data.
type Service struct {
	oracle Oracle
	logger *slog.Logger

	mu         sync.Mutex
	generation uint64
	snap       Snapshot
}

// NewService returns a service driving the given oracle. A nil logger
// uses slog.Default.
func NewService(oracle Oracle, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{oracle: oracle, logger: logger}
}

// Snapshot returns a copy of the current state. The contained series are
// shared read-only, the service never mutates a committed series.
func (s *Service) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Refresh fetches current prices and histories for both metals for the
// given timeframe and commits them, unless a newer refresh started in
// the meantime. It returns an error only for failures outside the
// oracle's self-healing, after recording the error state.
func (s *Service) Refresh(ctx context.Context, tf Timeframe) error {
	gen := s.begin(tf)
	s.logger.Info("refreshing spot prices", "timeframe", tf, "generation", gen)

	gold, silver, err := s.fetchCurrent(ctx)
	if err != nil {
		s.fail(gen, err)
		return err
	}

	goldHistory, silverHistory, err := s.fetchHistory(ctx, tf, gold.Price, silver.Price)
	if err != nil {
		s.fail(gen, err)
		return err
	}

	s.commit(gen, tf, gold, silver, goldHistory, silverHistory)
	return nil
}

// begin enters the loading state and takes a new generation token.
func (s *Service) begin(tf Timeframe) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	s.snap.State = StateLoading
	s.snap.Err = ""
	s.snap.Timeframe = tf
	return s.generation
}

// fail records the error state, unless superseded by a newer refresh.
func (s *Service) fail(gen uint64, err error) {
	s.logger.Error("spot price refresh failed", "generation", gen, "err", err)
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return // a newer refresh owns the state now
	}
	s.snap.State = StateError
	s.snap.Err = ErrFetchMessage
}

// commit stores the fetched result, unless superseded by a newer refresh.
func (s *Service) commit(gen uint64, tf Timeframe, gold, silver Quote, goldHistory, silverHistory Series) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Info("discarding stale refresh", "generation", gen)
		return
	}
	s.snap = Snapshot{
		State:     StateReady,
		Timeframe: tf,
		Gold:      MetalPrices{Price: gold.Price, History: goldHistory, Sources: gold.Sources},
		Silver:    MetalPrices{Price: silver.Price, History: silverHistory, Sources: silver.Sources},
	}
}

// fetchCurrent fetches both metals' current prices concurrently.
func (s *Service) fetchCurrent(ctx context.Context) (gold, silver Quote, err error) {
	var wg sync.WaitGroup
	var goldErr, silverErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		gold, goldErr = s.oracle.CurrentPrice(ctx, Gold)
	}()
	go func() {
		defer wg.Done()
		silver, silverErr = s.oracle.CurrentPrice(ctx, Silver)
	}()
	wg.Wait()

	if goldErr != nil {
		return Quote{}, Quote{}, goldErr
	}
	if silverErr != nil {
		return Quote{}, Quote{}, silverErr
	}
	return gold, silver, nil
}

// fetchHistory fetches both metals' histories concurrently, seeded with
// the current prices obtained in the first phase.
func (s *Service) fetchHistory(ctx context.Context, tf Timeframe, goldPrice, silverPrice float64) (gold, silver Series, err error) {
	var wg sync.WaitGroup
	var goldErr, silverErr error

	wg.Add(2)
	go func() {
		defer wg.Done()
		gold, goldErr = s.oracle.History(ctx, Gold, tf, goldPrice)
	}()
	go func() {
		defer wg.Done()
		silver, silverErr = s.oracle.History(ctx, Silver, tf, silverPrice)
	}()
	wg.Wait()

	if goldErr != nil {
		return nil, nil, goldErr
	}
	if silverErr != nil {
		return nil, nil, silverErr
	}
	return gold, silver, nil
}

package search

import (
	"context"
	"errors"
	"sync"
	"time"

	"zenithmed/internal/repositories"
	"zenithmed/internal/services"
)

// QueryFunc issues one catalog query. Implementations backed by a remote
// store should honour ctx so that a superseded query can be cancelled
// mid-flight.
type QueryFunc func(ctx context.Context, params repositories.SearchParams) (*services.CatalogPage, error)

// ResultFunc receives the outcome of the newest query. It is never called
// for superseded queries.
type ResultFunc func(page *services.CatalogPage, err error)

// Searcher debounces keystroke-driven catalog queries and guarantees
// last-request-wins delivery: starting a new query cancels the previous
// one's context, and a response is dropped unless its sequence number is
// still the newest — so a slow, stale response can never overwrite a newer
// result even when the backing store ignores cancellation.
type Searcher struct {
	query   QueryFunc
	deliver ResultFunc
	deb     *Debouncer

	mu     sync.Mutex
	seq    uint64
	cancel context.CancelFunc
}

// NewSearcher creates a Searcher that waits delay after the last trigger
// before querying.
func NewSearcher(delay time.Duration, query QueryFunc, deliver ResultFunc) *Searcher {
	return &Searcher{
		query:   query,
		deliver: deliver,
		deb:     NewDebouncer(delay),
	}
}

// Search schedules a query for params after the quiet period. Triggers
// arriving before the period elapses replace the pending query.
func (s *Searcher) Search(params repositories.SearchParams) {
	s.deb.Trigger(func() {
		s.launch(params)
	})
}

// Stop cancels any pending trigger and any in-flight query. A response from
// an already-launched query will still be discarded.
func (s *Searcher) Stop() {
	s.deb.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++ // orphan any in-flight response
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Searcher) launch(params repositories.SearchParams) {
	s.mu.Lock()
	s.seq++
	mine := s.seq
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	go func() {
		page, err := s.query(ctx, params)

		s.mu.Lock()
		stale := mine != s.seq
		s.mu.Unlock()
		if stale || errors.Is(err, context.Canceled) {
			return
		}
		s.deliver(page, err)
	}()
}

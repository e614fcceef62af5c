package search_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"zenithmed/internal/models"
	"zenithmed/internal/repositories"
	"zenithmed/internal/search"
	"zenithmed/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncer_BurstFiresOnce(t *testing.T) {
	d := search.NewDebouncer(80 * time.Millisecond)

	var mu sync.Mutex
	var fired []string

	// Five rapid triggers, well inside the quiet period.
	for _, term := range []string{"a", "am", "amo", "amox", "amoxi"} {
		term := term
		d.Trigger(func() {
			mu.Lock()
			fired = append(fired, term)
			mu.Unlock()
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(300 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, fired, 1, "a burst of triggers must fire exactly once")
	assert.Equal(t, "amoxi", fired[0], "the surviving callback is the last one")
}

func TestDebouncer_SeparatedTriggersEachFire(t *testing.T) {
	d := search.NewDebouncer(30 * time.Millisecond)

	var mu sync.Mutex
	count := 0
	fire := func() {
		mu.Lock()
		count++
		mu.Unlock()
	}

	d.Trigger(fire)
	time.Sleep(100 * time.Millisecond)
	d.Trigger(fire)
	time.Sleep(100 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, count)
}

func TestDebouncer_StopCancelsPending(t *testing.T) {
	d := search.NewDebouncer(50 * time.Millisecond)

	var mu sync.Mutex
	count := 0
	d.Trigger(func() {
		mu.Lock()
		count++
		mu.Unlock()
	})
	d.Stop()

	time.Sleep(150 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 0, count)
}

// recorder collects delivered result names.
type recorder struct {
	mu    sync.Mutex
	terms []string
}

func (r *recorder) deliver(page *services.CatalogPage, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err == nil && page != nil && len(page.Products) == 1 {
		r.terms = append(r.terms, page.Products[0].Name)
	}
}

func (r *recorder) delivered() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.terms))
	copy(out, r.terms)
	return out
}

// echoPage answers a query with a single fake product named after the search
// term, so tests can see which query a result belongs to.
func echoPage(term string) *services.CatalogPage {
	return &services.CatalogPage{
		Products: []models.Product{{ID: term, Name: term}},
		Page:     1,
		Pages:    1,
	}
}

func TestSearcher_BurstIssuesSingleQueryWithFinalTerm(t *testing.T) {
	var mu sync.Mutex
	var queried []string

	query := func(ctx context.Context, params repositories.SearchParams) (*services.CatalogPage, error) {
		mu.Lock()
		queried = append(queried, params.Term)
		mu.Unlock()
		return echoPage(params.Term), nil
	}

	done := make(chan struct{}, 1)
	s := search.NewSearcher(60*time.Millisecond, query, func(*services.CatalogPage, error) {
		done <- struct{}{}
	})

	// Five keystrokes in quick succession followed by idle time.
	for _, term := range []string{"a", "am", "amo", "amox", "amoxi"} {
		s.Search(repositories.SearchParams{Term: term})
		time.Sleep(10 * time.Millisecond)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("query never fired")
	}
	time.Sleep(100 * time.Millisecond) // catch any extra fires

	mu.Lock()
	defer mu.Unlock()
	require.Equal(t, []string{"amoxi"}, queried, "exactly one query, with the final term")
}

func TestSearcher_LastRequestWins(t *testing.T) {
	rec := &recorder{}

	// The first query is slow; the second is fast. Only the second may be
	// delivered even though the first eventually returns.
	query := func(ctx context.Context, params repositories.SearchParams) (*services.CatalogPage, error) {
		delay := 10 * time.Millisecond
		if params.Term == "slow" {
			delay = 250 * time.Millisecond
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return echoPage(params.Term), nil
	}

	s := search.NewSearcher(20*time.Millisecond, query, rec.deliver)

	s.Search(repositories.SearchParams{Term: "slow"})
	time.Sleep(60 * time.Millisecond) // let the slow query launch
	s.Search(repositories.SearchParams{Term: "fast"})

	time.Sleep(500 * time.Millisecond)

	assert.Equal(t, []string{"fast"}, rec.delivered(),
		"a stale response must be discarded, not applied")
}

func TestSearcher_StopDiscardsInFlightQuery(t *testing.T) {
	rec := &recorder{}
	query := func(ctx context.Context, params repositories.SearchParams) (*services.CatalogPage, error) {
		select {
		case <-time.After(100 * time.Millisecond):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
		return echoPage(params.Term), nil
	}

	s := search.NewSearcher(10*time.Millisecond, query, rec.deliver)
	s.Search(repositories.SearchParams{Term: "doomed"})
	time.Sleep(40 * time.Millisecond) // past the debounce, query in flight
	s.Stop()

	time.Sleep(300 * time.Millisecond)
	assert.Empty(t, rec.delivered())
}

package venues

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/holidaze/client-go/internal/model"
)

// stubFetcher records every fetch and blocks each one until the test
// releases it, so tests control completion order precisely.
type stubFetcher struct {
	mu    sync.Mutex
	calls []fetchCall
	gates []chan fetchResult
}

type fetchCall struct {
	term   string
	params Params
}

type fetchResult struct {
	venues []model.Venue
	meta   model.PaginationMeta
	err    error
}

func (f *stubFetcher) List(ctx context.Context, p Params) ([]model.Venue, model.PaginationMeta, error) {
	return f.wait("", p)
}

func (f *stubFetcher) Search(ctx context.Context, term string, p Params) ([]model.Venue, model.PaginationMeta, error) {
	return f.wait(term, p)
}

func (f *stubFetcher) wait(term string, p Params) ([]model.Venue, model.PaginationMeta, error) {
	f.mu.Lock()
	gate := make(chan fetchResult, 1)
	f.calls = append(f.calls, fetchCall{term: term, params: p})
	f.gates = append(f.gates, gate)
	f.mu.Unlock()

	r := <-gate
	return r.venues, r.meta, r.err
}

func (f *stubFetcher) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func (f *stubFetcher) call(i int) fetchCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[i]
}

// release completes the i-th issued fetch with the given result.
func (f *stubFetcher) release(t *testing.T, i int, r fetchResult) {
	t.Helper()
	waitFor(t, func() bool { return f.callCount() > i })

	f.mu.Lock()
	gate := f.gates[i]
	f.mu.Unlock()
	gate <- r
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func resultFor(name string) fetchResult {
	return fetchResult{
		venues: []model.Venue{{ID: name, Name: name}},
		meta:   model.PaginationMeta{IsFirstPage: true, IsLastPage: true, CurrentPage: 1, PageCount: 1, TotalCount: 1},
	}
}

func newTestController(stub *stubFetcher) *Controller {
	return NewController(context.Background(), stub, model.DefaultQuery(), nil, zerolog.Nop())
}

func settled(c *Controller) func() bool {
	return func() bool { return !c.Snapshot().Loading }
}

func TestStaleResultIsDiscarded(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.SetSearchTerm("aaa") // fetch 0
	waitFor(t, func() bool { return stub.callCount() == 1 })
	c.SetSearchTerm("bbb") // fetch 1 supersedes fetch 0

	// B resolves first and is published; A resolves afterwards and must
	// be dropped.
	stub.release(t, 1, resultFor("bbb"))
	waitFor(t, settled(c))
	stub.release(t, 0, resultFor("aaa"))

	// give the stale completion a chance to (incorrectly) publish
	time.Sleep(20 * time.Millisecond)

	snap := c.Snapshot()
	if snap.Loading {
		t.Error("Loading = true after latest fetch settled")
	}
	if len(snap.Venues) != 1 || snap.Venues[0].ID != "bbb" {
		t.Errorf("published venues = %+v, want result for bbb", snap.Venues)
	}
}

func TestSearchTermResetsPageAndTrims(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.SetPage(3)
	stub.release(t, 0, resultFor("page3"))

	c.SetSearchTerm("  hytte  ")
	stub.release(t, 1, resultFor("hytte"))
	waitFor(t, settled(c))

	if got := c.Query().Page; got != 1 {
		t.Errorf("Page = %d, want 1 after search term change", got)
	}
	if call := stub.call(1); call.term != "hytte" {
		t.Errorf("search term = %q, want trimmed %q", call.term, "hytte")
	}
}

func TestSortTransitionsResetPage(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.SetPage(2)
	stub.release(t, 0, resultFor("page2"))

	c.SetSort(model.SortPrice)
	stub.release(t, 1, resultFor("sorted"))
	waitFor(t, settled(c))
	if got := c.Query().Page; got != 1 {
		t.Errorf("Page = %d after SetSort, want 1", got)
	}

	c.SetPage(2)
	stub.release(t, 2, resultFor("page2"))

	c.SetSortOrder(model.SortAsc)
	stub.release(t, 3, resultFor("ordered"))
	waitFor(t, settled(c))
	if got := c.Query().Page; got != 1 {
		t.Errorf("Page = %d after SetSortOrder, want 1", got)
	}
}

func TestEmptyTermUsesListNonEmptyUsesSearch(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.Refresh()
	stub.release(t, 0, resultFor("list"))
	waitFor(t, settled(c))
	if call := stub.call(0); call.term != "" {
		t.Errorf("term = %q, want List for empty term", call.term)
	}

	c.SetSearchTerm("cabin")
	stub.release(t, 1, resultFor("cabin"))
	waitFor(t, settled(c))
	if call := stub.call(1); call.term != "cabin" {
		t.Errorf("term = %q, want Search with cabin", call.term)
	}

	// whitespace-only term falls back to List
	c.SetSearchTerm("   ")
	stub.release(t, 2, resultFor("list"))
	waitFor(t, settled(c))
	if call := stub.call(2); call.term != "" {
		t.Errorf("term = %q, want List for blank term", call.term)
	}
}

func TestExactlyOneFetchPerTransition(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.SetSearchTerm("a")
	c.SetSort(model.SortName)
	c.SetSortOrder(model.SortAsc)
	c.SetPage(2)
	c.Refresh()

	for i := 0; i < 5; i++ {
		stub.release(t, i, resultFor(fmt.Sprintf("r%d", i)))
	}
	waitFor(t, settled(c))

	if got := stub.callCount(); got != 5 {
		t.Errorf("fetch count = %d, want 5", got)
	}
}

func TestLoadingTracksOutstandingFetch(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.Refresh()
	waitFor(t, func() bool { return stub.callCount() == 1 })
	if !c.Snapshot().Loading {
		t.Error("Loading = false while fetch outstanding")
	}

	stub.release(t, 0, resultFor("done"))
	waitFor(t, settled(c))
}

func TestFailedFetchClearsVenues(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.Refresh()
	stub.release(t, 0, resultFor("ok"))
	waitFor(t, settled(c))
	if len(c.Snapshot().Venues) != 1 {
		t.Fatal("seed fetch did not publish venues")
	}

	c.Refresh()
	stub.release(t, 1, fetchResult{err: errors.New("service unavailable")})
	waitFor(t, settled(c))

	snap := c.Snapshot()
	if snap.ErrMessage == "" {
		t.Error("ErrMessage empty after failed fetch")
	}
	if snap.Venues != nil {
		t.Errorf("Venues = %+v, want cleared on error", snap.Venues)
	}
	if snap.Meta != nil {
		t.Error("Meta retained next to an error")
	}
}

func TestIdenticalQueriesYieldIdenticalResults(t *testing.T) {
	stub := &stubFetcher{}
	c := newTestController(stub)

	c.Refresh()
	stub.release(t, 0, resultFor("same"))
	waitFor(t, settled(c))
	first := c.Snapshot()

	c.Refresh()
	stub.release(t, 1, resultFor("same"))
	waitFor(t, settled(c))
	second := c.Snapshot()

	if first.Query != second.Query {
		t.Errorf("queries differ: %+v vs %+v", first.Query, second.Query)
	}
	if len(first.Venues) != len(second.Venues) || first.Venues[0].ID != second.Venues[0].ID {
		t.Error("identical queries published different venues")
	}
	if *first.Meta != *second.Meta {
		t.Error("identical queries published different meta")
	}
}

func TestSnapshotsPublishedToListener(t *testing.T) {
	stub := &stubFetcher{}

	var mu sync.Mutex
	var published []Snapshot
	publish := func(s Snapshot) {
		mu.Lock()
		published = append(published, s)
		mu.Unlock()
	}

	c := NewController(context.Background(), stub, model.DefaultQuery(), publish, zerolog.Nop())
	c.Refresh()
	stub.release(t, 0, resultFor("v"))
	waitFor(t, settled(c))

	mu.Lock()
	defer mu.Unlock()
	if len(published) != 2 {
		t.Fatalf("published %d snapshots, want loading + result", len(published))
	}
	if !published[0].Loading {
		t.Error("first snapshot not loading")
	}
	if published[1].Loading || len(published[1].Venues) != 1 {
		t.Errorf("second snapshot = %+v, want settled result", published[1])
	}
}

package venues

import (
	"context"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/holidaze/client-go/internal/model"
)

// fetcher is the slice of Service the controller needs.
type fetcher interface {
	List(ctx context.Context, p Params) ([]model.Venue, model.PaginationMeta, error)
	Search(ctx context.Context, q string, p Params) ([]model.Venue, model.PaginationMeta, error)
}

// Snapshot is the published view of the controller: the query it was
// produced for, the fetched page, and the loading/error state.
type Snapshot struct {
	Query   model.QueryState
	Venues  []model.Venue
	Meta    *model.PaginationMeta
	Loading bool
	// ErrMessage is non-empty when the last fetch failed; Venues and
	// Meta are cleared in that case so a stale list is never shown next
	// to an error.
	ErrMessage string
}

// Controller owns the current QueryState and guarantees that at most
// one authoritative result is published per parameter set. Every fetch
// is tagged with the generation current at issuance; a result arriving
// after the state has advanced is discarded instead of published, so
// the published snapshot always reflects the most recently issued
// query.
//
// Snapshots are published synchronously under the controller's lock;
// the publish callback must not call back into the controller.
type Controller struct {
	mu      sync.Mutex
	svc     fetcher
	ctx     context.Context
	publish func(Snapshot)
	log     zerolog.Logger

	query   model.QueryState
	gen     uint64
	venues  []model.Venue
	meta    *model.PaginationMeta
	errMsg  string
	loading bool
}

// NewController creates a controller over the given initial query. A
// zero initial query falls back to the defaults. publish may be nil;
// state is then only observable through Snapshot.
func NewController(ctx context.Context, svc fetcher, initial model.QueryState, publish func(Snapshot), log zerolog.Logger) *Controller {
	if initial.Page < 1 {
		initial = model.DefaultQuery()
	}
	return &Controller{
		svc:     svc,
		ctx:     ctx,
		publish: publish,
		log:     log,
		query:   initial,
	}
}

// SetSearchTerm changes the search term, resets the page to 1 and
// issues a fetch.
func (c *Controller) SetSearchTerm(term string) {
	c.transition(func(q *model.QueryState) {
		q.SearchTerm = term
		q.Page = 1
	})
}

// SetSort changes the sort key, resets the page to 1 and issues a
// fetch.
func (c *Controller) SetSort(key string) {
	c.transition(func(q *model.QueryState) {
		q.SortKey = key
		q.Page = 1
	})
}

// SetSortOrder changes the sort direction, resets the page to 1 and
// issues a fetch.
func (c *Controller) SetSortOrder(order model.SortOrder) {
	c.transition(func(q *model.QueryState) {
		q.SortOrder = order
		q.Page = 1
	})
}

// SetPage moves to the given page (minimum 1) and issues a fetch.
func (c *Controller) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	c.transition(func(q *model.QueryState) {
		q.Page = page
	})
}

// Refresh re-issues a fetch for the current query without changing it.
func (c *Controller) Refresh() {
	c.transition(func(*model.QueryState) {})
}

// Query returns the current query state.
func (c *Controller) Query() model.QueryState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.query
}

// Snapshot returns the current published view.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) transition(mutate func(*model.QueryState)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	mutate(&c.query)
	c.gen++
	c.loading = true
	c.errMsg = ""

	gen := c.gen
	q := c.query
	c.publishLocked()

	go c.fetch(gen, q)
}

func (c *Controller) fetch(gen uint64, q model.QueryState) {
	p := Params{Page: q.Page, Limit: q.Limit, Sort: q.SortKey, SortOrder: q.SortOrder}

	var (
		list []model.Venue
		meta model.PaginationMeta
		err  error
	)
	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		list, meta, err = c.svc.Search(c.ctx, term, p)
	} else {
		list, meta, err = c.svc.List(c.ctx, p)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.gen {
		c.log.Debug().
			Uint64("generation", gen).
			Uint64("current", c.gen).
			Msg("discarding stale fetch result")
		return
	}

	c.loading = false
	if err != nil {
		c.venues = nil
		c.meta = nil
		c.errMsg = err.Error()
	} else {
		c.venues = list
		c.meta = &meta
		c.errMsg = ""
	}
	c.publishLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		Query:      c.query,
		Venues:     c.venues,
		Meta:       c.meta,
		Loading:    c.loading,
		ErrMessage: c.errMsg,
	}
}

func (c *Controller) publishLocked() {
	if c.publish != nil {
		c.publish(c.snapshotLocked())
	}
}

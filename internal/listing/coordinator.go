// Package listing coordinates the filterable, sortable, bookmark-aware
// event list: one source of truth for search/filter/sort state, the reset
// rules between them, and load-more pagination over a core.Catalog.
//
// The coordinator is deliberately synchronous. Parameter changes return a
// Request; the caller runs it (a bubbletea command in the TUI, inline in
// tests) and feeds the Result back through Apply. Every parameter change
// bumps a generation counter carried by the Request, so a response that
// arrives after its parameters were superseded is discarded instead of
// overwriting newer state.
package listing

import (
	"errors"
	"time"

	"github.com/shalafinder/shala/internal/api"
	"github.com/shalafinder/shala/internal/bookmarks"
	"github.com/shalafinder/shala/internal/core"
)

// SearchDebounce is how long the search input must stay unchanged before
// the term is committed and a fetch goes out.
const SearchDebounce = 500 * time.Millisecond

// DefaultPageSize matches the backend's listing page size.
const DefaultPageSize = 10

// Coordinator holds the listing state machine.
type Coordinator struct {
	store    *bookmarks.Store
	pageSize int

	// search
	rawSearch    string
	debounced    string
	searchSeq    int
	searchActive bool

	// server-side filters
	location *core.LocationFilter
	sort     *core.SortConfig

	bookmarksView bool

	// page state
	gen         uint64
	items       []core.Event
	skip        int
	total       int
	loading     bool
	loadingMore bool
	errMsg      string
	loadMoreErr string
}

// Option configures a Coordinator.
type Option func(*Coordinator)

// WithPageSize overrides the default page size.
func WithPageSize(n int) Option {
	return func(c *Coordinator) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// New builds a coordinator over the shared bookmark store.
func New(store *bookmarks.Store, opts ...Option) *Coordinator {
	c := &Coordinator{store: store, pageSize: DefaultPageSize}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Accessors. The TUI renders exclusively from these; nothing outside the
// coordinator mutates its state.

func (c *Coordinator) Items() []core.Event            { return c.items }
func (c *Coordinator) Total() int                     { return c.total }
func (c *Coordinator) Skip() int                      { return c.skip }
func (c *Coordinator) Loading() bool                  { return c.loading }
func (c *Coordinator) LoadingMore() bool              { return c.loadingMore }
func (c *Coordinator) Err() string                    { return c.errMsg }
func (c *Coordinator) LoadMoreErr() string            { return c.loadMoreErr }
func (c *Coordinator) SearchActive() bool             { return c.searchActive }
func (c *Coordinator) BookmarksView() bool            { return c.bookmarksView }
func (c *Coordinator) RawSearch() string              { return c.rawSearch }
func (c *Coordinator) DebouncedSearch() string        { return c.debounced }
func (c *Coordinator) Location() *core.LocationFilter { return c.location }
func (c *Coordinator) Sort() *core.SortConfig         { return c.sort }

// CanLoadMore reports whether a load-more request would actually go out.
func (c *Coordinator) CanLoadMore() bool {
	return !c.loading && !c.loadingMore && !c.bookmarksView && c.skip < c.total
}

// DismissLoadMoreError clears the dismissible pagination error banner.
func (c *Coordinator) DismissLoadMoreError() { c.loadMoreErr = "" }

// Start returns the initial fetch for the default parameter set.
func (c *Coordinator) Start() Request {
	return c.reset()
}

// Refresh re-issues the current view's fetch without changing any
// parameters. In bookmarks view that is a by-ids fetch of the saved set,
// never a server listing; an empty set short-circuits the same way
// entering the view does.
func (c *Coordinator) Refresh() (Request, bool) {
	if c.bookmarksView {
		return c.bookmarksFetch()
	}
	return c.reset(), true
}

// SetSearchTerm records a keystroke in the search input and returns the
// debounce sequence to tag the 500ms timer with. It never fetches by
// itself; only CommitSearch does.
func (c *Coordinator) SetSearchTerm(text string) int {
	c.rawSearch = text
	c.searchSeq++
	return c.searchSeq
}

// CommitSearch fires when a debounce timer tagged with seq elapses. A seq
// from a superseded keystroke is ignored, so only the final value of a
// typing burst commits. Committing a changed value resets pagination and
// issues a fresh fetch. In bookmarks view the committed term is recorded
// but no fetch goes out; server filters are inert there and reapply when
// the view is exited.
func (c *Coordinator) CommitSearch(seq int) (Request, bool) {
	if seq != c.searchSeq {
		return Request{}, false
	}
	if c.debounced == c.rawSearch {
		return Request{}, false
	}
	c.debounced = c.rawSearch
	if c.bookmarksView {
		return Request{}, false
	}
	return c.reset(), true
}

// SetSearchActive toggles the search input's active state. Deactivating
// keeps the committed term so the results stay filtered after the box
// closes; that mirrors the site behavior and is intentional.
func (c *Coordinator) SetSearchActive(active bool) {
	c.searchActive = active
}

// SetLocationFilter replaces the location filter (nil clears it), clears
// any free-text search, and resets pagination. While bookmarks view is
// active the change is recorded but no fetch goes out.
func (c *Coordinator) SetLocationFilter(f *core.LocationFilter) (Request, bool) {
	if f != nil && f.IsZero() {
		f = nil
	}
	c.location = f
	c.rawSearch = ""
	c.debounced = ""
	c.searchSeq++ // invalidate pending debounce timers
	if c.bookmarksView {
		return Request{}, false
	}
	return c.reset(), true
}

// SetSortConfig replaces the sort (nil clears it) and resets pagination.
// Search and location filter are preserved. Inert in bookmarks view, same
// as SetLocationFilter.
func (c *Coordinator) SetSortConfig(s *core.SortConfig) (Request, bool) {
	c.sort = s
	if c.bookmarksView {
		return Request{}, false
	}
	return c.reset(), true
}

// ToggleBookmarksView flips between server-paginated listing and the
// client-held bookmarked set. Search, location, and sort are left as the
// user set them, ready to reapply on exit. Entering with an empty bookmark
// set short-circuits to an empty list with no network call.
func (c *Coordinator) ToggleBookmarksView() (Request, bool) {
	c.bookmarksView = !c.bookmarksView
	if !c.bookmarksView {
		return c.reset(), true
	}
	return c.bookmarksFetch()
}

// bookmarksFetch builds the by-ids fetch for the saved set. The generation
// bump supersedes any in-flight fetch even when we short-circuit.
func (c *Coordinator) bookmarksFetch() (Request, bool) {
	c.gen++
	c.items = nil
	c.skip = 0
	c.total = 0
	c.errMsg = ""
	c.loadMoreErr = ""
	c.loadingMore = false

	ids := c.store.IDs()
	if len(ids) == 0 {
		c.loading = false
		return Request{}, false
	}
	c.loading = true
	return Request{Gen: c.gen, Kind: KindBookmarks, IDs: ids}, true
}

// LoadMore requests the next page for the current parameter set. It is a
// no-op while a fetch is in flight, when everything is already loaded, or
// in bookmarks view (which has no server pagination).
func (c *Coordinator) LoadMore() (Request, bool) {
	if !c.CanLoadMore() {
		return Request{}, false
	}
	c.loadingMore = true
	c.loadMoreErr = ""
	return Request{Gen: c.gen, Kind: KindAppend, Query: c.query(c.skip)}, true
}

// Apply folds a completed fetch back into the state. Results whose
// generation no longer matches are dropped: the last parameter change wins,
// regardless of response arrival order.
func (c *Coordinator) Apply(res Result) {
	if res.Gen != c.gen {
		return
	}

	switch res.Kind {
	case KindAppend:
		c.loadingMore = false
		if res.Err != nil {
			// Keep the loaded list visible; the error is dismissible.
			c.loadMoreErr = errorMessage(res.Err)
			return
		}
		c.items = append(c.items, res.Items...)
		c.skip += len(res.Items)
		c.total = res.Total

	case KindBookmarks:
		c.loading = false
		if res.Err != nil {
			c.items = nil
			c.skip = 0
			c.total = 0
			c.errMsg = errorMessage(res.Err)
			return
		}
		c.errMsg = ""
		c.items = res.Items
		// No pagination envelope in this mode: the flat array is the
		// whole list.
		c.total = len(res.Items)
		c.skip = len(res.Items)

	default: // KindReplace
		c.loading = false
		if res.Err != nil {
			c.items = nil
			c.skip = 0
			c.total = 0
			c.errMsg = errorMessage(res.Err)
			return
		}
		c.errMsg = ""
		c.items = res.Items
		c.skip = len(res.Items)
		c.total = res.Total
	}
}

// reset discards the loaded list, bumps the generation, and builds the
// initial fetch for the current parameters.
func (c *Coordinator) reset() Request {
	c.gen++
	c.items = nil
	c.skip = 0
	c.total = 0
	c.loading = true
	c.loadingMore = false
	c.errMsg = ""
	c.loadMoreErr = ""
	return Request{Gen: c.gen, Kind: KindReplace, Query: c.query(0)}
}

// query snapshots the current parameters at the given offset.
func (c *Coordinator) query(skip int) core.ListQuery {
	return core.ListQuery{
		Search:   c.debounced,
		Location: c.location,
		Sort:     c.sort,
		Limit:    c.pageSize,
		Skip:     skip,
	}
}

// errorMessage prefers the backend's detail message over transport noise.
func errorMessage(err error) string {
	var status *api.StatusError
	if errors.As(err, &status) {
		return status.Detail
	}
	return err.Error()
}

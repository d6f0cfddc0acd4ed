package listing

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shalafinder/shala/internal/api"
	"github.com/shalafinder/shala/internal/bookmarks"
	"github.com/shalafinder/shala/internal/core"
)

// newStore builds an empty bookmark store in a temp dir.
func newStore(t *testing.T) *bookmarks.Store {
	t.Helper()
	store, err := bookmarks.Open(filepath.Join(t.TempDir(), "bookmarks.json"))
	require.NoError(t, err)
	return store
}

// makeEvents builds n sequential events with ids "ev-0" … "ev-(n-1)".
func makeEvents(start, n int) []core.Event {
	events := make([]core.Event, n)
	for i := range events {
		events[i] = core.Event{
			ID:    fmt.Sprintf("ev-%d", start+i),
			Title: fmt.Sprintf("Retreat %d", start+i),
		}
	}
	return events
}

// okPage answers a request with a slice of the given backend, mimicking a
// server that pages a stable result set.
func okPage(req Request, backend []core.Event) Result {
	skip, limit := req.Query.Skip, req.Query.Limit
	if skip > len(backend) {
		skip = len(backend)
	}
	end := skip + limit
	if end > len(backend) {
		end = len(backend)
	}
	return Result{
		Gen:   req.Gen,
		Kind:  req.Kind,
		Items: backend[skip:end],
		Total: len(backend),
	}
}

// TestDebounce_onlyFinalValueCommits verifies that in a burst of
// keystrokes, only the timer tagged with the last sequence commits, and
// that committing fires a fresh fetch at skip 0.
func TestDebounce_onlyFinalValueCommits(t *testing.T) {
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), makeEvents(0, 5)))

	seq1 := c.SetSearchTerm("y")
	seq2 := c.SetSearchTerm("yo")
	seq3 := c.SetSearchTerm("yoga")

	_, ok := c.CommitSearch(seq1)
	assert.False(t, ok, "superseded keystroke must not commit")
	_, ok = c.CommitSearch(seq2)
	assert.False(t, ok)

	req, ok := c.CommitSearch(seq3)
	require.True(t, ok)
	assert.Equal(t, "yoga", req.Query.Search)
	assert.Equal(t, 0, req.Query.Skip)
	assert.Equal(t, "yoga", c.DebouncedSearch())
	assert.Empty(t, c.Items(), "previous page must be discarded before the fetch completes")
}

// TestCommitSearch_unchangedValueIsNoop verifies that re-committing the
// already-debounced value does not trigger a spurious fetch.
func TestCommitSearch_unchangedValueIsNoop(t *testing.T) {
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), makeEvents(0, 3)))

	seq := c.SetSearchTerm("yin")
	_, ok := c.CommitSearch(seq)
	require.True(t, ok)

	seq = c.SetSearchTerm("yin")
	_, ok = c.CommitSearch(seq)
	assert.False(t, ok, "same value committed twice must not re-fetch")
}

// TestPaginationCompleteness walks the 25-item scenario: initial load of
// 10, then load-more to 20, 25, and a final no-op.
func TestPaginationCompleteness(t *testing.T) {
	backend := makeEvents(0, 25)
	c := New(newStore(t))

	c.Apply(okPage(c.Start(), backend))
	require.Len(t, c.Items(), 10)
	require.Equal(t, 10, c.Skip())
	require.Equal(t, 25, c.Total())

	req, ok := c.LoadMore()
	require.True(t, ok)
	assert.Equal(t, 10, req.Query.Skip)
	c.Apply(okPage(req, backend))
	require.Len(t, c.Items(), 20)
	require.Equal(t, 20, c.Skip())

	req, ok = c.LoadMore()
	require.True(t, ok)
	c.Apply(okPage(req, backend))
	require.Len(t, c.Items(), 25, "third page carries exactly the 5 remaining items")
	require.Equal(t, 25, c.Skip())

	_, ok = c.LoadMore()
	assert.False(t, ok, "everything loaded; load-more must be a no-op")

	// No duplicates, backend order preserved.
	seen := make(map[string]bool)
	for i, event := range c.Items() {
		assert.False(t, seen[event.ID], "duplicate id %s", event.ID)
		seen[event.ID] = true
		assert.Equal(t, backend[i].ID, event.ID)
	}
}

// TestLoadMoreGuards verifies that load-more is inert while a fetch is in
// flight or when the list is complete.
func TestLoadMoreGuards(t *testing.T) {
	backend := makeEvents(0, 25)
	c := New(newStore(t))

	// Initial fetch still in flight.
	start := c.Start()
	_, ok := c.LoadMore()
	assert.False(t, ok, "no load-more while the initial fetch is loading")

	c.Apply(okPage(start, backend))
	req, ok := c.LoadMore()
	require.True(t, ok)

	// A second load-more while the first is pending.
	_, ok = c.LoadMore()
	assert.False(t, ok, "no overlapping load-more requests")

	c.Apply(okPage(req, backend))
	assert.True(t, c.CanLoadMore())
}

// TestLoadMoreFailureKeepsList verifies the partial-failure rule: a failed
// page append leaves the loaded list untouched and surfaces a separate,
// dismissible error.
func TestLoadMoreFailureKeepsList(t *testing.T) {
	backend := makeEvents(0, 25)
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), backend))

	req, ok := c.LoadMore()
	require.True(t, ok)
	c.Apply(Result{Gen: req.Gen, Kind: KindAppend, Err: fmt.Errorf("connection reset")})

	assert.Len(t, c.Items(), 10, "loaded items survive a failed append")
	assert.Equal(t, 10, c.Skip())
	assert.Empty(t, c.Err(), "initial-load error stays clear")
	assert.Equal(t, "connection reset", c.LoadMoreErr())

	c.DismissLoadMoreError()
	assert.Empty(t, c.LoadMoreErr())
	assert.True(t, c.CanLoadMore(), "a failed page can be retried")
}

// TestStaleResponseRejection simulates two parameter changes whose
// responses resolve out of order: the response for the superseded
// parameters must not overwrite the newer state.
func TestStaleResponseRejection(t *testing.T) {
	c := New(newStore(t))

	reqOld := c.Start()
	sort := core.SortConfig{Field: core.SortByPrice, Order: core.SortAsc}
	reqNew, ok := c.SetSortConfig(&sort)
	require.True(t, ok)

	// Newer response lands first.
	c.Apply(okPage(reqNew, makeEvents(100, 10)))
	require.Equal(t, "ev-100", c.Items()[0].ID)

	// Stale response arrives late and must be dropped.
	c.Apply(okPage(reqOld, makeEvents(0, 10)))
	assert.Equal(t, "ev-100", c.Items()[0].ID, "stale response overwrote newer state")
	assert.False(t, c.Loading())
}

// TestFilterResetScenario covers a sort change after two pages are loaded
// (20 items, skip 20): the result replaces the list, never appends.
func TestFilterResetScenario(t *testing.T) {
	backend := makeEvents(0, 40)
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), backend))
	more, _ := c.LoadMore()
	c.Apply(okPage(more, backend))
	require.Equal(t, 20, c.Skip())

	sort := core.SortConfig{Field: core.SortByPrice, Order: core.SortAsc}
	req, ok := c.SetSortConfig(&sort)
	require.True(t, ok)
	assert.Equal(t, 0, req.Query.Skip, "sort change must restart from the top")
	assert.Empty(t, c.Items())

	c.Apply(okPage(req, makeEvents(200, 10)))
	assert.Len(t, c.Items(), 10, "list replaced, not appended")
	assert.Equal(t, "ev-200", c.Items()[0].ID)
}

// TestLocationFilterClearsSearch verifies the mutual-exclusion rule:
// applying a location filter wipes the free-text search.
func TestLocationFilterClearsSearch(t *testing.T) {
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), makeEvents(0, 5)))

	seq := c.SetSearchTerm("ashtanga")
	_, ok := c.CommitSearch(seq)
	require.True(t, ok)

	req, ok := c.SetLocationFilter(&core.LocationFilter{Country: "India"})
	require.True(t, ok)
	assert.Empty(t, req.Query.Search)
	assert.Equal(t, "India", req.Query.Location.Country)
	assert.Empty(t, c.RawSearch())
	assert.Empty(t, c.DebouncedSearch())

	// A debounce timer from before the filter change must no longer fire.
	_, ok = c.CommitSearch(seq)
	assert.False(t, ok)
}

// TestSearchDeactivationKeepsTerm: closing the search box is a focus
// change, not a filter change.
func TestSearchDeactivationKeepsTerm(t *testing.T) {
	c := New(newStore(t))
	c.SetSearchActive(true)
	seq := c.SetSearchTerm("nidra")
	_, ok := c.CommitSearch(seq)
	require.True(t, ok)

	c.SetSearchActive(false)
	assert.False(t, c.SearchActive())
	assert.Equal(t, "nidra", c.DebouncedSearch())
}

// TestEmptyBookmarksShortCircuit: entering the saved view with nothing
// saved yields an empty list without any request.
func TestEmptyBookmarksShortCircuit(t *testing.T) {
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), makeEvents(0, 10)))

	_, ok := c.ToggleBookmarksView()
	assert.False(t, ok, "empty bookmark set must not hit the network")
	assert.True(t, c.BookmarksView())
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Total())
	assert.False(t, c.Loading())
}

// TestBookmarksViewFetch verifies the by-ids request and the flat-array
// result handling (total derived from length, no further pagination).
func TestBookmarksViewFetch(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Add("ev-2"))
	require.NoError(t, store.Add("ev-7"))

	c := New(store)
	c.Apply(okPage(c.Start(), makeEvents(0, 10)))

	req, ok := c.ToggleBookmarksView()
	require.True(t, ok)
	assert.Equal(t, KindBookmarks, req.Kind)
	assert.Equal(t, []string{"ev-2", "ev-7"}, req.IDs)
	assert.True(t, c.Loading())

	c.Apply(Result{Gen: req.Gen, Kind: KindBookmarks, Items: makeEvents(2, 2)})
	assert.Len(t, c.Items(), 2)
	assert.Equal(t, 2, c.Total())
	assert.Equal(t, 2, c.Skip())
	assert.False(t, c.CanLoadMore(), "no server pagination in the saved view")
}

// TestBookmarksViewInertFilters: while the saved view is active, server
// filters are recorded but do not fetch; exiting reapplies them.
func TestBookmarksViewInertFilters(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Add("ev-1"))
	c := New(store)
	c.Apply(okPage(c.Start(), makeEvents(0, 10)))

	req, ok := c.ToggleBookmarksView()
	require.True(t, ok)
	c.Apply(Result{Gen: req.Gen, Kind: KindBookmarks, Items: makeEvents(1, 1)})

	_, ok = c.SetLocationFilter(&core.LocationFilter{Country: "Peru"})
	assert.False(t, ok, "location filter is inert in the saved view")
	sort := core.SortConfig{Field: core.SortByStartDate, Order: core.SortDesc}
	_, ok = c.SetSortConfig(&sort)
	assert.False(t, ok)
	seq := c.SetSearchTerm("jungle")
	_, ok = c.CommitSearch(seq)
	assert.False(t, ok, "search commit is inert in the saved view")

	// Exiting rebuilds the server query from everything set meanwhile.
	// The location filter cleared the search term, so only it and the
	// sort survive.
	req, ok = c.ToggleBookmarksView()
	require.True(t, ok)
	assert.False(t, c.BookmarksView())
	assert.Equal(t, KindReplace, req.Kind)
	assert.Equal(t, 0, req.Query.Skip)
	require.NotNil(t, req.Query.Location)
	assert.Equal(t, "Peru", req.Query.Location.Country)
	require.NotNil(t, req.Query.Sort)
	assert.Equal(t, core.SortByStartDate, req.Query.Sort.Field)
}

// TestRefresh_staysInBookmarksView: refreshing while the saved view is
// active re-fetches the saved set by id; it must never fall back to the
// server listing while the header still says saved.
func TestRefresh_staysInBookmarksView(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Add("ev-3"))
	c := New(store)
	c.Apply(okPage(c.Start(), makeEvents(0, 25)))

	req, ok := c.ToggleBookmarksView()
	require.True(t, ok)
	c.Apply(Result{Gen: req.Gen, Kind: KindBookmarks, Items: makeEvents(3, 1)})

	req, ok = c.Refresh()
	require.True(t, ok)
	assert.Equal(t, KindBookmarks, req.Kind)
	assert.Equal(t, []string{"ev-3"}, req.IDs)

	c.Apply(Result{Gen: req.Gen, Kind: KindBookmarks, Items: makeEvents(3, 1)})
	assert.True(t, c.BookmarksView())
	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 1, c.Total())
	assert.False(t, c.CanLoadMore())
}

// TestRefresh_emptyBookmarksShortCircuits: refreshing an empty saved view
// clears the list without a request, same as entering it.
func TestRefresh_emptyBookmarksShortCircuits(t *testing.T) {
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), makeEvents(0, 10)))

	_, ok := c.ToggleBookmarksView()
	require.False(t, ok)

	_, ok = c.Refresh()
	assert.False(t, ok, "empty saved set must not hit the network on refresh")
	assert.True(t, c.BookmarksView())
	assert.Empty(t, c.Items())
	assert.False(t, c.Loading())
}

// TestRefresh_listingViewReissuesQuery: outside the saved view a refresh is
// a first-page fetch with the current parameters intact.
func TestRefresh_listingViewReissuesQuery(t *testing.T) {
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), makeEvents(0, 25)))
	more, _ := c.LoadMore()
	c.Apply(okPage(more, makeEvents(0, 25)))

	seq := c.SetSearchTerm("hatha")
	req, ok := c.CommitSearch(seq)
	require.True(t, ok)
	c.Apply(okPage(req, makeEvents(0, 5)))

	req, ok = c.Refresh()
	require.True(t, ok)
	assert.Equal(t, KindReplace, req.Kind)
	assert.Equal(t, "hatha", req.Query.Search)
	assert.Equal(t, 0, req.Query.Skip)
}

// TestInitialErrorClearsItems: a failed initial fetch must not leave stale
// items next to the error banner, and backend detail messages win over
// transport noise.
func TestInitialErrorClearsItems(t *testing.T) {
	c := New(newStore(t))
	c.Apply(okPage(c.Start(), makeEvents(0, 10)))

	req := c.Start()
	c.Apply(Result{
		Gen:  req.Gen,
		Kind: KindReplace,
		Err:  &api.StatusError{Code: 422, Detail: "invalid sort field"},
	})

	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Total())
	assert.Equal(t, "invalid sort field", c.Err())
	assert.False(t, c.Loading())
}

// TestExecute_routesByKind checks that Execute maps request kinds onto the
// right catalog calls.
func TestExecute_routesByKind(t *testing.T) {
	cat := &fakeCatalog{
		page:  core.Page{Items: makeEvents(0, 3), Total: 3},
		byIDs: makeEvents(5, 2),
	}

	res := Execute(context.Background(), cat, Request{Gen: 7, Kind: KindReplace, Query: core.ListQuery{Limit: 10}})
	assert.Equal(t, uint64(7), res.Gen)
	assert.Len(t, res.Items, 3)
	assert.Equal(t, 3, res.Total)
	assert.Equal(t, 1, cat.listCalls)

	res = Execute(context.Background(), cat, Request{Gen: 8, Kind: KindBookmarks, IDs: []string{"ev-5", "ev-6"}})
	assert.Equal(t, uint64(8), res.Gen)
	assert.Len(t, res.Items, 2)
	assert.Equal(t, 1, cat.byIDsCalls)
}

type fakeCatalog struct {
	page       core.Page
	byIDs      []core.Event
	listCalls  int
	byIDsCalls int
}

func (f *fakeCatalog) ListPublic(ctx context.Context, q core.ListQuery) (core.Page, error) {
	f.listCalls++
	return f.page, nil
}

func (f *fakeCatalog) ByIDs(ctx context.Context, ids []string) ([]core.Event, error) {
	f.byIDsCalls++
	return f.byIDs, nil
}

func (f *fakeCatalog) Stats(ctx context.Context) (core.Stats, error) {
	return core.Stats{}, nil
}

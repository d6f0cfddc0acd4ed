package listing

import (
	"context"

	"github.com/shalafinder/shala/internal/core"
)

// RequestKind says what a fetch is for, which decides how its result is
// folded back into the coordinator.
type RequestKind int

const (
	// KindReplace is the initial fetch for a parameter set; the loaded
	// list is replaced wholesale.
	KindReplace RequestKind = iota
	// KindAppend is a load-more page; items are appended.
	KindAppend
	// KindBookmarks is a by-ids fetch for the bookmarks view.
	KindBookmarks
)

// Request describes one fetch the coordinator wants performed. The caller
// (TUI command, CLI, test) executes it against a core.Catalog and feeds the
// outcome back through Apply. Gen ties the eventual Result to the parameter
// set that produced it.
type Request struct {
	Gen  uint64
	Kind RequestKind
	// Query is set for KindReplace and KindAppend
	Query core.ListQuery
	// IDs is set for KindBookmarks
	IDs []string
}

// Result is the outcome of executing a Request.
type Result struct {
	Gen   uint64
	Kind  RequestKind
	Items []core.Event
	// Total is the server-reported total for KindReplace/KindAppend
	Total int
	Err   error
}

// Execute runs the request against a catalog and packages the outcome.
// Splitting the I/O out keeps the coordinator itself synchronous and
// directly testable.
func Execute(ctx context.Context, cat core.Catalog, req Request) Result {
	res := Result{Gen: req.Gen, Kind: req.Kind}
	switch req.Kind {
	case KindBookmarks:
		items, err := cat.ByIDs(ctx, req.IDs)
		res.Items, res.Err = items, err
	default:
		page, err := cat.ListPublic(ctx, req.Query)
		res.Items, res.Total, res.Err = page.Items, page.Total, err
	}
	return res
}

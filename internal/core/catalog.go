package core

import "context"

// Catalog is the read side of the retreat directory. The REST client
// implements it; tests substitute fakes.
type Catalog interface {
	// ListPublic returns one page of public events matching the query.
	// This should block until done or context is cancelled.
	ListPublic(ctx context.Context, q ListQuery) (Page, error)
	// ByIDs returns the events for the given ids as a flat list, with no
	// pagination envelope. Used by the bookmarks view.
	ByIDs(ctx context.Context, ids []string) ([]Event, error)
	// Stats returns the directory's aggregate counters.
	Stats(ctx context.Context) (Stats, error)
}

// EventDraft is the organizer-editable shape of an event, as read from a
// draft file. The backend assigns the ID on create.
type EventDraft struct {
	Title       string    `yaml:"title" json:"title"`
	Description string    `yaml:"description,omitempty" json:"description,omitempty"`
	StartDate   Date      `yaml:"start_date" json:"start_date"`
	EndDate     Date      `yaml:"end_date,omitempty" json:"end_date,omitempty"`
	Price       *Price    `yaml:"price,omitempty" json:"price,omitempty"`
	Location    *Location `yaml:"location,omitempty" json:"location,omitempty"`
	Images      []string  `yaml:"images,omitempty" json:"images,omitempty"`
	IsPublic    bool      `yaml:"is_public" json:"is_public"`
	Tags        []string  `yaml:"tags,omitempty" json:"tags,omitempty"`
}

// Publisher is the write side, used by the organizer submit command.
// All operations require an API token.
type Publisher interface {
	Create(ctx context.Context, draft EventDraft) (Event, error)
	Update(ctx context.Context, id string, draft EventDraft) (Event, error)
}

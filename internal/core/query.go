package core

import "fmt"

// SortField selects the backend sort key for public listings.
type SortField string

const (
	SortByStartDate SortField = "start_date"
	SortByPrice     SortField = "price"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// SortConfig is a single-key sort. Multi-key sorts are not supported; the
// backend guarantees a deterministic tie-break on its side, so the client
// never re-sorts.
type SortConfig struct {
	Field SortField
	Order SortOrder
}

// NewSortConfig validates field and order. Unknown values are rejected here
// rather than handled at request time.
func NewSortConfig(field SortField, order SortOrder) (SortConfig, error) {
	switch field {
	case SortByStartDate, SortByPrice:
	default:
		return SortConfig{}, fmt.Errorf("unknown sort field %q", field)
	}
	switch order {
	case SortAsc, SortDesc:
	default:
		return SortConfig{}, fmt.Errorf("unknown sort order %q", order)
	}
	return SortConfig{Field: field, Order: order}, nil
}

// LocationFilter narrows listings by a partial match on country or
// state/province. At most one of the two is meaningful at a time, but the
// backend tolerates both being set.
type LocationFilter struct {
	Country       string
	StateProvince string
}

// IsZero reports whether the filter matches everything.
func (f LocationFilter) IsZero() bool {
	return f.Country == "" && f.StateProvince == ""
}

// ListQuery is one consistent snapshot of the user-adjustable listing
// parameters, ready to become a request.
type ListQuery struct {
	// Free-text search term; empty means no search
	Search   string
	Location *LocationFilter
	Sort     *SortConfig
	Limit    int
	Skip     int
}

// Page is one slice of the public listing plus the server-known total.
type Page struct {
	Items []Event `json:"items"`
	Total int     `json:"total"`
}

// Stats carries the aggregate counters shown on the directory's
// informational page.
type Stats struct {
	TotalEvents    int `json:"total_events"`
	UpcomingEvents int `json:"upcoming_events"`
	Countries      int `json:"countries"`
	Organizers     int `json:"organizers"`
}

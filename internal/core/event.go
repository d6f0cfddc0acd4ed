package core

// Price is the advertised cost of attending an event.
type Price struct {
	Amount float64 `json:"amount"`
	// ISO 4217 code, e.g. "EUR", "USD"
	Currency string `json:"currency"`
}

// Location describes where an event takes place. All fields are optional
// on the wire; organizers often fill in only a subset.
type Location struct {
	Country       string `json:"country,omitempty"`
	CountryCode   string `json:"country_code,omitempty"`
	StateProvince string `json:"state_province,omitempty"`
	City          string `json:"city,omitempty"`
	// Free-text venue name, e.g. "Casa Om, Lake Atitlán"
	Title string `json:"title,omitempty"`
}

// Event is a retreat or workshop listing as the backend returns it for
// public browsing. Identity is stable for the lifetime of a listing session;
// the client never mutates events, only reads them.
type Event struct {
	// Unique ID (assigned by the backend)
	ID    string `json:"id"`
	Title string `json:"title"`
	// Long-form description, may contain organizer-provided HTML
	Description string `json:"description,omitempty"`
	// StartDate is required; EndDate is optional (zero = single-day)
	StartDate Date      `json:"start_date"`
	EndDate   Date      `json:"end_date,omitempty"`
	Price     *Price    `json:"price,omitempty"`
	Location  *Location `json:"location,omitempty"`
	// CDN image references, in organizer-chosen order
	Images []string `json:"images,omitempty"`
	// Private events are visible only to their organizer
	IsPublic bool     `json:"is_public"`
	Tags     []string `json:"tags,omitempty"`
}

// LocationString renders the most specific available location fields for
// one-line display.
func (e Event) LocationString() string {
	if e.Location == nil {
		return ""
	}
	loc := e.Location
	switch {
	case loc.Title != "":
		return loc.Title
	case loc.City != "" && loc.Country != "":
		return loc.City + ", " + loc.Country
	case loc.City != "":
		return loc.City
	case loc.StateProvince != "" && loc.Country != "":
		return loc.StateProvince + ", " + loc.Country
	default:
		return loc.Country
	}
}

// MultiDay reports whether the event spans more than one calendar day.
func (e Event) MultiDay() bool {
	return !e.EndDate.IsZero() && e.EndDate.After(e.StartDate)
}

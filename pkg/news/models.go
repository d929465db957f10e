package news

import "time"

// Kind selects which of the two search templates an item came from
type Kind string

const (
	KindNews   Kind = "news"
	KindEvents Kind = "events"
)

// searchResponse is the upstream search envelope
type searchResponse struct {
	Items      []RawItem `json:"items"`
	ItemsTotal int       `json:"items_total"`
	Batching   *Batching `json:"batching,omitempty"`
}

// Batching carries the upstream pagination links. Only a single bulk
// fetch is issued, so these are decoded but never followed.
type Batching struct {
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
	Next  string `json:"next,omitempty"`
}

// RawItem is the heterogeneous upstream item shape. News items carry an
// ISO "effective" date and a school; event items carry a free-text German
// date line and a location.
type RawItem struct {
	ID          string `json:"@id"` // Absolute link to the page
	Title       string `json:"title"`
	Description string `json:"description"`
	Effective   string `json:"effective,omitempty"`
	EventDate   string `json:"event_date,omitempty"`
	School      string `json:"school,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
}

// Item is the flat normalized shape used for display and filtering
type Item struct {
	Title       string
	Link        string
	Date        time.Time // Zero when the upstream date was unparseable
	Description string
	Facet       string // School for news, location for events
	Image       string
}

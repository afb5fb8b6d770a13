package models

import "time"

type SearchQuery struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	DepartDate string    `json:"depart_date"`
	ReturnDate string    `json:"return_date,omitempty"`
	Passengers int       `json:"passengers"`
	Class      FareClass `json:"class"`
	TripType   string    `json:"trip_type"`
}

// Valid reports whether the query carries the fields a search needs.
func (q *SearchQuery) Valid() bool {
	return q != nil && q.From != "" && q.To != "" && q.DepartDate != ""
}

type SearchHistoryEntry struct {
	From       string    `json:"from"`
	To         string    `json:"to"`
	Date       string    `json:"date"`
	Class      FareClass `json:"class"`
	Passengers int       `json:"passengers"`
	Timestamp  time.Time `json:"timestamp"`
}

package flight

import "fmt"

// Record is a single catalog entry. FlightNo is a display label only, it is
// not unique across routes and must never be used as a lookup key.
type Record struct {
	FlightNo  string `json:"flight_no"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Time      string `json:"time"`
	Price     int    `json:"price"`
}

// DisplayString renders the record the way the booking selector and the
// summary fallback list present it.
func (r Record) DisplayString() string {
	return fmt.Sprintf("%s - %s - Rs %d", r.FlightNo, r.Time, r.Price)
}

// SummaryLine renders the record for the summarizer prompt.
func (r Record) SummaryLine() string {
	return fmt.Sprintf("%s: %s - Rs %d", r.FlightNo, r.Time, r.Price)
}

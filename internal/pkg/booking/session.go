package booking

import (
	"time"

	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/flight"
)

// State is the position of a booking session in the workflow. The initial
// Idle state has no stored session; a session comes into existence as
// Searched and Confirmed is terminal.
type State string

const (
	StateSearched             State = "searched"
	StateSelected             State = "selected"
	StateAwaitingConfirmation State = "awaiting_confirmation"
	StateConfirmed            State = "confirmed"
)

// Selection points at a flight inside the session's own result list. The
// index keeps the selection bound to exactly that result set; flight numbers
// are not unique and cannot serve as keys.
type Selection struct {
	FlightIndex int `json:"flight_index"`
	TicketCount int `json:"ticket_count"`
}

// Confirmation is the terminal projection produced by a confirmed booking.
// NotifyEmail is a declared, display-only destination; no message is sent.
type Confirmation struct {
	Flight      string `json:"flight"`
	Passenger   string `json:"passenger"`
	TicketCount int    `json:"ticket_count"`
	NotifyEmail string `json:"notify_email"`
}

// Session carries the workflow state between user actions. TravelDate is
// collected by the search form and echoed back but has no effect on
// matching.
type Session struct {
	ID           string          `json:"id"`
	State        State           `json:"state"`
	Departure    string          `json:"departure"`
	Arrival      string          `json:"arrival"`
	TravelDate   string          `json:"travel_date"`
	Flights      []flight.Record `json:"flights"`
	Selection    *Selection      `json:"selection,omitempty"`
	Confirmation *Confirmation   `json:"confirmation,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

package dto

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/exception"
)

// Flight is the wire representation of a catalog record. Display is the
// selector string shown to the user and used in the confirmation.
type Flight struct {
	FlightNo  string `json:"flight_no"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Time      string `json:"time"`
	Price     int    `json:"price"`
	Display   string `json:"display"`
}

// SearchRequest carries the search form fields. TravelDate is collected and
// echoed back but has no effect on matching; the original product behaves
// the same way.
type SearchRequest struct {
	Departure  string `json:"departure" validate:"required"`
	Arrival    string `json:"arrival" validate:"required"`
	TravelDate string `json:"travel_date" validate:"required"`
}

func (s *SearchRequest) Bind(r *http.Request) error {
	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SearchRequest) Validate() error {
	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type SearchResponse struct {
	SessionID     string        `json:"session_id"`
	State         string        `json:"state"`
	Criteria      SearchRequest `json:"criteria"`
	Summary       string        `json:"summary"`
	SummarySource string        `json:"summary_source"`
	Flights       []Flight      `json:"flights"`
}

// Summary sources.
const (
	SummarySourceAI       = "ai"
	SummarySourceFallback = "fallback"
)

// SelectRequest picks a flight out of the session's current search result by
// index. Ticket count bounds are enforced here, at the input surface; the
// workflow assumes a pre-validated value.
type SelectRequest struct {
	SessionID   string `json:"-"`
	FlightIndex *int   `json:"flight_index" validate:"required,gte=0"`
	TicketCount int    `json:"ticket_count" validate:"required,min=1,max=10"`
}

func (s *SelectRequest) Bind(r *http.Request) error {
	s.SessionID = chi.URLParam(r, "sessionID")

	if err := s.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (s *SelectRequest) Validate() error {
	if s.SessionID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "session id is required",
		}
	}

	if err := ValidateSingleError(s); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

// SessionRequest addresses an existing booking session without a body.
type SessionRequest struct {
	SessionID string `json:"-"`
}

// ConfirmRequest carries the passenger form. Name must be present so a
// confirmation always names a passenger; email and phone are accepted as-is
// with no format validation.
type ConfirmRequest struct {
	SessionID string `json:"-"`
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

func (c *ConfirmRequest) Bind(r *http.Request) error {
	c.SessionID = chi.URLParam(r, "sessionID")

	if err := c.Validate(); err != nil {
		return fmt.Errorf("error validate request: %w", err)
	}

	return nil
}

func (c *ConfirmRequest) Validate() error {
	if c.SessionID == "" {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    "session id is required",
		}
	}

	if err := ValidateSingleError(c); err != nil {
		return exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return nil
}

type Selection struct {
	Flight      string `json:"flight"`
	TicketCount int    `json:"ticket_count"`
}

// Confirmation echoes the booking back to the user. Message declares the
// confirmation email; nothing is actually sent.
type Confirmation struct {
	Flight      string `json:"flight"`
	Passenger   string `json:"passenger"`
	TicketCount int    `json:"ticket_count"`
	NotifyEmail string `json:"notify_email"`
	Message     string `json:"message"`
}

// BookingResponse is the session view returned by every workflow transition.
type BookingResponse struct {
	SessionID    string        `json:"session_id"`
	State        string        `json:"state"`
	Flights      []Flight      `json:"flights,omitempty"`
	Selection    *Selection    `json:"selection,omitempty"`
	Confirmation *Confirmation `json:"confirmation,omitempty"`
}

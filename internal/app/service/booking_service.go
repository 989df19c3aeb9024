package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hamzamalik/flight-booking-assistant/internal/app/dto"
	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/booking"
	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/flight"
)

type SessionStorer interface {
	GetLockKey(sessionID string) string
	AcquireLock(ctx context.Context, key string, timeout time.Duration) (bool, error)
	ReleaseLock(ctx context.Context, key string) error
	GetSession(ctx context.Context, sessionID string) (booking.Session, error)
	SetSession(ctx context.Context, session booking.Session, expiration time.Duration) error
}

type Summarizer interface {
	Summarize(ctx context.Context, flights []flight.Record) (string, error)
}

// BookingService drives the search -> select -> confirm workflow. Each
// transition checks its precondition against the stored session before
// advancing; out-of-order actions are refused.
type BookingService struct {
	Store              SessionStorer
	Summarizer         Summarizer
	SessionExpiration  time.Duration
	SessionLockTimeout time.Duration
}

func NewBookingService(store SessionStorer, summarizer Summarizer,
	sessionExpiration, sessionLockTimeout time.Duration) *BookingService {
	return &BookingService{
		Store:              store,
		Summarizer:         summarizer,
		SessionExpiration:  sessionExpiration,
		SessionLockTimeout: sessionLockTimeout,
	}
}

// SearchFlights matches the route against the catalog and opens a fresh
// session in the searched state. Every search gets its own session, so a
// re-search implicitly discards any in-progress selection.
// SearchFlights godoc
// @Summary      Search flights
// @Tags         Flights
// @Description  Search flights by departure and arrival city and start a booking session
// @Param        request  body      dto.SearchRequest  true  "Search Request"
// @Success      200      {object}  dto.SearchResponse
// @Failure      404      {object}  dto.ErrorResponse
// @Failure      400      {object}  dto.ErrorResponse
// @Router       /api/v1/flights/search [post]
func (s *BookingService) SearchFlights(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error) {
	results := flight.FindFlights(req.Departure, req.Arrival)
	if len(results) == 0 {
		return dto.SearchResponse{}, ErrNoFlightsFound
	}

	summary, source := s.summarize(ctx, results)

	session := booking.Session{
		ID:         uuid.NewString(),
		State:      booking.StateSearched,
		Departure:  req.Departure,
		Arrival:    req.Arrival,
		TravelDate: req.TravelDate,
		Flights:    results,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Store.SetSession(ctx, session, s.SessionExpiration); err != nil {
		return dto.SearchResponse{}, fmt.Errorf("failed to store booking session: %w", err)
	}

	return dto.SearchResponse{
		SessionID:     session.ID,
		State:         string(session.State),
		Criteria:      req,
		Summary:       summary,
		SummarySource: source,
		Flights:       flightsToDTO(results),
	}, nil
}

// SelectFlight binds a flight from the session's current result list plus a
// ticket count to the session. Re-selection before continuing is allowed.
// SelectFlight godoc
// @Summary      Select a flight
// @Tags         Bookings
// @Param        sessionID  path      string             true  "Session ID"
// @Param        request    body      dto.SelectRequest  true  "Select Request"
// @Success      200        {object}  dto.BookingResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{sessionID}/select [post]
func (s *BookingService) SelectFlight(ctx context.Context, req dto.SelectRequest) (dto.BookingResponse, error) {
	session, release, err := s.lockSession(ctx, req.SessionID)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	defer release()

	if session.State != booking.StateSearched && session.State != booking.StateSelected {
		return dto.BookingResponse{}, ErrInvalidBookingState
	}

	index := *req.FlightIndex
	if index >= len(session.Flights) {
		return dto.BookingResponse{}, ErrFlightNotInResults
	}

	session.State = booking.StateSelected
	session.Selection = &booking.Selection{
		FlightIndex: index,
		TicketCount: req.TicketCount,
	}

	if err := s.Store.SetSession(ctx, session, s.SessionExpiration); err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to store booking session: %w", err)
	}

	return sessionToDTO(session), nil
}

// ContinueToBooking moves a selected session to the passenger form step.
// ContinueToBooking godoc
// @Summary      Continue to booking
// @Tags         Bookings
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  dto.BookingResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{sessionID}/continue [post]
func (s *BookingService) ContinueToBooking(ctx context.Context, req dto.SessionRequest) (dto.BookingResponse, error) {
	session, release, err := s.lockSession(ctx, req.SessionID)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	defer release()

	if session.State != booking.StateSelected {
		return dto.BookingResponse{}, ErrInvalidBookingState
	}

	session.State = booking.StateAwaitingConfirmation

	if err := s.Store.SetSession(ctx, session, s.SessionExpiration); err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to store booking session: %w", err)
	}

	return sessionToDTO(session), nil
}

// ConfirmBooking produces the terminal confirmation from the stored
// selection and the submitted passenger details. The confirmation email is a
// declared outcome only; nothing is dispatched.
// ConfirmBooking godoc
// @Summary      Confirm booking
// @Tags         Bookings
// @Param        sessionID  path      string              true  "Session ID"
// @Param        request    body      dto.ConfirmRequest  true  "Confirm Request"
// @Success      200        {object}  dto.BookingResponse
// @Failure      400        {object}  dto.ErrorResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Failure      409        {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{sessionID}/confirm [post]
func (s *BookingService) ConfirmBooking(ctx context.Context, req dto.ConfirmRequest) (dto.BookingResponse, error) {
	session, release, err := s.lockSession(ctx, req.SessionID)
	if err != nil {
		return dto.BookingResponse{}, err
	}
	defer release()

	if session.State != booking.StateAwaitingConfirmation || session.Selection == nil {
		return dto.BookingResponse{}, ErrInvalidBookingState
	}

	record := session.Flights[session.Selection.FlightIndex]

	session.State = booking.StateConfirmed
	session.Confirmation = &booking.Confirmation{
		Flight:      record.DisplayString(),
		Passenger:   req.Name,
		TicketCount: session.Selection.TicketCount,
		NotifyEmail: req.Email,
	}

	if err := s.Store.SetSession(ctx, session, s.SessionExpiration); err != nil {
		return dto.BookingResponse{}, fmt.Errorf("failed to store booking session: %w", err)
	}

	return sessionToDTO(session), nil
}

// GetBooking returns the current session view.
// GetBooking godoc
// @Summary      Get booking session
// @Tags         Bookings
// @Param        sessionID  path      string  true  "Session ID"
// @Success      200        {object}  dto.BookingResponse
// @Failure      404        {object}  dto.ErrorResponse
// @Router       /api/v1/bookings/{sessionID} [get]
func (s *BookingService) GetBooking(ctx context.Context, req dto.SessionRequest) (dto.BookingResponse, error) {
	session, err := s.Store.GetSession(ctx, req.SessionID)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			return dto.BookingResponse{}, ErrSessionNotFound
		}

		return dto.BookingResponse{}, fmt.Errorf("failed to get booking session: %w", err)
	}

	return sessionToDTO(session), nil
}

// summarize returns AI prose when the gateway succeeds and the deterministic
// raw flight list otherwise. Unavailability is non-fatal and never surfaces
// to the caller as an error.
func (s *BookingService) summarize(ctx context.Context, results []flight.Record) (summary, source string) {
	summary, err := s.Summarizer.Summarize(ctx, results)
	if err != nil {
		slog.WarnContext(ctx, "summarization unavailable, falling back to raw list",
			slog.String("error", err.Error()))

		return fallbackList(results), dto.SummarySourceFallback
	}

	return summary, dto.SummarySourceAI
}

// lockSession serializes transitions per session. The returned release must
// be called once the transition completed.
func (s *BookingService) lockSession(ctx context.Context, sessionID string) (booking.Session, func(), error) {
	lockKey := s.Store.GetLockKey(sessionID)

	acquired, err := s.Store.AcquireLock(ctx, lockKey, s.SessionLockTimeout)
	if err != nil {
		return booking.Session{}, nil, fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !acquired {
		return booking.Session{}, nil, ErrTransitionInProgress
	}

	release := func() {
		if err := s.Store.ReleaseLock(ctx, lockKey); err != nil {
			slog.WarnContext(ctx, "failed to release session lock",
				slog.String("error", err.Error()))
		}
	}

	session, err := s.Store.GetSession(ctx, sessionID)
	if err != nil {
		release()

		if errors.Is(err, booking.ErrSessionNotFound) {
			return booking.Session{}, nil, ErrSessionNotFound
		}

		return booking.Session{}, nil, fmt.Errorf("failed to get booking session: %w", err)
	}

	return session, release, nil
}

func fallbackList(results []flight.Record) string {
	lines := make([]string, len(results))
	for i, record := range results {
		lines[i] = record.DisplayString()
	}

	return strings.Join(lines, "\n")
}

func flightsToDTO(records []flight.Record) []dto.Flight {
	flights := make([]dto.Flight, len(records))
	for i, record := range records {
		flights[i] = dto.Flight{
			FlightNo:  record.FlightNo,
			Departure: record.Departure,
			Arrival:   record.Arrival,
			Time:      record.Time,
			Price:     record.Price,
			Display:   record.DisplayString(),
		}
	}

	return flights
}

func sessionToDTO(session booking.Session) dto.BookingResponse {
	resp := dto.BookingResponse{
		SessionID: session.ID,
		State:     string(session.State),
		Flights:   flightsToDTO(session.Flights),
	}

	if session.Selection != nil {
		resp.Selection = &dto.Selection{
			Flight:      session.Flights[session.Selection.FlightIndex].DisplayString(),
			TicketCount: session.Selection.TicketCount,
		}
	}

	if session.Confirmation != nil {
		resp.Confirmation = &dto.Confirmation{
			Flight:      session.Confirmation.Flight,
			Passenger:   session.Confirmation.Passenger,
			TicketCount: session.Confirmation.TicketCount,
			NotifyEmail: session.Confirmation.NotifyEmail,
			Message:     fmt.Sprintf("A confirmation email has been sent to %s", session.Confirmation.NotifyEmail),
		}
	}

	return resp
}

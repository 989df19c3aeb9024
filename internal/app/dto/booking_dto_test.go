//go:build unit

package dto

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func ptrInt(i int) *int { return &i }

func TestSearchRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req SearchRequest, wantErr bool, wantMsg string) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}

			if wantErr && err != nil {
				if diff := cmp.Diff(wantMsg, err.Error()); diff != "" {
					t.Fatalf("Validate() error message mismatch (-want +got):\n%s", diff)
				}
			}
		}
	}

	t.Run("valid_request", validateRequest(SearchRequest{
		Departure:  "Karachi",
		Arrival:    "Islamabad",
		TravelDate: "2026-09-01",
	}, false, ""))

	t.Run("missing_departure", validateRequest(SearchRequest{
		Arrival:    "Islamabad",
		TravelDate: "2026-09-01",
	}, true, "departure is a required field"))

	t.Run("missing_travel_date", validateRequest(SearchRequest{
		Departure: "Karachi",
		Arrival:   "Islamabad",
	}, true, "travel_date is a required field"))
}

func TestSelectRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req SelectRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("one_ticket_accepted", validateRequest(SelectRequest{
		SessionID:   "abc",
		FlightIndex: ptrInt(0),
		TicketCount: 1,
	}, false))

	t.Run("ten_tickets_accepted", validateRequest(SelectRequest{
		SessionID:   "abc",
		FlightIndex: ptrInt(0),
		TicketCount: 10,
	}, false))

	t.Run("zero_tickets_rejected", validateRequest(SelectRequest{
		SessionID:   "abc",
		FlightIndex: ptrInt(0),
		TicketCount: 0,
	}, true))

	t.Run("eleven_tickets_rejected", validateRequest(SelectRequest{
		SessionID:   "abc",
		FlightIndex: ptrInt(0),
		TicketCount: 11,
	}, true))

	t.Run("missing_flight_index_rejected", validateRequest(SelectRequest{
		SessionID:   "abc",
		TicketCount: 2,
	}, true))

	t.Run("missing_session_id_rejected", validateRequest(SelectRequest{
		FlightIndex: ptrInt(0),
		TicketCount: 2,
	}, true))
}

func TestConfirmRequest_Validate(t *testing.T) {
	_ = InitValidator()

	validateRequest := func(req ConfirmRequest, wantErr bool) func(t *testing.T) {
		return func(t *testing.T) {
			err := req.Validate()
			if (err != nil) != wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, wantErr)
			}
		}
	}

	t.Run("valid_request", validateRequest(ConfirmRequest{
		SessionID: "abc",
		Name:      "A. Khan",
		Email:     "a@x.com",
		Phone:     "0300-1234567",
	}, false))

	// email and phone carry no format validation; empty values pass through
	t.Run("empty_email_and_phone_accepted", validateRequest(ConfirmRequest{
		SessionID: "abc",
		Name:      "A. Khan",
	}, false))

	t.Run("missing_name_rejected", validateRequest(ConfirmRequest{
		SessionID: "abc",
		Email:     "a@x.com",
	}, true))

	t.Run("missing_session_id_rejected", validateRequest(ConfirmRequest{
		Name: "A. Khan",
	}, true))
}

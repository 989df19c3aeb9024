package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-kit/kit/endpoint"

	"github.com/hamzamalik/flight-booking-assistant/internal/app/dto"
)

type BookingService interface {
	SearchFlights(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
	SelectFlight(ctx context.Context, req dto.SelectRequest) (dto.BookingResponse, error)
	ContinueToBooking(ctx context.Context, req dto.SessionRequest) (dto.BookingResponse, error)
	ConfirmBooking(ctx context.Context, req dto.ConfirmRequest) (dto.BookingResponse, error)
	GetBooking(ctx context.Context, req dto.SessionRequest) (dto.BookingResponse, error)
}

type Endpoints struct {
	Booking BookingEndpoint
}

type BookingEndpoint struct {
	SearchFlights     endpoint.Endpoint
	SelectFlight      endpoint.Endpoint
	ContinueToBooking endpoint.Endpoint
	ConfirmBooking    endpoint.Endpoint
	GetBooking        endpoint.Endpoint
}

func MakeBookingEndpoint(service BookingService) BookingEndpoint {
	return BookingEndpoint{
		SearchFlights:     makeSearchFlightsEndpoint(service),
		SelectFlight:      makeSelectFlightEndpoint(service),
		ContinueToBooking: makeContinueToBookingEndpoint(service),
		ConfirmBooking:    makeConfirmBookingEndpoint(service),
		GetBooking:        makeGetBookingEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SearchFlights(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeSelectFlightEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SelectRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.SelectFlight(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeContinueToBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SessionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.ContinueToBooking(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeConfirmBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.ConfirmRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.ConfirmBooking(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

func makeGetBookingEndpoint(service BookingService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SessionRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		response, err := service.GetBooking(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("booking service: %w", err)
		}

		return response, nil
	}
}

package summarizer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis_rate/v10"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/flight"
)

type allowAllLimiter struct {
	allowed int
	err     error
}

func (l *allowAllLimiter) Allow(_ context.Context, _ string, _ redis_rate.Limit) (*redis_rate.Result, error) {
	if l.err != nil {
		return nil, l.err
	}

	return &redis_rate.Result{Allowed: l.allowed}, nil
}

func testFlights() []flight.Record {
	return []flight.Record{
		{FlightNo: "PK301", Departure: "Karachi", Arrival: "Islamabad", Time: "08:00 AM", Price: 15000},
		{FlightNo: "PK303", Departure: "Karachi", Arrival: "Dubai", Time: "06:00 AM", Price: 78000},
	}
}

func TestBuildPrompt(t *testing.T) {
	got := buildPrompt(testFlights())

	want := "Here are the available flights:\n" +
		"PK301: 08:00 AM - Rs 15000\n" +
		"PK303: 06:00 AM - Rs 78000\n" +
		"Summarize these options briefly for a customer booking from a travel app."

	assert.Equal(t, want, got)
}

func TestGateway_Summarize_Closure(t *testing.T) {
	summarizeRequest := func(
		mockSetup func(m *MockChatCompleter),
		limiter RateLimiter,
		want string,
		wantErr error,
	) func(t *testing.T) {
		return func(t *testing.T) {
			m := NewMockChatCompleter(t)
			mockSetup(m)

			g := NewGateway(m, Config{
				Model:        "gpt-4o",
				Timeout:      5 * time.Second,
				RateLimitRPS: 2,
				Limiter:      limiter,
			})

			got, err := g.Summarize(context.Background(), testFlights())

			if wantErr != nil {
				assert.ErrorIs(t, err, wantErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}
	}

	t.Run("success_trims_whitespace", summarizeRequest(
		func(m *MockChatCompleter) {
			m.On("CreateChatCompletion", mock.Anything, mock.MatchedBy(func(req openai.ChatCompletionRequest) bool {
				return req.Model == "gpt-4o" &&
					len(req.Messages) == 1 &&
					req.Messages[0].Role == openai.ChatMessageRoleUser &&
					req.Messages[0].Content == buildPrompt(testFlights())
			})).Return(openai.ChatCompletionResponse{
				Choices: []openai.ChatCompletionChoice{
					{Message: openai.ChatCompletionMessage{Content: "  Two options from Karachi.\n"}},
				},
			}, nil)
		},
		&allowAllLimiter{allowed: 1},
		"Two options from Karachi.",
		nil,
	))

	t.Run("api_error", summarizeRequest(
		func(m *MockChatCompleter) {
			m.On("CreateChatCompletion", mock.Anything, mock.Anything).
				Return(openai.ChatCompletionResponse{}, errors.New("401 invalid api key"))
		},
		&allowAllLimiter{allowed: 1},
		"",
		ErrUnavailable,
	))

	t.Run("empty_choices", summarizeRequest(
		func(m *MockChatCompleter) {
			m.On("CreateChatCompletion", mock.Anything, mock.Anything).
				Return(openai.ChatCompletionResponse{}, nil)
		},
		&allowAllLimiter{allowed: 1},
		"",
		ErrUnavailable,
	))

	t.Run("rate_limited", summarizeRequest(
		func(_ *MockChatCompleter) {},
		&allowAllLimiter{allowed: 0},
		"",
		ErrUnavailable,
	))

	t.Run("limiter_error", summarizeRequest(
		func(_ *MockChatCompleter) {},
		&allowAllLimiter{err: errors.New("redis down")},
		"",
		ErrUnavailable,
	))

	t.Run("no_limiter_configured", summarizeRequest(
		func(m *MockChatCompleter) {
			m.On("CreateChatCompletion", mock.Anything, mock.Anything).
				Return(openai.ChatCompletionResponse{
					Choices: []openai.ChatCompletionChoice{
						{Message: openai.ChatCompletionMessage{Content: "ok"}},
					},
				}, nil)
		},
		nil,
		"ok",
		nil,
	))
}

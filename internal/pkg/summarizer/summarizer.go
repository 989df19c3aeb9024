package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis_rate/v10"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/flight"
)

// ErrUnavailable is the single failure outcome of the gateway. Callers must
// not learn why generation failed, only that it did; the expected recovery is
// the raw flight list fallback.
var ErrUnavailable = errors.New("summarization unavailable")

// ChatCompleter is the slice of the OpenAI client the gateway uses.
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// RateLimiter is satisfied by *redis_rate.Limiter.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

type Config struct {
	Model        string
	Timeout      time.Duration
	RateLimitRPS int
	Limiter      RateLimiter
}

// Gateway turns a search result into customer-facing prose through a single
// chat-completion request. One attempt per call, no retries.
type Gateway struct {
	client       ChatCompleter
	model        string
	timeout      time.Duration
	rateLimitRPS int
	limiter      RateLimiter
}

func NewGateway(client ChatCompleter, config Config) *Gateway {
	return &Gateway{
		client:       client,
		model:        config.Model,
		timeout:      config.Timeout,
		rateLimitRPS: config.RateLimitRPS,
		limiter:      config.Limiter,
	}
}

// Summarize asks the text-generation service for a brief summary of the
// given flights, which must be non-empty. Any failure of the call, including
// timeout and rate limiting, collapses into ErrUnavailable.
func (g *Gateway) Summarize(ctx context.Context, flights []flight.Record) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	if g.limiter != nil {
		res, err := g.limiter.Allow(ctx, "limit:summarizer", redis_rate.PerSecond(g.rateLimitRPS))
		if err != nil {
			return "", unavailable(err)
		}

		if res.Allowed == 0 {
			return "", unavailable(errors.New("rate limit exceeded"))
		}
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: buildPrompt(flights),
			},
		},
	})
	if err != nil {
		return "", unavailable(err)
	}

	if len(resp.Choices) == 0 {
		return "", unavailable(errors.New("response contains no choices"))
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func buildPrompt(flights []flight.Record) string {
	lines := make([]string, len(flights))
	for i, record := range flights {
		lines[i] = record.SummaryLine()
	}

	return fmt.Sprintf(
		"Here are the available flights:\n%s\nSummarize these options briefly for a customer booking from a travel app.",
		strings.Join(lines, "\n"))
}

// unavailable keeps the cause in the message for logging while exposing only
// the unified sentinel to errors.Is.
func unavailable(cause error) error {
	return fmt.Errorf("%w: %s", ErrUnavailable, cause)
}

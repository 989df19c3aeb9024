package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"

	"github.com/hamzamalik/flight-booking-assistant/internal/app/config"
	"github.com/hamzamalik/flight-booking-assistant/internal/app/dto"
	"github.com/hamzamalik/flight-booking-assistant/internal/app/endpoints"
	"github.com/hamzamalik/flight-booking-assistant/internal/app/service"
	"github.com/hamzamalik/flight-booking-assistant/internal/app/transport"
	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/booking"
	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/logger"
	"github.com/hamzamalik/flight-booking-assistant/internal/pkg/summarizer"
)

// @title           AI Flight Booking Assistant API
// @version         0.0.1
// @description     flight-booking-assistant
// @host      localhost:8080
// @BasePath  /
func main() {

	cfg := config.MustInitConfig(".env")
	logger.InitStructuredLogger(cfg.LogLevel)

	slog.Debug("config loaded successfully", slog.Any("config", cfg))
	runApp(cfg)
}

func runApp(cfg config.Config) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slog.InfoContext(ctx, "starting...", slog.String("log_level", string(cfg.LogLevel)))

	var waitGroup sync.WaitGroup
	// Starts the server in a go routine
	waitGroup.Add(1)
	go func() {
		defer waitGroup.Done()
		startHTTPServer(ctx, cfg)
	}()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case sig := <-sigChannel:
		cancel()
		slog.InfoContext(ctx, "received OS signal. Exiting...", slog.String("signal", sig.String()))
	case <-ctx.Done():
		slog.ErrorContext(ctx, "failed to start HTTP server")
	}

	waitGroup.Wait()
	slog.InfoContext(ctx, "All service closed...")
}

func startHTTPServer(ctx context.Context, cfg config.Config) {
	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts)
	server := &http.Server{
		Handler:      router,
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		WriteTimeout: cfg.HTTP.Timeout,
		ReadTimeout:  cfg.HTTP.Timeout,
	}

	slog.Info("running HTTP server...", slog.Int("port", cfg.HTTP.Port))

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.ErrorContext(ctx, "failed to start HTTP server", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()

	if err := server.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init redis
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// process-wide summarizer gateway, constructed once from the supplied
	// credential; a bad credential fails per call, not at startup
	gateway := makeSummarizerGateway(cfg, redisClient)

	// session store
	sessionStore := booking.NewSessionStore(redisClient)

	// service
	bookingService := service.NewBookingService(sessionStore, gateway,
		cfg.Session.Expiration, cfg.Session.LockTimeout)

	return endpoints.Endpoints{
		Booking: endpoints.MakeBookingEndpoint(bookingService),
	}
}

func makeSummarizerGateway(cfg *config.Config, redisClient *redis.Client) *summarizer.Gateway {
	limiter := redis_rate.NewLimiter(redisClient)
	openaiClient := openai.NewClient(cfg.OpenAI.APIKey)

	return summarizer.NewGateway(openaiClient, summarizer.Config{
		Model:        cfg.OpenAI.Model,
		Timeout:      cfg.OpenAI.Timeout,
		RateLimitRPS: cfg.OpenAI.RateLimitRPS,
		Limiter:      limiter,
	})
}

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
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/config"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/dto"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/endpoints"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/service"
	"github.com/ijalalfrz/itinerary-diff-service/internal/app/transport"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/itinerary/viacom"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/logger"
	"github.com/ijalalfrz/itinerary-diff-service/internal/pkg/source"
	"github.com/redis/go-redis/v9"
)

// @title           Itinerary Diff Service API
// @version         0.0.1
// @description     itinerary-diff-service
// @host      localhost:8080
// @BasePath  /
// @license.name Rizal Alfarizi
// @license.url https://github.com/ijalalfrz
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
	redisClient := redis.NewClient(&redis.Options{
		Addr:         cfg.Redis.Addr,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		ReadTimeout:  cfg.Redis.Timeout,
		WriteTimeout: cfg.Redis.Timeout,
	})
	defer redisClient.Close()

	endpts := makeEndpoints(ctx, &cfg)
	router := transport.MakeHTTPRouter(&cfg, endpts, redis_rate.NewLimiter(redisClient))
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

	if err := server.Shutdown(context.Background()); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown HTTP server", slog.String("error", err.Error()))
	}

	slog.InfoContext(ctx, "HTTP server shutdown gracefully")
}

func makeEndpoints(ctx context.Context, cfg *config.Config) endpoints.Endpoints {
	// init validator
	if err := dto.InitValidator(); err != nil {
		slog.ErrorContext(ctx, "failed to init validator", slog.String("error", err.Error()))
		panic(err)
	}

	// init factory
	sourceFactory := initSourceFactory(cfg)

	// init service endpoint
	return endpoints.Endpoints{
		ItineraryEndpoint: makeItineraryEndpoint(sourceFactory),
	}
}

// register configured sources
func initSourceFactory(cfg *config.Config) *source.SourceFactory {
	factory := source.NewSourceFactory()
	for _, file := range cfg.Sources.Files {
		factory.AddSource(file.Name, source.NewFileSource(file.Name, file.Path))
	}

	slog.Info("sources registered", slog.Any("sources", factory.Names()))

	return factory
}

func makeItineraryEndpoint(factory *source.SourceFactory) endpoints.ItineraryEndpoint {
	// service
	itineraryService := service.NewItineraryService(factory, viacom.ParseItineraries)

	// endpoint
	return endpoints.MakeItineraryEndpoint(itineraryService)
}

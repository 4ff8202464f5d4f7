package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/capfin/sanction-service/internal/application/metrics"
	"github.com/capfin/sanction-service/internal/application/usecase"
	"github.com/capfin/sanction-service/internal/domain/model"
	"github.com/capfin/sanction-service/internal/domain/port"
	"github.com/capfin/sanction-service/internal/domain/service"
	"github.com/capfin/sanction-service/internal/infrastructure/adapter"
	"github.com/capfin/sanction-service/internal/infrastructure/config"
	"github.com/capfin/sanction-service/internal/infrastructure/dispatch"
	"github.com/capfin/sanction-service/internal/infrastructure/encoding"
	"github.com/capfin/sanction-service/internal/infrastructure/messaging"
	"github.com/capfin/sanction-service/internal/infrastructure/render"
	"github.com/capfin/sanction-service/internal/presentation/rest"
	"github.com/capfin/sanction-service/pkg/observability"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// A missing .env file is fine; containerized deploys set the environment
	// directly.
	_ = godotenv.Load() //nolint:errcheck

	// Load configuration.
	cfg := config.Load()

	// Initialize structured logger via shared observability package.
	logger := observability.InitLogger(observability.LogConfig{
		Service: cfg.ServiceName,
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
	})

	logger.Info("starting sanction-service",
		"http_port", cfg.HTTPPort,
		"environment", cfg.Environment,
	)

	// Initialize metrics.
	meterProvider, metricsPage, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer func() { _ = meterProvider.Shutdown(context.Background()) }() //nolint:errcheck // best-effort exporter shutdown

	appMetrics := metrics.New()

	// Lending policy from configuration.
	policy := model.LendingPolicy{
		MinPrincipal:      decimal.NewFromFloat(cfg.Policy.MinLoanAmount),
		MaxPrincipal:      decimal.NewFromFloat(cfg.Policy.MaxLoanAmount),
		MinRatePct:        decimal.NewFromFloat(cfg.Policy.MinRatePct),
		MaxRatePct:        decimal.NewFromFloat(cfg.Policy.MaxRatePct),
		ProcessingFeeBase: decimal.NewFromFloat(cfg.Policy.ProcessingFeeBase),
		GSTRate:           decimal.NewFromFloat(cfg.Policy.GSTRate),
	}

	// Wire infrastructure adapters.
	directory := adapter.NewInMemoryDirectory()
	ledger := adapter.NewSimulatedLedger()
	predictor := adapter.NewLogisticPredictor()
	extractor := adapter.NewUnavailableTextExtractor()
	encoder := encoding.NewQREncoder()
	renderer := render.NewPDFRenderer()
	assets := render.NewHTTPAssetFetcher(cfg.Branding.FetchTimeout)
	mailer := dispatch.NewSMTPMailSender()

	var publisher port.EventPublisher
	if cfg.Kafka.Enabled() {
		kafkaPublisher := messaging.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("publishing events to kafka", "brokers", cfg.Kafka.Brokers, "topic", cfg.Kafka.Topic)
	} else {
		publisher = messaging.NewLogEventPublisher(logger)
		logger.Info("no kafka brokers configured, events will be logged")
	}

	relay := port.RelayConfig{
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
	}

	// Wire use cases.
	scorer := service.NewRiskScorer()
	issueUC := usecase.NewIssueSanctionUseCase(policy, scorer, encoder, renderer, assets,
		cfg.Branding.LogoURL, ledger, publisher, appMetrics, logger)
	emailUC := usecase.NewEmailSanctionUseCase(issueUC, mailer, relay, publisher, appMetrics, logger)
	prequalifyUC := usecase.NewPrequalifyUseCase(directory, directory, predictor, ledger, publisher,
		appMetrics, logger)
	customerUC := usecase.NewGetCustomerUseCase(directory)
	scoreUC := usecase.NewGetCreditScoreUseCase(directory)
	offersUC := usecase.NewGetOffersUseCase(directory)
	extractUC := usecase.NewExtractApplicantUseCase(extractor)

	// HTTP router.
	router := rest.NewRouter(rest.RouterConfig{
		Sanctions:   rest.NewSanctionHandler(issueUC, emailUC, logger),
		Advisory:    rest.NewAdvisoryHandler(prequalifyUC, customerUC, scoreUC, offersUC, extractUC, logger),
		Health:      rest.NewHealthHandler(cfg.ServiceName),
		MetricsPage: metricsPage,
		Logger:      logger,
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server.
	errCh := make(chan error, 1)

	go func() {
		logger.Info("HTTP server starting", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for shutdown signal.
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown.
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("sanction-service stopped")
}

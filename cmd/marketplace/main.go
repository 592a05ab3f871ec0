package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	catalogdomain "github.com/studex/marketplace/internal/catalog/domain"
	"github.com/studex/marketplace/internal/marketplace"
	"github.com/studex/marketplace/internal/marketplace/usecase/command"
	"github.com/studex/marketplace/kafka"
	"github.com/studex/marketplace/pkg/logger"
	"github.com/studex/marketplace/pkg/tracing"
)

func main() {
	serviceName := getEnv("OTEL_SERVICE_NAME", "marketplace")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)
	logger.SetLevel(getEnv("LOG_LEVEL", "info"))

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Msg("Starting marketplace engine")

	tp, err := tracing.InitTracer(serviceName)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to initialize tracer")
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := tracing.Shutdown(ctx, tp); err != nil {
				logger.Logger.Error().Err(err).Msg("Failed to shutdown tracer")
			}
		}()
	}

	// Kafka is optional; the engine runs without a broker.
	var publisher marketplace.EventPublisher
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		p, err := kafka.NewPublisher(strings.Split(brokers, ","))
		if err != nil {
			logger.Logger.Error().Err(err).Msg("Failed to connect to Kafka, events disabled")
		} else {
			defer p.Close()
			publisher = p
		}
	}

	service, err := marketplace.InitializeService(prometheus.DefaultRegisterer, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize marketplace")
	}

	if getEnv("SEED_DEMO_DATA", "true") == "true" {
		seedDemoData(service)
	}

	startHTTPServer(getEnv("HTTP_PORT", "8080"))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down")
}

// seedDemoData walks one purchase through the engine so the metrics
// and traces have something to show.
func seedDemoData(service *marketplace.Service) {
	ctx := context.Background()

	seller, err := service.RegisterUser(ctx, "Ayesha Khan", "3520212345671", "ayesha@student.pk", "secret123", "03001234567", "Lahore")
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Demo seed: register seller failed")
		return
	}
	buyer, err := service.RegisterUser(ctx, "Bilal Ahmed", "3520298765432", "bilal@student.pk", "secret456", "03217654321", "Karachi")
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Demo seed: register buyer failed")
		return
	}

	book, err := service.UploadBook(ctx, command.UploadBookCommand{
		Listing: catalogdomain.ListingParams{
			Title:       "Calculus and Analytic Geometry",
			Description: "Lightly used, no markings",
			Uploader:    seller,
			Category:    "Mathematics",
			Grade:       "A-Level",
			Subject:     "Mathematics",
		},
		Sale: catalogdomain.SaleParams{
			Price:       1200,
			MarketPrice: 2500,
			Condition:   "good",
		},
		Author:    "George B. Thomas",
		Edition:   "11th",
		Publisher: "Pearson",
		Pages:     1228,
		Hardcover: true,
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Demo seed: upload book failed")
		return
	}

	_, err = service.UploadFreeResource(ctx, command.UploadFreeResourceCommand{
		Listing: catalogdomain.ListingParams{
			Title:       "Linear Algebra Lecture Slides",
			Description: "Full semester slide deck",
			Uploader:    seller,
			Category:    "Mathematics",
			Grade:       "Undergraduate",
			Subject:     "Linear Algebra",
		},
		FileURL:           "https://files.studex.pk/la-slides.pdf",
		IsUniversityPaper: true,
		University:        "LUMS",
		CourseCode:        "MATH230",
		Year:              2024,
		FileSizeMB:        42.5,
		FileFormat:        "pdf",
	})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Demo seed: upload resource failed")
	}

	t, err := service.CreateTransaction(ctx, buyer, book, "cash_on_delivery")
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Demo seed: purchase failed")
		return
	}

	logger.Logger.Info().
		Str("transaction_id", t.TransactionID()).
		Str("payment_status", t.PaymentStatus()).
		Int("catalog_items", int(service.Catalog().Count())).
		Msg("Demo data seeded")
}

func startHTTPServer(port string) {
	router := mux.NewRouter()

	// Observability endpoints only; the marketplace itself is an
	// in-process library with no wire protocol.
	router.Handle("/metrics", promhttp.Handler())
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	go func() {
		if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
			logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
		}
	}()
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

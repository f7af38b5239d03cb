package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/sardorbek/bozor/internal/cart"
	cartdomain "github.com/sardorbek/bozor/internal/cart/domain"
	"github.com/sardorbek/bozor/internal/catalog"
	cataloghttp "github.com/sardorbek/bozor/internal/catalog/delivery/http"
	catalogdomain "github.com/sardorbek/bozor/internal/catalog/domain"
	catalogcmd "github.com/sardorbek/bozor/internal/catalog/usecase/command"
	"github.com/sardorbek/bozor/internal/checkout"
	"github.com/sardorbek/bozor/internal/httpapi"
	"github.com/sardorbek/bozor/internal/likes"
	likesdomain "github.com/sardorbek/bozor/internal/likes/domain"
	"github.com/sardorbek/bozor/internal/order"
	orderdomain "github.com/sardorbek/bozor/internal/order/domain"
	ordercmd "github.com/sardorbek/bozor/internal/order/usecase/command"
	"github.com/sardorbek/bozor/internal/pricing"
	"github.com/sardorbek/bozor/internal/user"
	userdomain "github.com/sardorbek/bozor/internal/user/domain"
	"github.com/sardorbek/bozor/kafka"
	"github.com/sardorbek/bozor/pkg/database"
	"github.com/sardorbek/bozor/pkg/logger"
	"github.com/sardorbek/bozor/pkg/tracing"
)

func main() {
	// Initialize logger
	serviceName := getEnv("OTEL_SERVICE_NAME", "storefront-service")
	isDevelopment := getEnv("ENVIRONMENT", "development") == "development"
	logger.Init(serviceName, isDevelopment)

	logLevel := getEnv("LOG_LEVEL", "info")
	logger.SetLevel(logLevel)

	logger.Logger.Info().
		Str("service", serviceName).
		Str("environment", getEnv("ENVIRONMENT", "development")).
		Str("log_level", logLevel).
		Msg("Starting storefront service")

	// Initialize tracer
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

	// Load database configuration
	dbConfig := database.Config{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", "postgres"),
		DBName:   getEnv("DB_NAME", "bozordb"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),
	}

	// Connect to database
	db, err := database.NewGormConnection(dbConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to get database instance")
	}
	defer sqlDB.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&userdomain.User{},
		&userdomain.Profile{},
		&catalogdomain.Product{},
		&cartdomain.CartItem{},
		&likesdomain.Like{},
		&orderdomain.Order{},
		&orderdomain.OrderItem{},
		&orderdomain.ShippingAddressRecord{},
	); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to run migrations")
	}

	logger.Logger.Info().Msg("Database initialized successfully")

	pricingConfig := pricing.LoadConfig()

	// Kafka is optional; without brokers orders are still placed, only the
	// order-placed events are skipped
	var publisher ordercmd.OrderEventPublisher
	var kafkaPublisher *kafka.Publisher
	var kafkaConsumer *kafka.Consumer
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		brokerList := strings.Split(brokers, ",")

		kafkaPublisher, err = kafka.NewPublisher(brokerList)
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("brokers", brokers).Msg("Failed to create Kafka publisher")
		}
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher

		kafkaConsumer, err = kafka.NewConsumer(brokerList, "storefront-service", []string{kafka.TopicOrderPlaced})
		if err != nil {
			logger.Logger.Fatal().Err(err).Str("brokers", brokers).Msg("Failed to create Kafka consumer")
		}
		defer kafkaConsumer.Close()

		decrementStock := catalogcmd.NewDecrementStockHandler(catalog.ProvideProductRepository(db))
		kafkaConsumer.RegisterHandler(kafka.EventTypeOrderPlaced, func(ctx context.Context, event kafka.OrderPlacedEvent) error {
			for _, line := range event.Lines {
				if err := decrementStock.Handle(catalogcmd.DecrementStockCommand{
					ProductID: line.ProductID,
					Quantity:  line.Quantity,
				}); err != nil {
					logger.Error(ctx).Err(err).
						Uint("product_id", line.ProductID).
						Str("order_number", event.OrderNumber).
						Msg("Failed to decrement stock for order line")
				}
			}
			return nil
		})

		consumerCtx, consumerCancel := context.WithCancel(context.Background())
		defer consumerCancel()
		go func() {
			if err := kafkaConsumer.Start(consumerCtx); err != nil {
				logger.Logger.Error().Err(err).Msg("Kafka consumer stopped")
			}
		}()

		logger.Logger.Info().Str("brokers", brokers).Msg("Kafka publisher and consumer started")
	} else {
		logger.Logger.Warn().Msg("KAFKA_BROKERS not set, order events disabled")
	}

	// Shared repositories
	productRepo := catalog.ProvideProductRepository(db)
	cartRepo := cart.ProvideCartRepository(db)
	orderRepo := order.ProvideOrderRepository(db)

	// Initialize handlers with Wire DI
	catalogHandler, err := catalog.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize catalog handler")
	}

	cartHandler, err := cart.InitializeHTTPHandler(db, productRepo, pricingConfig)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize cart handler")
	}

	likeHandler, err := likes.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize likes handler")
	}

	orderHandler, err := order.InitializeHTTPHandler(db, cartRepo, pricingConfig, publisher)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize order handler")
	}

	// The checkout wizard funnels into the same order placement path the
	// direct order endpoint uses
	placeOrder := ordercmd.NewPlaceOrderHandler(orderRepo, cartRepo, pricingConfig, publisher)
	checkoutHandler, err := checkout.InitializeHTTPHandler(cartRepo, placeOrder)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize checkout handler")
	}

	userHandler, err := user.InitializeHTTPHandler(db)
	if err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to initialize user handler")
	}

	logger.Logger.Info().Msg("Storefront handlers initialized")

	// Start HTTP server
	httpPort := getEnv("HTTP_PORT", "8080")
	go startHTTPServer(httpPort, sqlDB, catalogHandler, func(router *mux.Router) {
		catalogHandler.RegisterRoutes(router)
		cartHandler.RegisterRoutes(router)
		likeHandler.RegisterRoutes(router)
		orderHandler.RegisterRoutes(router)
		checkoutHandler.RegisterRoutes(router)
		userHandler.RegisterRoutes(router)
	})

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info().Msg("Shutting down server...")
}

func startHTTPServer(port string, db *sql.DB, catalogHandler *cataloghttp.ProductHandler, registerRoutes func(*mux.Router)) {
	// Setup router
	router := mux.NewRouter()

	// Register all middlewares using middleware registration system
	httpapi.RegisterMiddlewares(router)

	// Register routes
	registerRoutes(router)

	// Health check endpoint
	catalogHandler.RegisterHealthCheck(router, db)

	// Prometheus metrics endpoint
	router.Handle("/metrics", promhttp.Handler())

	// CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	logger.Logger.Info().
		Str("port", port).
		Str("metrics_endpoint", "/metrics").
		Msg("HTTP server started")

	if err := http.ListenAndServe(":"+port, c.Handler(router)); err != nil {
		logger.Logger.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/aml-detector/internal/batch"
	"github.com/sbilibin2017/aml-detector/internal/classifier"
	"github.com/sbilibin2017/aml-detector/internal/handlers"
	"github.com/sbilibin2017/aml-detector/internal/health"
	"github.com/sbilibin2017/aml-detector/internal/jwt"
	"github.com/sbilibin2017/aml-detector/internal/logger"
	"github.com/sbilibin2017/aml-detector/internal/metrics"
	"github.com/sbilibin2017/aml-detector/internal/middlewares"
	"github.com/sbilibin2017/aml-detector/internal/normalizer"
	"github.com/sbilibin2017/aml-detector/internal/publishers"
	"github.com/sbilibin2017/aml-detector/internal/repositories"
	"github.com/sbilibin2017/aml-detector/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/sbilibin2017/aml-detector/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds the service settings read from the environment.
type config struct {
	appHost     string
	appPort     string
	logLevel    string
	logEncoding string
	grpcPort    string

	classifierPath     string
	fillMissingColumns bool
	strictSchema       bool
	maxUploadBytes     int64

	datasetEnabled bool
	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	cacheEnabled      bool
	redisHost         string
	redisPort         int
	redisDB           int
	redisPassword     string
	redisPoolSize     int
	redisMinIdleConns int
	redisExpSecond    int

	kafkaBrokers    []string
	kafkaAlertTopic string

	authEnabled  bool
	jwtSecretKey string
	jwtExpSecond int
}

// @title aml-detector API
// @version 1.0.0
// @description Anti-money-laundering transaction classifier and labeled dataset explorer
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath, issueToken := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if issueToken != "" {
		token, err := newTokener(cfg).Generate(context.Background(), issueToken)
		if err != nil {
			log.Fatalf("failed to issue token: %v", err)
		}
		fmt.Println(token)
		return
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path and
// the subject to issue an analyst token for.
func parseFlags() (string, string) {
	c := flag.String("c", "config.env", "Path to configuration file")
	t := flag.String("issue-token", "", "Print an analyst bearer token for the subject and exit")
	flag.Parse()
	return *c, *t
}

// parseConfig loads environment variables from a file and returns the
// application, classifier, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.logEncoding = getEnv("APP_LOG_ENCODING", "json")
	cfg.grpcPort = getEnv("GRPC_PORT", "50051")

	// Classifier config
	cfg.classifierPath = getEnv("CLASSIFIER_PATH", "model/classifier.json")
	if cfg.fillMissingColumns, err = strconv.ParseBool(getEnv("FILL_MISSING_COLUMNS", "true")); err != nil {
		return
	}
	if cfg.strictSchema, err = strconv.ParseBool(getEnv("STRICT_SCHEMA", "false")); err != nil {
		return
	}
	if cfg.maxUploadBytes, err = strconv.ParseInt(getEnv("MAX_UPLOAD_BYTES", "33554432"), 10, 64); err != nil {
		return
	}

	// PostgreSQL config
	if cfg.datasetEnabled, err = strconv.ParseBool(getEnv("DATASET_ENABLED", "true")); err != nil {
		return
	}
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "database")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	if cfg.cacheEnabled, err = strconv.ParseBool(getEnv("CACHE_ENABLED", "true")); err != nil {
		return
	}
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if cfg.redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cfg.redisExpSecond, err = strconv.Atoi(getEnv("REDIS_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.kafkaBrokers = append(cfg.kafkaBrokers, b)
		}
	}
	cfg.kafkaAlertTopic = getEnv("KAFKA_ALERT_TOPIC", "aml.alerts")

	// JWT config
	if cfg.authEnabled, err = strconv.ParseBool(getEnv("AUTH_ENABLED", "false")); err != nil {
		return
	}
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	return
}

func newTokener(cfg config) *jwt.JWT {
	return jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)
}

// run initializes the logger, classifier, optional stores, and the HTTP and
// gRPC servers. It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.logLevel, cfg.logEncoding); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.logLevel)

	// Load classifier
	clf, err := classifier.Load(cfg.classifierPath)
	if err != nil {
		return err
	}

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewPrometheusCollector("aml")
	if err := collector.Register(registry); err != nil {
		return err
	}

	opts := []services.Opt{
		services.WithMetrics(collector),
		services.WithFillMissing(cfg.fillMissingColumns),
	}

	// Connect to Redis
	if cfg.cacheEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:         fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
			Password:     cfg.redisPassword,
			DB:           cfg.redisDB,
			PoolSize:     cfg.redisPoolSize,
			MinIdleConns: cfg.redisMinIdleConns,
		})
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Warnw("Redis unavailable, verdicts will be computed until it recovers", "error", err)
		}

		store := repositories.NewVerdictCacheRepository(rdb, time.Duration(cfg.redisExpSecond)*time.Second)
		cache := repositories.NewResilientVerdictCache(store, repositories.DefaultBreakerConfig(), collector)
		opts = append(opts, services.WithVerdictCache(cache))
	}

	// Kafka alerts
	if len(cfg.kafkaBrokers) > 0 {
		publisher := publishers.NewAlertPublisher(publishers.NewKafkaWriter(cfg.kafkaBrokers, cfg.kafkaAlertTopic))
		defer publisher.Close()
		opts = append(opts, services.WithAlertPublisher(publisher))
		logger.Log.Infow("alert publisher enabled", "brokers", cfg.kafkaBrokers, "topic", cfg.kafkaAlertTopic)
	}

	// Connect to PostgreSQL
	var db *sqlx.DB
	if cfg.datasetEnabled {
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
		logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.pgHost, "port", cfg.pgPort, "db", cfg.pgDB)

		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err != nil {
			return fmt.Errorf("PostgreSQL connection error: %w", err)
		}
		defer db.Close()
		db.SetMaxOpenConns(cfg.pgMaxOpenConns)
		db.SetMaxIdleConns(cfg.pgMaxIdleConns)

		if err := repositories.NewDatasetRepository(db, nil).EnsureSchema(ctx); err != nil {
			return fmt.Errorf("failed to create dataset schema: %w", err)
		}
	}

	// Initialize services
	norm := normalizer.New(normalizer.WithDateEncoding(clf.DateEncoding()))
	reader := batch.NewReader(cfg.strictSchema)
	classification := services.NewClassificationService(clf, norm, reader, opts...)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	var pinger handlers.Pinger
	if db != nil {
		pinger = db
	}
	r.Get("/healthz", handlers.NewHealthzHandler(clf, pinger))
	r.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/model", handlers.NewModelInfoHandler(clf))

		var dataset *services.DatasetService
		if db != nil {
			repo := repositories.NewDatasetRepository(db, middlewares.GetTxFromContext)
			dataset = services.NewDatasetService(repo, repo)

			r.Get("/dataset/transactions", handlers.NewDatasetListHandler(dataset))
			r.Get("/dataset/summary", handlers.NewDatasetSummaryHandler(dataset))
			r.Get("/dataset/stats/top-days", handlers.NewTopDaysHandler(dataset))
			r.Get("/dataset/stats/payment-formats", handlers.NewPaymentFormatStatsHandler(dataset))
			r.Get("/dataset/stats/laundering", handlers.NewLaunderingStatsHandler(dataset))
		}

		// Protected routes
		r.Group(func(r chi.Router) {
			if cfg.authEnabled {
				r.Use(middlewares.AuthMiddleware(newTokener(cfg)))
			}

			r.Post("/classify", handlers.NewClassifyHandler(classification))
			r.Post("/classify/batch", handlers.NewClassifyBatchHandler(classification, cfg.maxUploadBytes))
			r.Post("/classify/batch/export", handlers.NewExportBatchHandler(classification, cfg.maxUploadBytes))

			if dataset != nil {
				r.With(middlewares.TxMiddleware(db)).
					Post("/dataset", handlers.NewDatasetImportHandler(dataset, cfg.maxUploadBytes))
			}
		})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// gRPC health
	lis, err := net.Listen("tcp", fmt.Sprintf("%s:%s", cfg.appHost, cfg.grpcPort))
	if err != nil {
		return fmt.Errorf("gRPC listen failed: %w", err)
	}
	healthSrv := health.NewServer()
	healthSrv.SetServing()

	// Graceful shutdown
	errChan := make(chan error, 2)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		if err := healthSrv.Serve(lis); err != nil {
			errChan <- fmt.Errorf("gRPC server failed: %w", err)
		}
	}()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping servers...")
	case serveErr := <-errChan:
		healthSrv.Stop()
		return serveErr
	}

	healthSrv.SetNotServing()

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}
	healthSrv.Stop()

	logger.Log.Info("Servers stopped gracefully")
	return nil
}

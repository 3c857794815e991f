package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/Trkcnl/twacktwack/internal/handlers"
	"github.com/Trkcnl/twacktwack/internal/jwt"
	"github.com/Trkcnl/twacktwack/internal/logger"
	"github.com/Trkcnl/twacktwack/internal/middlewares"
	"github.com/Trkcnl/twacktwack/internal/migrations"
	"github.com/Trkcnl/twacktwack/internal/repositories"
	"github.com/Trkcnl/twacktwack/internal/services"
	"github.com/Trkcnl/twacktwack/internal/tx"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title twacktwack API
// @version 1.0.0
// @description Workout and body measurement tracking service
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheExpSecond,
		kafkaBroker, kafkaTopic, logLevel,
		jwtSecret, jwtExp, jwtRefreshExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns, cacheExpSecond,
		kafkaBroker, kafkaTopic,
		logLevel,
		jwtSecret, jwtExp, jwtRefreshExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// all application, database, Redis, Kafka, logging, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort int, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheExpSecond int,
	kafkaBroker, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond, jwtRefreshExpSecond int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}
	if cacheExpSecond, err = strconv.Atoi(getEnv("CACHE_EXP_SECOND", "300")); err != nil {
		return
	}

	// Kafka config, an empty broker disables event publishing
	kafkaBroker = getEnv("KAFKA_BROKER", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "workout-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "900")); err != nil {
		return
	}
	if jwtRefreshExpSecond, err = strconv.Atoi(getEnv("JWT_REFRESH_EXP_SECOND", "604800")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns, cacheExpSecond int,
	kafkaBroker, kafkaTopic, logLevel string,
	jwtSecretKey string, jwtExpSecond, jwtRefreshExpSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	logger.Log.Infof("Connecting to PostgreSQL: %s", dsn)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		logger.Log.Fatal("Migrations failed:", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for workout events
	var kafkaWriter services.KafkaWriter
	if kafkaBroker != "" {
		kw := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBroker),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kw.Close()
		kafkaWriter = kw
		logger.Log.Infof("Kafka events enabled on %s, topic %s", kafkaBroker, kafkaTopic)
	}

	// Initialize JWT service
	jwt := jwt.New(jwtSecretKey,
		time.Duration(jwtExpSecond)*time.Second,
		time.Duration(jwtRefreshExpSecond)*time.Second)

	// Initialize repositories
	txRunner := tx.NewRunner(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, tx.From)
	profileReadRepo := repositories.NewProfileReadRepository(db)
	profileWriteRepo := repositories.NewProfileWriteRepository(db, tx.From)
	mtReadRepo := repositories.NewMeasurementTypeReadRepository(db)
	mtWriteRepo := repositories.NewMeasurementTypeWriteRepository(db, tx.From)
	mtCacheRepo := repositories.NewMeasurementTypeCacheRepository(rdb, time.Duration(cacheExpSecond)*time.Second)
	etReadRepo := repositories.NewExerciseTypeReadRepository(db)
	etWriteRepo := repositories.NewExerciseTypeWriteRepository(db, tx.From)
	measurementReadRepo := repositories.NewMeasurementReadRepository(db)
	measurementWriteRepo := repositories.NewMeasurementWriteRepository(db, tx.From)
	workoutReadRepo := repositories.NewWorkoutReadRepository(db)
	workoutWriteRepo := repositories.NewWorkoutWriteRepository(db, tx.From)
	logReadRepo := repositories.NewExerciseLogReadRepository(db)
	logWriteRepo := repositories.NewExerciseLogWriteRepository(db, tx.From)
	setReadRepo := repositories.NewExerciseSetReadRepository(db)
	setWriteRepo := repositories.NewExerciseSetWriteRepository(db, tx.From)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, profileReadRepo, jwt)
	profileService := services.NewProfileService(profileReadRepo, profileWriteRepo)
	catalogService := services.NewCatalogService(mtReadRepo, mtWriteRepo, mtCacheRepo, etReadRepo, etWriteRepo)
	measurementService := services.NewMeasurementService(measurementReadRepo, measurementWriteRepo, mtReadRepo)
	workoutService := services.NewWorkoutService(
		workoutReadRepo, workoutWriteRepo,
		logReadRepo, logWriteRepo,
		setReadRepo, setWriteRepo,
		etReadRepo, txRunner, kafkaWriter,
	)
	exerciseService := services.NewExerciseService(
		workoutReadRepo,
		logReadRepo, logWriteRepo,
		setReadRepo, setWriteRepo,
		etReadRepo,
	)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.Post("/auth/users", handlers.NewRegisterHandler(authService))
		r.Post("/auth/token", handlers.NewTokenHandler(authService))
		r.Post("/auth/token/refresh", handlers.NewTokenRefreshHandler(authService))
		r.Get("/measurement-types", handlers.NewMeasurementTypeListHandler(catalogService))
		r.Get("/exercise-types", handlers.NewExerciseTypeListHandler(catalogService, jwt))

		// Protected routes with JWT middleware
		r.Group(func(r chi.Router) {
			r.Use(middlewares.AuthMiddleware(jwt))

			r.Get("/auth/users/me", handlers.NewMeHandler(authService, jwt))

			r.Get("/userprofiles", handlers.NewProfileListHandler(profileService, jwt))
			r.Post("/userprofiles", handlers.NewProfileCreateHandler(profileService, jwt))
			r.Get("/userprofiles/{id}", handlers.NewProfileGetHandler(profileService, jwt))
			r.Put("/userprofiles/{id}", handlers.NewProfileUpdateHandler(profileService, jwt))

			r.Post("/measurement-types", handlers.NewMeasurementTypeCreateHandler(catalogService, jwt))
			r.Post("/exercise-types", handlers.NewExerciseTypeCreateHandler(catalogService, jwt))

			r.Get("/measurements", handlers.NewMeasurementListHandler(measurementService, jwt))
			r.Post("/measurements", handlers.NewMeasurementCreateHandler(measurementService, jwt))
			r.Get("/measurements/{id}", handlers.NewMeasurementGetHandler(measurementService, jwt))
			r.Put("/measurements/{id}", handlers.NewMeasurementUpdateHandler(measurementService, jwt))
			r.Delete("/measurements/{id}", handlers.NewMeasurementDeleteHandler(measurementService, jwt))

			r.Get("/workouts", handlers.NewWorkoutListHandler(workoutService, jwt))
			r.Post("/workouts", handlers.NewWorkoutCreateHandler(workoutService, jwt))
			r.Get("/workouts/{id}", handlers.NewWorkoutGetHandler(workoutService, jwt))
			r.Put("/workouts/{id}", handlers.NewWorkoutUpdateHandler(workoutService, jwt))
			r.Delete("/workouts/{id}", handlers.NewWorkoutDeleteHandler(workoutService, jwt))

			r.Get("/workouts/{id}/exercises", handlers.NewExerciseLogListHandler(exerciseService, jwt))
			r.Post("/workouts/{id}/exercises", handlers.NewExerciseLogCreateHandler(exerciseService, jwt))
			r.Get("/exercises/{id}", handlers.NewExerciseLogGetHandler(exerciseService, jwt))
			r.Put("/exercises/{id}", handlers.NewExerciseLogUpdateHandler(exerciseService, jwt))
			r.Delete("/exercises/{id}", handlers.NewExerciseLogDeleteHandler(exerciseService, jwt))

			r.Get("/exercises/{id}/sets", handlers.NewExerciseSetListHandler(exerciseService, jwt))
			r.Post("/exercises/{id}/sets", handlers.NewExerciseSetCreateHandler(exerciseService, jwt))
			r.Get("/sets/{id}", handlers.NewExerciseSetGetHandler(exerciseService, jwt))
			r.Put("/sets/{id}", handlers.NewExerciseSetUpdateHandler(exerciseService, jwt))
			r.Delete("/sets/{id}", handlers.NewExerciseSetDeleteHandler(exerciseService, jwt))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"quotation-management-api/internal/controller"
	"quotation-management-api/internal/repo"
	"quotation-management-api/internal/service"
	"quotation-management-api/pkg/http_server"
	"quotation-management-api/pkg/jwtutil"
	"quotation-management-api/pkg/logger"
	"quotation-management-api/pkg/metrics"
	"quotation-management-api/pkg/postgres"
	"strconv"
	"syscall"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
	"github.com/labstack/echo"
	"go.uber.org/zap"
)

const serviceName = "quotation-management-api"

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func runMigrations(postgresDB *postgres.Postgres, databaseName string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err == migrate.ErrNoChange {
			logger.L().Info("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func Run() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	if err := logger.Init(&logger.Config{
		Level:       getEnv("LOG_LEVEL", "info"),
		Environment: getEnv("APP_ENV", "development"),
		ServiceName: serviceName,
	}); err != nil {
		log.Fatal(err)
	}

	serverAddress := getEnv("SERVER_ADDRESS", ":8080")
	dbConn := os.Getenv("POSTGRES_CONN")
	databaseName := os.Getenv("POSTGRES_DATABASE")

	logger.L().Info("connecting database")
	postgresDB, err := postgres.NewDB(dbConn)
	if err != nil {
		logger.L().Fatal("error occurred while connecting to db", zap.Error(err))
	}
	defer postgresDB.Close()

	logger.L().Info("running migrations")
	runMigrations(postgresDB, databaseName)

	expirationHours, err := strconv.Atoi(getEnv("JWT_EXPIRATION_HOURS", "24"))
	if err != nil {
		logger.L().Fatal("JWT_EXPIRATION_HOURS must be a number", zap.Error(err))
	}
	jwt := jwtutil.NewJWTUtil(&jwtutil.Config{
		SigningKey:      getEnv("JWT_SIGNING_KEY", "change-me"),
		ExpirationHours: expirationHours,
	})

	repositories := repo.NewRepositories(postgresDB)
	services := service.NewServices(repositories, jwt)

	adminUsername := getEnv("ADMIN_USERNAME", "admin")
	adminPassword := getEnv("ADMIN_PASSWORD", "admin123")
	if err := services.Auth.EnsureDefaultAdmin(context.Background(), adminUsername, adminPassword); err != nil {
		logger.L().Fatal("error occurred while creating default admin", zap.Error(err))
	}

	handler := echo.New()
	httpMetrics := metrics.NewHTTPMetrics(serviceName)

	logger.L().Info("setup routes")
	controller.SetupRoutesHandlers(handler, services, jwt, httpMetrics)

	logger.L().Info("starting server", zap.String("address", serverAddress))
	httpServer := http_server.New(handler, serverAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.L().Info("got signal: " + s.String())
	case err = <-httpServer.Notify():
		logger.L().Error("notify error", zap.Error(err))
	}

	logger.L().Info("shutting down")
	err = httpServer.Shutdown()
	if err != nil {
		logger.L().Error("shutdown error", zap.Error(err))
	} else {
		logger.L().Info("successful shutdown")
	}
}

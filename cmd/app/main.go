package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"orderflow/cmd"
	"orderflow/internal/adapters/in/http"
	"orderflow/internal/adapters/out/postgres/historyrepo"
	"orderflow/internal/adapters/out/postgres/orderrepo"
	"orderflow/internal/adapters/out/postgres/reputationrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer app.EventPublisher().Close()

	startEventLogger(&app, logger)
	startJobs(&app)
	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:        goDotEnvVariable("HTTP_PORT"),
		DBHost:          goDotEnvVariable("DB_HOST"),
		DBPort:          goDotEnvVariable("DB_PORT"),
		DBUser:          goDotEnvVariable("DB_USER"),
		DBPassword:      goDotEnvVariable("DB_PASSWORD"),
		DBName:          goDotEnvVariable("DB_NAME"),
		DBSslMode:       goDotEnvVariable("DB_SSLMODE"),
		EventBufferSize: goDotEnvIntVariable("EVENT_BUFFER_SIZE"),
		MonitorSchedule: goDotEnvVariable("MONITOR_SCHEDULE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvIntVariable(key string) int {
	raw := goDotEnvVariable(key)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Invalid integer for %s: %s", key, raw)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	// TranslateError turns driver duplicate-key failures into
	// gorm.ErrDuplicatedKey, which the repositories rely on.
	gormDB, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&historyrepo.TransitionDTO{},
		&reputationrepo.ReputationDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return gormDB
}

// startEventLogger drains the in-process event bus. Events are best-effort
// signals; logging them gives a trace of accepted transitions without any
// delivery guarantee.
func startEventLogger(app *cmd.CompositionRoot, logger *slog.Logger) {
	events := app.EventPublisher().Subscribe()
	go func() {
		for event := range events {
			logger.Info("Order transition",
				"order_id", event.OrderID.String(),
				"customer_id", event.CustomerID.String(),
				"status", event.Status.String(),
				"timestamp", event.Timestamp,
				"tx_id", event.TxID.String(),
			)
		}
	}()
}

func startJobs(app *cmd.CompositionRoot) {
	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := http.NewServer(
		app.CreateCreateReputationCommandHandler(),
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetOrderHistoryQueryHandler(),
		app.CreateGetReputationQueryHandler(),
	)
	server.RegisterRoutes(e)

	doc, err := http.LoadOpenAPISpec(context.Background())
	if err != nil {
		log.Fatalf("Invalid OpenAPI document: %v", err)
	}
	http.RegisterOpenAPIRoute(e, doc)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}

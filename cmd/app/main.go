package main

import (
	"fmt"

	"orderlink/cmd"
	httpadapter "orderlink/internal/adapters/in/http"
	"orderlink/internal/adapters/in/http/auth"
	"orderlink/internal/adapters/out/postgres/orderrepo"
	"orderlink/internal/adapters/out/postgres/profilerepo"
	"orderlink/internal/pkg/logger"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// Missing .env is fine; the environment or flags carry the config then.
	_ = godotenv.Load(".env")
	config := cmd.InitConfig()

	if err := logger.Initialize(config.LogLevel); err != nil {
		panic(err)
	}
	defer func() {
		_ = zap.L().Sync()
	}()

	db := mustConnectDB(config)

	app := cmd.NewCompositionRoot(config, db)
	startWebServer(&app, config)
}

// mustConnectDB opens the database and keeps the schema current.
// The lib/pq driver is used deliberately: the repositories inspect pq errors
// to detect tracking token collisions.
func mustConnectDB(config cmd.Config) *gorm.DB {
	db, err := gorm.Open(postgresdriver.New(postgresdriver.Config{
		DriverName: "postgres",
		DSN:        config.DSN(),
	}), &gorm.Config{})
	if err != nil {
		zap.L().Fatal("cannot connect to database", zap.Error(err))
	}

	if err = db.AutoMigrate(&orderrepo.OrderDTO{}, &profilerepo.ProfileDTO{}); err != nil {
		zap.L().Fatal("cannot migrate database schema", zap.Error(err))
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, config cmd.Config) {
	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateSubmitOrderCommandHandler(),
		app.CreateSetStatusCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateBulkSetStatusCommandHandler(),
		app.CreateUpsertProfileCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateListOrdersByOwnerQueryHandler(),
		app.CreateGetDashboardQueryHandler(),
		app.CreateGetOrderByTrackingQueryHandler(),
		app.CreateGetProfileQueryHandler(),
	)

	tokenManager := auth.NewTokenManager(config.JWTSecret, config.TokenTTL)

	e := echo.New()
	e.Use(httpadapter.RequestLoggerMiddleware())
	server.RegisterRoutes(e, tokenManager.Middleware())

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)))
}

package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"energy_oracle/internal/feed"
	"energy_oracle/internal/handlers"
	"energy_oracle/internal/logger"
	"energy_oracle/internal/metrics"
	"energy_oracle/internal/models"
	"energy_oracle/internal/repository"
	"energy_oracle/internal/repository/db"
	"energy_oracle/internal/server"
	"energy_oracle/internal/service"

	"github.com/spf13/viper"
)

const (
	defaultSimTick  = 1 * time.Second
	restoreTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

func main() {
	// load config.yml first so the log level can come from it
	if err := loadConfig(); err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}
	log := logger.Get(viper.GetString("log.level"))

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Fatalw("failed to close sqlite", "err", cerr)
		}
	}()

	// wire the ledger on top of storage, clock and instrumentation
	repos := repository.NewRepository(sqlDB)
	ledger := service.NewLedger(repos, heightSource(), log.With("component", "ledger"), metrics.New())

	restoreCtx, restoreCancel := context.WithTimeout(context.Background(), restoreTimeout)
	defer restoreCancel()
	if err := ledger.Restore(restoreCtx, models.Identity(viper.GetString("oracle.admin"))); err != nil {
		log.Fatalw("failed to restore ledger", "err", err)
	}

	// optional RabbitMQ feed for admitted readings
	pub := connectFeed(log.With("component", "feed"))
	if pub != nil {
		ledger.AttachFeed(pub)
		defer func() { _ = pub.Close() }()
	}

	services := service.NewService(ledger, repos, authConfig(log), simulatorConfig(), log)
	apiHandler := handlers.NewHandler(services, log.With("component", "http"))

	// context for background goroutines
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if viper.GetBool("simulator.enabled") {
		go services.Simulator.Run(ctx, simTick())
	}

	// start HTTP server
	srv := server.New(viper.GetString("port"), apiHandler.InitRoutes())
	go func() {
		if err := srv.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
	log.Infow("oracle is up", "port", viper.GetString("port"))

	// graceful shutdown
	waitForShutdown(cancel, srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "oracle.db")
		dbPath = "oracle.db"
	}
	return db.InitDB(dbPath)
}

// heightSource picks the ledger clock: wall time by default, a manual
// clock when the deployment advances height through the admin API.
func heightSource() service.HeightSource {
	if viper.GetString("clock.mode") == "manual" {
		return service.NewManualClock(viper.GetUint64("clock.start_height"))
	}
	return service.WallClock{}
}

// connectFeed dials RabbitMQ when the feed is enabled. The ledger runs
// fine without it; admitted readings are then simply not broadcast.
func connectFeed(log *logger.Logger) *feed.Publisher {
	if !viper.GetBool("feed.enabled") {
		return nil
	}
	pub, err := feed.NewPublisher(viper.GetString("feed.url"), viper.GetString("feed.exchange"), log)
	if err != nil {
		log.Warnw("feed unavailable; admitted readings will not be published", "err", err)
		return nil
	}
	return pub
}

func authConfig(log *logger.Logger) service.AuthConfig {
	cfg := service.AuthConfig{
		SigningKey: viper.GetString("auth.signing_key"),
		TokenTTL:   viper.GetDuration("auth.token_ttl"),
	}
	if cfg.SigningKey == "" {
		log.Fatalw("auth.signing_key must be set in config")
	}
	return cfg
}

// simulatorConfig reads the demo park. The simulator registers sensors as
// the admin and submits readings as the operator; both default to the
// configured oracle admin, which holds both roles on a fresh ledger.
func simulatorConfig() service.SimulatorConfig {
	operator := viper.GetString("simulator.operator")
	if operator == "" {
		operator = viper.GetString("oracle.admin")
	}
	return service.SimulatorConfig{
		Admin:    models.Identity(viper.GetString("oracle.admin")),
		Operator: models.Identity(operator),
	}
}

func simTick() time.Duration {
	if tick := viper.GetDuration("simulator.tick"); tick > 0 {
		return tick
	}
	return defaultSimTick
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(cancel context.CancelFunc, srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// stop background goroutines
	cancel()

	// allow in-flight requests to complete
	ctx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}

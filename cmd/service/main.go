package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/config"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/hevy"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/logging"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "hevy-tracker",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("unit system [%s], lookback %d days, polling every %d min", cfg.UnitSystem, cfg.LookbackDays, cfg.PollingIntervalMinutes)

	hevyApiKey := os.Getenv("HEVY_API_KEY")
	if hevyApiKey == "" {
		log.Fatalln("hevy api key not set, use HEVY_API_KEY env var to set it")
	}

	redisPassword := os.Getenv("HEVY_REDIS_PASS")
	if redisPassword == "" {
		log.Debugln("redis password not set, use HEVY_REDIS_PASS if redis needs one")
	}

	postgresPassword := os.Getenv("HEVY_POSTGRES_PASS")
	if postgresPassword == "" && cfg.RecordsStore == config.RecordsStorePostgres {
		log.Warnln("postgres password not set, use HEVY_POSTGRES_PASS")
	}

	honeycombEnabled := cfg.HoneycombEnabled || os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	srv, err := server.NewServer(
		ctx,
		server.NewServerParams{
			Config:                  cfg,
			HevyApiKey:              hevyApiKey,
			RedisPassword:           redisPassword,
			PostgresPassword:        postgresPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		if errors.Is(err, hevy.ErrAuth) {
			log.Fatalf("hevy rejected the api key, reconfigure credentials (HEVY_API_KEY): %s", err)
		}
		log.Fatalf("new server: %s", err)
	}

	srv.Serve(ctx, cfg.Host, cfg.Port, cfg.AllowedOrigins...)

	// SIGHUP re-reads the config file and applies the tracker options
	chReload := make(chan os.Signal, 1)
	signal.Notify(chReload, syscall.SIGHUP)
	go func() {
		for range chReload {
			reloaded, err := config.Load(*env, *configPath)
			if err != nil {
				log.Errorf("reload config: %s", err)
				continue
			}
			if err := srv.ReloadOptions(reloaded); err != nil {
				log.Errorf("%s", err)
			}
		}
	}()

	receivedSig := <-chOsInterrupt
	signal.Stop(chReload)
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	srv.GracefulShutdown()
}

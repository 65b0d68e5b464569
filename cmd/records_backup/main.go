package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"net"
	"os"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/config"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/db"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/logging"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/records"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

// records_backup copies the personal records table between the configured
// store and a JSON file.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	file := flag.String("file", "./personal-records.json", "backup file path")
	restore := flag.Bool("restore", false, "load the backup file into the store instead of dumping the store")
	flag.Parse()

	logging.Setup(logging.LoggerSetupParams{LogLevel: "debug"})

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Fatalf("open records store: %s", err)
	}
	defer closeStore()

	if *restore {
		n, err := restoreRecords(ctx, store, *file)
		if err != nil {
			log.Fatalf("restore: %s", err)
		}
		log.Infof("restored %d personal records from %s", n, *file)
		return
	}

	n, err := dumpRecords(ctx, store, *file)
	if err != nil {
		log.Fatalf("dump: %s", err)
	}
	log.Infof("dumped %d personal records to %s", n, *file)
}

func openStore(ctx context.Context, cfg *config.Config) (records.Store, func(), error) {
	switch cfg.RecordsStore {
	case config.RecordsStoreRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
			Password: os.Getenv("HEVY_REDIS_PASS"),
		})
		return records.NewRedisStore(rdb, records.DefaultRedisKey), func() { _ = rdb.Close() }, nil
	case config.RecordsStorePostgres:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: os.Getenv("HEVY_POSTGRES_PASS"),
		})
		if err != nil {
			return nil, nil, err
		}
		store := records.NewPsqlStore(pool)
		if err := store.Migrate(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return store, pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("records store [%s] has nothing to back up", cfg.RecordsStore)
	}
}

func dumpRecords(ctx context.Context, store records.Store, path string) (int, error) {
	table, err := store.Load(ctx)
	if err != nil {
		return 0, err
	}
	content, err := json.MarshalIndent(table, "", "  ")
	if err != nil {
		return 0, fmt.Errorf("marshal records: %w", err)
	}
	if err := os.WriteFile(path, content, 0o600); err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	return len(table), nil
}

// restoreRecords merges the file into what the store already holds, keeping
// the better record per exercise.
func restoreRecords(ctx context.Context, store records.Store, path string) (int, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", path, err)
	}
	var backup records.Table
	if err := json.Unmarshal(content, &backup); err != nil {
		return 0, fmt.Errorf("unmarshal records: %w", err)
	}

	current, err := store.Load(ctx)
	if err != nil {
		return 0, err
	}
	merged := current.Merge(backup)
	if err := store.Save(ctx, merged); err != nil {
		return 0, err
	}
	return len(merged), nil
}

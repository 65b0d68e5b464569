package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/catalog"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/config"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/db"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/hevy"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/history"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/middleware"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/records"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/metrics"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/tracker"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client
	hevyClient  *hevy.Client
	tracker     *tracker.Tracker
	query       *history.Query

	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	HevyApiKey              string
	RedisPassword           string
	PostgresPassword        string
	HoneycombTracingEnabled bool
}

// NewServer wires the hevy client, caches, records store and tracker. The
// api key is checked once: a rejected key is returned as an error matching
// hevy.ErrAuth, an unreachable api only gets logged.
func NewServer(ctx context.Context, params NewServerParams) (*Server, error) {
	cfg := params.Config

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	}

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "hevy-tracker", rdb)
	if err != nil {
		return nil, err
	}

	var (
		dbPool          *pgxpool.Pool
		extraCollectors []prometheus.Collector
	)
	if cfg.RecordsStore == config.RecordsStorePostgres {
		dbPool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:         cfg.PostgresHost,
			DBPort:         cfg.PostgresPort,
			DBName:         cfg.PostgresDBName,
			DBUser:         cfg.PostgresUser,
			DBPassword:     params.PostgresPassword,
			TracingEnabled: params.HoneycombTracingEnabled,
		})
		if err != nil {
			return nil, fmt.Errorf("new db pool: %w", err)
		}
		extraCollectors = append(extraCollectors, pgxpoolprometheus.NewCollector(
			dbPool,
			map[string]string{"db_name": cfg.PostgresDBName},
		))
	}

	promRegistry := metrics.SetupPrometheus(extraCollectors...)
	metricsManager := metrics.NewManager("hevy", "tracker", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	hevyClient := hevy.NewClient(
		cfg.HevyBaseURL,
		params.HevyApiKey,
		cfg.HevyTimeout(),
		&http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)},
		metricsManager,
	)
	if err := hevyClient.ValidateAPIKey(ctx); err != nil {
		if errors.Is(err, hevy.ErrAuth) {
			return nil, fmt.Errorf("validate api key: %w", err)
		}
		log.Warnf("hevy api not reachable at startup, scheduled refreshes will retry: %s", err)
	}

	store, err := newRecordsStore(ctx, cfg.RecordsStore, rdb, dbPool)
	if err != nil {
		return nil, err
	}

	trackerOpts, err := TrackerOptions(cfg)
	if err != nil {
		return nil, err
	}

	t := tracker.NewTracker(tracker.NewTrackerParams{
		Client:         hevyClient,
		Fetcher:        history.NewFetcher(hevyClient, time.Now),
		Catalog:        catalog.NewCache(hevyClient, metricsManager),
		Store:          store,
		MetricsManager: metricsManager,
		Options:        trackerOpts,
	})

	return &Server{
		config:         cfg,
		dbPool:         dbPool,
		redisClient:    rdb,
		hevyClient:     hevyClient,
		tracker:        t,
		query:          history.NewQuery(cfg.HistoryCacheSizeBytes),
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

// TrackerOptions maps the tracker section of cfg onto tracker.Options.
func TrackerOptions(cfg *config.Config) (tracker.Options, error) {
	unitSystem, err := units.ParseSystem(cfg.UnitSystem)
	if err != nil {
		return tracker.Options{}, err
	}
	return tracker.Options{
		UnitSystem:             unitSystem,
		LookbackDays:           cfg.LookbackDays,
		MaxPages:               cfg.MaxPages,
		PageSize:               cfg.PageSize,
		StalenessThresholdDays: cfg.StalenessThresholdDays,
		Interval:               cfg.PollingInterval(),
		Location:               cfg.Location(),
	}, nil
}

// ReloadOptions applies the tracker options of a freshly loaded config. They
// are picked up by the next refresh; the polling interval only changes on
// restart.
func (s *Server) ReloadOptions(cfg *config.Config) error {
	opts, err := TrackerOptions(cfg)
	if err != nil {
		return fmt.Errorf("reload tracker options: %w", err)
	}
	s.tracker.SetOptions(opts)
	log.Infof("tracker options reloaded: unit system [%s], lookback %d days", opts.UnitSystem, opts.LookbackDays)
	return nil
}

func newRecordsStore(ctx context.Context, kind string, rdb *redis.Client, dbPool *pgxpool.Pool) (records.Store, error) {
	switch kind {
	case config.RecordsStoreRedis:
		log.Debugln("personal records stored in redis")
		return records.NewRedisStore(rdb, records.DefaultRedisKey), nil
	case config.RecordsStorePostgres:
		store := records.NewPsqlStore(dbPool)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("migrate personal records table: %w", err)
		}
		log.Debugln("personal records stored in postgres")
		return store, nil
	default:
		log.Warnln("personal records kept in memory only, they will be rebuilt from the lookback window on restart")
		return records.NewMemoryStore(), nil
	}
}

func (s *Server) routerSetup(allowedOrigins []string) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("hevy-router"))

	handler := NewHandler(s.tracker, s.query)
	handler.SetupRoutes(
		r,
		redis_rate.NewLimiter(s.redisClient),
		s.config.HistoryRateLimitAllowedPerMin,
		s.metricsManager,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors(allowedOrigins...))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

// Serve loads persisted records, runs the first refresh, starts the polling
// loop and both listeners. A failed first refresh is logged only.
func (s *Server) Serve(ctx context.Context, host string, port int, allowedOrigins ...string) {
	if err := s.tracker.Init(ctx); err != nil {
		log.Errorf("initial refresh: %s", err)
	}
	s.tracker.Start()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      s.routerSetup(allowedOrigins),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:              metricsAddr,
		Handler:           metricsRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	// cancels a refresh in flight
	s.tracker.Stop()
	log.Trace("tracker stopped ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	var err error
	if s.httpServer != nil {
		err = multierr.Append(err, s.httpServer.Shutdown(ctx))
	}
	if s.metricsHttpServer != nil {
		err = multierr.Append(err, s.metricsHttpServer.Shutdown(ctx))
	}
	if s.redisClient != nil {
		err = multierr.Append(err, s.redisClient.Close())
	}
	for _, e := range multierr.Errors(err) {
		log.Errorf(" >>> shutdown: %s", e)
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close()
	}

	s.otelShutdown()

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	log.Warnln("server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed, http.StateHijacked:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
	}
}

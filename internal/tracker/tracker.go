package tracker

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/aggregate"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/catalog"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/hevy"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/history"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/records"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/metrics"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=tracker_test

const (
	StatusRunning = "running"
	StatusStopped = "stopped"
)

// ErrUpdateFailed wraps every refresh failure; the cause stays reachable
// through errors.Is / errors.As.
var ErrUpdateFailed = errors.New("update failed")

type hevyClient interface {
	GetWorkoutCount(ctx context.Context) (int, error)
}

type windowFetcher interface {
	FetchWindow(ctx context.Context, maxPages, pageSize, lookbackDays int) ([]workouts.Workout, error)
}

type catalogCache interface {
	Populate(ctx context.Context)
	Catalog() catalog.Catalog
}

type recordsStore interface {
	Load(ctx context.Context) (records.Table, error)
	Save(ctx context.Context, table records.Table) error
}

type NewTrackerParams struct {
	Client         hevyClient
	Fetcher        windowFetcher
	Catalog        catalogCache
	Store          recordsStore
	MetricsManager *metrics.Manager
	Options        Options
	// Now defaults to time.Now.
	Now func() time.Time
}

// Tracker owns the cross-refresh state (history, snapshot, personal records)
// and runs refresh cycles on a ticker. At most one refresh runs at a time.
type Tracker struct {
	client         hevyClient
	fetcher        windowFetcher
	catalog        catalogCache
	store          recordsStore
	metricsManager *metrics.Manager
	now            func() time.Time

	optsMu sync.RWMutex
	opts   Options

	refreshMu sync.Mutex

	stateMu       sync.RWMutex
	history       []workouts.Workout
	snapshot      *aggregate.Snapshot
	unitSystem    units.System
	prs           records.Table
	recordsLoaded bool
	generation    uint64
	lastErr       error
	lastRefresh   time.Time

	runMu   sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

func NewTracker(params NewTrackerParams) *Tracker {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	store := params.Store
	if store == nil {
		store = records.NewMemoryStore()
	}

	t := &Tracker{
		client:         params.Client,
		fetcher:        params.Fetcher,
		catalog:        params.Catalog,
		store:          store,
		metricsManager: params.MetricsManager,
		now:            now,
		opts:           params.Options.withDefaults(),
		prs:            records.Table{},
	}
	t.unitSystem = t.opts.UnitSystem

	return t
}

func (t *Tracker) Options() Options {
	t.optsMu.RLock()
	defer t.optsMu.RUnlock()
	return t.opts
}

func (t *Tracker) SetOptions(opts Options) {
	t.optsMu.Lock()
	defer t.optsMu.Unlock()
	t.opts = opts.withDefaults()
}

// Init loads persisted personal records, populates the template and routine
// caches once, and runs the first refresh. Only the refresh error is
// returned; the caches and the store never block startup.
func (t *Tracker) Init(ctx context.Context) error {
	t.loadRecords(ctx)
	t.catalog.Populate(ctx)
	return t.Refresh(ctx)
}

func (t *Tracker) loadRecords(ctx context.Context) {
	t.stateMu.RLock()
	loaded := t.recordsLoaded
	t.stateMu.RUnlock()
	if loaded {
		return
	}

	stored, err := t.store.Load(ctx)
	if err != nil {
		log.Errorf("failed to load personal records, will retry on next refresh: %s", err)
		return
	}

	t.stateMu.Lock()
	defer t.stateMu.Unlock()
	// records seen before the store became reachable are kept if they are better
	t.prs = stored.Merge(t.prs)
	t.recordsLoaded = true
	log.Debugf("loaded %d personal records", len(stored))
}

// Refresh runs one full cycle. On failure the previous snapshot, history and
// record table stay in place and the error is kept as LastError.
func (t *Tracker) Refresh(ctx context.Context) (err error) {
	t.refreshMu.Lock()
	defer t.refreshMu.Unlock()

	ctx, span := tracing.GlobalTracer.Start(ctx, "tracker.refresh")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	start := t.now()
	opts := t.Options()

	count, err := t.client.GetWorkoutCount(ctx)
	if err != nil {
		return t.fail(fmt.Errorf("get workout count: %w", err))
	}

	window, err := t.fetcher.FetchWindow(ctx, opts.MaxPages, opts.PageSize, opts.LookbackDays)
	if err != nil {
		return t.fail(fmt.Errorf("fetch workouts: %w", err))
	}

	// a cancelled cycle must not swap in anything
	if err := ctx.Err(); err != nil {
		return t.fail(fmt.Errorf("refresh cancelled: %w", err))
	}

	t.loadRecords(ctx)

	t.stateMu.RLock()
	previous := t.prs
	persist := t.recordsLoaded
	t.stateMu.RUnlock()

	// the unit system stays fixed for the whole cycle, even if SetOptions
	// lands while the snapshot is being built
	engine := aggregate.NewEngine(units.StaticConverter(opts.UnitSystem))
	snapshot, prs := engine.Build(aggregate.Input{
		History:                window,
		WorkoutCount:           count,
		Catalog:                t.catalog.Catalog(),
		Records:                previous,
		Now:                    t.now(),
		Location:               opts.Location,
		StalenessThresholdDays: opts.StalenessThresholdDays,
	})

	t.stateMu.Lock()
	t.history = window
	t.snapshot = snapshot
	t.unitSystem = opts.UnitSystem
	t.prs = prs
	t.generation++
	t.lastErr = nil
	t.lastRefresh = snapshot.GeneratedAt
	generation := t.generation
	t.stateMu.Unlock()

	span.SetAttributes(
		attribute.Int("workouts", len(window)),
		attribute.Int64("generation", int64(generation)),
	)

	if persist {
		if err := t.store.Save(ctx, prs); err != nil {
			log.Errorf("failed to persist personal records: %s", err)
		}
	}

	elapsed := t.now().Sub(start)
	log.Debugf("refresh done in %s: %d workouts in window, streak %d", elapsed, len(window), snapshot.CurrentStreak)

	if t.metricsManager != nil {
		t.metricsManager.CounterRefreshes.WithLabelValues(metrics.RefreshStatusOK).Inc()
		t.metricsManager.HistRefreshDuration.Observe(elapsed.Seconds())
		t.metricsManager.GaugeWindowWorkouts.Set(float64(len(window)))
		t.metricsManager.GaugeCurrentStreak.Set(float64(snapshot.CurrentStreak))
		t.metricsManager.GaugeCachedEntries.WithLabelValues("records").Set(float64(len(prs)))
	}

	return nil
}

func (t *Tracker) fail(cause error) error {
	err := fmt.Errorf("%w: %w", ErrUpdateFailed, cause)

	t.stateMu.Lock()
	t.lastErr = err
	t.stateMu.Unlock()

	kind := FailureKind(cause)
	if kind == "auth" {
		log.Errorf("hevy rejected the api key, reconfigure credentials: %s", cause)
	} else {
		log.Errorf("refresh failed, keeping previous snapshot: %s", cause)
	}

	if t.metricsManager != nil {
		t.metricsManager.CounterRefreshes.WithLabelValues(metrics.RefreshStatusFailed).Inc()
		t.metricsManager.CounterRefreshFailures.WithLabelValues(kind).Inc()
	}

	return err
}

// FailureKind is hevy.ErrorKind plus "cancelled" for refreshes stopped by
// their context.
func FailureKind(err error) string {
	if errors.Is(err, context.Canceled) {
		return "cancelled"
	}
	return hevy.ErrorKind(err)
}

// Snapshot returns the last good snapshot (nil before the first successful
// refresh) and its generation.
func (t *Tracker) Snapshot() (*aggregate.Snapshot, uint64) {
	t.stateMu.RLock()
	defer t.stateMu.RUnlock()
	return t.snapshot, t.generation
}

// HistorySource exposes the workout window of the last good refresh, most
// recent first, for on-demand history queries. The unit system is the one
// the matching snapshot was built with.
func (t *Tracker) HistorySource() history.Source {
	opts := t.Options()
	t.stateMu.RLock()
	defer t.stateMu.RUnlock()
	return history.Source{
		Generation: t.generation,
		History:    slices.Clone(t.history),
		Catalog:    t.catalog.Catalog(),
		UnitSystem: t.unitSystem,
		Now:        t.now(),
		Location:   opts.Location,
	}
}

// PersonalRecords returns a copy of the current table, weights in kilograms.
func (t *Tracker) PersonalRecords() records.Table {
	t.stateMu.RLock()
	defer t.stateMu.RUnlock()
	return t.prs.Clone()
}

func (t *Tracker) LastError() error {
	t.stateMu.RLock()
	defer t.stateMu.RUnlock()
	return t.lastErr
}

func (t *Tracker) LastRefresh() time.Time {
	t.stateMu.RLock()
	defer t.stateMu.RUnlock()
	return t.lastRefresh
}

// Start runs Refresh every Options.Interval until Stop. Calling Start on a
// running tracker is a no-op.
func (t *Tracker) Start() {
	t.runMu.Lock()
	defer t.runMu.Unlock()
	if t.running {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	t.cancel = cancel
	t.done = make(chan struct{})
	t.running = true

	interval := t.Options().Interval
	go t.loop(ctx, interval, t.done)

	log.Infof("tracker started, refreshing every %s", interval)
}

func (t *Tracker) loop(ctx context.Context, interval time.Duration, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			if err := t.Refresh(ctx); err != nil {
				log.Debugf("scheduled refresh: %s", err)
			}
		}
	}
}

// Stop cancels a refresh in flight and waits for the loop to exit.
func (t *Tracker) Stop() {
	t.runMu.Lock()
	defer t.runMu.Unlock()
	if !t.running {
		return
	}

	t.cancel()
	<-t.done
	t.running = false
	log.Infoln("tracker stopped")
}

func (t *Tracker) IsRunning() bool {
	t.runMu.Lock()
	defer t.runMu.Unlock()
	return t.running
}

func (t *Tracker) Status() string {
	if t.IsRunning() {
		return StatusRunning
	}
	return StatusStopped
}

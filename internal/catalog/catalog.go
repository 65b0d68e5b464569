package catalog

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/hevy"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/metrics"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"

	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

const (
	cacheNameTemplates = "templates"
	cacheNameRoutines  = "routines"

	// upper bound on template pages, in case page_count is never reached
	maxTemplatePages = 100
)

type hevyClient interface {
	GetExerciseTemplates(ctx context.Context, page, pageSize int) (*hevy.TemplatesPage, error)
	GetRoutines(ctx context.Context) (*hevy.RoutinesPage, error)
}

// Catalog is a read-only view of the cached templates and routines,
// handed to the aggregation engine for a single refresh.
type Catalog struct {
	Templates map[string]workouts.ExerciseTemplate
	Routines  []workouts.Routine
}

func (c Catalog) Template(id string) (workouts.ExerciseTemplate, bool) {
	if id == "" {
		return workouts.ExerciseTemplate{}, false
	}
	t, ok := c.Templates[id]
	return t, ok
}

// Cache holds the exercise template catalog and the saved routines. Both are
// fetched once per process; fetch failures never discard what is cached.
type Cache struct {
	client         hevyClient
	metricsManager *metrics.Manager

	mu        sync.RWMutex
	templates map[string]workouts.ExerciseTemplate
	routines  []workouts.Routine
}

func NewCache(client hevyClient, metricsManager *metrics.Manager) *Cache {
	return &Cache{
		client:         client,
		metricsManager: metricsManager,
		templates:      map[string]workouts.ExerciseTemplate{},
	}
}

// Populate loads templates and routines. Errors are logged and counted,
// never returned: a refresh must not be blocked by a missing catalog.
func (c *Cache) Populate(ctx context.Context) {
	if err := c.LoadTemplates(ctx); err != nil {
		log.Errorf("failed to load exercise templates, continuing with %d cached: %s", c.templatesCount(), err)
		c.countFailure(cacheNameTemplates)
	}
	if err := c.LoadRoutines(ctx); err != nil {
		log.Errorf("failed to load routines, continuing with %d cached: %s", c.routinesCount(), err)
		c.countFailure(cacheNameRoutines)
	}
	c.updateGauges()
}

// LoadTemplates pages through the exercise template catalog until an empty
// page or the reported page count is reached. Each page is merged as soon as
// it arrives, so a failure on a later page keeps the earlier ones.
func (c *Cache) LoadTemplates(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.loadTemplates")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	for page := 1; page <= maxTemplatePages; page++ {
		resp, err := c.client.GetExerciseTemplates(ctx, page, hevy.TemplatesPageSize)
		if err != nil {
			return fmt.Errorf("get templates page %d: %w", page, err)
		}
		if resp == nil || len(resp.Templates) == 0 {
			break
		}

		c.mu.Lock()
		for _, t := range resp.Templates {
			if t.ID == "" {
				continue
			}
			c.templates[t.ID] = t
		}
		c.mu.Unlock()

		if page >= resp.PageCount {
			break
		}
	}

	log.Debugf("exercise templates loaded: %d", c.templatesCount())
	return nil
}

func (c *Cache) LoadRoutines(ctx context.Context) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "catalog.loadRoutines")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	resp, err := c.client.GetRoutines(ctx)
	if err != nil {
		return fmt.Errorf("get routines: %w", err)
	}

	var routines []workouts.Routine
	if resp != nil {
		for _, r := range resp.Routines {
			if r.ID == "" {
				continue
			}
			routines = append(routines, r)
		}
	}

	c.mu.Lock()
	c.routines = routines
	c.mu.Unlock()

	log.Debugf("routines loaded: %d", len(routines))
	return nil
}

// Catalog returns a copy of the cached data.
func (c *Cache) Catalog() Catalog {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return Catalog{
		Templates: maps.Clone(c.templates),
		Routines:  slices.Clone(c.routines),
	}
}

func (c *Cache) templatesCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.templates)
}

func (c *Cache) routinesCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.routines)
}

func (c *Cache) countFailure(cache string) {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.CounterCacheLoadFailures.WithLabelValues(cache).Inc()
}

func (c *Cache) updateGauges() {
	if c.metricsManager == nil {
		return
	}
	c.metricsManager.GaugeCachedEntries.WithLabelValues(cacheNameTemplates).Set(float64(c.templatesCount()))
	c.metricsManager.GaugeCachedEntries.WithLabelValues(cacheNameRoutines).Set(float64(c.routinesCount()))
}

package history

import (
	"context"
	"fmt"
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/hevy"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/telemetry/tracing"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=fetcher_mocks_test.go -package=history_test

const (
	DefaultLookbackDays = 30
	DefaultMaxPages     = 10
)

type workoutsClient interface {
	GetWorkouts(ctx context.Context, page, pageSize int) (*hevy.WorkoutsPage, error)
}

// Fetcher pages through the workout list, newest first, until the lookback
// window is left behind.
type Fetcher struct {
	client workoutsClient
	now    func() time.Time
}

func NewFetcher(client workoutsClient, now func() time.Time) *Fetcher {
	if now == nil {
		now = time.Now
	}
	return &Fetcher{
		client: client,
		now:    now,
	}
}

// FetchWindow returns the workouts that started within the last lookbackDays,
// in API order. It stops at the first workout older than the cutoff, on an
// empty page, at the reported page count, or after maxPages pages.
// Workouts without a start time are kept. Any client error aborts the fetch.
func (f *Fetcher) FetchWindow(ctx context.Context, maxPages, pageSize, lookbackDays int) (_ []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "history.fetcher.fetchWindow")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	if pageSize <= 0 || pageSize > hevy.MaxWorkoutsPageSize {
		pageSize = hevy.MaxWorkoutsPageSize
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	cutoff := f.now().Add(-time.Duration(lookbackDays) * 24 * time.Hour)

	var (
		window []workouts.Workout
		pages  int
	)
	defer func() {
		span.SetAttributes(
			attribute.Int("pages", pages),
			attribute.Int("workouts", len(window)),
		)
	}()

	for page := 1; page <= maxPages; page++ {
		resp, err := f.client.GetWorkouts(ctx, page, pageSize)
		if err != nil {
			return nil, fmt.Errorf("get workouts page %d: %w", page, err)
		}
		pages++
		if resp == nil || len(resp.Workouts) == 0 {
			break
		}

		for _, w := range resp.Workouts {
			if w.HasStartTime() && w.StartTime.Before(cutoff) {
				log.Tracef("workout %s is older than %s, window complete after %d pages", w.ID, cutoff, pages)
				return window, nil
			}
			window = append(window, w)
		}

		if page >= resp.PageCount {
			break
		}
	}

	return window, nil
}

package tracker

import (
	"time"

	"github.com/DisplacedForest/ha-hevy-tracker/internal/aggregate"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/hevy"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/history"
	"github.com/DisplacedForest/ha-hevy-tracker/internal/units"
)

const DefaultInterval = 15 * time.Minute

// Options are read at the start of every refresh, so SetOptions takes
// effect on the next cycle. Interval is only read by Start.
type Options struct {
	UnitSystem             units.System
	LookbackDays           int
	MaxPages               int
	PageSize               int
	StalenessThresholdDays int
	Interval               time.Duration
	Location               *time.Location
}

func (o Options) withDefaults() Options {
	if o.UnitSystem != units.Imperial {
		o.UnitSystem = units.Metric
	}
	if o.LookbackDays <= 0 {
		o.LookbackDays = history.DefaultLookbackDays
	}
	if o.MaxPages <= 0 {
		o.MaxPages = history.DefaultMaxPages
	}
	if o.PageSize <= 0 || o.PageSize > hevy.MaxWorkoutsPageSize {
		o.PageSize = hevy.MaxWorkoutsPageSize
	}
	if o.StalenessThresholdDays <= 0 {
		o.StalenessThresholdDays = aggregate.DefaultStalenessThresholdDays
	}
	if o.Interval <= 0 {
		o.Interval = DefaultInterval
	}
	if o.Location == nil {
		o.Location = time.UTC
	}
	return o
}

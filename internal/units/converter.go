package units

import (
	"fmt"
	"math"
	"strings"
)

type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"

	KgToLbs = 2.20462
)

// ParseSystem accepts "metric" or "imperial" (case-insensitive).
func ParseSystem(s string) (System, error) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric, nil
	case Imperial:
		return Imperial, nil
	default:
		return "", fmt.Errorf("unknown unit system: %q", s)
	}
}

// Converter turns kilograms into the display unit returned by source.
type Converter struct {
	source func() System
}

func NewConverter(source func() System) *Converter {
	return &Converter{source: source}
}

// StaticConverter is a Converter pinned to a single unit system.
func StaticConverter(system System) *Converter {
	return NewConverter(func() System { return system })
}

func (c *Converter) System() System {
	if c == nil || c.source == nil {
		return Metric
	}
	return c.source()
}

// Convert returns weightKg in the display unit rounded to the nearest 0.5,
// or nil when weightKg is nil.
func (c *Converter) Convert(weightKg *float64) *float64 {
	if weightKg == nil {
		return nil
	}
	v := c.ConvertValue(*weightKg)
	return &v
}

func (c *Converter) ConvertValue(weightKg float64) float64 {
	if c.System() == Imperial {
		return RoundHalf(weightKg * KgToLbs)
	}
	return RoundHalf(weightKg)
}

func (c *Converter) UnitLabel() string {
	if c.System() == Imperial {
		return "lbs"
	}
	return "kg"
}

// RoundHalf rounds to the nearest 0.5 using round-half-to-even on v*2.
func RoundHalf(v float64) float64 {
	return math.RoundToEven(v*2) / 2
}

// Round1 rounds to one decimal place, half-to-even.
func Round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}

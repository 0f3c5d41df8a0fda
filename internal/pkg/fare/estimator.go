// Package fare computes trip fare estimates from distance and time of day.
package fare

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/internal/pkg/models"
	"github.com/piresc/campusride/internal/utils"
	"github.com/shopspring/decimal"
)

const (
	// minutesPerKm approximates a 20 km/h campus average
	minutesPerKm       = 3
	minDurationMinutes = 5
	currencySymbol     = "৳"
)

// Window is a half-open hour-of-day range [Start, End)
type Window struct {
	Start int
	End   int
}

// Contains reports whether hour falls inside the window
func (w Window) Contains(hour int) bool {
	return hour >= w.Start && hour < w.End
}

// Estimator is a pure fare calculator configured with a tariff
type Estimator struct {
	base      decimal.Decimal
	perKm     decimal.Decimal
	perMinute decimal.Decimal
	surge     decimal.Decimal
	windows   []Window
	location  *time.Location
	currency  string
}

// NewEstimator builds an estimator from config. Invalid surge windows or an
// unknown timezone fall back to the campus defaults.
func NewEstimator(cfg models.FareConfig) *Estimator {
	windows, err := ParseWindows(cfg.SurgeWindows)
	if err != nil {
		logger.Warn("Invalid surge windows, using defaults",
			logger.String("surge_windows", cfg.SurgeWindows),
			logger.Err(err))
		windows = []Window{{Start: 7, End: 9}, {Start: 17, End: 19}}
	}

	location := time.UTC
	if cfg.Timezone != "" {
		if loc, err := time.LoadLocation(cfg.Timezone); err == nil {
			location = loc
		} else {
			logger.Warn("Unknown fare timezone, using UTC", logger.String("timezone", cfg.Timezone))
		}
	}

	return New(cfg.BaseFare, cfg.PerKmRate, cfg.PerMinuteRate, cfg.SurgeMultiplier, windows, location, cfg.Currency)
}

// New builds an estimator from explicit tariff values
func New(base, perKm, perMinute, surge float64, windows []Window, location *time.Location, currency string) *Estimator {
	if location == nil {
		location = time.UTC
	}
	return &Estimator{
		base:      decimal.NewFromFloat(base),
		perKm:     decimal.NewFromFloat(perKm),
		perMinute: decimal.NewFromFloat(perMinute),
		surge:     decimal.NewFromFloat(surge),
		windows:   windows,
		location:  location,
		currency:  currency,
	}
}

// ParseWindows parses "7-9,17-19" into hour windows
func ParseWindows(raw string) ([]Window, error) {
	var windows []Window
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		bounds := strings.SplitN(part, "-", 2)
		if len(bounds) != 2 {
			return nil, fmt.Errorf("invalid surge window %q", part)
		}
		start, err := strconv.Atoi(strings.TrimSpace(bounds[0]))
		if err != nil {
			return nil, fmt.Errorf("invalid surge window start %q: %w", part, err)
		}
		end, err := strconv.Atoi(strings.TrimSpace(bounds[1]))
		if err != nil {
			return nil, fmt.Errorf("invalid surge window end %q: %w", part, err)
		}
		if start < 0 || end > 24 || start >= end {
			return nil, fmt.Errorf("invalid surge window %q", part)
		}
		windows = append(windows, Window{Start: start, End: end})
	}
	return windows, nil
}

// EstimateDuration returns the trip duration proxy in whole minutes
func EstimateDuration(distanceKm float64) int {
	minutes := int(math.Round(distanceKm * minutesPerKm))
	if minutes < minDurationMinutes {
		return minDurationMinutes
	}
	return minutes
}

// SurgeAt returns the multiplier in effect at the given instant
func (e *Estimator) SurgeAt(at time.Time) decimal.Decimal {
	hour := at.In(e.location).Hour()
	for _, w := range e.windows {
		if w.Contains(hour) {
			return e.surge
		}
	}
	return decimal.NewFromInt(1)
}

// Estimate prices a trip between pickup and drop evaluated at the given instant
func (e *Estimator) Estimate(pickup, drop models.Location, at time.Time) models.FareEstimate {
	distanceKm := utils.CalculateDistance(pickup, drop)
	duration := EstimateDuration(distanceKm)

	distance := decimal.NewFromFloat(distanceKm)
	distanceFare := distance.Mul(e.perKm).Round(2)
	timeFare := decimal.NewFromInt(int64(duration)).Mul(e.perMinute).Round(2)
	subtotal := e.base.Add(distanceFare).Add(timeFare)
	surge := e.SurgeAt(at)
	total := subtotal.Mul(surge).Round(2)

	surgeLabel := "No surge"
	if surge.GreaterThan(decimal.NewFromInt(1)) {
		surgeLabel = surge.String() + "x"
	}

	return models.FareEstimate{
		DistanceKm:      distance.Round(2),
		DurationMinutes: duration,
		BaseFare:        e.base.Round(2),
		DistanceFare:    distanceFare,
		TimeFare:        timeFare,
		Subtotal:        subtotal,
		SurgeMultiplier: surge,
		TotalFare:       total,
		Currency:        e.currency,
		Breakdown: models.FareBreakdown{
			Base:     currencySymbol + e.base.StringFixed(2),
			Distance: fmt.Sprintf("%s%s (%.1f km × %s%s)", currencySymbol, distanceFare.StringFixed(2), distanceKm, currencySymbol, e.perKm.String()),
			Time:     fmt.Sprintf("%s%s (%d min × %s%s)", currencySymbol, timeFare.StringFixed(2), duration, currencySymbol, e.perMinute.String()),
			Surge:    surgeLabel,
		},
	}
}

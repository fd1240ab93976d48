package spot

import (
	"fmt"
	"time"
)

// Timeframe selects the span and resolution of a historical price query.
//
// The values are the German labels used by the original spreadsheet and
// the UI, so they survive round trips through user input unchanged.
type Timeframe string

const (
	Intraday  Timeframe = "Interday"
	Week      Timeframe = "Woche"
	Month     Timeframe = "Monat"
	Year      Timeframe = "Jahr"
	FiveYears Timeframe = "5 Jahre"
	Max       Timeframe = "Max"
)

// MaxPoints is the largest number of points ever requested from the
// oracle, its response size is limited.
const MaxPoints = 90

// Timeframes lists all selectable timeframes in display order.
func Timeframes() []Timeframe {
	return []Timeframe{Intraday, Week, Month, Year, FiveYears, Max}
}

func (tf Timeframe) String() string { return string(tf) }

// ParseTimeframe parses a timeframe label.
func ParseTimeframe(s string) (Timeframe, error) {
	for _, tf := range Timeframes() {
		if s == string(tf) {
			return tf, nil
		}
	}
	// a few convenient aliases for the command line
	switch s {
	case "1t", "24h", "intraday":
		return Intraday, nil
	case "1w", "woche":
		return Week, nil
	case "1m", "monat":
		return Month, nil
	case "1j", "1y", "jahr":
		return Year, nil
	case "5j", "5y":
		return FiveYears, nil
	case "max":
		return Max, nil
	}
	return "", fmt.Errorf("unknown timeframe %q", s)
}

// profile is the fixed mapping from a timeframe to the span it covers and
// the number of points requested for it.
type profile struct {
	days     int  // historical span in days (1 for intraday)
	points   int  // target point count, before capping
	stepDays int  // spacing of synthetic points, in days
	hourly   bool // points are spaced hourly instead of stepDays
}

func (tf Timeframe) profile() profile {
	switch tf {
	case Intraday:
		return profile{days: 1, points: 24, hourly: true}
	case Week:
		return profile{days: 7, points: 7, stepDays: 1}
	case Month:
		return profile{days: 30, points: 30, stepDays: 1}
	case Year:
		return profile{days: 365, points: 52, stepDays: 7}
	case FiveYears:
		return profile{days: 5 * 365, points: 60, stepDays: 30}
	case Max:
		return profile{days: 10 * 365, points: 120, stepDays: 30}
	default:
		// unknown timeframes behave like a month, the safest span
		return profile{days: 30, points: 30, stepDays: 1}
	}
}

// Points returns the number of points requested for this timeframe,
// capped at MaxPoints.
func (tf Timeframe) Points() int {
	return min(tf.profile().points, MaxPoints)
}

// Span returns the historical span covered by this timeframe.
func (tf Timeframe) Span() time.Duration {
	return time.Duration(tf.profile().days) * 24 * time.Hour
}

// Days returns the historical span in days.
func (tf Timeframe) Days() int { return tf.profile().days }

// IsIntraday reports whether points of this timeframe carry a time of day.
func (tf Timeframe) IsIntraday() bool { return tf.profile().hourly }

package spot

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// DateFormat is the wire format of daily stamps, ISO-8601 date only.
const DateFormat = "2006-01-02"

// Stamp is the timestamp of a price point. Daily points carry a bare
// date, intraday points carry a full date-time. The distinction is kept
// so a stamp marshals back exactly the way it was produced.
type Stamp struct {
	time.Time
	Clocked bool // true when the stamp carries a time of day
}

// DayStamp returns a date-only stamp for the day containing t (UTC).
func DayStamp(t time.Time) Stamp {
	y, m, d := t.UTC().Date()
	return Stamp{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// HourStamp returns an intraday stamp for t truncated to the hour.
func HourStamp(t time.Time) Stamp {
	return Stamp{Time: t.UTC().Truncate(time.Hour), Clocked: true}
}

// ParseStamp parses a stamp from its wire form, accepting both the
// date-only and the RFC 3339 date-time representation.
func ParseStamp(s string) (Stamp, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return Stamp{Time: t.UTC(), Clocked: true}, nil
	}
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return Stamp{}, fmt.Errorf("invalid stamp %q: want %q or RFC 3339", s, DateFormat)
	}
	return Stamp{Time: t}, nil
}

// String formats the stamp in its wire form.
func (s Stamp) String() string {
	if s.Clocked {
		return s.Time.Format(time.RFC3339)
	}
	return s.Time.Format(DateFormat)
}

func (s Stamp) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

func (s *Stamp) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err != nil {
		return err
	}
	parsed, err := ParseStamp(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

var _ json.Marshaler = (*Stamp)(nil)
var _ json.Unmarshaler = (*Stamp)(nil)

// PricePoint is a single spot price observation in EUR per troy ounce.
type PricePoint struct {
	Stamp Stamp   `json:"date"`
	Price float64 `json:"price"`
}

// Series is a chronologically ascending sequence of price points.
//
// A series produced by this package is never empty and its last point is
// pinned to the authoritative current price, consumers may rely on both.
type Series []PricePoint

// Sort sorts the series chronologically in place. The oracle is not
// trusted to return sorted output.
func (s Series) Sort() {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Stamp.Time.Before(s[j].Stamp.Time)
	})
}

// Pin overwrites the last point's price with the authoritative current
// price, guaranteeing continuity with the price shown elsewhere.
func (s Series) Pin(current float64) {
	if len(s) > 0 {
		s[len(s)-1].Price = current
	}
}

// Last returns the most recent point of the series.
func (s Series) Last() (PricePoint, bool) {
	if len(s) == 0 {
		return PricePoint{}, false
	}
	return s[len(s)-1], true
}

// At returns the price at the given stamp.
func (s Series) At(stamp Stamp) (float64, bool) {
	for _, p := range s {
		if p.Stamp.Time.Equal(stamp.Time) {
			return p.Price, true
		}
	}
	return 0, false
}

// IsSorted reports whether the series is chronologically non-decreasing.
func (s Series) IsSorted() bool {
	for i := 1; i < len(s); i++ {
		if s[i].Stamp.Time.Before(s[i-1].Stamp.Time) {
			return false
		}
	}
	return true
}

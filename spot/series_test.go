package spot

import (
	"encoding/json"
	"testing"
	"time"
)

func TestStampWireFormat(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		clocked bool
	}{
		{"daily", `"2025-07-29"`, false},
		{"intraday", `"2025-07-29T12:00:00Z"`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Stamp
			if err := json.Unmarshal([]byte(tt.input), &s); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if s.Clocked != tt.clocked {
				t.Errorf("Clocked = %v, want %v", s.Clocked, tt.clocked)
			}
			out, err := json.Marshal(s)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			if string(out) != tt.input {
				t.Errorf("round trip = %s, want %s", out, tt.input)
			}
		})
	}

	var s Stamp
	if err := json.Unmarshal([]byte(`"kein datum"`), &s); err == nil {
		t.Error("expected error for invalid stamp")
	}
}

func TestSeriesSortAndPin(t *testing.T) {
	day := func(d int) Stamp { return DayStamp(time.Date(2025, 7, d, 0, 0, 0, 0, time.UTC)) }

	series := Series{
		{Stamp: day(29), Price: 2130},
		{Stamp: day(27), Price: 2100},
		{Stamp: day(28), Price: 2120},
	}
	if series.IsSorted() {
		t.Fatal("fixture should start unsorted")
	}

	series.Sort()
	if !series.IsSorted() {
		t.Error("series not sorted after Sort()")
	}
	if got, _ := series.Last(); !got.Stamp.Time.Equal(day(29).Time) {
		t.Errorf("Last() stamp = %s, want 2025-07-29", got.Stamp)
	}

	series.Pin(2150.55)
	if got, _ := series.Last(); got.Price != 2150.55 {
		t.Errorf("Last() price = %v, want pinned 2150.55", got.Price)
	}

	// earlier points untouched
	if series[0].Price != 2100 {
		t.Errorf("first price = %v, want 2100", series[0].Price)
	}
}

func TestSeriesAt(t *testing.T) {
	day := DayStamp(time.Date(2025, 7, 29, 0, 0, 0, 0, time.UTC))
	series := Series{{Stamp: day, Price: 2100}}

	if p, ok := series.At(day); !ok || p != 2100 {
		t.Errorf("At(known) = %v, %v", p, ok)
	}
	other := DayStamp(time.Date(2025, 7, 30, 0, 0, 0, 0, time.UTC))
	if _, ok := series.At(other); ok {
		t.Error("At(unknown) should report false")
	}
}

func TestEmptySeries(t *testing.T) {
	var s Series
	if _, ok := s.Last(); ok {
		t.Error("Last() on empty series should report false")
	}
	s.Pin(1) // must not panic
	if !s.IsSorted() {
		t.Error("empty series is trivially sorted")
	}
}

package spot

import "testing"

func TestTimeframePoints(t *testing.T) {
	tests := []struct {
		tf     Timeframe
		points int
		days   int
	}{
		{Intraday, 24, 1},
		{Week, 7, 7},
		{Month, 30, 30},
		{Year, 52, 365},
		{FiveYears, 60, 5 * 365},
		{Max, 90, 10 * 365}, // 120 requested, capped at MaxPoints
	}

	for _, tt := range tests {
		t.Run(string(tt.tf), func(t *testing.T) {
			if got := tt.tf.Points(); got != tt.points {
				t.Errorf("Points() = %d, want %d", got, tt.points)
			}
			if got := tt.tf.Days(); got != tt.days {
				t.Errorf("Days() = %d, want %d", got, tt.days)
			}
			if got := tt.tf.Points(); got > MaxPoints {
				t.Errorf("Points() = %d exceeds MaxPoints", got)
			}
		})
	}
}

func TestParseTimeframe(t *testing.T) {
	tests := []struct {
		input string
		want  Timeframe
		err   bool
	}{
		{"Woche", Week, false},
		{"1w", Week, false},
		{"Interday", Intraday, false},
		{"24h", Intraday, false},
		{"5 Jahre", FiveYears, false},
		{"5j", FiveYears, false},
		{"max", Max, false},
		{"quartal", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeframe(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("ParseTimeframe(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.want {
				t.Errorf("ParseTimeframe(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestOnlyIntradayIsHourly(t *testing.T) {
	for _, tf := range Timeframes() {
		if got, want := tf.IsIntraday(), tf == Intraday; got != want {
			t.Errorf("%s.IsIntraday() = %v, want %v", tf, got, want)
		}
	}
}

package spot

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		err   bool
	}{
		{"2150.55", 2150.55, false},
		{"Der aktuelle Spotpreis liegt bei 2150.55 EUR.", 2150.55, false},
		{"2150,55", 2150.55, false},
		{"28,50 EUR", 28.50, false},
		{"2150", 2150, false},
		{"", 0, true},
		{"keine Zahl", 0, true},
		// thousands separators leave two dots behind, which is a parse
		// failure and thus a fallback, never a wrong price
		{"2.150,55", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parsePrice(tt.input)
			if (err != nil) != tt.err {
				t.Fatalf("parsePrice(%q) error = %v, want error %v", tt.input, err, tt.err)
			}
			if !tt.err && got != tt.want {
				t.Errorf("parsePrice(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseSeries(t *testing.T) {
	tests := []struct {
		name  string
		input string
		n     int
		err   bool
	}{
		{
			name:  "daily points",
			input: `[{"date":"2025-07-28","price":2100.5},{"date":"2025-07-29","price":2150}]`,
			n:     2,
		},
		{
			name:  "intraday points",
			input: `[{"date":"2025-07-29T11:00:00Z","price":2100},{"date":"2025-07-29T12:00:00Z","price":2150}]`,
			n:     2,
		},
		{name: "empty array", input: `[]`, err: true},
		{name: "not json", input: `Preisdaten folgen in Kürze`, err: true},
		{name: "wrong shape", input: `{"date":"2025-07-29","price":2150}`, err: true},
		{name: "bad date", input: `[{"date":"gestern","price":2150}]`, err: true},
		{name: "non-positive price", input: `[{"date":"2025-07-29","price":0}]`, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			series, err := parseSeries([]byte(tt.input))
			if (err != nil) != tt.err {
				t.Fatalf("parseSeries() error = %v, want error %v", err, tt.err)
			}
			if !tt.err && len(series) != tt.n {
				t.Errorf("len = %d, want %d", len(series), tt.n)
			}
		})
	}
}

func TestReferencePrices(t *testing.T) {
	if referencePrice(Gold) != 2150.00 {
		t.Errorf("gold reference = %v", referencePrice(Gold))
	}
	if referencePrice(Silver) != 28.50 {
		t.Errorf("silver reference = %v", referencePrice(Silver))
	}

	c := NewClient(nil)
	if c.reference(Gold) != 2150.00 || c.reference(Silver) != 28.50 {
		t.Errorf("client references = %v/%v", c.reference(Gold), c.reference(Silver))
	}

	c.WithReferencePrices(2200, 0)
	if c.reference(Gold) != 2200 {
		t.Errorf("overridden gold reference = %v", c.reference(Gold))
	}
	if c.reference(Silver) != 28.50 {
		t.Errorf("silver reference should keep its default, got %v", c.reference(Silver))
	}
}

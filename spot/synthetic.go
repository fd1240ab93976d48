package spot

import (
	"math"
	"math/rand"
	"time"
)

// Synthesizer produces a plausible price history when no real data is
// obtainable, so downstream consumers never see an empty or malformed
// series. The walk is mildly upward trending, noisy, and anchored on the
// current price.
type Synthesizer struct {
	rand *rand.Rand
}

// NewSynthesizer returns a synthesizer drawing from src. A nil src uses
// an unseeded source, tests inject a seeded one for reproducibility.
func NewSynthesizer(src *rand.Rand) *Synthesizer {
	if src == nil {
		src = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Synthesizer{rand: src}
}

// Synthesize generates a price series for the given metal and timeframe
// ending at asOf with the anchor price. Convenience for a one-shot
// unseeded generation.
func Synthesize(metal Metal, tf Timeframe, anchor float64, asOf time.Time) Series {
	return NewSynthesizer(nil).Series(metal, tf, anchor, asOf)
}

// Series generates the synthetic price history.
//
// Points are hourly ending at asOf for Intraday, otherwise spaced by the
// timeframe's day step counting backward from asOf. Each price is the
// anchor plus a uniform fluctuation in ±5% and a linear trend growing to
// +5% across the series, shifted down by 2.5%. The last point is always
// overwritten with the anchor exactly.
func (g *Synthesizer) Series(metal Metal, tf Timeframe, anchor float64, asOf time.Time) Series {
	p := tf.profile()
	n := tf.Points()

	series := make(Series, 0, n)
	for i := 0; i < n; i++ {
		var stamp Stamp
		if p.hourly {
			stamp = HourStamp(asOf.Add(-time.Duration(n-1-i) * time.Hour))
		} else {
			stamp = DayStamp(asOf.AddDate(0, 0, -(n-1-i)*p.stepDays))
		}

		fluctuation := (g.rand.Float64() - 0.5) * anchor * 0.1
		trend := float64(i) / float64(n) * anchor * 0.05
		price := anchor + fluctuation + trend - anchor*0.025

		series = append(series, PricePoint{
			Stamp: stamp,
			Price: math.Round(price*100) / 100,
		})
	}

	series.Pin(anchor)
	return series
}

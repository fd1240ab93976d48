package muenztracker

import (
	"github.com/Deibi93/muenztracker/spot"
)

// GramsPerTroyOunce converts between the two weight units of the
// inventory. Fixed, not configurable.
const GramsPerTroyOunce = 31.1035

// ToOunces converts a weight to troy ounces.
func ToOunces(weight float64, unit WeightUnit) float64 {
	if unit == Gram {
		return weight / GramsPerTroyOunce
	}
	return weight
}

// ItemValue computes the current value of an item at the given spot
// price per troy ounce. An unknown price (zero or negative) values the
// item at 0: valuation degrades gracefully, it never fails.
func ItemValue(it Item, spotPrice float64) float64 {
	if spotPrice <= 0 {
		return 0
	}
	return float64(it.Quantity) * ToOunces(it.Weight, it.WeightUnit) * (it.Purity / 1000) * spotPrice
}

// CurrentTotal sums the current value of all items, selecting each
// item's spot price by its metal. While either price is still unknown
// the total is 0, meaning "no valuation yet", not an error.
func CurrentTotal(items []Item, goldPrice, silverPrice float64) float64 {
	if goldPrice <= 0 || silverPrice <= 0 {
		return 0
	}
	var total float64
	for _, it := range items {
		price := goldPrice
		if it.Metal == spot.Silver {
			price = silverPrice
		}
		total += ItemValue(it, price)
	}
	return total
}

// ValuationSnapshot is the portfolio value at one point of the history
// curve.
type ValuationSnapshot struct {
	Stamp spot.Stamp `json:"date"`
	Value float64    `json:"value"`
}

// HistoricalCurve reconstructs the portfolio value over time from the
// two metals' price series.
//
// The gold series' stamps form the canonical axis. For each stamp the
// silver price is looked up by matching stamp, falling back to the same
// positional index when the series are misaligned, and to 0 when that
// index is out of range. Items contribute from their purchase date
// onward (inclusive), never before.
//
// If either series is empty the curve is empty: no valuation without
// both prices.
func HistoricalCurve(items []Item, gold, silver spot.Series) []ValuationSnapshot {
	if len(gold) == 0 || len(silver) == 0 {
		return nil
	}

	curve := make([]ValuationSnapshot, 0, len(gold))
	for i, gp := range gold {
		silverPrice, ok := silver.At(gp.Stamp)
		if !ok && i < len(silver) {
			silverPrice = silver[i].Price
		}

		var total float64
		for _, it := range items {
			if it.PurchaseDate.Time().After(gp.Stamp.Time) {
				continue // not yet in the portfolio on that date
			}
			price := gp.Price
			if it.Metal == spot.Silver {
				price = silverPrice
			}
			total += ItemValue(it, price)
		}

		curve = append(curve, ValuationSnapshot{Stamp: gp.Stamp, Value: total})
	}
	return curve
}

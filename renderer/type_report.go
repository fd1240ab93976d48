package renderer

import (
	"fmt"

	"github.com/Deibi93/muenztracker"
	"github.com/Deibi93/muenztracker/spot"
)

// The types in this file are the view model handed to the templates:
// everything is preformatted text, templates only lay it out.

// Source is a rendered provenance reference.
type Source struct {
	Title string
	URI   string
}

// Card is the rendered spot price of one metal.
type Card struct {
	Metal   string
	Price   string
	Sources []Source
}

// ItemRow is one rendered inventory position.
type ItemRow struct {
	Name     string
	Quantity int
	Metal    string
	Weight   string
	Purity   string
	Purchase string
	Paid     string
	Current  string
	Gain     string
}

// CurvePoint is one rendered point of the valuation history.
type CurvePoint struct {
	Date  string
	Value string
}

// Report is the full Bestandsübersicht view.
type Report struct {
	Date      string
	Timeframe string
	Err       string
	Cards     []Card
	Total     string
	Items     []ItemRow
	Curve     []CurvePoint
}

// NewReport assembles the report view from the inventory and the spot
// service snapshot.
func NewReport(inv *muenztracker.Inventory, snap spot.Snapshot) *Report {
	items := inv.Items()

	r := &Report{
		Date:      muenztracker.Today().String(),
		Timeframe: snap.Timeframe.String(),
		Err:       snap.Err,
		Cards: []Card{
			newCard(spot.Gold, snap.Gold),
			newCard(spot.Silver, snap.Silver),
		},
		Total: muenztracker.EUR(muenztracker.CurrentTotal(items, snap.Gold.Price, snap.Silver.Price)).String(),
		Items: newItemRows(items, snap.Gold.Price, snap.Silver.Price),
	}

	for _, p := range muenztracker.HistoricalCurve(items, snap.Gold.History, snap.Silver.History) {
		r.Curve = append(r.Curve, CurvePoint{
			Date:  p.Stamp.String(),
			Value: muenztracker.EUR(p.Value).String(),
		})
	}
	return r
}

func newCard(metal spot.Metal, prices spot.MetalPrices) Card {
	c := Card{
		Metal: metal.String(),
		Price: muenztracker.EUR(prices.Price).String(),
	}
	for _, s := range prices.Sources {
		c.Sources = append(c.Sources, Source{Title: s.Title, URI: s.URI})
	}
	return c
}

func newItemRows(items []muenztracker.Item, goldPrice, silverPrice float64) []ItemRow {
	rows := make([]ItemRow, 0, len(items))
	for _, it := range items {
		price := goldPrice
		if it.Metal == spot.Silver {
			price = silverPrice
		}
		current := muenztracker.ItemValue(it, price)
		paid := it.PurchasePrice * float64(it.Quantity)

		row := ItemRow{
			Name:     it.Name,
			Quantity: it.Quantity,
			Metal:    it.Metal.String(),
			Weight:   fmt.Sprintf("%v %s", it.Weight, it.WeightUnit),
			Purity:   fmt.Sprintf("%v ‰", it.Purity),
			Purchase: it.PurchaseDate.String(),
			Paid:     muenztracker.EUR(paid).String(),
			Current:  muenztracker.EUR(current).String(),
			Gain:     muenztracker.EUR(current - paid).SignedString(),
		}
		if price <= 0 {
			// no spot price yet, a gain would be misleading
			row.Current = "-"
			row.Gain = "-"
		}
		rows = append(rows, row)
	}
	return rows
}

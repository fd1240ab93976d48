package muenztracker

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Deibi93/muenztracker/spot"
)

// This file handles the CSV import/export format. It mirrors the columns
// of the original spreadsheet, so existing exports keep round-tripping.

// csvHeader is the column set of the import/export format, in order.
var csvHeader = []string{
	"Name", "Gewicht", "Einheit", "Typ", "Metall", "Reinheit",
	"Kaufdatum", "Kaufpreis", "Anzahl", "Prägedatum", "Notizen",
}

// ImportItems reads items from 'r' in the CSV import format.
//
// The import is lenient the way the original spreadsheet import was:
// missing or empty cells fall back to defaults (ounces, Münze, Gold,
// purity 999.9, quantity 1, purchase date today). Each imported item
// receives a fresh ID. Rows that remain invalid after defaulting are an
// error naming the row.
func ImportItems(r io.Reader) ([]Item, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["Name"]; !ok {
		return nil, fmt.Errorf("CSV header has no %q column, got %v", "Name", header)
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var items []Item
	for row := 2; ; row++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}

		it := Item{
			ID:          newItemID(),
			Name:        field(record, "Name"),
			WeightUnit:  Ounce,
			ItemType:    Coin,
			Metal:       spot.Gold,
			Purity:      999.9,
			Quantity:    1,
			MintingDate: field(record, "Prägedatum"),
			Notes:       field(record, "Notizen"),
		}

		if s := field(record, "Gewicht"); s != "" {
			if it.Weight, err = parseGermanFloat(s); err != nil {
				return nil, fmt.Errorf("row %d: invalid Gewicht %q", row, s)
			}
		}
		if s := field(record, "Einheit"); s != "" {
			if it.WeightUnit, err = ParseWeightUnit(s); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		}
		if field(record, "Typ") == string(Bar) {
			it.ItemType = Bar
		}
		if s := field(record, "Metall"); s != "" {
			if it.Metal, err = spot.ParseMetal(s); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		}
		if s := field(record, "Reinheit"); s != "" {
			if it.Purity, err = parseGermanFloat(s); err != nil {
				return nil, fmt.Errorf("row %d: invalid Reinheit %q", row, s)
			}
		}
		if s := field(record, "Kaufdatum"); s != "" {
			if it.PurchaseDate, err = ParseDate(s); err != nil {
				return nil, fmt.Errorf("row %d: %w", row, err)
			}
		} else {
			it.PurchaseDate = Today()
		}
		if s := field(record, "Kaufpreis"); s != "" {
			if it.PurchasePrice, err = parseGermanFloat(s); err != nil {
				return nil, fmt.Errorf("row %d: invalid Kaufpreis %q", row, s)
			}
		}
		if s := field(record, "Anzahl"); s != "" {
			if it.Quantity, err = strconv.Atoi(s); err != nil {
				return nil, fmt.Errorf("row %d: invalid Anzahl %q", row, s)
			}
		}

		if err := it.Validate(); err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		items = append(items, it)
	}
	return items, nil
}

// ExportItems writes the items to 'w' in the CSV import format.
func ExportItems(w io.Writer, items []Item) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, it := range items {
		record := []string{
			it.Name,
			strconv.FormatFloat(it.Weight, 'f', -1, 64),
			string(it.WeightUnit),
			string(it.ItemType),
			string(it.Metal),
			strconv.FormatFloat(it.Purity, 'f', -1, 64),
			it.PurchaseDate.String(),
			strconv.FormatFloat(it.PurchasePrice, 'f', -1, 64),
			strconv.Itoa(it.Quantity),
			it.MintingDate,
			it.Notes,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// parseGermanFloat accepts both decimal separators, "999,9" and "999.9".
func parseGermanFloat(s string) (float64, error) {
	return strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
}

package muenztracker

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/Deibi93/muenztracker/spot"
)

func TestCSVRoundTrip(t *testing.T) {
	items := []Item{
		{
			ID: "a1", Name: "Krügerrand", Weight: 1, WeightUnit: Ounce,
			ItemType: Coin, Metal: spot.Gold, Purity: 916.7,
			PurchaseDate: NewDate(2024, time.March, 1), PurchasePrice: 1850.50,
			Quantity: 2, MintingDate: "1984", Notes: "Sammlung, Erbstück",
		},
		{
			ID: "b2", Name: "Silberbarren", Weight: 500, WeightUnit: Gram,
			ItemType: Bar, Metal: spot.Silver, Purity: 999.9,
			PurchaseDate: NewDate(2025, time.January, 15), PurchasePrice: 450,
			Quantity: 1,
		},
	}

	var buf bytes.Buffer
	if err := ExportItems(&buf, items); err != nil {
		t.Fatalf("ExportItems: %v", err)
	}

	imported, err := ImportItems(&buf)
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}
	if len(imported) != len(items) {
		t.Fatalf("imported %d items, want %d", len(imported), len(items))
	}
	for i, want := range items {
		got := imported[i]
		got.ID = want.ID // import assigns fresh IDs
		if got != want {
			t.Errorf("item %d = %+v, want %+v", i, got, want)
		}
	}
}

func TestImportLenientDefaults(t *testing.T) {
	csv := "Name,Gewicht\nKrügerrand,1\n"

	items, err := ImportItems(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("imported %d items, want 1", len(items))
	}

	it := items[0]
	if it.WeightUnit != Ounce {
		t.Errorf("default unit = %q, want oz", it.WeightUnit)
	}
	if it.ItemType != Coin {
		t.Errorf("default type = %q, want Münze", it.ItemType)
	}
	if it.Metal != spot.Gold {
		t.Errorf("default metal = %q, want Gold", it.Metal)
	}
	if it.Purity != 999.9 {
		t.Errorf("default purity = %v, want 999.9", it.Purity)
	}
	if it.Quantity != 1 {
		t.Errorf("default quantity = %d, want 1", it.Quantity)
	}
	if it.PurchaseDate != Today() {
		t.Errorf("default purchase date = %v, want today", it.PurchaseDate)
	}
	if it.ID == "" {
		t.Error("import did not assign an ID")
	}
}

func TestImportGermanDecimals(t *testing.T) {
	csv := "Name,Gewicht,Einheit,Metall,Reinheit,Kaufpreis\nBarren,\"31,1\",g,Silber,\"999,9\",\"450,25\"\n"

	items, err := ImportItems(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ImportItems: %v", err)
	}
	it := items[0]
	if it.Weight != 31.1 || it.Purity != 999.9 || it.PurchasePrice != 450.25 {
		t.Errorf("parsed values = %v/%v/%v", it.Weight, it.Purity, it.PurchasePrice)
	}
}

func TestImportErrors(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"no header", ""},
		{"missing name column", "Gewicht\n1\n"},
		{"bad weight", "Name,Gewicht\nKrügerrand,schwer\n"},
		{"invalid after defaults", "Name,Gewicht,Anzahl\nKrügerrand,1,0\n"},
		{"bad metal", "Name,Gewicht,Metall\nMünze,1,Platin\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ImportItems(strings.NewReader(tt.csv)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

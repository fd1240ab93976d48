package muenztracker

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/Deibi93/muenztracker/spot"
)

// WeightUnit is the unit an item's weight is recorded in.
type WeightUnit string

const (
	Gram  WeightUnit = "g"
	Ounce WeightUnit = "oz"
)

// ParseWeightUnit parses a weight unit as found in user input or
// imported files.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch s {
	case "g", "G", "gramm", "Gramm":
		return Gram, nil
	case "oz", "Oz", "OZ", "unze", "Unze":
		return Ounce, nil
	}
	return "", fmt.Errorf("unknown weight unit %q (want g or oz)", s)
}

// ItemType distinguishes coins from bars. Informational only, it does
// not enter the valuation.
type ItemType string

const (
	Coin ItemType = "Münze"
	Bar  ItemType = "Barren"
)

// ParseItemType parses an item type as found in user input or imported
// files.
func ParseItemType(s string) (ItemType, error) {
	switch s {
	case "Münze", "münze", "Muenze", "muenze", "coin":
		return Coin, nil
	case "Barren", "barren", "bar":
		return Bar, nil
	}
	return "", fmt.Errorf("unknown item type %q (want Münze or Barren)", s)
}

// Item is a single position of the precious-metal inventory.
//
// Purity is the fineness in parts per thousand (999.9 = 99.99%).
// PurchasePrice is the total paid at acquisition, it is informational
// and never enters the current-value math.
type Item struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Weight        float64    `json:"weight"`
	WeightUnit    WeightUnit `json:"weightUnit"`
	ItemType      ItemType   `json:"itemType"`
	Metal         spot.Metal `json:"metal"`
	Purity        float64    `json:"purity"`
	PurchaseDate  Date       `json:"purchaseDate"`
	PurchasePrice float64    `json:"purchasePrice"`
	Quantity      int        `json:"quantity"`
	MintingDate   string     `json:"mintingDate,omitempty"`
	Notes         string     `json:"notes,omitempty"`
}

// Validate checks the invariants an item must satisfy before it enters
// the inventory.
func (it Item) Validate() error {
	if it.Name == "" {
		return fmt.Errorf("item has no name")
	}
	if it.Weight <= 0 {
		return fmt.Errorf("item %q: weight must be positive, got %v", it.Name, it.Weight)
	}
	if it.WeightUnit != Gram && it.WeightUnit != Ounce {
		return fmt.Errorf("item %q: unknown weight unit %q", it.Name, it.WeightUnit)
	}
	if it.Metal != spot.Gold && it.Metal != spot.Silver {
		return fmt.Errorf("item %q: unknown metal %q", it.Name, it.Metal)
	}
	if it.Purity <= 0 || it.Purity > 1000 {
		return fmt.Errorf("item %q: purity must be in (0,1000] ‰, got %v", it.Name, it.Purity)
	}
	if it.Quantity <= 0 {
		return fmt.Errorf("item %q: quantity must be positive, got %d", it.Name, it.Quantity)
	}
	if it.PurchaseDate.IsZero() {
		return fmt.Errorf("item %q: purchase date is missing", it.Name)
	}
	return nil
}

// newItemID returns a fresh random item identifier.
func newItemID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(err) // the system random source is broken
	}
	return hex.EncodeToString(b[:])
}

package muenztracker

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"slices"
)

// Inventory is the collection of all inventory items. It is kept sorted
// by purchase date, then by name, so listings and the persisted file are
// stable.
type Inventory struct {
	items []Item
}

// NewInventory returns an empty inventory.
func NewInventory() *Inventory { return &Inventory{} }

// Len returns the number of items.
func (inv *Inventory) Len() int { return len(inv.items) }

// Items returns a copy of all items in stable order.
func (inv *Inventory) Items() []Item { return slices.Clone(inv.items) }

// Get returns the item with the given id.
func (inv *Inventory) Get(id string) (Item, bool) {
	for _, it := range inv.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Add validates the item and appends it. An empty ID is assigned a fresh
// one; the assigned item is returned.
func (inv *Inventory) Add(it Item) (Item, error) {
	if it.ID == "" {
		it.ID = newItemID()
	}
	if err := it.Validate(); err != nil {
		return Item{}, err
	}
	if _, exists := inv.Get(it.ID); exists {
		return Item{}, fmt.Errorf("item id %q already exists", it.ID)
	}
	inv.items = append(inv.items, it)
	inv.sort()
	return it, nil
}

// Update replaces the item with the same ID.
func (inv *Inventory) Update(it Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	for i := range inv.items {
		if inv.items[i].ID == it.ID {
			inv.items[i] = it
			inv.sort()
			return nil
		}
	}
	return fmt.Errorf("no item with id %q", it.ID)
}

// Delete removes the item with the given id.
func (inv *Inventory) Delete(id string) error {
	for i := range inv.items {
		if inv.items[i].ID == id {
			inv.items = slices.Delete(inv.items, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("no item with id %q", id)
}

func (inv *Inventory) sort() {
	slices.SortStableFunc(inv.items, func(a, b Item) int {
		if a.PurchaseDate.Before(b.PurchaseDate) {
			return -1
		}
		if a.PurchaseDate.After(b.PurchaseDate) {
			return 1
		}
		if a.Name < b.Name {
			return -1
		}
		if a.Name > b.Name {
			return 1
		}
		return 0
	})
}

// DecodeInventory reads an inventory from a stream of JSONL data, one
// item per line.
func DecodeInventory(r io.Reader) (*Inventory, error) {
	inv := NewInventory()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var it Item
		if err := json.Unmarshal(line, &it); err != nil {
			return nil, fmt.Errorf("cannot parse inventory line %q: %w", string(line), err)
		}
		if _, err := inv.Add(it); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inv, nil
}

// EncodeInventory writes the inventory as JSONL, one item per line, in
// stable order.
func EncodeInventory(w io.Writer, inv *Inventory) error {
	for _, it := range inv.items {
		data, err := json.Marshal(it)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}

// LoadInventory reads the inventory from file. A missing file is an
// empty inventory, not an error.
func LoadInventory(file string) (*Inventory, error) {
	f, err := os.Open(file)
	if errors.Is(err, fs.ErrNotExist) {
		return NewInventory(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open inventory file %q: %w", file, err)
	}
	defer f.Close()

	inv, err := DecodeInventory(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode inventory file %q: %w", file, err)
	}
	return inv, nil
}

// SaveInventory writes the inventory to file.
func SaveInventory(file string, inv *Inventory) error {
	f, err := os.Create(file)
	if err != nil {
		return fmt.Errorf("could not create inventory file %q: %w", file, err)
	}
	defer f.Close()

	if err := EncodeInventory(f, inv); err != nil {
		return fmt.Errorf("could not encode inventory file %q: %w", file, err)
	}
	return f.Close()
}

// Package muenztracker tracks a physical precious-metal inventory and
// values it against spot prices.
//
// The package holds the domain model: inventory items with their weight,
// purity and purchase data, the inventory ledger persisted as JSONL, and
// the valuation engine that combines the inventory with the price series
// fetched by the spot package into a current total and a historical
// value curve.
package muenztracker

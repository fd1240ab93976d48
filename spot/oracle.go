package spot

import "context"

// Source is a provenance reference backing a current price claim.
type Source struct {
	URI   string `json:"uri"`
	Title string `json:"title"`
}

// Quote is a current spot price in EUR per troy ounce, with zero or more
// provenance references. Sources is empty when the price is a fallback.
type Quote struct {
	Price   float64  `json:"price"`
	Sources []Source `json:"sources,omitempty"`
}

// Oracle obtains spot prices for a metal. Implementations treat data
// quality failures of the backing service as expected, repairing or
// substituting the result instead of returning an error: the returned
// error is non-nil only for failures outside the oracle's own scope,
// such as a cancelled context.
type Oracle interface {
	// CurrentPrice returns the current spot price and its provenance.
	CurrentPrice(ctx context.Context, metal Metal) (Quote, error)

	// History returns the price history for the timeframe, sorted
	// chronologically, non-empty, with the last point pinned to current.
	History(ctx context.Context, metal Metal, tf Timeframe, current float64) (Series, error)
}

package silver

import "slices"

// Datasets gives access to the sales and price datasets, each loaded once per path.
type Datasets struct {
	sales  *Cache[[]SalesRecord]
	prices *Cache[[]PriceRecord]
}

// NewDatasets returns datasets cached under policy. A nil policy is Forever.
func NewDatasets(policy Policy) *Datasets {
	return &Datasets{
		sales:  NewCache(DecodeSales, policy),
		prices: NewCache(DecodePrices, policy),
	}
}

// Sales returns the sales dataset at path.
// The returned slice is a copy, the cached collection is never modified.
func (d *Datasets) Sales(path string) ([]SalesRecord, error) {
	s, err := d.sales.Get(path)
	return slices.Clone(s), err
}

// Prices returns the price dataset at path, sorted by date.
// The returned slice is a copy, the cached collection is never modified.
func (d *Datasets) Prices(path string) ([]PriceRecord, error) {
	p, err := d.prices.Get(path)
	return slices.Clone(p), err
}

// Invalidate forgets any dataset loaded from path.
func (d *Datasets) Invalidate(path string) {
	d.sales.Invalidate(path)
	d.prices.Invalidate(path)
}

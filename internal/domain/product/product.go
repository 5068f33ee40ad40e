// Package product models catalog records as they arrive from catalog dumps.
//
// Every nested field is optional. Accessors return zero values when a field
// is missing so that matchers never have to nil-check.
package product

// Category is one node of a root-to-leaf category path.
type Category struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Address holds the seller region.
type Address struct {
	StateName string `json:"state_name"`
}

// Shipping holds delivery flags.
type Shipping struct {
	FreeShipping bool `json:"free_shipping"`
}

// Product is a read-only catalog record.
type Product struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Price        *float64   `json:"price,omitempty"`
	Thumbnail    string     `json:"thumbnail,omitempty"`
	Address      *Address   `json:"address,omitempty"`
	Shipping     *Shipping  `json:"shipping,omitempty"`
	CategoryPath []Category `json:"category_path_from_root,omitempty"`
}

// StateName returns the seller region or "".
func (p *Product) StateName() string {
	if p == nil || p.Address == nil {
		return ""
	}
	return p.Address.StateName
}

// FreeShipping reports whether shipping is declared free.
func (p *Product) FreeShipping() bool {
	return p != nil && p.Shipping != nil && p.Shipping.FreeShipping
}

// CategoryNames returns the raw category names, root first.
func (p *Product) CategoryNames() []string {
	if p == nil {
		return nil
	}
	names := make([]string, len(p.CategoryPath))
	for i, c := range p.CategoryPath {
		names[i] = c.Name
	}
	return names
}

// PriceValue returns the price and whether it was declared.
func (p *Product) PriceValue() (float64, bool) {
	if p == nil || p.Price == nil {
		return 0, false
	}
	return *p.Price, true
}

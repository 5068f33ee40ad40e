package catalog

import (
	"fmt"
	"hash/fnv"
	"sort"

	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
	"github.com/kailas-cloud/vidriera/internal/domain/product"
	"github.com/kailas-cloud/vidriera/internal/domain/text"
)

const descriptionTemplate = "%s. Producto nuevo, ideal para su categoría. Publicación orientativa con características generales."

var exoticCars = []string{"bugatti", "pagani", "koenigsegg"}

// MergeOptions control what is rewritten on records that already exist.
type MergeOptions struct {
	// RefreshDescription regenerates the description when the title changes.
	RefreshDescription bool
	// RefreshCondition forces condition "new".
	RefreshCondition bool
}

// MergeStats counts what a merge changed.
type MergeStats struct {
	Total        int `json:"total"`
	Added        int `json:"added"`
	Removed      int `json:"removed"`
	Updated      int `json:"updated"`
	Images       int `json:"images"`
	Titles       int `json:"titles"`
	Prices       int `json:"prices"`
	Categories   int `json:"categories"`
	Descriptions int `json:"descriptions"`
}

// Merge reconciles the detail store with the primary catalog. Details whose
// id left the catalog are removed, base fields are synced from the catalog
// and new products get a fresh record. The output is ordered by numeric id.
func Merge(products []product.Product, existing []product.Detail, opts MergeOptions) ([]product.Detail, MergeStats) {
	var st MergeStats

	valid := make(map[string]struct{}, len(products))
	for i := range products {
		valid[products[i].ID] = struct{}{}
	}

	byID := make(map[string]*product.Detail, len(existing))
	var order []string
	for i := range existing {
		d := existing[i]
		if _, ok := valid[d.ID]; !ok {
			st.Removed++
			continue
		}
		if _, dup := byID[d.ID]; !dup {
			order = append(order, d.ID)
		}
		byID[d.ID] = &d
	}

	for i := range products {
		p := &products[i]
		prev, ok := byID[p.ID]
		if !ok {
			d := NewDetail(p)
			byID[p.ID] = &d
			order = append(order, p.ID)
			st.Added++
			continue
		}
		if syncDetail(prev, p, opts, &st) {
			st.Updated++
		}
	}

	out := make([]product.Detail, 0, len(order))
	for _, id := range order {
		out = append(out, *byID[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return IDNumber(out[i].ID) < IDNumber(out[j].ID)
	})
	st.Total = len(out)
	return out, st
}

func syncDetail(prev *product.Detail, p *product.Product, opts MergeOptions, st *MergeStats) bool {
	changed := false
	if p.Title != "" && p.Title != prev.Title {
		prev.Title = p.Title
		st.Titles++
		changed = true
		if opts.RefreshDescription {
			prev.Description = Description(p.Title)
			st.Descriptions++
		}
	}
	if p.Price != nil && (prev.Price == nil || *prev.Price != *p.Price) {
		v := *p.Price
		prev.Price = &v
		st.Prices++
		changed = true
	}
	if p.CategoryPath != nil && !sameCategories(p.CategoryPath, prev.CategoryPath) {
		prev.CategoryPath = append([]product.Category(nil), p.CategoryPath...)
		st.Categories++
		changed = true
	}
	if p.Thumbnail != "" && p.Thumbnail != prev.FullImage {
		prev.FullImage = p.Thumbnail
		st.Images++
		changed = true
	}
	if opts.RefreshCondition && prev.Condition != product.ConditionNew {
		prev.Condition = product.ConditionNew
		changed = true
	}
	return changed
}

func sameCategories(a, b []product.Category) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// NewDetail builds the detail record for a product seen for the first time.
func NewDetail(p *product.Product) product.Detail {
	d := product.Detail{
		ID:           p.ID,
		Title:        p.Title,
		Condition:    product.ConditionNew,
		SoldQuantity: SoldQuantity(p),
		FullImage:    p.Thumbnail,
		Description:  Description(p.Title),
		CategoryPath: append([]product.Category(nil), p.CategoryPath...),
	}
	if p.Price != nil {
		v := *p.Price
		d.Price = &v
	}
	return d
}

// Description renders the placeholder description for a title.
func Description(title string) string {
	return fmt.Sprintf(descriptionTemplate, title)
}

// SoldQuantity estimates a plausible sold count from the product's category
// and title. The value is derived from the id so reruns are stable.
func SoldQuantity(p *product.Product) int {
	cats := text.CategoryPath(p)
	t := normalize.Text(p.Title)
	pick := func(lo, hi int) int {
		h := fnv.New32a()
		_, _ = h.Write([]byte(p.ID))
		return lo + int(h.Sum32()%uint32(hi-lo+1))
	}

	switch {
	case contains(cats, "vehiculos"):
		if text.ContainsAny(t, exoticCars...) {
			return pick(0, 3)
		}
		return pick(1, 40)
	case text.ContainsAny(t, "neumatic"):
		return pick(150, 3000)
	case text.ContainsAny(t, "llanta", "rueda"):
		return pick(80, 1200)
	case text.ContainsAny(t, "luz", "faro"):
		return pick(120, 2000)
	case contains(cats, "alimentos"):
		return pick(300, 15000)
	case contains(cats, "ciclismo"):
		return pick(200, 6000)
	}
	return pick(50, 4000)
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

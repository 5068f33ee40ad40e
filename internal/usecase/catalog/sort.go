package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/product"
)

// NoCategoryKey sorts records without a category path last.
const NoCategoryKey = "zzzz_sin_categoria"

var digitsRe = regexp.MustCompile(`\d+`)

// CategoryKey joins the trimmed, lowercased category names with ">".
func CategoryKey(path []product.Category) string {
	parts := make([]string, 0, len(path))
	for _, c := range path {
		if n := strings.ToLower(strings.TrimSpace(c.Name)); n != "" {
			parts = append(parts, n)
		}
	}
	if len(parts) == 0 {
		return NoCategoryKey
	}
	return strings.Join(parts, ">")
}

// IDNumber returns the first run of digits in id. Ids without digits sort
// after every numeric id.
func IDNumber(id string) uint64 {
	m := digitsRe.FindString(id)
	if m == "" {
		return math.MaxUint64
	}
	n, err := strconv.ParseUint(m, 10, 64)
	if err != nil {
		return math.MaxUint64
	}
	return n
}

// recordID accepts ids encoded as JSON strings or numbers.
type recordID string

func (r *recordID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*r = recordID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("id must be a string or number: %w", err)
	}
	*r = recordID(n.String())
	return nil
}

type sortKey struct {
	ID           recordID           `json:"id"`
	CategoryPath []product.Category `json:"category_path_from_root"`
}

// SortDocument orders the records by category key, then numeric id. Records
// are moved as-is.
func SortDocument(doc *product.Document) error {
	type keyed struct {
		cat string
		id  uint64
		raw json.RawMessage
	}
	recs := make([]keyed, len(doc.Records))
	for i, raw := range doc.Records {
		var k sortKey
		if err := json.Unmarshal(raw, &k); err != nil {
			return fmt.Errorf("decode record %d: %w", i, err)
		}
		recs[i] = keyed{cat: CategoryKey(k.CategoryPath), id: IDNumber(string(k.ID)), raw: raw}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].cat != recs[j].cat {
			return recs[i].cat < recs[j].cat
		}
		return recs[i].id < recs[j].id
	})
	for i := range recs {
		doc.Records[i] = recs[i].raw
	}
	return nil
}

package search

import (
	"github.com/kailas-cloud/vidriera/internal/domain/category"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/attr"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/bag"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/beauty"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/camera"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/fridge"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/headphone"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/notebook"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/pc"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/phone"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/shirt"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/speaker"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/tablet"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/tshirt"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/tv"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/vehicle"
	"github.com/kailas-cloud/vidriera/internal/domain/extract/washer"
	"github.com/kailas-cloud/vidriera/internal/domain/intent"
	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
)

// Rule names for the entries of the dispatch table that are not extractors.
const (
	RuleBoxingBag = "boxing-bag"
	RuleHome      = "home"
	RuleRegistry  = "registry"
)

var (
	boxingBagPath = []string{"deportes y fitness", "boxeo y artes marciales", "bolsas de boxeo"}
	bagWords      = attr.NewSet("bolsa", "bolsas")
	boxingWords   = attr.NewSet("boxeo", "box", "boxing")
)

// rule is one entry of the priority table. match receives the normalized
// query and its tokens.
type rule struct {
	name  string
	match func(q string, toks []string) (intent.Intent, bool)
}

// Detector classifies a query by walking an ordered rule table; the first
// matching rule wins.
type Detector struct {
	rules []rule
}

// NewDetector builds the fixed priority table.
func NewDetector() *Detector {
	home := category.Home()
	registry := category.Default()

	var rules []rule
	add := func(e intent.Extractor) { rules = append(rules, extractorRule(e)) }

	add(tv.New())
	add(speaker.New())
	add(tablet.New())
	add(beauty.New())
	add(camera.New())
	add(notebook.New())
	add(pc.New())
	add(fridge.New())
	add(washer.New())
	add(phone.New())
	add(headphone.New())
	add(vehicle.NewMoto())
	add(vehicle.NewTruck())
	add(vehicle.NewCar())
	rules = append(rules, rule{name: RuleBoxingBag, match: matchBoxingBag})
	add(bag.New())
	add(tshirt.New())
	add(shirt.New())
	rules = append(rules,
		rule{name: RuleHome, match: func(_ string, toks []string) (intent.Intent, bool) {
			if boxingWords.Any(toks) {
				return intent.Intent{}, false
			}
			return registryIntent(home, toks)
		}},
		rule{name: RuleRegistry, match: func(_ string, toks []string) (intent.Intent, bool) {
			return registryIntent(registry, toks)
		}},
	)
	return &Detector{rules: rules}
}

func extractorRule(e intent.Extractor) rule {
	return rule{
		name: string(e.Kind()),
		match: func(q string, _ []string) (intent.Intent, bool) {
			if !e.IsQuery(q) {
				return intent.Intent{}, false
			}
			return intent.FromExtractor(e, e.Parse(q)), true
		},
	}
}

func matchBoxingBag(_ string, toks []string) (intent.Intent, bool) {
	if bagWords.Any(toks) && boxingWords.Any(toks) {
		return intent.FromCategory(append([]string(nil), boxingBagPath...)), true
	}
	return intent.Intent{}, false
}

func registryIntent(r *category.Registry, toks []string) (intent.Intent, bool) {
	path, ok := r.Lookup(toks)
	if !ok {
		return intent.Intent{}, false
	}
	return intent.FromCategory(path), true
}

// Detect returns the intent of the first matching rule, or the generic
// intent. A blank query is always generic.
func (d *Detector) Detect(query string) intent.Intent {
	toks := normalize.Tokens(query)
	if len(toks) == 0 {
		return intent.GenericIntent()
	}
	q := normalize.Text(query)
	for _, r := range d.rules {
		if in, ok := r.match(q, toks); ok {
			return in
		}
	}
	return intent.GenericIntent()
}

// Order returns the rule names in priority order.
func (d *Detector) Order() []string {
	out := make([]string, len(d.rules))
	for i, r := range d.rules {
		out[i] = r.name
	}
	return out
}

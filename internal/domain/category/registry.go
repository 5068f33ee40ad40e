package category

import (
	"strings"

	"github.com/kailas-cloud/vidriera/internal/domain/normalize"
)

// Rule maps a keyword set to a category path.
type Rule struct {
	Keywords []string
	Path     []string
}

// Registry is an ordered rule list; the first rule whose keywords intersect
// the query wins.
type Registry struct {
	rules []compiledRule
}

type compiledRule struct {
	words   map[string]struct{}
	phrases []string
	path    []string
}

// NewRegistry normalizes the keywords of every rule. Keywords containing a
// space are matched as phrases against the joined query.
func NewRegistry(rules []Rule) *Registry {
	r := &Registry{rules: make([]compiledRule, 0, len(rules))}
	for _, rule := range rules {
		cr := compiledRule{words: make(map[string]struct{}, len(rule.Keywords))}
		for _, kw := range rule.Keywords {
			kw = strings.Join(normalize.Tokens(kw), " ")
			if kw == "" {
				continue
			}
			if strings.Contains(kw, " ") {
				cr.phrases = append(cr.phrases, kw)
				continue
			}
			cr.words[kw] = struct{}{}
		}
		for _, seg := range rule.Path {
			cr.path = append(cr.path, normalize.Text(seg))
		}
		r.rules = append(r.rules, cr)
	}
	return r
}

// Lookup returns the path of the first rule matching the normalized tokens.
func (r *Registry) Lookup(tokens []string) ([]string, bool) {
	joined := " " + strings.Join(tokens, " ") + " "
	for _, rule := range r.rules {
		if rule.matches(tokens, joined) {
			out := make([]string, len(rule.path))
			copy(out, rule.path)
			return out, true
		}
	}
	return nil, false
}

// Len returns the number of rules.
func (r *Registry) Len() int { return len(r.rules) }

func (c compiledRule) matches(tokens []string, joined string) bool {
	for _, t := range tokens {
		if _, ok := c.words[t]; ok {
			return true
		}
	}
	for _, ph := range c.phrases {
		if strings.Contains(joined, " "+ph+" ") {
			return true
		}
	}
	return false
}

// Keyword registry used when no domain extractor claims a query.
var defaultRules = []Rule{
	// vehicles
	{Keywords: []string{"auto", "autos", "pickup"}, Path: []string{"vehiculos", "autos"}},
	{Keywords: []string{"moto", "motos"}, Path: []string{"vehiculos", "motos"}},
	{Keywords: []string{"camioneta", "camionetas", "pickup", "pickups"}, Path: []string{"vehiculos", "camionetas"}},
	{Keywords: []string{"aceite", "aceites"}, Path: []string{"vehiculos", "aceites"}},
	{Keywords: []string{"escobilla", "escobillas"}, Path: []string{"vehiculos", "escobillas"}},

	// supermarket
	{
		Keywords: []string{"carne", "carnes", "asado", "vacuna", "res", "pollo", "cerdo", "cordero"},
		Path:     []string{"supermercado", "carnes"},
	},
	{Keywords: []string{"pescado", "pescados"}, Path: []string{"supermercado", "pescados", "pescado"}},
	{Keywords: []string{"fiambre", "fiambres"}, Path: []string{"supermercado", "fiambres"}},
	{Keywords: []string{"embutido", "embutidos"}, Path: []string{"supermercado", "fiambres", "embutidos"}},
	{Keywords: []string{"queso", "quesos"}, Path: []string{"supermercado", "fiambres", "quesos"}},
	{Keywords: []string{"salame", "salames"}, Path: []string{"supermercado", "fiambres", "salames"}},

	// technology
	{
		Keywords: []string{
			"celular", "celulares", "telefono", "telefonos",
			"smartphone", "smartphones", "iphone", "android",
		},
		Path: []string{"tecnologia", "celulares"},
	},
	{
		Keywords: []string{"auricular", "auriculares", "headphones", "buds", "auris"},
		Path:     []string{"tecnologia", "auriculares"},
	},
	{
		Keywords: []string{"teles", "televisores", "tvs", "smartTv", "smartv", "smarttv", "tele"},
		Path:     []string{"tecnologia", "televisores"},
	},
	{Keywords: []string{"parlante", "parlantes", "speaker", "speakers"}, Path: []string{"tecnologia", "parlantes"}},
	{
		Keywords: []string{"smartwatch", "smartwatches", "reloj", "relojes"},
		Path:     []string{"tecnologia", "smartwatches"},
	},
	{Keywords: []string{"notebook", "notebooks", "laptop", "laptops"}, Path: []string{"tecnologia", "notebooks"}},
	{Keywords: []string{"tablet", "tablets"}, Path: []string{"tecnologia", "tablets"}},
	{Keywords: []string{"pc", "pcs", "computadora de escritorio"}, Path: []string{"tecnologia", "pcs"}},
	{Keywords: []string{"camara", "camaras", "camera", "cameras"}, Path: []string{"tecnologia", "camaras"}},
	{
		Keywords: []string{"seguridad", "security", "cctv", "vigilancia"},
		Path:     []string{"tecnologia", "camaras de seguridad"},
	},

	// home
	{Keywords: []string{"limpieza"}, Path: []string{"hogar", "limpieza"}},
	{Keywords: []string{"utensilio", "utensilios"}, Path: []string{"hogar", "utensilios"}},
	{Keywords: []string{"cocina"}, Path: []string{"hogar", "cocina"}},
	{Keywords: []string{"insumo", "insumos"}, Path: []string{"hogar", "insumos"}},
	{Keywords: []string{"parrilla", "parrillas"}, Path: []string{"hogar", "parrillas"}},
	{Keywords: []string{"mascota", "mascotas"}, Path: []string{"hogar", "mascotas"}},
	{
		Keywords: []string{
			"living", "sillon", "sillones", "sofa", "sofas", "couch", "couches",
			"mesa", "mesa ratonera", "ratona",
		},
		Path: []string{"hogar", "living"},
	},
	{Keywords: []string{"cama", "camas", "colchon", "colchones"}, Path: []string{"hogar", "dormitorio", "camas y colchones"}},

	// beauty
	{
		Keywords: []string{"maquillaje", "labial", "labiales", "mascara", "pestanas", "base"},
		Path:     []string{"belleza", "maquillaje"},
	},
	{Keywords: []string{"accesorio", "accesorios"}, Path: []string{"belleza", "accesorios"}},
	{Keywords: []string{"perfume", "desodorante", "shampoo", "crema"}, Path: []string{"belleza", "cuidado personal"}},

	// clothing
	{
		Keywords: []string{
			"ropa", "remera", "remeras", "camisa", "camisas", "pantalon", "pantalones",
			"zapatilla", "zapatillas", "buzo", "buzos", "campera", "camperas", "vestido", "vestidos",
		},
		Path: []string{"ropa"},
	},

	// sports and fitness
	{
		Keywords: []string{"bicicleta", "bicicletas", "fija", "spinning"},
		Path:     []string{"deportes y fitness", "gimnasio en casa", "bicicletas fijas"},
	},
	{
		Keywords: []string{"cinta", "correr", "trotadora"},
		Path:     []string{"deportes y fitness", "gimnasio en casa", "cintas de correr"},
	},
	{Keywords: []string{"boxeo", "box"}, Path: []string{"deportes y fitness", "boxeo y artes marciales"}},
	{
		Keywords: []string{"proteccion", "protecciones", "casco", "canillera"},
		Path:     []string{"deportes y fitness", "boxeo y artes marciales", "protecciones"},
	},

	// tools
	{Keywords: []string{"herramienta", "herramientas"}, Path: []string{"herramientas"}},
	{
		Keywords: []string{"taladro", "amoladora", "atornillador", "sierra", "caladora", "lijadora"},
		Path:     []string{"herramientas", "electricas"},
	},
	{
		Keywords: []string{"podadora", "bordeadora", "motosierra", "cortadora", "pasto"},
		Path:     []string{"herramientas", "jardineria"},
	},
}

// Household rules in priority order: pets beat beds, which beat grills.
var homeRules = []Rule{
	{Keywords: []string{"perro", "perros", "gato", "gatos", "mascota", "mascotas", "cucha", "cuchita"}, Path: []string{"hogar", "mascotas"}},
	{Keywords: []string{"cama", "camas", "colchon", "colchones", "sommier", "somier"}, Path: []string{"hogar", "dormitorio", "camas y colchones"}},
	{Keywords: []string{"parrilla", "parrillas", "asador", "brasero"}, Path: []string{"hogar", "parrillas"}},
	{Keywords: []string{"sillon", "sillones", "sofa", "couch", "living"}, Path: []string{"hogar", "living"}},
	{Keywords: []string{"lavandina", "detergente", "desinfectante", "limpieza", "escoba", "trapo"}, Path: []string{"hogar", "limpieza"}},
	{Keywords: []string{"consorcio", "basura", "residuo", "residuos", "consorciales", "consorcial"}, Path: []string{"hogar", "insumos"}},
}

// Default returns the general keyword registry.
func Default() *Registry { return NewRegistry(defaultRules) }

// Home returns the household registry.
func Home() *Registry { return NewRegistry(homeRules) }

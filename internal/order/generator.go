package order

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/DMailloux03/DominosMemoryGame/internal/catalog"
)

// Generator produces one statistically varied but data-consistent order
// per call. The catalog is injected so tests can substitute data; the
// random source is injected so tests can seed it. *rand.Rand is not
// safe for concurrent use, so Generate serializes draws behind mu; one
// Generator can be shared across request handlers.
type Generator struct {
	catalog *catalog.Catalog
	mu      sync.Mutex
	rng     *rand.Rand
}

// New builds a generator and verifies up front that every crust/size
// combination can resolve a sauce. A miss there means the reference
// data is broken, which is not recoverable at order time.
func New(cat *catalog.Catalog) (*Generator, error) {
	return NewWithRand(cat, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewWithRand is New with a caller-supplied random source.
func NewWithRand(cat *catalog.Catalog, rng *rand.Rand) (*Generator, error) {
	g := &Generator{catalog: cat, rng: rng}

	for _, option := range CrustOptions {
		for _, size := range option.Sizes {
			if _, err := g.chooseSauce(option.DataCrust, size); err != nil {
				return nil, fmt.Errorf("sauce coverage check: %w", err)
			}
		}
	}

	if len(cat.PastaRecipes()) == 0 {
		return nil, fmt.Errorf("no pasta recipes in catalog")
	}

	return g, nil
}

// Generate builds the next order. Roughly one in four orders is a pasta
// dish when special requests are enabled; pizza otherwise.
func (g *Generator) Generate(specialRequests bool) (Order, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if specialRequests && g.rng.Intn(4) == 0 {
		return g.generatePasta(), nil
	}
	return g.generatePizza(specialRequests)
}

func (g *Generator) generatePizza(specialRequests bool) (Order, error) {
	option := CrustOptions[g.rng.Intn(len(CrustOptions))]
	size := option.Sizes[g.rng.Intn(len(option.Sizes))]

	toppingCount := g.rng.Intn(5)
	toppings := g.sampleToppings(toppingCount)
	toppingLabel := catalog.ToppingLabelForCount(toppingCount)

	sauce, err := g.chooseSauce(option.DataCrust, size)
	if err != nil {
		return Order{}, err
	}

	cheeses := g.cheeseRecords(option.DataCrust, size, toppingLabel, toppingCount)
	weights := g.toppingWeights(toppings, toppingCount, size)

	modifier := StandardModifier()
	if specialRequests {
		modifier = pickModifier(g.rng, sauce, cheeses)
	}

	return Order{
		Kind: KindPizza,
		Pizza: &PizzaOrder{
			Crust:          option.Label,
			DataCrust:      option.DataCrust,
			Size:           size,
			Toppings:       toppings,
			ToppingLabel:   toppingLabel,
			Sauce:          sauce,
			Cheeses:        cheeses,
			ToppingWeights: weights,
			Modifier:       modifier,
		},
	}, nil
}

func (g *Generator) generatePasta() Order {
	recipes := g.catalog.PastaRecipes()
	recipe := recipes[g.rng.Intn(len(recipes))]

	return Order{
		Kind: KindPasta,
		Pasta: &PastaOrder{
			Recipe:      recipe.Name,
			Size:        recipe.Size,
			Ingredients: recipe.Ingredients,
		},
	}
}

// sampleToppings draws without replacement from a copy of the library.
// The shared library constant is never mutated.
func (g *Generator) sampleToppings(count int) []string {
	if count <= 0 {
		return nil
	}

	pool := make([]string, len(catalog.ToppingLibrary))
	copy(pool, catalog.ToppingLibrary)

	out := make([]string, 0, count)
	for i := 0; i < count && len(pool) > 0; i++ {
		idx := g.rng.Intn(len(pool))
		out = append(out, pool[idx])
		pool = append(pool[:idx], pool[idx+1:]...)
	}
	return out
}

// chooseSauce finds an exact (crust, size) sauce, falling back to the
// Hand Tossed / Thin chart. The fallback missing too means the dataset
// is broken.
func (g *Generator) chooseSauce(crust, size string) (catalog.PortionRecord, error) {
	exact := g.catalog.Find(func(r catalog.PortionRecord) bool {
		return r.Category == catalog.CategorySauce && r.Crust == crust && r.Size == size
	})
	if len(exact) > 0 {
		return exact[g.rng.Intn(len(exact))], nil
	}

	fallback := g.catalog.Find(func(r catalog.PortionRecord) bool {
		return r.Category == catalog.CategorySauce &&
			r.Crust == catalog.CrustHandTossedThin &&
			r.Size == size
	})
	if len(fallback) == 0 {
		return catalog.PortionRecord{}, fmt.Errorf("no sauce data for %s %s", crust, size)
	}
	return fallback[g.rng.Intn(len(fallback))], nil
}

// cheeseRecords applies the per-crust cheese policy. A missing record
// is silently omitted; the order just has fewer fields.
func (g *Generator) cheeseRecords(crust, size, toppingLabel string, toppingCount int) []catalog.PortionRecord {
	hasToppings := toppingCount > 0

	pizzaCheese := func(layer catalog.Layer, label string) (catalog.PortionRecord, bool) {
		return g.catalog.FindOne(func(r catalog.PortionRecord) bool {
			return r.Crust == crust &&
				r.Size == size &&
				r.CheeseKind == catalog.CheesePizza &&
				r.Layer == layer &&
				r.ToppingLabel == label
		})
	}

	appendIf := func(records []catalog.PortionRecord, record catalog.PortionRecord, ok bool) []catalog.PortionRecord {
		if ok {
			return append(records, record)
		}
		return records
	}

	switch crust {
	case catalog.CrustHandTossedThin, catalog.CrustGlutenFree, catalog.CrustPan:
		label := ""
		if hasToppings {
			label = toppingLabel
		}

		var records []catalog.PortionRecord
		bottom, ok := pizzaCheese(catalog.LayerBottom, label)
		records = appendIf(records, bottom, ok)
		top, ok := pizzaCheese(catalog.LayerTop, label)
		records = appendIf(records, top, ok)

		if crust == catalog.CrustPan {
			// Pan always carries the shredded provolone layer.
			provolone, ok := g.catalog.FindOne(func(r catalog.PortionRecord) bool {
				return r.Crust == catalog.CrustPan && r.CheeseKind == catalog.CheeseProvolone
			})
			records = appendIf(records, provolone, ok)
		}
		return records

	case catalog.CrustNewYork:
		// New York has a single standardized portion per cheese, no
		// bottom/top split.
		return g.catalog.Find(func(r catalog.PortionRecord) bool {
			return r.Crust == catalog.CrustNewYork &&
				r.Size == size &&
				r.Category == catalog.CategoryCheese
		})
	}

	return nil
}

// toppingWeights resolves each chosen topping against the chart. A gap
// in chart coverage drops the topping from the order, it never fails
// the whole round.
func (g *Generator) toppingWeights(toppings []string, count int, size string) []ToppingWeight {
	if len(toppings) == 0 {
		return nil
	}

	band := catalog.BandForCount(count)
	chart := g.catalog.Chart()

	out := make([]ToppingWeight, 0, len(toppings))
	for _, topping := range toppings {
		weight, err := chart.Weight(topping, band, size)
		if err != nil {
			log.Printf("[ORDER] dropping topping: %v", err)
			continue
		}
		out = append(out, ToppingWeight{Topping: topping, Band: band, Amount: weight})
	}
	return out
}

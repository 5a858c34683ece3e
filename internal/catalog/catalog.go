package catalog

import (
	"fmt"
	"sort"
)

// Catalog holds the fully expanded portion data. Built once at startup,
// read-only afterwards, injected into whatever needs lookups.
type Catalog struct {
	records []PortionRecord
	recipes []PastaRecipe
	chart   *ToppingChart
}

// New expands the declarative build rules into the full record set.
// Any inconsistency in the reference data is returned as an error so
// the caller can refuse to start.
func New() (*Catalog, error) {
	var records []PortionRecord

	for _, spec := range basePortionSpecs {
		built, err := BuildPortionSet(spec)
		if err != nil {
			return nil, err
		}

		expanded := expandGlutenFree(built)

		if spec.ToppingBanded {
			expanded = expandToppingBands(expanded)
		}

		records = append(records, expanded...)
	}

	recipes, err := buildPastaRecipes()
	if err != nil {
		return nil, err
	}
	for _, recipe := range recipes {
		records = append(records, recipe.Ingredients...)
	}

	if err := checkUniqueIDs(records); err != nil {
		return nil, err
	}

	return &Catalog{
		records: records,
		recipes: recipes,
		chart:   newToppingChart(),
	}, nil
}

// expandGlutenFree duplicates every Hand Tossed / Thin 10" record with
// the crust rewritten, since gluten free shares those weights.
func expandGlutenFree(records []PortionRecord) []PortionRecord {
	out := make([]PortionRecord, 0, len(records))
	for _, record := range records {
		out = append(out, record)

		if record.Crust != CrustHandTossedThin || record.Size != `10"` {
			continue
		}

		twin := record
		twin.ID = record.ID + "-gluten-free"
		twin.Crust = CrustGlutenFree
		glutenNote := `Gluten free crust only comes as a 10" pizza.`
		if record.Note != "" {
			twin.Note = record.Note + " " + glutenNote
		} else {
			twin.Note = glutenNote
		}
		out = append(out, twin)
	}
	return out
}

// expandToppingBands duplicates a banded cheese record once per
// topping-count label.
func expandToppingBands(records []PortionRecord) []PortionRecord {
	out := make([]PortionRecord, 0, len(records)*len(ToppingLabels))
	for _, record := range records {
		for _, label := range ToppingLabels {
			banded := record
			banded.ID = record.ID + "-" + Slugify(label)
			banded.ToppingLabel = label
			if banded.Note == "" {
				banded.Note = "Cheese never counts as a topping here."
			}
			out = append(out, banded)
		}
	}
	return out
}

func buildPastaRecipes() ([]PastaRecipe, error) {
	names := make([]string, 0, len(pastaRecipeSpecs))
	for name := range pastaRecipeSpecs {
		names = append(names, name)
	}
	sort.Strings(names)

	recipes := make([]PastaRecipe, 0, len(names))
	for _, name := range names {
		var ingredients []PortionRecord
		for _, spec := range pastaRecipeSpecs[name] {
			built, err := BuildPortionSet(spec)
			if err != nil {
				return nil, err
			}
			ingredients = append(ingredients, built...)
		}
		recipes = append(recipes, PastaRecipe{
			Name:        name,
			Size:        PastaSize,
			Ingredients: ingredients,
		})
	}
	return recipes, nil
}

func checkUniqueIDs(records []PortionRecord) error {
	seen := make(map[string]bool, len(records))
	for _, record := range records {
		if seen[record.ID] {
			return fmt.Errorf("duplicate portion record id: %s", record.ID)
		}
		seen[record.ID] = true
	}
	return nil
}

// Find returns every record the predicate accepts. The catalog is small
// enough that a linear scan is all the index we need.
func (c *Catalog) Find(predicate func(PortionRecord) bool) []PortionRecord {
	var out []PortionRecord
	for _, record := range c.records {
		if predicate(record) {
			out = append(out, record)
		}
	}
	return out
}

// FindOne returns the first matching record.
func (c *Catalog) FindOne(predicate func(PortionRecord) bool) (PortionRecord, bool) {
	for _, record := range c.records {
		if predicate(record) {
			return record, true
		}
	}
	return PortionRecord{}, false
}

// Records returns the full expanded set.
func (c *Catalog) Records() []PortionRecord {
	return c.records
}

// PastaRecipes returns every fixed pasta dish.
func (c *Catalog) PastaRecipes() []PastaRecipe {
	return c.recipes
}

// Chart returns the topping weight chart.
func (c *Catalog) Chart() *ToppingChart {
	return c.chart
}

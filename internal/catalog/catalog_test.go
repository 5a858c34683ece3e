package catalog

import (
	"strings"
	"testing"
)

func buildTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	cat, err := New()
	if err != nil {
		t.Fatalf("catalog build failed: %v", err)
	}
	return cat
}

func TestBuildPortionSetMismatchedLengths(t *testing.T) {
	_, err := BuildPortionSet(PortionSpec{
		Category: CategorySauce,
		Crust:    CrustPan,
		Item:     "Pan Sauce",
		Sizes:    []string{`12"`, `14"`},
		Amounts:  []float64{3.0},
	})
	if err == nil {
		t.Fatalf("expected error for mismatched sizes/amounts")
	}
}

func TestRecordIDsAreStableAndUnique(t *testing.T) {
	cat := buildTestCatalog(t)
	again := buildTestCatalog(t)

	seen := make(map[string]bool)
	for _, record := range cat.Records() {
		if record.ID == "" {
			t.Fatalf("record %q has empty id", record.Item)
		}
		if seen[record.ID] {
			t.Fatalf("duplicate record id: %s", record.ID)
		}
		seen[record.ID] = true
	}

	// Same rules, same ids, every run.
	for i, record := range cat.Records() {
		if again.Records()[i].ID != record.ID {
			t.Fatalf("id not stable across builds: %s vs %s", record.ID, again.Records()[i].ID)
		}
	}
}

func TestSlugifyReplacesInchMarks(t *testing.T) {
	got := Slugify(`Sauce-Pizza Sauce-standard-10"-Hand Tossed / Thin`)
	if strings.Contains(got, `"`) {
		t.Fatalf("slug still contains inch mark: %s", got)
	}
	if got != "sauce-pizza-sauce-standard-10inch-hand-tossed-thin" {
		t.Fatalf("unexpected slug: %s", got)
	}
}

func TestGlutenFreeExpansion(t *testing.T) {
	cat := buildTestCatalog(t)

	tenInch := cat.Find(func(r PortionRecord) bool {
		return r.Crust == CrustHandTossedThin && r.Size == `10"`
	})
	if len(tenInch) == 0 {
		t.Fatalf("no 10\" hand tossed records in catalog")
	}

	for _, record := range tenInch {
		twins := cat.Find(func(r PortionRecord) bool {
			return r.Crust == CrustGlutenFree &&
				r.Item == record.Item &&
				r.Detail == record.Detail &&
				r.ToppingLabel == record.ToppingLabel
		})
		if len(twins) != 1 {
			t.Fatalf("expected 1 gluten-free twin for %s, got %d", record.ID, len(twins))
		}
		if twins[0].Amount != record.Amount || twins[0].Unit != record.Unit {
			t.Fatalf("gluten-free twin of %s changed amount or unit", record.ID)
		}
	}

	// Gluten free only exists at 10".
	other := cat.Find(func(r PortionRecord) bool {
		return r.Crust == CrustGlutenFree && r.Size != `10"`
	})
	if len(other) != 0 {
		t.Fatalf("gluten-free records at sizes other than 10\": %d", len(other))
	}
}

func TestToppingBandExpansion(t *testing.T) {
	cat := buildTestCatalog(t)

	// Every banded cheese record comes in exactly the four labels.
	type key struct {
		crust string
		size  string
		layer Layer
	}
	byKey := make(map[key]map[string]bool)

	for _, record := range cat.Records() {
		if record.CheeseKind != CheesePizza || record.ToppingLabel == "" {
			continue
		}
		k := key{record.Crust, record.Size, record.Layer}
		if byKey[k] == nil {
			byKey[k] = make(map[string]bool)
		}
		byKey[k][record.ToppingLabel] = true
	}

	if len(byKey) == 0 {
		t.Fatalf("no banded cheese records in catalog")
	}

	for k, labels := range byKey {
		if len(labels) != len(ToppingLabels) {
			t.Fatalf("expected %d band variants for %+v, got %d", len(ToppingLabels), k, len(labels))
		}
		for _, label := range ToppingLabels {
			if !labels[label] {
				t.Fatalf("missing band %q for %+v", label, k)
			}
		}
	}
}

func TestPanScenarioRecords(t *testing.T) {
	cat := buildTestCatalog(t)

	sauce, ok := cat.FindOne(func(r PortionRecord) bool {
		return r.Category == CategorySauce && r.Crust == CrustPan && r.Size == `12"`
	})
	if !ok || sauce.Amount != 3.0 {
		t.Fatalf("expected pan sauce at 3.0 oz, got %+v", sauce)
	}

	bottom, ok := cat.FindOne(func(r PortionRecord) bool {
		return r.Crust == CrustPan && r.CheeseKind == CheesePizza &&
			r.Layer == LayerBottom && r.ToppingLabel == ""
	})
	if !ok || bottom.Amount != 4.5 {
		t.Fatalf("expected just-cheese bottom at 4.5 oz, got %+v", bottom)
	}

	top, ok := cat.FindOne(func(r PortionRecord) bool {
		return r.Crust == CrustPan && r.CheeseKind == CheesePizza &&
			r.Layer == LayerTop && r.ToppingLabel == ""
	})
	if !ok || top.Amount != 3.0 {
		t.Fatalf("expected just-cheese top at 3.0 oz, got %+v", top)
	}

	provolone, ok := cat.FindOne(func(r PortionRecord) bool {
		return r.Crust == CrustPan && r.CheeseKind == CheeseProvolone
	})
	if !ok || provolone.Amount != 4.0 {
		t.Fatalf("expected shredded provolone at 4.0 oz, got %+v", provolone)
	}
}

func TestPastaRecipesAreFixed(t *testing.T) {
	cat := buildTestCatalog(t)

	recipes := cat.PastaRecipes()
	if len(recipes) == 0 {
		t.Fatalf("no pasta recipes")
	}

	for _, recipe := range recipes {
		if recipe.Size != PastaSize {
			t.Fatalf("recipe %s has size %q, want %q", recipe.Name, recipe.Size, PastaSize)
		}
		if len(recipe.Ingredients) == 0 {
			t.Fatalf("recipe %s has no ingredients", recipe.Name)
		}
		for _, ingredient := range recipe.Ingredients {
			if ingredient.Category != CategoryPasta {
				t.Fatalf("recipe %s ingredient %s has category %s", recipe.Name, ingredient.Item, ingredient.Category)
			}
		}
	}
}

func TestFormatAmount(t *testing.T) {
	cases := []struct {
		amount float64
		want   string
	}{
		{3.0, "3"},
		{4.5, "4.5"},
		{0.75, "0.8"},
		{10.5, "10.5"},
		{20, "20"},
	}

	for _, tc := range cases {
		if got := FormatAmount(tc.amount); got != tc.want {
			t.Fatalf("FormatAmount(%v) = %q, want %q", tc.amount, got, tc.want)
		}
	}
}

func TestReferenceSheetCoversCatalog(t *testing.T) {
	cat := buildTestCatalog(t)

	rows := cat.ReferenceSheet()
	if len(rows) == 0 {
		t.Fatalf("empty reference sheet")
	}

	var total int
	for _, row := range rows {
		if row.Label == "" || row.Crust == "" {
			t.Fatalf("reference row missing label or crust: %+v", row)
		}
		total += len(row.Values)
	}

	if total != len(cat.Records()) {
		t.Fatalf("reference sheet covers %d records, catalog has %d", total, len(cat.Records()))
	}
}

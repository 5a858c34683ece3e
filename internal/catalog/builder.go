package catalog

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PortionSpec is one declarative build rule: a run of sizes and the
// matching amounts for a single item on a single crust.
type PortionSpec struct {
	Category   Category
	Crust      string
	Item       string
	Detail     string
	Sizes      []string
	Amounts    []float64
	Note       string
	Unit       string
	Layer      Layer
	CheeseKind CheeseKind

	// ToppingBanded rules expand once per topping-count label, since the
	// correct cheese weight depends on how many toppings the pie carries.
	ToppingBanded bool
}

var slugPattern = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Slugify derives the stable record identifier. Inch marks become the
// word "inch" so sizes stay distinguishable after cleanup.
func Slugify(value string) string {
	out := strings.ReplaceAll(value, `"`, "inch")
	out = slugPattern.ReplaceAllString(out, "-")
	out = strings.Trim(out, "-")
	return strings.ToLower(out)
}

// BuildPortionSet expands one spec into one record per size. A length
// mismatch between sizes and amounts means the reference data itself is
// broken, which is fatal at startup.
func BuildPortionSet(spec PortionSpec) ([]PortionRecord, error) {
	if len(spec.Amounts) != len(spec.Sizes) {
		return nil, fmt.Errorf(
			"portion data mismatch for %s: %d sizes, %d amounts",
			spec.Item, len(spec.Sizes), len(spec.Amounts),
		)
	}

	unit := spec.Unit
	if unit == "" {
		unit = "oz"
	}

	detail := spec.Detail
	if detail == "" {
		detail = "standard"
	}

	records := make([]PortionRecord, 0, len(spec.Sizes))
	for i, size := range spec.Sizes {
		records = append(records, PortionRecord{
			ID: Slugify(fmt.Sprintf(
				"%s-%s-%s-%s-%s",
				spec.Category, spec.Item, detail, size, spec.Crust,
			)),
			Category:   spec.Category,
			Crust:      spec.Crust,
			Item:       spec.Item,
			Detail:     spec.Detail,
			Size:       size,
			Amount:     spec.Amounts[i],
			Unit:       unit,
			Note:       spec.Note,
			Layer:      spec.Layer,
			CheeseKind: spec.CheeseKind,
		})
	}

	return records, nil
}

// FormatAmount renders a weight the way the charts print it: whole
// numbers bare, everything else with one decimal place.
func FormatAmount(amount float64) string {
	if amount == math.Trunc(amount) {
		return strconv.FormatFloat(amount, 'f', 0, 64)
	}
	return strconv.FormatFloat(amount, 'f', 1, 64)
}

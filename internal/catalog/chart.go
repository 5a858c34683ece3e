package catalog

import "fmt"

// ToppingBand is the count band the topping chart is keyed by.
type ToppingBand string

const (
	BandSingle   ToppingBand = "single"
	BandTwoThree ToppingBand = "twoThree"
	BandFourPlus ToppingBand = "fourPlus"
)

// BandForCount maps a topping count onto its chart band.
func BandForCount(count int) ToppingBand {
	switch {
	case count <= 1:
		return BandSingle
	case count <= 3:
		return BandTwoThree
	default:
		return BandFourPlus
	}
}

// ToppingLabelForCount derives the display label for a topping count.
// Zero toppings has no label.
func ToppingLabelForCount(count int) string {
	switch {
	case count <= 0:
		return ""
	case count == 1:
		return "1 topping"
	case count == 2:
		return "2 toppings"
	case count == 3:
		return "3 toppings"
	default:
		return "4+ toppings"
	}
}

// ToppingCategory groups toppings that share one weight table.
type ToppingCategory string

const (
	ToppingMeat      ToppingCategory = "meat"
	ToppingVegetable ToppingCategory = "vegetable"
	ToppingPremium   ToppingCategory = "premium"
)

// ToppingChart resolves a (topping, band, size) to its weight in ounces.
// More toppings per pie means a lighter hand on each one.
type ToppingChart struct {
	categories map[string]ToppingCategory
	weights    map[ToppingCategory]map[ToppingBand]map[string]float64
}

func newToppingChart() *ToppingChart {
	return &ToppingChart{
		categories: map[string]ToppingCategory{
			"Pepperoni":          ToppingMeat,
			"Sausage":            ToppingMeat,
			"Beef":               ToppingMeat,
			"Ham":                ToppingMeat,
			"Bacon":              ToppingMeat,
			"Mushroom":           ToppingVegetable,
			"Onion":              ToppingVegetable,
			"Green Pepper":       ToppingVegetable,
			"Black Olive":        ToppingVegetable,
			"Spinach":            ToppingVegetable,
			"Tomato":             ToppingVegetable,
			"Jalapeño":           ToppingVegetable,
			"Banana Pepper":      ToppingVegetable,
			"Roasted Red Pepper": ToppingPremium,
			"Pineapple":          ToppingPremium,
		},
		weights: map[ToppingCategory]map[ToppingBand]map[string]float64{
			ToppingMeat: {
				BandSingle:   {`10"`: 1.5, `12"`: 2.0, `14"`: 3.0, `16"`: 4.0},
				BandTwoThree: {`10"`: 1.0, `12"`: 1.5, `14"`: 2.0, `16"`: 3.0},
				BandFourPlus: {`10"`: 0.75, `12"`: 1.0, `14"`: 1.5, `16"`: 2.0},
			},
			ToppingVegetable: {
				BandSingle:   {`10"`: 1.0, `12"`: 1.5, `14"`: 2.0, `16"`: 3.0},
				BandTwoThree: {`10"`: 0.75, `12"`: 1.0, `14"`: 1.5, `16"`: 2.0},
				BandFourPlus: {`10"`: 0.5, `12"`: 0.75, `14"`: 1.0, `16"`: 1.5},
			},
			ToppingPremium: {
				BandSingle:   {`10"`: 2.0, `12"`: 2.5, `14"`: 3.5, `16"`: 4.5},
				BandTwoThree: {`10"`: 1.5, `12"`: 2.0, `14"`: 2.5, `16"`: 3.5},
				BandFourPlus: {`10"`: 1.0, `12"`: 1.5, `14"`: 2.0, `16"`: 2.5},
			},
		},
	}
}

// CategoryFor resolves a topping's chart category. A topping outside
// the mapping is a data-integrity problem the caller must log.
func (t *ToppingChart) CategoryFor(topping string) (ToppingCategory, bool) {
	category, ok := t.categories[topping]
	return category, ok
}

// Weight resolves the correct weight for one topping on one pie.
func (t *ToppingChart) Weight(topping string, band ToppingBand, size string) (float64, error) {
	category, ok := t.categories[topping]
	if !ok {
		return 0, fmt.Errorf("topping %q has no chart category", topping)
	}

	bySize, ok := t.weights[category][band]
	if !ok {
		return 0, fmt.Errorf("no %s chart for band %s", category, band)
	}

	weight, ok := bySize[size]
	if !ok {
		return 0, fmt.Errorf("no %s chart entry for size %s", category, size)
	}

	return weight, nil
}

package order

import "github.com/DMailloux03/DominosMemoryGame/internal/catalog"

// Kind discriminates the order union.
type Kind string

const (
	KindPizza Kind = "pizza"
	KindPasta Kind = "pasta"
)

// Order is the tagged union one quiz round is built from. Exactly one
// of Pizza or Pasta is set, per Kind.
type Order struct {
	Kind  Kind        `json:"kind"`
	Pizza *PizzaOrder `json:"pizza,omitempty"`
	Pasta *PastaOrder `json:"pasta,omitempty"`
}

// PizzaOrder is one randomly built pie. Crust is the label shown to the
// trainee; DataCrust is the chart key (Hand Tossed and Thin share one).
type PizzaOrder struct {
	Crust          string                  `json:"crust"`
	DataCrust      string                  `json:"data_crust"`
	Size           string                  `json:"size"`
	Toppings       []string                `json:"toppings"`
	ToppingLabel   string                  `json:"topping_label,omitempty"`
	Sauce          catalog.PortionRecord   `json:"sauce"`
	Cheeses        []catalog.PortionRecord `json:"cheeses"`
	ToppingWeights []ToppingWeight         `json:"topping_weights"`
	Modifier       Modifier                `json:"modifier"`
}

// ToppingWeight is a chart lookup result for one chosen topping.
type ToppingWeight struct {
	Topping string              `json:"topping"`
	Band    catalog.ToppingBand `json:"band"`
	Amount  float64             `json:"amount"`
}

// PastaOrder is a fixed recipe: no randomized toppings, no modifier.
type PastaOrder struct {
	Recipe      string                  `json:"recipe"`
	Size        string                  `json:"size"`
	Ingredients []catalog.PortionRecord `json:"ingredients"`
}

// CrustOption pairs a menu label with its chart key and allowed sizes.
type CrustOption struct {
	Label     string
	DataCrust string
	Sizes     []string
}

// CrustOptions is the five crusts an order can come in.
var CrustOptions = []CrustOption{
	{Label: "Hand Tossed", DataCrust: catalog.CrustHandTossedThin, Sizes: catalog.HandTossedSizes},
	{Label: "Thin Crust", DataCrust: catalog.CrustHandTossedThin, Sizes: catalog.ThinCrustSizes},
	{Label: "Gluten Free", DataCrust: catalog.CrustGlutenFree, Sizes: catalog.GlutenFreeSizes},
	{Label: "New York Style", DataCrust: catalog.CrustNewYork, Sizes: catalog.NewYorkSizes},
	{Label: "Pan", DataCrust: catalog.CrustPan, Sizes: catalog.PanSizes},
}

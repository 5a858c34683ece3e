package catalog

// Size runs per crust. Gluten free only ships as a 10" pie.
var (
	HandTossedSizes = []string{`10"`, `12"`, `14"`}
	ThinCrustSizes  = []string{`12"`, `14"`}
	GlutenFreeSizes = []string{`10"`}
	NewYorkSizes    = []string{`12"`, `14"`, `16"`}
	PanSizes        = []string{`12"`}
)

// ToppingLabels are the count bands the cheese chart breaks out.
var ToppingLabels = []string{"1 topping", "2 toppings", "3 toppings", "4+ toppings"}

// ToppingLibrary is every topping an order can pull from.
var ToppingLibrary = []string{
	"Pepperoni",
	"Sausage",
	"Beef",
	"Ham",
	"Bacon",
	"Mushroom",
	"Onion",
	"Green Pepper",
	"Black Olive",
	"Spinach",
	"Tomato",
	"Jalapeño",
	"Banana Pepper",
	"Roasted Red Pepper",
	"Pineapple",
}

// basePortionSpecs is the raw chart data before gluten-free and
// topping-band expansion.
var basePortionSpecs = []PortionSpec{
	// ---------------- SAUCES ----------------
	{
		Category: CategorySauce,
		Crust:    CrustHandTossedThin,
		Item:     "Pizza Sauce",
		Sizes:    HandTossedSizes,
		Amounts:  []float64{3.0, 4.2, 6.0},
		Note:     "Standard ladle weights for 10-14 inch dough.",
	},
	{
		Category: CategorySauce,
		Crust:    CrustHandTossedThin,
		Item:     "Pacific Veggie Sauce",
		Sizes:    HandTossedSizes,
		Amounts:  []float64{1.5, 3.0, 4.0},
	},
	{
		Category: CategorySauce,
		Crust:    CrustHandTossedThin,
		Item:     "Honey BBQ Sauce",
		Sizes:    HandTossedSizes,
		Amounts:  []float64{1.5, 2.5, 3.5},
	},
	{
		Category: CategorySauce,
		Crust:    CrustHandTossedThin,
		Item:     "Alfredo / Garlic Parm / Ranch Sauce",
		Sizes:    HandTossedSizes,
		Amounts:  []float64{1.5, 3.0, 4.0},
	},
	{
		Category: CategorySauce,
		Crust:    CrustNewYork,
		Item:     "Pizza Sauce",
		Sizes:    NewYorkSizes,
		Amounts:  []float64{4.2, 6.0, 8.0},
		Note:     "Same ladle as standard dough stretched to NY size.",
	},
	{
		Category: CategorySauce,
		Crust:    CrustPan,
		Item:     "Pan Sauce",
		Detail:   "Standard portion",
		Sizes:    PanSizes,
		Amounts:  []float64{3.0},
		Note:     "Use the pan-ladle swirl without touching the edge.",
	},

	// ---------------- CHEESE: PAN ----------------
	{
		Category:   CategoryCheese,
		Crust:      CrustPan,
		Item:       "Shredded Provolone",
		Detail:     "Pan standard",
		Sizes:      PanSizes,
		Amounts:    []float64{4.0},
		CheeseKind: CheeseProvolone,
	},
	{
		Category:      CategoryCheese,
		Crust:         CrustPan,
		Item:          "Pizza Cheese",
		Detail:        "With toppings - bottom layer (regular)",
		Sizes:         PanSizes,
		Amounts:       []float64{3.0},
		CheeseKind:    CheesePizza,
		Layer:         LayerBottom,
		ToppingBanded: true,
	},
	{
		Category:      CategoryCheese,
		Crust:         CrustPan,
		Item:          "Pizza Cheese",
		Detail:        "With toppings - top add-on",
		Sizes:         PanSizes,
		Amounts:       []float64{1.5},
		Note:          "Only added after toppings go on the pizza.",
		CheeseKind:    CheesePizza,
		Layer:         LayerTop,
		ToppingBanded: true,
	},
	{
		Category:   CategoryCheese,
		Crust:      CrustPan,
		Item:       "Pizza Cheese",
		Detail:     "Just cheese - bottom layer",
		Sizes:      PanSizes,
		Amounts:    []float64{4.5},
		CheeseKind: CheesePizza,
		Layer:      LayerBottom,
	},
	{
		Category:   CategoryCheese,
		Crust:      CrustPan,
		Item:       "Pizza Cheese",
		Detail:     "Just cheese - top add-on",
		Sizes:      PanSizes,
		Amounts:    []float64{3.0},
		CheeseKind: CheesePizza,
		Layer:      LayerTop,
	},

	// ---------------- CHEESE: NEW YORK ----------------
	{
		Category:   CategoryCheese,
		Crust:      CrustNewYork,
		Item:       "Pizza Cheese",
		Detail:     "Standard portion",
		Sizes:      NewYorkSizes,
		Amounts:    []float64{2.5, 3.5, 4.5},
		CheeseKind: CheesePizza,
	},
	{
		Category:   CategoryCheese,
		Crust:      CrustNewYork,
		Item:       "Shredded Provolone",
		Detail:     "Standard portion",
		Sizes:      NewYorkSizes,
		Amounts:    []float64{3.0, 4.0, 5.5},
		CheeseKind: CheeseProvolone,
	},

	// ---------------- CHEESE: HAND TOSSED / THIN ----------------
	{
		Category:      CategoryCheese,
		Crust:         CrustHandTossedThin,
		Item:          "Pizza Cheese",
		Detail:        "With toppings - bottom layer (regular)",
		Sizes:         HandTossedSizes,
		Amounts:       []float64{3.5, 5.0, 7.0},
		CheeseKind:    CheesePizza,
		Layer:         LayerBottom,
		ToppingBanded: true,
	},
	{
		Category:      CategoryCheese,
		Crust:         CrustHandTossedThin,
		Item:          "Pizza Cheese",
		Detail:        "With toppings - top add-on",
		Sizes:         HandTossedSizes,
		Amounts:       []float64{1.5, 2.5, 3.5},
		Note:          "Top layer rides on top of toppings.",
		CheeseKind:    CheesePizza,
		Layer:         LayerTop,
		ToppingBanded: true,
	},
	{
		Category:   CategoryCheese,
		Crust:      CrustHandTossedThin,
		Item:       "Pizza Cheese",
		Detail:     "Just cheese - bottom layer",
		Sizes:      HandTossedSizes,
		Amounts:    []float64{5.0, 7.5, 10.5},
		CheeseKind: CheesePizza,
		Layer:      LayerBottom,
	},
	{
		Category:   CategoryCheese,
		Crust:      CrustHandTossedThin,
		Item:       "Pizza Cheese",
		Detail:     "Just cheese - top add-on",
		Sizes:      HandTossedSizes,
		Amounts:    []float64{2.0, 2.5, 3.5},
		CheeseKind: CheesePizza,
		Layer:      LayerTop,
	},
}

// PastaSize is the only size pasta ships in.
const PastaSize = "Tin"

// pastaRecipeSpecs: every dish is a fixed ingredient list, one spec per
// ingredient, crust field doubles as the recipe name.
var pastaRecipeSpecs = map[string][]PortionSpec{
	"Chicken Alfredo": {
		{Category: CategoryPasta, Crust: "Chicken Alfredo", Item: "Penne Pasta", Sizes: []string{PastaSize}, Amounts: []float64{5.0}},
		{Category: CategoryPasta, Crust: "Chicken Alfredo", Item: "Alfredo Sauce", Sizes: []string{PastaSize}, Amounts: []float64{3.5}},
		{Category: CategoryPasta, Crust: "Chicken Alfredo", Item: "Grilled Chicken", Sizes: []string{PastaSize}, Amounts: []float64{1.5}},
	},
	"Italian Sausage Marinara": {
		{Category: CategoryPasta, Crust: "Italian Sausage Marinara", Item: "Penne Pasta", Sizes: []string{PastaSize}, Amounts: []float64{5.0}},
		{Category: CategoryPasta, Crust: "Italian Sausage Marinara", Item: "Marinara Sauce", Sizes: []string{PastaSize}, Amounts: []float64{3.5}},
		{Category: CategoryPasta, Crust: "Italian Sausage Marinara", Item: "Italian Sausage", Sizes: []string{PastaSize}, Amounts: []float64{2.0}},
		{Category: CategoryPasta, Crust: "Italian Sausage Marinara", Item: "Shredded Provolone", Sizes: []string{PastaSize}, Amounts: []float64{1.5}, CheeseKind: CheeseProvolone},
	},
	"Chicken Carbonara": {
		{Category: CategoryPasta, Crust: "Chicken Carbonara", Item: "Penne Pasta", Sizes: []string{PastaSize}, Amounts: []float64{5.0}},
		{Category: CategoryPasta, Crust: "Chicken Carbonara", Item: "Alfredo Sauce", Sizes: []string{PastaSize}, Amounts: []float64{3.5}},
		{Category: CategoryPasta, Crust: "Chicken Carbonara", Item: "Grilled Chicken", Sizes: []string{PastaSize}, Amounts: []float64{1.5}},
		{Category: CategoryPasta, Crust: "Chicken Carbonara", Item: "Bacon", Sizes: []string{PastaSize}, Amounts: []float64{1.0}},
		{Category: CategoryPasta, Crust: "Chicken Carbonara", Item: "Mushroom", Sizes: []string{PastaSize}, Amounts: []float64{0.75}},
		{Category: CategoryPasta, Crust: "Chicken Carbonara", Item: "Onion", Sizes: []string{PastaSize}, Amounts: []float64{0.75}},
	},
	"Pacific Veggie Pasta": {
		{Category: CategoryPasta, Crust: "Pacific Veggie Pasta", Item: "Penne Pasta", Sizes: []string{PastaSize}, Amounts: []float64{5.0}},
		{Category: CategoryPasta, Crust: "Pacific Veggie Pasta", Item: "Alfredo Sauce", Sizes: []string{PastaSize}, Amounts: []float64{3.5}},
		{Category: CategoryPasta, Crust: "Pacific Veggie Pasta", Item: "Spinach", Sizes: []string{PastaSize}, Amounts: []float64{0.75}},
		{Category: CategoryPasta, Crust: "Pacific Veggie Pasta", Item: "Mushroom", Sizes: []string{PastaSize}, Amounts: []float64{0.75}},
		{Category: CategoryPasta, Crust: "Pacific Veggie Pasta", Item: "Tomato", Sizes: []string{PastaSize}, Amounts: []float64{0.75}},
		{Category: CategoryPasta, Crust: "Pacific Veggie Pasta", Item: "Onion", Sizes: []string{PastaSize}, Amounts: []float64{0.75}},
	},
}

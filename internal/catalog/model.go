package catalog

// Category classifies what a portion record measures.
type Category string

const (
	CategorySauce   Category = "Sauce"
	CategoryCheese  Category = "Cheese"
	CategoryTopping Category = "Topping"
	CategoryPasta   Category = "Pasta"
)

// Layer marks which cheese layer a record belongs to.
// Empty for anything that is not layered.
type Layer string

const (
	LayerNone   Layer = ""
	LayerBottom Layer = "bottom"
	LayerTop    Layer = "top"
)

// CheeseKind distinguishes the two cheese products on the make line.
type CheeseKind string

const (
	CheeseNone      CheeseKind = ""
	CheesePizza     CheeseKind = "pizza"
	CheeseProvolone CheeseKind = "provolone"
)

// Crust names used as data keys. Hand Tossed and Thin share one chart.
const (
	CrustHandTossedThin = "Hand Tossed / Thin"
	CrustGlutenFree     = "Gluten Free"
	CrustNewYork        = "New York Style"
	CrustPan            = "Pan"
)

// PortionRecord is one immutable fact from the portion charts: for this
// category, crust, item, detail and size there is exactly one correct
// amount. Records are built once at startup and never mutated.
type PortionRecord struct {
	ID           string     `json:"id"`
	Category     Category   `json:"category"`
	Crust        string     `json:"crust"`
	Item         string     `json:"item"`
	Detail       string     `json:"detail,omitempty"`
	Size         string     `json:"size"`
	Amount       float64    `json:"amount"`
	Unit         string     `json:"unit"`
	Note         string     `json:"note,omitempty"`
	ToppingLabel string     `json:"topping_label,omitempty"`
	Layer        Layer      `json:"layer,omitempty"`
	CheeseKind   CheeseKind `json:"cheese_kind,omitempty"`
}

// PastaRecipe is a fixed dish: one size, a fixed ingredient list.
type PastaRecipe struct {
	Name        string          `json:"name"`
	Size        string          `json:"size"`
	Ingredients []PortionRecord `json:"ingredients"`
}

package order

import (
	"fmt"

	"github.com/DMailloux03/DominosMemoryGame/internal/catalog"
)

// Field is one input the trainee must fill: a stable id, what to weigh,
// and the expected amount after the order's modifier. Expected stays
// server-side; only id, label, hint and unit go to the client.
type Field struct {
	ID       string  `json:"id"`
	Label    string  `json:"label"`
	Hint     string  `json:"hint"`
	Unit     string  `json:"unit"`
	Expected float64 `json:"-"`
}

// Fields flattens an order into its quiz inputs: sauce, then cheese
// layers, then topping weights for pizza; the ingredient list for pasta.
func Fields(o Order) []Field {
	switch o.Kind {
	case KindPizza:
		return pizzaFields(o.Pizza)
	case KindPasta:
		return pastaFields(o.Pasta)
	}
	return nil
}

func pizzaFields(pizza *PizzaOrder) []Field {
	fields := []Field{recordField(pizza.Sauce, pizza.Modifier)}

	for _, record := range pizza.Cheeses {
		fields = append(fields, recordField(record, pizza.Modifier))
	}

	for _, tw := range pizza.ToppingWeights {
		fields = append(fields, Field{
			ID:       "topping-" + catalog.Slugify(tw.Topping) + "-" + catalog.Slugify(pizza.Size),
			Label:    tw.Topping,
			Hint:     fmt.Sprintf("%s • %s • %s", pizza.Size, pizza.Crust, pizza.ToppingLabel),
			Unit:     "oz",
			Expected: tw.Amount,
		})
	}

	return fields
}

func pastaFields(pasta *PastaOrder) []Field {
	fields := make([]Field, 0, len(pasta.Ingredients))
	for _, record := range pasta.Ingredients {
		fields = append(fields, Field{
			ID:       record.ID,
			Label:    record.Item,
			Hint:     fmt.Sprintf("%s • %s", pasta.Size, pasta.Recipe),
			Unit:     record.Unit,
			Expected: record.Amount,
		})
	}
	return fields
}

func recordField(record catalog.PortionRecord, modifier Modifier) Field {
	label := record.Item
	if record.Detail != "" {
		label = fmt.Sprintf("%s (%s)", record.Item, record.Detail)
	}

	hint := fmt.Sprintf("%s • %s", record.Size, record.Crust)
	if record.ToppingLabel != "" {
		hint += " • " + record.ToppingLabel
	}

	return Field{
		ID:       record.ID,
		Label:    label,
		Hint:     hint,
		Unit:     record.Unit,
		Expected: modifier.Apply(record),
	}
}

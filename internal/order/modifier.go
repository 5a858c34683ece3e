package order

import (
	"math/rand"

	"github.com/DMailloux03/DominosMemoryGame/internal/catalog"
)

// Target names which records a modifier rescales.
type Target string

const (
	TargetNone        Target = ""
	TargetSauce       Target = "sauce"
	TargetPizzaCheese Target = "pizza-cheese"
	TargetProvolone   Target = "provolone"
)

// Modifier is a special request: a multiplier applied to every record
// matching its target. The standard modifier changes nothing.
type Modifier struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	Target      Target  `json:"target,omitempty"`
	Multiplier  float64 `json:"multiplier"`
	Description string  `json:"description"`
}

// Modifiers is the fixed special-request list. Index 0 is the standard
// (identity) request.
var Modifiers = []Modifier{
	{
		ID:          "standard",
		Label:       "Bake it standard",
		Target:      TargetNone,
		Multiplier:  1,
		Description: "No changes - follow the normal chart.",
	},
	{
		ID:          "extra-sauce",
		Label:       "Extra sauce",
		Target:      TargetSauce,
		Multiplier:  1.5,
		Description: "Add 50% more sauce than standard.",
	},
	{
		ID:          "light-sauce",
		Label:       "Light sauce",
		Target:      TargetSauce,
		Multiplier:  0.5,
		Description: "Use 50% less sauce than standard.",
	},
	{
		ID:          "extra-cheese",
		Label:       "Extra pizza cheese",
		Target:      TargetPizzaCheese,
		Multiplier:  1.5,
		Description: "Add 50% more pizza cheese on every layer.",
	},
	{
		ID:          "light-cheese",
		Label:       "Light pizza cheese",
		Target:      TargetPizzaCheese,
		Multiplier:  0.5,
		Description: "Use 50% less pizza cheese.",
	},
	{
		ID:          "extra-provolone",
		Label:       "Extra provolone",
		Target:      TargetProvolone,
		Multiplier:  1.5,
		Description: "Add 50% more shredded provolone.",
	},
}

// StandardModifier returns the identity request.
func StandardModifier() Modifier {
	return Modifiers[0]
}

// Apply returns the record's expected amount under this modifier. It is
// the identity unless the multiplier differs from 1 and the record
// matches the target.
func (m Modifier) Apply(record catalog.PortionRecord) float64 {
	if m.Multiplier == 1 {
		return record.Amount
	}

	switch m.Target {
	case TargetSauce:
		if record.Category == catalog.CategorySauce {
			return record.Amount * m.Multiplier
		}
	case TargetPizzaCheese:
		if record.CheeseKind == catalog.CheesePizza {
			return record.Amount * m.Multiplier
		}
	case TargetProvolone:
		if record.CheeseKind == catalog.CheeseProvolone {
			return record.Amount * m.Multiplier
		}
	}

	return record.Amount
}

// specialRequestChance is how often an eligible special request is
// picked over the standard bake.
const specialRequestChance = 0.55

// pickModifier filters the list to requests the order's records can
// satisfy, then rolls for a special one.
func pickModifier(rng *rand.Rand, sauce catalog.PortionRecord, cheeses []catalog.PortionRecord) Modifier {
	eligible := func(m Modifier) bool {
		switch m.Target {
		case TargetNone:
			return true
		case TargetSauce:
			return sauce.ID != ""
		case TargetPizzaCheese:
			for _, record := range cheeses {
				if record.CheeseKind == catalog.CheesePizza {
					return true
				}
			}
			return false
		case TargetProvolone:
			for _, record := range cheeses {
				if record.CheeseKind == catalog.CheeseProvolone {
					return true
				}
			}
			return false
		}
		return false
	}

	var special []Modifier
	for _, m := range Modifiers {
		if m.Target != TargetNone && eligible(m) {
			special = append(special, m)
		}
	}

	if len(special) == 0 || rng.Float64() >= specialRequestChance {
		return StandardModifier()
	}
	return special[rng.Intn(len(special))]
}

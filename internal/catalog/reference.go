package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ReferenceRow is one line of the study sheet: an item grouped across
// its sizes, the way the wall chart prints it.
type ReferenceRow struct {
	Label  string   `json:"label"`
	Crust  string   `json:"crust"`
	Values []string `json:"values"`
}

// ReferenceSheet groups the full catalog into study-sheet rows so the
// web client can render (and cache) the charts.
func (c *Catalog) ReferenceSheet() []ReferenceRow {
	type group struct {
		label   string
		crust   string
		records []PortionRecord
	}

	groups := make(map[string]*group)
	var order []string

	for _, record := range c.records {
		label := record.Item
		if record.Detail != "" {
			label += " – " + record.Detail
		}
		if record.ToppingLabel != "" {
			label += " – " + record.ToppingLabel
		}

		key := record.Crust + "|" + label
		if _, ok := groups[key]; !ok {
			groups[key] = &group{label: label, crust: record.Crust}
			order = append(order, key)
		}
		groups[key].records = append(groups[key].records, record)
	}

	sort.Slice(order, func(i, j int) bool {
		return groups[order[i]].label < groups[order[j]].label
	})

	rows := make([]ReferenceRow, 0, len(order))
	for _, key := range order {
		g := groups[key]
		sort.Slice(g.records, func(i, j int) bool {
			return sizeToNumber(g.records[i].Size) < sizeToNumber(g.records[j].Size)
		})

		values := make([]string, 0, len(g.records))
		for _, record := range g.records {
			values = append(values, fmt.Sprintf(
				"%s: %s %s", record.Size, FormatAmount(record.Amount), record.Unit,
			))
		}

		rows = append(rows, ReferenceRow{
			Label:  g.label,
			Crust:  g.crust,
			Values: values,
		})
	}

	return rows
}

func sizeToNumber(size string) float64 {
	cleaned := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, size)

	numeric, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return numeric
}

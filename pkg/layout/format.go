package layout

import (
	"strconv"

	"github.com/labelpress/labelpress/pkg/label"
)

// maxVerticalTitleRunes is the hard truncation limit the vertical template
// applies to product names. Other templates rely on container wrapping
// instead of a character cutoff.
const maxVerticalTitleRunes = 25

// ellipsis marks truncated titles.
const ellipsis = "…"

// truncateRunes cuts s to at most limit runes, appending an ellipsis when
// anything was removed. Counting runes keeps multi-byte names intact.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + ellipsis
}

// formatValue renders a nutrition value exactly as entered: shortest
// round-trip representation, no rounding policy of our own.
func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// nutritionRow is one display row of the nutrition panel.
type nutritionRow struct {
	Label string
	Value string
	Unit  string
}

// displayRows returns the fixed five-field display subset in its fixed
// order, skipping absent fields entirely. The record carries fourteen
// fields; showing only the five most decision-relevant ones on the label
// is a deliberate readability policy, not a data-model limitation.
func displayRows(n *label.NutritionFacts) []nutritionRow {
	fields := []struct {
		label string
		value *float64
		unit  string
	}{
		{"Energía", n.EnergyKcal, "kcal"},
		{"Proteínas", n.ProteinG, "g"},
		{"Hidratos de carbono", n.CarbohydrateG, "g"},
		{"Grasas totales", n.TotalFatG, "g"},
		{"Sodio", n.SodiumMg, "mg"},
	}
	var rows []nutritionRow
	for _, f := range fields {
		if f.value == nil {
			continue
		}
		rows = append(rows, nutritionRow{Label: f.label, Value: formatValue(*f.value), Unit: f.unit})
	}
	return rows
}

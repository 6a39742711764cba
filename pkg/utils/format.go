package utils

import (
	"fmt"
	"strings"

	"shopcart-backend/internal/domain"
)

// Display-only formatting. The pricing engine returns plain numbers; any
// rounding or "Free" labelling happens here and nowhere else.

// FormatCategory capitalizes a category label for display.
func FormatCategory(category string) string {
	if category == domain.AllCategories {
		return "All Categories"
	}
	if category == "" {
		return ""
	}
	return strings.ToUpper(category[:1]) + category[1:]
}

// FormatCategories renders a category set as a comma-separated display string.
func FormatCategories(categories []string) string {
	formatted := make([]string, 0, len(categories))
	for _, c := range categories {
		formatted = append(formatted, FormatCategory(c))
	}
	return strings.Join(formatted, ", ")
}

// FormatMoney renders an amount as a two-decimal currency string.
func FormatMoney(amount float64) string {
	return fmt.Sprintf("$%.2f", amount)
}

// FormatShippingCost renders a shipping fee, with zero shown as "Free".
func FormatShippingCost(cost float64) string {
	if cost == 0 {
		return "Free"
	}
	return FormatMoney(cost)
}

package api

import (
	"html/template"

	"github.com/shopspring/decimal"
)

// displayDecimals is how many ether digits the page shows
const displayDecimals = 6

// GetTemplateFuncs returns the helper functions available to page templates
func GetTemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"formatEther":  formatEther,
		"shortAddress": shortAddress,
		"inc": func(i int) int {
			return i + 1
		},
	}
}

// formatEther rounds to displayDecimals and drops trailing zeros
func formatEther(amount decimal.Decimal) string {
	return amount.Round(displayDecimals).String()
}

// shortAddress renders 0x1234...abcd
func shortAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

package fix

import (
	"fmt"
	"strings"

	"github.com/fatih/camelcase"
	"golang.org/x/text/unicode/norm"

	"github.com/designlint/designlint/internal/domain"
)

// VariableNameForColor suggests a token name for a raw color value.
func VariableNameForColor(c domain.Color) string {
	return "color/" + c.Hex()
}

// VariableNameForSpacing suggests a token name for a spacing or radius value.
func VariableNameForSpacing(attribute string, value float64) string {
	group := "space"
	if attribute == "cornerRadius" {
		group = "radius"
	}
	return fmt.Sprintf("%s/%g", group, value)
}

// StyleNameForLayer derives a kebab-case style name from a layer name:
// NFC-normalized, split on camel-case boundaries, lowercased.
func StyleNameForLayer(layerName string) string {
	normalized := norm.NFC.String(strings.TrimSpace(layerName))
	var words []string
	for _, field := range strings.FieldsFunc(normalized, func(r rune) bool {
		return r == ' ' || r == '/' || r == '-' || r == '_' || r == '.'
	}) {
		for _, word := range camelcase.Split(field) {
			words = append(words, strings.ToLower(word))
		}
	}
	if len(words) == 0 {
		return "effect-style"
	}
	return strings.Join(words, "-")
}

// Package canon derives deterministic, rounding-tolerant keys from visual
// values. Keys are the sole equality mechanism for style-reuse lookup and
// bulk-fix grouping; no structural diffing is attempted.
package canon

import (
	"math"
	"strconv"
	"strings"

	"github.com/designlint/designlint/internal/domain"
)

// EmptyStackKey is the sentinel key for a node without effects.
const EmptyStackKey = "effects:none"

// Round4 rounds to 4 decimal places, the tolerance under which two visual
// values are considered identical. Negative zero normalizes to zero so that
// noise straddling zero serializes identically.
func Round4(v float64) float64 {
	r := math.Round(v*1e4) / 1e4
	if r == 0 {
		return 0
	}
	return r
}

func num(v float64) string {
	return strconv.FormatFloat(Round4(v), 'f', -1, 64)
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// colorPart serializes a color with rounded, alpha-normalized channels.
// A nil color (blur effects) serializes as a fixed marker.
func colorPart(c *domain.Color) string {
	if c == nil {
		return "-"
	}
	a := c.A
	if a == 0 {
		a = 1
	}
	return num(c.R) + "," + num(c.G) + "," + num(c.B) + "," + num(a)
}

// EffectKey returns the canonical form of a single effect. Variable ids are
// stripped; whether the effect is bound at all remains part of its identity.
func EffectKey(e domain.EffectDef) string {
	parts := []string{
		e.Type,
		flag(e.Visible),
		num(e.Radius),
		num(e.Spread),
		num(e.Offset.X) + "," + num(e.Offset.Y),
		colorPart(e.Color),
		e.BlendMode,
		flag(e.BoundVariable != ""),
	}
	return strings.Join(parts, "|")
}

// EffectStackKey returns the canonical key of an ordered effect stack.
// Two stacks are the same iff their keys are byte-equal; reordering the
// same effects yields a different key.
func EffectStackKey(effects []domain.EffectDef) string {
	if len(effects) == 0 {
		return EmptyStackKey
	}
	keys := make([]string, len(effects))
	for i, e := range effects {
		keys[i] = EffectKey(e)
	}
	return strings.Join(keys, ";")
}

// ColorKey returns the canonical key of a solid color value.
func ColorKey(c domain.Color) string {
	return "rgba:" + colorPart(&c)
}

// SpacingKey returns the canonical key of one spacing or radius value,
// qualified by the attribute it applies to.
func SpacingKey(attribute string, v float64) string {
	return attribute + ":" + num(v)
}

// Package fix derives bulk-fixable groupings from a selection: identical
// unbound colors, spacing values, and effect stacks are grouped by canonical
// identity so remediation can create exactly one variable or style per
// distinct value and bind every occurrence to it.
package fix

import (
	"context"
	"log/slog"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/canon"
	"github.com/designlint/designlint/internal/domain/extract"
)

// ColorOccurrence locates one unbound solid paint on a node.
type ColorOccurrence struct {
	NodeID   string `json:"nodeId"`
	Property string `json:"property"` // "fill" or "stroke"
	Index    int    `json:"index"`
}

// ColorCandidate groups every occurrence of one distinct color value.
type ColorCandidate struct {
	VariableName string            `json:"variableName"`
	Color        domain.Color      `json:"color"`
	Occurrences  []ColorOccurrence `json:"occurrences"`
}

// SpacingOccurrence locates one unbound spacing or radius value on a node.
type SpacingOccurrence struct {
	NodeID    string `json:"nodeId"`
	Attribute string `json:"attribute"`
}

// SpacingCandidate groups every occurrence of one distinct value of one
// attribute.
type SpacingCandidate struct {
	VariableName string              `json:"variableName"`
	Value        float64             `json:"value"`
	Attribute    string              `json:"attribute"`
	Occurrences  []SpacingOccurrence `json:"occurrences"`
}

// EffectCandidate groups every node carrying one distinct effect stack.
type EffectCandidate struct {
	CanonicalKey  string   `json:"canonicalKey"`
	StyleName     string   `json:"styleName"`
	MemberNodeIDs []string `json:"memberNodeIds"`
}

// Candidates is the full set of bulk-fix groupings for a selection.
type Candidates struct {
	Colors  []ColorCandidate   `json:"colors"`
	Spacing []SpacingCandidate `json:"spacing"`
	Effects []EffectCandidate  `json:"effects"`
}

// Extract groups fixable attributes across all selected nodes in one pass.
// Only unbound values are candidates; bound or style-covered values need no
// remediation. Grouping order follows first appearance in the selection.
func Extract(ctx context.Context, doc domain.Document, nodes []domain.Node, log *slog.Logger) Candidates {
	colors := map[string]*ColorCandidate{}
	spacing := map[string]*SpacingCandidate{}
	effects := map[string]*EffectCandidate{}
	var colorOrder, spacingOrder, effectOrder []string

	for _, node := range nodes {
		props := extract.Snapshot(ctx, doc, node, log)

		if props.Paint != nil {
			collectColors(colors, &colorOrder, node.ID(), "fill", props.Paint.Fills, props.Paint.FillStyle)
			collectColors(colors, &colorOrder, node.ID(), "stroke", props.Paint.Strokes, props.Paint.StrokeStyle)
		}

		if props.Layout != nil {
			collectSpacing(spacing, &spacingOrder, node.ID(), "itemSpacing", props.Layout.ItemSpacing, props.Layout.ItemSpacingBound)
			collectSpacing(spacing, &spacingOrder, node.ID(), "paddingTop", props.Layout.Padding.Top, props.Layout.PaddingBound.Top)
			collectSpacing(spacing, &spacingOrder, node.ID(), "paddingRight", props.Layout.Padding.Right, props.Layout.PaddingBound.Right)
			collectSpacing(spacing, &spacingOrder, node.ID(), "paddingBottom", props.Layout.Padding.Bottom, props.Layout.PaddingBound.Bottom)
			collectSpacing(spacing, &spacingOrder, node.ID(), "paddingLeft", props.Layout.Padding.Left, props.Layout.PaddingBound.Left)
		}
		if props.Geometry != nil {
			collectSpacing(spacing, &spacingOrder, node.ID(), "cornerRadius", props.Geometry.CornerRadius, props.Geometry.CornerRadiusBound)
		}

		if props.Effects != nil && props.Effects.Style == nil && len(props.Effects.Effects) > 0 {
			collectEffects(effects, &effectOrder, node.ID(), node.Name(), props.Effects.Effects)
		}
	}

	var out Candidates
	for _, key := range colorOrder {
		out.Colors = append(out.Colors, *colors[key])
	}
	for _, key := range spacingOrder {
		out.Spacing = append(out.Spacing, *spacing[key])
	}
	for _, key := range effectOrder {
		out.Effects = append(out.Effects, *effects[key])
	}
	return out
}

func collectColors(groups map[string]*ColorCandidate, order *[]string, nodeID, property string, paints []domain.Paint, ref *domain.StyleRef) {
	if ref != nil {
		return
	}
	for i, p := range paints {
		if !p.Solid() || p.BoundVariable != "" {
			continue
		}
		key := canon.ColorKey(*p.Color)
		group, ok := groups[key]
		if !ok {
			group = &ColorCandidate{
				VariableName: VariableNameForColor(*p.Color),
				Color:        *p.Color,
			}
			groups[key] = group
			*order = append(*order, key)
		}
		group.Occurrences = append(group.Occurrences, ColorOccurrence{
			NodeID:   nodeID,
			Property: property,
			Index:    i,
		})
	}
}

func collectSpacing(groups map[string]*SpacingCandidate, order *[]string, nodeID, attribute string, value float64, bound bool) {
	if value == 0 || bound {
		return
	}
	key := canon.SpacingKey(attribute, value)
	group, ok := groups[key]
	if !ok {
		group = &SpacingCandidate{
			VariableName: VariableNameForSpacing(attribute, value),
			Value:        value,
			Attribute:    attribute,
		}
		groups[key] = group
		*order = append(*order, key)
	}
	group.Occurrences = append(group.Occurrences, SpacingOccurrence{
		NodeID:    nodeID,
		Attribute: attribute,
	})
}

func collectEffects(groups map[string]*EffectCandidate, order *[]string, nodeID, nodeName string, effects []domain.EffectDef) {
	unbound := false
	for _, e := range effects {
		if e.BoundVariable == "" {
			unbound = true
			break
		}
	}
	if !unbound {
		return
	}

	key := canon.EffectStackKey(effects)
	group, ok := groups[key]
	if !ok {
		group = &EffectCandidate{
			CanonicalKey: key,
			StyleName:    StyleNameForLayer(nodeName),
		}
		groups[key] = group
		*order = append(*order, key)
	}
	group.MemberNodeIDs = append(group.MemberNodeIDs, nodeID)
}

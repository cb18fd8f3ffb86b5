package rules

import (
	"fmt"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/extract"
)

// EvaluateTokens flags raw visual values that should be bound to design-token
// variables. A style reference excuses paints, but never padding or gap:
// for layout values only an explicit variable binding qualifies.
func EvaluateTokens(meta Meta, props extract.Props, cfg domain.EngineConfig) []domain.Issue {
	if !cfg.CheckTokens {
		return nil
	}

	var issues []domain.Issue

	if props.Paint != nil {
		issues = append(issues, unboundPaints("fill", props.Paint.Fills, props.Paint.FillStyle)...)
		issues = append(issues, unboundPaints("stroke", props.Paint.Strokes, props.Paint.StrokeStyle)...)
	}

	if props.Text != nil && props.Text.Style == nil {
		issues = append(issues, warning(domain.CategoryToken,
			fmt.Sprintf("text layer %q has no shared text style", meta.Name)))
	}

	if props.Layout != nil && props.Layout.ItemSpacing != 0 && !props.Layout.ItemSpacingBound {
		issues = append(issues, warning(domain.CategoryToken,
			fmt.Sprintf("item spacing %g is not bound to a spacing variable", props.Layout.ItemSpacing)))
	}

	return issues
}

func unboundPaints(property string, paints []domain.Paint, ref *domain.StyleRef) []domain.Issue {
	var issues []domain.Issue
	for i, p := range paints {
		if !p.Solid() {
			continue
		}
		if p.BoundVariable == "" && ref == nil {
			issues = append(issues, warning(domain.CategoryToken,
				fmt.Sprintf("%s %d uses raw color #%s without a variable binding", property, i, p.Color.Hex())))
		}
	}
	return issues
}

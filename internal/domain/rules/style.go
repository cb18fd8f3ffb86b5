package rules

import (
	"fmt"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/canon"
	"github.com/designlint/designlint/internal/domain/extract"
)

// EvaluateStyles is the finest-grained classifier and the source of critical
// severities. It partitions paints, classifies text and effect styles, and
// independently checks corner radius and padding. effectStyles maps canonical
// effect-stack keys to existing shared style names and is used to point at a
// matching style when one exists.
func EvaluateStyles(meta Meta, props extract.Props, effectStyles map[string]string, cfg domain.EngineConfig) []domain.Issue {
	if !cfg.CheckStyles {
		return nil
	}

	var issues []domain.Issue

	if props.Paint != nil {
		issues = append(issues, paintStyleIssues("fill", props.Paint.Fills, props.Paint.FillStyle, cfg)...)
		issues = append(issues, paintStyleIssues("stroke", props.Paint.Strokes, props.Paint.StrokeStyle, cfg)...)
	}

	if props.Text != nil {
		if props.Text.Style != nil {
			issues = append(issues, styleRefIssue("text style", props.Text.Style, cfg))
		} else {
			issues = append(issues, critical(domain.CategoryStyle,
				fmt.Sprintf("text layer %q does not use a shared text style", meta.Name)))
		}
	}

	if props.Effects != nil {
		issues = append(issues, effectStyleIssues(props.Effects, effectStyles, cfg)...)
	}

	if props.Geometry != nil && props.Geometry.CornerRadius != 0 {
		if props.Geometry.CornerRadiusBound {
			issues = append(issues, confirm(domain.CategoryStyle,
				"corner radius bound to a variable"))
		} else {
			issues = append(issues, critical(domain.CategoryStyle,
				fmt.Sprintf("corner radius %g is not bound to a variable", props.Geometry.CornerRadius)))
		}
	}

	if props.Layout != nil {
		issues = append(issues, paddingIssues(props.Layout)...)
	}

	return issues
}

// paintStyleIssues partitions one paint list: unbound solids are critical,
// variable-bound and style-referenced paints are confirmed, non-solid paints
// need manual review.
func paintStyleIssues(property string, paints []domain.Paint, ref *domain.StyleRef, cfg domain.EngineConfig) []domain.Issue {
	var issues []domain.Issue
	if ref != nil {
		issues = append(issues, styleRefIssue(property, ref, cfg))
	}
	for i, p := range paints {
		if !p.Visible || p.Opacity == 0 {
			continue
		}
		switch {
		case p.Type != domain.PaintSolid || p.Color == nil:
			issues = append(issues, warning(domain.CategoryStyle,
				fmt.Sprintf("%s %d is a %s and needs manual review", property, i, p.Type)))
		case p.BoundVariable != "":
			issues = append(issues, confirm(domain.CategoryStyle,
				fmt.Sprintf("%s %d bound to a color variable", property, i)))
		case ref != nil:
			// Covered by the shared style reference on the property.
		default:
			issues = append(issues, critical(domain.CategoryStyle,
				fmt.Sprintf("%s %d uses hard-coded color #%s", property, i, p.Color.Hex())))
		}
	}
	return issues
}

func effectStyleIssues(attrs *domain.EffectAttrs, effectStyles map[string]string, cfg domain.EngineConfig) []domain.Issue {
	if attrs.Style != nil {
		return []domain.Issue{styleRefIssue("effect style", attrs.Style, cfg)}
	}
	if len(attrs.Effects) == 0 {
		return nil
	}

	allBound := true
	for _, e := range attrs.Effects {
		if e.BoundVariable == "" {
			allBound = false
			break
		}
	}
	if allBound {
		return []domain.Issue{confirm(domain.CategoryStyle,
			"all effects bound to variables")}
	}

	msg := "effect stack is not bound to variables or a shared style"
	if name, ok := effectStyles[canon.EffectStackKey(attrs.Effects)]; ok {
		msg = fmt.Sprintf("%s; matches existing effect style %q", msg, name)
	}
	return []domain.Issue{critical(domain.CategoryStyle, msg)}
}

func paddingIssues(layout *domain.LayoutAttrs) []domain.Issue {
	sides := []struct {
		name  string
		value float64
		bound bool
	}{
		{"padding top", layout.Padding.Top, layout.PaddingBound.Top},
		{"padding right", layout.Padding.Right, layout.PaddingBound.Right},
		{"padding bottom", layout.Padding.Bottom, layout.PaddingBound.Bottom},
		{"padding left", layout.Padding.Left, layout.PaddingBound.Left},
	}

	var issues []domain.Issue
	for _, s := range sides {
		if s.value == 0 {
			continue
		}
		if s.bound {
			issues = append(issues, confirm(domain.CategoryStyle,
				fmt.Sprintf("%s bound to a variable", s.name)))
		} else {
			issues = append(issues, critical(domain.CategoryStyle,
				fmt.Sprintf("%s %g is not bound to a variable", s.name, s.value)))
		}
	}
	return issues
}

func styleRefIssue(what string, ref *domain.StyleRef, cfg domain.EngineConfig) domain.Issue {
	if ref.Remote || cfg.AllowLocalStyles {
		return confirm(domain.CategoryStyle, fmt.Sprintf("%s uses shared style", what))
	}
	return warning(domain.CategoryStyle,
		fmt.Sprintf("%s references a document-local style", what))
}

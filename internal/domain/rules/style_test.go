package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/canon"
	"github.com/designlint/designlint/internal/domain/extract"
	"github.com/designlint/designlint/internal/domain/rules"
)

func findSeverity(t *testing.T, issues []domain.Issue, sev domain.Severity) domain.Issue {
	t.Helper()
	for _, is := range issues {
		if is.Severity == sev {
			return is
		}
	}
	t.Fatalf("no %s issue in %v", sev, issues)
	return domain.Issue{}
}

func TestEvaluateStyles_HardCodedFillIsCritical(t *testing.T) {
	meta := rules.Meta{ID: "1:1", Name: "Swatch", Kind: domain.KindRectangle}
	props := extract.Props{Paint: &domain.PaintAttrs{Fills: []domain.Paint{solid(1, "")}}}

	issues := rules.EvaluateStyles(meta, props, nil, domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
	assert.Equal(t, domain.CategoryStyle, issues[0].Category)
	assert.Contains(t, issues[0].Message, "#ff0000")
}

func TestEvaluateStyles_BoundFillConfirmed(t *testing.T) {
	meta := rules.Meta{ID: "1:2", Name: "Swatch", Kind: domain.KindRectangle}
	props := extract.Props{Paint: &domain.PaintAttrs{Fills: []domain.Paint{solid(1, "VariableID:1")}}}

	issues := rules.EvaluateStyles(meta, props, nil, domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)
}

func TestEvaluateStyles_StyleRefCoversUnboundPaints(t *testing.T) {
	meta := rules.Meta{ID: "1:3", Name: "Swatch", Kind: domain.KindRectangle}
	props := extract.Props{Paint: &domain.PaintAttrs{
		Fills:     []domain.Paint{solid(1, "")},
		FillStyle: &domain.StyleRef{ID: "S:1", Remote: true},
	}}

	issues := rules.EvaluateStyles(meta, props, nil, domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "shared style")
}

func TestEvaluateStyles_InvisiblePaintsIgnored(t *testing.T) {
	meta := rules.Meta{ID: "1:4", Name: "Hidden", Kind: domain.KindRectangle}
	hidden := solid(1, "")
	hidden.Visible = false
	transparent := solid(1, "")
	transparent.Opacity = 0
	props := extract.Props{Paint: &domain.PaintAttrs{Fills: []domain.Paint{hidden, transparent}}}

	assert.Empty(t, rules.EvaluateStyles(meta, props, nil, domain.DefaultConfig()))
}

func TestEvaluateStyles_GradientNeedsManualReview(t *testing.T) {
	meta := rules.Meta{ID: "1:5", Name: "Hero", Kind: domain.KindRectangle}
	props := extract.Props{Paint: &domain.PaintAttrs{Fills: []domain.Paint{{
		Type: "GRADIENT_LINEAR", Visible: true, Opacity: 1,
	}}}}

	issues := rules.EvaluateStyles(meta, props, nil, domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityWarning, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "manual review")
}

func TestEvaluateStyles_TextStyleClassification(t *testing.T) {
	meta := rules.Meta{ID: "2:1", Name: "Heading", Kind: domain.KindText}

	styled := extract.Props{Text: &domain.TextAttrs{Style: &domain.StyleRef{ID: "S:2", Remote: true}}}
	issues := rules.EvaluateStyles(meta, styled, nil, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)

	raw := extract.Props{Text: &domain.TextAttrs{FontFamily: "Inter"}}
	issues = rules.EvaluateStyles(meta, raw, nil, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
}

func TestEvaluateStyles_LocalStyleRefPolicy(t *testing.T) {
	meta := rules.Meta{ID: "2:2", Name: "Heading", Kind: domain.KindText}
	props := extract.Props{Text: &domain.TextAttrs{Style: &domain.StyleRef{ID: "S:3", Remote: false}}}

	allowed := rules.EvaluateStyles(meta, props, nil, domain.DefaultConfig())
	require.Len(t, allowed, 1)
	assert.Equal(t, domain.SeverityInfo, allowed[0].Severity)

	cfg := domain.DefaultConfig()
	cfg.AllowLocalStyles = false
	strict := rules.EvaluateStyles(meta, props, nil, cfg)
	require.Len(t, strict, 1)
	assert.Equal(t, domain.SeverityWarning, strict[0].Severity)
	assert.Contains(t, strict[0].Message, "document-local")
}

func TestEvaluateStyles_EffectStackClassification(t *testing.T) {
	meta := rules.Meta{ID: "3:1", Name: "Card", Kind: domain.KindRectangle}
	shadow := domain.EffectDef{
		Type: domain.EffectDropShadow, Visible: true, Radius: 4,
		Color: &domain.Color{A: 0.25},
	}

	styled := extract.Props{Effects: &domain.EffectAttrs{Style: &domain.StyleRef{ID: "S:4", Remote: true}}}
	issues := rules.EvaluateStyles(meta, styled, nil, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)

	bound := shadow
	bound.BoundVariable = "VariableID:9"
	allBound := extract.Props{Effects: &domain.EffectAttrs{Effects: []domain.EffectDef{bound}}}
	issues = rules.EvaluateStyles(meta, allBound, nil, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)

	unbound := extract.Props{Effects: &domain.EffectAttrs{Effects: []domain.EffectDef{shadow}}}
	issues = rules.EvaluateStyles(meta, unbound, nil, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
}

func TestEvaluateStyles_UnboundEffectsPointAtMatchingStyle(t *testing.T) {
	meta := rules.Meta{ID: "3:2", Name: "Card", Kind: domain.KindRectangle}
	stack := []domain.EffectDef{{
		Type: domain.EffectDropShadow, Visible: true, Radius: 4,
		Color: &domain.Color{A: 0.25},
	}}
	index := map[string]string{canon.EffectStackKey(stack): "Elevation/1"}

	props := extract.Props{Effects: &domain.EffectAttrs{Effects: stack}}
	issues := rules.EvaluateStyles(meta, props, index, domain.DefaultConfig())

	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Message, `matches existing effect style "Elevation/1"`)
}

func TestEvaluateStyles_CornerRadius(t *testing.T) {
	meta := rules.Meta{ID: "4:1", Name: "Card", Kind: domain.KindRectangle}

	zero := extract.Props{Geometry: &domain.GeometryAttrs{}}
	assert.Empty(t, rules.EvaluateStyles(meta, zero, nil, domain.DefaultConfig()))

	raw := extract.Props{Geometry: &domain.GeometryAttrs{CornerRadius: 8}}
	issues := rules.EvaluateStyles(meta, raw, nil, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityCritical, issues[0].Severity)
	assert.Contains(t, issues[0].Message, "8")

	bound := extract.Props{Geometry: &domain.GeometryAttrs{CornerRadius: 8, CornerRadiusBound: true}}
	issues = rules.EvaluateStyles(meta, bound, nil, domain.DefaultConfig())
	require.Len(t, issues, 1)
	assert.Equal(t, domain.SeverityInfo, issues[0].Severity)
}

func TestEvaluateStyles_PaddingPerSide(t *testing.T) {
	meta := rules.Meta{ID: "5:1", Name: "Stack", Kind: domain.KindFrame}
	props := extract.Props{Layout: &domain.LayoutAttrs{
		Mode:         "VERTICAL",
		Padding:      domain.Edges{Top: 16, Left: 8},
		PaddingBound: domain.EdgeFlags{Top: true},
	}}

	issues := rules.EvaluateStyles(meta, props, nil, domain.DefaultConfig())

	require.Len(t, issues, 2)
	info := findSeverity(t, issues, domain.SeverityInfo)
	assert.Contains(t, info.Message, "padding top")
	crit := findSeverity(t, issues, domain.SeverityCritical)
	assert.Contains(t, crit.Message, "padding left")
}

func TestEvaluateStyles_DisabledCheckIsSilent(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.CheckStyles = false
	meta := rules.Meta{ID: "6:1", Name: "Swatch", Kind: domain.KindRectangle}
	props := extract.Props{Paint: &domain.PaintAttrs{Fills: []domain.Paint{solid(1, "")}}}

	assert.Empty(t, rules.EvaluateStyles(meta, props, nil, cfg))
}

package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/designlint/designlint/internal/domain"
)

func TestIssueBlocking(t *testing.T) {
	assert.True(t, domain.Issue{Severity: domain.SeverityCritical}.Blocking())
	assert.True(t, domain.Issue{Severity: domain.SeverityWarning}.Blocking())
	assert.False(t, domain.Issue{Severity: domain.SeverityInfo}.Blocking())
}

func TestGradeFor(t *testing.T) {
	cases := []struct {
		score int
		grade string
	}{
		{100, "A+"}, {90, "A+"},
		{89, "A"}, {80, "A"},
		{79, "B"}, {70, "B"},
		{69, "C"}, {60, "C"},
		{59, "D"}, {50, "D"},
		{49, "F"}, {0, "F"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.grade, domain.GradeFor(tc.score), "score %d", tc.score)
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "ff0000", domain.Color{R: 1, A: 1}.Hex())
	assert.Equal(t, "000000", domain.Color{A: 1}.Hex())
	assert.Equal(t, "ffffff", domain.Color{R: 1, G: 1, B: 1, A: 1}.Hex())
	assert.Equal(t, "808080", domain.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}.Hex())
}

func TestPaintSolid(t *testing.T) {
	assert.True(t, domain.Paint{
		Type: domain.PaintSolid, Visible: true, Opacity: 1, Color: &domain.Color{A: 1},
	}.Solid())
	assert.False(t, domain.Paint{
		Type: domain.PaintSolid, Visible: false, Opacity: 1, Color: &domain.Color{A: 1},
	}.Solid())
	assert.False(t, domain.Paint{
		Type: domain.PaintSolid, Visible: true, Opacity: 0, Color: &domain.Color{A: 1},
	}.Solid(), "fully transparent paints are visually absent")
	assert.False(t, domain.Paint{Type: "IMAGE", Visible: true, Opacity: 1}.Solid())
	assert.False(t, domain.Paint{Type: domain.PaintSolid, Visible: true, Opacity: 1}.Solid())
}

func TestDefaultConfig(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.True(t, cfg.CheckComponents)
	assert.True(t, cfg.CheckTokens)
	assert.True(t, cfg.CheckStyles)
	assert.True(t, cfg.AllowLocalStyles)
	assert.True(t, cfg.AnyCheckEnabled())
	assert.Empty(t, cfg.IgnoredKinds)
	assert.NoError(t, cfg.Validate())
}

func TestConfigIgnoresKind(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.IgnoredKinds = []domain.Kind{domain.KindGroup, domain.KindVector}

	assert.True(t, cfg.IgnoresKind(domain.KindGroup))
	assert.True(t, cfg.IgnoresKind(domain.KindVector))
	assert.False(t, cfg.IgnoresKind(domain.KindFrame))
}

func TestConfigValidateRejectsUnknownKind(t *testing.T) {
	cfg := domain.DefaultConfig()
	cfg.IgnoredKinds = []domain.Kind{"SQUIRCLE"}

	err := cfg.Validate()
	assert.ErrorContains(t, err, "SQUIRCLE")
}

func TestAnyCheckEnabled(t *testing.T) {
	cfg := domain.EngineConfig{}
	assert.False(t, cfg.AnyCheckEnabled())
	cfg.CheckStyles = true
	assert.True(t, cfg.AnyCheckEnabled())
}

func TestKindCapabilities(t *testing.T) {
	assert.True(t, domain.KindText.SupportsPaint())
	assert.False(t, domain.KindGroup.SupportsPaint())
	assert.True(t, domain.KindGroup.SupportsEffects())

	assert.True(t, domain.KindRectangle.SupportsCornerRadius())
	assert.False(t, domain.KindEllipse.SupportsCornerRadius())

	assert.True(t, domain.KindFrame.SupportsAutoLayout())
	assert.False(t, domain.KindGroup.SupportsAutoLayout())
}

func TestIsKnownKind(t *testing.T) {
	for _, k := range domain.KnownKinds {
		assert.True(t, domain.IsKnownKind(k), "kind %s", k)
	}
	assert.False(t, domain.IsKnownKind("DOODLE"))
}

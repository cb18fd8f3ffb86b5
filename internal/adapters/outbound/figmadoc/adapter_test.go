package figmadoc_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designlint/designlint/internal/adapters/outbound/figmadoc"
	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/canon"
)

func loadHomepage(t *testing.T) *figmadoc.Document {
	t.Helper()
	doc, err := figmadoc.Load(filepath.Join("testdata", "homepage.json"))
	require.NoError(t, err)
	return doc
}

func TestLoad_DocumentShape(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	assert.Equal(t, "Homepage", doc.Name())

	root, err := doc.Root(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0:0", root.ID())
	assert.Equal(t, domain.KindDocument, root.Kind())

	pages := root.Children()
	require.Len(t, pages, 1)
	assert.Equal(t, domain.KindPage, pages[0].Kind())
}

func TestLoad_MissingRootRejected(t *testing.T) {
	_, err := figmadoc.Parse([]byte(`{"name":"empty"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no root node")

	_, err = figmadoc.Parse([]byte(`{broken`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := figmadoc.Load(filepath.Join("testdata", "nope.json"))
	assert.Error(t, err)
}

func TestNodeByID(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	node, err := doc.NodeByID(ctx, "2:2")
	require.NoError(t, err)
	assert.Equal(t, "Swatch", node.Name())
	assert.Equal(t, domain.KindRectangle, node.Kind())

	_, err = doc.NodeByID(ctx, "9:9")
	assert.Error(t, err)
}

func TestPaints_DefaultsAndBindings(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	swatch, err := doc.NodeByID(ctx, "2:2")
	require.NoError(t, err)
	paints, err := swatch.Paints(ctx)
	require.NoError(t, err)

	require.Len(t, paints.Fills, 1)
	fill := paints.Fills[0]
	assert.True(t, fill.Visible, "visibility defaults to true when omitted")
	assert.Equal(t, 1.0, fill.Opacity, "opacity defaults to 1 when omitted")
	assert.Equal(t, "ff0000", fill.Color.Hex())
	assert.Empty(t, fill.BoundVariable)

	require.Len(t, paints.Strokes, 1)
	assert.False(t, paints.Strokes[0].Visible)

	headline, err := doc.NodeByID(ctx, "2:1")
	require.NoError(t, err)
	paints, err = headline.Paints(ctx)
	require.NoError(t, err)
	require.Len(t, paints.Fills, 1)
	assert.Equal(t, "VariableID:3", paints.Fills[0].BoundVariable)
}

func TestStyleRefs_RemoteFlagFromStylesTable(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	headline, err := doc.NodeByID(ctx, "2:1")
	require.NoError(t, err)
	text, err := headline.Text(ctx)
	require.NoError(t, err)
	require.NotNil(t, text.Style)
	assert.Equal(t, "S:text", text.Style.ID)
	assert.False(t, text.Style.Remote)
	assert.Equal(t, "Inter", text.FontFamily)
	assert.Equal(t, 32.0, text.FontSize)

	button, err := doc.NodeByID(ctx, "2:4")
	require.NoError(t, err)
	paints, err := button.Paints(ctx)
	require.NoError(t, err)
	require.NotNil(t, paints.FillStyle)
	assert.True(t, paints.FillStyle.Remote)
}

func TestLayout_Bindings(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	hero, err := doc.NodeByID(ctx, "1:1")
	require.NoError(t, err)
	layout, err := hero.Layout(ctx)
	require.NoError(t, err)

	assert.Equal(t, "VERTICAL", layout.Mode)
	assert.Equal(t, 16.0, layout.ItemSpacing)
	assert.True(t, layout.ItemSpacingBound)
	assert.Equal(t, 24.0, layout.Padding.Top)
	assert.False(t, layout.PaddingBound.Top)
}

func TestGeometry(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	swatch, err := doc.NodeByID(ctx, "2:2")
	require.NoError(t, err)
	geo, err := swatch.Geometry(ctx)
	require.NoError(t, err)

	assert.Equal(t, 8.0, geo.CornerRadius)
	assert.False(t, geo.CornerRadiusBound)
}

func TestResolveOrigin(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	remote, err := doc.ResolveOrigin(ctx, "2:4")
	require.NoError(t, err)
	assert.Equal(t, domain.Origin{ComponentID: "10:1", Name: "Button/Primary", Remote: true}, remote)

	local, err := doc.ResolveOrigin(ctx, "2:5")
	require.NoError(t, err)
	assert.False(t, local.Remote)

	_, err = doc.ResolveOrigin(ctx, "2:2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not an instance")
}

func TestEffectStyleIndex(t *testing.T) {
	doc := loadHomepage(t)
	ctx := context.Background()

	index, err := doc.EffectStyles(ctx)
	require.NoError(t, err)

	card, err := doc.NodeByID(ctx, "2:3")
	require.NoError(t, err)
	effects, err := card.Effects(ctx)
	require.NoError(t, err)
	require.NotNil(t, effects.Style)

	key := canon.EffectStackKey(effects.Effects)
	assert.Equal(t, "Elevation/1", index[key])
}

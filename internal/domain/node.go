package domain

import "fmt"

// Kind is the discriminant tag of a visual element.
type Kind string

const (
	KindDocument     Kind = "DOCUMENT"
	KindPage         Kind = "CANVAS"
	KindFrame        Kind = "FRAME"
	KindGroup        Kind = "GROUP"
	KindSection      Kind = "SECTION"
	KindText         Kind = "TEXT"
	KindRectangle    Kind = "RECTANGLE"
	KindEllipse      Kind = "ELLIPSE"
	KindLine         Kind = "LINE"
	KindPolygon      Kind = "POLYGON"
	KindStar         Kind = "STAR"
	KindVector       Kind = "VECTOR"
	KindBooleanOp    Kind = "BOOLEAN_OPERATION"
	KindComponent    Kind = "COMPONENT"
	KindComponentSet Kind = "COMPONENT_SET"
	KindInstance     Kind = "INSTANCE"
)

// KnownKinds lists every kind the engine understands, in a stable order.
var KnownKinds = []Kind{
	KindDocument, KindPage, KindFrame, KindGroup, KindSection,
	KindText, KindRectangle, KindEllipse, KindLine, KindPolygon,
	KindStar, KindVector, KindBooleanOp,
	KindComponent, KindComponentSet, KindInstance,
}

// IsKnownKind reports whether k is a kind the engine understands.
func IsKnownKind(k Kind) bool {
	for _, known := range KnownKinds {
		if k == known {
			return true
		}
	}
	return false
}

// SupportsPaint reports whether the kind carries fills and strokes.
func (k Kind) SupportsPaint() bool {
	switch k {
	case KindFrame, KindText, KindRectangle, KindEllipse, KindLine,
		KindPolygon, KindStar, KindVector, KindBooleanOp,
		KindComponent, KindInstance:
		return true
	}
	return false
}

// SupportsEffects reports whether the kind carries an effect stack.
func (k Kind) SupportsEffects() bool {
	return k.SupportsPaint() || k == KindGroup
}

// SupportsCornerRadius reports whether the kind carries a corner radius.
func (k Kind) SupportsCornerRadius() bool {
	switch k {
	case KindFrame, KindRectangle, KindComponent, KindInstance:
		return true
	}
	return false
}

// SupportsAutoLayout reports whether the kind can carry auto-layout attributes.
func (k Kind) SupportsAutoLayout() bool {
	switch k {
	case KindFrame, KindComponent, KindInstance:
		return true
	}
	return false
}

// Color is an RGBA color with channels in the 0..1 range.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// Hex returns the color as a lowercase rgb hex string, alpha ignored.
func (c Color) Hex() string {
	clamp := func(v float64) int {
		n := int(v*255 + 0.5)
		if n < 0 {
			return 0
		}
		if n > 255 {
			return 255
		}
		return n
	}
	return fmt.Sprintf("%02x%02x%02x", clamp(c.R), clamp(c.G), clamp(c.B))
}

// Vector is a 2D offset.
type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Paint types as reported by the host document.
const (
	PaintSolid = "SOLID"
)

// Paint is one fill or stroke entry.
type Paint struct {
	Type          string
	Visible       bool
	Opacity       float64
	Color         *Color
	BoundVariable string // variable id bound to this paint's color, empty when unbound
}

// Solid reports whether the paint is a visible solid color.
// Solid reports whether the paint is a visible solid color. Fully
// transparent paints are visually absent and never evaluated.
func (p Paint) Solid() bool {
	return p.Visible && p.Opacity > 0 && p.Type == PaintSolid && p.Color != nil
}

// StyleRef references a shared style by id. Remote styles live in a shared
// library rather than the current document.
type StyleRef struct {
	ID     string
	Remote bool
}

// PaintAttrs groups the paint-related attributes of one node.
type PaintAttrs struct {
	Fills       []Paint
	Strokes     []Paint
	FillStyle   *StyleRef
	StrokeStyle *StyleRef
}

// Effect types as reported by the host document.
const (
	EffectDropShadow     = "DROP_SHADOW"
	EffectInnerShadow    = "INNER_SHADOW"
	EffectLayerBlur      = "LAYER_BLUR"
	EffectBackgroundBlur = "BACKGROUND_BLUR"
)

// EffectDef is one entry of a node's effect stack.
type EffectDef struct {
	Type          string
	Visible       bool
	Radius        float64
	Spread        float64
	Offset        Vector
	Color         *Color
	BlendMode     string
	BoundVariable string // variable id bound to this effect, empty when unbound
}

// EffectAttrs groups a node's effect stack and its style reference.
type EffectAttrs struct {
	Effects []EffectDef
	Style   *StyleRef
}

// GeometryAttrs groups shape geometry relevant to compliance.
type GeometryAttrs struct {
	CornerRadius      float64
	CornerRadiusBound bool
}

// Edges holds one value per padding side.
type Edges struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// EdgeFlags holds one binding flag per padding side.
type EdgeFlags struct {
	Top    bool
	Right  bool
	Bottom bool
	Left   bool
}

// LayoutAttrs groups auto-layout attributes. Mode is empty for nodes
// without auto-layout.
type LayoutAttrs struct {
	Mode             string // "HORIZONTAL", "VERTICAL" or ""
	Padding          Edges
	PaddingBound     EdgeFlags
	ItemSpacing      float64
	ItemSpacingBound bool
}

// TextAttrs groups text metrics and the shared text-style reference.
type TextAttrs struct {
	FontFamily string
	FontSize   float64
	FontWeight float64
	Style      *StyleRef
}

// Origin describes where an instance's backing component lives.
type Origin struct {
	ComponentID string
	Name        string
	Remote      bool // true when the component comes from a shared library
}

// Package figmadoc adapts an exported Figma-file JSON document to the
// engine's read-only document capability surface.
package figmadoc

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/canon"
)

// Document implements domain.Document over a parsed file export.
type Document struct {
	name        string
	root        *Node
	byID        map[string]*Node
	components  map[string]componentDef
	styles      map[string]styleDef
	effectIndex map[string]string
}

var _ domain.Document = (*Document)(nil)

// Load reads and parses a document export from disk.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return doc, nil
}

// Parse builds a Document from exported JSON bytes.
func Parse(data []byte) (*Document, error) {
	var file fileDoc
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding document JSON: %w", err)
	}
	if file.Document.ID == "" {
		return nil, fmt.Errorf("document has no root node")
	}

	doc := &Document{
		name:        file.Name,
		byID:        make(map[string]*Node),
		components:  file.Components,
		styles:      file.Styles,
		effectIndex: make(map[string]string),
	}
	doc.root = doc.buildNode(&file.Document)
	return doc, nil
}

func (d *Document) buildNode(src *jsonNode) *Node {
	n := &Node{doc: d, src: src}
	d.byID[src.ID] = n
	for i := range src.Children {
		n.children = append(n.children, d.buildNode(&src.Children[i]))
	}

	// Nodes referencing a shared effect style seed the style-reuse index:
	// canonical stack key to style name.
	if sid := src.StyleRefs["effect"]; sid != "" && len(src.Effects) > 0 {
		if style, ok := d.styles[sid]; ok {
			d.effectIndex[canon.EffectStackKey(convertEffects(src.Effects))] = style.Name
		}
	}
	return n
}

func (d *Document) Name() string { return d.name }

func (d *Document) Root(context.Context) (domain.Node, error) {
	return d.root, nil
}

func (d *Document) NodeByID(_ context.Context, id string) (domain.Node, error) {
	n, ok := d.byID[id]
	if !ok {
		return nil, fmt.Errorf("node %q not found in document", id)
	}
	return n, nil
}

func (d *Document) ResolveOrigin(_ context.Context, instanceID string) (domain.Origin, error) {
	n, ok := d.byID[instanceID]
	if !ok {
		return domain.Origin{}, fmt.Errorf("node %q not found in document", instanceID)
	}
	if n.src.Type != string(domain.KindInstance) {
		return domain.Origin{}, fmt.Errorf("node %q is not an instance", instanceID)
	}
	comp, ok := d.components[n.src.ComponentID]
	if !ok {
		return domain.Origin{}, fmt.Errorf("component %q not found for instance %q", n.src.ComponentID, instanceID)
	}
	return domain.Origin{
		ComponentID: n.src.ComponentID,
		Name:        comp.Name,
		Remote:      comp.Remote,
	}, nil
}

func (d *Document) EffectStyles(context.Context) (map[string]string, error) {
	return d.effectIndex, nil
}

// Node implements domain.Node over one exported node. All reads are
// in-memory and never fail.
type Node struct {
	doc      *Document
	src      *jsonNode
	children []*Node
}

var _ domain.Node = (*Node)(nil)

func (n *Node) ID() string        { return n.src.ID }
func (n *Node) Name() string      { return n.src.Name }
func (n *Node) Kind() domain.Kind { return domain.Kind(n.src.Type) }

func (n *Node) Children() []domain.Node {
	children := make([]domain.Node, len(n.children))
	for i, child := range n.children {
		children[i] = child
	}
	return children
}

func (n *Node) Paints(context.Context) (domain.PaintAttrs, error) {
	return domain.PaintAttrs{
		Fills:       convertPaints(n.src.Fills),
		Strokes:     convertPaints(n.src.Strokes),
		FillStyle:   n.styleRef("fill"),
		StrokeStyle: n.styleRef("stroke"),
	}, nil
}

func (n *Node) Effects(context.Context) (domain.EffectAttrs, error) {
	return domain.EffectAttrs{
		Effects: convertEffects(n.src.Effects),
		Style:   n.styleRef("effect"),
	}, nil
}

func (n *Node) Geometry(context.Context) (domain.GeometryAttrs, error) {
	bound := n.src.BoundVariables != nil && n.src.BoundVariables.CornerRadius != nil
	return domain.GeometryAttrs{
		CornerRadius:      n.src.CornerRadius,
		CornerRadiusBound: bound,
	}, nil
}

func (n *Node) Layout(context.Context) (domain.LayoutAttrs, error) {
	vars := n.src.BoundVariables
	has := func(a *varAlias) bool { return a != nil && a.ID != "" }

	attrs := domain.LayoutAttrs{
		Mode: n.src.LayoutMode,
		Padding: domain.Edges{
			Top:    n.src.PaddingTop,
			Right:  n.src.PaddingRight,
			Bottom: n.src.PaddingBottom,
			Left:   n.src.PaddingLeft,
		},
		ItemSpacing: n.src.ItemSpacing,
	}
	if vars != nil {
		attrs.PaddingBound = domain.EdgeFlags{
			Top:    has(vars.PaddingTop),
			Right:  has(vars.PaddingRight),
			Bottom: has(vars.PaddingBottom),
			Left:   has(vars.PaddingLeft),
		}
		attrs.ItemSpacingBound = has(vars.ItemSpacing)
	}
	return attrs, nil
}

func (n *Node) Text(context.Context) (domain.TextAttrs, error) {
	attrs := domain.TextAttrs{Style: n.styleRef("text")}
	if n.src.Style != nil {
		attrs.FontFamily = n.src.Style.FontFamily
		attrs.FontSize = n.src.Style.FontSize
		attrs.FontWeight = n.src.Style.FontWeight
	}
	return attrs, nil
}

func (n *Node) styleRef(slot string) *domain.StyleRef {
	sid := n.src.StyleRefs[slot]
	if sid == "" {
		return nil
	}
	ref := &domain.StyleRef{ID: sid}
	if style, ok := n.doc.styles[sid]; ok {
		ref.Remote = style.Remote
	}
	return ref
}

func convertPaints(paints []jsonPaint) []domain.Paint {
	if len(paints) == 0 {
		return nil
	}
	out := make([]domain.Paint, len(paints))
	for i, p := range paints {
		visible := true
		if p.Visible != nil {
			visible = *p.Visible
		}
		opacity := 1.0
		if p.Opacity != nil {
			opacity = *p.Opacity
		}
		out[i] = domain.Paint{
			Type:    p.Type,
			Visible: visible,
			Opacity: opacity,
			Color:   convertColor(p.Color),
		}
		if p.BoundVariables != nil && p.BoundVariables.Color != nil {
			out[i].BoundVariable = p.BoundVariables.Color.ID
		}
	}
	return out
}

func convertEffects(effects []jsonEffect) []domain.EffectDef {
	if len(effects) == 0 {
		return nil
	}
	out := make([]domain.EffectDef, len(effects))
	for i, e := range effects {
		visible := true
		if e.Visible != nil {
			visible = *e.Visible
		}
		def := domain.EffectDef{
			Type:      e.Type,
			Visible:   visible,
			Radius:    e.Radius,
			Spread:    e.Spread,
			Color:     convertColor(e.Color),
			BlendMode: e.BlendMode,
		}
		if e.Offset != nil {
			def.Offset = domain.Vector{X: e.Offset.X, Y: e.Offset.Y}
		}
		if e.BoundVariables != nil {
			switch {
			case e.BoundVariables.Color != nil:
				def.BoundVariable = e.BoundVariables.Color.ID
			case e.BoundVariables.Radius != nil:
				def.BoundVariable = e.BoundVariables.Radius.ID
			case e.BoundVariables.Spread != nil:
				def.BoundVariable = e.BoundVariables.Spread.ID
			}
		}
		out[i] = def
	}
	return out
}

func convertColor(c *jsonColor) *domain.Color {
	if c == nil {
		return nil
	}
	return &domain.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

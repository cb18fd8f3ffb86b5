// Package domaintest provides an in-memory implementation of the document
// capability surface for tests.
package domaintest

import (
	"context"
	"fmt"

	"github.com/designlint/designlint/internal/domain"
)

// Node is a synthetic tree node. Zero-value attribute groups read as absent.
type Node struct {
	NodeID   string
	NodeName string
	NodeKind domain.Kind
	Kids     []*Node

	PaintAttrs    domain.PaintAttrs
	EffectAttrs   domain.EffectAttrs
	GeometryAttrs domain.GeometryAttrs
	LayoutAttrs   domain.LayoutAttrs
	TextAttrs     domain.TextAttrs

	// FailGroups forces attribute-group reads to fail, keyed by group name:
	// "paints", "effects", "geometry", "layout", "text".
	FailGroups map[string]error
}

var _ domain.Node = (*Node)(nil)

func (n *Node) ID() string        { return n.NodeID }
func (n *Node) Name() string      { return n.NodeName }
func (n *Node) Kind() domain.Kind { return n.NodeKind }

func (n *Node) Children() []domain.Node {
	children := make([]domain.Node, len(n.Kids))
	for i, kid := range n.Kids {
		children[i] = kid
	}
	return children
}

func (n *Node) fail(group string) error {
	if n.FailGroups == nil {
		return nil
	}
	return n.FailGroups[group]
}

func (n *Node) Paints(context.Context) (domain.PaintAttrs, error) {
	if err := n.fail("paints"); err != nil {
		return domain.PaintAttrs{}, err
	}
	return n.PaintAttrs, nil
}

func (n *Node) Effects(context.Context) (domain.EffectAttrs, error) {
	if err := n.fail("effects"); err != nil {
		return domain.EffectAttrs{}, err
	}
	return n.EffectAttrs, nil
}

func (n *Node) Geometry(context.Context) (domain.GeometryAttrs, error) {
	if err := n.fail("geometry"); err != nil {
		return domain.GeometryAttrs{}, err
	}
	return n.GeometryAttrs, nil
}

func (n *Node) Layout(context.Context) (domain.LayoutAttrs, error) {
	if err := n.fail("layout"); err != nil {
		return domain.LayoutAttrs{}, err
	}
	return n.LayoutAttrs, nil
}

func (n *Node) Text(context.Context) (domain.TextAttrs, error) {
	if err := n.fail("text"); err != nil {
		return domain.TextAttrs{}, err
	}
	return n.TextAttrs, nil
}

// Document is a synthetic host document over a Node tree.
type Document struct {
	DocName      string
	RootNode     *Node
	Origins      map[string]domain.Origin // instance node id -> origin
	EffectIndex  map[string]string        // canonical key -> style name
	EffectsError error
}

var _ domain.Document = (*Document)(nil)

func (d *Document) Name() string { return d.DocName }

func (d *Document) Root(context.Context) (domain.Node, error) {
	if d.RootNode == nil {
		return nil, fmt.Errorf("document has no root")
	}
	return d.RootNode, nil
}

func (d *Document) NodeByID(_ context.Context, id string) (domain.Node, error) {
	if n := findNode(d.RootNode, id); n != nil {
		return n, nil
	}
	return nil, fmt.Errorf("node %q not found", id)
}

func (d *Document) ResolveOrigin(_ context.Context, instanceID string) (domain.Origin, error) {
	origin, ok := d.Origins[instanceID]
	if !ok {
		return domain.Origin{}, fmt.Errorf("no origin for instance %q", instanceID)
	}
	return origin, nil
}

func (d *Document) EffectStyles(context.Context) (map[string]string, error) {
	if d.EffectsError != nil {
		return nil, d.EffectsError
	}
	return d.EffectIndex, nil
}

func findNode(n *Node, id string) *Node {
	if n == nil {
		return nil
	}
	if n.NodeID == id {
		return n
	}
	for _, kid := range n.Kids {
		if found := findNode(kid, id); found != nil {
			return found
		}
	}
	return nil
}

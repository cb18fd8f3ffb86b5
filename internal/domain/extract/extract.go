// Package extract reads the compliance-relevant attributes of one node into
// a plain snapshot. Each attribute group is present only when the node's kind
// supports it; absence is represented, not an error.
package extract

import (
	"context"
	"log/slog"

	"github.com/designlint/designlint/internal/domain"
)

// Props is the per-kind tagged snapshot of one node's visual attributes.
// A nil group means the kind does not support it or its read failed.
type Props struct {
	Paint    *domain.PaintAttrs
	Effects  *domain.EffectAttrs
	Geometry *domain.GeometryAttrs
	Layout   *domain.LayoutAttrs
	Text     *domain.TextAttrs
	Origin   *domain.Origin // instances only
}

// Snapshot reads every attribute group the node's kind supports, plus the
// component origin for instances. A failed group read is logged and omitted;
// it never aborts the node's analysis.
func Snapshot(ctx context.Context, doc domain.Document, node domain.Node, log *slog.Logger) Props {
	if log == nil {
		log = slog.Default()
	}

	var p Props
	kind := node.Kind()

	if kind.SupportsPaint() {
		if paints, err := node.Paints(ctx); err != nil {
			warn(log, node, "paints", err)
		} else {
			p.Paint = &paints
		}
	}

	if kind.SupportsEffects() {
		if effects, err := node.Effects(ctx); err != nil {
			warn(log, node, "effects", err)
		} else if len(effects.Effects) > 0 || effects.Style != nil {
			p.Effects = &effects
		}
	}

	if kind.SupportsCornerRadius() {
		if geo, err := node.Geometry(ctx); err != nil {
			warn(log, node, "geometry", err)
		} else {
			p.Geometry = &geo
		}
	}

	if kind.SupportsAutoLayout() {
		if layout, err := node.Layout(ctx); err != nil {
			warn(log, node, "layout", err)
		} else if layout.Mode != "" {
			p.Layout = &layout
		}
	}

	if kind == domain.KindText {
		if text, err := node.Text(ctx); err != nil {
			warn(log, node, "text", err)
		} else {
			p.Text = &text
		}
	}

	if kind == domain.KindInstance {
		if origin, err := doc.ResolveOrigin(ctx, node.ID()); err != nil {
			warn(log, node, "origin", err)
		} else {
			p.Origin = &origin
		}
	}

	return p
}

func warn(log *slog.Logger, node domain.Node, group string, err error) {
	log.Warn("attribute read failed, omitting",
		"node", node.ID(),
		"name", node.Name(),
		"group", group,
		"err", err,
	)
}

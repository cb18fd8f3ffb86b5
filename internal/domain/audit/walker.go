// Package audit runs the compliance analysis: a suspending pre-order walk
// over the host tree, rule evaluation per node, and an incremental fold into
// the final coverage report.
package audit

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/extract"
	"github.com/designlint/designlint/internal/domain/rules"
)

// progressEvery is the visit cadence of advisory progress notifications.
const progressEvery = 10

// ProgressFunc receives the cumulative visited count. Notifications are
// fire-and-forget; losing them does not affect the report.
type ProgressFunc func(visited int)

// Engine walks a document tree and produces a CoverageReport.
// An Engine must not be used for two analyses concurrently.
type Engine struct {
	doc      domain.Document
	log      *slog.Logger
	progress ProgressFunc
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for extraction-fault warnings.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) { e.log = log }
}

// WithProgress sets the progress notification callback.
func WithProgress(fn ProgressFunc) Option {
	return func(e *Engine) { e.progress = fn }
}

// New creates an analysis engine over the given document.
func New(doc domain.Document, opts ...Option) *Engine {
	e := &Engine{doc: doc, log: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Analyze walks the subtree under root in pre-order, left to right, and
// returns the final report. Selection faults (nil root, unknown root kind)
// reject the request before any traversal. An abandoned walk returns the
// context error and no partial report.
func (e *Engine) Analyze(ctx context.Context, root domain.Node, cfg domain.EngineConfig) (*domain.CoverageReport, error) {
	if root == nil {
		return nil, fmt.Errorf("no analysis root selected")
	}
	if !domain.IsKnownKind(root.Kind()) {
		return nil, fmt.Errorf("node %q of unknown kind %s cannot be an analysis root", root.Name(), root.Kind())
	}

	effectStyles, err := e.doc.EffectStyles(ctx)
	if err != nil {
		e.log.Warn("effect style lookup unavailable", "err", err)
		effectStyles = nil
	}

	w := &walk{
		engine:       e,
		cfg:          cfg,
		effectStyles: effectStyles,
		agg:          newAggregator(),
	}
	if err := w.visit(ctx, root, nil); err != nil {
		return nil, err
	}

	return w.agg.finalize(root.Name(), cfg), nil
}

// walk carries the mutable state of one traversal.
type walk struct {
	engine       *Engine
	cfg          domain.EngineConfig
	effectStyles map[string]string
	agg          *aggregator
	visited      int
}

func (w *walk) visit(ctx context.Context, node domain.Node, path []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	w.visited++
	if !w.cfg.IgnoresKind(node.Kind()) {
		w.evaluate(ctx, node, path)
	}
	if w.engine.progress != nil && w.visited%progressEvery == 0 {
		w.engine.progress(w.visited)
	}

	childPath := append(append([]string(nil), path...), node.Name())
	for _, child := range node.Children() {
		if err := w.visit(ctx, child, childPath); err != nil {
			return err
		}
	}
	return nil
}

// evaluate runs the extractor and all three evaluators for one node and
// folds the resulting layer report into the aggregate. Host-boundary reads
// happen only inside extract.Snapshot; evaluation itself is synchronous.
// When every rule family is disabled the snapshot is skipped entirely and
// the node counts as vacuously compliant.
func (w *walk) evaluate(ctx context.Context, node domain.Node, path []string) {
	var issues []domain.Issue
	if w.cfg.AnyCheckEnabled() {
		props := extract.Snapshot(ctx, w.engine.doc, node, w.engine.log)
		meta := rules.Meta{ID: node.ID(), Name: node.Name(), Kind: node.Kind()}

		issues = append(issues, rules.EvaluateComponent(meta, props, w.cfg)...)
		issues = append(issues, rules.EvaluateTokens(meta, props, w.cfg)...)
		issues = append(issues, rules.EvaluateStyles(meta, props, w.effectStyles, w.cfg)...)
	}

	report := domain.LayerReport{
		ID:        node.ID(),
		Name:      node.Name(),
		Kind:      node.Kind(),
		Path:      append([]string(nil), path...),
		Issues:    issues,
		Compliant: rules.Compliant(issues),
	}
	w.agg.add(report)
}

package domain

import "context"

// Document provides read-only access to the host-owned node tree.
// The engine never mutates the document during analysis.
type Document interface {
	// Name returns the document's display name.
	Name() string
	// Root returns the document's root node.
	Root(ctx context.Context) (Node, error)
	// NodeByID returns the node with the given id.
	NodeByID(ctx context.Context, id string) (Node, error)
	// ResolveOrigin resolves an instance node's backing component.
	ResolveOrigin(ctx context.Context, instanceID string) (Origin, error)
	// EffectStyles returns the shared effect styles of the document,
	// keyed by the canonical key of each style's effect stack.
	EffectStyles(ctx context.Context) (map[string]string, error)
}

// Node is one element of the host tree. Identity and structure are cheap
// local reads; attribute-group reads cross the host boundary and may fail
// individually.
type Node interface {
	ID() string
	Name() string
	Kind() Kind
	Children() []Node

	Paints(ctx context.Context) (PaintAttrs, error)
	Effects(ctx context.Context) (EffectAttrs, error)
	Geometry(ctx context.Context) (GeometryAttrs, error)
	Layout(ctx context.Context) (LayoutAttrs, error)
	Text(ctx context.Context) (TextAttrs, error)
}

// ConfigLoader reads the engine configuration for a working directory.
type ConfigLoader interface {
	Load(dir string) (EngineConfig, error)
}

// AuditHistory persists audit summaries per working directory.
type AuditHistory interface {
	Save(dir string, entry AuditEntry) error
	Load(dir string) ([]AuditEntry, error)
}

// GitInfo exposes version-control metadata for a directory.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}

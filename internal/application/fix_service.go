package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/fix"
)

// FixService derives bulk-fix candidates for a selection of nodes.
type FixService struct {
	doc domain.Document
	log *slog.Logger
}

func NewFixService(doc domain.Document, log *slog.Logger) *FixService {
	if log == nil {
		log = slog.Default()
	}
	return &FixService{doc: doc, log: log}
}

// Candidates groups fixable attributes across the selection. Each selected
// id contributes its whole subtree; an empty selection means the full
// document. Duplicate coverage (a selected node inside another selected
// subtree) is collapsed.
func (s *FixService) Candidates(ctx context.Context, selectedIDs []string) (fix.Candidates, error) {
	var roots []domain.Node
	if len(selectedIDs) == 0 {
		root, err := s.doc.Root(ctx)
		if err != nil {
			return fix.Candidates{}, fmt.Errorf("resolving document root: %w", err)
		}
		roots = append(roots, root)
	} else {
		for _, id := range selectedIDs {
			node, err := s.doc.NodeByID(ctx, id)
			if err != nil {
				return fix.Candidates{}, fmt.Errorf("resolving selection: %w", err)
			}
			roots = append(roots, node)
		}
	}

	seen := make(map[string]bool)
	var nodes []domain.Node
	for _, root := range roots {
		collect(root, seen, &nodes)
	}

	return fix.Extract(ctx, s.doc, nodes, s.log), nil
}

func collect(node domain.Node, seen map[string]bool, out *[]domain.Node) {
	if seen[node.ID()] {
		return
	}
	seen[node.ID()] = true
	*out = append(*out, node)
	for _, child := range node.Children() {
		collect(child, seen, out)
	}
}

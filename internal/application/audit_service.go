package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/designlint/designlint/internal/domain"
	"github.com/designlint/designlint/internal/domain/audit"
)

// AuditService orchestrates the audit pipeline:
// load config -> resolve root -> walk tree -> aggregate -> report.
type AuditService struct {
	doc          domain.Document
	configLoader domain.ConfigLoader
	log          *slog.Logger
	progress     audit.ProgressFunc
}

func NewAuditService(doc domain.Document, configLoader domain.ConfigLoader, log *slog.Logger, progress audit.ProgressFunc) *AuditService {
	if log == nil {
		log = slog.Default()
	}
	return &AuditService{
		doc:          doc,
		configLoader: configLoader,
		log:          log,
		progress:     progress,
	}
}

// Audit analyzes the document, or the subtree under nodeID when non-empty.
// Config is loaded from workDir.
func (s *AuditService) Audit(ctx context.Context, workDir, nodeID string) (*domain.CoverageReport, error) {
	cfg, err := s.configLoader.Load(workDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	root, err := s.resolveRoot(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("resolving analysis root: %w", err)
	}

	engine := audit.New(s.doc, audit.WithLogger(s.log), audit.WithProgress(s.progress))
	report, err := engine.Analyze(ctx, root, cfg)
	if err != nil {
		return nil, fmt.Errorf("analyzing %q: %w", root.Name(), err)
	}
	return report, nil
}

func (s *AuditService) resolveRoot(ctx context.Context, nodeID string) (domain.Node, error) {
	if nodeID == "" {
		return s.doc.Root(ctx)
	}
	return s.doc.NodeByID(ctx, nodeID)
}

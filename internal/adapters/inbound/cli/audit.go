package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	configadapter "github.com/designlint/designlint/internal/adapters/outbound/config"
	"github.com/designlint/designlint/internal/adapters/outbound/figmadoc"
	"github.com/designlint/designlint/internal/adapters/outbound/gitinfo"
	"github.com/designlint/designlint/internal/adapters/outbound/history"
	"github.com/designlint/designlint/internal/adapters/outbound/tui"
	"github.com/designlint/designlint/internal/application"
	"github.com/designlint/designlint/internal/domain"
)

func newAuditCmd() *cobra.Command {
	var (
		jsonOutput  bool
		nodeID      string
		ciMode      bool
		minScore    int
		showHistory bool
	)

	cmd := &cobra.Command{
		Use:   "audit <document.json>",
		Short: "Audit a design document export",
		Long:  "Walk the document's layer tree, evaluate component reuse, token bindings, and shared-style usage, and report a weighted compliance score.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			workDir := filepath.Dir(docPath)

			doc, err := figmadoc.Load(docPath)
			if err != nil {
				return fmt.Errorf("loading document: %w", err)
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))

			var progress func(int)
			if !jsonOutput {
				cyan := color.New(color.FgCyan)
				progress = func(visited int) {
					cyan.Fprintf(cmd.ErrOrStderr(), "\rscanning… %d layers", visited)
				}
			}

			svc := application.NewAuditService(doc, configadapter.New(), log, progress)
			report, err := svc.Audit(cmd.Context(), workDir, nodeID)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}
			if progress != nil {
				fmt.Fprint(cmd.ErrOrStderr(), "\r"+strings.Repeat(" ", 40)+"\r")
			}

			// Save to history, best-effort. The commit hash ties the entry
			// to the document revision when the export lives in a repo.
			entry := domain.AuditEntry{
				Timestamp:       time.Now().Format(time.RFC3339),
				Document:        doc.Name(),
				OverallScore:    report.Summary.OverallScore,
				TotalLayers:     report.Summary.TotalLayers,
				CompliantLayers: report.Summary.CompliantLayers,
			}
			gi := gitinfo.New()
			if hash, err := gi.CommitHash(workDir); err == nil {
				entry.CommitHash = hash
			}
			hist := history.New()
			_ = hist.Save(workDir, entry)

			if showHistory {
				entries, err := hist.Load(workDir)
				if err != nil {
					return fmt.Errorf("loading history: %w", err)
				}
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
				return nil
			}

			if jsonOutput {
				if err := renderJSON(cmd, report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderReport(report))
			}

			if ciMode && report.Summary.OverallScore < minScore {
				return fmt.Errorf("score %d is below minimum %d", report.Summary.OverallScore, minScore)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output report as JSON")
	cmd.Flags().StringVar(&nodeID, "node", "", "Audit only the subtree under this node id")
	cmd.Flags().BoolVar(&ciMode, "ci", false, "CI mode: exit 1 if below --min")
	cmd.Flags().IntVar(&minScore, "min", 0, "Minimum score for CI mode")
	cmd.Flags().BoolVar(&showHistory, "history", false, "Show audit history")

	return cmd
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/designlint/designlint/internal/adapters/outbound/figmadoc"
	"github.com/designlint/designlint/internal/adapters/outbound/tui"
	"github.com/designlint/designlint/internal/application"
)

func newFixesCmd() *cobra.Command {
	var (
		jsonOutput bool
		ids        []string
	)

	cmd := &cobra.Command{
		Use:   "fixes <document.json>",
		Short: "List bulk-fix candidates",
		Long:  "Group identical unbound colors, spacing values, and effect stacks across the selection so remediation can create one variable or style per distinct value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			docPath, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			doc, err := figmadoc.Load(docPath)
			if err != nil {
				return fmt.Errorf("loading document: %w", err)
			}

			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelWarn}))
			svc := application.NewFixService(doc, log)

			candidates, err := svc.Candidates(cmd.Context(), ids)
			if err != nil {
				return fmt.Errorf("extracting fix candidates: %w", err)
			}

			if jsonOutput {
				return renderJSON(cmd, candidates)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderCandidates(candidates))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output candidates as JSON")
	cmd.Flags().StringSliceVar(&ids, "ids", nil, "Selected node ids (default: whole document)")

	return cmd
}

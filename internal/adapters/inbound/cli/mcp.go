package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/designlint/designlint/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the designlint MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var documentPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start designlint MCP server (stdio)",
		Long:  "Start the designlint MCP server using stdio transport. This allows AI assistants to audit the document and query fix candidates.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcpadapter.NewDesignlintMCPServer(documentPath)
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&documentPath, "document", "", "Path to the design document export")
	_ = cmd.MarkFlagRequired("document")

	return cmd
}

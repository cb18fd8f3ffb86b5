package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configadapter "github.com/designlint/designlint/internal/adapters/outbound/config"
	"github.com/designlint/designlint/internal/adapters/outbound/figmadoc"
	"github.com/designlint/designlint/internal/adapters/outbound/history"
	"github.com/designlint/designlint/internal/application"
)

// registerTools registers all designlint MCP tools on the given server.
func registerTools(s *server.MCPServer, documentPath string) {
	s.AddTool(
		mcplib.NewTool("designlint_audit",
			mcplib.WithDescription("Audit the design document for design-system compliance and return the full coverage report as JSON"),
			mcplib.WithString("node",
				mcplib.Description("Audit only the subtree under this node id"),
			),
		),
		handleAudit(documentPath),
	)

	s.AddTool(
		mcplib.NewTool("designlint_fix_candidates",
			mcplib.WithDescription("Group identical unbound colors, spacing values, and effect stacks into bulk-fix candidates"),
			mcplib.WithString("ids",
				mcplib.Description("Comma-separated selected node ids (default: whole document)"),
			),
		),
		handleFixCandidates(documentPath),
	)

	s.AddTool(
		mcplib.NewTool("designlint_history",
			mcplib.WithDescription("Return saved audit history entries for the document's directory"),
		),
		handleHistory(documentPath),
	)
}

func handleAudit(documentPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, err := figmadoc.Load(documentPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading document: %v", err)), nil
		}

		nodeID, _ := request.GetArguments()["node"].(string)
		svc := application.NewAuditService(doc, configadapter.New(), slog.Default(), nil)
		report, err := svc.Audit(ctx, filepath.Dir(documentPath), nodeID)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleFixCandidates(documentPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		doc, err := figmadoc.Load(documentPath)
		if err != nil {
			return errorResult(fmt.Sprintf("loading document: %v", err)), nil
		}

		var ids []string
		if raw, _ := request.GetArguments()["ids"].(string); raw != "" {
			for _, id := range strings.Split(raw, ",") {
				if id = strings.TrimSpace(id); id != "" {
					ids = append(ids, id)
				}
			}
		}

		svc := application.NewFixService(doc, slog.Default())
		candidates, err := svc.Candidates(ctx, ids)
		if err != nil {
			return errorResult(fmt.Sprintf("extracting fix candidates: %v", err)), nil
		}
		return jsonResult(candidates)
	}
}

func handleHistory(documentPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		entries, err := history.New().Load(filepath.Dir(documentPath))
		if err != nil {
			return errorResult(fmt.Sprintf("loading history: %v", err)), nil
		}
		return jsonResult(entries)
	}
}

// jsonResult marshals v and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}

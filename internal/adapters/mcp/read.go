package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"regstub/internal/application/commands"
	"regstub/internal/domain"
	"regstub/internal/ports"
)

// RegisterReadTools adds the read-only regstub tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, api ports.RegulationAPI, store ports.StubStore, index ports.FetchIndex) {
	s.AddTool(listPathsTool(), listPathsHandler(api))
	s.AddTool(readDocumentTool(), readDocumentHandler(store))
	s.AddTool(manifestTool(), manifestHandler(index))
}

// --- list_paths ---

func listPathsTool() mcp.Tool {
	return mcp.NewTool("list_paths",
		mcp.WithDescription("Enumerate every document path belonging to a regulation (regulation versions, notices, layers, diffs) without fetching any of them."),
		mcp.WithString("regulation",
			mcp.Description("Regulation part number (e.g. 1026)"),
			mcp.Required(),
		),
	)
}

func listPathsHandler(api ports.RegulationAPI) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		regulation := req.GetString("regulation", "")

		cmd := commands.NewListPathsCommand(api, regulation)
		if err := cmd.Validate(); err != nil {
			return toolError(err)
		}

		paths, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		if len(paths) == 0 {
			return mcp.NewToolResultText("No paths."), nil
		}

		var sb strings.Builder
		for _, p := range paths {
			sb.WriteString(p.Path)
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- read_document ---

func readDocumentTool() mcp.Tool {
	return mcp.NewTool("read_document",
		mcp.WithDescription("Read a mirrored JSON document from the stub tree."),
		mcp.WithString("path",
			mcp.Description("Document path relative to the stub base (e.g. notice/2013-10604)"),
			mcp.Required(),
		),
	)
}

func readDocumentHandler(store ports.StubStore) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}

		data, err := store.ReadDocument(path)
		if err != nil {
			return toolError(err)
		}
		return mcp.NewToolResultText(string(data)), nil
	}
}

// --- manifest ---

func manifestTool() mcp.Tool {
	return mcp.NewTool("manifest",
		mcp.WithDescription("List recent fetch attempts recorded in the manifest, newest first."),
		mcp.WithString("regulation",
			mcp.Description("Only show records for this regulation part. Omit for all."),
		),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of records (default 50)"),
		),
	)
}

func manifestHandler(index ports.FetchIndex) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		regulation := req.GetString("regulation", "")
		limit := req.GetInt("limit", 50)

		var (
			records []domain.FetchRecord
			err     error
		)
		if regulation != "" {
			records, err = index.ByRegulation(regulation, limit)
		} else {
			records, err = index.Recent(limit)
		}
		if err != nil {
			return toolError(err)
		}

		if len(records) == 0 {
			return mcp.NewToolResultText("No records."), nil
		}

		var sb strings.Builder
		for _, rec := range records {
			sb.WriteString(formatRecord(rec))
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func formatRecord(rec domain.FetchRecord) string {
	line := fmt.Sprintf("%-6s  %8d  %s  %s",
		rec.Status, rec.Bytes, rec.FetchedAt.Format("2006-01-02 15:04:05"), rec.Path)
	if rec.Detail != "" {
		line += "  (" + rec.Detail + ")"
	}
	return line
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}

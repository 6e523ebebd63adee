package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"regstub/internal/application/commands"
	"regstub/internal/ports"
)

// RegisterFetchTools adds the mirroring tools to the MCP server.
func RegisterFetchTools(s *server.MCPServer, api ports.RegulationAPI, store ports.StubStore, index ports.FetchIndex, logger *zap.Logger) {
	s.AddTool(fetchRegulationTool(), fetchRegulationHandler(api, store, index, logger))
}

func fetchRegulationTool() mcp.Tool {
	return mcp.NewTool("fetch_regulation",
		mcp.WithDescription("Mirror every document of a regulation into the stub tree. Fetches sequentially; failed paths are skipped and reported."),
		mcp.WithString("regulation",
			mcp.Description("Regulation part number (e.g. 1026)"),
			mcp.Required(),
		),
	)
}

func fetchRegulationHandler(api ports.RegulationAPI, store ports.StubStore, index ports.FetchIndex, logger *zap.Logger) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		regulation := req.GetString("regulation", "")

		cmd := commands.NewFetchRegulationCommand(api, store, index, logger, regulation)
		if err := cmd.Validate(); err != nil {
			return toolError(err)
		}

		results, err := cmd.Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		fetched, failed := 0, 0
		var sb strings.Builder
		for _, r := range results {
			if r.Err != nil {
				failed++
				fmt.Fprintf(&sb, "failed  %s: %v\n", r.Path.Path, r.Err)
				continue
			}
			fetched++
		}

		summary := fmt.Sprintf("Fetched %d of %d documents into %s.", fetched, len(results), store.Root())
		if failed > 0 {
			summary += fmt.Sprintf("\n%d failed:\n%s", failed, sb.String())
		}
		return mcp.NewToolResultText(summary), nil
	}
}

package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	mcpadapter "regstub/internal/adapters/mcp"
	"regstub/internal/adapters/regcore"
	"regstub/internal/adapters/sqlite"
	"regstub/internal/adapters/stub"
	"regstub/internal/config"
)

func main() {
	cfg := config.Load()
	apiFlag := flag.String("api-base", cfg.APIBase, "the regulations-core API URL")
	stubFlag := flag.String("stub-base", cfg.StubBase, "the base filesystem path for regulations JSON")
	flag.Parse()

	api, err := regcore.NewClient(*apiFlag)
	if err != nil {
		log.Fatalf("regstub-mcp: %v", err)
	}
	store := stub.NewStore(*stubFlag)

	manifest := sqlite.NewManifest()
	if err := manifest.Open(store.Root()); err != nil {
		log.Fatalf("regstub-mcp: %v", err)
	}
	defer manifest.Close()

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("regstub-mcp: %v", err)
	}
	defer logger.Sync()

	mcpServer := server.NewMCPServer(
		"regstub-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check, returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterReadTools(mcpServer, api, store, manifest)
	mcpadapter.RegisterFetchTools(mcpServer, api, store, manifest, logger)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("regstub-mcp: %v", err)
	}
}

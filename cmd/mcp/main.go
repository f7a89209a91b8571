// The mcp command exposes the document extraction and metric detection
// pipeline as Model Context Protocol tools over stdio.
package main

import (
	"context"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/akolanti/FinDocAPI/internal/mcptool"
	"github.com/akolanti/FinDocAPI/pkg/logger_i"
)

func main() {
	logger_i.Init()
	logger := logger_i.NewLogger("mcp")

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "findoc-mcp",
		Version: "1.0.0",
	}, nil)

	mcp.AddTool(server, mcptool.MetadataExtractFinancialDocument, mcptool.ExtractFinancialDocument)
	mcp.AddTool(server, mcptool.MetadataDetectFinancialMetrics, mcptool.DetectFinancialMetrics)

	logger.Info("MCP server listening on stdio")
	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		logger.Error("MCP server stopped", "error", err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/legal-search/internal/pipeline"
)

type analyzeToolInput struct {
	ContractText string `json:"contract_text" jsonschema:"The full text of the legal contract to analyze"`
}

type statusToolInput struct{}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Model Context Protocol server on stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		gateway, err := initGateway()
		if err != nil {
			return err
		}
		p := pipeline.New(gateway)

		server := mcp.NewServer(&mcp.Implementation{
			Name:    "legal-search",
			Version: "1.0.0",
		}, nil)

		mcp.AddTool(server, &mcp.Tool{
			Name:        "analyze_legal_contract",
			Description: "Analyze a legal contract and search for similar documents. Extracts contract type, parties, location, jurisdiction, and key terms, then finds similar contracts based on the analysis.",
		}, func(ctx context.Context, req *mcp.CallToolRequest, input analyzeToolInput) (*mcp.CallToolResult, any, error) {
			result, err := p.AnalyzeAndSearch(ctx, input.ContractText)
			if err != nil {
				// Gateway failures surface as a structured error payload, not
				// a protocol fault.
				payload, _ := json.Marshal(map[string]string{"error": err.Error()})
				return &mcp.CallToolResult{
					IsError: true,
					Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
				}, nil, nil
			}

			payload, err := json.Marshal(result)
			if err != nil {
				return nil, nil, eris.Wrap(err, "mcp: marshal result")
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
			}, nil, nil
		})

		mcp.AddTool(server, &mcp.Tool{
			Name:        "server_status",
			Description: "Check if the legal contract search server is running.",
		}, func(ctx context.Context, req *mcp.CallToolRequest, input statusToolInput) (*mcp.CallToolResult, any, error) {
			payload, err := json.Marshal(p.Status())
			if err != nil {
				return nil, nil, eris.Wrap(err, "mcp: marshal status")
			}
			return &mcp.CallToolResult{
				Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
			}, nil, nil
		})

		zap.L().Info("starting MCP server on stdio")
		return server.Run(cmd.Context(), &mcp.StdioTransport{})
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

// Package mcptools exposes the season reports as MCP tools.
package mcptools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/omarshaarawi/sleeperstats/internal/models"
)

// Reports is the service surface the tools read from.
type Reports interface {
	MatchupReport(ctx context.Context) (models.MatchupReport, error)
	TradeReport(ctx context.Context) (models.TradeReport, error)
	WaiverReport(ctx context.Context) (models.WaiverReport, error)
	PlayerLookup(ctx context.Context, name string) (models.PlayerSeason, error)
}

type NoArgs struct{}

type PlayerArgs struct {
	Name string `json:"name" jsonschema:"Player name, fuzzy matched (required)"`
}

type tools struct {
	reports Reports
}

func NewServer(reports Reports, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "sleeperstats",
			Version: version,
		},
		nil,
	)
	Register(server, reports)
	return server
}

func Register(server *mcp.Server, reports Reports) {
	t := &tools{reports: reports}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "matchup_report",
		Description: "Season points by position, leaders, peak starters and close losses",
	}, t.matchupReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "trade_report",
		Description: "Trades per user by position, most traded and dropped players, bean ledgers",
	}, t.tradeReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "waiver_report",
		Description: "Waiver claims per user by position with total bids",
	}, t.waiverReport)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "player_lookup",
		Description: "Season line for a player: starts, best game, donuts and current roster",
	}, t.playerLookup)
}

func (t *tools) matchupReport(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(t.reports.MatchupReport(ctx))
}

func (t *tools) tradeReport(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(t.reports.TradeReport(ctx))
}

func (t *tools) waiverReport(ctx context.Context, req *mcp.CallToolRequest, args NoArgs) (*mcp.CallToolResult, any, error) {
	return toolJSON(t.reports.WaiverReport(ctx))
}

func (t *tools) playerLookup(ctx context.Context, req *mcp.CallToolRequest, args PlayerArgs) (*mcp.CallToolResult, any, error) {
	if strings.TrimSpace(args.Name) == "" {
		return toolError(fmt.Errorf("name is required")), nil, nil
	}
	return toolJSON(t.reports.PlayerLookup(ctx, args.Name))
}

func toolJSON(v any, err error) (*mcp.CallToolResult, any, error) {
	if err != nil {
		return toolError(err), nil, nil
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return toolError(err), nil, nil
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(b)},
		},
	}, nil, nil
}

func toolError(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{
			&mcp.TextContent{Text: fmt.Sprintf("error: %v", err)},
		},
	}
}

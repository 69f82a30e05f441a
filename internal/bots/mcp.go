package bots

import (
	"context"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

// MCP Tool wrapper methods
// These validate tool input, then delegate to the client methods.

// ListBotsMCP is the MCP wrapper for ListBots
func (a *API) ListBotsMCP(ctx context.Context, _ ListBotsArgs) (ListBotsResult, error) {
	resp, err := a.ListBots(ctx)
	if err != nil {
		return ListBotsResult{}, err
	}
	return ListBotsResult{Bots: resp}, nil
}

// GetBotStatusMCP is the MCP wrapper for GetBotStatus
func (a *API) GetBotStatusMCP(ctx context.Context, args BotIDArgs) (BotStatusResult, error) {
	return a.botCall(ctx, args, a.GetBotStatus)
}

// StartBotMCP is the MCP wrapper for StartBot
func (a *API) StartBotMCP(ctx context.Context, args BotIDArgs) (BotStatusResult, error) {
	return a.botCall(ctx, args, a.StartBot)
}

// StopBotMCP is the MCP wrapper for StopBot
func (a *API) StopBotMCP(ctx context.Context, args BotIDArgs) (BotStatusResult, error) {
	return a.botCall(ctx, args, a.StopBot)
}

func (a *API) botCall(ctx context.Context, args BotIDArgs, call func(context.Context, int) (base.Response, error)) (BotStatusResult, error) {
	if err := base.ValidateID("bot_id", args.BotID); err != nil {
		return BotStatusResult{}, err
	}
	resp, err := call(ctx, args.BotID)
	if err != nil {
		return BotStatusResult{}, err
	}
	return BotStatusResult{BotID: args.BotID, Status: resp}, nil
}

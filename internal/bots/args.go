package bots

import "github.com/olgasafonova/lowcodeapi-go/internal/base"

// ListBotsArgs takes no parameters
type ListBotsArgs struct{}

// ListBotsResult wraps the bot listing
type ListBotsResult struct {
	Bots base.Response `json:"bots"`
}

// BotIDArgs identifies a single bot
type BotIDArgs struct {
	BotID int `json:"bot_id" jsonschema:"Numeric ID of the bot"`
}

// BotStatusResult is the result of status, start and stop calls
type BotStatusResult struct {
	BotID  int           `json:"bot_id"`
	Status base.Response `json:"status"`
}

package user

import "github.com/olgasafonova/lowcodeapi-go/internal/base"

// GetInfoArgs takes no parameters
type GetInfoArgs struct{}

// GetInfoResult wraps the user profile
type GetInfoResult struct {
	User base.Response `json:"user"`
}

package visualeditor

import "github.com/olgasafonova/lowcodeapi-go/internal/base"

// ListComponentsArgs takes no parameters
type ListComponentsArgs struct{}

// ListComponentsResult wraps the editor component catalogue
type ListComponentsResult struct {
	Components base.Response `json:"components"`
}

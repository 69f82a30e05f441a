package media

import "github.com/olgasafonova/lowcodeapi-go/internal/base"

// ListMediaArgs takes no parameters
type ListMediaArgs struct{}

// ListMediaResult wraps the media library listing
type ListMediaResult struct {
	Media base.Response `json:"media"`
}

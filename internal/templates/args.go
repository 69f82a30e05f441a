package templates

import "github.com/olgasafonova/lowcodeapi-go/internal/base"

// ListTemplatesArgs takes no parameters
type ListTemplatesArgs struct{}

// ListTemplatesResult wraps the template catalogue
type ListTemplatesResult struct {
	Templates base.Response `json:"templates"`
}

// GetTemplateArgs identifies a template
type GetTemplateArgs struct {
	TemplateID int `json:"template_id" jsonschema:"Numeric ID of the template"`
}

// GetTemplateResult wraps a single template
type GetTemplateResult struct {
	Template base.Response `json:"template"`
}

// ApplyTemplateArgs names the template and the bot it is applied to
type ApplyTemplateArgs struct {
	TemplateID int `json:"template_id" jsonschema:"Numeric ID of the template to apply"`
	BotID      int `json:"bot_id" jsonschema:"Numeric ID of the bot that receives the template"`
}

// ApplyTemplateResult is the API acknowledgement of an apply call
type ApplyTemplateResult struct {
	TemplateID int           `json:"template_id"`
	BotID      int           `json:"bot_id"`
	Result     base.Response `json:"result"`
}

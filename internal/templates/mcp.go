package templates

import (
	"context"

	"github.com/olgasafonova/lowcodeapi-go/internal/base"
)

// ListTemplatesMCP is the MCP wrapper for ListTemplates
func (a *API) ListTemplatesMCP(ctx context.Context, _ ListTemplatesArgs) (ListTemplatesResult, error) {
	resp, err := a.ListTemplates(ctx)
	if err != nil {
		return ListTemplatesResult{}, err
	}
	return ListTemplatesResult{Templates: resp}, nil
}

// GetTemplateMCP is the MCP wrapper for GetTemplate
func (a *API) GetTemplateMCP(ctx context.Context, args GetTemplateArgs) (GetTemplateResult, error) {
	if err := base.ValidateID("template_id", args.TemplateID); err != nil {
		return GetTemplateResult{}, err
	}
	resp, err := a.GetTemplate(ctx, args.TemplateID)
	if err != nil {
		return GetTemplateResult{}, err
	}
	return GetTemplateResult{Template: resp}, nil
}

// ApplyTemplateMCP is the MCP wrapper for ApplyTemplate
func (a *API) ApplyTemplateMCP(ctx context.Context, args ApplyTemplateArgs) (ApplyTemplateResult, error) {
	if err := base.ValidateID("template_id", args.TemplateID); err != nil {
		return ApplyTemplateResult{}, err
	}
	if err := base.ValidateID("bot_id", args.BotID); err != nil {
		return ApplyTemplateResult{}, err
	}
	resp, err := a.ApplyTemplate(ctx, args.TemplateID, args.BotID)
	if err != nil {
		return ApplyTemplateResult{}, err
	}
	return ApplyTemplateResult{TemplateID: args.TemplateID, BotID: args.BotID, Result: resp}, nil
}

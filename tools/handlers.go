package tools

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.opentelemetry.io/otel/attribute"

	lowcode "github.com/olgasafonova/lowcodeapi-go"
	"github.com/olgasafonova/lowcodeapi-go/internal/admin"
	"github.com/olgasafonova/lowcodeapi-go/internal/bots"
	"github.com/olgasafonova/lowcodeapi-go/internal/media"
	"github.com/olgasafonova/lowcodeapi-go/internal/system"
	"github.com/olgasafonova/lowcodeapi-go/internal/templates"
	"github.com/olgasafonova/lowcodeapi-go/internal/user"
	"github.com/olgasafonova/lowcodeapi-go/internal/visualeditor"
	"github.com/olgasafonova/lowcodeapi-go/metrics"
	"github.com/olgasafonova/lowcodeapi-go/tracing"
)

// HandlerRegistry binds tool specs to the modules of one LowCode client.
type HandlerRegistry struct {
	client *lowcode.Client
	logger *slog.Logger
}

// NewHandlerRegistry creates a new handler registry.
func NewHandlerRegistry(client *lowcode.Client, logger *slog.Logger) *HandlerRegistry {
	return &HandlerRegistry{
		client: client,
		logger: logger,
	}
}

// RegisterAll registers all tools with the MCP server and returns how many were registered.
func (h *HandlerRegistry) RegisterAll(server *mcp.Server) int {
	count := 0
	for _, spec := range AllTools {
		if h.registerByName(server, spec) {
			count++
		}
	}
	h.logger.Info("Registered tools", "count", count, "defined", len(AllTools))
	return count
}

// registerByName dispatches to the correct typed registration.
func (h *HandlerRegistry) registerByName(server *mcp.Server, spec ToolSpec) bool {
	tool := h.buildTool(spec)

	switch spec.Method {
	case "HealthCheck":
		register(h, server, tool, spec, h.client.System().HealthCheckMCP)
	case "GetVersion":
		register(h, server, tool, spec, h.client.System().GetVersionMCP)
	case "GetInfo":
		register(h, server, tool, spec, h.client.User().GetInfoMCP)
	case "ListBots":
		register(h, server, tool, spec, h.client.Bots().ListBotsMCP)
	case "GetBotStatus":
		register(h, server, tool, spec, h.client.Bots().GetBotStatusMCP)
	case "StartBot":
		register(h, server, tool, spec, h.client.Bots().StartBotMCP)
	case "StopBot":
		register(h, server, tool, spec, h.client.Bots().StopBotMCP)
	case "ListTemplates":
		register(h, server, tool, spec, h.client.Templates().ListTemplatesMCP)
	case "GetTemplate":
		register(h, server, tool, spec, h.client.Templates().GetTemplateMCP)
	case "ApplyTemplate":
		register(h, server, tool, spec, h.client.Templates().ApplyTemplateMCP)
	case "ListMedia":
		register(h, server, tool, spec, h.client.Media().ListMediaMCP)
	case "ListComponents":
		register(h, server, tool, spec, h.client.VisualEditor().ListComponentsMCP)
	case "GetStatistics":
		register(h, server, tool, spec, h.client.Admin().GetStatisticsMCP)
	default:
		h.logger.Error("Unknown method, tool not registered", "method", spec.Method, "tool", spec.Name)
		return false
	}
	return true
}

// buildTool creates an mcp.Tool from a ToolSpec.
func (h *HandlerRegistry) buildTool(spec ToolSpec) *mcp.Tool {
	annotations := &mcp.ToolAnnotations{
		Title:          spec.Title,
		ReadOnlyHint:   spec.ReadOnly,
		IdempotentHint: spec.Idempotent,
	}
	if spec.Destructive {
		annotations.DestructiveHint = ptr(true)
	} else if !spec.ReadOnly {
		annotations.DestructiveHint = ptr(false)
	}
	if spec.OpenWorld {
		annotations.OpenWorldHint = ptr(true)
	}

	return &mcp.Tool{
		Name:        spec.Name,
		Description: spec.Description,
		Annotations: annotations,
	}
}

// register adds a tool to the MCP server, wrapping the module method with
// panic recovery, metrics, tracing, and logging.
func register[Args, Result any](
	h *HandlerRegistry,
	server *mcp.Server,
	tool *mcp.Tool,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) {
	mcp.AddTool(server, tool, wrap(h, spec, method))
}

// wrap builds the typed MCP handler for method.
func wrap[Args, Result any](
	h *HandlerRegistry,
	spec ToolSpec,
	method func(context.Context, Args) (Result, error),
) mcp.ToolHandlerFor[Args, Result] {
	return func(ctx context.Context, req *mcp.CallToolRequest, args Args) (_ *mcp.CallToolResult, result Result, err error) {
		defer h.recoverPanic(spec.Name, &err)

		ctx, span := tracing.StartToolSpan(ctx, spec.Name, spec.Category, spec.Module, spec.ReadOnly)
		defer span.End()

		metrics.ToolsInFlight.WithLabelValues(spec.Name).Inc()
		defer metrics.ToolsInFlight.WithLabelValues(spec.Name).Dec()

		start := time.Now()
		result, err = method(ctx, args)
		duration := time.Since(start).Seconds()

		span.SetAttributes(attribute.Float64("mcp.tool.duration_seconds", duration))

		tracing.Finish(span, err)
		if err != nil {
			metrics.RecordToolCall(spec.Name, duration, false)
			h.logger.Warn("Tool failed", "tool", spec.Name, "module", spec.Module, "error", err)
			var zero Result
			return nil, zero, fmt.Errorf("%s failed: %w", spec.Name, err)
		}

		metrics.RecordToolCall(spec.Name, duration, true)
		h.logExecution(spec, args, result)
		return nil, result, nil
	}
}

// recoverPanic recovers from panics in tool handlers and turns them into errors.
func (h *HandlerRegistry) recoverPanic(toolName string, errp *error) {
	if rec := recover(); rec != nil {
		metrics.PanicsRecovered.WithLabelValues(toolName).Inc()
		h.logger.Error("Panic recovered",
			"tool", toolName,
			"panic", rec,
			"stack", string(debug.Stack()))
		if errp != nil {
			*errp = fmt.Errorf("%s failed: internal error", toolName)
		}
	}
}

// logExecution logs tool execution details.
func (h *HandlerRegistry) logExecution(spec ToolSpec, args, result any) {
	attrs := []any{"tool", spec.Name, "module", spec.Module}

	switch a := args.(type) {
	case bots.BotIDArgs:
		attrs = append(attrs, "bot_id", a.BotID)
	case templates.GetTemplateArgs:
		attrs = append(attrs, "template_id", a.TemplateID)
	case templates.ApplyTemplateArgs:
		attrs = append(attrs, "template_id", a.TemplateID, "bot_id", a.BotID)
	}

	switch r := result.(type) {
	case system.HealthCheckResult:
		attrs = append(attrs, "fields", len(r.Health))
	case system.GetVersionResult:
		attrs = append(attrs, "fields", len(r.Version))
	case user.GetInfoResult:
		attrs = append(attrs, "fields", len(r.User))
	case bots.ListBotsResult:
		attrs = append(attrs, "fields", len(r.Bots))
	case bots.BotStatusResult:
		attrs = append(attrs, "fields", len(r.Status))
	case templates.ListTemplatesResult:
		attrs = append(attrs, "fields", len(r.Templates))
	case media.ListMediaResult:
		attrs = append(attrs, "fields", len(r.Media))
	case visualeditor.ListComponentsResult:
		attrs = append(attrs, "fields", len(r.Components))
	case admin.GetStatisticsResult:
		attrs = append(attrs, "fields", len(r.Statistics))
	}

	h.logger.Info("Tool executed", attrs...)
}

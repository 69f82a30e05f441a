// Package tools provides a metadata-driven registry for MCP tool definitions.
// Tools are defined declaratively in AllTools and bound to LowCode API module
// methods with type-safe handlers.
package tools

// ToolSpec defines a tool's metadata for declarative registration.
// Each spec maps to an MCP wrapper method with matching Args/Result types.
type ToolSpec struct {
	// Name is the MCP tool name (e.g., "lowcode_get_bot_status")
	Name string

	// Method is the wrapper method name without the MCP suffix (e.g., "GetBotStatus")
	Method string

	// Description is the tool description shown to LLMs
	Description string

	// Title is the human-readable tool title for annotations
	Title string

	// Category groups tools logically (read, lifecycle, write)
	Category string

	// Module is the API module the tool calls (bots, templates, ...)
	Module string

	// ReadOnly indicates the tool doesn't modify API state
	ReadOnly bool

	// Destructive indicates the tool can delete or overwrite data
	Destructive bool

	// Idempotent indicates repeated calls have the same effect
	Idempotent bool

	// OpenWorld indicates the tool accesses external resources
	OpenWorld bool
}

// ToolsByModule returns the specs that call the given API module
func ToolsByModule(module string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Module == module {
			out = append(out, spec)
		}
	}
	return out
}

// ToolsByCategory returns the specs in the given category
func ToolsByCategory(category string) []ToolSpec {
	var out []ToolSpec
	for _, spec := range AllTools {
		if spec.Category == category {
			out = append(out, spec)
		}
	}
	return out
}

// ptr is a helper to create a pointer to a value.
func ptr[T any](v T) *T {
	return &v
}

package tools

// AllTools contains all tool specifications for the LowCode MCP server.
// Tool descriptions follow a structured format for LLM tool selection:
// - USE WHEN: Natural language triggers
// - NOT FOR: Disambiguation from similar tools
// - PARAMETERS: Key arguments
// - RETURNS: What the tool returns
var AllTools = []ToolSpec{
	// ==========================================================================
	// SYSTEM
	// ==========================================================================
	{
		Name:     "lowcode_health_check",
		Method:   "HealthCheck",
		Title:    "API Health Check",
		Category: "read",
		Module:   "system",
		Description: `Check whether the LowCode API is reachable and healthy.

USE WHEN: User asks "is LowCode up", "is the API working", or a previous tool failed with a network error.

NOT FOR: Checking a single bot (use lowcode_get_bot_status).

RETURNS: The health report from the API.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "lowcode_get_version",
		Method:   "GetVersion",
		Title:    "API Version",
		Category: "read",
		Module:   "system",
		Description: `Get the version of the LowCode API deployment.

USE WHEN: User asks "which LowCode version is running".

RETURNS: Version information reported by the API.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// USER
	// ==========================================================================
	{
		Name:     "lowcode_get_user_info",
		Method:   "GetInfo",
		Title:    "Current User",
		Category: "read",
		Module:   "user",
		Description: `Get the profile of the account that owns the configured API token.

USE WHEN: User asks "who am I logged in as", "what is my plan", "show my account".

NOT FOR: Looking up other users (admin only, not exposed as a tool).

RETURNS: The user profile.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// BOTS
	// ==========================================================================
	{
		Name:     "lowcode_list_bots",
		Method:   "ListBots",
		Title:    "List Bots",
		Category: "read",
		Module:   "bots",
		Description: `List all bots owned by the account.

USE WHEN: User asks "what bots do I have", "show my bots", or needs a bot ID for another tool.

RETURNS: The bot listing as returned by the API.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "lowcode_get_bot_status",
		Method:   "GetBotStatus",
		Title:    "Bot Status",
		Category: "read",
		Module:   "bots",
		Description: `Get the runtime status of one bot.

USE WHEN: User asks "is bot 123 running", "what state is my bot in".

NOT FOR: Checking the API itself (use lowcode_health_check).

PARAMETERS:
- bot_id: Numeric bot ID (required)

RETURNS: The bot ID and its status report.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "lowcode_start_bot",
		Method:   "StartBot",
		Title:    "Start Bot",
		Category: "lifecycle",
		Module:   "bots",
		Description: `Start a bot so it begins answering users.

USE WHEN: User says "start bot 123", "turn my bot on".

PARAMETERS:
- bot_id: Numeric bot ID (required)

RETURNS: The API acknowledgement with the new status.`,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "lowcode_stop_bot",
		Method:   "StopBot",
		Title:    "Stop Bot",
		Category: "lifecycle",
		Module:   "bots",
		Description: `Stop a running bot.

USE WHEN: User says "stop bot 123", "pause my bot", "take the bot offline".

PARAMETERS:
- bot_id: Numeric bot ID (required)

RETURNS: The API acknowledgement with the new status.`,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// TEMPLATES
	// ==========================================================================
	{
		Name:     "lowcode_list_templates",
		Method:   "ListTemplates",
		Title:    "List Templates",
		Category: "read",
		Module:   "templates",
		Description: `List the bot templates available to the account.

USE WHEN: User asks "what templates are there", "show starter bots".

RETURNS: The template catalogue.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "lowcode_get_template",
		Method:   "GetTemplate",
		Title:    "Get Template",
		Category: "read",
		Module:   "templates",
		Description: `Get one template by ID.

USE WHEN: User wants details of a template before applying it.

PARAMETERS:
- template_id: Numeric template ID (required)

RETURNS: The template definition.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "lowcode_apply_template",
		Method:   "ApplyTemplate",
		Title:    "Apply Template",
		Category: "write",
		Module:   "templates",
		Description: `Apply a template to an existing bot.

USE WHEN: User says "use the FAQ template for bot 123".

NOT FOR: Creating a new bot.

PARAMETERS:
- template_id: Numeric template ID (required)
- bot_id: Numeric bot ID (required)

RETURNS: The API acknowledgement.

NOTE: This overwrites the bot's current flow.`,
		Destructive: true,
		OpenWorld:   true,
	},

	// ==========================================================================
	// MEDIA & VISUAL EDITOR
	// ==========================================================================
	{
		Name:     "lowcode_list_media",
		Method:   "ListMedia",
		Title:    "List Media",
		Category: "read",
		Module:   "media",
		Description: `List files in the account's media library.

USE WHEN: User asks "what images have I uploaded", "show my media".

RETURNS: The media listing.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
	{
		Name:     "lowcode_list_components",
		Method:   "ListComponents",
		Title:    "List Editor Components",
		Category: "read",
		Module:   "visual_editor",
		Description: `List the building blocks available in the visual editor.

USE WHEN: User asks "what blocks can I use", "which components does the editor have".

RETURNS: The component catalogue.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},

	// ==========================================================================
	// ADMIN
	// ==========================================================================
	{
		Name:     "lowcode_get_statistics",
		Method:   "GetStatistics",
		Title:    "Platform Statistics",
		Category: "read",
		Module:   "admin",
		Description: `Get platform-wide usage statistics.

USE WHEN: An administrator asks "how many users", "how many bots are on the platform".

RETURNS: Usage counters. Fails with 403 unless the token has the admin role.`,
		ReadOnly:   true,
		Idempotent: true,
		OpenWorld:  true,
	},
}

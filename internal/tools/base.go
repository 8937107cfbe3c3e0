package tools

// ToolResult is the outcome of a tool execution: a single text block plus
// optional metadata for the response envelope.
type ToolResult struct {
	Text     string                 `json:"text"`
	Metadata map[string]interface{} `json:"metadata,omitempty"`
}

// Text creates a plain text result
func Text(text string) *ToolResult {
	return &ToolResult{Text: text}
}

// TextWithMeta creates a text result carrying metadata
func TextWithMeta(text string, metadata map[string]interface{}) *ToolResult {
	return &ToolResult{Text: text, Metadata: metadata}
}

// BaseTool provides common functionality for tools
type BaseTool struct {
	name        string
	description string
	inputSchema map[string]interface{}
}

// NewBaseTool creates a new base tool
func NewBaseTool(name, description string, inputSchema map[string]interface{}) *BaseTool {
	return &BaseTool{
		name:        name,
		description: description,
		inputSchema: inputSchema,
	}
}

// Name returns the tool name
func (b *BaseTool) Name() string {
	return b.name
}

// Description returns the tool description
func (b *BaseTool) Description() string {
	return b.description
}

// InputSchema returns the input schema
func (b *BaseTool) InputSchema() map[string]interface{} {
	return b.inputSchema
}

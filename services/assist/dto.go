package assist

import (
	"encoding/json"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

// ChatRequest is the proxy's inbound wire format. Field names are a
// published contract with the client; do not rename.
type ChatRequest struct {
	Message string                    `json:"message"`
	Tier    string                    `json:"tier"`
	History []HistoryEntry            `json:"history"`
	Event   *quest.EventConfiguration `json:"event,omitempty"`
}

type HistoryEntry struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ToolCall is one structured patch proposed by the model.
type ToolCall struct {
	Name string          `json:"name"`
	Args json.RawMessage `json:"args"`
}

// ChatResponse is the proxy's outbound wire format.
type ChatResponse struct {
	TextResponse string     `json:"textResponse"`
	ToolCalls    []ToolCall `json:"toolCalls"`
}

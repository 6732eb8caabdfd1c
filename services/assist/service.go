package assist

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/xerrors"
)

// AssistService proxies the client's chat to an OpenAI-compatible
// completion endpoint. One request, one response; no retries, no
// streaming.
type AssistService struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewAssistService(baseURL, apiKey, model string) *AssistService {
	return &AssistService{
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model    string                   `json:"model"`
	Messages []chatMessage            `json:"messages"`
	Tools    []map[string]interface{} `json:"tools,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content   string `json:"content"`
			ToolCalls []struct {
				Function struct {
					Name      string `json:"name"`
					Arguments string `json:"arguments"`
				} `json:"function"`
			} `json:"tool_calls"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *AssistService) Chat(c *gin.Context, request ChatRequest) (*ChatResponse, error) {
	messages := []chatMessage{{Role: "system", Content: s.buildSystemMessage(request)}}
	for _, entry := range request.History {
		messages = append(messages, chatMessage{Role: entry.Role, Content: entry.Content})
	}
	messages = append(messages, chatMessage{Role: "user", Content: request.Message})

	payload, err := json.Marshal(completionRequest{
		Model:    s.model,
		Messages: messages,
		Tools:    toolDefinitions(),
	})
	if err != nil {
		return nil, xerrors.Errorf("encode completion request: %w", err)
	}

	apiURL := fmt.Sprintf("%s/chat/completions", s.baseURL)
	req, err := http.NewRequestWithContext(c.Request.Context(), "POST", apiURL, bytes.NewReader(payload))
	if err != nil {
		return nil, xerrors.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	response, err := s.httpClient.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("completion request failed: %w", err)
	}
	defer response.Body.Close()

	var completion completionResponse
	if err := json.NewDecoder(response.Body).Decode(&completion); err != nil {
		return nil, xerrors.Errorf("parse completion response: %w", err)
	}
	if completion.Error != nil {
		return nil, xerrors.Errorf("completion backend: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return nil, xerrors.New("completion backend returned no choices")
	}

	message := completion.Choices[0].Message
	result := &ChatResponse{
		TextResponse: message.Content,
		ToolCalls:    []ToolCall{},
	}
	for _, call := range message.ToolCalls {
		args := json.RawMessage(call.Function.Arguments)
		if !json.Valid(args) {
			log.Printf("Dropping tool call %s with invalid arguments\n", call.Function.Name)
			continue
		}
		result.ToolCalls = append(result.ToolCalls, ToolCall{
			Name: call.Function.Name,
			Args: args,
		})
	}
	return result, nil
}

// buildSystemMessage folds the caller's tier and the current partial
// event into the static instruction block.
func (s *AssistService) buildSystemMessage(request ChatRequest) string {
	message := systemPrompt
	if request.Tier != "" {
		message += fmt.Sprintf("\n\nThe user is on the %s tier.", request.Tier)
	}
	if request.Event != nil {
		if encoded, err := json.Marshal(request.Event); err == nil {
			message += fmt.Sprintf("\n\nCurrent event configuration:\n%s", encoded)
		}
	}
	return message
}

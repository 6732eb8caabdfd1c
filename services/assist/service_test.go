package assist

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	quest "github.com/Flexibelstudio/quester-backend/repos/quest"
)

func chatContext(t *testing.T) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req, err := http.NewRequest("POST", "/assist/v1/chat", nil)
	require.Nil(t, err)
	c.Request = req
	return c
}

func TestChatMapsToolCalls(t *testing.T) {
	var upstreamBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		upstreamBody, _ = io.ReadAll(r.Body)
		w.Write([]byte(`{
			"choices": [{
				"message": {
					"content": "Two checkpoints added.",
					"tool_calls": [{
						"function": {
							"name": "add_checkpoints",
							"arguments": "{\"checkpoints\":[{\"name\":\"Kiosken\"},{\"name\":\"Statyn\"}]}"
						}
					}]
				}
			}]
		}`))
	}))
	defer server.Close()

	service := NewAssistService(server.URL, "test-key", "test-model")

	response, err := service.Chat(chatContext(t), ChatRequest{
		Message: "Add two checkpoints downtown",
		Tier:    quest.TierCreator,
		History: []HistoryEntry{{Role: "user", Content: "hi"}, {Role: "assistant", Content: "hello"}},
	})
	require.Nil(t, err)

	assert.Equal(t, "Two checkpoints added.", response.TextResponse)
	require.Len(t, response.ToolCalls, 1)
	assert.Equal(t, "add_checkpoints", response.ToolCalls[0].Name)

	var args struct {
		Checkpoints []struct {
			Name string `json:"name"`
		} `json:"checkpoints"`
	}
	require.Nil(t, json.Unmarshal(response.ToolCalls[0].Args, &args))
	assert.Len(t, args.Checkpoints, 2)

	// The upstream payload carries the full history plus the new message.
	var upstream completionRequest
	require.Nil(t, json.Unmarshal(upstreamBody, &upstream))
	assert.Equal(t, "test-model", upstream.Model)
	require.Len(t, upstream.Messages, 4)
	assert.Equal(t, "system", upstream.Messages[0].Role)
	assert.Equal(t, "Add two checkpoints downtown", upstream.Messages[3].Content)
	assert.NotEmpty(t, upstream.Tools, "static tool schemas go along with every request")
}

func TestChatCarriesInvariantsAndTier(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var upstream completionRequest
		json.Unmarshal(body, &upstream)

		system := upstream.Messages[0].Content
		assert.True(t, strings.Contains(system, "already has an id"))
		assert.True(t, strings.Contains(system, "photoRequired"))
		assert.True(t, strings.Contains(system, "MASTER tier"))

		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()

	service := NewAssistService(server.URL, "test-key", "test-model")

	_, err := service.Chat(chatContext(t), ChatRequest{
		Message: "hello",
		Tier:    quest.TierMaster,
		Event:   &quest.EventConfiguration{ID: "evt-1", Name: "Stadsloppet"},
	})
	require.Nil(t, err)
}

func TestChatDropsInvalidArguments(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"choices": [{
				"message": {
					"content": "done",
					"tool_calls": [{
						"function": {"name": "update_event", "arguments": "{broken"}
					}]
				}
			}]
		}`))
	}))
	defer server.Close()

	service := NewAssistService(server.URL, "test-key", "test-model")

	response, err := service.Chat(chatContext(t), ChatRequest{Message: "hi"})
	require.Nil(t, err)
	assert.Empty(t, response.ToolCalls)
}

func TestChatBackendError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"quota exceeded"}}`))
	}))
	defer server.Close()

	service := NewAssistService(server.URL, "test-key", "test-model")

	_, err := service.Chat(chatContext(t), ChatRequest{Message: "hi"})
	assert.NotNil(t, err)
}

// The handler's response body is a published wire contract.
func TestChatHandlerWireContract(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	NewHTTPHandler(HTTPOptions{
		Service: stubAssist{},
		Router:  router.Group("/assist/v1"),
	})

	body := `{"message":"name my race","tier":"SCOUT","history":[]}`
	req := httptest.NewRequest("POST", "/assist/v1/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()

	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)

	var response map[string]json.RawMessage
	require.Nil(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response, "textResponse")
	assert.Contains(t, response, "toolCalls")
}

type stubAssist struct{}

func (stubAssist) Chat(c *gin.Context, request ChatRequest) (*ChatResponse, error) {
	return &ChatResponse{
		TextResponse: "How about Stadsjakten?",
		ToolCalls:    []ToolCall{{Name: "update_event", Args: json.RawMessage(`{"name":"Stadsjakten"}`)}},
	}, nil
}

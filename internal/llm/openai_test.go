package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatServer(t *testing.T, content string, choices bool) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o", req["model"])
		msgs, _ := req["messages"].([]any)
		assert.Len(t, msgs, 2)

		out := map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o",
			"choices": []any{},
		}
		if choices {
			out["choices"] = []any{map[string]any{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": content},
			}}
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}))
}

func TestOpenAIClient_Complete(t *testing.T) {
	srv := chatServer(t, "NORTH AMERICA WEST COAST", true)
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "gpt-4o"}, false)
	reply, err := client.Complete(context.Background(), "system", "classify")

	require.NoError(t, err)
	assert.Equal(t, "NORTH AMERICA WEST COAST", reply)
}

func TestOpenAIClient_NoChoicesIsEmptyReply(t *testing.T) {
	srv := chatServer(t, "", false)
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1"}, false)
	reply, err := client.Complete(context.Background(), "system", "classify")

	require.NoError(t, err)
	assert.Equal(t, "", reply)
}

func TestNew_ProviderSelection(t *testing.T) {
	_, err := New(Config{Provider: "azure"})
	assert.Error(t, err)

	c, err := New(Config{Provider: "azure", APIKey: "k", BaseURL: "https://example.openai.azure.com"})
	require.NoError(t, err)
	assert.IsType(t, &OpenAIClient{}, c)

	c, err = New(Config{Provider: "ollama"})
	require.NoError(t, err)
	assert.IsType(t, &OllamaClient{}, c)

	_, err = New(Config{Provider: "bard"})
	assert.Error(t, err)
}

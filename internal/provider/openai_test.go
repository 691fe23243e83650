package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatCompletionBody builds a minimal Chat Completions response carrying the
// given message content.
func chatCompletionBody(content string) string {
	return fmt.Sprintf(`{
		"id": "chatcmpl-1",
		"object": "chat.completion",
		"created": 1,
		"model": "gpt-4o-mini",
		"choices": [
			{"index": 0, "message": {"role": "assistant", "content": %q}, "finish_reason": "stop"}
		]
	}`, content)
}

func newChatCompletionServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, chatCompletionBody(content))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestOpenAIGenerate(t *testing.T) {
	srv := newChatCompletionServer(t, "Generated article text.\n")

	gen, err := NewOpenAI("sk-test", "gpt-4o-mini", srv.URL)
	require.NoError(t, err)

	text, err := gen.Generate(context.Background(), "write something", 0.5)
	require.NoError(t, err)
	assert.Equal(t, "Generated article text.", text)
}

func TestOpenAIGenerateEmptyCompletion(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "empty string", content: ""},
		{name: "whitespace only", content: "  \n\t"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newChatCompletionServer(t, tt.content)

			gen, err := NewOpenAI("sk-test", "gpt-4o-mini", srv.URL)
			require.NoError(t, err)

			_, err = gen.Generate(context.Background(), "write something", 0.5)
			require.Error(t, err)

			var provErr *Error
			require.ErrorAs(t, err, &provErr)
			assert.Equal(t, KindMalformed, provErr.Kind)
			assert.Equal(t, "openai", provErr.Provider)
		})
	}
}

func TestOpenAIGenerateNoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"id": "chatcmpl-1", "object": "chat.completion", "created": 1, "model": "gpt-4o-mini", "choices": []}`)
	}))
	t.Cleanup(srv.Close)

	gen, err := NewOpenAI("sk-test", "gpt-4o-mini", srv.URL)
	require.NoError(t, err)

	_, err = gen.Generate(context.Background(), "write something", 0.5)
	require.Error(t, err)

	var provErr *Error
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, KindMalformed, provErr.Kind)
}

package groq

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "test-model",
	})
	return srv, client
}

func TestChatCompletion_Success(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization header = %q", got)
		}

		var req openAIRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Model != "test-model" || len(req.Messages) != 2 {
			t.Errorf("unexpected request: %+v", req)
		}
		if req.Messages[0].Role != "system" || req.Messages[1].Role != "user" {
			t.Errorf("unexpected message roles: %+v", req.Messages)
		}

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "hello there"}},
			},
		})
	})

	reply, err := client.ChatCompletion(context.Background(), "sys", "usr")
	if err != nil {
		t.Fatalf("ChatCompletion: %v", err)
	}
	if reply != "hello there" {
		t.Fatalf("reply = %q", reply)
	}
}

func TestChatCompletion_Non2xxStatus(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	})

	if _, err := client.ChatCompletion(context.Background(), "sys", "usr"); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestChatCompletion_EmptyChoices(t *testing.T) {
	_, client := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	})

	if _, err := client.ChatCompletion(context.Background(), "sys", "usr"); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestChatCompletion_MissingAPIKey(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.ChatCompletion(context.Background(), "sys", "usr"); err == nil {
		t.Fatal("expected error without api key")
	}
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient(Config{APIKey: "k"})
	if client.config.BaseURL != "https://api.groq.com/openai/v1" {
		t.Fatalf("default base url = %q", client.config.BaseURL)
	}
	if client.Name() != "llama-3.3-70b-versatile" {
		t.Fatalf("default model = %q", client.Name())
	}
}

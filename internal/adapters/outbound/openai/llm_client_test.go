package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestLLMClientAdapter_Chat(t *testing.T) {
	temp := 0.7
	maxTokens := 1500

	tests := map[string]struct {
		response     string
		statusCode   int
		req          domain.ChatRequest
		expectErr    func(*testing.T, error)
		expectedResp string
		validateReq  func(*testing.T, *ChatRequest)
	}{
		"success": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"Bonjour!"}}],"usage":{"completion_tokens":10,"prompt_tokens":10,"total_tokens":20}}`,
			statusCode: http.StatusOK,
			req: domain.ChatRequest{
				Model: "gpt-4o-mini",
				Messages: []domain.ChatMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectedResp: "Bonjour!",
		},
		"with-params": {
			response:   `{"choices":[{"message":{"role":"assistant","content":"ok"}}]}`,
			statusCode: http.StatusOK,
			req: domain.ChatRequest{
				Model:       "gpt-4o-mini",
				Temperature: &temp,
				MaxTokens:   &maxTokens,
				Messages: []domain.ChatMessage{
					{Role: domain.ChatRole_System, Content: "sys"},
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectedResp: "ok",
			validateReq: func(t *testing.T, req *ChatRequest) {
				assert.Equal(t, "gpt-4o-mini", req.Model)
				assert.NotNil(t, req.Temperature)
				assert.InDelta(t, 0.7, *req.Temperature, 1e-6)
				assert.NotNil(t, req.MaxTokens)
				assert.Equal(t, 1500, *req.MaxTokens)
				assert.Len(t, req.Messages, 2)
			},
		},
		"no-choices": {
			response:   `{"choices":[]}`,
			statusCode: http.StatusOK,
			req: domain.ChatRequest{
				Model: "gpt-4o-mini",
				Messages: []domain.ChatMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: func(t *testing.T, err error) {
				assert.IsType(t, &domain.TransportErr{}, err)
			},
		},
		"provider-rejection": {
			response:   `{"error":{"message":"The model 'gpt-4' does not exist or you do not have access to it.","type":"invalid_request_error","code":"model_not_found"}}`,
			statusCode: http.StatusNotFound,
			req: domain.ChatRequest{
				Model: "gpt-4",
				Messages: []domain.ChatMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: func(t *testing.T, err error) {
				assert.IsType(t, &domain.ModelRejectedErr{}, err)
				assert.Equal(t, "The model 'gpt-4' does not exist or you do not have access to it.", err.Error())
			},
		},
		"server-error-plain-body": {
			response:   `Internal Server Error`,
			statusCode: http.StatusInternalServerError,
			req: domain.ChatRequest{
				Model: "gpt-4o-mini",
				Messages: []domain.ChatMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: func(t *testing.T, err error) {
				assert.IsType(t, &domain.ModelRejectedErr{}, err)
				assert.Contains(t, err.Error(), "Internal Server Error")
			},
		},
		"invalid-json": {
			response:   `{invalid json}`,
			statusCode: http.StatusOK,
			req: domain.ChatRequest{
				Model: "gpt-4o-mini",
				Messages: []domain.ChatMessage{
					{Role: domain.ChatRole_User, Content: "hi"},
				},
			},
			expectErr: func(t *testing.T, err error) {
				assert.IsType(t, &domain.TransportErr{}, err)
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			var capturedReq *ChatRequest

			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.validateReq != nil {
					var req ChatRequest
					json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
					capturedReq = &req
				}

				w.WriteHeader(tt.statusCode)
				w.Write([]byte(tt.response)) //nolint:errcheck
			}))
			defer server.Close()

			client := NewAPIClient(server.URL, "test-key", server.Client())
			adapter := NewLLMClientAdapter(client)

			resp, err := adapter.Chat(context.Background(), tt.req)

			if tt.expectErr != nil {
				assert.Error(t, err)
				tt.expectErr(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expectedResp, resp.Content)

			if tt.validateReq != nil && capturedReq != nil {
				tt.validateReq(t, capturedReq)
			}
		})
	}
}

func TestLLMClientAdapter_Chat_ValidationErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "test-key", server.Client())
	adapter := NewLLMClientAdapter(client)

	tests := map[string]struct {
		req domain.ChatRequest
	}{
		"no-model":    {req: domain.ChatRequest{Messages: []domain.ChatMessage{{Role: domain.ChatRole_User, Content: "hi"}}}},
		"no-messages": {req: domain.ChatRequest{Model: "gpt-4o-mini"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := adapter.Chat(context.Background(), tt.req)
			assert.Error(t, err)
		})
	}
}

func TestAPIClient_SetsAuthorizationHeader(t *testing.T) {
	var authHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader = r.Header.Get("Authorization")
		w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`)) //nolint:errcheck
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "sk-test-123", server.Client())
	_, err := client.Chat(context.Background(), ChatRequest{
		Model:    "gpt-4o-mini",
		Messages: []ChatMessage{{Role: "user", Content: "hi"}},
	})

	assert.NoError(t, err)
	assert.Equal(t, "Bearer sk-test-123", authHeader)
}

func TestInitLLMClient_Initialize(t *testing.T) {
	i := InitLLMClient{
		HttpClient: http.DefaultClient,
		BaseURL:    "https://api.openai.com/v1",
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	client, err := depend.Resolve[domain.LLMClient]()
	assert.NotNil(t, client)
	assert.NoError(t, err)

	checker, err := depend.Resolve[domain.CredentialChecker]()
	assert.NotNil(t, checker)
	assert.NoError(t, err)
}

func TestInitLLMClient_Initialize_UnsetApiKey(t *testing.T) {
	i := InitLLMClient{
		HttpClient: http.DefaultClient,
		ApiKey:     "-",
		BaseURL:    "https://api.openai.com/v1",
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	checker, err := depend.Resolve[domain.CredentialChecker]()
	assert.NoError(t, err)
	assert.False(t, checker.IsConfigured(), "the unset-config sentinel must not count as a configured key")
}

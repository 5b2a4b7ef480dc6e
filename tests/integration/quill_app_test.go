//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	rest "github.com/quillnotes/quill/internal/adapters/inbound/http"
	"github.com/quillnotes/quill/internal/app"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

func TestQuillApp_Integration(t *testing.T) {
	quillApp := app.NewQuillApp(
		&initEnvVars{
			envVars: map[string]string{
				"DB_USER":        "quill",
				"DB_PASS":        "quill",
				"DB_HOST":        "localhost",
				"DB_PORT":        "5432",
				"DB_NAME":        "quilldb",
				"HTTP_PORT":      "8080",
				"OPENAI_API_KEY": "your_openai_api_key_here",
			},
		},
		&InitDockerCompose{},
	)

	cancelCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownCh := quillApp.RunAsync(cancelCtx)

	err := quillApp.WaitForReadiness(cancelCtx, 10*time.Minute)
	if err != nil {
		cancel()
		t.Fatalf("Quill app failed to become ready: %v", err)
	}

	t.Run("assistant-status", func(t *testing.T) {
		var status rest.AssistantStatusResp
		code := doJSON(t, http.MethodGet, "/api/ai/status", nil, &status)
		require.Equal(t, http.StatusOK, code)
		require.False(t, status.CredentialConfigured, "placeholder key must not count as configured")
		require.Equal(t, "gpt-3.5-turbo", status.SelectedModel)
		require.Equal(t, "idle", status.Phase)
	})

	t.Run("list-models", func(t *testing.T) {
		var models []rest.Model
		code := doJSON(t, http.MethodGet, "/api/models", nil, &models)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, models, 4)
	})

	t.Run("process-content-without-credential", func(t *testing.T) {
		var result struct {
			Success bool   `json:"success"`
			Error   string `json:"error"`
		}
		code := doJSON(t, http.MethodPost, "/api/ai/process", rest.ProcessContentReq{
			Content: "The quick brown fox",
			Action:  "improve-writing",
		}, &result)
		require.Equal(t, http.StatusOK, code, "pipeline failures still answer 200")
		require.False(t, result.Success)
		require.NotEmpty(t, result.Error)
	})

	var doc rest.Document
	t.Run("create-document", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, "/api/documents", rest.CreateDocumentReq{
			Title:   "Integration Test Document",
			Content: "Initial content",
		}, &doc)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "Integration Test Document", doc.Title)
	})

	t.Run("update-document", func(t *testing.T) {
		content := "Revised content"
		var updated rest.Document
		code := doJSON(t, http.MethodPatch, "/api/documents/"+doc.ID.String(), rest.UpdateDocumentReq{
			Content: &content,
		}, &updated)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "Revised content", updated.Content)
		require.Equal(t, "Integration Test Document", updated.Title)
	})

	t.Run("delete-document", func(t *testing.T) {
		code := doJSON(t, http.MethodDelete, "/api/documents/"+doc.ID.String(), nil, nil)
		require.Equal(t, http.StatusNoContent, code)

		code = doJSON(t, http.MethodGet, "/api/documents/"+doc.ID.String(), nil, nil)
		require.Equal(t, http.StatusNotFound, code)
	})

	var todo rest.Todo
	t.Run("create-todo", func(t *testing.T) {
		code := doJSON(t, http.MethodPost, "/api/todos", rest.CreateTodoReq{
			Title:   "Integration Test Todo",
			DueDate: "tomorrow",
		}, &todo)
		require.Equal(t, http.StatusCreated, code)
		require.NotNil(t, todo.DueDate, "relative due date should be resolved")
	})

	t.Run("complete-todo", func(t *testing.T) {
		status := "COMPLETED"
		var updated rest.Todo
		code := doJSON(t, http.MethodPatch, "/api/todos/"+todo.ID.String(), rest.UpdateTodoReq{
			Status: &status,
		}, &updated)
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "COMPLETED", updated.Status)
	})

	t.Run("delete-todo", func(t *testing.T) {
		code := doJSON(t, http.MethodDelete, "/api/todos/"+todo.ID.String(), nil, nil)
		require.Equal(t, http.StatusNoContent, code)
	})

	t.Run("instantiate-seeded-template", func(t *testing.T) {
		var templates []rest.TodoTemplate
		code := doJSON(t, http.MethodGet, "/api/todo-templates", nil, &templates)
		require.Equal(t, http.StatusOK, code)
		require.Len(t, templates, 3, "migrations seed three templates")

		var created []rest.Todo
		code = doJSON(t, http.MethodPost, "/api/todo-templates/"+templates[0].ID.String()+"/instantiate", nil, &created)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, len(templates[0].Items), len(created))
	})

	cancel()

	select {
	case <-time.After(1 * time.Minute):
		t.Fatalf("Quill app did not shut down in time")
	case err = <-shutdownCh:
		require.NoError(t, err, "Quill app shutdown with error")
	}
}

// doJSON sends one request against the running app and decodes the JSON
// response into out when out is non-nil. It returns the HTTP status code.
func doJSON(t *testing.T, method, path string, body any, out any) int {
	t.Helper()

	var reqBody *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err, "failed to marshal request body")
		reqBody = bytes.NewReader(raw)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(t.Context(), method, fmt.Sprintf("%s%s", baseURL, path), reqBody)
	require.NoError(t, err, "failed to build request")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err, "request failed")
	defer resp.Body.Close() //nolint:errcheck

	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out), "failed to decode response body")
	}
	return resp.StatusCode
}

type initEnvVars struct {
	envVars map[string]string
}

func (i *initEnvVars) Initialize(ctx context.Context) (context.Context, error) {
	for key, value := range i.envVars {
		os.Setenv(key, value) //nolint:errcheck
	}
	return ctx, nil
}

func (i *initEnvVars) Close() {
	for key := range i.envVars {
		os.Unsetenv(key) //nolint:errcheck
	}
}

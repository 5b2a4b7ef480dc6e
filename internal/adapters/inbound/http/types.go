package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
)

// ErrorCode identifies the class of a request failure.
type ErrorCode string

const (
	ErrorCode_BadRequest    ErrorCode = "BAD_REQUEST"
	ErrorCode_NotFound      ErrorCode = "NOT_FOUND"
	ErrorCode_InternalError ErrorCode = "INTERNAL_ERROR"
)

// Error carries the machine-readable code and human-readable message of a
// request failure.
type Error struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// ErrorResp is the error envelope returned by every endpoint.
type ErrorResp struct {
	Error Error `json:"error"`
}

// Document is the REST representation of a document.
type Document struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Todo is the REST representation of a todo item.
type Todo struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority,omitempty"`
	DueDate     *time.Time `json:"dueDate,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// TodoTemplateItem is the REST representation of one template task.
type TodoTemplateItem struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
}

// TodoTemplate is the REST representation of a todo template.
type TodoTemplate struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Items       []TodoTemplateItem `json:"items"`
}

// Model is the REST representation of a catalog model.
type Model struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	Selected    bool   `json:"selected"`
}

// AssistantStatusResp reports credential and session state.
type AssistantStatusResp struct {
	CredentialConfigured bool   `json:"credentialConfigured"`
	SelectedModel        string `json:"selectedModel"`
	Phase                string `json:"phase"`
}

// ProcessContentReq is the request body for the content pipeline endpoint.
type ProcessContentReq struct {
	Content string              `json:"content"`
	Action  string              `json:"action"`
	Options domain.OptionFields `json:"options"`
}

// SelectionReq is an editor selection range in the request body.
type SelectionReq struct {
	Anchor int `json:"anchor"`
	Head   int `json:"head"`
}

// DocumentActionReq is the request body for running an action against a
// stored document.
type DocumentActionReq struct {
	Action    string              `json:"action"`
	Options   domain.OptionFields `json:"options"`
	Selection SelectionReq        `json:"selection"`
}

// DocumentActionResp pairs the pipeline result with the (possibly updated)
// document.
type DocumentActionResp struct {
	Result   domain.ActionResult `json:"result"`
	Document Document            `json:"document"`
}

// CreateDocumentReq is the request body for creating a document.
type CreateDocumentReq struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdateDocumentReq is the request body for a partial document update.
type UpdateDocumentReq struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

// CreateTodoReq is the request body for creating a todo. DueDate accepts
// ISO dates as well as relative phrases like "tomorrow" or "next friday".
type CreateTodoReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	DueDate     string `json:"dueDate"`
}

// UpdateTodoReq is the request body for a partial todo update. An empty
// DueDate string clears the due date.
type UpdateTodoReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Status      *string `json:"status"`
	Priority    *string `json:"priority"`
	DueDate     *string `json:"dueDate"`
}

// GenerateTodosReq is the request body for the todo generation endpoint.
type GenerateTodosReq struct {
	Prompt string `json:"prompt"`
}

// SelectModelReq is the request body for switching the session model.
type SelectModelReq struct {
	ID string `json:"id"`
}

// ProbeModelResp reports the outcome of a capability probe.
type ProbeModelResp struct {
	ID        string `json:"id"`
	Available bool   `json:"available"`
}

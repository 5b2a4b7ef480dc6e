package domain

import (
	"context"

	"github.com/google/uuid"
)

// TodoTemplateItem is one pre-defined task inside a template.
type TodoTemplateItem struct {
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Priority    TodoPriority `json:"priority,omitempty"`
}

// TodoTemplate is a named collection of tasks that can be instantiated into
// todos in one step.
type TodoTemplate struct {
	ID          uuid.UUID
	Name        string
	Description string
	Items       []TodoTemplateItem
}

// TodoTemplateRepository defines the interface for reading todo templates
// from the data store. Default templates are seeded at migration time.
type TodoTemplateRepository interface {
	// ListTemplates retrieves all templates in name order.
	ListTemplates(ctx context.Context) ([]TodoTemplate, error)

	// GetTemplate retrieves a template by its unique identifier.
	GetTemplate(ctx context.Context, id uuid.UUID) (TodoTemplate, bool, error)
}

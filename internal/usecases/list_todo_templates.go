package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// ListTodoTemplates defines the interface for the ListTodoTemplates use case.
type ListTodoTemplates interface {
	Query(ctx context.Context) ([]domain.TodoTemplate, error)
}

// ListTodoTemplatesImpl is the implementation of the ListTodoTemplates use case.
type ListTodoTemplatesImpl struct {
	templateRepo domain.TodoTemplateRepository
}

// NewListTodoTemplatesImpl creates a new instance of ListTodoTemplatesImpl.
func NewListTodoTemplatesImpl(templateRepo domain.TodoTemplateRepository) ListTodoTemplatesImpl {
	return ListTodoTemplatesImpl{templateRepo: templateRepo}
}

// Query retrieves all todo templates.
func (ltt ListTodoTemplatesImpl) Query(ctx context.Context) ([]domain.TodoTemplate, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	templates, err := ltt.templateRepo.ListTemplates(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return templates, nil
}

// InitListTodoTemplates initializes the ListTodoTemplates use case and registers it in the dependency container.
type InitListTodoTemplates struct {
	TemplateRepo domain.TodoTemplateRepository `resolve:""`
}

// Initialize initializes the ListTodoTemplatesImpl use case and registers it in the dependency container.
func (ilt InitListTodoTemplates) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTodoTemplates](NewListTodoTemplatesImpl(ilt.TemplateRepo))
	return ctx, nil
}

package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// ListTodos defines the interface for the ListTodos use case.
type ListTodos interface {
	Query(ctx context.Context) ([]domain.Todo, error)
}

// ListTodosImpl is the implementation of the ListTodos use case.
type ListTodosImpl struct {
	todoRepo domain.TodoRepository
}

// NewListTodosImpl creates a new instance of ListTodosImpl.
func NewListTodosImpl(todoRepo domain.TodoRepository) ListTodosImpl {
	return ListTodosImpl{todoRepo: todoRepo}
}

// Query retrieves all todo items, most recently created first.
func (lti ListTodosImpl) Query(ctx context.Context) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	todos, err := lti.todoRepo.ListTodos(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return todos, nil
}

// InitListTodos initializes the ListTodos use case and registers it in the dependency container.
type InitListTodos struct {
	TodoRepo domain.TodoRepository `resolve:""`
}

// Initialize initializes the ListTodosImpl use case and registers it in the dependency container.
func (ilt InitListTodos) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListTodos](NewListTodosImpl(ilt.TodoRepo))
	return ctx, nil
}

package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// DeleteTodo defines the interface for the DeleteTodo use case.
type DeleteTodo interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeleteTodoImpl is the implementation of the DeleteTodo use case.
type DeleteTodoImpl struct {
	uow domain.UnitOfWork
}

// NewDeleteTodoImpl creates a new instance of DeleteTodoImpl.
func NewDeleteTodoImpl(uow domain.UnitOfWork) DeleteTodoImpl {
	return DeleteTodoImpl{uow: uow}
}

// Execute removes a todo item by id.
func (dti DeleteTodoImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := dti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		deleted, err := uow.Todos().DeleteTodo(spanCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundErr("todo not found")
		}
		return nil
	}); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// InitDeleteTodo initializes the DeleteTodo use case and registers it in the dependency container.
type InitDeleteTodo struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize initializes the DeleteTodoImpl use case and registers it in the dependency container.
func (idt InitDeleteTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteTodo](NewDeleteTodoImpl(idt.Uow))
	return ctx, nil
}

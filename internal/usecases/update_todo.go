package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// TodoChanges carries the optional fields of a todo update. A nil field
// leaves the stored value untouched; an empty due date string clears it.
type TodoChanges struct {
	Title       *string
	Description *string
	Status      *domain.TodoStatus
	Priority    *domain.TodoPriority
	DueDate     *string
}

// UpdateTodo defines the interface for the UpdateTodo use case.
type UpdateTodo interface {
	Execute(ctx context.Context, id uuid.UUID, changes TodoChanges) (domain.Todo, error)
}

// UpdateTodoImpl is the implementation of the UpdateTodo use case.
type UpdateTodoImpl struct {
	todoRepo     domain.TodoRepository
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateTodoImpl creates a new instance of UpdateTodoImpl.
func NewUpdateTodoImpl(todoRepo domain.TodoRepository, uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateTodoImpl {
	return UpdateTodoImpl{
		todoRepo:     todoRepo,
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute applies the given changes to an existing todo item.
func (uti UpdateTodoImpl) Execute(ctx context.Context, id uuid.UUID, changes TodoChanges) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	todo, found, err := uti.todoRepo.GetTodo(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("todo not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Todo{}, err
	}

	now := uti.timeProvider.Now()
	if changes.Title != nil {
		todo.Title = *changes.Title
	}
	if changes.Description != nil {
		todo.Description = *changes.Description
	}
	if changes.Status != nil {
		todo.Status = *changes.Status
	}
	if changes.Priority != nil {
		todo.Priority = *changes.Priority
	}
	if changes.DueDate != nil {
		if *changes.DueDate == "" {
			todo.DueDate = nil
		} else {
			parsed, ok := domain.ParseDueDate(*changes.DueDate, now, time.UTC)
			if !ok {
				err := domain.NewValidationErr("due_date is not a recognizable date")
				telemetry.RecordErrorAndStatus(span, err)
				return domain.Todo{}, err
			}
			todo.DueDate = &parsed
		}
	}
	todo.UpdatedAt = now

	if err := todo.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	if err := uti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Todos().UpdateTodo(spanCtx, todo)
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	return todo, nil
}

// InitUpdateTodo initializes the UpdateTodo use case and registers it in the dependency container.
type InitUpdateTodo struct {
	TodoRepo    domain.TodoRepository      `resolve:""`
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the UpdateTodoImpl use case and registers it in the dependency container.
func (iut InitUpdateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateTodo](NewUpdateTodoImpl(iut.TodoRepo, iut.Uow, iut.TimeService))
	return ctx, nil
}

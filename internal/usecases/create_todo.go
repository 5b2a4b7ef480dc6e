package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// CreateTodo defines the interface for the CreateTodo use case.
type CreateTodo interface {
	Execute(ctx context.Context, title string, description string, priority domain.TodoPriority, dueDate string) (domain.Todo, error)
}

// CreateTodoImpl is the implementation of the CreateTodo use case.
type CreateTodoImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateTodoImpl creates a new instance of CreateTodoImpl.
func NewCreateTodoImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateTodoImpl {
	return CreateTodoImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates a new todo item. The due date accepts lenient date text,
// including relative tokens like "tomorrow"; an empty string means no due
// date.
func (cti CreateTodoImpl) Execute(ctx context.Context, title string, description string, priority domain.TodoPriority, dueDate string) (domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	now := cti.timeProvider.Now()

	var due *time.Time
	if dueDate != "" {
		parsed, ok := domain.ParseDueDate(dueDate, now, time.UTC)
		if !ok {
			err := domain.NewValidationErr("due_date is not a recognizable date")
			telemetry.RecordErrorAndStatus(span, err)
			return domain.Todo{}, err
		}
		due = &parsed
	}

	todo := domain.Todo{
		ID:          cti.createUUID(),
		Title:       title,
		Description: description,
		Status:      domain.TodoStatus_NEW,
		Priority:    priority,
		DueDate:     due,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := todo.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	if err := cti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Todos().CreateTodo(spanCtx, todo)
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Todo{}, err
	}

	return todo, nil
}

// InitCreateTodo initializes the CreateTodo use case and registers it in the dependency container.
type InitCreateTodo struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the CreateTodoImpl use case and registers it in the dependency container.
func (ict InitCreateTodo) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateTodo](NewCreateTodoImpl(ict.Uow, ict.TimeService))
	return ctx, nil
}

package usecases

import (
	"context"
	"strings"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// GenerateTodos defines the interface for the GenerateTodos use case. It
// turns a free-form prompt into a batch of persisted todo items using the
// deterministic draft generator.
type GenerateTodos interface {
	Execute(ctx context.Context, prompt string) ([]domain.Todo, error)
}

// GenerateTodosImpl is the implementation of the GenerateTodos use case.
type GenerateTodosImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
	delay        time.Duration
}

// NewGenerateTodosImpl creates a new instance of GenerateTodosImpl. The delay
// simulates generation latency and is interruptible through the context.
func NewGenerateTodosImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider, delay time.Duration) GenerateTodosImpl {
	return GenerateTodosImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
		delay:        delay,
	}
}

// Execute generates todos from the prompt and stores them in one transaction.
func (gti GenerateTodosImpl) Execute(ctx context.Context, prompt string) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if strings.TrimSpace(prompt) == "" {
		err := domain.NewValidationErr("prompt cannot be empty")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	if gti.delay > 0 {
		select {
		case <-time.After(gti.delay):
		case <-spanCtx.Done():
			telemetry.RecordErrorAndStatus(span, spanCtx.Err())
			return nil, spanCtx.Err()
		}
	}

	now := gti.timeProvider.Now()
	drafts := domain.GenerateTodoDrafts(prompt)
	todos := make([]domain.Todo, 0, len(drafts))
	for _, draft := range drafts {
		todos = append(todos, domain.Todo{
			ID:          gti.createUUID(),
			Title:       draft.Title,
			Description: draft.Description,
			Status:      domain.TodoStatus_NEW,
			Priority:    draft.Priority,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := gti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		for _, todo := range todos {
			if err := uow.Todos().CreateTodo(spanCtx, todo); err != nil {
				return err
			}
		}
		return nil
	}); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return todos, nil
}

// InitGenerateTodos initializes the GenerateTodos use case and registers it in the dependency container.
type InitGenerateTodos struct {
	Uow          domain.UnitOfWork          `resolve:""`
	TimeService  domain.CurrentTimeProvider `resolve:""`
	DelaySeconds int                        `config:"TODO_GENERATION_DELAY_SECONDS" default:"1"`
}

// Initialize initializes the GenerateTodosImpl use case and registers it in the dependency container.
func (igt InitGenerateTodos) Initialize(ctx context.Context) (context.Context, error) {
	delay := time.Duration(igt.DelaySeconds) * time.Second
	depend.Register[GenerateTodos](NewGenerateTodosImpl(igt.Uow, igt.TimeService, delay))
	return ctx, nil
}

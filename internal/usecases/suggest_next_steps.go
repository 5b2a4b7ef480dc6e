package usecases

import (
	"context"
	"time"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// SuggestNextSteps defines the interface for the SuggestNextSteps use case.
// It proposes follow-up todos for a completed item using the deterministic
// draft generator.
type SuggestNextSteps interface {
	Execute(ctx context.Context, completedID uuid.UUID) ([]domain.Todo, error)
}

// SuggestNextStepsImpl is the implementation of the SuggestNextSteps use case.
type SuggestNextStepsImpl struct {
	todoRepo     domain.TodoRepository
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
	delay        time.Duration
}

// NewSuggestNextStepsImpl creates a new instance of SuggestNextStepsImpl. The
// delay simulates generation latency and is interruptible through the context.
func NewSuggestNextStepsImpl(todoRepo domain.TodoRepository, uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider, delay time.Duration) SuggestNextStepsImpl {
	return SuggestNextStepsImpl{
		todoRepo:     todoRepo,
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
		delay:        delay,
	}
}

// Execute derives follow-up todos from the completed item and stores them in
// one transaction.
func (sns SuggestNextStepsImpl) Execute(ctx context.Context, completedID uuid.UUID) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	completed, found, err := sns.todoRepo.GetTodo(spanCtx, completedID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr("todo not found")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	if sns.delay > 0 {
		select {
		case <-time.After(sns.delay):
		case <-spanCtx.Done():
			telemetry.RecordErrorAndStatus(span, spanCtx.Err())
			return nil, spanCtx.Err()
		}
	}

	now := sns.timeProvider.Now()
	drafts := domain.SuggestFollowUpDrafts(completed)
	todos := make([]domain.Todo, 0, len(drafts))
	for _, draft := range drafts {
		todos = append(todos, domain.Todo{
			ID:          sns.createUUID(),
			Title:       draft.Title,
			Description: draft.Description,
			Status:      domain.TodoStatus_NEW,
			Priority:    draft.Priority,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := sns.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
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

// InitSuggestNextSteps initializes the SuggestNextSteps use case and registers it in the dependency container.
type InitSuggestNextSteps struct {
	TodoRepo     domain.TodoRepository      `resolve:""`
	Uow          domain.UnitOfWork          `resolve:""`
	TimeService  domain.CurrentTimeProvider `resolve:""`
	DelaySeconds int                        `config:"TODO_GENERATION_DELAY_SECONDS" default:"1"`
}

// Initialize initializes the SuggestNextStepsImpl use case and registers it in the dependency container.
func (isn InitSuggestNextSteps) Initialize(ctx context.Context) (context.Context, error) {
	delay := time.Duration(isn.DelaySeconds) * time.Second
	depend.Register[SuggestNextSteps](NewSuggestNextStepsImpl(isn.TodoRepo, isn.Uow, isn.TimeService, delay))
	return ctx, nil
}

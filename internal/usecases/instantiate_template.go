package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// InstantiateTemplate defines the interface for the InstantiateTemplate use
// case. It expands a todo template into persisted todo items.
type InstantiateTemplate interface {
	Execute(ctx context.Context, templateID uuid.UUID) ([]domain.Todo, error)
}

// InstantiateTemplateImpl is the implementation of the InstantiateTemplate use case.
type InstantiateTemplateImpl struct {
	templateRepo domain.TodoTemplateRepository
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewInstantiateTemplateImpl creates a new instance of InstantiateTemplateImpl.
func NewInstantiateTemplateImpl(templateRepo domain.TodoTemplateRepository, uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) InstantiateTemplateImpl {
	return InstantiateTemplateImpl{
		templateRepo: templateRepo,
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates one todo per template item in one transaction. Items keep
// the template's order through their creation order.
func (iti InstantiateTemplateImpl) Execute(ctx context.Context, templateID uuid.UUID) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	template, found, err := iti.templateRepo.GetTemplate(spanCtx, templateID)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	if !found {
		err := domain.NewNotFoundErr("todo template not found")
		telemetry.RecordErrorAndStatus(span, err)
		return nil, err
	}

	now := iti.timeProvider.Now()
	todos := make([]domain.Todo, 0, len(template.Items))
	for _, item := range template.Items {
		todos = append(todos, domain.Todo{
			ID:          iti.createUUID(),
			Title:       item.Title,
			Description: item.Description,
			Status:      domain.TodoStatus_NEW,
			Priority:    item.Priority,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := iti.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
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

// InitInstantiateTemplate initializes the InstantiateTemplate use case and registers it in the dependency container.
type InitInstantiateTemplate struct {
	TemplateRepo domain.TodoTemplateRepository `resolve:""`
	Uow          domain.UnitOfWork             `resolve:""`
	TimeService  domain.CurrentTimeProvider    `resolve:""`
}

// Initialize initializes the InstantiateTemplateImpl use case and registers it in the dependency container.
func (iit InitInstantiateTemplate) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[InstantiateTemplate](NewInstantiateTemplateImpl(iit.TemplateRepo, iit.Uow, iit.TimeService))
	return ctx, nil
}

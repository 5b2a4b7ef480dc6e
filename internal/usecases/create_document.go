package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// CreateDocument defines the interface for the CreateDocument use case.
type CreateDocument interface {
	Execute(ctx context.Context, title string, content string) (domain.Document, error)
}

// CreateDocumentImpl is the implementation of the CreateDocument use case.
type CreateDocumentImpl struct {
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
	createUUID   func() uuid.UUID
}

// NewCreateDocumentImpl creates a new instance of CreateDocumentImpl.
func NewCreateDocumentImpl(uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) CreateDocumentImpl {
	return CreateDocumentImpl{
		uow:          uow,
		timeProvider: timeProvider,
		createUUID:   uuid.New,
	}
}

// Execute creates a new document. A missing title falls back to the default.
func (cdi CreateDocumentImpl) Execute(ctx context.Context, title string, content string) (domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if title == "" {
		title = domain.DefaultDocumentTitle
	}

	now := cdi.timeProvider.Now()
	doc := domain.Document{
		ID:        cdi.createUUID(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := doc.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, err
	}

	if err := cdi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Documents().CreateDocument(spanCtx, doc)
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, err
	}

	return doc, nil
}

// InitCreateDocument initializes the CreateDocument use case and registers it in the dependency container.
type InitCreateDocument struct {
	Uow         domain.UnitOfWork          `resolve:""`
	TimeService domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the CreateDocumentImpl use case and registers it in the dependency container.
func (icd InitCreateDocument) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[CreateDocument](NewCreateDocumentImpl(icd.Uow, icd.TimeService))
	return ctx, nil
}

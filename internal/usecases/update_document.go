package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// DocumentChanges carries the optional fields of a document update. A nil
// field leaves the stored value untouched.
type DocumentChanges struct {
	Title   *string
	Content *string
}

// UpdateDocument defines the interface for the UpdateDocument use case.
type UpdateDocument interface {
	Execute(ctx context.Context, id uuid.UUID, changes DocumentChanges) (domain.Document, error)
}

// UpdateDocumentImpl is the implementation of the UpdateDocument use case.
type UpdateDocumentImpl struct {
	documentRepo domain.DocumentRepository
	uow          domain.UnitOfWork
	timeProvider domain.CurrentTimeProvider
}

// NewUpdateDocumentImpl creates a new instance of UpdateDocumentImpl.
func NewUpdateDocumentImpl(documentRepo domain.DocumentRepository, uow domain.UnitOfWork, timeProvider domain.CurrentTimeProvider) UpdateDocumentImpl {
	return UpdateDocumentImpl{
		documentRepo: documentRepo,
		uow:          uow,
		timeProvider: timeProvider,
	}
}

// Execute applies the given changes to an existing document.
func (udi UpdateDocumentImpl) Execute(ctx context.Context, id uuid.UUID, changes DocumentChanges) (domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	doc, found, err := udi.documentRepo.GetDocument(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("document not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Document{}, err
	}

	if changes.Title != nil {
		doc.Title = *changes.Title
	}
	if changes.Content != nil {
		doc.Content = *changes.Content
	}
	doc.UpdatedAt = udi.timeProvider.Now()

	if err := doc.Validate(); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, err
	}

	if err := udi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		return uow.Documents().UpdateDocument(spanCtx, doc)
	}); telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, err
	}

	return doc, nil
}

// InitUpdateDocument initializes the UpdateDocument use case and registers it in the dependency container.
type InitUpdateDocument struct {
	DocumentRepo domain.DocumentRepository  `resolve:""`
	Uow          domain.UnitOfWork          `resolve:""`
	TimeService  domain.CurrentTimeProvider `resolve:""`
}

// Initialize initializes the UpdateDocumentImpl use case and registers it in the dependency container.
func (iud InitUpdateDocument) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[UpdateDocument](NewUpdateDocumentImpl(iud.DocumentRepo, iud.Uow, iud.TimeService))
	return ctx, nil
}

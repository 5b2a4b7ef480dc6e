package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// DeleteDocument defines the interface for the DeleteDocument use case.
type DeleteDocument interface {
	Execute(ctx context.Context, id uuid.UUID) error
}

// DeleteDocumentImpl is the implementation of the DeleteDocument use case.
type DeleteDocumentImpl struct {
	uow domain.UnitOfWork
}

// NewDeleteDocumentImpl creates a new instance of DeleteDocumentImpl.
func NewDeleteDocumentImpl(uow domain.UnitOfWork) DeleteDocumentImpl {
	return DeleteDocumentImpl{uow: uow}
}

// Execute removes a document by id.
func (ddi DeleteDocumentImpl) Execute(ctx context.Context, id uuid.UUID) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	if err := ddi.uow.Execute(spanCtx, func(uow domain.UnitOfWork) error {
		deleted, err := uow.Documents().DeleteDocument(spanCtx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return domain.NewNotFoundErr("document not found")
		}
		return nil
	}); telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// InitDeleteDocument initializes the DeleteDocument use case and registers it in the dependency container.
type InitDeleteDocument struct {
	Uow domain.UnitOfWork `resolve:""`
}

// Initialize initializes the DeleteDocumentImpl use case and registers it in the dependency container.
func (idd InitDeleteDocument) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[DeleteDocument](NewDeleteDocumentImpl(idd.Uow))
	return ctx, nil
}

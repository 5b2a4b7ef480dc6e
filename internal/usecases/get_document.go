package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// GetDocument defines the interface for the GetDocument use case.
type GetDocument interface {
	Query(ctx context.Context, id uuid.UUID) (domain.Document, error)
}

// GetDocumentImpl is the implementation of the GetDocument use case.
type GetDocumentImpl struct {
	documentRepo domain.DocumentRepository
}

// NewGetDocumentImpl creates a new instance of GetDocumentImpl.
func NewGetDocumentImpl(documentRepo domain.DocumentRepository) GetDocumentImpl {
	return GetDocumentImpl{documentRepo: documentRepo}
}

// Query retrieves a single document by id.
func (gdi GetDocumentImpl) Query(ctx context.Context, id uuid.UUID) (domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	doc, found, err := gdi.documentRepo.GetDocument(spanCtx, id)
	if telemetry.RecordErrorAndStatus(span, err) {
		return domain.Document{}, err
	}
	if !found {
		err := domain.NewNotFoundErr("document not found")
		telemetry.RecordErrorAndStatus(span, err)
		return domain.Document{}, err
	}
	return doc, nil
}

// InitGetDocument initializes the GetDocument use case and registers it in the dependency container.
type InitGetDocument struct {
	DocumentRepo domain.DocumentRepository `resolve:""`
}

// Initialize initializes the GetDocumentImpl use case and registers it in the dependency container.
func (igd InitGetDocument) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[GetDocument](NewGetDocumentImpl(igd.DocumentRepo))
	return ctx, nil
}

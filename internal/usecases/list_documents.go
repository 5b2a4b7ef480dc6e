package usecases

import (
	"context"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

// ListDocuments defines the interface for the ListDocuments use case.
type ListDocuments interface {
	Query(ctx context.Context) ([]domain.Document, error)
}

// ListDocumentsImpl is the implementation of the ListDocuments use case.
type ListDocumentsImpl struct {
	documentRepo domain.DocumentRepository
}

// NewListDocumentsImpl creates a new instance of ListDocumentsImpl.
func NewListDocumentsImpl(documentRepo domain.DocumentRepository) ListDocumentsImpl {
	return ListDocumentsImpl{documentRepo: documentRepo}
}

// Query retrieves all documents, most recently updated first.
func (ldi ListDocumentsImpl) Query(ctx context.Context) ([]domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	docs, err := ldi.documentRepo.ListDocuments(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	return docs, nil
}

// InitListDocuments initializes the ListDocuments use case and registers it in the dependency container.
type InitListDocuments struct {
	DocumentRepo domain.DocumentRepository `resolve:""`
}

// Initialize initializes the ListDocumentsImpl use case and registers it in the dependency container.
func (ild InitListDocuments) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[ListDocuments](NewListDocumentsImpl(ild.DocumentRepo))
	return ctx, nil
}

package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// DefaultDocumentTitle is used when a document is created without a title.
const DefaultDocumentTitle = "Untitled"

// Document represents a document in the system. Content is plain text and is
// handed to the editor contract as-is.
type Document struct {
	ID        uuid.UUID
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (d Document) Validate() error {
	if d.Title == "" {
		return NewValidationErr("title cannot be empty")
	}
	if len(d.Title) > 200 {
		return NewValidationErr("title must be at most 200 characters")
	}
	return nil
}

// DocumentRepository defines the interface for interacting with documents in
// the data store.
type DocumentRepository interface {
	// ListDocuments retrieves all documents, most recently updated first.
	ListDocuments(ctx context.Context) ([]Document, error)

	// GetDocument retrieves a document by its unique identifier.
	GetDocument(ctx context.Context, id uuid.UUID) (Document, bool, error)

	// CreateDocument stores a new document.
	CreateDocument(ctx context.Context, doc Document) error

	// UpdateDocument updates an existing document.
	UpdateDocument(ctx context.Context, doc Document) error

	// DeleteDocument removes a document, reporting whether it existed.
	DeleteDocument(ctx context.Context, id uuid.UUID) (bool, error)
}

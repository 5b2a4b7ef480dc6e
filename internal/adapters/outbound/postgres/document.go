package postgres

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

var (
	documentFields = []string{
		"id",
		"title",
		"content",
		"created_at",
		"updated_at",
	}
)

// DocumentRepository implements the domain.DocumentRepository interface using PostgreSQL as the storage backend.
type DocumentRepository struct {
	sb squirrel.StatementBuilderType
}

// NewDocumentRepository creates a new instance of DocumentRepository.
func NewDocumentRepository(br squirrel.BaseRunner) DocumentRepository {
	return DocumentRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListDocuments lists all documents, most recently updated first.
func (dr DocumentRepository) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := dr.sb.
		Select(documentFields...).
		From("documents").
		OrderBy("updated_at DESC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var docs []domain.Document
	for rows.Next() {
		var doc domain.Document
		err := rows.Scan(
			&doc.ID,
			&doc.Title,
			&doc.Content,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		docs = append(docs, doc)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return docs, nil
}

// GetDocument retrieves a document by its ID.
func (dr DocumentRepository) GetDocument(ctx context.Context, id uuid.UUID) (domain.Document, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var doc domain.Document
	err := dr.sb.
		Select(documentFields...).
		From("documents").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(
			&doc.ID,
			&doc.Title,
			&doc.Content,
			&doc.CreatedAt,
			&doc.UpdatedAt,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Document{}, false, nil
		}
		return domain.Document{}, false, err
	}

	return doc, true, nil
}

// CreateDocument creates a new document.
func (dr DocumentRepository) CreateDocument(ctx context.Context, doc domain.Document) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := dr.sb.
		Insert("documents").
		Columns(documentFields...).
		Values(
			doc.ID,
			doc.Title,
			doc.Content,
			doc.CreatedAt,
			doc.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// UpdateDocument updates an existing document.
func (dr DocumentRepository) UpdateDocument(ctx context.Context, doc domain.Document) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := dr.sb.
		Update("documents").
		Set("title", doc.Title).
		Set("content", doc.Content).
		Set("updated_at", doc.UpdatedAt).
		Where(squirrel.Eq{"id": doc.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteDocument deletes a document by its ID, reporting whether it existed.
func (dr DocumentRepository) DeleteDocument(ctx context.Context, id uuid.UUID) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := dr.sb.
		Delete("documents").
		Where(squirrel.Eq{"id": id}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}

	affected, err := res.RowsAffected()
	if telemetry.RecordErrorAndStatus(span, err) {
		return false, err
	}
	return affected > 0, nil
}

// InitDocumentRepository is a Symbiont initializer for DocumentRepository.
type InitDocumentRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the DocumentRepository in the dependency container.
func (dr InitDocumentRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.DocumentRepository](NewDocumentRepository(dr.DB))
	return ctx, nil
}

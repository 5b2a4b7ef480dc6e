package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/telemetry"
)

var (
	todoTemplateFields = []string{
		"id",
		"name",
		"description",
		"items",
	}
)

// TodoTemplateRepository implements the domain.TodoTemplateRepository interface
// using PostgreSQL as the storage backend. Template items are stored as JSONB.
type TodoTemplateRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTodoTemplateRepository creates a new instance of TodoTemplateRepository.
func NewTodoTemplateRepository(br squirrel.BaseRunner) TodoTemplateRepository {
	return TodoTemplateRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListTemplates lists all templates in name order.
func (tr TodoTemplateRepository) ListTemplates(ctx context.Context) ([]domain.TodoTemplate, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := tr.sb.
		Select(todoTemplateFields...).
		From("todo_templates").
		OrderBy("name ASC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var templates []domain.TodoTemplate
	for rows.Next() {
		template, err := scanTemplate(rows)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		templates = append(templates, template)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return templates, nil
}

// GetTemplate retrieves a template by its ID.
func (tr TodoTemplateRepository) GetTemplate(ctx context.Context, id uuid.UUID) (domain.TodoTemplate, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	row := tr.sb.
		Select(todoTemplateFields...).
		From("todo_templates").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx)

	template, err := scanTemplate(row)
	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.TodoTemplate{}, false, nil
		}
		return domain.TodoTemplate{}, false, err
	}

	return template, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTemplate(row rowScanner) (domain.TodoTemplate, error) {
	var template domain.TodoTemplate
	var items []byte
	if err := row.Scan(
		&template.ID,
		&template.Name,
		&template.Description,
		&items,
	); err != nil {
		return domain.TodoTemplate{}, err
	}

	if err := json.Unmarshal(items, &template.Items); err != nil {
		return domain.TodoTemplate{}, fmt.Errorf("unmarshal template items: %w", err)
	}
	return template, nil
}

// InitTodoTemplateRepository is a Symbiont initializer for TodoTemplateRepository.
type InitTodoTemplateRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TodoTemplateRepository in the dependency container.
func (tr InitTodoTemplateRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TodoTemplateRepository](NewTodoTemplateRepository(tr.DB))
	return ctx, nil
}

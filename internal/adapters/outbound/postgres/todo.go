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
	todoFields = []string{
		"id",
		"title",
		"description",
		"status",
		"priority",
		"due_date",
		"created_at",
		"updated_at",
	}
)

// TodoRepository implements the domain.TodoRepository interface using PostgreSQL as the storage backend.
type TodoRepository struct {
	sb squirrel.StatementBuilderType
}

// NewTodoRepository creates a new instance of TodoRepository.
func NewTodoRepository(br squirrel.BaseRunner) TodoRepository {
	return TodoRepository{
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar).RunWith(br),
	}
}

// ListTodos lists all todos, most recently created first.
func (tr TodoRepository) ListTodos(ctx context.Context) ([]domain.Todo, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	rows, err := tr.sb.
		Select(todoFields...).
		From("todos").
		OrderBy("created_at DESC").
		QueryContext(spanCtx)
	if telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}
	defer rows.Close() //nolint:errcheck

	var todos []domain.Todo
	for rows.Next() {
		var todo domain.Todo
		err := rows.Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Status,
			&todo.Priority,
			&todo.DueDate,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)
		if telemetry.RecordErrorAndStatus(span, err) {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); telemetry.RecordErrorAndStatus(span, err) {
		return nil, err
	}

	return todos, nil
}

// GetTodo retrieves a todo by its ID.
func (tr TodoRepository) GetTodo(ctx context.Context, id uuid.UUID) (domain.Todo, bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	var todo domain.Todo
	err := tr.sb.
		Select(todoFields...).
		From("todos").
		Where(squirrel.Eq{"id": id}).
		QueryRowContext(spanCtx).
		Scan(
			&todo.ID,
			&todo.Title,
			&todo.Description,
			&todo.Status,
			&todo.Priority,
			&todo.DueDate,
			&todo.CreatedAt,
			&todo.UpdatedAt,
		)

	if telemetry.RecordErrorAndStatus(span, err) {
		if err == sql.ErrNoRows {
			return domain.Todo{}, false, nil
		}
		return domain.Todo{}, false, err
	}

	return todo, true, nil
}

// CreateTodo creates a new todo.
func (tr TodoRepository) CreateTodo(ctx context.Context, todo domain.Todo) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Insert("todos").
		Columns(todoFields...).
		Values(
			todo.ID,
			todo.Title,
			todo.Description,
			todo.Status,
			todo.Priority,
			todo.DueDate,
			todo.CreatedAt,
			todo.UpdatedAt,
		).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}

	return nil
}

// UpdateTodo updates an existing todo.
func (tr TodoRepository) UpdateTodo(ctx context.Context, todo domain.Todo) error {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	_, err := tr.sb.
		Update("todos").
		Set("title", todo.Title).
		Set("description", todo.Description).
		Set("status", todo.Status).
		Set("priority", todo.Priority).
		Set("due_date", todo.DueDate).
		Set("updated_at", todo.UpdatedAt).
		Where(squirrel.Eq{"id": todo.ID}).
		ExecContext(spanCtx)

	if telemetry.RecordErrorAndStatus(span, err) {
		return err
	}
	return nil
}

// DeleteTodo deletes a todo by its ID, reporting whether it existed.
func (tr TodoRepository) DeleteTodo(ctx context.Context, id uuid.UUID) (bool, error) {
	spanCtx, span := telemetry.Start(ctx)
	defer span.End()

	res, err := tr.sb.
		Delete("todos").
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

// InitTodoRepository is a Symbiont initializer for TodoRepository.
type InitTodoRepository struct {
	DB *sql.DB `resolve:""`
}

// Initialize registers the TodoRepository in the dependency container.
func (tr InitTodoRepository) Initialize(ctx context.Context) (context.Context, error) {
	depend.Register[domain.TodoRepository](NewTodoRepository(tr.DB))
	return ctx, nil
}

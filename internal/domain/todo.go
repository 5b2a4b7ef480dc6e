package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TodoStatus represents the status of a todo item.
type TodoStatus string

const (
	TodoStatus_NEW         TodoStatus = "NEW"
	TodoStatus_IN_PROGRESS TodoStatus = "IN_PROGRESS"
	TodoStatus_COMPLETED   TodoStatus = "COMPLETED"
)

// TodoPriority represents the priority of a todo item. It is optional; an
// empty priority means unset.
type TodoPriority string

const (
	TodoPriority_LOW    TodoPriority = "LOW"
	TodoPriority_MEDIUM TodoPriority = "MEDIUM"
	TodoPriority_HIGH   TodoPriority = "HIGH"
)

// Todo represents a todo item in the system.
type Todo struct {
	ID          uuid.UUID
	Title       string
	Description string
	Status      TodoStatus
	Priority    TodoPriority
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (t Todo) Validate() error {
	if t.Title == "" {
		return NewValidationErr("title cannot be empty")
	}
	if len(t.Title) > 200 {
		return NewValidationErr("title must be at most 200 characters")
	}
	if t.Status != TodoStatus_NEW && t.Status != TodoStatus_IN_PROGRESS && t.Status != TodoStatus_COMPLETED {
		return NewValidationErr("status must be NEW, IN_PROGRESS or COMPLETED")
	}
	if t.Priority != "" && t.Priority != TodoPriority_LOW && t.Priority != TodoPriority_MEDIUM && t.Priority != TodoPriority_HIGH {
		return NewValidationErr("priority must be LOW, MEDIUM or HIGH")
	}
	return nil
}

// TodoRepository defines the interface for interacting with todo items in
// the data store.
type TodoRepository interface {
	// ListTodos retrieves all todos, most recently created first.
	ListTodos(ctx context.Context) ([]Todo, error)

	// GetTodo retrieves a todo item by its unique identifier.
	GetTodo(ctx context.Context, id uuid.UUID) (Todo, bool, error)

	// CreateTodo stores a new todo item.
	CreateTodo(ctx context.Context, todo Todo) error

	// UpdateTodo updates an existing todo item.
	UpdateTodo(ctx context.Context, todo Todo) error

	// DeleteTodo removes a todo item, reporting whether it existed.
	DeleteTodo(ctx context.Context, id uuid.UUID) (bool, error)
}

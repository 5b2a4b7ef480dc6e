package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/quillnotes/quill/internal/domain"
	domain_mocks "github.com/quillnotes/quill/internal/domain/mocks"
)

var fixedTime = time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)

func fixedUUID() uuid.UUID {
	return uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
}

func TestCreateTodoImpl_Execute(t *testing.T) {
	dueDate := time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC)
	todo := domain.Todo{
		ID:          fixedUUID(),
		Title:       "Buy groceries",
		Description: "milk and bread",
		Status:      domain.TodoStatus_NEW,
		Priority:    domain.TodoPriority_MEDIUM,
		DueDate:     &dueDate,
		CreatedAt:   fixedTime,
		UpdatedAt:   fixedTime,
	}

	tests := map[string]struct {
		title           string
		description     string
		priority        domain.TodoPriority
		dueDate         string
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedTodo    domain.Todo
		expectedErr     error
	}{
		"success-with-relative-due-date": {
			title:       "Buy groceries",
			description: "milk and bread",
			priority:    domain.TodoPriority_MEDIUM,
			dueDate:     "tomorrow",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockTodoRepository(t)

				uow.EXPECT().Todos().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().CreateTodo(mock.Anything, todo).Return(nil)
			},
			expectedTodo: todo,
		},
		"validation-error-empty-title": {
			title: "",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("title cannot be empty"),
		},
		"validation-error-unparseable-due-date": {
			title:   "Buy groceries",
			dueDate: "someday maybe",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("due_date is not a recognizable date"),
		},
		"repository-error": {
			title:       "Buy groceries",
			description: "milk and bread",
			priority:    domain.TodoPriority_MEDIUM,
			dueDate:     "tomorrow",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockTodoRepository(t)

				uow.EXPECT().Todos().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})

				repo.EXPECT().CreateTodo(mock.Anything, todo).Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			if tt.setExpectations != nil {
				tt.setExpectations(uow, timeProvider)
			}

			cti := NewCreateTodoImpl(uow, timeProvider)
			cti.createUUID = fixedUUID

			got, gotErr := cti.Execute(context.Background(), tt.title, tt.description, tt.priority, tt.dueDate)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedTodo, got)
		})
	}
}

package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/quillnotes/quill/internal/domain"
	domain_mocks "github.com/quillnotes/quill/internal/domain/mocks"
)

func TestUpdateTodoImpl_Execute(t *testing.T) {
	stored := domain.Todo{
		ID:        fixedUUID(),
		Title:     "Buy groceries",
		Status:    domain.TodoStatus_NEW,
		CreatedAt: fixedTime.Add(-time.Hour),
		UpdatedAt: fixedTime.Add(-time.Hour),
	}

	completed := domain.TodoStatus_COMPLETED
	newTitle := "Buy groceries and fruit"
	clearDue := ""

	tests := map[string]struct {
		changes         TodoChanges
		setExpectations func(repo *domain_mocks.MockTodoRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedTodo    domain.Todo
		expectedErr     error
	}{
		"updates-title-and-status": {
			changes: TodoChanges{Title: &newTitle, Status: &completed, DueDate: &clearDue},
			setExpectations: func(repo *domain_mocks.MockTodoRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				repo.EXPECT().GetTodo(mock.Anything, fixedUUID()).Return(stored, true, nil)
				timeProvider.EXPECT().Now().Return(fixedTime)

				txRepo := domain_mocks.NewMockTodoRepository(t)
				uow.EXPECT().Todos().Return(txRepo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})

				updated := stored
				updated.Title = newTitle
				updated.Status = completed
				updated.UpdatedAt = fixedTime
				txRepo.EXPECT().UpdateTodo(mock.Anything, updated).Return(nil)
			},
			expectedTodo: func() domain.Todo {
				updated := stored
				updated.Title = newTitle
				updated.Status = completed
				updated.UpdatedAt = fixedTime
				return updated
			}(),
		},
		"not-found": {
			changes: TodoChanges{Title: &newTitle},
			setExpectations: func(repo *domain_mocks.MockTodoRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				repo.EXPECT().GetTodo(mock.Anything, fixedUUID()).Return(domain.Todo{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("todo not found"),
		},
		"rejects-invalid-status": {
			changes: func() TodoChanges {
				bad := domain.TodoStatus("ARCHIVED")
				return TodoChanges{Status: &bad}
			}(),
			setExpectations: func(repo *domain_mocks.MockTodoRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				repo.EXPECT().GetTodo(mock.Anything, fixedUUID()).Return(stored, true, nil)
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("status must be NEW, IN_PROGRESS or COMPLETED"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockTodoRepository(t)
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			tt.setExpectations(repo, uow, timeProvider)

			uti := NewUpdateTodoImpl(repo, uow, timeProvider)

			got, gotErr := uti.Execute(context.Background(), fixedUUID(), tt.changes)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedTodo, got)
		})
	}
}

func TestDeleteTodoImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		setExpectations func(uow *domain_mocks.MockUnitOfWork)
		expectedErr     error
	}{
		"success": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				repo := domain_mocks.NewMockTodoRepository(t)
				uow.EXPECT().Todos().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().DeleteTodo(mock.Anything, fixedUUID()).Return(true, nil)
			},
		},
		"not-found": {
			setExpectations: func(uow *domain_mocks.MockUnitOfWork) {
				repo := domain_mocks.NewMockTodoRepository(t)
				uow.EXPECT().Todos().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().DeleteTodo(mock.Anything, fixedUUID()).Return(false, nil)
			},
			expectedErr: domain.NewNotFoundErr("todo not found"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			tt.setExpectations(uow)

			dti := NewDeleteTodoImpl(uow)
			assert.Equal(t, tt.expectedErr, dti.Execute(context.Background(), fixedUUID()))
		})
	}
}

func TestListTodosImpl_Query(t *testing.T) {
	repo := domain_mocks.NewMockTodoRepository(t)
	expected := []domain.Todo{{ID: fixedUUID(), Title: "Buy groceries", Status: domain.TodoStatus_NEW}}
	repo.EXPECT().ListTodos(mock.Anything).Return(expected, nil).Once()

	got, err := NewListTodosImpl(repo).Query(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

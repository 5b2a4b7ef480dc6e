package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cleitonmarx/symbiont/depend"
	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestUnitOfWork_Execute(t *testing.T) {
	todoID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	deleteTodo := func(uow domain.UnitOfWork) error {
		_, err := uow.Todos().DeleteTodo(context.Background(), todoID)
		return err
	}

	tests := map[string]struct {
		setupMock func(sqlmock.Sqlmock)
		fn        func(uow domain.UnitOfWork) error
		expectErr bool
	}{
		"success-commit": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM todos WHERE id = $1").
					WithArgs(todoID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit()
			},
			fn:        deleteTodo,
			expectErr: false,
		},
		"success-rollback-on-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM todos WHERE id = $1").
					WithArgs(todoID).
					WillReturnError(errors.New("delete error"))
				m.ExpectRollback()
			},
			fn:        deleteTodo,
			expectErr: true,
		},
		"begin-transaction-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin().WillReturnError(errors.New("begin error"))
			},
			fn: func(uow domain.UnitOfWork) error {
				return nil
			},
			expectErr: true,
		},
		"commit-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM todos WHERE id = $1").
					WithArgs(todoID).
					WillReturnResult(sqlmock.NewResult(0, 1))
				m.ExpectCommit().WillReturnError(errors.New("commit error"))
			},
			fn:        deleteTodo,
			expectErr: true,
		},
		"rollback-error-with-original-error": {
			setupMock: func(m sqlmock.Sqlmock) {
				m.ExpectBegin()
				m.ExpectExec("DELETE FROM todos WHERE id = $1").
					WithArgs(todoID).
					WillReturnError(errors.New("delete error"))
				m.ExpectRollback().WillReturnError(errors.New("rollback error"))
			},
			fn:        deleteTodo,
			expectErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
			assert.NoError(t, err)
			defer db.Close() //nolint:errcheck

			tt.setupMock(mock)

			uow := NewUnitOfWork(db)
			err = uow.Execute(context.Background(), tt.fn)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUnitOfWork_Todos(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	uow := NewUnitOfWork(db)
	repo := uow.Todos()

	assert.NotNil(t, repo)
	assert.IsType(t, TodoRepository{}, repo)
}

func TestUnitOfWork_Documents(t *testing.T) {
	db, _, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	uow := NewUnitOfWork(db)
	repo := uow.Documents()

	assert.NotNil(t, repo)
	assert.IsType(t, DocumentRepository{}, repo)
}

func TestUnitOfWork_getBaseRunner(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	t.Run("returns-db-when-no-transaction", func(t *testing.T) {
		uow := NewUnitOfWork(db)
		runner := uow.getBaseRunner()
		assert.Equal(t, db, runner)
	})

	t.Run("returns-tx-when-in-transaction", func(t *testing.T) {
		mock.ExpectBegin()

		tx, err := db.Begin()
		assert.NoError(t, err)

		uow := &UnitOfWork{
			db: db,
			tx: tx,
		}

		runner := uow.getBaseRunner()
		assert.Equal(t, tx, runner)

		// Clean up
		mock.ExpectRollback()
		_ = tx.Rollback()
	})
}

func TestUnitOfWork_TransactionIsolation(t *testing.T) {
	fixedTime := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	docID := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	assert.NoError(t, err)
	defer db.Close() //nolint:errcheck

	// Both operations must run on the same transaction
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE documents SET title = $1, content = $2, updated_at = $3 WHERE id = $4").
		WithArgs("Meeting notes", "Edited content", fixedTime, docID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO todos (id,title,description,status,priority,due_date,created_at,updated_at) VALUES ($1,$2,$3,$4,$5,$6,$7,$8)").
		WithArgs(
			sqlmock.AnyArg(),
			"Review edited notes",
			"",
			domain.TodoStatus_NEW,
			domain.TodoPriority(""),
			nil,
			fixedTime,
			fixedTime,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	uow := NewUnitOfWork(db)
	err = uow.Execute(context.Background(), func(uow domain.UnitOfWork) error {
		if err := uow.Documents().UpdateDocument(context.Background(), domain.Document{
			ID:        docID,
			Title:     "Meeting notes",
			Content:   "Edited content",
			UpdatedAt: fixedTime,
		}); err != nil {
			return err
		}

		return uow.Todos().CreateTodo(context.Background(), domain.Todo{
			ID:        uuid.New(),
			Title:     "Review edited notes",
			Status:    domain.TodoStatus_NEW,
			CreatedAt: fixedTime,
			UpdatedAt: fixedTime,
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitUnitOfWork_Initialize(t *testing.T) {
	i := &InitUnitOfWork{
		DB: &sql.DB{},
	}

	_, err := i.Initialize(context.Background())
	assert.NoError(t, err)

	_, err = depend.Resolve[domain.UnitOfWork]()
	assert.NoError(t, err)
}

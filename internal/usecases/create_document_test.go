package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/quillnotes/quill/internal/domain"
	domain_mocks "github.com/quillnotes/quill/internal/domain/mocks"
)

func TestCreateDocumentImpl_Execute(t *testing.T) {
	doc := domain.Document{
		ID:        fixedUUID(),
		Title:     "Meeting notes",
		Content:   "Agenda:",
		CreatedAt: fixedTime,
		UpdatedAt: fixedTime,
	}

	tests := map[string]struct {
		title           string
		content         string
		setExpectations func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedDoc     domain.Document
		expectedErr     error
	}{
		"success": {
			title:   "Meeting notes",
			content: "Agenda:",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockDocumentRepository(t)
				uow.EXPECT().Documents().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().CreateDocument(mock.Anything, doc).Return(nil)
			},
			expectedDoc: doc,
		},
		"empty-title-falls-back-to-default": {
			title: "",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				untitled := domain.Document{
					ID:        fixedUUID(),
					Title:     domain.DefaultDocumentTitle,
					CreatedAt: fixedTime,
					UpdatedAt: fixedTime,
				}
				repo := domain_mocks.NewMockDocumentRepository(t)
				uow.EXPECT().Documents().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().CreateDocument(mock.Anything, untitled).Return(nil)
			},
			expectedDoc: domain.Document{
				ID:        fixedUUID(),
				Title:     domain.DefaultDocumentTitle,
				CreatedAt: fixedTime,
				UpdatedAt: fixedTime,
			},
		},
		"repository-error": {
			title:   "Meeting notes",
			content: "Agenda:",
			setExpectations: func(uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				timeProvider.EXPECT().Now().Return(fixedTime)

				repo := domain_mocks.NewMockDocumentRepository(t)
				uow.EXPECT().Documents().Return(repo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				repo.EXPECT().CreateDocument(mock.Anything, doc).Return(errors.New("database error"))
			},
			expectedErr: errors.New("database error"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			tt.setExpectations(uow, timeProvider)

			cdi := NewCreateDocumentImpl(uow, timeProvider)
			cdi.createUUID = fixedUUID

			got, gotErr := cdi.Execute(context.Background(), tt.title, tt.content)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedDoc, got)
		})
	}
}

func TestGetDocumentImpl_Query(t *testing.T) {
	doc := domain.Document{ID: fixedUUID(), Title: "Meeting notes"}

	tests := map[string]struct {
		setExpectations func(repo *domain_mocks.MockDocumentRepository)
		expectedDoc     domain.Document
		expectedErr     error
	}{
		"found": {
			setExpectations: func(repo *domain_mocks.MockDocumentRepository) {
				repo.EXPECT().GetDocument(mock.Anything, fixedUUID()).Return(doc, true, nil)
			},
			expectedDoc: doc,
		},
		"not-found": {
			setExpectations: func(repo *domain_mocks.MockDocumentRepository) {
				repo.EXPECT().GetDocument(mock.Anything, fixedUUID()).Return(domain.Document{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("document not found"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockDocumentRepository(t)
			tt.setExpectations(repo)

			got, gotErr := NewGetDocumentImpl(repo).Query(context.Background(), fixedUUID())
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedDoc, got)
		})
	}
}

func TestListDocumentsImpl_Query(t *testing.T) {
	repo := domain_mocks.NewMockDocumentRepository(t)
	expected := []domain.Document{{ID: fixedUUID(), Title: "Meeting notes"}}
	repo.EXPECT().ListDocuments(mock.Anything).Return(expected, nil).Once()

	got, err := NewListDocumentsImpl(repo).Query(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, got)
}

func TestDeleteDocumentImpl_Execute(t *testing.T) {
	tests := map[string]struct {
		deleted     bool
		expectedErr error
	}{
		"success":   {deleted: true},
		"not-found": {deleted: false, expectedErr: domain.NewNotFoundErr("document not found")},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			uow := domain_mocks.NewMockUnitOfWork(t)
			repo := domain_mocks.NewMockDocumentRepository(t)
			uow.EXPECT().Documents().Return(repo)
			uow.EXPECT().
				Execute(mock.Anything, mock.Anything).
				RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
					return fn(uow)
				})
			repo.EXPECT().DeleteDocument(mock.Anything, fixedUUID()).Return(tt.deleted, nil)

			assert.Equal(t, tt.expectedErr, NewDeleteDocumentImpl(uow).Execute(context.Background(), fixedUUID()))
		})
	}
}

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

func TestUpdateDocumentImpl_Execute(t *testing.T) {
	stored := domain.Document{
		ID:        fixedUUID(),
		Title:     "Meeting notes",
		Content:   "Agenda:",
		CreatedAt: fixedTime.Add(-24 * time.Hour),
		UpdatedAt: fixedTime.Add(-24 * time.Hour),
	}

	newContent := "Agenda:\n- roadmap review"
	emptyTitle := ""

	tests := map[string]struct {
		changes         DocumentChanges
		setExpectations func(repo *domain_mocks.MockDocumentRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider)
		expectedDoc     domain.Document
		expectedErr     error
	}{
		"updates-content-only": {
			changes: DocumentChanges{Content: &newContent},
			setExpectations: func(repo *domain_mocks.MockDocumentRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				repo.EXPECT().GetDocument(mock.Anything, fixedUUID()).Return(stored, true, nil)
				timeProvider.EXPECT().Now().Return(fixedTime)

				updated := stored
				updated.Content = newContent
				updated.UpdatedAt = fixedTime

				txRepo := domain_mocks.NewMockDocumentRepository(t)
				uow.EXPECT().Documents().Return(txRepo)
				uow.EXPECT().
					Execute(mock.Anything, mock.Anything).
					RunAndReturn(func(ctx context.Context, fn func(_ domain.UnitOfWork) error) error {
						return fn(uow)
					})
				txRepo.EXPECT().UpdateDocument(mock.Anything, updated).Return(nil)
			},
			expectedDoc: func() domain.Document {
				updated := stored
				updated.Content = newContent
				updated.UpdatedAt = fixedTime
				return updated
			}(),
		},
		"not-found": {
			changes: DocumentChanges{Content: &newContent},
			setExpectations: func(repo *domain_mocks.MockDocumentRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				repo.EXPECT().GetDocument(mock.Anything, fixedUUID()).Return(domain.Document{}, false, nil)
			},
			expectedErr: domain.NewNotFoundErr("document not found"),
		},
		"rejects-empty-title": {
			changes: DocumentChanges{Title: &emptyTitle},
			setExpectations: func(repo *domain_mocks.MockDocumentRepository, uow *domain_mocks.MockUnitOfWork, timeProvider *domain_mocks.MockCurrentTimeProvider) {
				repo.EXPECT().GetDocument(mock.Anything, fixedUUID()).Return(stored, true, nil)
				timeProvider.EXPECT().Now().Return(fixedTime)
			},
			expectedErr: domain.NewValidationErr("title cannot be empty"),
		},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			repo := domain_mocks.NewMockDocumentRepository(t)
			uow := domain_mocks.NewMockUnitOfWork(t)
			timeProvider := domain_mocks.NewMockCurrentTimeProvider(t)
			tt.setExpectations(repo, uow, timeProvider)

			udi := NewUpdateDocumentImpl(repo, uow, timeProvider)

			got, gotErr := udi.Execute(context.Background(), fixedUUID(), tt.changes)
			assert.Equal(t, tt.expectedErr, gotErr)
			assert.Equal(t, tt.expectedDoc, got)
		})
	}
}

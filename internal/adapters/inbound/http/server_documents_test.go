package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/usecases"
	"github.com/quillnotes/quill/internal/usecases/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestQuillServer_CreateDocument(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockCreateDocument)
		expectedStatus int
		expectedDoc    *Document
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, CreateDocumentReq{
				Title:   "Meeting notes",
				Content: "The quick brown fox",
			}),
			setupMocks: func(m *mocks.MockCreateDocument) {
				m.EXPECT().
					Execute(mock.Anything, "Meeting notes", "The quick brown fox").
					Return(domainDocument, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedDoc: &Document{
				ID:        domainDocument.ID,
				Title:     domainDocument.Title,
				Content:   domainDocument.Content,
				CreatedAt: domainDocument.CreatedAt,
				UpdatedAt: domainDocument.UpdatedAt,
			},
		},
		"validation-error": {
			requestBody: serializeJSON(t, CreateDocumentReq{
				Title: "An exceedingly long title",
			}),
			setupMocks: func(m *mocks.MockCreateDocument) {
				m.EXPECT().
					Execute(mock.Anything, "An exceedingly long title", "").
					Return(domain.Document{}, domain.NewValidationErr("title must be at most 200 characters"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: ErrorCode_BadRequest, Message: "title must be at most 200 characters"},
			},
		},
		"internal-server-error": {
			requestBody: serializeJSON(t, CreateDocumentReq{Title: "Meeting notes"}),
			setupMocks: func(m *mocks.MockCreateDocument) {
				m.EXPECT().
					Execute(mock.Anything, "Meeting notes", "").
					Return(domain.Document{}, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedError: &ErrorResp{
				Error: Error{Code: ErrorCode_InternalError, Message: "internal server error"},
			},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{not json`),
			setupMocks:     func(m *mocks.MockCreateDocument) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockCreate := mocks.NewMockCreateDocument(t)
			tt.setupMocks(mockCreate)

			api := QuillServer{
				CreateDocumentUseCase: mockCreate,
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/documents", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			w := serveRequest(api, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedDoc != nil {
				var doc Document
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
				assert.Equal(t, *tt.expectedDoc, doc)
			}
			if tt.expectedError != nil {
				var errResp ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError.Error, errResp.Error)
			}
		})
	}
}

func TestQuillServer_GetDocument(t *testing.T) {
	tests := map[string]struct {
		target         string
		setupMocks     func(*mocks.MockGetDocument)
		expectedStatus int
	}{
		"success": {
			target: "/api/documents/" + documentID.String(),
			setupMocks: func(m *mocks.MockGetDocument) {
				m.EXPECT().
					Query(mock.Anything, documentID).
					Return(domainDocument, nil)
			},
			expectedStatus: http.StatusOK,
		},
		"not-found": {
			target: "/api/documents/" + documentID.String(),
			setupMocks: func(m *mocks.MockGetDocument) {
				m.EXPECT().
					Query(mock.Anything, documentID).
					Return(domain.Document{}, domain.NewNotFoundErr("document not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
		"invalid-id": {
			target:         "/api/documents/not-a-uuid",
			setupMocks:     func(m *mocks.MockGetDocument) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockGet := mocks.NewMockGetDocument(t)
			tt.setupMocks(mockGet)

			api := QuillServer{
				GetDocumentUseCase: mockGet,
				Logger:             log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := serveRequest(api, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestQuillServer_ListDocuments(t *testing.T) {
	mockList := mocks.NewMockListDocuments(t)
	mockList.EXPECT().
		Query(mock.Anything).
		Return([]domain.Document{domainDocument}, nil)

	api := QuillServer{
		ListDocumentsUseCase: mockList,
		Logger:               log.New(io.Discard, "", 0),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/documents", nil)
	w := serveRequest(api, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var docs []Document
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &docs))
	assert.Len(t, docs, 1)
	assert.Equal(t, "Meeting notes", docs[0].Title)
}

func TestQuillServer_UpdateDocument(t *testing.T) {
	newContent := "Edited content"
	updatedDoc := domainDocument
	updatedDoc.Content = newContent

	mockUpdate := mocks.NewMockUpdateDocument(t)
	mockUpdate.EXPECT().
		Execute(mock.Anything, documentID, usecases.DocumentChanges{Content: &newContent}).
		Return(updatedDoc, nil)

	api := QuillServer{
		UpdateDocumentUseCase: mockUpdate,
		Logger:                log.New(io.Discard, "", 0),
	}

	body := serializeJSON(t, UpdateDocumentReq{Content: &newContent})
	req := httptest.NewRequest(http.MethodPatch, "/api/documents/"+documentID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := serveRequest(api, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var doc Document
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, newContent, doc.Content)
}

func TestQuillServer_DeleteDocument(t *testing.T) {
	tests := map[string]struct {
		setupMocks     func(*mocks.MockDeleteDocument)
		expectedStatus int
	}{
		"success": {
			setupMocks: func(m *mocks.MockDeleteDocument) {
				m.EXPECT().
					Execute(mock.Anything, documentID).
					Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		"not-found": {
			setupMocks: func(m *mocks.MockDeleteDocument) {
				m.EXPECT().
					Execute(mock.Anything, documentID).
					Return(domain.NewNotFoundErr("document not found"))
			},
			expectedStatus: http.StatusNotFound,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockDelete := mocks.NewMockDeleteDocument(t)
			tt.setupMocks(mockDelete)

			api := QuillServer{
				DeleteDocumentUseCase: mockDelete,
				Logger:                log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodDelete, "/api/documents/"+documentID.String(), nil)
			w := serveRequest(api, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

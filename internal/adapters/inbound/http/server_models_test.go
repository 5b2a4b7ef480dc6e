package http

import (
	"bytes"
	"encoding/json"
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

func TestQuillServer_ListModels(t *testing.T) {
	mockList := mocks.NewMockListModels(t)
	mockList.EXPECT().
		Query(mock.Anything).
		Return([]usecases.ModelView{
			{
				ModelDescriptor: domain.ModelDescriptor{
					ID:          "gpt-3.5-turbo",
					Name:        "GPT-3.5 Turbo",
					Description: "Fast and cost-effective model suitable for most tasks",
				},
				Available: true,
				Selected:  true,
			},
			{
				ModelDescriptor: domain.ModelDescriptor{
					ID:          "gpt-4",
					Name:        "GPT-4",
					Description: "More capable model for complex reasoning and understanding",
				},
			},
		})

	api := QuillServer{
		ListModelsUseCase: mockList,
		Logger:            log.New(io.Discard, "", 0),
	}

	req := httptest.NewRequest(http.MethodGet, "/api/models", nil)
	w := serveRequest(api, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var models []Model
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &models))
	assert.Len(t, models, 2)
	assert.Equal(t, "gpt-3.5-turbo", models[0].ID)
	assert.True(t, models[0].Selected)
	assert.True(t, models[0].Available)
	assert.False(t, models[1].Available)
}

func TestQuillServer_SelectModel(t *testing.T) {
	tests := map[string]struct {
		requestBody    []byte
		setupMocks     func(*mocks.MockSelectModel)
		expectedStatus int
		expectedModel  *Model
		expectedError  *ErrorResp
	}{
		"success": {
			requestBody: serializeJSON(t, SelectModelReq{ID: "gpt-4"}),
			setupMocks: func(m *mocks.MockSelectModel) {
				m.EXPECT().
					Execute(mock.Anything, "gpt-4").
					Return(domain.ModelDescriptor{
						ID:          "gpt-4",
						Name:        "GPT-4",
						Description: "More capable model for complex reasoning and understanding",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedModel: &Model{
				ID:          "gpt-4",
				Name:        "GPT-4",
				Description: "More capable model for complex reasoning and understanding",
				Selected:    true,
			},
		},
		"model-outside-catalog-still-selected": {
			requestBody: serializeJSON(t, SelectModelReq{ID: "gpt-99"}),
			setupMocks: func(m *mocks.MockSelectModel) {
				m.EXPECT().
					Execute(mock.Anything, "gpt-99").
					Return(domain.ModelDescriptor{ID: "gpt-99", Name: "gpt-99"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedModel: &Model{
				ID:       "gpt-99",
				Name:     "gpt-99",
				Selected: true,
			},
		},
		"invalid-json-body": {
			requestBody:    []byte(`{not json`),
			setupMocks:     func(m *mocks.MockSelectModel) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockSelect := mocks.NewMockSelectModel(t)
			tt.setupMocks(mockSelect)

			api := QuillServer{
				SelectModelUseCase: mockSelect,
				Logger:             log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPut, "/api/models/selected", bytes.NewReader(tt.requestBody))
			req.Header.Set("Content-Type", "application/json")

			w := serveRequest(api, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedModel != nil {
				var model Model
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &model))
				assert.Equal(t, *tt.expectedModel, model)
			}
			if tt.expectedError != nil {
				var errResp ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError.Error, errResp.Error)
			}
		})
	}
}

func TestQuillServer_ProbeModel(t *testing.T) {
	tests := map[string]struct {
		modelID        string
		setupMocks     func(*mocks.MockProbeModel)
		expectedStatus int
		expectedResp   *ProbeModelResp
		expectedError  *ErrorResp
	}{
		"available": {
			modelID: "gpt-4",
			setupMocks: func(m *mocks.MockProbeModel) {
				m.EXPECT().
					Execute(mock.Anything, "gpt-4").
					Return(true, nil)
			},
			expectedStatus: http.StatusOK,
			expectedResp:   &ProbeModelResp{ID: "gpt-4", Available: true},
		},
		"rejected": {
			modelID: "gpt-4o",
			setupMocks: func(m *mocks.MockProbeModel) {
				m.EXPECT().
					Execute(mock.Anything, "gpt-4o").
					Return(false, nil)
			},
			expectedStatus: http.StatusOK,
			expectedResp:   &ProbeModelResp{ID: "gpt-4o", Available: false},
		},
		"missing-credential": {
			modelID: "gpt-4",
			setupMocks: func(m *mocks.MockProbeModel) {
				m.EXPECT().
					Execute(mock.Anything, "gpt-4").
					Return(false, domain.NewMissingCredentialErr())
			},
			expectedStatus: http.StatusBadRequest,
			expectedError: &ErrorResp{
				Error: Error{Code: ErrorCode_BadRequest, Message: domain.MissingCredentialMessage},
			},
		},
		"unknown-model": {
			modelID: "gpt-99",
			setupMocks: func(m *mocks.MockProbeModel) {
				m.EXPECT().
					Execute(mock.Anything, "gpt-99").
					Return(false, domain.NewNotFoundErr("model not found: gpt-99"))
			},
			expectedStatus: http.StatusNotFound,
			expectedError: &ErrorResp{
				Error: Error{Code: ErrorCode_NotFound, Message: "model not found: gpt-99"},
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			mockProbe := mocks.NewMockProbeModel(t)
			tt.setupMocks(mockProbe)

			api := QuillServer{
				ProbeModelUseCase: mockProbe,
				Logger:            log.New(io.Discard, "", 0),
			}

			req := httptest.NewRequest(http.MethodPost, "/api/models/"+tt.modelID+"/probe", nil)
			w := serveRequest(api, req)

			assert.Equal(t, tt.expectedStatus, w.Code)

			if tt.expectedResp != nil {
				var resp ProbeModelResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedResp, resp)
			}
			if tt.expectedError != nil {
				var errResp ErrorResp
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
				assert.Equal(t, tt.expectedError.Error, errResp.Error)
			}
		})
	}
}

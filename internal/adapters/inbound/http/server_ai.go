package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/usecases"
)

// ProcessContent runs an action against request-supplied content. The
// response is always 200 with a result envelope; pipeline failures ride in
// the envelope, not the status code.
func (api QuillServer) ProcessContent(w http.ResponseWriter, r *http.Request) {
	var req ProcessContentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		respondJSON(w, http.StatusOK, domain.FailureResult(err))
		return
	}

	result := api.ProcessContentUseCase.Execute(
		r.Context(),
		action,
		req.Content,
		domain.OptionsForAction(action, req.Options),
	)

	respondJSON(w, http.StatusOK, result)
}

// RunDocumentAction runs an action against a selection of a stored document
// and persists the rewritten content when the pipeline succeeds.
func (api QuillServer) RunDocumentAction(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid document id"))
		return
	}

	var req DocumentActionReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	action, err := domain.ParseAction(req.Action)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	doc, result, err := api.RunEditorActionUseCase.Execute(
		r.Context(),
		id,
		usecases.EditorSelection{Anchor: req.Selection.Anchor, Head: req.Selection.Head},
		action,
		req.Options,
	)
	if err != nil {
		api.Logger.Printf("Error running document action: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, DocumentActionResp{
		Result:   result,
		Document: toDocument(doc),
	})
}

// GetAssistantStatus reports credential and session state.
func (api QuillServer) GetAssistantStatus(w http.ResponseWriter, r *http.Request) {
	status := api.GetAssistantStatusUseCase.Query(r.Context())
	respondJSON(w, http.StatusOK, AssistantStatusResp{
		CredentialConfigured: status.CredentialConfigured,
		SelectedModel:        status.SelectedModel,
		Phase:                string(status.Phase),
	})
}

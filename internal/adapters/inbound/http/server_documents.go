package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/usecases"
)

func (api QuillServer) ListDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := api.ListDocumentsUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing documents: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := make([]Document, 0, len(docs))
	for _, d := range docs {
		resp = append(resp, toDocument(d))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api QuillServer) GetDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid document id"))
		return
	}

	doc, err := api.GetDocumentUseCase.Query(r.Context(), id)
	if err != nil {
		api.Logger.Printf("Error getting document: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toDocument(doc))
}

func (api QuillServer) CreateDocument(w http.ResponseWriter, r *http.Request) {
	var req CreateDocumentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	doc, err := api.CreateDocumentUseCase.Execute(r.Context(), req.Title, req.Content)
	if err != nil {
		api.Logger.Printf("Error creating document: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toDocument(doc))
}

func (api QuillServer) UpdateDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid document id"))
		return
	}

	var req UpdateDocumentReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	doc, err := api.UpdateDocumentUseCase.Execute(r.Context(), id, usecases.DocumentChanges{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		api.Logger.Printf("Error updating document: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toDocument(doc))
}

func (api QuillServer) DeleteDocument(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid document id"))
		return
	}

	if err := api.DeleteDocumentUseCase.Execute(r.Context(), id); err != nil {
		api.Logger.Printf("Error deleting document: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

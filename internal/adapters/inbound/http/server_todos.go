package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/quillnotes/quill/internal/domain"
	"github.com/quillnotes/quill/internal/usecases"
)

func (api QuillServer) ListTodos(w http.ResponseWriter, r *http.Request) {
	todos, err := api.ListTodosUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing todos: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := make([]Todo, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodo(t))
	}

	respondJSON(w, http.StatusOK, resp)
}

func (api QuillServer) CreateTodo(w http.ResponseWriter, r *http.Request) {
	var req CreateTodoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	todo, err := api.CreateTodoUseCase.Execute(
		r.Context(),
		req.Title,
		req.Description,
		domain.TodoPriority(req.Priority),
		req.DueDate,
	)
	if err != nil {
		api.Logger.Printf("Error creating todo: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusCreated, toTodo(todo))
}

func (api QuillServer) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid todo id"))
		return
	}

	var req UpdateTodoReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	todo, err := api.UpdateTodoUseCase.Execute(r.Context(), id, usecases.TodoChanges{
		Title:       req.Title,
		Description: req.Description,
		Status:      (*domain.TodoStatus)(req.Status),
		Priority:    (*domain.TodoPriority)(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		api.Logger.Printf("Error updating todo: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, toTodo(todo))
}

func (api QuillServer) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid todo id"))
		return
	}

	if err := api.DeleteTodoUseCase.Execute(r.Context(), id); err != nil {
		api.Logger.Printf("Error deleting todo: %v", err)
		respondError(w, toError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GenerateTodos creates a batch of todos derived from a free-form prompt.
func (api QuillServer) GenerateTodos(w http.ResponseWriter, r *http.Request) {
	var req GenerateTodosReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	todos, err := api.GenerateTodosUseCase.Execute(r.Context(), req.Prompt)
	if err != nil {
		api.Logger.Printf("Error generating todos: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := make([]Todo, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodo(t))
	}

	respondJSON(w, http.StatusCreated, resp)
}

func (api QuillServer) SuggestNextSteps(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid todo id"))
		return
	}

	todos, err := api.SuggestNextStepsUseCase.Execute(r.Context(), id)
	if err != nil {
		api.Logger.Printf("Error suggesting next steps: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := make([]Todo, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodo(t))
	}

	respondJSON(w, http.StatusCreated, resp)
}

func (api QuillServer) ListTodoTemplates(w http.ResponseWriter, r *http.Request) {
	templates, err := api.ListTodoTemplatesUseCase.Query(r.Context())
	if err != nil {
		api.Logger.Printf("Error listing todo templates: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := make([]TodoTemplate, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, toTodoTemplate(t))
	}

	respondJSON(w, http.StatusOK, resp)
}

// InstantiateTemplate creates one todo per template item in a single step.
func (api QuillServer) InstantiateTemplate(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, badRequest("invalid template id"))
		return
	}

	todos, err := api.InstantiateTemplateUseCase.Execute(r.Context(), id)
	if err != nil {
		api.Logger.Printf("Error instantiating template: %v", err)
		respondError(w, toError(err))
		return
	}

	resp := make([]Todo, 0, len(todos))
	for _, t := range todos {
		resp = append(resp, toTodo(t))
	}

	respondJSON(w, http.StatusCreated, resp)
}

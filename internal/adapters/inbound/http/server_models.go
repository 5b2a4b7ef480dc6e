package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ListModels returns the model catalog decorated with availability and
// selection state.
func (api QuillServer) ListModels(w http.ResponseWriter, r *http.Request) {
	views := api.ListModelsUseCase.Query(r.Context())

	models := make([]Model, 0, len(views))
	for _, v := range views {
		models = append(models, toModel(v))
	}

	respondJSON(w, http.StatusOK, models)
}

// SelectModel switches the session's selected model.
func (api QuillServer) SelectModel(w http.ResponseWriter, r *http.Request) {
	var req SelectModelReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid request body: %v", err)))
		return
	}

	model, err := api.SelectModelUseCase.Execute(r.Context(), req.ID)
	if err != nil {
		api.Logger.Printf("Error selecting model: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, Model{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Selected:    true,
	})
}

// ProbeModel checks whether the current credential can use a model.
func (api QuillServer) ProbeModel(w http.ResponseWriter, r *http.Request) {
	modelID := r.PathValue("id")

	available, err := api.ProbeModelUseCase.Execute(r.Context(), modelID)
	if err != nil {
		api.Logger.Printf("Error probing model: %v", err)
		respondError(w, toError(err))
		return
	}

	respondJSON(w, http.StatusOK, ProbeModelResp{
		ID:        modelID,
		Available: available,
	})
}

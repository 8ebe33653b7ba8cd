package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"riskradar/internal/model"
	"riskradar/internal/service"
)

// PathwayHandler handles pathway question endpoints
type PathwayHandler struct {
	weightsSvc *service.WeightsService
}

// NewPathwayHandler creates a new pathway handler
func NewPathwayHandler(weightsSvc *service.WeightsService) *PathwayHandler {
	return &PathwayHandler{weightsSvc: weightsSvc}
}

// Questions handles GET /v1/pathways/{pathway}/questions
func (h *PathwayHandler) Questions(w http.ResponseWriter, r *http.Request) {
	pathway := model.Pathway(mux.Vars(r)["pathway"])
	if !pathway.Valid() {
		writeError(w, http.StatusBadRequest, "unknown pathway")
		return
	}

	questions, err := h.weightsSvc.GetQuestions(r.Context(), pathway)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"pathway":   pathway,
		"questions": questions,
	})
}

// ListPathways handles GET /v1/pathways
func (h *PathwayHandler) ListPathways(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"pathways": model.Pathways()})
}

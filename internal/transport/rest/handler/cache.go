package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"riskradar/internal/model"
	"riskradar/internal/service"
)

// CacheHandler handles table cache administration endpoints
type CacheHandler struct {
	weightsSvc *service.WeightsService
}

// NewCacheHandler creates a new cache handler
func NewCacheHandler(weightsSvc *service.WeightsService) *CacheHandler {
	return &CacheHandler{weightsSvc: weightsSvc}
}

// Clear handles DELETE /v1/cache/{pathway}
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	pathway := model.Pathway(mux.Vars(r)["pathway"])
	if !pathway.Valid() {
		writeError(w, http.StatusBadRequest, "unknown pathway")
		return
	}

	if err := h.weightsSvc.ClearCache(r.Context(), pathway); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"cleared": string(pathway)})
}

// ClearAll handles DELETE /v1/cache
func (h *CacheHandler) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.weightsSvc.ClearAllCaches(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"cleared": "all"})
}

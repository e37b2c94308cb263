package handler

import (
	"net/http"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/scoring"
)

// CatalogHandler serves the static question catalog and stage table
type CatalogHandler struct{}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler() *CatalogHandler {
	return &CatalogHandler{}
}

// Questions handles GET /v1/questions?component=
func (h *CatalogHandler) Questions(w http.ResponseWriter, r *http.Request) {
	component := r.URL.Query().Get("component")

	var questions []model.Question
	if component != "" {
		questions = scoring.QuestionsForComponent(model.Component(component))
		if len(questions) == 0 {
			writeError(w, http.StatusNotFound, "unknown component")
			return
		}
	} else {
		questions = scoring.Questions()
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"questions": questions})
}

// Stages handles GET /v1/stages
func (h *CatalogHandler) Stages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"stages": scoring.Stages()})
}

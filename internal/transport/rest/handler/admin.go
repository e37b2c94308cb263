package handler

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/service"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/transport/rest/middleware"
)

// AdminHandler handles the admin dashboard endpoints
type AdminHandler struct {
	assessmentSvc *service.AssessmentService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(assessmentSvc *service.AssessmentService) *AdminHandler {
	return &AdminHandler{assessmentSvc: assessmentSvc}
}

// assessmentSummary is the list-view projection: answers and the full
// result stay out of the listing payload
type assessmentSummary struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Email     string             `json:"email"`
	Mode      model.AnalysisMode `json:"mode"`
	Score     int                `json:"score"`
	CreatedAt string             `json:"createdAt"`
}

// List handles GET /v1/admin/assessments?limit=
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	assessments, err := h.assessmentSvc.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	summaries := make([]assessmentSummary, 0, len(assessments))
	for _, a := range assessments {
		summary := assessmentSummary{
			ID:        a.ID,
			Name:      a.Answers.Name(),
			Email:     a.Answers.Email(),
			Mode:      a.Mode,
			CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		}
		if a.Result != nil {
			summary.Score = a.Result.Score
		}
		summaries = append(summaries, summary)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"assessments": summaries})
}

// Get handles GET /v1/admin/assessments/{id}
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	assessment, err := h.assessmentSvc.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, assessment)
}

// Delete handles DELETE /v1/admin/assessments/{id}
func (h *AdminHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if middleware.GetAdminID(r.Context()) == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.assessmentSvc.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
}

package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/cache"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/scoring"
	"github.com/KatzVentures/FounderLeverageDashboard/internal/service"
)

// AssessmentHandler handles the public funnel endpoints
type AssessmentHandler struct {
	assessmentSvc *service.AssessmentService
	sessions      cache.SessionCache
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessmentSvc *service.AssessmentService, sessions cache.SessionCache) *AssessmentHandler {
	return &AssessmentHandler{
		assessmentSvc: assessmentSvc,
		sessions:      sessions,
	}
}

// SubmitRequest is the request body for submitting answers
type SubmitRequest struct {
	Answers model.AssessmentAnswers `json:"answers"`
}

// ResultsResponse wraps a stored result with its stage
type ResultsResponse struct {
	AssessmentID string              `json:"assessmentId"`
	Mode         model.AnalysisMode  `json:"mode"`
	Score        int                 `json:"score"`
	Stage        model.Stage         `json:"stage"`
	Result       *model.ResultRecord `json:"result"`
}

// Submit handles POST /v1/assessments
func (h *AssessmentHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, session, err := h.assessmentSvc.Submit(r.Context(), req.Answers)
	if err != nil {
		if errors.Is(err, service.ErrNoAnswers) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"assessmentId": assessment.ID,
		"sessionId":    session.ID,
		"score":        assessment.Result.Score,
		"stage":        scoring.StageForScore(float64(assessment.Result.Score)),
	})
}

// Results handles GET /v1/assessments/{id}/results
func (h *AssessmentHandler) Results(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	assessment, stage, err := h.assessmentSvc.Results(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResultsResponse{
		AssessmentID: assessment.ID,
		Mode:         assessment.Mode,
		Score:        assessment.Result.Score,
		Stage:        stage,
		Result:       assessment.Result,
	})
}

// Calculate handles POST /v1/assessments/{id}/calculate
func (h *AssessmentHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	assessment, err := h.assessmentSvc.Recalculate(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResultsResponse{
		AssessmentID: assessment.ID,
		Mode:         assessment.Mode,
		Score:        assessment.Result.Score,
		Stage:        scoring.StageForScore(float64(assessment.Result.Score)),
		Result:       assessment.Result,
	})
}

// Analyze handles POST /v1/assessments/{id}/analyze
func (h *AssessmentHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req service.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	assessment, err := h.assessmentSvc.Analyze(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ResultsResponse{
		AssessmentID: assessment.ID,
		Mode:         assessment.Mode,
		Score:        assessment.Result.Score,
		Stage:        scoring.StageForScore(float64(assessment.Result.Score)),
		Result:       assessment.Result,
	})
}

// Session handles GET /v1/sessions/{id}, the results-page reload path
func (h *AssessmentHandler) Session(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	session, err := h.sessions.IncrementViews(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "session not found or expired")
		return
	}

	writeJSON(w, http.StatusOK, session)
}

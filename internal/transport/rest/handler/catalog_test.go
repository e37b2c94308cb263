package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KatzVentures/FounderLeverageDashboard/internal/model"
)

func TestQuestionsReturnsFullCatalog(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/questions", nil)
	rec := httptest.NewRecorder()

	NewCatalogHandler().Questions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Questions []model.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Questions, 24)
	assert.Equal(t, "q1", body.Questions[0].ID)
}

func TestQuestionsFilteredByComponent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/questions?component=strategicFocus", nil)
	rec := httptest.NewRecorder()

	NewCatalogHandler().Questions(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Questions []model.Question `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotEmpty(t, body.Questions)
	for _, q := range body.Questions {
		assert.Equal(t, model.ComponentStrategicFocus, q.Component)
	}
}

func TestQuestionsUnknownComponent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/questions?component=NOPE", nil)
	rec := httptest.NewRecorder()

	NewCatalogHandler().Questions(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStages(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/stages", nil)
	rec := httptest.NewRecorder()

	NewCatalogHandler().Stages(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Stages []model.Stage `json:"stages"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Stages, 5)
	assert.Equal(t, "Elite Operator", body.Stages[0].Name)
	assert.Equal(t, "Crisis State", body.Stages[4].Name)
}

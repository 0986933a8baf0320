package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/service"
)

func newTranscriptRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	transcripts := service.NewTranscriptService(service.NewPDFProcessor(), nil)
	h := NewTranscriptHandler(transcripts, service.NewProjectionService())

	router := gin.New()
	router.POST("/projection", h.Project)
	router.GET("/transcripts", h.List)
	router.DELETE("/transcripts", h.Clear)
	return router
}

func TestProjectEndpoint(t *testing.T) {
	router := newTranscriptRouter()

	body := map[string]any{
		"content":        accountTranscriptFixture,
		"household_size": 2,
		"county":         "Travis",
		"state":          "TX",
	}
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/projection", strings.NewReader(string(payload)))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.ProjectionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.TypeAccountTranscript, resp.Transcript.Type)
	assert.Equal(t, "Travis", resp.Projection.County)
	assert.True(t, resp.Projection.ProjectedTax.Equal(decimalFromString(t, "893.80")))
}

func TestProjectEndpointRejectsBadHousehold(t *testing.T) {
	router := newTranscriptRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/projection",
		strings.NewReader(`{"content":"x","household_size":-1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func decimalFromString(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestClearEndpoint(t *testing.T) {
	router := newTranscriptRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/transcripts", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

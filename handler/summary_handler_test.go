package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/service"
)

const accountTranscriptFixture = `Account Transcript
Tracking Number: 100200300
TAX PERIOD: Dec. 31, 2018
TAXPAYER IDENTIFICATION NUMBER: XXX-XX-2171
ADJUSTED GROSS INCOME: 8,938.00
TAXABLE INCOME: 0.00
`

func newSummaryRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	transcripts := service.NewTranscriptService(service.NewPDFProcessor(), nil)
	_, err := transcripts.Ingest("transcript.txt", []byte(accountTranscriptFixture))
	require.NoError(t, err)

	summaries := service.NewSummaryService(service.NewProjectionService())
	h := NewSummaryHandler(transcripts, summaries)

	router := gin.New()
	router.GET("/summary", h.GetSummary)
	router.GET("/summary/export", h.ExportCSV)
	return router
}

func TestGetSummary(t *testing.T) {
	router := newSummaryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/summary", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Rows, 1)

	row := resp.Rows[0]
	assert.Equal(t, "2171", row.SSNLastFour)
	assert.Equal(t, "2018", row.TaxYear)
	assert.Equal(t, "No", row.ReturnFiled)
	assert.Equal(t, "$8938.00", row.AdjustedGrossIncome)
	assert.Equal(t, "$893.80", row.ProjectedAmountOwed)
	assert.Equal(t, "$893.80", resp.TotalProjectedAmountOwed)
}

func TestGetSummaryFilterNoMatch(t *testing.T) {
	router := newSummaryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/summary?ssn_last_four=0000", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SummaryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Rows)
}

func TestExportCSV(t *testing.T) {
	router := newSummaryRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/summary/export?ssn_last_four=2171", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "client_summary_2171.csv")

	body := w.Body.String()
	assert.Contains(t, body, "SSN Last Four,Tax Year,Return Filed")
	assert.Contains(t, body, "2171,2018,No")
}

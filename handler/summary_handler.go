package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/service"
)

var csvHeader = []string{
	"SSN Last Four", "Tax Year", "Return Filed", "Filing Status",
	"Current Balance", "Balance Plus Accruals", "Adjusted Gross Income",
	"Taxable Income", "Tax Per Return", "Projected Amount Owed", "Income Types",
}

type SummaryHandler struct {
	transcripts *service.TranscriptService
	summaries   *service.SummaryService
}

func NewSummaryHandler(transcripts *service.TranscriptService, summaries *service.SummaryService) *SummaryHandler {
	return &SummaryHandler{
		transcripts: transcripts,
		summaries:   summaries,
	}
}

// GetSummary handles GET /summary: aggregate the stored document set into
// one row per (client, tax year), optionally filtered to one client via
// the ssn_last_four query parameter.
func (h *SummaryHandler) GetSummary(c *gin.Context) {
	summaries := h.clientSummaries(c.Query("ssn_last_four"))

	totalBalance := decimal.Zero
	totalProjected := decimal.Zero
	rows := make([]dto.ClientYearSummaryRow, 0, len(summaries))
	for _, s := range summaries {
		totalBalance = totalBalance.Add(s.BalancePlusAccruals)
		if s.ReturnFiled == "No" {
			totalProjected = totalProjected.Add(s.ProjectedAmountOwed)
		}
		rows = append(rows, s.Formatted())
	}

	c.JSON(http.StatusOK, dto.SummaryResponse{
		Rows:                     rows,
		TotalBalancePlusAccruals: dto.USD(totalBalance),
		TotalProjectedAmountOwed: dto.USD(totalProjected),
		GeneratedAt:              time.Now().Format(time.RFC3339),
	})
}

// ExportCSV handles GET /summary/export: the summary rows as a CSV
// download, same optional client filter as GetSummary.
func (h *SummaryHandler) ExportCSV(c *gin.Context) {
	filter := c.Query("ssn_last_four")
	summaries := h.clientSummaries(filter)

	filename := "client_summary.csv"
	if filter != "" {
		filename = fmt.Sprintf("client_summary_%s.csv", filter)
	}
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	w := csv.NewWriter(c.Writer)
	_ = w.Write(csvHeader)
	for _, s := range summaries {
		row := s.Formatted()
		_ = w.Write([]string{
			row.SSNLastFour, row.TaxYear, row.ReturnFiled, row.FilingStatus,
			row.CurrentBalance, row.BalancePlusAccruals, row.AdjustedGrossIncome,
			row.TaxableIncome, row.TaxPerReturn, row.ProjectedAmountOwed, row.IncomeTypes,
		})
	}
	w.Flush()
}

func (h *SummaryHandler) clientSummaries(ssnLastFour string) []dto.ClientYearSummary {
	summaries := h.summaries.Summarize(h.transcripts.Transcripts())
	if ssnLastFour == "" {
		return summaries
	}
	filtered := summaries[:0]
	for _, s := range summaries {
		if s.SSNLastFour == ssnLastFour {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

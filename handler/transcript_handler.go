package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/logger"
	"github.com/mwhitfield/tax-transcript-analyzer/service"
	"github.com/mwhitfield/tax-transcript-analyzer/utils"
)

type TranscriptHandler struct {
	transcripts *service.TranscriptService
	projections *service.ProjectionService
}

func NewTranscriptHandler(transcripts *service.TranscriptService, projections *service.ProjectionService) *TranscriptHandler {
	return &TranscriptHandler{
		transcripts: transcripts,
		projections: projections,
	}
}

// Upload handles POST /transcripts: parse and store a batch of uploaded
// transcript files.
func (h *TranscriptHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to parse multipart form", err)
		return
	}

	files := form.File["files[]"]
	if len(files) == 0 {
		sendError(c, http.StatusBadRequest, dto.ErrNoFiles.Error(), dto.ErrNoFiles)
		return
	}

	logger.Info("processing transcript upload", zap.Int("files", len(files)))

	docs, err := h.transcripts.IngestBatch(files)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to process transcripts", err)
		return
	}

	c.JSON(http.StatusOK, dto.UploadResponse{
		Documents:   docs,
		Count:       len(docs),
		ProcessedAt: time.Now().Format(time.RFC3339),
	})
}

// List handles GET /transcripts: return all stored parsed documents.
func (h *TranscriptHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"documents": h.transcripts.Documents(),
	})
}

// Clear handles DELETE /transcripts: drop the stored document set.
func (h *TranscriptHandler) Clear(c *gin.Context) {
	h.transcripts.Clear()
	c.Status(http.StatusNoContent)
}

// Project handles POST /projection: run the projection engine on raw
// document text with caller-supplied household parameters.
func (h *TranscriptHandler) Project(c *gin.Context) {
	var req dto.ProjectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid projection request", err)
		return
	}
	if req.HouseholdSize == 0 {
		req.HouseholdSize = 1
	}
	if req.County == "" {
		req.County = "Unknown"
	}
	if req.State == "" {
		req.State = "Unknown"
	}

	transcript := utils.ParseTranscript(req.Content)
	projection, err := h.projections.Project(transcript, req.HouseholdSize, req.County, req.State)
	if err != nil {
		if errors.Is(err, dto.ErrInvalidHouseholdSize) {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		sendError(c, http.StatusInternalServerError, "Failed to compute projection", err)
		return
	}

	c.JSON(http.StatusOK, dto.ProjectionResponse{
		Transcript: transcript,
		Projection: *projection,
	})
}

// sendError sends a structured error response.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		logger.Error(message, zap.Error(err))
	}
	c.JSON(statusCode, dto.ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    statusCode,
	})
}

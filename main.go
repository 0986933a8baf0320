package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mwhitfield/tax-transcript-analyzer/client"
	"github.com/mwhitfield/tax-transcript-analyzer/config"
	"github.com/mwhitfield/tax-transcript-analyzer/handler"
	"github.com/mwhitfield/tax-transcript-analyzer/logger"
	"github.com/mwhitfield/tax-transcript-analyzer/service"
)

func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Sync()

	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	pdfProcessor := service.NewPDFProcessor()

	transcriptService := service.NewTranscriptService(pdfProcessor, tesseractClient)
	projectionService := service.NewProjectionService()
	summaryService := service.NewSummaryService(projectionService)

	transcriptHandler := handler.NewTranscriptHandler(transcriptService, projectionService)
	summaryHandler := handler.NewSummaryHandler(transcriptService, summaryService)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Tax Transcript Analyzer",
		})
	})

	api := router.Group("/api/v1")
	{
		transcripts := api.Group("/transcripts")
		{
			transcripts.POST("", transcriptHandler.Upload)
			transcripts.GET("", transcriptHandler.List)
			transcripts.DELETE("", transcriptHandler.Clear)
		}
		api.POST("/projection", transcriptHandler.Project)

		summary := api.Group("/summary")
		{
			summary.GET("", summaryHandler.GetSummary)
			summary.GET("/export", summaryHandler.ExportCSV)
		}
	}

	logger.Info("starting tax transcript analyzer", zap.String("port", cfg.ServerPort))
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}

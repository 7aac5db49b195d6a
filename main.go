package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/ThilankaPerera/AI-Bill-Explanator/client"
	"github.com/ThilankaPerera/AI-Bill-Explanator/config"
	"github.com/ThilankaPerera/AI-Bill-Explanator/handler"
	"github.com/ThilankaPerera/AI-Bill-Explanator/service"
)

func main() {
	// Initialize configuration
	cfg := config.LoadConfig()

	if err := cfg.EnsureUploadDir(); err != nil {
		log.Fatalf("Failed to create upload directory %s: %v", cfg.UploadDir, err)
	}

	// Initialize Tesseract client for scanned bills
	tesseractClient := client.NewTesseractClient(cfg.TesseractDataPath)
	defer tesseractClient.Close()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize explanation generator
	llmClient := client.NewLLMClient(cfg.LLMBaseURL, cfg.LLMModel)

	// Initialize service layer
	billService := service.NewBillService(pdfProcessor, tesseractClient, llmClient, cfg.UploadDir)

	// Initialize handler layer
	billHandler := handler.NewBillHandler(billService, cfg.MaxFileSize)

	// Setup Gin router
	router := gin.Default()

	// Configure max multipart memory (32 MB)
	router.MaxMultipartMemory = 32 << 20

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "AI Bill Explanator",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		bills := api.Group("/bills")
		{
			bills.POST("/analyze", billHandler.AnalyzeBill)
		}
	}

	// Start server
	log.Printf("Starting AI Bill Explanator on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

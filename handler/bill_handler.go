package handler

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
	"github.com/ThilankaPerera/AI-Bill-Explanator/service"
)

type BillHandler struct {
	billService *service.BillService
	maxFileSize int64
}

func NewBillHandler(billService *service.BillService, maxFileSize int64) *BillHandler {
	return &BillHandler{
		billService: billService,
		maxFileSize: maxFileSize,
	}
}

// AnalyzeBill handles the POST /bills/analyze endpoint
func (h *BillHandler) AnalyzeBill(c *gin.Context) {
	log.Println("Received bill analysis request")

	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	if h.maxFileSize > 0 && fileHeader.Size > h.maxFileSize {
		h.sendError(c, http.StatusBadRequest, "File too large", nil)
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to open uploaded file", err)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "Failed to read uploaded file", err)
		return
	}

	response, err := h.billService.AnalyzeBill(c.Request.Context(), fileHeader.Filename, data)
	if err != nil {
		switch {
		case errors.Is(err, dto.ErrNotPDF):
			h.sendError(c, http.StatusBadRequest, dto.ErrNotPDF.Error(), err)
		case errors.Is(err, dto.ErrIngestFailed):
			h.sendError(c, http.StatusUnprocessableEntity, dto.ErrIngestFailed.Error(), err)
		default:
			h.sendError(c, http.StatusInternalServerError, "Failed to analyze bill", err)
		}
		return
	}

	log.Printf("Bill analysis completed for %s", fileHeader.Filename)
	c.JSON(http.StatusOK, response)
}

// sendError sends a structured error response
func (h *BillHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "ANALYSIS_FAILED",
		Message: message,
		Code:    statusCode,
	})
}

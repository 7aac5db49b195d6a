package dto

import "errors"

// Custom errors
var (
	// ErrNotPDF rejects uploads that are not PDF documents.
	ErrNotPDF = errors.New("only PDF documents are supported")
	// ErrIngestFailed means the document could not be opened or no page
	// yielded any text through either the text layer or OCR.
	ErrIngestFailed = errors.New("could not read this document")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// BillAnalysisResponse is the single bundle returned per processed document.
type BillAnalysisResponse struct {
	RequestID   string           `json:"request_id"`
	Fields      StructuredFields `json:"fields"`
	Charges     ChargeSet        `json:"charges"`
	Anomalies   []Anomaly        `json:"anomalies"`
	Insights    []string         `json:"insights"`
	Explanation string           `json:"explanation"`
	PageCount   int              `json:"page_count"`
	ProcessedAt string           `json:"processed_at"`
}

package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"image"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
	"github.com/ThilankaPerera/AI-Bill-Explanator/utils"
)

// minTextLength is the point below which an extracted text layer is treated
// as a scanned PDF and sent through OCR instead.
const minTextLength = 20

type OCRClient interface {
	ExtractTextFromImage(img image.Image) (string, error)
}

type ExplanationGenerator interface {
	Explain(ctx context.Context, charges dto.ChargeSet, fields dto.StructuredFields) (string, error)
}

// BillService runs the full analysis pipeline for one uploaded bill:
// ingest (text layer, then OCR fallback), field extraction, charge
// categorization, anomaly detection, insights and explanation. Completed
// analyses are memoized by content hash so re-uploading the same document
// never re-runs the pipeline.
type BillService struct {
	pdfProcessor PDFProcessor
	ocrClient    OCRClient
	generator    ExplanationGenerator
	uploadDir    string

	mu    sync.Mutex
	cache map[string]*dto.BillAnalysisResponse
}

func NewBillService(
	pdfProcessor PDFProcessor,
	ocrClient OCRClient,
	generator ExplanationGenerator,
	uploadDir string,
) *BillService {
	return &BillService{
		pdfProcessor: pdfProcessor,
		ocrClient:    ocrClient,
		generator:    generator,
		uploadDir:    uploadDir,
		cache:        make(map[string]*dto.BillAnalysisResponse),
	}
}

// AnalyzeBill processes one PDF document and returns the analysis bundle.
// Only dto.ErrNotPDF and dto.ErrIngestFailed cross this boundary as failures;
// everything downstream of a successful ingest degrades to partial or
// substitute output instead of erroring.
func (s *BillService) AnalyzeBill(ctx context.Context, filename string, data []byte) (*dto.BillAnalysisResponse, error) {
	if !isPDF(filename, data) {
		return nil, dto.ErrNotPDF
	}

	key := contentHash(data)

	s.mu.Lock()
	if cached, ok := s.cache[key]; ok {
		s.mu.Unlock()
		log.Printf("Returning cached analysis for %s", filename)
		return cached, nil
	}
	s.mu.Unlock()

	doc, err := s.ingest(filename, data)
	if err != nil {
		return nil, err
	}

	s.saveUpload(filename, data)

	fields := utils.ExtractFields(doc.Text)
	charges := utils.CategorizeCharges(doc.Text, fields)
	anomalies := utils.DetectAnomalies(charges)
	insights := utils.InsightsFor(fields.BillType)

	explanation, err := s.generator.Explain(ctx, charges, fields)
	if err != nil {
		log.Printf("Explanation generator unavailable for %s, using fallback: %v", filename, err)
		explanation = utils.FallbackExplanation(charges, fields)
	}

	response := &dto.BillAnalysisResponse{
		RequestID:   uuid.NewString(),
		Fields:      fields,
		Charges:     charges,
		Anomalies:   anomalies,
		Insights:    insights,
		Explanation: explanation,
		PageCount:   doc.PageCount,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}

	s.mu.Lock()
	s.cache[key] = response
	s.mu.Unlock()

	return response, nil
}

// ingest produces the RawDocument: text layer first, page-image OCR when the
// text layer is missing or too thin. Failing both paths is the pipeline's one
// hard failure.
func (s *BillService) ingest(filename string, data []byte) (*dto.RawDocument, error) {
	text, tables, pageCount, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed for %s: %v", filename, err)
	}
	extraction := "text_layer"

	if len(strings.TrimSpace(text)) < minTextLength {
		log.Printf("PDF %s has minimal text, attempting image-based OCR", filename)

		images, imgErr := s.pdfProcessor.ExtractImages(data)
		if imgErr != nil {
			log.Printf("Failed to extract images from PDF %s: %v", filename, imgErr)
		}

		var combined strings.Builder
		for _, img := range images {
			pageText, ocrErr := s.ocrClient.ExtractTextFromImage(img)
			if ocrErr != nil {
				log.Printf("OCR failed for a page in %s: %v", filename, ocrErr)
				continue
			}
			combined.WriteString(pageText)
			combined.WriteString("\n")
		}

		if len(strings.TrimSpace(combined.String())) > 0 {
			text = combined.String()
			extraction = "ocr"
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: no text in %s through text layer or OCR", dto.ErrIngestFailed, filename)
	}

	return &dto.RawDocument{
		Text:      text,
		Tables:    tables,
		PageCount: pageCount,
		SourceMetadata: map[string]string{
			"filename":   filename,
			"extraction": extraction,
		},
	}, nil
}

// saveUpload keeps a copy of the document in the upload directory. Best
// effort: a failed write is logged, never fatal.
func (s *BillService) saveUpload(filename string, data []byte) {
	if s.uploadDir == "" {
		return
	}
	target := filepath.Join(s.uploadDir, filepath.Base(filename))
	if err := os.WriteFile(target, data, 0o644); err != nil {
		log.Printf("Failed to save upload copy to %s: %v", target, err)
	}
}

func isPDF(filename string, data []byte) bool {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return false
	}
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}

func contentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

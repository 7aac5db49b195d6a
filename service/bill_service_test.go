package service

import (
	"context"
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ThilankaPerera/AI-Bill-Explanator/dto"
	"github.com/ThilankaPerera/AI-Bill-Explanator/utils"
)

const fakeBillText = `
	Ceylon Electricity Board
	Fixed Charge 540.00
	Energy Charge 120 kWh 3,250.50
	VAT 450.00
	Total Amount Due: Rs. 4,240.50
`

type fakeProcessor struct {
	text         string
	images       []image.Image
	extractCalls int
}

func (f *fakeProcessor) ExtractText(data []byte) (string, [][][]string, int, error) {
	f.extractCalls++
	return f.text, nil, 1, nil
}

func (f *fakeProcessor) ExtractImages(data []byte) ([]image.Image, error) {
	return f.images, nil
}

type fakeOCR struct {
	text string
	err  error
}

func (f *fakeOCR) ExtractTextFromImage(img image.Image) (string, error) {
	return f.text, f.err
}

type fakeGenerator struct {
	explanation string
	err         error
}

func (f *fakeGenerator) Explain(ctx context.Context, charges dto.ChargeSet, fields dto.StructuredFields) (string, error) {
	return f.explanation, f.err
}

func pdfBytes(seed string) []byte {
	return []byte("%PDF-1.4\n" + seed)
}

func TestAnalyzeBillRejectsNonPDF(t *testing.T) {
	svc := NewBillService(&fakeProcessor{text: fakeBillText}, &fakeOCR{}, &fakeGenerator{}, "")

	_, err := svc.AnalyzeBill(context.Background(), "bill.txt", pdfBytes("a"))
	assert.ErrorIs(t, err, dto.ErrNotPDF)

	_, err = svc.AnalyzeBill(context.Background(), "bill.pdf", []byte("plain text, wrong magic"))
	assert.ErrorIs(t, err, dto.ErrNotPDF)
}

func TestAnalyzeBillPipeline(t *testing.T) {
	uploadDir := t.TempDir()
	svc := NewBillService(
		&fakeProcessor{text: fakeBillText},
		&fakeOCR{},
		&fakeGenerator{explanation: "Your bill is mostly usage charges."},
		uploadDir,
	)

	response, err := svc.AnalyzeBill(context.Background(), "july-bill.pdf", pdfBytes("a"))
	require.NoError(t, err)

	assert.NotEmpty(t, response.RequestID)
	assert.Equal(t, dto.BillTypeElectricity, response.Fields.BillType)
	assert.Equal(t, 4240.50, response.Charges.TotalAmount)
	assert.Equal(t, "Your bill is mostly usage charges.", response.Explanation)
	assert.NotEmpty(t, response.Insights)
	assert.Equal(t, 1, response.PageCount)

	// A copy of the upload lands in the upload directory.
	_, err = os.Stat(filepath.Join(uploadDir, "july-bill.pdf"))
	assert.NoError(t, err)
}

func TestAnalyzeBillMemoizes(t *testing.T) {
	processor := &fakeProcessor{text: fakeBillText}
	svc := NewBillService(processor, &fakeOCR{}, &fakeGenerator{explanation: "ok"}, "")

	first, err := svc.AnalyzeBill(context.Background(), "bill.pdf", pdfBytes("same"))
	require.NoError(t, err)

	second, err := svc.AnalyzeBill(context.Background(), "renamed.pdf", pdfBytes("same"))
	require.NoError(t, err)

	// Identical bytes: the pipeline ran once, regardless of filename.
	assert.Equal(t, 1, processor.extractCalls)
	assert.Equal(t, first.RequestID, second.RequestID)

	_, err = svc.AnalyzeBill(context.Background(), "bill.pdf", pdfBytes("different"))
	require.NoError(t, err)
	assert.Equal(t, 2, processor.extractCalls)
}

func TestAnalyzeBillExplanationFallback(t *testing.T) {
	svc := NewBillService(
		&fakeProcessor{text: fakeBillText},
		&fakeOCR{},
		&fakeGenerator{err: fmt.Errorf("model endpoint unreachable")},
		"",
	)

	response, err := svc.AnalyzeBill(context.Background(), "bill.pdf", pdfBytes("a"))
	require.NoError(t, err)

	expected := utils.FallbackExplanation(response.Charges, response.Fields)
	assert.Equal(t, expected, response.Explanation)
}

func TestAnalyzeBillOCRFallback(t *testing.T) {
	processor := &fakeProcessor{
		text:   "  ",
		images: []image.Image{image.NewRGBA(image.Rect(0, 0, 1, 1))},
	}
	svc := NewBillService(processor, &fakeOCR{text: fakeBillText}, &fakeGenerator{explanation: "ok"}, "")

	response, err := svc.AnalyzeBill(context.Background(), "scanned.pdf", pdfBytes("a"))
	require.NoError(t, err)

	assert.Equal(t, dto.BillTypeElectricity, response.Fields.BillType)
	assert.Equal(t, 4240.50, response.Charges.TotalAmount)
}

func TestAnalyzeBillIngestFailure(t *testing.T) {
	svc := NewBillService(
		&fakeProcessor{text: ""},
		&fakeOCR{err: errors.New("ocr broken")},
		&fakeGenerator{},
		"",
	)

	_, err := svc.AnalyzeBill(context.Background(), "empty.pdf", pdfBytes("a"))
	assert.ErrorIs(t, err, dto.ErrIngestFailed)
}

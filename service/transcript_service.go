package service

import (
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mwhitfield/tax-transcript-analyzer/dto"
	"github.com/mwhitfield/tax-transcript-analyzer/logger"
	"github.com/mwhitfield/tax-transcript-analyzer/utils"
)

// ImageOCR extracts text from a scanned page image.
type ImageOCR interface {
	OCRImage(img image.Image) (string, error)
}

// A PDF whose text layer is shorter than this is treated as a scan.
const scannedTextThreshold = 20

// TranscriptService owns document ingestion and the in-memory document
// set. Parsing itself is pure; the mutex only guards the stored set.
type TranscriptService struct {
	pdf PDFProcessor
	ocr ImageOCR

	mu   sync.RWMutex
	docs []dto.StoredDocument
}

func NewTranscriptService(pdf PDFProcessor, ocr ImageOCR) *TranscriptService {
	return &TranscriptService{pdf: pdf, ocr: ocr}
}

// IngestBatch extracts, parses and stores a batch of uploaded files.
// Files are processed concurrently but stored in upload order, so later
// documents keep their last-wins position in aggregation.
func (s *TranscriptService) IngestBatch(files []*multipart.FileHeader) ([]dto.StoredDocument, error) {
	docs := make([]dto.StoredDocument, len(files))
	errs := make([]error, len(files))

	var wg sync.WaitGroup
	for i, fileHeader := range files {
		wg.Add(1)
		go func(i int, fileHeader *multipart.FileHeader) {
			defer wg.Done()

			f, err := fileHeader.Open()
			if err != nil {
				errs[i] = fmt.Errorf("failed to open file %s: %w", fileHeader.Filename, err)
				return
			}
			defer f.Close()

			data, err := io.ReadAll(f)
			if err != nil {
				errs[i] = fmt.Errorf("failed to read file %s: %w", fileHeader.Filename, err)
				return
			}

			docs[i], errs[i] = s.buildDocument(fileHeader.Filename, data)
		}(i, fileHeader)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	s.mu.Lock()
	s.docs = append(s.docs, docs...)
	s.mu.Unlock()

	return docs, nil
}

// Ingest extracts, parses and stores a single document.
func (s *TranscriptService) Ingest(filename string, data []byte) (dto.StoredDocument, error) {
	doc, err := s.buildDocument(filename, data)
	if err != nil {
		return dto.StoredDocument{}, err
	}

	s.mu.Lock()
	s.docs = append(s.docs, doc)
	s.mu.Unlock()

	return doc, nil
}

func (s *TranscriptService) buildDocument(filename string, data []byte) (dto.StoredDocument, error) {
	content, err := s.ExtractContent(filename, data)
	if err != nil {
		return dto.StoredDocument{}, err
	}

	transcript := utils.ParseTranscript(content)
	logger.Info("parsed transcript",
		zap.String("filename", filename),
		zap.String("transcript_type", string(transcript.Type)),
		zap.String("tax_period", transcript.TaxPeriod))

	return dto.StoredDocument{
		ID:         uuid.NewString(),
		Filename:   filename,
		UploadedAt: time.Now().UTC(),
		Transcript: transcript,
	}, nil
}

// ExtractContent turns an uploaded file into raw transcript text. PDFs go
// through text-layer extraction first; when the text layer is too thin the
// embedded page images are OCRed instead. Anything else is treated as
// plain UTF-8 text.
func (s *TranscriptService) ExtractContent(filename string, data []byte) (string, error) {
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return string(data), nil
	}

	text, err := s.pdf.ExtractText(data)
	if err != nil {
		logger.Warn("pdf text extraction failed", zap.String("filename", filename), zap.Error(err))
	}
	if len(strings.TrimSpace(text)) >= scannedTextThreshold {
		return text, nil
	}

	ocrText, ocrErr := s.ocrPages(filename, data)
	if ocrErr == nil && strings.TrimSpace(ocrText) != "" {
		return ocrText, nil
	}
	if err != nil {
		return "", fmt.Errorf("no text could be extracted from %s: %w", filename, err)
	}
	return text, nil
}

func (s *TranscriptService) ocrPages(filename string, data []byte) (string, error) {
	if s.ocr == nil {
		return "", fmt.Errorf("no OCR engine configured")
	}

	images, err := s.pdf.ExtractPageImages(data)
	if err != nil {
		return "", fmt.Errorf("failed to extract page images: %w", err)
	}

	var sb strings.Builder
	for _, img := range images {
		pageText, err := s.ocr.OCRImage(img)
		if err != nil {
			logger.Warn("page OCR failed", zap.String("filename", filename), zap.Error(err))
			continue
		}
		sb.WriteString(pageText)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}

// Documents returns a copy of the stored document set in upload order.
func (s *TranscriptService) Documents() []dto.StoredDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.StoredDocument, len(s.docs))
	copy(out, s.docs)
	return out
}

// Transcripts returns the parsed transcripts of the stored documents in
// upload order.
func (s *TranscriptService) Transcripts() []dto.ParsedTranscript {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.ParsedTranscript, len(s.docs))
	for i, doc := range s.docs {
		out[i] = doc.Transcript
	}
	return out
}

// Clear drops the stored document set.
func (s *TranscriptService) Clear() {
	s.mu.Lock()
	s.docs = nil
	s.mu.Unlock()
}

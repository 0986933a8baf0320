package client

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/otiai10/gosseract/v2"
)

// TesseractClient runs OCR over transcript page images. It is the fallback
// path for scanned PDFs whose text layer is empty.
type TesseractClient struct {
	dataPath string
}

func NewTesseractClient(dataPath string) *TesseractClient {
	return &TesseractClient{dataPath: dataPath}
}

// OCRImage extracts text from one page image.
func (tc *TesseractClient) OCRImage(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "transcript-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if err := png.Encode(tempFile, img); err != nil {
		tempFile.Close()
		return "", fmt.Errorf("failed to encode page image: %w", err)
	}
	tempFile.Close()

	return tc.extractText(tempFile.Name())
}

func (tc *TesseractClient) extractText(path string) (string, error) {
	c := gosseract.NewClient()
	defer c.Close()

	if tc.dataPath != "" {
		if err := c.SetTessdataPrefix(tc.dataPath); err != nil {
			return "", fmt.Errorf("failed to set tessdata path: %w", err)
		}
	}
	if err := c.SetImage(path); err != nil {
		return "", fmt.Errorf("failed to load page image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("OCR extraction failed: %w", err)
	}
	return text, nil
}

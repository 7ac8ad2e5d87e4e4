package services

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PDFInspector validates a PDF and returns its page count.
type PDFInspector func(path string) (int, error)

// InspectPDF validates the file in relaxed mode and counts its pages.
func InspectPDF(path string) (int, error) {
	cfg := model.NewDefaultConfiguration()
	cfg.ValidationMode = model.ValidationRelaxed
	if err := api.ValidateFile(path, cfg); err != nil {
		return 0, fmt.Errorf("invalid PDF %s: %w", filepath.Base(path), err)
	}
	pages, err := api.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to count pages of %s: %w", filepath.Base(path), err)
	}
	return pages, nil
}

var imageExtensions = map[string]bool{".png": true, ".jpg": true, ".jpeg": true}

// SelectSource picks the file to extract from: the first PDF that passes
// inspection, otherwise the first PNG or JPEG image. A nil inspect accepts
// every PDF.
func SelectSource(paths []string, inspect PDFInspector) (string, error) {
	for _, p := range paths {
		if strings.ToLower(filepath.Ext(p)) != ".pdf" {
			continue
		}
		if inspect == nil {
			return p, nil
		}
		pages, err := inspect(p)
		if err != nil {
			slog.Warn("Skipping unreadable PDF.", "file", filepath.Base(p), "error", err)
			continue
		}
		if pages == 0 {
			slog.Warn("Skipping PDF without pages.", "file", filepath.Base(p))
			continue
		}
		slog.Info("Selected PDF source.", "file", filepath.Base(p), "pageCount", pages)
		return p, nil
	}
	for _, p := range paths {
		if imageExtensions[strings.ToLower(filepath.Ext(p))] {
			return p, nil
		}
	}
	return "", ErrNoEligibleFile
}

var mimeTypes = map[string]string{
	".pdf":  "application/pdf",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
}

// MIMEType maps a file's extension to the MIME type sent to the model.
func MIMEType(path string) string {
	if m, ok := mimeTypes[strings.ToLower(filepath.Ext(path))]; ok {
		return m
	}
	return "application/octet-stream"
}

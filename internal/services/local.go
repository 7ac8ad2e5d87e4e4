package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Affiliat0r/Vertaler/internal/sections"
)

// LocalRun converts a single file on disk without touching the submission
// store, the blob store or email.
type LocalRun struct {
	Extractor  Extractor
	Assembler  Assembler
	Languages  LanguagePair
	OutputDir  string
	// OutputFile is the name of the document written to OutputDir.
	OutputFile string
	inspect    PDFInspector
}

// Convert extracts inputPath and writes the assembled document. It returns
// the output path and the extracted data.
func (l *LocalRun) Convert(ctx context.Context, inputPath string) (string, sections.DocumentData, error) {
	inspect := l.inspect
	if inspect == nil {
		inspect = InspectPDF
	}
	source, err := SelectSource([]string{inputPath}, inspect)
	if err != nil {
		return "", nil, fmt.Errorf("%s: %w", filepath.Base(inputPath), err)
	}

	data, err := l.Extractor.Extract(ctx, source, l.Languages)
	if err != nil {
		return "", nil, fmt.Errorf("extraction failed: %w", err)
	}
	LogExtractionSummary(data)

	content, err := l.Assembler.Assemble(data)
	if err != nil {
		return "", data, fmt.Errorf("document assembly failed: %w", err)
	}

	if err := os.MkdirAll(l.OutputDir, 0o755); err != nil {
		return "", data, fmt.Errorf("failed to create output directory: %w", err)
	}
	outPath := filepath.Join(l.OutputDir, l.OutputFile)
	if err := os.WriteFile(outPath, content, 0o644); err != nil {
		return "", data, fmt.Errorf("failed to write output document: %w", err)
	}
	slog.Info("Document generated.", "path", outPath, "bytes", len(content))
	return outPath, data, nil
}

// LogExtractionSummary logs which sections were found and how many fields
// each carries.
func LogExtractionSummary(data sections.DocumentData) {
	keys := data.PresentKeys()
	if len(keys) == 0 {
		slog.Warn("No recognized document sections were extracted.")
		return
	}
	for _, k := range keys {
		name := string(k)
		if d, ok := sections.Lookup(k); ok {
			name = d.Name
		}
		slog.Info("Extracted section.", "section", k, "type", name, "fields", len(data[k]))
	}
}

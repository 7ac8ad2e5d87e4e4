package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Affiliat0r/Vertaler/internal/assembly"
	"github.com/Affiliat0r/Vertaler/internal/document"
)

func newLocalRun(t *testing.T, ext *stubExtractor) *LocalRun {
	t.Helper()
	engine, err := assembly.New(document.DefaultConfig())
	require.NoError(t, err)
	return &LocalRun{
		Extractor:  ext,
		Assembler:  engine,
		Languages:  DefaultLanguages,
		OutputDir:  filepath.Join(t.TempDir(), "out"),
		OutputFile: "Documenten_Nederlands.docx",
		inspect:    func(string) (int, error) { return 1, nil },
	}
}

func TestLocalRun_Convert(t *testing.T) {
	in := filepath.Join(t.TempDir(), "akte.pdf")
	require.NoError(t, os.WriteFile(in, []byte("%PDF-1.4"), 0o644))

	run := newLocalRun(t, &stubExtractor{data: birthData()})
	out, data, err := run.Convert(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(run.OutputDir, "Documenten_Nederlands.docx"), out)
	assert.True(t, data.Present("birthCertificate"))
	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, documentXML(t, content), "GEBOORTEAKTE")
}

func TestLocalRun_RejectsUnsupportedFile(t *testing.T) {
	in := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))

	ext := &stubExtractor{data: birthData()}
	_, _, err := newLocalRun(t, ext).Convert(context.Background(), in)
	assert.ErrorIs(t, err, ErrNoEligibleFile)
	assert.Empty(t, ext.calls)
}

func TestLocalRun_ExtractionError(t *testing.T) {
	in := filepath.Join(t.TempDir(), "scan.png")
	require.NoError(t, os.WriteFile(in, []byte{0x89, 'P', 'N', 'G'}, 0o644))

	run := newLocalRun(t, &stubExtractor{err: errors.New("quota exceeded")})
	_, _, err := run.Convert(context.Background(), in)
	assert.ErrorContains(t, err, "quota exceeded")
	_, statErr := os.Stat(run.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

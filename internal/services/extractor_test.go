package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cloud.google.com/go/vertexai/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Affiliat0r/Vertaler/internal/sections"
)

type fakeModel struct {
	text  []string
	err   error
	parts []genai.Part
}

func (m *fakeModel) GenerateContent(_ context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error) {
	m.parts = parts
	if m.err != nil {
		return nil, m.err
	}
	content := &genai.Content{}
	for _, t := range m.text {
		content.Parts = append(content.Parts, genai.Text(t))
	}
	return &genai.GenerateContentResponse{Candidates: []*genai.Candidate{{Content: content}}}, nil
}

func writeSource(t *testing.T, name string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte("%PDF-1.4"), 0o644))
	return p
}

func TestVertexExtractor_Extract(t *testing.T) {
	model := &fakeModel{text: []string{"```json\n{\"birthCertificate\": {\"newbornFullName\": \"Sara\",", " \"birthRegNumber\": 42}}\n```"}}
	ext := NewVertexExtractor(model)

	data, err := ext.Extract(context.Background(), writeSource(t, "akte.pdf"), DefaultLanguages)
	require.NoError(t, err)
	assert.Equal(t, []sections.Key{sections.BirthCertificate}, data.PresentKeys())
	assert.Equal(t, "Sara", data[sections.BirthCertificate]["newbornFullName"])
	assert.Equal(t, "42", data[sections.BirthCertificate]["birthRegNumber"])

	require.Len(t, model.parts, 2)
	blob, ok := model.parts[0].(genai.Blob)
	require.True(t, ok)
	assert.Equal(t, "application/pdf", blob.MIMEType)
	assert.Equal(t, []byte("%PDF-1.4"), blob.Data)
}

func TestVertexExtractor_Failures(t *testing.T) {
	tests := []struct {
		name  string
		model *fakeModel
		want  string
	}{
		{"model error", &fakeModel{err: errors.New("quota")}, "failed to generate content"},
		{"empty response", &fakeModel{}, "empty response"},
		{"refusal", &fakeModel{text: []string{"I am unable to help with this document."}}, "refusal"},
		{"not json", &fakeModel{text: []string{"here you go"}}, "failed to parse JSON"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewVertexExtractor(tt.model).Extract(context.Background(), writeSource(t, "scan.png"), DefaultLanguages)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestVertexExtractor_JSONMentioningRefusalIsAccepted(t *testing.T) {
	model := &fakeModel{text: []string{`{"diploma": {"remarks": "I am unable to read the seal"}}`}}
	data, err := NewVertexExtractor(model).Extract(context.Background(), writeSource(t, "d.jpg"), DefaultLanguages)
	require.NoError(t, err)
	assert.True(t, data.Present(sections.Diploma))
}

func TestVertexExtractor_MissingFile(t *testing.T) {
	_, err := NewVertexExtractor(&fakeModel{}).Extract(context.Background(), filepath.Join(t.TempDir(), "gone.pdf"), DefaultLanguages)
	assert.ErrorContains(t, err, "failed to read source file")
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}```"))
	assert.Equal(t, `{"a":1}`, stripFences("  {\"a\":1}  "))
}

func TestExtractionPrompt(t *testing.T) {
	dutch := ExtractionPrompt(LanguagePair{Source: "Arabic", Target: "Dutch"})
	assert.Contains(t, dutch, "in Arabic or another language")
	assert.Contains(t, dutch, "Vrouwelijk")
	for _, d := range sections.Descriptors() {
		assert.Contains(t, dutch, `"`+string(d.Key)+`"`)
	}

	english := ExtractionPrompt(LanguagePair{Source: "Dutch", Target: "English"})
	assert.Contains(t, english, "translated content in English")
	assert.NotContains(t, english, "Vrouwelijk")
}

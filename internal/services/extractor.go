package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cloud.google.com/go/vertexai/genai"

	"github.com/Affiliat0r/Vertaler/internal/sections"
)

// contentGenerator is the part of *genai.GenerativeModel the extractor uses.
type contentGenerator interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

// VertexExtractor reads a source document with a Gemini model and returns
// its contents as translated section data.
type VertexExtractor struct {
	model contentGenerator
}

// NewVertexExtractor returns an extractor backed by model.
func NewVertexExtractor(model contentGenerator) *VertexExtractor {
	return &VertexExtractor{model: model}
}

var refusalPhrases = []string{
	"i am unable to",
	"i cannot fulfill",
	"i cannot answer",
	"i cannot provide",
	"as a large language model",
}

// Extract sends the file at path to the model and parses the JSON it returns.
// Any failure, including an empty or refused response, is an error.
func (e *VertexExtractor) Extract(ctx context.Context, path string, langs LanguagePair) (sections.DocumentData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read source file: %w", err)
	}

	logCtx := slog.With("file", filepath.Base(path), "source", langs.Source, "target", langs.Target)
	logCtx.Info("Calling extraction model.", "bytes", len(data))

	resp, err := e.model.GenerateContent(ctx,
		genai.Blob{MIMEType: MIMEType(path), Data: data},
		genai.Text(ExtractionPrompt(langs)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content from gemini: %w", err)
	}

	jsonString := extractJSONContent(resp)
	if jsonString == "" {
		return nil, errors.New("gemini returned an empty response instead of JSON")
	}

	lower := strings.ToLower(jsonString)
	for _, phrase := range refusalPhrases {
		if strings.Contains(lower, phrase) && !strings.HasPrefix(jsonString, "{") {
			logCtx.Error("Model refused the extraction.", "response", jsonString)
			return nil, errors.New("gemini response indicates refusal")
		}
	}

	result, err := sections.ParseDocumentData([]byte(jsonString))
	if err != nil {
		logCtx.Error("Failed to parse extraction response.", "error", err, "responseBody", jsonString)
		return nil, fmt.Errorf("failed to parse JSON from model: %w", err)
	}
	logCtx.Info("Extraction complete.", "sections", len(result.PresentKeys()))
	return result, nil
}

// extractJSONContent concatenates the text parts of the first candidate and
// strips markdown fences.
func extractJSONContent(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return stripFences(sb.String())
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

// ExtractionPrompt lists every recognized document type with its fields and
// the translation conventions for the target language.
func ExtractionPrompt(langs LanguagePair) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "You are analyzing official documents that may be in %s or another language.\n", langs.Source)
	fmt.Fprintf(&sb, "Extract ALL data from these documents and provide a JSON response with the translated content in %s.\n\n", langs.Target)
	sb.WriteString("SUPPORTED DOCUMENT TYPES - Identify which types are present and extract data accordingly:\n\n")
	for i, d := range sections.Descriptors() {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, d.Name)
	}

	sb.WriteString("\nReturn a JSON object with this structure. ONLY include sections for document types that are actually present in the document.\n")
	fmt.Fprintf(&sb, "Use %q for unclear/missing data, %q for explicitly empty fields.\n\n{\n", sections.Placeholder, sections.EmptyMarker)
	descs := sections.Descriptors()
	for i, d := range descs {
		quoted := make([]string, len(d.Fields))
		for j, f := range d.Fields {
			quoted[j] = fmt.Sprintf("%q: \"\"", f)
		}
		fmt.Fprintf(&sb, "  %q: { %s }", string(d.Key), strings.Join(quoted, ", "))
		if i < len(descs)-1 {
			sb.WriteString(",")
		}
		sb.WriteString("\n")
	}
	sb.WriteString("}\n\n")

	fmt.Fprintf(&sb, "IMPORTANT TRANSLATION NOTES for %s:\n", langs.Target)
	fmt.Fprintf(&sb, "- Translate labels and common terms to %s\n", langs.Target)
	sb.WriteString("- Keep proper names (people's names) in their transliterated form\n")
	if strings.EqualFold(langs.Target, "Dutch") {
		sb.WriteString(dutchNotes)
	}
	sb.WriteString("\nReturn ONLY the JSON object, no additional text or markdown formatting.\n")
	sb.WriteString("Only include document type sections that are actually present in the document - omit sections for documents not found.\n")
	return sb.String()
}

const dutchNotes = `- For gender: use "Vrouwelijk" (Female) or "Mannelijk" (Male)
- For nationality: use the Dutch term (e.g. "Jemenitisch" for Yemeni, "Nederlands" for Dutch)
- For religion: use "Islam", "Christendom", etc.
- For profession "ربة منزل" use "Huisvrouw"; for "طالب" use "Student"
- For ID type "شخصي" use "Persoonlijk"; for "بطاقة عائلية" use "Gezinsboekje"
- For education level use "Gemiddeld", "Universitair", "HBO" etc.
- Use "[Leeg]" for empty fields
- Translate dates written in words to Dutch (e.g. "Eén" for one, "Januari" for January)
- For contract types: "Vast", "Tijdelijk", "Onbepaalde tijd"
- For marital status: "Ongehuwd", "Gehuwd", "Gescheiden", "Weduwe/Weduwnaar"
`

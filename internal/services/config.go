package services

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Affiliat0r/Vertaler/internal/document"
	"github.com/Affiliat0r/Vertaler/internal/gcp"
)

// Config holds all configuration for the translation pipeline.
type Config struct {
	ProjectID             string
	SubmissionsCollection string
	DocumentsBucket       string
	TranslationsPrefix    string
	PublicBaseURL         string
	VertexAIRegion        string
	ExtractionModel       string

	ResendAPIKey    string
	EmailFrom       string
	EmailRecipients []string

	WebhookSecret string
	ScratchDir    string
	OutputDir     string
	OutputFile    string
	PhaseTimeout  time.Duration
	PollInterval  time.Duration
	Languages     LanguagePair

	Document document.Config
}

// LoadConfig loads and validates all environment variables the pipeline needs.
func LoadConfig() (*Config, error) {
	cfg, err := LoadLocalConfig()
	if err != nil {
		return nil, err
	}
	cfg.DocumentsBucket = gcp.GetEnv("DOCUMENTS_BUCKET", "")
	if cfg.DocumentsBucket == "" {
		return nil, fmt.Errorf("DOCUMENTS_BUCKET environment variable must be set")
	}
	if cfg.ResendAPIKey != "" && len(cfg.EmailRecipients) == 0 {
		return nil, fmt.Errorf("EMAIL_RECIPIENTS environment variable must be set when RESEND_API_KEY is set")
	}
	return cfg, nil
}

// LoadLocalConfig loads the configuration needed to extract and assemble
// without the submission store or blob store.
func LoadLocalConfig() (*Config, error) {
	projectID := gcp.GetEnv("PROJECT_ID", "")
	if projectID == "" {
		return nil, fmt.Errorf("PROJECT_ID environment variable must be set")
	}

	phaseTimeout, err := envDuration("PHASE_TIMEOUT", 5*time.Minute)
	if err != nil {
		return nil, err
	}
	pollInterval, err := envDuration("POLL_INTERVAL", 30*time.Second)
	if err != nil {
		return nil, err
	}
	docCfg, err := LoadDocumentConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		ProjectID:             projectID,
		SubmissionsCollection: gcp.GetEnv("SUBMISSIONS_COLLECTION", "contact_submissions"),
		DocumentsBucket:       gcp.GetEnv("DOCUMENTS_BUCKET", ""),
		TranslationsPrefix:    gcp.GetEnv("TRANSLATIONS_PREFIX", "translations"),
		PublicBaseURL:         gcp.GetEnv("PUBLIC_BASE_URL", "https://storage.googleapis.com"),
		VertexAIRegion:        gcp.GetEnv("VERTEX_AI_REGION", "us-central1"),
		ExtractionModel:       gcp.GetEnv("EXTRACTION_MODEL", "gemini-1.5-pro"),
		ResendAPIKey:          gcp.GetEnv("RESEND_API_KEY", ""),
		EmailFrom:             gcp.GetEnv("EMAIL_FROM", "Al-Bayaan Vertalingen <noreply@albayaanvertalingen.nl>"),
		EmailRecipients:       splitList(gcp.GetEnv("EMAIL_RECIPIENTS", "")),
		WebhookSecret:         gcp.GetEnv("WEBHOOK_SECRET", ""),
		ScratchDir:            gcp.GetEnv("SCRATCH_DIR", os.TempDir()),
		OutputDir:             gcp.GetEnv("OUTPUT_DIR", "./output"),
		OutputFile:            gcp.GetEnv("OUTPUT_FILENAME", "Documenten_Nederlands.docx"),
		PhaseTimeout:          phaseTimeout,
		PollInterval:          pollInterval,
		Languages: LanguagePair{
			Source: gcp.GetEnv("SOURCE_LANGUAGE", DefaultLanguages.Source),
			Target: gcp.GetEnv("TARGET_LANGUAGE", DefaultLanguages.Target),
		},
		Document: docCfg,
	}, nil
}

// LoadDocumentConfig resolves the document style once from the environment.
func LoadDocumentConfig() (document.Config, error) {
	cfg := document.DefaultConfig()
	cfg.Font = gcp.GetEnv("DEFAULT_FONT", cfg.Font)

	ints := []struct {
		key string
		dst *int
	}{
		{"DEFAULT_FONT_SIZE", &cfg.FontSize},
		{"TITLE_FONT_SIZE", &cfg.TitleSize},
		{"HEADING1_FONT_SIZE", &cfg.Heading1Size},
		{"HEADING2_FONT_SIZE", &cfg.Heading2Size},
		{"MARGIN_TOP", &cfg.Margins.Top},
		{"MARGIN_RIGHT", &cfg.Margins.Right},
		{"MARGIN_BOTTOM", &cfg.Margins.Bottom},
		{"MARGIN_LEFT", &cfg.Margins.Left},
	}
	for _, i := range ints {
		v, err := envInt(i.key, *i.dst)
		if err != nil {
			return document.Config{}, err
		}
		*i.dst = v
	}

	cfg.BorderColor = gcp.GetEnv("TABLE_BORDER_COLOR", cfg.BorderColor)
	cfg.HeaderBackground = gcp.GetEnv("TABLE_HEADER_BG_COLOR", cfg.HeaderBackground)
	cfg.LightBorderColor = gcp.GetEnv("TABLE_LIGHT_BORDER_COLOR", cfg.LightBorderColor)

	if err := cfg.Validate(); err != nil {
		return document.Config{}, fmt.Errorf("invalid document style configuration: %w", err)
	}
	return cfg, nil
}

func envInt(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(gcp.GetEnv(key, ""))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %q", key, raw)
	}
	return v, nil
}

func envDuration(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(gcp.GetEnv(key, ""))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%s must be a positive duration, got %q", key, raw)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

package services

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLanguageDirection(t *testing.T) {
	tests := []struct {
		in   string
		want LanguagePair
	}{
		{"arabic → dutch", LanguagePair{"Arabic", "Dutch"}},
		{"Dutch -> Arabic", LanguagePair{"Dutch", "Arabic"}},
		{"ENGLISH>dutch", LanguagePair{"English", "Dutch"}},
		{"  turkish  -  dutch ", LanguagePair{"Turkish", "Dutch"}},
		{"", DefaultLanguages},
		{"   ", DefaultLanguages},
		{"arabic", DefaultLanguages},
		{"arabic → dutch → english", DefaultLanguages},
		{"→ dutch", DefaultLanguages},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLanguageDirection(tt.in, DefaultLanguages))
		})
	}
}

func TestOutputFileName(t *testing.T) {
	at := time.Date(2024, 3, 9, 17, 4, 5, 999, time.FixedZone("CET", 3600))
	assert.Equal(t, "Translation_Sara_Ali_2024-03-09T16-04-05.docx", OutputFileName("Sara Ali", at))
	assert.Equal(t, "Translation_Mohammed_Abdullah_Al_2024-03-09T16-04-05.docx", OutputFileName("Mohammed Abdullah Al-Hashimi", at))
	assert.Equal(t, "Translation______2024-03-09T16-04-05.docx", OutputFileName("سارة", at))
}

func TestSelectSource(t *testing.T) {
	okInspect := func(string) (int, error) { return 2, nil }
	badFirst := func(p string) (int, error) {
		if p == "/tmp/a.pdf" {
			return 0, errors.New("broken xref")
		}
		return 1, nil
	}
	emptyPDF := func(string) (int, error) { return 0, nil }

	tests := []struct {
		name    string
		paths   []string
		inspect PDFInspector
		want    string
		wantErr error
	}{
		{"pdf wins over earlier image", []string{"/tmp/scan.JPG", "/tmp/a.PDF"}, okInspect, "/tmp/a.PDF", nil},
		{"first valid pdf", []string{"/tmp/a.pdf", "/tmp/b.pdf"}, badFirst, "/tmp/b.pdf", nil},
		{"invalid pdf falls back to image", []string{"/tmp/a.pdf", "/tmp/c.png"}, badFirst, "/tmp/c.png", nil},
		{"pdf without pages skipped", []string{"/tmp/x.pdf", "/tmp/y.jpeg"}, emptyPDF, "/tmp/y.jpeg", nil},
		{"nil inspector accepts pdf", []string{"/tmp/a.pdf"}, nil, "/tmp/a.pdf", nil},
		{"gif is not a source", []string{"/tmp/a.gif", "/tmp/b.docx"}, okInspect, "", ErrNoEligibleFile},
		{"empty", nil, okInspect, "", ErrNoEligibleFile},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SelectSource(tt.paths, tt.inspect)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMIMEType(t *testing.T) {
	for path, want := range map[string]string{
		"a.pdf":  "application/pdf",
		"a.PNG":  "image/png",
		"a.jpg":  "image/jpeg",
		"a.jpeg": "image/jpeg",
		"a.gif":  "image/gif",
		"a.webp": "image/webp",
		"a.docx": "application/octet-stream",
	} {
		assert.Equal(t, want, MIMEType(path), path)
	}
}

func TestLoadDocumentConfig(t *testing.T) {
	t.Setenv("DEFAULT_FONT", "Calibri")
	t.Setenv("TITLE_FONT_SIZE", "40")
	t.Setenv("MARGIN_LEFT", "1000")
	t.Setenv("TABLE_HEADER_BG_COLOR", "DDDDDD")

	cfg, err := LoadDocumentConfig()
	require.NoError(t, err)
	assert.Equal(t, "Calibri", cfg.Font)
	assert.Equal(t, 40, cfg.TitleSize)
	assert.Equal(t, 22, cfg.FontSize)
	assert.Equal(t, 1000, cfg.Margins.Left)
	assert.Equal(t, 720, cfg.Margins.Top)
	assert.Equal(t, "DDDDDD", cfg.HeaderBackground)
}

func TestLoadDocumentConfig_Invalid(t *testing.T) {
	t.Setenv("DEFAULT_FONT_SIZE", "large")
	_, err := LoadDocumentConfig()
	assert.ErrorContains(t, err, "DEFAULT_FONT_SIZE")

	t.Setenv("DEFAULT_FONT_SIZE", "22")
	t.Setenv("TABLE_BORDER_COLOR", "black")
	_, err = LoadDocumentConfig()
	assert.Error(t, err)
}

func TestLoadConfig(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("PROJECT_ID", "")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PROJECT_ID")

	t.Setenv("PROJECT_ID", "vertaler-test")
	t.Setenv("DOCUMENTS_BUCKET", "")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "DOCUMENTS_BUCKET")

	t.Setenv("DOCUMENTS_BUCKET", "documents")
	t.Setenv("EMAIL_RECIPIENTS", " a@example.com, ,b@example.com ")
	t.Setenv("PHASE_TIMEOUT", "90s")
	t.Setenv("SOURCE_LANGUAGE", "Turkish")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "documents", cfg.DocumentsBucket)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, cfg.EmailRecipients)
	assert.Equal(t, 90*time.Second, cfg.PhaseTimeout)
	assert.Equal(t, LanguagePair{Source: "Turkish", Target: "Dutch"}, cfg.Languages)

	t.Setenv("POLL_INTERVAL", "-5s")
	_, err = LoadConfig()
	assert.ErrorContains(t, err, "POLL_INTERVAL")
}

func TestLoadConfig_MailerNeedsRecipients(t *testing.T) {
	t.Setenv("PROJECT_ID", "vertaler-test")
	t.Setenv("DOCUMENTS_BUCKET", "documents")
	t.Setenv("RESEND_API_KEY", "re_test")
	t.Setenv("EMAIL_RECIPIENTS", " , ")
	_, err := LoadConfig()
	assert.ErrorContains(t, err, "EMAIL_RECIPIENTS")

	t.Setenv("EMAIL_RECIPIENTS", "office@example.com")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, []string{"office@example.com"}, cfg.EmailRecipients)

	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("EMAIL_RECIPIENTS", "")
	_, err = LoadConfig()
	assert.NoError(t, err)
}

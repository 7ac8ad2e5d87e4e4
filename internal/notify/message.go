// Package notify sends the notification email that accompanies a finished
// translation.
package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"path"
	"time"
	_ "time/tzdata"

	"github.com/Affiliat0r/Vertaler/internal/models"
)

// Attachment is a file sent along with a message.
type Attachment struct {
	Filename string
	Content  []byte
}

// Message is one outgoing HTML email.
type Message struct {
	To          []string
	Subject     string
	HTML        string
	ReplyTo     string
	Attachments []Attachment
}

// Document is the translated output a notification announces.
type Document struct {
	FileName string
	Content  []byte
	URL      string
}

var dutchMonths = [...]string{
	"januari", "februari", "maart", "april", "mei", "juni",
	"juli", "augustus", "september", "oktober", "november", "december",
}

var amsterdam = loadAmsterdam()

func loadAmsterdam() *time.Location {
	loc, err := time.LoadLocation("Europe/Amsterdam")
	if err != nil {
		return time.UTC
	}
	return loc
}

// dutchDate formats t like "2 januari 2024 om 14:05" in Amsterdam time.
func dutchDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	t = t.In(amsterdam)
	return fmt.Sprintf("%d %s %d om %02d:%02d", t.Day(), dutchMonths[t.Month()-1], t.Year(), t.Hour(), t.Minute())
}

// Subject is the subject line for a submission's translation email.
func Subject(sub *models.Submission) string {
	direction := sub.LanguageDirection
	if direction == "" {
		direction = "Vertaling"
	}
	return fmt.Sprintf("Nieuwe aanvraag + Vertaling: %s (%s)", sub.Name, direction)
}

type fileLink struct {
	URL  string
	Name string
}

type messageView struct {
	Name      string
	Email     string
	Phone     string
	Direction string
	Text      string
	Date      string
	Files     []fileLink
	FileName  string
	URL       string
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

var messageTemplate = template.Must(template.New("translation").Parse(`
<h2>Nieuwe offerte aanvraag + Vertaling - Al-Bayaan Vertalingen</h2>

<h3 style="color: #333; border-bottom: 2px solid #FFD700; padding-bottom: 10px;">Klantgegevens</h3>
<table style="border-collapse: collapse; width: 100%; max-width: 600px; margin: 20px 0;">
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold; background: #f5f5f5; width: 150px;">Naam</td>
    <td style="padding: 10px; border: 1px solid #ddd;">{{.Name}}</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold; background: #f5f5f5;">E-mail</td>
    <td style="padding: 10px; border: 1px solid #ddd;"><a href="mailto:{{.Email}}">{{.Email}}</a></td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold; background: #f5f5f5;">Telefoon</td>
    <td style="padding: 10px; border: 1px solid #ddd;">{{.Phone}}</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold; background: #f5f5f5;">Taalrichting</td>
    <td style="padding: 10px; border: 1px solid #ddd;">{{.Direction}}</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold; background: #f5f5f5;">Bericht</td>
    <td style="padding: 10px; border: 1px solid #ddd;">{{.Text}}</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold; background: #f5f5f5;">Aanvraagdatum</td>
    <td style="padding: 10px; border: 1px solid #ddd;">{{.Date}}</td>
  </tr>
  <tr>
    <td style="padding: 10px; border: 1px solid #ddd; font-weight: bold; background: #f5f5f5;">Originele bestanden</td>
    <td style="padding: 10px; border: 1px solid #ddd;">{{range $i, $f := .Files}}{{if $i}}<br>{{end}}<a href="{{$f.URL}}" style="color: #007bff;">{{$f.Name}}</a>{{else}}Geen bestanden{{end}}</td>
  </tr>
</table>

<h3 style="color: #333; border-bottom: 2px solid #4CAF50; padding-bottom: 10px;">Automatische Vertaling</h3>
<p style="padding: 15px; background: #e8f5e9; border-radius: 5px; border-left: 4px solid #4CAF50;">
  <strong>Het vertaalde document is als bijlage toegevoegd aan deze e-mail.</strong><br>
  <span style="color: #666;">Bestandsnaam: {{.FileName}}</span>
</p>

<p><strong>Download link:</strong><br>
<a href="{{.URL}}" style="color: #007bff; word-break: break-all;">{{.URL}}</a></p>

<hr style="margin: 30px 0; border: none; border-top: 1px solid #ddd;">
<p style="color: #666; font-size: 12px;">
  Dit bericht is automatisch verzonden via het Al-Bayaan vertaalsysteem.<br>
  De vertaling is gegenereerd met AI en dient gecontroleerd te worden.
</p>
`))

// BuildMessage renders the notification for a translated submission. The
// requester becomes the reply-to address and doc is attached.
func BuildMessage(sub *models.Submission, doc Document, to []string) (Message, error) {
	view := messageView{
		Name:      sub.Name,
		Email:     sub.Email,
		Phone:     orDash(sub.Phone),
		Direction: orDash(sub.LanguageDirection),
		Text:      orDash(sub.Message),
		Date:      dutchDate(sub.CreatedAt),
		FileName:  doc.FileName,
		URL:       doc.URL,
	}
	for _, u := range sub.FileURLs {
		if u == "" {
			continue
		}
		view.Files = append(view.Files, fileLink{URL: u, Name: path.Base(u)})
	}

	var buf bytes.Buffer
	if err := messageTemplate.Execute(&buf, view); err != nil {
		return Message{}, fmt.Errorf("rendering notification: %w", err)
	}

	msg := Message{
		To:      to,
		Subject: Subject(sub),
		HTML:    buf.String(),
		ReplyTo: sub.Email,
	}
	if len(doc.Content) > 0 {
		msg.Attachments = []Attachment{{Filename: doc.FileName, Content: doc.Content}}
	}
	return msg, nil
}

package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// ConsularRecord is a declaration issued by an embassy or consulate.
type ConsularRecord struct {
	EmbassyName        string `json:"embassyName"`
	EmbassyCountry     string `json:"embassyCountry"`
	EmbassyAddress     string `json:"embassyAddress"`
	DocumentType       string `json:"documentType"`
	SubjectName        string `json:"subjectName"`
	SubjectBirthDate   string `json:"subjectBirthDate"`
	SubjectBirthPlace  string `json:"subjectBirthPlace"`
	SubjectNationality string `json:"subjectNationality"`
	PassportNumber     string `json:"passportNumber"`
	CurrentAddress     string `json:"currentAddress"`
	Content            string `json:"content"`
	Purpose            string `json:"purpose"`
	AttachedDocuments  string `json:"attachedDocuments,omitempty"`
	ReferenceNumber    string `json:"referenceNumber"`
	ConsularFees       string `json:"consularFees"`
	IssueDate          string `json:"issueDate"`
	ValidUntil         string `json:"validUntil"`
	ConsularOfficer    string `json:"consularOfficer"`
	OfficerTitle       string `json:"officerTitle"`
}

// Blocks implements Section.
func (c ConsularRecord) Blocks() []d.Block {
	blocks := []d.Block{
		d.Title("CONSULAIR DOCUMENT", 32),
		d.Centered(c.EmbassyName, d.Format{Bold: true, Size: 24, Before: 200, After: 100}),
		d.Centered(c.EmbassyCountry, d.Format{Bold: true, Size: 22}),
		d.Centered(c.EmbassyAddress, d.Format{Size: 20, After: 200}),
		d.Centered("Document: "+c.DocumentType, d.Format{Bold: true, Size: 22, After: 200}),
		d.FieldTable(d.ShadeLightBlue,
			d.Field{Label: "Betreft", Value: c.SubjectName},
			d.Field{Label: "Geboortedatum", Value: c.SubjectBirthDate},
			d.Field{Label: "Geboorteplaats", Value: c.SubjectBirthPlace},
			d.Field{Label: "Nationaliteit", Value: c.SubjectNationality},
			d.Field{Label: "Paspoortnummer", Value: c.PassportNumber},
			d.Field{Label: "Huidig adres", Value: c.CurrentAddress},
		),
		d.Label("Inhoud:"),
		d.Text(c.Content, d.Format{}),
		d.LabelValue("Doel:", c.Purpose),
	}
	if c.AttachedDocuments != "" {
		blocks = append(blocks,
			d.Label("Bijgevoegde documenten:"),
			d.Text(c.AttachedDocuments, d.Format{}),
		)
	}
	return append(blocks,
		d.Label("Consulaire gegevens:"),
		d.LabelValue("Referentienummer:", c.ReferenceNumber),
		d.LabelValue("Consulaire kosten:", c.ConsularFees),
		d.LabelValue("Datum van afgifte:", c.IssueDate),
		d.LabelValue("Geldig tot:", c.ValidUntil),
		d.Label("Ondertekening:"),
		d.LabelValue("Consulair ambtenaar:", c.ConsularOfficer),
		d.LabelValue("Functie:", c.OfficerTitle),
		d.LabelValue("Handtekening:", signature),
		d.LabelValue("Consulair zegel:", "[Officieel zegel]"),
	)
}

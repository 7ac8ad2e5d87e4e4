package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// CertificateRecord is a general attestation or declaration.
type CertificateRecord struct {
	IssuingAuthority   string `json:"issuingAuthority"`
	AuthorityAddress   string `json:"authorityAddress"`
	CertificateType    string `json:"certificateType"`
	SubjectName        string `json:"subjectName"`
	SubjectBirthDate   string `json:"subjectBirthDate"`
	SubjectBirthPlace  string `json:"subjectBirthPlace"`
	SubjectNationality string `json:"subjectNationality"`
	SubjectIDNumber    string `json:"subjectIdNumber"`
	ReferenceNumber    string `json:"referenceNumber"`
	CertificateContent string `json:"certificateContent"`
	Purpose            string `json:"purpose"`
	IssueDate          string `json:"issueDate"`
	ValidUntil         string `json:"validUntil"`
	OfficialName       string `json:"officialName"`
	OfficialTitle      string `json:"officialTitle"`
}

// Blocks implements Section.
func (c CertificateRecord) Blocks() []d.Block {
	return []d.Block{
		d.Title("VERKLARING / ATTEST", 32),
		d.Centered(c.IssuingAuthority, d.Format{Bold: true, Size: 24, Before: 200, After: 100}),
		d.Centered(c.AuthorityAddress, d.Format{Size: 20, After: 200}),
		d.Centered("Type: "+c.CertificateType, d.Format{Bold: true, Size: 22, After: 200}),
		d.FieldTable(d.ShadeLightGreen,
			d.Field{Label: "Betreft", Value: c.SubjectName},
			d.Field{Label: "Geboortedatum", Value: c.SubjectBirthDate},
			d.Field{Label: "Geboorteplaats", Value: c.SubjectBirthPlace},
			d.Field{Label: "Nationaliteit", Value: c.SubjectNationality},
			d.Field{Label: "Identiteitsnummer", Value: c.SubjectIDNumber},
			d.Field{Label: "Referentienummer", Value: c.ReferenceNumber},
		),
		d.Label("Inhoud van de verklaring:"),
		d.Text(c.CertificateContent, d.Format{}),
		d.LabelValue("Doel van de verklaring:", c.Purpose),
		d.Label("Geldigheid:"),
		d.LabelValue("Datum van afgifte:", c.IssueDate),
		d.LabelValue("Geldig tot:", c.ValidUntil),
		d.Label("Ondertekening:"),
		d.LabelValue("Naam functionaris:", c.OfficialName),
		d.LabelValue("Functie:", c.OfficialTitle),
		d.LabelValue("Handtekening:", signature),
		d.LabelValue("Stempel:", "[Officieel stempel]"),
	}
}

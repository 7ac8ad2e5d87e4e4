package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// CourtRecord is a court ruling or other judicial document.
type CourtRecord struct {
	CourtName        string `json:"courtName"`
	CourtDivision    string `json:"courtDivision"`
	CourtAddress     string `json:"courtAddress"`
	DocumentType     string `json:"documentType"`
	CaseNumber       string `json:"caseNumber"`
	JudgmentDate     string `json:"judgmentDate"`
	CaseType         string `json:"caseType"`
	Judges           string `json:"judges"`
	PlaintiffName    string `json:"plaintiffName"`
	PlaintiffAddress string `json:"plaintiffAddress"`
	PlaintiffLawyer  string `json:"plaintiffLawyer"`
	DefendantName    string `json:"defendantName"`
	DefendantAddress string `json:"defendantAddress"`
	DefendantLawyer  string `json:"defendantLawyer"`
	SubjectMatter    string `json:"subjectMatter"`
	Decision         string `json:"decision"`
	Grounds          string `json:"grounds,omitempty"`
	AppealInfo       string `json:"appealInfo"`
	CourtCosts       string `json:"courtCosts"`
	ClerkName        string `json:"clerkName"`
	JudgeName        string `json:"judgeName"`
	SignatureDate    string `json:"signatureDate"`
}

// Blocks implements Section.
func (c CourtRecord) Blocks() []d.Block {
	party := func(name, address, lawyer string) []d.Paragraph {
		return []d.Paragraph{
			d.Inline("Naam:", name),
			d.Inline("Adres:", address),
			d.Inline("Advocaat:", lawyer),
		}
	}

	blocks := []d.Block{
		d.Title("GERECHTELIJK DOCUMENT", 32),
		d.Centered(c.CourtName, d.Format{Bold: true, Size: 28, Before: 200, After: 100}),
		d.Centered(c.CourtDivision, d.Format{Bold: true, Size: 22}),
		d.Centered(c.CourtAddress, d.Format{Size: 20, After: 200}),
		d.Centered("Type: "+c.DocumentType, d.Format{Bold: true, Size: 22, After: 200}),

		d.Heading("ZAAKGEGEVENS"),
		d.FieldTable(d.ShadeHeader,
			d.Field{Label: "Zaaknummer", Value: c.CaseNumber},
			d.Field{Label: "Datum uitspraak", Value: c.JudgmentDate},
			d.Field{Label: "Type zaak", Value: c.CaseType},
			d.Field{Label: "Rechter(s)", Value: c.Judges},
		),

		d.Heading("BETROKKEN PARTIJEN"),
		d.PairTable("Eiser / Verzoeker", "Gedaagde / Verweerder", d.ShadeLightGreen, d.ShadeLightPink,
			[][]d.Paragraph{party(c.PlaintiffName, c.PlaintiffAddress, c.PlaintiffLawyer)},
			[][]d.Paragraph{party(c.DefendantName, c.DefendantAddress, c.DefendantLawyer)},
		),

		d.Label("Onderwerp van de zaak:"),
		d.Text(c.SubjectMatter, d.Format{}),
		d.Label("Beslissing / Uitspraak:"),
		d.Text(c.Decision, d.Format{}),
	}
	if c.Grounds != "" {
		blocks = append(blocks,
			d.Label("Gronden voor de beslissing:"),
			d.Text(c.Grounds, d.Format{}),
		)
	}
	return append(blocks,
		d.Label("Beroepsmogelijkheid:"),
		d.Text(c.AppealInfo, d.Format{}),
		d.LabelValue("Proceskosten:", c.CourtCosts),
		d.Label("Ondertekening:"),
		d.LabelValue("Griffier:", c.ClerkName),
		d.LabelValue("Rechter:", c.JudgeName),
		d.LabelValue("Datum:", c.SignatureDate),
		d.LabelValue("Handtekening:", signature),
		d.LabelValue("Rechtbankstempel:", "[Officieel stempel]"),
	)
}

package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// BrpRecord is an extract from a population register (BRP/GBA).
type BrpRecord struct {
	IssuingAuthority string `json:"issuingAuthority"`
	IssuingPlace     string `json:"issuingPlace"`
	ExtractNumber    string `json:"extractNumber"`
	IssueDate        string `json:"issueDate"`

	LastName      string `json:"lastName"`
	FirstNames    string `json:"firstNames"`
	BirthDate     string `json:"birthDate"`
	BirthPlace    string `json:"birthPlace"`
	BirthCountry  string `json:"birthCountry"`
	Gender        string `json:"gender"`
	Nationality   string `json:"nationality"`
	MaritalStatus string `json:"maritalStatus"`
	BsnNumber     string `json:"bsnNumber"`

	StreetAddress    string `json:"streetAddress"`
	PostalCode       string `json:"postalCode"`
	City             string `json:"city"`
	Country          string `json:"country"`
	RegistrationDate string `json:"registrationDate"`

	FatherName       string `json:"fatherName"`
	FatherBirthDate  string `json:"fatherBirthDate"`
	FatherBirthPlace string `json:"fatherBirthPlace"`
	MotherName       string `json:"motherName"`
	MotherBirthDate  string `json:"motherBirthDate"`
	MotherBirthPlace string `json:"motherBirthPlace"`

	PartnerName      string `json:"partnerName,omitempty"`
	PartnerBirthDate string `json:"partnerBirthDate"`
	MarriageDate     string `json:"marriageDate"`

	OfficialName string `json:"officialName"`
}

// Blocks implements Section.
func (b BrpRecord) Blocks() []d.Block {
	parent := func(name, birthDate, birthPlace string) []d.Paragraph {
		return []d.Paragraph{
			d.Inline("Naam:", name),
			d.Inline("Geboortedatum:", birthDate),
			d.Inline("Geboorteplaats:", birthPlace),
		}
	}

	blocks := []d.Block{
		d.Title("UITTREKSEL BEVOLKINGSREGISTER", 32),
		d.Centered("(BRP / GBA Uittreksel)", d.Format{Size: 20, After: 100}),
		d.Centered(b.IssuingAuthority, d.Format{Bold: true, Size: 24, Before: 200, After: 100}),
		d.Centered(b.IssuingPlace, d.Format{Size: 20, After: 200}),
		d.LabelValue("Uittrekselnummer:", b.ExtractNumber),
		d.LabelValue("Datum van afgifte:", b.IssueDate),

		d.Heading("PERSOONSGEGEVENS"),
		d.FieldTable(d.ShadeLightBlue,
			d.Field{Label: "Achternaam", Value: b.LastName},
			d.Field{Label: "Voornamen", Value: b.FirstNames},
			d.Field{Label: "Geboortedatum", Value: b.BirthDate},
			d.Field{Label: "Geboorteplaats", Value: b.BirthPlace},
			d.Field{Label: "Geboorteland", Value: b.BirthCountry},
			d.Field{Label: "Geslacht", Value: b.Gender},
			d.Field{Label: "Nationaliteit", Value: b.Nationality},
			d.Field{Label: "Burgerlijke staat", Value: b.MaritalStatus},
			d.Field{Label: "BSN / Identiteitsnummer", Value: b.BsnNumber},
		),

		d.Heading("ADRESGEGEVENS"),
		d.FieldTable(d.ShadeLightGreen,
			d.Field{Label: "Straat en huisnummer", Value: b.StreetAddress},
			d.Field{Label: "Postcode", Value: b.PostalCode},
			d.Field{Label: "Woonplaats", Value: b.City},
			d.Field{Label: "Land", Value: b.Country},
			d.Field{Label: "Datum inschrijving", Value: b.RegistrationDate},
		),

		d.Heading("GEGEVENS OUDERS"),
		d.PairTable("Vader", "Moeder", d.ShadeFather, d.ShadeMother,
			[][]d.Paragraph{parent(b.FatherName, b.FatherBirthDate, b.FatherBirthPlace)},
			[][]d.Paragraph{parent(b.MotherName, b.MotherBirthDate, b.MotherBirthPlace)},
		),
	}
	if b.PartnerName != "" {
		blocks = append(blocks,
			d.Heading("GEGEVENS PARTNER"),
			d.LabelValue("Naam partner:", b.PartnerName),
			d.LabelValue("Geboortedatum:", b.PartnerBirthDate),
			d.LabelValue("Datum huwelijk/partnerschap:", b.MarriageDate),
		)
	}
	return append(blocks,
		d.Label("Ondertekening:"),
		d.LabelValue("Ambtenaar:", b.OfficialName),
		d.LabelValue("Handtekening:", signature),
		d.LabelValue("Gemeentestempel:", "[Officieel stempel]"),
	)
}

package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// DrivingLicenseRecord is a driving license with up to three categories.
// Field labels carry the numbering printed on EU-style licenses.
type DrivingLicenseRecord struct {
	IssuingCountry   string `json:"issuingCountry"`
	LastName         string `json:"lastName"`
	FirstNames       string `json:"firstNames"`
	BirthDate        string `json:"birthDate"`
	BirthPlace       string `json:"birthPlace"`
	IssueDate        string `json:"issueDate"`
	ExpiryDate       string `json:"expiryDate"`
	IssuingAuthority string `json:"issuingAuthority"`
	LicenseNumber    string `json:"licenseNumber"`
	Address          string `json:"address"`
	Nationality      string `json:"nationality"`

	Category1             string `json:"category1"`
	Category1IssueDate    string `json:"category1IssueDate"`
	Category1ExpiryDate   string `json:"category1ExpiryDate"`
	Category1Restrictions string `json:"category1Restrictions"`
	Category2             string `json:"category2"`
	Category2IssueDate    string `json:"category2IssueDate"`
	Category2ExpiryDate   string `json:"category2ExpiryDate"`
	Category2Restrictions string `json:"category2Restrictions"`
	Category3             string `json:"category3"`
	Category3IssueDate    string `json:"category3IssueDate"`
	Category3ExpiryDate   string `json:"category3ExpiryDate"`
	Category3Restrictions string `json:"category3Restrictions"`

	BloodGroup string `json:"bloodGroup"`
	Remarks    string `json:"remarks"`
}

// Blocks implements Section.
func (l DrivingLicenseRecord) Blocks() []d.Block {
	return []d.Block{
		d.Title("RIJBEWIJS", 32),
		d.Centered(l.IssuingCountry, d.Format{Bold: true, Size: 24, Before: 200, After: 200}),
		d.Heading("GEGEVENS RIJBEWIJSHOUDER"),
		d.FieldTable(d.ShadeLightPink,
			d.Field{Label: "1. Achternaam", Value: l.LastName},
			d.Field{Label: "2. Voornamen", Value: l.FirstNames},
			d.Field{Label: "3. Geboortedatum", Value: l.BirthDate},
			d.Field{Label: "3. Geboorteplaats", Value: l.BirthPlace},
			d.Field{Label: "4a. Afgiftedatum", Value: l.IssueDate},
			d.Field{Label: "4b. Vervaldatum", Value: l.ExpiryDate},
			d.Field{Label: "4c. Afgegeven door", Value: l.IssuingAuthority},
			d.Field{Label: "5. Rijbewijsnummer", Value: l.LicenseNumber},
			d.Field{Label: "8. Adres", Value: l.Address},
			d.Field{Label: "Nationaliteit", Value: l.Nationality},
		),
		d.Heading("RIJBEWIJSCATEGORIEËN"),
		d.GridTable([]int{1500, 2500, 2500, 2500}, d.ShadeHeader,
			[]string{"9. Categorie", "10. Afgiftedatum", "11. Vervaldatum", "12. Beperkingen"},
			[]string{l.Category1, l.Category1IssueDate, l.Category1ExpiryDate, l.Category1Restrictions},
			[]string{l.Category2, l.Category2IssueDate, l.Category2ExpiryDate, l.Category2Restrictions},
			[]string{l.Category3, l.Category3IssueDate, l.Category3ExpiryDate, l.Category3Restrictions},
		),
		d.LabelValue("Bloedgroep:", l.BloodGroup),
		d.LabelValue("Opmerkingen:", l.Remarks),
	}
}

package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// FamilyBookRecord is a family record book listing both parents and up to
// three children.
type FamilyBookRecord struct {
	IssuingAuthority string `json:"issuingAuthority"`
	IssuingPlace     string `json:"issuingPlace"`
	BookNumber       string `json:"bookNumber"`
	IssueDate        string `json:"issueDate"`

	HusbandFullName    string `json:"husbandFullName"`
	HusbandBirthDate   string `json:"husbandBirthDate"`
	HusbandBirthPlace  string `json:"husbandBirthPlace"`
	HusbandNationality string `json:"husbandNationality"`
	HusbandProfession  string `json:"husbandProfession"`
	HusbandFatherName  string `json:"husbandFatherName"`
	HusbandMotherName  string `json:"husbandMotherName"`

	WifeFullName    string `json:"wifeFullName"`
	WifeBirthDate   string `json:"wifeBirthDate"`
	WifeBirthPlace  string `json:"wifeBirthPlace"`
	WifeNationality string `json:"wifeNationality"`
	WifeProfession  string `json:"wifeProfession"`
	WifeFatherName  string `json:"wifeFatherName"`
	WifeMotherName  string `json:"wifeMotherName"`

	MarriageDate       string `json:"marriageDate"`
	MarriagePlace      string `json:"marriagePlace"`
	MarriageCertNumber string `json:"marriageCertNumber"`

	Child1Name       string `json:"child1Name"`
	Child1BirthDate  string `json:"child1BirthDate"`
	Child1BirthPlace string `json:"child1BirthPlace"`
	Child1Gender     string `json:"child1Gender"`
	Child2Name       string `json:"child2Name"`
	Child2BirthDate  string `json:"child2BirthDate"`
	Child2BirthPlace string `json:"child2BirthPlace"`
	Child2Gender     string `json:"child2Gender"`
	Child3Name       string `json:"child3Name"`
	Child3BirthDate  string `json:"child3BirthDate"`
	Child3BirthPlace string `json:"child3BirthPlace"`
	Child3Gender     string `json:"child3Gender"`

	RegistrarName string `json:"registrarName"`
}

// Blocks implements Section.
func (f FamilyBookRecord) Blocks() []d.Block {
	person := func(shade, name, birthDate, birthPlace, nationality, profession, father, mother string) d.Table {
		return d.FieldTable(shade,
			d.Field{Label: "Volledige naam", Value: name},
			d.Field{Label: "Geboortedatum", Value: birthDate},
			d.Field{Label: "Geboorteplaats", Value: birthPlace},
			d.Field{Label: "Nationaliteit", Value: nationality},
			d.Field{Label: "Beroep", Value: profession},
			d.Field{Label: "Naam vader", Value: father},
			d.Field{Label: "Naam moeder", Value: mother},
		)
	}

	return []d.Block{
		d.Title("FAMILIEBOEKJE / FAMILIESTAMBOEK", 32),
		d.Centered(f.IssuingAuthority, d.Format{Bold: true, Size: 24, Before: 200, After: 100}),
		d.Centered(f.IssuingPlace, d.Format{Size: 20, After: 200}),
		d.LabelValue("Boekjesnummer:", f.BookNumber),
		d.LabelValue("Datum van afgifte:", f.IssueDate),

		d.Heading("GEGEVENS ECHTGENOOT / VADER"),
		person(d.ShadeFather, f.HusbandFullName, f.HusbandBirthDate, f.HusbandBirthPlace, f.HusbandNationality,
			f.HusbandProfession, f.HusbandFatherName, f.HusbandMotherName),

		d.Heading("GEGEVENS ECHTGENOTE / MOEDER"),
		person(d.ShadeMother, f.WifeFullName, f.WifeBirthDate, f.WifeBirthPlace, f.WifeNationality,
			f.WifeProfession, f.WifeFatherName, f.WifeMotherName),

		d.Heading("HUWELIJKSGEGEVENS"),
		d.LabelValue("Datum huwelijk:", f.MarriageDate),
		d.LabelValue("Plaats huwelijk:", f.MarriagePlace),
		d.LabelValue("Huwelijksakte nummer:", f.MarriageCertNumber),

		d.Heading("KINDEREN"),
		d.GridTable([]int{500, 3000, 2000, 2000, 1500}, d.ShadeHeader,
			[]string{"Nr.", "Volledige naam", "Geboortedatum", "Geboorteplaats", "Geslacht"},
			[]string{"1", f.Child1Name, f.Child1BirthDate, f.Child1BirthPlace, f.Child1Gender},
			[]string{"2", f.Child2Name, f.Child2BirthDate, f.Child2BirthPlace, f.Child2Gender},
			[]string{"3", f.Child3Name, f.Child3BirthDate, f.Child3BirthPlace, f.Child3Gender},
		),

		d.Label("Ondertekening:"),
		d.LabelValue("Ambtenaar burgerlijke stand:", f.RegistrarName),
		d.LabelValue("Handtekening:", signature),
		d.LabelValue("Stempel:", "[Officieel stempel]"),
	}
}

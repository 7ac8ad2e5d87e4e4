package sections

import (
	"fmt"

	d "github.com/Affiliat0r/Vertaler/internal/document"
)

// CivilRegistrationRecord is the civil-registry entry of a marriage.
type CivilRegistrationRecord struct {
	DayInWords   string `json:"dayInWords"`
	MonthInWords string `json:"monthInWords"`
	YearInWords  string `json:"yearInWords"`
	Neighborhood string `json:"neighborhood"`
	District     string `json:"district"`
	Governorate  string `json:"governorate"`

	HusbandFullName      string `json:"husbandFullName"`
	HusbandBirthDate     string `json:"husbandBirthDate"`
	HusbandBirthCity     string `json:"husbandBirthCity"`
	HusbandBirthDistrict string `json:"husbandBirthDistrict"`
	HusbandBirthGov      string `json:"husbandBirthGov"`
	HusbandProfession    string `json:"husbandProfession"`
	HusbandNationality   string `json:"husbandNationality"`
	HusbandReligion      string `json:"husbandReligion"`
	HusbandMotherName    string `json:"husbandMotherName"`
	HusbandIDType        string `json:"husbandIdType"`
	HusbandIDNumber      string `json:"husbandIdNumber"`
	HusbandIDPlace       string `json:"husbandIdPlace"`
	HusbandIDDate        string `json:"husbandIdDate"`
	HusbandNationalID    string `json:"husbandNationalId"`

	WifeFullName      string `json:"wifeFullName"`
	WifeBirthDate     string `json:"wifeBirthDate"`
	WifeBirthCity     string `json:"wifeBirthCity"`
	WifeBirthDistrict string `json:"wifeBirthDistrict"`
	WifeBirthGov      string `json:"wifeBirthGov"`
	WifeProfession    string `json:"wifeProfession"`
	WifeNationality   string `json:"wifeNationality"`
	WifeReligion      string `json:"wifeReligion"`
	WifeMotherName    string `json:"wifeMotherName"`
	WifeIDType        string `json:"wifeIdType"`
	WifeIDNumber      string `json:"wifeIdNumber"`
	WifeIDPlace       string `json:"wifeIdPlace"`
	WifeIDDate        string `json:"wifeIdDate"`
	WifeNationalID    string `json:"wifeNationalId"`

	AuthNumber     string `json:"authNumber"`
	AuthDate       string `json:"authDate"`
	CourtName      string `json:"courtName"`
	RegDistrict    string `json:"regDistrict"`
	RegGovernorate string `json:"regGovernorate"`
	RegDate        string `json:"regDate"`
	CivilDirector  string `json:"civilDirector"`
	RegistrarName  string `json:"registrarName"`
}

type spouse struct {
	fullName, birthDate, birthCity, birthDistrict, birthGov string
	profession, nationality, religion, motherName           string
	idType, idNumber, idPlace, idDate, nationalID           string
}

// Blocks implements Section.
func (c CivilRegistrationRecord) Blocks() []d.Block {
	return []d.Block{
		d.Centered("REPUBLIEK JEMEN", d.Format{Bold: true, Size: 24, Before: 100, After: 100}),
		d.Title("BURGERLIJKE STAND - HUWELIJKSREGISTRATIE", 28),
		withSpacing(d.Inline("Datum van het contract in letters:",
			fmt.Sprintf("Dag: %s, Maand: %s, Jaar: %s", c.DayInWords, c.MonthInWords, c.YearInWords)), 100, 100),
		withSpacing(d.Inline("Plaats van het contract:",
			fmt.Sprintf("Isolatie/Wijk: %s District: %s, Gouvernement/Land: %s", c.Neighborhood, c.District, c.Governorate)), 0, 200),
		c.spousesTable(),

		d.Label("Type huwelijk:"),
		d.Text("[✓] Nieuw      [ ] Bevestiging", d.Format{}),

		d.Text("Authentificatiereferentie:", d.Format{Bold: true, Before: 100, After: 100}),
		d.LabelValue("Nummer:", c.AuthNumber),
		d.LabelValue("Datum:", c.AuthDate),
		d.LabelValue("Naam van de rechtbank:", c.CourtName),

		d.Text("De huwelijksgebeurtenis is geregistreerd in het huwelijksregister bij de Burgerlijke Stand", d.Format{Before: 200, After: 100}),
		d.LabelValue("District:", fmt.Sprintf("%s, Gouvernement: %s", c.RegDistrict, c.RegGovernorate)),
		d.LabelValue("Datum:", c.RegDate),
		d.LabelValue("Directeur Burgerlijke Stand:", c.CivilDirector),
		d.LabelValue("Naam van de registrator:", c.RegistrarName),
		d.LabelValue("Handtekening:", signature),
	}
}

func (c CivilRegistrationRecord) spousesTable() d.Table {
	husband := spouse{
		c.HusbandFullName, c.HusbandBirthDate, c.HusbandBirthCity, c.HusbandBirthDistrict, c.HusbandBirthGov,
		c.HusbandProfession, c.HusbandNationality, c.HusbandReligion, c.HusbandMotherName,
		c.HusbandIDType, c.HusbandIDNumber, c.HusbandIDPlace, c.HusbandIDDate, c.HusbandNationalID,
	}
	wife := spouse{
		c.WifeFullName, c.WifeBirthDate, c.WifeBirthCity, c.WifeBirthDistrict, c.WifeBirthGov,
		c.WifeProfession, c.WifeNationality, c.WifeReligion, c.WifeMotherName,
		c.WifeIDType, c.WifeIDNumber, c.WifeIDPlace, c.WifeIDDate, c.WifeNationalID,
	}
	return d.PairTable("Gegevens Echtgenoot", "Gegevens Echtgenote", d.ShadeLightGreen, d.ShadeLightGreen,
		husband.rows(), wife.rows())
}

func (s spouse) rows() [][]d.Paragraph {
	// The family registration block is left blank for manual completion.
	familyRegistration := []d.Paragraph{
		d.Inline("Gezinsregistratienummer:", Placeholder),
		d.Inline("Registratiedatum:", "/ /"),
		d.Inline("Registratieplaats:", Placeholder),
		d.Inline("Gouvernement:", Placeholder),
	}
	return [][]d.Paragraph{
		{d.Bold("Volledige naam:"), d.Plain(s.fullName)},
		{d.Inline("Geboortedatum:", s.birthDate)},
		{
			d.Bold("Geboorteplaats:"),
			d.Plain("Dorp/Stad: " + s.birthCity),
			d.Plain(fmt.Sprintf("District: %s Gouvernement/Land: %s", s.birthDistrict, s.birthGov)),
		},
		{d.Inline("Hoofdberoep:", s.profession)},
		{d.Inline("Nationaliteit:", s.nationality), d.Inline("Religie:", s.religion)},
		{d.Bold("Volledige naam moeder:"), d.Plain(s.motherName)},
		{
			d.Inline("Type identiteitsbewijs:", s.idType),
			d.Inline("Nummer:", s.idNumber),
			d.Inline("Afgifteplaats:", s.idPlace),
			d.Inline("Afgiftedatum:", s.idDate),
		},
		{d.Inline("Nationaal ID-nummer:", s.nationalID)},
		familyRegistration,
	}
}

func withSpacing(p d.Paragraph, before, after int) d.Paragraph {
	p.Spacing = d.Spacing{Before: before, After: after}
	return p
}

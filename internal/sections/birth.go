package sections

import (
	"fmt"

	d "github.com/Affiliat0r/Vertaler/internal/document"
)

// BirthRecord is a civil-registry birth certificate.
type BirthRecord struct {
	NewbornFullName      string `json:"newbornFullName"`
	NewbornGender        string `json:"newbornGender"`
	NewbornFirstName     string `json:"newbornFirstName"`
	FatherName           string `json:"fatherName"`
	GrandfatherAndFamily string `json:"grandfatherAndFamily"`

	BirthHourHijri      string `json:"birthHourHijri"`
	BirthDayHijri       string `json:"birthDayHijri"`
	BirthMonthHijri     string `json:"birthMonthHijri"`
	BirthYearHijri      string `json:"birthYearHijri"`
	BirthHourGregorian  string `json:"birthHourGregorian"`
	BirthDayGregorian   string `json:"birthDayGregorian"`
	BirthMonthGregorian string `json:"birthMonthGregorian"`
	BirthYearGregorian  string `json:"birthYearGregorian"`

	BirthCity        string `json:"birthCity"`
	BirthDistrict    string `json:"birthDistrict"`
	BirthGovernorate string `json:"birthGovernorate"`

	FatherFullName   string `json:"fatherFullName"`
	MotherFullName   string `json:"motherFullName"`
	FatherNationalID string `json:"fatherNationalId"`
	MotherNationalID string `json:"motherNationalId"`

	BirthRegNumber    string `json:"birthRegNumber"`
	BirthRegID        string `json:"birthRegId"`
	BirthRegDate      string `json:"birthRegDate"`
	CivilOffice       string `json:"civilOffice"`
	CivilDistrict     string `json:"civilDistrict"`
	CivilGovernorate  string `json:"civilGovernorate"`
	CivilDirector     string `json:"civilDirector"`
	RegistrarName     string `json:"registrarName"`
	NewbornNationalID string `json:"newbornNationalId"`
}

// Blocks implements Section.
func (b BirthRecord) Blocks() []d.Block {
	parents := d.Table{
		ColumnWidths: []int{2250, 6750},
		Rows: []d.Row{
			{Cells: []d.Cell{d.HeaderCell("Vader:", 2250, d.ShadeFather), d.TextCell(b.FatherFullName, 6750)}},
			{Cells: []d.Cell{d.HeaderCell("Moeder:", 2250, d.ShadeMother), d.TextCell(b.MotherFullName, 6750)}},
		},
	}
	parentIDs := d.Table{
		ColumnWidths: d.WidthsHalves,
		Rows: []d.Row{
			{Cells: []d.Cell{d.HeaderCell("Vader", 4500, d.ShadeFather), d.HeaderCell("Moeder", 4500, d.ShadeMother)}},
			{Cells: []d.Cell{d.CenteredCell(b.FatherNationalID, 4500), d.CenteredCell(b.MotherNationalID, 4500)}},
		},
	}

	return []d.Block{
		d.Title("GEBOORTEAKTE", 32),

		d.Heading("GEGEVENS VAN DE PASGEBORENE"),
		fieldTable(3000, 6000, d.ShadeLightPink,
			d.Field{Label: "Volledige naam van de pasgeborene", Value: b.NewbornFullName},
			d.Field{Label: "Geslacht", Value: b.NewbornGender},
			d.Field{Label: "Voornaam pasgeborene", Value: b.NewbornFirstName},
			d.Field{Label: "Naam vader", Value: b.FatherName},
			d.Field{Label: "Naam grootvader en familienaam", Value: b.GrandfatherAndFamily},
		),

		d.Heading("GEBOORTEDATUM IN LETTERS"),
		d.GridTable(d.WidthsFifths, d.ShadeLightBlue,
			[]string{"Uur", "Dag", "Maand", "Jaar", "Kalender"},
			[]string{b.BirthHourHijri, b.BirthDayHijri, b.BirthMonthHijri, b.BirthYearHijri, "Hijri"},
			[]string{b.BirthHourGregorian, b.BirthDayGregorian, b.BirthMonthGregorian, b.BirthYearGregorian, "Gregoriaans"},
		),

		d.Heading("GEBOORTEPLAATS"),
		d.GridTable(d.WidthsThirds, d.ShadeLightBlue,
			[]string{"Dorp/Stad", "District", "Gouvernement/Land"},
			[]string{b.BirthCity, b.BirthDistrict, b.BirthGovernorate},
		),

		d.Heading("GEGEVENS VAN DE OUDERS"),
		parents,

		d.Label("Nationaal ID-nummer van de ouders:"),
		parentIDs,

		d.Label("Gezinsregistratie bij de Burgerlijke Stand:"),
		d.GridTable(d.WidthsThirds, d.ShadeLightGray,
			[]string{"Naam van de administratie", "Gezinsregistratienummer", "Datum"},
			[]string{"-", "-", "-"},
		),

		d.Text(fmt.Sprintf("De geboortegegevens zijn geregistreerd in het geboorteregister nummer: %s en registratienummer: %s", b.BirthRegNumber, b.BirthRegID), d.Format{Before: 200, After: 100}),
		d.LabelValue("Registratiedatum:", b.BirthRegDate),
		d.Text(fmt.Sprintf("Bij de Burgerlijke Stand: %s District: %s Gouvernement: %s", b.CivilOffice, b.CivilDistrict, b.CivilGovernorate), d.Format{}),
		d.LabelValue("Directeur Burgerlijke Stand:", b.CivilDirector),
		d.LabelValue("Naam van de registrator:", b.RegistrarName),
		d.LabelValue("Handtekening:", signature),
		withSpacing(d.Inline("Nationaal ID-nummer van de pasgeborene:", b.NewbornNationalID), 100, 100),
	}
}

// fieldTable is FieldTable with custom column widths.
func fieldTable(labelWidth, valueWidth int, shade string, fields ...d.Field) d.Table {
	t := d.FieldTable(shade, fields...)
	t.ColumnWidths = []int{labelWidth, valueWidth}
	for i := range t.Rows {
		t.Rows[i].Cells[0].Width = labelWidth
		t.Rows[i].Cells[1].Width = valueWidth
	}
	return t
}

package sections

import (
	"fmt"

	d "github.com/Affiliat0r/Vertaler/internal/document"
)

// MarriageRecord is a notarial marriage contract with both spouses side by side.
type MarriageRecord struct {
	SerialNumber     string `json:"serialNumber"`
	DayHijri         string `json:"dayHijri"`
	MonthHijri       string `json:"monthHijri"`
	YearHijri        string `json:"yearHijri"`
	DateGregorian    string `json:"dateGregorian"`
	Month            string `json:"month"`
	Year             string `json:"year"`
	Notary           string `json:"notary"`
	NotaryID         string `json:"notaryId"`
	NotaryIDPlace    string `json:"notaryIdPlace"`
	NotaryIDDate     string `json:"notaryIdDate"`
	WaliName         string `json:"waliName"`
	WaliFather       string `json:"waliFather"`
	BrideName        string `json:"brideName"`
	BrideFather      string `json:"brideFather"`
	BrideGrandfather string `json:"brideGrandfather"`
	BrideNickname    string `json:"brideNickname"`

	HusbandIDType        string `json:"husbandIdType"`
	HusbandIDNumber      string `json:"husbandIdNumber"`
	HusbandIDPlace       string `json:"husbandIdPlace"`
	HusbandIDDate        string `json:"husbandIdDate"`
	HusbandBirthDate     string `json:"husbandBirthDate"`
	HusbandBirthCity     string `json:"husbandBirthCity"`
	HusbandBirthDistrict string `json:"husbandBirthDistrict"`
	HusbandBirthGov      string `json:"husbandBirthGov"`
	HusbandResidence     string `json:"husbandResidence"`
	HusbandResGov        string `json:"husbandResGov"`
	HusbandNationality   string `json:"husbandNationality"`
	HusbandPrevStatus    string `json:"husbandPrevStatus"`
	HusbandEducation     string `json:"husbandEducation"`
	HusbandProfession    string `json:"husbandProfession"`
	HusbandMother        string `json:"husbandMother"`

	WifeIDType        string `json:"wifeIdType"`
	WifeIDNumber      string `json:"wifeIdNumber"`
	WifeIDPlace       string `json:"wifeIdPlace"`
	WifeIDDate        string `json:"wifeIdDate"`
	WifeBirthDate     string `json:"wifeBirthDate"`
	WifeBirthCity     string `json:"wifeBirthCity"`
	WifeBirthDistrict string `json:"wifeBirthDistrict"`
	WifeBirthGov      string `json:"wifeBirthGov"`
	WifeResidence     string `json:"wifeResidence"`
	WifeResGov        string `json:"wifeResGov"`
	WifeNationality   string `json:"wifeNationality"`
	WifePrevStatus    string `json:"wifePrevStatus"`
	WifeEducation     string `json:"wifeEducation"`
	WifeProfession    string `json:"wifeProfession"`
	WifeMother        string `json:"wifeMother"`

	BrotherName    string `json:"brotherName"`
	BrotherID      string `json:"brotherId"`
	BrotherIDPlace string `json:"brotherIdPlace"`
	BrotherIDDate  string `json:"brotherIdDate"`

	Witness1Name    string `json:"witness1Name"`
	Witness1ID      string `json:"witness1Id"`
	Witness1IDPlace string `json:"witness1IdPlace"`
	Witness1IDDate  string `json:"witness1IdDate"`
	Witness2Name    string `json:"witness2Name"`
	Witness2ID      string `json:"witness2Id"`
	Witness2IDPlace string `json:"witness2IdPlace"`
	Witness2IDDate  string `json:"witness2IdDate"`

	RegistrarName  string `json:"registrarName"`
	RegistrarTitle string `json:"registrarTitle"`
}

const (
	verseSpouses = `Allah de Verhevene zei: "En tot Zijn tekenen behoort dat Hij voor jullie echtgenotes uit jullie eigen soort heeft geschapen, opdat jullie rust bij hen vinden. En Hij heeft tussen jullie liefde en barmhartigheid geplaatst."`
	verseMarry   = `En de Boodschapper van Allah (vrede zij met hem) zei: "Huw en vermeerder, want ik zal trots op jullie zijn tegenover de andere volkeren op de Dag des Oordeels."`
	consentText  = "Na vaststelling van de toestemming van de contractanten die wettelijk als geldig wordt beschouwd, en de afwezigheid van wettelijke belemmeringen voor hen beiden, werd het contract gesloten door de wali van de vrouw die het dichtst bij haar staat volgens de sharia, haar broer."
)

// Blocks implements Section.
func (m MarriageRecord) Blocks() []d.Block {
	blocks := []d.Block{
		d.Centered("REPUBLIEK JEMEN", d.Format{Bold: true, Size: 28}),
		d.Centered("Ministerie van Justitie", d.Format{Bold: true, Size: 24}),
		d.Centered("Algemene Directie voor Notariële Zaken", d.Format{Size: 22}),
		d.Centered("Volgnummer: "+m.SerialNumber, d.Format{Size: 20}),
		d.Title("HUWELIJKSAKTE", 32),
		d.Centered(verseSpouses, d.Format{Italic: true, Size: 20}),
		d.Centered(verseMarry, d.Format{Italic: true, Size: 20, After: 200}),
		d.Text(fmt.Sprintf("Op de dag: %s van de maand: %s %s Hijri, overeenkomend met: %s", m.DayHijri, m.MonthHijri, m.YearHijri, m.DateGregorian), d.Format{}),
		d.Text(fmt.Sprintf("Maand: %s Jaar: %s Gregoriaans, verscheen voor mij: %s", m.Month, m.Year, m.Notary), d.Format{}),
		d.Text(fmt.Sprintf("Houder van identiteitskaart nr.: %s, uitgegeven door: %s op datum: %s Gregoriaans", m.NotaryID, m.NotaryIDPlace, m.NotaryIDDate), d.Format{}),
		d.Text(fmt.Sprintf("De huwelijkscontractant (wali) van de bruid: %s zoon van %s", m.WaliName, m.WaliFather), d.Format{}),
		d.Text(fmt.Sprintf("De zus: %s dochter van %s zoon van %s Bijnaam: %s", m.BrideName, m.BrideFather, m.BrideGrandfather, m.BrideNickname), d.Format{}),
		d.Heading("GEGEVENS VAN DE ECHTGENOTEN"),
		m.spousesTable(),
		d.Text(consentText, d.Format{Before: 200, After: 100}),
		d.Text(fmt.Sprintf("De broer: %s, houder van identiteitskaart nr. (%s), uitgegeven door: %s, op datum: %s", m.BrotherName, m.BrotherID, m.BrotherIDPlace, m.BrotherIDDate), d.Format{}),
		d.Text("Door middel van aanbod en aanvaarding volgens het Boek van Allah de Verhevene en de Sunnah van Zijn Boodschapper (vrede zij met hem), en met overeenstemming over de bruidschat, zijnde: de uitgestelde bruidschat "+Placeholder, d.Format{}),
		d.Text("Contant betaald bij het sluiten van het contract "+Placeholder, d.Format{}),
		d.Text("(En uitgesteld): "+Placeholder+" en de aanvaarding van: "+Placeholder, d.Format{}),
		d.Text("En het contract werd gesloten op de genoemde pagina in aanwezigheid van:", d.Format{}),
		witnessLine("Eerste getuige:", m.Witness1Name, m.Witness1ID, m.Witness1IDPlace, m.Witness1IDDate),
		witnessLine("Tweede getuige:", m.Witness2Name, m.Witness2ID, m.Witness2IDPlace, m.Witness2IDDate),
		d.Centered("Moge Allah dit tot een gezegend en weldadig huwelijk maken...", d.Format{Bold: true, Italic: true, Before: 200, After: 200}),
		d.Text("Vingerafdrukken en handtekeningen:", d.Format{Bold: true, Before: 100, After: 100}),
		fingerprintTable(),
		d.LabelValue("Naam van de documentregistrator:", m.RegistrarName),
		d.LabelValue("Functie:", m.RegistrarTitle),
		d.LabelValue("Handtekening:", signature),
	}
	return blocks
}

func (m MarriageRecord) spousesTable() d.Table {
	identity := func(idType, number, place, date string) []d.Paragraph {
		return []d.Paragraph{
			d.Bold("Identiteitsbewijs:"),
			d.Plain("Type: " + idType),
			d.Plain("Nummer: " + number),
			d.Plain("Afgifteplaats: " + place),
			d.Plain("Afgiftedatum: " + date),
		}
	}
	birthPlace := func(city, district, gov string) []d.Paragraph {
		return []d.Paragraph{
			d.Bold("Geboorteplaats:"),
			d.Plain("Dorp/Stad: " + city),
			d.Plain(fmt.Sprintf("District: %s, Gouvernement: %s", district, gov)),
		}
	}
	residence := func(district, gov string) []d.Paragraph {
		return []d.Paragraph{
			d.Bold("Gebruikelijke verblijfplaats:"),
			d.Plain(fmt.Sprintf("District: %s, Gouvernement: %s", district, gov)),
		}
	}
	one := func(label, value string) []d.Paragraph { return []d.Paragraph{d.Inline(label, value)} }

	husband := [][]d.Paragraph{
		identity(m.HusbandIDType, m.HusbandIDNumber, m.HusbandIDPlace, m.HusbandIDDate),
		one("Geboortedatum:", m.HusbandBirthDate+" - Hijri: / /"),
		birthPlace(m.HusbandBirthCity, m.HusbandBirthDistrict, m.HusbandBirthGov),
		residence(m.HusbandResidence, m.HusbandResGov),
		one("Nationaliteit:", m.HusbandNationality),
		one("Eerdere burgerlijke staat:", m.HusbandPrevStatus),
		one("Opleidingsniveau:", m.HusbandEducation),
		one("Beroep:", m.HusbandProfession),
		one("Naam van de moeder:", m.HusbandMother),
	}
	wife := [][]d.Paragraph{
		identity(m.WifeIDType, m.WifeIDNumber, m.WifeIDPlace, m.WifeIDDate),
		one("Geboortedatum:", m.WifeBirthDate+" - Hijri: / /"),
		birthPlace(m.WifeBirthCity, m.WifeBirthDistrict, m.WifeBirthGov),
		residence(m.WifeResidence, m.WifeResGov),
		one("Nationaliteit:", m.WifeNationality),
		one("Eerdere burgerlijke staat:", m.WifePrevStatus),
		one("Opleidingsniveau:", m.WifeEducation),
		one("Beroep:", m.WifeProfession),
		one("Naam van de moeder:", m.WifeMother),
	}
	return d.PairTable("Echtgenoot", "Echtgenote", d.ShadeHeader, d.ShadeHeader, husband, wife)
}

func witnessLine(label, name, id, place, date string) d.Paragraph {
	p := d.Inline(label, fmt.Sprintf("%s houder van identiteitskaart nr. (%s), uitgegeven door: %s op datum: %s", name, id, place, date))
	p.Spacing = d.Spacing{After: 100}
	return p
}

// fingerprintTable is the blank grid for fingerprints and witness signatures.
func fingerprintTable() d.Table {
	labels := []string{"Vingerafdruk Wali", "Vingerafdruk Echtgenote", "Vingerafdruk Echtgenoot", "Handtekening Getuige 1", "Handtekening Getuige 2"}
	head, blank := d.Row{}, d.Row{}
	for i, l := range labels {
		label := d.Paragraph{Align: d.AlignCenter, Runs: []d.Run{{Text: l, Size: 18}}}
		head.Cells = append(head.Cells, d.Cell{Width: d.WidthsFifths[i], Border: d.BorderLight, Paragraphs: []d.Paragraph{label}})
		blank.Cells = append(blank.Cells, d.Cell{Width: d.WidthsFifths[i], Border: d.BorderLight, Paragraphs: []d.Paragraph{d.Plain(" "), d.Plain(" ")}})
	}
	return d.Table{ColumnWidths: d.WidthsFifths, Rows: []d.Row{head, blank}}
}

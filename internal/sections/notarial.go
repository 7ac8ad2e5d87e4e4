package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// NotarialRecord is a notarial deed between two parties.
type NotarialRecord struct {
	NotaryName         string `json:"notaryName"`
	NotaryOffice       string `json:"notaryOffice"`
	NotaryAddress      string `json:"notaryAddress"`
	DeedType           string `json:"deedType"`
	RepertoireNumber   string `json:"repertoireNumber"`
	DeedDate           string `json:"deedDate"`
	DeedPlace          string `json:"deedPlace"`
	RegistrationNumber string `json:"registrationNumber"`

	Party1Name       string `json:"party1Name"`
	Party1BirthDate  string `json:"party1BirthDate"`
	Party1BirthPlace string `json:"party1BirthPlace"`
	Party1Address    string `json:"party1Address"`
	Party1IDDocument string `json:"party1IdDocument"`
	Party1Capacity   string `json:"party1Capacity"`
	Party2Name       string `json:"party2Name"`
	Party2BirthDate  string `json:"party2BirthDate"`
	Party2BirthPlace string `json:"party2BirthPlace"`
	Party2Address    string `json:"party2Address"`
	Party2IDDocument string `json:"party2IdDocument"`
	Party2Capacity   string `json:"party2Capacity"`

	DeedSubject     string `json:"deedSubject"`
	DeedContent     string `json:"deedContent"`
	FinancialAmount string `json:"financialAmount,omitempty"`
	PaymentMethod   string `json:"paymentMethod"`
	Witness1Name    string `json:"witness1Name"`
	Witness2Name    string `json:"witness2Name"`
}

// Blocks implements Section.
func (n NotarialRecord) Blocks() []d.Block {
	party := func(shade, name, birthDate, birthPlace, address, idDoc, capacity string) d.Table {
		return d.FieldTable(shade,
			d.Field{Label: "Naam", Value: name},
			d.Field{Label: "Geboortedatum", Value: birthDate},
			d.Field{Label: "Geboorteplaats", Value: birthPlace},
			d.Field{Label: "Adres", Value: address},
			d.Field{Label: "Identiteitsbewijs", Value: idDoc},
			d.Field{Label: "Hoedanigheid", Value: capacity},
		)
	}

	blocks := []d.Block{
		d.Title("NOTARIËLE AKTE", 32),
		d.Centered(n.NotaryName, d.Format{Bold: true, Size: 24, Before: 200, After: 100}),
		d.Centered(n.NotaryOffice, d.Format{Size: 22}),
		d.Centered(n.NotaryAddress, d.Format{Size: 20, After: 200}),
		d.Centered("Type akte: "+n.DeedType, d.Format{Bold: true, Size: 22, After: 200}),

		d.Heading("AKTEGEGEVENS"),
		d.FieldTable(d.ShadeLightYellow,
			d.Field{Label: "Repertoriumnummer", Value: n.RepertoireNumber},
			d.Field{Label: "Datum van de akte", Value: n.DeedDate},
			d.Field{Label: "Plaats van verlijden", Value: n.DeedPlace},
			d.Field{Label: "Registratienummer", Value: n.RegistrationNumber},
		),

		d.Heading("COMPARANTEN / PARTIJEN"),
		d.Text("Partij 1:", d.Format{Bold: true, Before: 100, After: 100}),
		party(d.ShadeLightBlue, n.Party1Name, n.Party1BirthDate, n.Party1BirthPlace, n.Party1Address, n.Party1IDDocument, n.Party1Capacity),
		d.Label("Partij 2:"),
		party(d.ShadeLightGreen, n.Party2Name, n.Party2BirthDate, n.Party2BirthPlace, n.Party2Address, n.Party2IDDocument, n.Party2Capacity),

		d.Label("Onderwerp van de akte:"),
		d.Text(n.DeedSubject, d.Format{}),
		d.Label("Inhoud / Bepalingen:"),
		d.Text(n.DeedContent, d.Format{}),
	}
	if n.FinancialAmount != "" {
		blocks = append(blocks,
			d.Label("Financiële gegevens:"),
			d.LabelValue("Bedrag:", n.FinancialAmount),
			d.LabelValue("Betalingswijze:", n.PaymentMethod),
		)
	}
	return append(blocks,
		d.Label("Getuigen:"),
		d.LabelValue("Getuige 1:", n.Witness1Name),
		d.LabelValue("Getuige 2:", n.Witness2Name),
		d.Label("Ondertekening:"),
		d.Text("Deze akte is voorgelezen aan de comparanten, die verklaren de inhoud te begrijpen en hiermee akkoord te gaan.", d.Format{}),
		d.LabelValue("Handtekening Partij 1:", signature),
		d.LabelValue("Handtekening Partij 2:", signature),
		d.LabelValue("Handtekening Notaris:", signature),
		d.LabelValue("Notarieel zegel:", "[Notarieel zegel]"),
	)
}

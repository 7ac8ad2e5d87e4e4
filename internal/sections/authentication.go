package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// AuthenticationRecord covers the legalization stamps of the courts and
// ministries that certified the document.
type AuthenticationRecord struct {
	CourtName            string `json:"courtName"`
	CourtAmount          string `json:"courtAmount"`
	CourtDate            string `json:"courtDate"`
	ContractNumber       string `json:"contractNumber"`
	JusticeNumber        string `json:"justiceNumber"`
	JusticeDate          string `json:"justiceDate"`
	JusticeGregorianDate string `json:"justiceGregorianDate"`
	ForeignAffairsNumber string `json:"foreignAffairsNumber"`
	ForeignAffairsDate   string `json:"foreignAffairsDate"`
	NotaryNumber         string `json:"notaryNumber"`
	NotaryExecDate       string `json:"notaryExecDate"`
	NotaryPageNumber     string `json:"notaryPageNumber"`
	NotaryCost           string `json:"notaryCost"`
}

// Blocks implements Section.
func (a AuthenticationRecord) Blocks() []d.Block {
	return []d.Block{
		d.Title("LEGALISATIE- EN AUTHENTIFICATIEPAGINA", 28),

		d.Text("REPUBLIEK JEMEN", d.Format{Bold: true, Before: 100, After: 100}),
		d.Text("Ministerie van Buitenlandse Zaken", d.Format{Bold: true}),
		d.Text("Afdeling Consulaire Zaken", d.Format{After: 200}),
		d.Text("Legalisatie:", d.Format{Bold: true, Before: 100, After: 100}),
		d.Text("De Consulaire Afdeling authenticeert de handtekening en het zegel.", d.Format{}),
		d.Text("Niet verantwoordelijk voor de inhoud van het document.", d.Format{Italic: true, After: 200}),

		d.Label("Rechtbank van Eerste Aanleg - Al-Mansoura"),
		d.LabelValue("Naam:", a.CourtName),
		d.LabelValue("Bedrag:", a.CourtAmount),
		d.LabelValue("Datum:", a.CourtDate),
		d.LabelValue("Contractnummer:", a.ContractNumber),
		d.LabelValue("Handtekening:", signature),

		d.Label("REPUBLIEK JEMEN"),
		d.Text("Ministerie van Justitie", d.Format{Bold: true}),
		d.Text("Algemene Directie voor Notariële Zaken", d.Format{}),
		d.Text("Afdeling Legalisatie", d.Format{}),
		d.LabelValue("Nummer:", a.JusticeNumber),
		d.LabelValue("Datum:", a.JusticeDate),
		d.LabelValue("Overeenkomend met:", a.JusticeGregorianDate),
		d.Text("Het Ministerie van Justitie authenticeert het zegel en de handtekening van de notaris/rechtbank: "+Placeholder+" en de verplichting jegens hen met betrekking tot wat is vastgelegd.", d.Format{After: 200}),

		d.Label("Stempel Ministerie van Buitenlandse Zaken:"),
		d.Text("Ministerie van Buitenlandse Zaken", d.Format{}),
		d.Text("En Expats", d.Format{}),
		d.Text("Consulaire Afdeling Authenticeert", d.Format{}),
		d.Text("De handtekening en het zegel", d.Format{}),
		d.Text("Niet verantwoordelijk voor de inhoud van het document.", d.Format{Italic: true}),
		d.LabelValue("Nr.:", a.ForeignAffairsNumber),
		d.LabelValue("Datum:", a.ForeignAffairsDate),
		d.LabelValue("Handtekening:", signature),

		d.Label("Notariële Informatie:"),
		d.LabelValue("Nummer:", a.NotaryNumber),
		d.LabelValue("Datum van uitvoering:", a.NotaryExecDate),
		d.LabelValue("Paginanummer:", a.NotaryPageNumber),
		d.LabelValue("Kosten:", a.NotaryCost),
	}
}

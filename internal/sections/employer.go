package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// EmployerRecord is an employer statement or work certificate.
type EmployerRecord struct {
	CompanyName         string `json:"companyName"`
	CompanyAddress      string `json:"companyAddress"`
	ChamberOfCommerce   string `json:"chamberOfCommerce"`
	StatementType       string `json:"statementType"`
	EmployeeName        string `json:"employeeName"`
	EmployeeBirthDate   string `json:"employeeBirthDate"`
	EmployeeAddress     string `json:"employeeAddress"`
	EmployeeNationality string `json:"employeeNationality"`
	EmployeeIDNumber    string `json:"employeeIdNumber"`
	JobTitle            string `json:"jobTitle"`
	Department          string `json:"department"`
	ContractType        string `json:"contractType"`
	StartDate           string `json:"startDate"`
	EndDate             string `json:"endDate"`
	HoursPerWeek        string `json:"hoursPerWeek"`
	GrossSalary         string `json:"grossSalary"`
	VacationDays        string `json:"vacationDays"`
	AdditionalStatement string `json:"additionalStatement,omitempty"`
	Purpose             string `json:"purpose"`
	SignatoryName       string `json:"signatoryName"`
	SignatoryTitle      string `json:"signatoryTitle"`
	IssueDate           string `json:"issueDate"`
}

// Blocks implements Section.
func (e EmployerRecord) Blocks() []d.Block {
	blocks := []d.Block{
		d.Title("WERKGEVERSVERKLARING", 32),
		d.Centered(e.CompanyName, d.Format{Bold: true, Size: 28, Before: 200, After: 100}),
		d.Centered(e.CompanyAddress, d.Format{Size: 20}),
		d.Centered("KvK: "+e.ChamberOfCommerce, d.Format{Size: 20, After: 200}),
		d.Centered("Type: "+e.StatementType, d.Format{Bold: true, Size: 22, After: 200}),

		d.Heading("GEGEVENS WERKNEMER"),
		d.FieldTable(d.ShadeLightBlue,
			d.Field{Label: "Volledige naam", Value: e.EmployeeName},
			d.Field{Label: "Geboortedatum", Value: e.EmployeeBirthDate},
			d.Field{Label: "Adres", Value: e.EmployeeAddress},
			d.Field{Label: "Nationaliteit", Value: e.EmployeeNationality},
			d.Field{Label: "BSN / ID-nummer", Value: e.EmployeeIDNumber},
		),

		d.Heading("ARBEIDSGEGEVENS"),
		d.FieldTable(d.ShadeLightGreen,
			d.Field{Label: "Functie", Value: e.JobTitle},
			d.Field{Label: "Afdeling", Value: e.Department},
			d.Field{Label: "Type contract", Value: e.ContractType},
			d.Field{Label: "Datum indiensttreding", Value: e.StartDate},
			d.Field{Label: "Datum uitdiensttreding", Value: e.EndDate},
			d.Field{Label: "Werkuren per week", Value: e.HoursPerWeek},
			d.Field{Label: "Bruto maandsalaris", Value: e.GrossSalary},
			d.Field{Label: "Vakantiedagen per jaar", Value: e.VacationDays},
		),
	}
	if e.AdditionalStatement != "" {
		blocks = append(blocks,
			d.Label("Aanvullende verklaring:"),
			d.Text(e.AdditionalStatement, d.Format{}),
		)
	}
	return append(blocks,
		d.LabelValue("Doel van de verklaring:", e.Purpose),
		d.Label("Ondertekening:"),
		d.LabelValue("Naam:", e.SignatoryName),
		d.LabelValue("Functie:", e.SignatoryTitle),
		d.LabelValue("Datum:", e.IssueDate),
		d.LabelValue("Handtekening:", signature),
		d.LabelValue("Bedrijfsstempel:", "[Bedrijfsstempel]"),
	)
}

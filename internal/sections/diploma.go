package sections

import d "github.com/Affiliat0r/Vertaler/internal/document"

// DiplomaRecord is a diploma or degree certificate.
type DiplomaRecord struct {
	InstitutionName    string `json:"institutionName"`
	InstitutionAddress string `json:"institutionAddress"`
	HolderFullName     string `json:"holderFullName"`
	HolderBirthDate    string `json:"holderBirthDate"`
	HolderBirthPlace   string `json:"holderBirthPlace"`
	DiplomaType        string `json:"diplomaType"`
	FieldOfStudy       string `json:"fieldOfStudy"`
	Specialization     string `json:"specialization"`
	DegreeAwarded      string `json:"degreeAwarded"`
	Classification     string `json:"classification"`
	IssueDate          string `json:"issueDate"`
	DiplomaSerial      string `json:"diplomaSerial"`
	RegistrationNumber string `json:"registrationNumber"`
	StudyStartDate     string `json:"studyStartDate"`
	StudyEndDate       string `json:"studyEndDate"`
	RectorName         string `json:"rectorName"`
	DeanName           string `json:"deanName"`
}

// Blocks implements Section.
func (r DiplomaRecord) Blocks() []d.Block {
	return []d.Block{
		d.Title("DIPLOMA / GETUIGSCHRIFT", 32),
		d.Centered(r.InstitutionName, d.Format{Bold: true, Size: 28, Before: 200, After: 100}),
		d.Centered(r.InstitutionAddress, d.Format{Size: 20, After: 200}),
		d.FieldTable(d.ShadeLightBlue,
			d.Field{Label: "Volledige naam", Value: r.HolderFullName},
			d.Field{Label: "Geboortedatum", Value: r.HolderBirthDate},
			d.Field{Label: "Geboorteplaats", Value: r.HolderBirthPlace},
			d.Field{Label: "Diplomatype", Value: r.DiplomaType},
			d.Field{Label: "Studierichting", Value: r.FieldOfStudy},
			d.Field{Label: "Specialisatie", Value: r.Specialization},
			d.Field{Label: "Behaalde graad", Value: r.DegreeAwarded},
			d.Field{Label: "Classificatie/Cijfer", Value: r.Classification},
			d.Field{Label: "Datum van afgifte", Value: r.IssueDate},
			d.Field{Label: "Diplomaserie", Value: r.DiplomaSerial},
			d.Field{Label: "Registratienummer", Value: r.RegistrationNumber},
		),
		d.Label("Studieperiode:"),
		d.LabelValue("Van:", r.StudyStartDate),
		d.LabelValue("Tot:", r.StudyEndDate),
		d.Label("Ondertekening:"),
		d.LabelValue("Rector/Directeur:", r.RectorName),
		d.LabelValue("Decaan/Afdelingshoofd:", r.DeanName),
		d.LabelValue("Handtekening:", signature),
		d.LabelValue("Stempel:", "[Officieel stempel]"),
	}
}

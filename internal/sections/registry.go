package sections

import "github.com/Affiliat0r/Vertaler/internal/document"

// Generator lays out one section's fields as document blocks. It never fails:
// missing fields fall back to Placeholder.
type Generator func(Fields) []document.Block

// Section is implemented by every typed section record.
type Section interface {
	Blocks() []document.Block
}

// Descriptor describes one recognized document type.
type Descriptor struct {
	Key Key
	// Name is the human-readable document type, used in extraction prompts.
	Name string
	// Fields lists the field names the generator reads.
	Fields   []string
	Generate Generator
}

// Order is the fixed canonical order sections appear in an assembled
// document: certificates, then registrations, then attestations.
var Order = []Key{
	MarriageCertificate,
	Authentication,
	CivilRegistration,
	BirthCertificate,
	Diploma,
	Certificate,
	DrivingLicense,
	ConsularDocument,
	FamilyRecordBook,
	EmployerStatement,
	BrpExtract,
	CourtDocument,
	NotarialDeed,
}

var registry = map[Key]Descriptor{}

func init() {
	register[MarriageRecord](MarriageCertificate, "Marriage Certificate (Huwelijksakte)")
	register[AuthenticationRecord](Authentication, "Authentication/Legalization pages with stamps")
	register[CivilRegistrationRecord](CivilRegistration, "Civil Registration (Burgerlijke Stand)")
	register[BirthRecord](BirthCertificate, "Birth Certificate (Geboorteakte)")
	register[DiplomaRecord](Diploma, "Diploma / Degree Certificate")
	register[CertificateRecord](Certificate, "General Certificate / Attestation (Verklaring)")
	register[DrivingLicenseRecord](DrivingLicense, "Driving License (Rijbewijs)")
	register[ConsularRecord](ConsularDocument, "Consular Document (Consulair Document)")
	register[FamilyBookRecord](FamilyRecordBook, "Family Record Book (Familieboekje)")
	register[EmployerRecord](EmployerStatement, "Employer Statement (Werkgeversverklaring)")
	register[BrpRecord](BrpExtract, "BRP Extract / Population Register (Uittreksel Bevolkingsregister)")
	register[CourtRecord](CourtDocument, "Court Document (Gerechtelijk Document)")
	register[NotarialRecord](NotarialDeed, "Notarial Deed (Notariële Akte)")
}

func register[T Section](key Key, name string) {
	registry[key] = Descriptor{
		Key:    key,
		Name:   name,
		Fields: fieldNames[T](),
		Generate: func(f Fields) []document.Block {
			return bind[T](f).Blocks()
		},
	}
}

// Lookup returns the descriptor for key.
func Lookup(key Key) (Descriptor, bool) {
	d, ok := registry[key]
	return d, ok
}

// Descriptors returns every descriptor in canonical order.
func Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(Order))
	for _, k := range Order {
		out = append(out, registry[k])
	}
	return out
}

// Known reports whether key is one of the recognized document types.
func Known(key Key) bool {
	_, ok := registry[key]
	return ok
}

package registration

// Person is a lecturer attached to a module event
type Person struct {
	Vorname  string `json:"vorname"`
	Nachname string `json:"nachname"`
}

// Anlassleitung wraps a lecturer entry as nested by the upstream API
type Anlassleitung struct {
	Leitungsperson Person `json:"leitungsperson"`
}

// Modulanlass describes the course event a registration belongs to
type Modulanlass struct {
	Nummer          string          `json:"nummer"`          // e.g. "oipvz.HS25.HN" or "mgli.FS26.SP/1"
	Bezeichnung     string          `json:"bezeichnung"`     // Display name, may carry semester tags
	DatumVon        string          `json:"datumVon"`        // Module start, "2006-01-02" format
	DatumBis        string          `json:"datumBis"`        // Module end
	AnzahlAnmeldung int             `json:"anzahlAnmeldung"` // Current enrollment count
	MaxTeilnehmende int             `json:"maxTeilnehmende"` // Enrollment cap
	Anlassleitungen []Anlassleitung `json:"anlassleitungen"`
}

// Registration is one course-component enrollment of a student.
// FreieNote stays nil until a result is published; once set it is always
// a numeric grade on the Swiss 1.0-6.0 scale.
type Registration struct {
	AnmeldungsID int          `json:"anmeldungsId"`
	Modulanlass  Modulanlass  `json:"modulanlass"`
	FreieNote    *float64     `json:"freieNote"`
	NoteID       *int         `json:"noteId"`
	Bestanden    *bool        `json:"bestanden"`
	Hochschule   string       `json:"hochschule"`
	StatusName   string       `json:"statusName"`

	// Type may be attached by the caller before grouping to override the
	// derived classification (e.g. a custom weight or ECTS value). Grouping
	// fills it in when nil and never clobbers an existing value.
	Type *ModuleType `json:"-"`
}

// Kind is the closed classification of a registration within its module
type Kind string

const (
	// KindMain is the official consolidated module grade
	KindMain Kind = "MAIN"
	// KindMSP is an oral exam component
	KindMSP Kind = "MSP"
	// KindEN is an individual/continuous-assessment component
	KindEN Kind = "EN"
)

// ModuleType carries the derived classification plus its weighting
type ModuleType struct {
	Kind   Kind
	Weight float64 // Percent share within the module grade
	ECTS   int     // Credits; only MAIN components carry credit
}

// ModuleGroup is a set of registrations sharing a normalized base name,
// with one resolved ECTS value and one resolved final grade.
type ModuleGroup struct {
	Name          string // Cleaned display name
	BaseName      string // Normalized grouping key derived from the number
	Registrations []Registration
	ECTS          int
	FinalGrade    *float64 // nil while the module is still in progress
}

// Stats summarizes a student's grouped registrations
type Stats struct {
	ModuleCount     int
	GradedCount     int      // Graded components across all groups
	RawAverage      *float64 // Simple mean over all graded components, unweighted
	WeightedAverage *float64 // ECTS-weighted mean over resolved groups
	PassRate        *float64 // Share of graded components at or above 4.0
}

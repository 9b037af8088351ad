package domain

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Issue is a single finding reported by a check.
type Issue struct {
	Severity   string `json:"severity"`
	Location   string `json:"location,omitempty"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Result is the validation verdict for a tool definition file.
type Result struct {
	RunID    string  `json:"run_id,omitempty"`
	File     string  `json:"file,omitempty"`
	Strategy string  `json:"strategy,omitempty"`
	IsValid  bool    `json:"isValid"`
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
	Info     []Issue `json:"info"`
	Summary  string  `json:"summary"`
}

// NewResult returns a passing result with empty issue lists.
func NewResult() *Result {
	return &Result{
		IsValid:  true,
		Errors:   []Issue{},
		Warnings: []Issue{},
		Info:     []Issue{},
	}
}

// AddError appends an error and marks the result invalid.
func (r *Result) AddError(location, message, suggestion string) {
	r.IsValid = false
	r.Errors = append(r.Errors, Issue{
		Severity:   SeverityError,
		Location:   location,
		Message:    message,
		Suggestion: suggestion,
	})
}

func (r *Result) AddWarning(location, message, suggestion string) {
	r.Warnings = append(r.Warnings, Issue{
		Severity:   SeverityWarning,
		Location:   location,
		Message:    message,
		Suggestion: suggestion,
	})
}

func (r *Result) AddInfo(message string) {
	r.Info = append(r.Info, Issue{Severity: SeverityInfo, Message: message})
}

// Normalize makes the severities match the list each issue sits in and
// forces IsValid to false when any error is present.
func (r *Result) Normalize() {
	if r.Errors == nil {
		r.Errors = []Issue{}
	}
	if r.Warnings == nil {
		r.Warnings = []Issue{}
	}
	if r.Info == nil {
		r.Info = []Issue{}
	}
	for i := range r.Errors {
		r.Errors[i].Severity = SeverityError
	}
	for i := range r.Warnings {
		r.Warnings[i].Severity = SeverityWarning
	}
	for i := range r.Info {
		r.Info[i].Severity = SeverityInfo
	}
	if len(r.Errors) > 0 {
		r.IsValid = false
	}
}

// SchemaReport is the outcome of checking a JSON Schema document.
type SchemaReport struct {
	RunID     string  `json:"run_id,omitempty"`
	File      string  `json:"file"`
	SchemaURI string  `json:"schema_uri,omitempty"`
	Draft     Draft   `json:"draft"`
	Title     string  `json:"title,omitempty"`
	Valid     bool    `json:"valid"`
	Errors    []Issue `json:"errors,omitempty"`

	// Preview holds the first top-level keys of the document, used to show
	// how the document should start when $schema is missing.
	Preview    []PreviewField `json:"-"`
	MoreFields bool           `json:"-"`
}

// MissingSchemaURI reports whether the document had no $schema keyword.
func (r *SchemaReport) MissingSchemaURI() bool { return r.SchemaURI == "" }

// PreviewField is one top-level key of a schema document with a short
// rendering of its value.
type PreviewField struct {
	Key   string
	Value string
}

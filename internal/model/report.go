package model

// ScanState is the phase of a missing-key scan.
type ScanState int

const (
	// StatePending means no file has been scanned yet.
	StatePending ScanState = iota
	// StateScanning means source files are being parsed.
	StateScanning
	// StateAggregating means reported keys are checked against the catalog.
	StateAggregating
	// StateDone means the missing-key set is final.
	StateDone
)

func (s ScanState) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateScanning:
		return "scanning"
	case StateAggregating:
		return "aggregating"
	case StateDone:
		return "done"
	default:
		return "unknown"
	}
}

// Warning is emitted for every call site whose key could not be resolved.
type Warning struct {
	Location Location
	Target   string
	Reason   RejectReason
	Source   string
}

// KeyReference records where a literal key is used.
type KeyReference struct {
	Key      string
	Location Location
}

// FileResult is what a single source file contributes to a scan.
type FileResult struct {
	Source     SourceFile
	CallSites  int
	Keys       *KeySet
	References []KeyReference
	Warnings   []Warning
}

// ScanResult is the outcome of a full scan.
type ScanResult struct {
	Locale    string
	Files     []FileResult
	Reported  *KeySet
	Missing   *KeySet
	Warnings  []Warning
	CallSites int
}

// References groups key references by key.
func (r ScanResult) References() map[string][]Location {
	refs := make(map[string][]Location)

	for _, file := range r.Files {
		for _, ref := range file.References {
			refs[ref.Key] = append(refs[ref.Key], ref.Location)
		}
	}

	return refs
}

// Report is the persisted form of a scan result.
type Report struct {
	ID         string          `yaml:"id"`
	CreatedAt  string          `yaml:"created_at"`
	Locale     string          `yaml:"locale"`
	BaseLocale string          `yaml:"base_locale"`
	Files      int             `yaml:"files"`
	CallSites  int             `yaml:"call_sites"`
	Reported   []string        `yaml:"reported"`
	Missing    []string        `yaml:"missing"`
	Warnings   []ReportWarning `yaml:"warnings,omitempty"`
}

// ReportWarning is the persisted form of a Warning.
type ReportWarning struct {
	Location string `yaml:"location"`
	Reason   string `yaml:"reason"`
	Source   string `yaml:"source"`
}

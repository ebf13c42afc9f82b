package config

// Application constants - all hardcoded values for the checkna pipeline
const (
	// Application Info
	AppName    = "checkna"
	AppVersion = "1.0.0"

	// Masking rule: a reference value strictly inside (MaskLowerBound,
	// MaskUpperBound) marks the row's kec for the sentinel overwrite.
	MaskLowerBound = 0
	MaskUpperBound = 3

	// Column names every input sheet is expected to carry
	KabColumn   = "kab"
	KecColumn   = "kec"
	IDKabColumn = "id_kab"

	// Reference columns of the form n_rtup_ternak_usaha_<animal> drive the
	// masking rule; the animal token starts after this prefix.
	FamilyColumnPrefix = "n_rtup_ternak_usaha_"

	// Sheet naming
	KecSheetSuffix    = "_kec"
	AcuanSheetName    = "acuan"
	RiilSheetName     = "riil"
	TemplateSheetName = "template"

	// Output artifact naming
	OutputFilePrefix = "PROCESSED_"
	ExcelExtension   = ".xlsx"

	// Interactive defaults (mirror the published worked example)
	DefaultKabCode      = 7205
	DefaultRefTable     = "6_06"
	DefaultDerivedTable = "6_30"

	// File Paths (relative to executable)
	DefaultDataDir   = "data"
	DefaultOutputDir = "output"
	DefaultLogsDir   = "logs"
)

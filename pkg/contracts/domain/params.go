package domain

// RunParams carries the validated parameters of a single processing run.
// Interactive or flag-based collection happens in the CLI; by the time the
// pipeline sees these they are expected to have passed validation.
type RunParams struct {
	KabCode      int      `json:"kab_code" validate:"required,gt=0"`
	RefTable     string   `json:"ref_table" validate:"required,tableid"`
	DerivedTable string   `json:"derived_table" validate:"required,tableid"`
	Keywords     []string `json:"keywords" validate:"dive,lowercase"`
}

// Keyword presets offered by the interactive menu
var (
	KeywordsRerata   = []string{"rerata"}
	KeywordsPopulasi = []string{"populasi"}
)

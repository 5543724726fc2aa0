package model

// SoilAnalysisNewID marks an analysis composed in the UI but not saved yet.
const SoilAnalysisNewID = "new"

// SoilAnalysis is one dated laboratory report (laudo) for a field. Identity
// is stable once saved; every other attribute may be replaced in place.
type SoilAnalysis struct {
	ID           string `json:"id,omitempty"`
	AnalysisDate string `json:"analysisDate"`
	Lab          string `json:"lab,omitempty"`
	SampleID     string `json:"sampleId,omitempty"`

	PH               float64 `json:"pH"`
	OrganicMatterPct float64 `json:"organicMatterPct"`
	ClayPct          float64 `json:"clayPct"`
	SandPct          *float64 `json:"sandPct,omitempty"`
	SiltPct          *float64 `json:"siltPct,omitempty"`

	BaseSaturationPct     float64  `json:"baseSaturationPct"`
	AluminumSaturationPct *float64 `json:"aluminumSaturationPct,omitempty"`
	CEC                   *float64 `json:"cec,omitempty"`

	Phosphorus       *float64 `json:"phosphorus,omitempty"`
	Potassium        *float64 `json:"potassium,omitempty"`
	Calcium          *float64 `json:"calcium,omitempty"`
	Magnesium        *float64 `json:"magnesium,omitempty"`
	Sulfur           *float64 `json:"sulfur,omitempty"`
	Aluminum         *float64 `json:"aluminum,omitempty"`
	PotentialAcidity *float64 `json:"potentialAcidity,omitempty"`

	Boron     *float64 `json:"boron,omitempty"`
	Copper    *float64 `json:"copper,omitempty"`
	Iron      *float64 `json:"iron,omitempty"`
	Manganese *float64 `json:"manganese,omitempty"`
	Zinc      *float64 `json:"zinc,omitempty"`

	Notes string `json:"notes,omitempty"`
}

package model

import (
	"encoding/json"

	"github.com/google/uuid"
)

type CycleStatus string

const (
	CycleStatusPlanting   CycleStatus = "Planting"
	CycleStatusDeveloping CycleStatus = "Developing"
	CycleStatusMaturing   CycleStatus = "Maturing"
	CycleStatusHarvesting CycleStatus = "Harvesting"
	CycleStatusHarvested  CycleStatus = "Harvested"
	CycleStatusAwaiting   CycleStatus = "Awaiting"
)

type Property struct {
	Name       string  `json:"name"`
	Owner      string  `json:"owner"`
	City       string  `json:"city"`
	State      string  `json:"state"`
	PostalCode string  `json:"postalCode"`
	TotalArea  float64 `json:"totalAreaHectares"`
	Fields     []Field `json:"fields"`
}

// Field is a talhão: one cultivated subdivision of the property. Soil holds
// the latest analysis for consumers that still read a single snapshot; the
// authoritative record is SoilHistory.
type Field struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Area          float64        `json:"areaHectares"`
	Crop          string         `json:"crop"`
	CycleStatus   CycleStatus    `json:"cycleStatus,omitempty"`
	CycleProgress float64        `json:"cycleProgressPercent"`
	Yield         float64        `json:"yieldPerHectare"`
	Soil          *SoilAnalysis  `json:"soil,omitempty"`
	SoilHistory   []SoilAnalysis `json:"soilHistory"`
}

type fieldAlias Field

type fieldDocument struct {
	fieldAlias
	SoilHistory *[]SoilAnalysis `json:"soilHistory"`
}

// UnmarshalJSON upgrades documents written before soil history existed: a
// field carrying only the singular soil snapshot becomes a one-entry history
// with a generated analysis id.
func (f *Field) UnmarshalJSON(data []byte) error {
	var doc fieldDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	out := Field(doc.fieldAlias)
	switch {
	case doc.SoilHistory != nil:
		out.SoilHistory = *doc.SoilHistory
	case out.Soil != nil:
		migrated := *out.Soil
		if migrated.ID == "" {
			migrated.ID = uuid.NewString()
		}
		out.SoilHistory = []SoilAnalysis{migrated}
	default:
		out.SoilHistory = []SoilAnalysis{}
	}

	*f = out
	return nil
}

// RefreshSoilSnapshot points Soil at the history entry with the most recent
// analysis date. Ties go to the entry later in the array.
func (f *Field) RefreshSoilSnapshot() {
	if len(f.SoilHistory) == 0 {
		f.Soil = nil
		return
	}
	latest := 0
	for i := 1; i < len(f.SoilHistory); i++ {
		if NormalizeDate(f.SoilHistory[i].AnalysisDate) >= NormalizeDate(f.SoilHistory[latest].AnalysisDate) {
			latest = i
		}
	}
	f.Soil = &f.SoilHistory[latest]
}

package model

import (
	"encoding/json"
	"testing"
)

func TestFieldDecodeMigratesLegacySoil(t *testing.T) {
	raw := `{
		"id": "f1",
		"name": "Talhão 1",
		"areaHectares": 120,
		"crop": "Soja",
		"soil": {"analysisDate": "10/09/2022", "pH": 5.8, "organicMatterPct": 3.1, "clayPct": 42, "baseSaturationPct": 58}
	}`

	var field Field
	if err := json.Unmarshal([]byte(raw), &field); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(field.SoilHistory) != 1 {
		t.Fatalf("soil history length = %d, want 1", len(field.SoilHistory))
	}
	if field.SoilHistory[0].ID == "" {
		t.Fatalf("migrated analysis got no id")
	}
	if field.SoilHistory[0].PH != 5.8 {
		t.Fatalf("pH = %v", field.SoilHistory[0].PH)
	}
}

func TestFieldDecodeKeepsExplicitHistory(t *testing.T) {
	raw := `{
		"id": "f1",
		"name": "Talhão 1",
		"soil": {"id": "snap", "analysisDate": "2022-01-01", "pH": 5.0, "organicMatterPct": 2, "clayPct": 30, "baseSaturationPct": 50},
		"soilHistory": [
			{"id": "a", "analysisDate": "2022-01-01", "pH": 5.0, "organicMatterPct": 2, "clayPct": 30, "baseSaturationPct": 50},
			{"id": "b", "analysisDate": "2023-01-01", "pH": 5.5, "organicMatterPct": 2.5, "clayPct": 32, "baseSaturationPct": 55}
		]
	}`

	var field Field
	if err := json.Unmarshal([]byte(raw), &field); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(field.SoilHistory) != 2 {
		t.Fatalf("soil history length = %d, want 2", len(field.SoilHistory))
	}
}

func TestFieldDecodeWithoutSoil(t *testing.T) {
	var field Field
	if err := json.Unmarshal([]byte(`{"id":"f1","name":"x"}`), &field); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if field.SoilHistory == nil || len(field.SoilHistory) != 0 {
		t.Fatalf("soil history = %#v, want empty slice", field.SoilHistory)
	}
}

func TestRefreshSoilSnapshotPicksLatest(t *testing.T) {
	field := Field{
		SoilHistory: []SoilAnalysis{
			{ID: "old", AnalysisDate: "2022-09-10"},
			{ID: "new", AnalysisDate: "2023-09-15"},
			{ID: "mid", AnalysisDate: "2023-01-01"},
		},
	}
	field.RefreshSoilSnapshot()
	if field.Soil == nil || field.Soil.ID != "new" {
		t.Fatalf("snapshot = %+v, want id new", field.Soil)
	}
}

func TestRefreshSoilSnapshotTieGoesToLaterEntry(t *testing.T) {
	field := Field{
		SoilHistory: []SoilAnalysis{
			{ID: "first", AnalysisDate: "2023-09-15"},
			{ID: "second", AnalysisDate: "15/09/2023"},
		},
	}
	field.RefreshSoilSnapshot()
	if field.Soil.ID != "second" {
		t.Fatalf("snapshot id = %q, want second", field.Soil.ID)
	}
}

func TestRefreshSoilSnapshotEmptyHistory(t *testing.T) {
	field := Field{Soil: &SoilAnalysis{ID: "stale"}}
	field.RefreshSoilSnapshot()
	if field.Soil != nil {
		t.Fatalf("snapshot should be cleared, got %+v", field.Soil)
	}
}

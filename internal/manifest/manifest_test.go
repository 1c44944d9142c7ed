package manifest

import (
	"testing"
)

func TestRunSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	r := NewRun("data/stroke.csv")
	if r.ID == "" {
		t.Fatalf("run ID is empty")
	}
	r.LoadedRows = 5110
	r.CleanRows = 5109
	r.TotalPatients = 5109
	r.StrokeCases = 249
	r.NoStrokeCases = 4860
	r.StrokeRate = 4.87
	r.AddArtifact("table", "tables/stroke_data.csv")
	r.AddArtifact("chart", "charts/01_stroke_distribution.png")

	if err := r.Save(dir); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadRun(dir)
	if err != nil {
		t.Fatalf("LoadRun: %v", err)
	}
	if loaded.ID != r.ID || loaded.Input != r.Input {
		t.Fatalf("loaded = %#v, want %#v", loaded, r)
	}
	if loaded.LoadedRows != 5110 || loaded.CleanRows != 5109 || loaded.StrokeRate != 4.87 {
		t.Fatalf("loaded counts = %#v", loaded)
	}
	if len(loaded.Artifacts) != 2 || loaded.Artifacts[0].Kind != "table" || loaded.Artifacts[1].Path != "charts/01_stroke_distribution.png" {
		t.Fatalf("artifacts = %#v", loaded.Artifacts)
	}
}

func TestRunSaveRequiresDir(t *testing.T) {
	if err := NewRun("x.csv").Save(""); err == nil {
		t.Fatalf("expected error for empty dir")
	}
}

func TestRunIDsAreUnique(t *testing.T) {
	if NewRun("a.csv").ID == NewRun("a.csv").ID {
		t.Fatalf("two runs share an ID")
	}
}

package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// execCmd is a helper to execute the root command with args.
func execCmd(t *testing.T, args ...string) {
	t.Helper()
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("command %v failed: %v", args, err)
	}
}

func writeDataset(t *testing.T, dir string) string {
	t.Helper()
	rows := []string{
		"id,gender,age,hypertension,heart_disease,ever_married,work_type,Residence_type,avg_glucose_level,bmi,smoking_status,stroke",
		"1,Male,10,0,0,No,children,Urban,80,17,never smoked,0",
		"2,Female,25,0,0,No,Private,Urban,90,22,never smoked,1",
		"3,Male,50,0,0,Yes,Private,Rural,110,28,smokes,0",
		"4,Female,70,1,0,Yes,Self-employed,Rural,140,33,formerly smoked,1",
		"5,Male,90,0,1,Yes,Private,Urban,200,N/A,never smoked,0",
		"6,Other,40,0,0,Yes,Govt_job,Urban,100,26,never smoked,0",
	}
	path := filepath.Join(dir, "stroke.csv")
	if err := os.WriteFile(path, []byte(strings.Join(rows, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestCLI_RunProducesAllArtifacts(t *testing.T) {
	// Use a temp HOME to isolate config
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	input := writeDataset(t, home)
	tablesDir := filepath.Join(home, "tables")
	chartsDir := filepath.Join(home, "charts")

	execCmd(t, "run", "--input", input, "--tables-dir", tablesDir, "--charts-dir", chartsDir)

	wantTables := []string{
		"stroke_data.csv", "age_group.csv", "gender.csv", "hypertension.csv",
		"heart_disease.csv", "smoking_status.csv", "bmi_category.csv",
		"glucose_category.csv", "work_type.csv", "residence_type.csv", "run.yaml",
	}
	for _, name := range wantTables {
		if _, err := os.Stat(filepath.Join(tablesDir, name)); err != nil {
			t.Errorf("missing table artifact %s: %v", name, err)
		}
	}
	wantCharts := []string{
		"01_stroke_distribution.png", "02_age_group_stroke_rate.png",
		"06_smoking_stroke_rate.png", "11_correlation_heatmap.png",
	}
	for _, name := range wantCharts {
		if _, err := os.Stat(filepath.Join(chartsDir, name)); err != nil {
			t.Errorf("missing chart artifact %s: %v", name, err)
		}
	}

	// The record with the minority gender label must not survive cleaning.
	data, err := os.ReadFile(filepath.Join(tablesDir, "stroke_data.csv"))
	if err != nil {
		t.Fatalf("read annotated table: %v", err)
	}
	if strings.Contains(string(data), "Other") {
		t.Fatalf("annotated table still contains the dropped gender label")
	}
	if lines := strings.Count(strings.TrimSpace(string(data)), "\n"); lines != 5 {
		t.Fatalf("annotated table has %d data rows, want 5", lines)
	}
}

func TestCLI_ExportOnly(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	input := writeDataset(t, home)
	tablesDir := filepath.Join(home, "tables")

	execCmd(t, "export", "--input", input, "--tables-dir", tablesDir)

	if _, err := os.Stat(filepath.Join(tablesDir, "gender.csv")); err != nil {
		t.Fatalf("missing gender.csv: %v", err)
	}
	// export must not write a run manifest
	if _, err := os.Stat(filepath.Join(tablesDir, "run.yaml")); err == nil {
		t.Fatalf("export wrote run.yaml, only run should")
	}
}

func TestCLI_RunFailsOnMissingColumn(t *testing.T) {
	home := t.TempDir()
	oldHome := os.Getenv("HOME")
	defer os.Setenv("HOME", oldHome)
	os.Setenv("HOME", home)

	path := filepath.Join(home, "bad.csv")
	if err := os.WriteFile(path, []byte("id,gender,age\n1,Male,30\n"), 0o644); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	rootCmd.SetArgs([]string{"run", "--input", path, "--tables-dir", filepath.Join(home, "t"), "--charts-dir", filepath.Join(home, "c")})
	if err := rootCmd.Execute(); err == nil {
		t.Fatalf("expected error for dataset missing required columns")
	}
}

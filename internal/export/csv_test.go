package export

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
)

func TestWriteAggregation(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	rows := []analysis.AggregationRow{
		{Value: "Male", StrokeCount: 5, TotalCount: 100, NoStrokeCount: 95, StrokeRate: 5},
		{Value: "Female", StrokeCount: 3, TotalCount: 30, NoStrokeCount: 27, StrokeRate: 10},
	}
	path, err := w.WriteAggregation("gender.csv", dataset.ColGender, rows)
	if err != nil {
		t.Fatalf("WriteAggregation: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 3 {
		t.Fatalf("records = %d, want header + 2 rows", len(records))
	}
	wantHeader := "gender,stroke_count,total_count,no_stroke_count,stroke_rate"
	if got := strings.Join(records[0], ","); got != wantHeader {
		t.Fatalf("header = %q, want %q", got, wantHeader)
	}
	if got := strings.Join(records[1], ","); got != "Male,5,100,95,5.00" {
		t.Fatalf("first row = %q", got)
	}
	if got := strings.Join(records[2], ","); got != "Female,3,30,27,10.00" {
		t.Fatalf("second row = %q", got)
	}
}

func TestWriteTableAppendsDerivedColumns(t *testing.T) {
	w, err := NewWriter(t.TempDir())
	if err != nil {
		t.Fatalf("NewWriter: %v", err)
	}
	tbl := dataset.Table{Records: []dataset.Record{
		{
			ID: 9046, Gender: "Male", Age: 67, HeartDisease: true, EverMarried: "Yes",
			WorkType: "Private", ResidenceType: "Urban", AvgGlucoseLevel: 228.69,
			BMI: 36.6, SmokingStatus: "formerly smoked", Stroke: true,
			AgeGroup: "61-75", BMICategory: "Obese", GlucoseCategory: "Diabetic",
		},
	}}
	path, err := w.WriteTable("stroke_data.csv", tbl)
	if err != nil {
		t.Fatalf("WriteTable: %v", err)
	}

	records := readCSV(t, path)
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1 row", len(records))
	}
	header := records[0]
	if header[len(header)-3] != "age_group" || header[len(header)-2] != "bmi_category" || header[len(header)-1] != "glucose_category" {
		t.Fatalf("derived columns not appended: %v", header)
	}
	row := records[1]
	want := []string{
		"9046", "Male", "67", "0", "1", "Yes", "Private", "Urban", "228.69",
		"36.6", "formerly smoked", "1", "61-75", "Obese", "Diabetic",
	}
	if len(row) != len(want) {
		t.Fatalf("row width = %d, want %d", len(row), len(want))
	}
	for i := range want {
		if row[i] != want[i] {
			t.Fatalf("cell %d = %q, want %q", i, row[i], want[i])
		}
	}
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return records
}

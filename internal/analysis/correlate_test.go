package analysis

import (
	"math"
	"testing"

	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
)

func TestCorrelateDiagonalAndSymmetry(t *testing.T) {
	records := []dataset.Record{
		{Age: 20, AvgGlucoseLevel: 90, BMI: 21, Stroke: false},
		{Age: 50, AvgGlucoseLevel: 130, BMI: 28, Hypertension: true, Stroke: true},
		{Age: 80, AvgGlucoseLevel: 200, BMI: 33, HeartDisease: true, Stroke: true},
	}
	m := Correlate(dataset.Table{Records: records})
	n := len(m.Columns)
	if n != 6 {
		t.Fatalf("columns = %d, want 6", n)
	}
	for i := 0; i < n; i++ {
		if m.Values[i][i] != 1 {
			t.Fatalf("diagonal [%d][%d] = %v, want 1", i, i, m.Values[i][i])
		}
		for j := 0; j < n; j++ {
			if m.Values[i][j] != m.Values[j][i] {
				t.Fatalf("matrix not symmetric at [%d][%d]", i, j)
			}
			if math.Abs(m.Values[i][j]) > 1 {
				t.Fatalf("correlation out of range at [%d][%d]: %v", i, j, m.Values[i][j])
			}
		}
	}
}

func TestCorrelatePerfectLinearPair(t *testing.T) {
	// Glucose is an exact linear function of age, so their correlation is 1.
	records := []dataset.Record{
		{Age: 10, AvgGlucoseLevel: 100, BMI: 25},
		{Age: 20, AvgGlucoseLevel: 120, BMI: 22},
		{Age: 30, AvgGlucoseLevel: 140, BMI: 30},
		{Age: 40, AvgGlucoseLevel: 160, BMI: 19},
	}
	m := Correlate(dataset.Table{Records: records})
	ageIdx, glucoseIdx := indexOf(t, m, dataset.ColAge), indexOf(t, m, dataset.ColAvgGlucoseLevel)
	if got := m.Values[ageIdx][glucoseIdx]; math.Abs(got-1) > 1e-9 {
		t.Fatalf("corr(age, glucose) = %v, want 1", got)
	}
}

func TestCorrelateConstantColumnIsZero(t *testing.T) {
	// No record has a stroke, so the stroke column is constant and its
	// off-diagonal correlations are defined as 0.
	records := []dataset.Record{
		{Age: 10, AvgGlucoseLevel: 80, BMI: 20},
		{Age: 60, AvgGlucoseLevel: 150, BMI: 30},
	}
	m := Correlate(dataset.Table{Records: records})
	strokeIdx := indexOf(t, m, dataset.ColStroke)
	for j := range m.Columns {
		if j == strokeIdx {
			continue
		}
		if got := m.Values[strokeIdx][j]; got != 0 {
			t.Fatalf("corr(stroke, %s) = %v, want 0", m.Columns[j], got)
		}
	}
}

func indexOf(t *testing.T, m CorrMatrix, col string) int {
	t.Helper()
	for i, c := range m.Columns {
		if c == col {
			return i
		}
	}
	t.Fatalf("column %q not in matrix", col)
	return -1
}

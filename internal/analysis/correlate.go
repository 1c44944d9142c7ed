package analysis

import (
	"math"

	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
)

// CorrMatrix is a symmetric Pearson correlation matrix over the numeric
// dataset fields; Values is row-major with Values[i][j] = corr(col i, col j).
type CorrMatrix struct {
	Columns []string
	Values  [][]float64
}

// corrColumns are the numeric fields fed into the matrix; binary indicators
// participate as 0/1.
var corrColumns = []string{
	dataset.ColAge,
	dataset.ColHypertension,
	dataset.ColHeartDisease,
	dataset.ColAvgGlucoseLevel,
	dataset.ColBMI,
	dataset.ColStroke,
}

// Correlate computes pairwise Pearson correlations across the numeric fields
// of a cleaned table. Constant columns correlate as 0 with everything and 1
// with themselves.
func Correlate(t dataset.Table) CorrMatrix {
	n := len(corrColumns)
	type acc struct {
		n, sumX, sumY, sumXX, sumYY, sumXY float64
	}
	pairs := make([]acc, n*n)

	for _, r := range t.Records {
		vals := numericValues(r)
		for i := 1; i < n; i++ {
			for j := 0; j < i; j++ {
				a := &pairs[i*n+j]
				x, y := vals[i], vals[j]
				a.n++
				a.sumX += x
				a.sumY += y
				a.sumXX += x * x
				a.sumYY += y * y
				a.sumXY += x * y
			}
		}
	}

	m := CorrMatrix{Columns: corrColumns, Values: make([][]float64, n)}
	for i := range m.Values {
		m.Values[i] = make([]float64, n)
		m.Values[i][i] = 1
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			a := pairs[i*n+j]
			var r float64
			if a.n >= 2 {
				denom := math.Sqrt((a.n*a.sumXX - a.sumX*a.sumX) * (a.n*a.sumYY - a.sumY*a.sumY))
				if denom != 0 {
					r = (a.n*a.sumXY - a.sumX*a.sumY) / denom
				}
			}
			if r > 1 {
				r = 1
			} else if r < -1 {
				r = -1
			}
			if math.IsNaN(r) || math.IsInf(r, 0) {
				r = 0
			}
			m.Values[i][j] = r
			m.Values[j][i] = r
		}
	}
	return m
}

func numericValues(r dataset.Record) [6]float64 {
	return [6]float64{
		r.Age,
		boolToFloat(r.Hypertension),
		boolToFloat(r.HeartDisease),
		r.AvgGlucoseLevel,
		r.BMI,
		boolToFloat(r.Stroke),
	}
}

func boolToFloat(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

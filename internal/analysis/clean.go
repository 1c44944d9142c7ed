// Package analysis holds the core pipeline stages: cleaning, categorical
// binning, group-wise aggregation and the numeric correlation matrix. Every
// stage is a pure transform returning a new table.
package analysis

import (
	"fmt"
	"sort"

	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
)

// Clean repairs missing BMI values and drops records outside the two majority
// gender labels. The replacement median is computed once from the originally
// non-missing BMI values, so the result is independent of record order and of
// how many values need imputing. Clean is idempotent and order-preserving.
func Clean(t dataset.Table) (dataset.Table, error) {
	if t.Len() == 0 {
		return dataset.Table{}, fmt.Errorf("clean: %w: table has no records", dataset.ErrInvalidInput)
	}

	known := make([]float64, 0, t.Len())
	for _, r := range t.Records {
		if !r.BMIMissing {
			known = append(known, r.BMI)
		}
	}
	if len(known) == 0 {
		return dataset.Table{}, fmt.Errorf("clean: %w: every BMI value is missing, no median available", dataset.ErrInvalidInput)
	}
	med := median(known)

	out := dataset.Table{Source: t.Source, Records: make([]dataset.Record, 0, t.Len())}
	for _, r := range t.Records {
		if r.Gender != dataset.GenderMale && r.Gender != dataset.GenderFemale {
			continue
		}
		if r.BMIMissing {
			r.BMI = med
			r.BMIMissing = false
		}
		out.Records = append(out.Records, r)
	}
	return out, nil
}

// median returns the middle value of vals, averaging the two central values
// for an even count. vals is not modified.
func median(vals []float64) float64 {
	cp := make([]float64, len(vals))
	copy(cp, vals)
	sort.Float64s(cp)
	n := len(cp)
	if n%2 == 1 {
		return cp[n/2]
	}
	return (cp[n/2-1] + cp[n/2]) / 2
}

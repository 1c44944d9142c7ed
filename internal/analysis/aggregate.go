package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
)

// AggregationRow is the per-group projection of the table along one
// categorical column.
type AggregationRow struct {
	Value         string
	StrokeCount   int
	TotalCount    int
	NoStrokeCount int
	// StrokeRate is a percentage rounded half-up to two decimal places.
	StrokeRate float64
}

// Summary is the whole-table aggregate: the degenerate one-group case of
// Aggregate, using the same counting and rounding.
type Summary struct {
	TotalPatients int
	StrokeCases   int
	NoStrokeCases int
	StrokeRate    float64
}

// Aggregate groups the table by the distinct values of the named categorical
// column and counts stroke outcomes per group. Groups are derived from
// observed values only, so every group has at least one record. Default row
// order is descending group size with ties broken by value; callers needing
// an ordinal sequence apply SortRows afterwards.
func Aggregate(t dataset.Table, column string) ([]AggregationRow, error) {
	type counts struct{ stroke, total int }
	byValue := make(map[string]*counts)
	for i, r := range t.Records {
		v, err := r.CategoricalValue(column)
		if err != nil {
			return nil, fmt.Errorf("aggregate record %d: %w", i+1, err)
		}
		c := byValue[v]
		if c == nil {
			c = &counts{}
			byValue[v] = c
		}
		c.total++
		if r.Stroke {
			c.stroke++
		}
	}

	rows := make([]AggregationRow, 0, len(byValue))
	for v, c := range byValue {
		rate, err := strokeRate(c.stroke, c.total)
		if err != nil {
			return nil, fmt.Errorf("aggregate %q group %q: %w", column, v, err)
		}
		rows = append(rows, AggregationRow{
			Value:         v,
			StrokeCount:   c.stroke,
			TotalCount:    c.total,
			NoStrokeCount: c.total - c.stroke,
			StrokeRate:    rate,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].TotalCount == rows[j].TotalCount {
			return rows[i].Value < rows[j].Value
		}
		return rows[i].TotalCount > rows[j].TotalCount
	})
	return rows, nil
}

// SortRows reorders rows in place by a caller-supplied label sequence.
// Labels absent from the ordering sort after all ordered labels, by value.
func SortRows(rows []AggregationRow, ordering []string) {
	rank := make(map[string]int, len(ordering))
	for i, label := range ordering {
		rank[label] = i
	}
	pos := func(v string) int {
		if i, ok := rank[v]; ok {
			return i
		}
		return len(ordering)
	}
	sort.SliceStable(rows, func(i, j int) bool {
		pi, pj := pos(rows[i].Value), pos(rows[j].Value)
		if pi == pj {
			return rows[i].Value < rows[j].Value
		}
		return pi < pj
	})
}

// Summarize computes the table-wide stroke statistics without grouping.
func Summarize(t dataset.Table) (Summary, error) {
	var stroke int
	for _, r := range t.Records {
		if r.Stroke {
			stroke++
		}
	}
	rate, err := strokeRate(stroke, t.Len())
	if err != nil {
		return Summary{}, fmt.Errorf("summarize: %w", err)
	}
	return Summary{
		TotalPatients: t.Len(),
		StrokeCases:   stroke,
		NoStrokeCases: t.Len() - stroke,
		StrokeRate:    rate,
	}, nil
}

// RiskFactorColumns are the risk-indicator groupings reported together in the
// run summary: hypertension, heart disease and smoking status.
var RiskFactorColumns = []string{
	dataset.ColHypertension,
	dataset.ColHeartDisease,
	dataset.ColSmokingStatus,
}

// RiskFactorSummary aggregates the table by each risk-factor column.
func RiskFactorSummary(t dataset.Table) (map[string][]AggregationRow, error) {
	out := make(map[string][]AggregationRow, len(RiskFactorColumns))
	for _, col := range RiskFactorColumns {
		rows, err := Aggregate(t, col)
		if err != nil {
			return nil, err
		}
		out[col] = rows
	}
	return out, nil
}

// strokeRate returns stroke/total as a percentage rounded half-up to two
// decimals. math.Round rounds halves away from zero, which for these
// non-negative counts is exactly round-half-up.
func strokeRate(stroke, total int) (float64, error) {
	if total == 0 {
		return 0, dataset.ErrDegenerateGroup
	}
	return math.Round(float64(stroke)/float64(total)*100*100) / 100, nil
}

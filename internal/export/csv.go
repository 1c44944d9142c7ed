// Package export serializes aggregations and the annotated table to CSV
// files. It is a thin consumer of the analysis results and holds no logic of
// its own beyond formatting.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
	"github.com/isacmj7/stroke-prediction-analysis/internal/utils"
)

// Writer writes CSV exports into a fixed output directory using atomic file
// replacement.
type Writer struct {
	dir string
}

// NewWriter returns a Writer rooted at dir, creating it if needed.
func NewWriter(dir string) (*Writer, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("ensure export dir: %w", err)
	}
	return &Writer{dir: dir}, nil
}

// WriteAggregation writes one aggregation to filename. The first header cell
// carries the grouping column name; rates are printed with two decimals.
func (w *Writer) WriteAggregation(filename, column string, rows []analysis.AggregationRow) (string, error) {
	records := make([][]string, 0, len(rows))
	for _, r := range rows {
		records = append(records, []string{
			r.Value,
			strconv.Itoa(r.StrokeCount),
			strconv.Itoa(r.TotalCount),
			strconv.Itoa(r.NoStrokeCount),
			strconv.FormatFloat(r.StrokeRate, 'f', 2, 64),
		})
	}
	header := []string{column, "stroke_count", "total_count", "no_stroke_count", "stroke_rate"}
	return w.write(filename, header, records)
}

// WriteTable writes the fully annotated table with the three derived category
// columns appended after the source columns.
func (w *Writer) WriteTable(filename string, t dataset.Table) (string, error) {
	header := []string{
		dataset.ColID, dataset.ColGender, dataset.ColAge,
		dataset.ColHypertension, dataset.ColHeartDisease, dataset.ColEverMarried,
		dataset.ColWorkType, dataset.ColResidenceType, dataset.ColAvgGlucoseLevel,
		dataset.ColBMI, dataset.ColSmokingStatus, dataset.ColStroke,
		dataset.ColAgeGroup, dataset.ColBMICategory, dataset.ColGlucoseCategory,
	}
	records := make([][]string, 0, t.Len())
	for _, r := range t.Records {
		records = append(records, []string{
			strconv.Itoa(r.ID),
			r.Gender,
			formatFloat(r.Age),
			formatIndicator(r.Hypertension),
			formatIndicator(r.HeartDisease),
			r.EverMarried,
			r.WorkType,
			r.ResidenceType,
			formatFloat(r.AvgGlucoseLevel),
			formatFloat(r.BMI),
			r.SmokingStatus,
			formatIndicator(r.Stroke),
			r.AgeGroup,
			r.BMICategory,
			r.GlucoseCategory,
		})
	}
	return w.write(filename, header, records)
}

func (w *Writer) write(filename string, header []string, records [][]string) (string, error) {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	if err := cw.Write(header); err != nil {
		return "", fmt.Errorf("write header: %w", err)
	}
	for i, rec := range records {
		if err := cw.Write(rec); err != nil {
			return "", fmt.Errorf("write record %d: %w", i+1, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	path := filepath.Join(w.dir, filename)
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return "", fmt.Errorf("write %s: %w", filename, err)
	}
	return path, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func formatIndicator(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

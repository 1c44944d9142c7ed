package cmd

import (
	"fmt"

	"github.com/isacmj7/stroke-prediction-analysis/internal/analysis"
	"github.com/isacmj7/stroke-prediction-analysis/internal/dataset"
)

// grouping binds one categorical column to its export file, chart file and
// optional ordinal label ordering.
type grouping struct {
	Column    string
	TableFile string
	ChartFile string
	Title     string
	XLabel    string
	Ordering  []string
}

// groupings is the fixed set of per-column exports and rate charts. Ordinal
// columns carry their label sequence; nominal ones keep the aggregator's
// default size ordering.
var groupings = []grouping{
	{dataset.ColAgeGroup, "age_group.csv", "02_age_group_stroke_rate.png", "Stroke Rate by Age Group", "Age Group", analysis.AgeGroupLabels},
	{dataset.ColGender, "gender.csv", "03_gender_stroke_rate.png", "Stroke Rate by Gender", "Gender", nil},
	{dataset.ColHypertension, "hypertension.csv", "04_hypertension_stroke_rate.png", "Stroke Rate by Hypertension Status", "Hypertension", nil},
	{dataset.ColHeartDisease, "heart_disease.csv", "05_heart_disease_stroke_rate.png", "Stroke Rate by Heart Disease Status", "Heart Disease", nil},
	{dataset.ColSmokingStatus, "smoking_status.csv", "06_smoking_stroke_rate.png", "Stroke Rate by Smoking Status", "Smoking Status", nil},
	{dataset.ColBMICategory, "bmi_category.csv", "07_bmi_category_stroke_rate.png", "Stroke Rate by BMI Category", "BMI Category", analysis.BMICategoryLabels},
	{dataset.ColGlucoseCategory, "glucose_category.csv", "08_glucose_category_stroke_rate.png", "Stroke Rate by Glucose Level Category", "Glucose Category", analysis.GlucoseCategoryLabels},
	{dataset.ColWorkType, "work_type.csv", "09_work_type_stroke_rate.png", "Stroke Rate by Work Type", "Work Type", nil},
	{dataset.ColResidenceType, "residence_type.csv", "10_residence_stroke_rate.png", "Stroke Rate by Residence Type", "Residence Type", nil},
}

// prepare runs Load → Clean → the three categorizers and reports progress.
// Any stage error aborts the pipeline; nothing downstream runs. loadedRows is
// the row count before cleaning.
func prepare(inputPath string) (table dataset.Table, loadedRows int, err error) {
	t, err := dataset.Load(inputPath)
	if err != nil {
		return dataset.Table{}, 0, fmt.Errorf("load stage: %w", err)
	}
	fmt.Printf("✓ Loaded %s: %d rows\n", t.Source, t.Len())

	clean, err := analysis.Clean(t)
	if err != nil {
		return dataset.Table{}, 0, fmt.Errorf("clean stage: %w", err)
	}
	fmt.Printf("✓ Cleaned data: %d rows\n", clean.Len())

	clean = analysis.AnnotateAge(clean)
	clean = analysis.AnnotateBMI(clean)
	clean = analysis.AnnotateGlucose(clean)
	return clean, t.Len(), nil
}

// aggregateAll computes every configured grouping once, applying ordinal
// orderings where present.
func aggregateAll(t dataset.Table) (map[string][]analysis.AggregationRow, error) {
	out := make(map[string][]analysis.AggregationRow, len(groupings))
	for _, g := range groupings {
		rows, err := analysis.Aggregate(t, g.Column)
		if err != nil {
			return nil, fmt.Errorf("aggregate stage: %w", err)
		}
		if g.Ordering != nil {
			analysis.SortRows(rows, g.Ordering)
		}
		out[g.Column] = rows
	}
	return out, nil
}

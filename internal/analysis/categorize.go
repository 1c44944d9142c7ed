package analysis

import "github.com/isacmj7/stroke-prediction-analysis/internal/dataset"

// Fixed label sequences for the ordinal categories. Consumers pass these to
// SortRows or the chart renderer to get bins in their natural order.
var (
	AgeGroupLabels        = []string{"0-18", "19-30", "31-45", "46-60", "61-75", "75+"}
	BMICategoryLabels     = []string{"Underweight", "Normal", "Overweight", "Obese"}
	GlucoseCategoryLabels = []string{"Normal", "Pre-diabetic", "Diabetic"}
)

// Upper bin bounds matching AgeGroupLabels. Bounds are inclusive, so age 18
// is "0-18" and age 19 is "19-30"; ages above the last bound stay in "75+".
var ageUpperBounds = []float64{18, 30, 45, 60, 75, 100}

// AnnotateAge fills the AgeGroup field of every record. Pure, idempotent and
// order-preserving; the input table is not modified.
func AnnotateAge(t dataset.Table) dataset.Table {
	out := t.Clone()
	for i := range out.Records {
		out.Records[i].AgeGroup = ageGroup(out.Records[i].Age)
	}
	return out
}

// AnnotateBMI fills the BMICategory field of every record.
func AnnotateBMI(t dataset.Table) dataset.Table {
	out := t.Clone()
	for i := range out.Records {
		out.Records[i].BMICategory = bmiCategory(out.Records[i].BMI)
	}
	return out
}

// AnnotateGlucose fills the GlucoseCategory field of every record.
func AnnotateGlucose(t dataset.Table) dataset.Table {
	out := t.Clone()
	for i := range out.Records {
		out.Records[i].GlucoseCategory = glucoseCategory(out.Records[i].AvgGlucoseLevel)
	}
	return out
}

func ageGroup(age float64) string {
	for i, hi := range ageUpperBounds {
		if age <= hi {
			return AgeGroupLabels[i]
		}
	}
	return AgeGroupLabels[len(AgeGroupLabels)-1]
}

// bmiCategory uses the standard WHO cut points, half-open on the upper side.
func bmiCategory(bmi float64) string {
	switch {
	case bmi < 18.5:
		return "Underweight"
	case bmi < 25:
		return "Normal"
	case bmi < 30:
		return "Overweight"
	default:
		return "Obese"
	}
}

func glucoseCategory(level float64) string {
	switch {
	case level < 100:
		return "Normal"
	case level < 126:
		return "Pre-diabetic"
	default:
		return "Diabetic"
	}
}

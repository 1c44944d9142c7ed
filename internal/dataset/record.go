package dataset

import "fmt"

// Column names as they appear in the dataset header. Residence_type keeps the
// source file's capitalization.
const (
	ColID              = "id"
	ColGender          = "gender"
	ColAge             = "age"
	ColHypertension    = "hypertension"
	ColHeartDisease    = "heart_disease"
	ColEverMarried     = "ever_married"
	ColWorkType        = "work_type"
	ColResidenceType   = "Residence_type"
	ColAvgGlucoseLevel = "avg_glucose_level"
	ColBMI             = "bmi"
	ColSmokingStatus   = "smoking_status"
	ColStroke          = "stroke"

	// Derived columns appended by the categorizer.
	ColAgeGroup        = "age_group"
	ColBMICategory     = "bmi_category"
	ColGlucoseCategory = "glucose_category"
)

// Gender labels retained by the cleaner. The rare third label in the source
// data is dropped, not imputed.
const (
	GenderMale   = "Male"
	GenderFemale = "Female"
)

// Record is one subject. Continuous measurements are typed floats and the
// derived category fields stay empty until the categorizer runs.
type Record struct {
	ID              int
	Gender          string
	Age             float64
	Hypertension    bool
	HeartDisease    bool
	EverMarried     string
	WorkType        string
	ResidenceType   string
	AvgGlucoseLevel float64
	BMI             float64
	// BMIMissing is true when the source encoded BMI with the missing
	// sentinel; the cleaner replaces the value and clears the flag.
	BMIMissing bool
	SmokingStatus string
	Stroke        bool

	AgeGroup        string
	BMICategory     string
	GlucoseCategory string
}

// Table is an ordered sequence of records sharing the dataset schema.
// Transforms return fresh tables and never mutate their input.
type Table struct {
	Source  string
	Records []Record
}

// Clone returns a deep copy of the table. Records hold no reference types,
// so copying the slice is sufficient.
func (t Table) Clone() Table {
	out := Table{Source: t.Source, Records: make([]Record, len(t.Records))}
	copy(out.Records, t.Records)
	return out
}

// Len returns the number of records.
func (t Table) Len() int { return len(t.Records) }

// CategoricalValue returns the record's value for a named grouping column.
// Binary indicators are reported as "0"/"1" to match the source encoding.
func (r Record) CategoricalValue(column string) (string, error) {
	switch column {
	case ColGender:
		return r.Gender, nil
	case ColHypertension:
		return formatBool(r.Hypertension), nil
	case ColHeartDisease:
		return formatBool(r.HeartDisease), nil
	case ColEverMarried:
		return r.EverMarried, nil
	case ColWorkType:
		return r.WorkType, nil
	case ColResidenceType:
		return r.ResidenceType, nil
	case ColSmokingStatus:
		return r.SmokingStatus, nil
	case ColStroke:
		return formatBool(r.Stroke), nil
	case ColAgeGroup:
		return r.AgeGroup, nil
	case ColBMICategory:
		return r.BMICategory, nil
	case ColGlucoseCategory:
		return r.GlucoseCategory, nil
	default:
		return "", fmt.Errorf("%w: no categorical column %q", ErrMissingField, column)
	}
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

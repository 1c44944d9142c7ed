package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// MissingBMI is the sentinel the source dataset uses for an absent BMI value.
// An empty field is treated the same way; any other non-numeric token is a
// hard ErrInvalidInput rather than silent missingness.
const MissingBMI = "N/A"

var requiredColumns = []string{
	ColID, ColGender, ColAge, ColHypertension, ColHeartDisease,
	ColEverMarried, ColWorkType, ColResidenceType, ColAvgGlucoseLevel,
	ColBMI, ColSmokingStatus, ColStroke,
}

// Load reads a delimited file with a header row into a Table. Column order in
// the file is irrelevant; columns are located by header name
// (case-insensitive). A missing required column fails with ErrMissingField.
func Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("%w: dataset %s is empty", ErrInvalidInput, path)
		}
		return Table{}, fmt.Errorf("read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	colIdx := make(map[string]int, len(requiredColumns))
	for _, col := range requiredColumns {
		i, ok := idx[strings.ToLower(col)]
		if !ok {
			return Table{}, fmt.Errorf("%w: column %q not in header of %s", ErrMissingField, col, path)
		}
		colIdx[col] = i
	}

	t := Table{Source: filepath.Base(path)}
	row := 0
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return Table{}, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		if len(rec) < len(header) {
			tmp := make([]string, len(header))
			copy(tmp, rec)
			rec = tmp
		}

		field := func(col string) string { return strings.TrimSpace(rec[colIdx[col]]) }

		out := Record{
			Gender:        field(ColGender),
			EverMarried:   field(ColEverMarried),
			WorkType:      field(ColWorkType),
			ResidenceType: field(ColResidenceType),
			SmokingStatus: field(ColSmokingStatus),
		}
		if out.ID, err = parseInt(field(ColID), ColID, row); err != nil {
			return Table{}, err
		}
		if out.Age, err = parseFloat(field(ColAge), ColAge, row); err != nil {
			return Table{}, err
		}
		if out.AvgGlucoseLevel, err = parseFloat(field(ColAvgGlucoseLevel), ColAvgGlucoseLevel, row); err != nil {
			return Table{}, err
		}
		if out.Hypertension, err = parseIndicator(field(ColHypertension), ColHypertension, row); err != nil {
			return Table{}, err
		}
		if out.HeartDisease, err = parseIndicator(field(ColHeartDisease), ColHeartDisease, row); err != nil {
			return Table{}, err
		}
		if out.Stroke, err = parseIndicator(field(ColStroke), ColStroke, row); err != nil {
			return Table{}, err
		}
		if out.BMI, out.BMIMissing, err = parseBMI(field(ColBMI), row); err != nil {
			return Table{}, err
		}
		t.Records = append(t.Records, out)
	}
	return t, nil
}

func parseInt(v, col string, row int) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %q: %q is not an integer", ErrInvalidInput, row, col, v)
	}
	return n, nil
}

func parseFloat(v, col string, row int) (float64, error) {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: row %d column %q: %q is not numeric", ErrInvalidInput, row, col, v)
	}
	return f, nil
}

// parseIndicator accepts only the 0/1 encoding used by the binary columns.
func parseIndicator(v, col string, row int) (bool, error) {
	switch v {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, fmt.Errorf("%w: row %d column %q: %q is not 0 or 1", ErrInvalidInput, row, col, v)
	}
}

func parseBMI(v string, row int) (val float64, missing bool, err error) {
	if v == "" || v == MissingBMI {
		return 0, true, nil
	}
	f, perr := strconv.ParseFloat(v, 64)
	if perr != nil {
		return 0, false, fmt.Errorf("%w: row %d column %q: %q is neither numeric nor the %q sentinel",
			ErrInvalidInput, row, ColBMI, v, MissingBMI)
	}
	return f, false, nil
}

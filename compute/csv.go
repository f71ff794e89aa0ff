package compute

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ReadCSV parses a headerless CSV of numbers into a matrix. Blank fields are rejected.
func ReadCSV(r io.Reader) (Matrix, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.Comment = '#'
	records, err := reader.ReadAll()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) && errors.Is(parseErr.Err, csv.ErrFieldCount) {
			return Matrix{}, errors.Join(ErrShapeMismatch, err)
		}
		return Matrix{}, errors.Join(errors.New("could not read csv"), err)
	}
	rows := make([][]float64, len(records))
	for i, record := range records {
		rows[i] = make([]float64, len(record))
		for j, field := range record {
			rows[i][j], err = strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return Matrix{}, fmt.Errorf("row %d column %d: %w", i+1, j+1, err)
			}
		}
	}
	return NewMatrix(rows)
}

// WriteCSV writes the matrix as CSV. A negative precision uses the shortest representation.
func WriteCSV(w io.Writer, m Matrix, precision int) error {
	writer := csv.NewWriter(w)
	record := make([]string, m.cols)
	for i := 0; i < m.rows; i++ {
		for j, v := range m.Row(i) {
			record[j] = strconv.FormatFloat(v, 'f', precision, 64)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// MarshalJSON encodes the matrix as an array of rows. NaN and ±Inf, which JSON cannot
// represent, are written as null.
func (m Matrix) MarshalJSON() ([]byte, error) {
	rows := make([][]*float64, m.rows)
	for i := range rows {
		rows[i] = make([]*float64, m.cols)
		for j, v := range m.Row(i) {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			rows[i][j] = &v
		}
	}
	return json.Marshal(rows)
}

// UnmarshalJSON decodes an array of equally sized rows. null decodes as NaN.
func (m *Matrix) UnmarshalJSON(raw []byte) error {
	var rows [][]*float64
	if err := json.Unmarshal(raw, &rows); err != nil {
		return err
	}
	values := make([][]float64, len(rows))
	for i, row := range rows {
		values[i] = make([]float64, len(row))
		for j, v := range row {
			if v == nil {
				values[i][j] = math.NaN()
			} else {
				values[i][j] = *v
			}
		}
	}
	parsed, err := NewMatrix(values)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

package catalog

import (
	"encoding/csv"
	"io"
	"strconv"
)

// ExportCSV writes modules with a leading row index column and the header ",Type,Freq,Size,Price".
func ExportCSV(w io.Writer, modules []MemoryModule) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"", "Type", "Freq", "Size", "Price"}); err != nil {
		return err
	}
	for i, m := range modules {
		record := []string{
			strconv.Itoa(i),
			m.Type,
			strconv.Itoa(m.Freq),
			strconv.Itoa(m.Size),
			strconv.Itoa(m.Price),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

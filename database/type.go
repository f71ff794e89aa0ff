package database

import (
	"database/sql/driver"
	"fmt"

	_ "github.com/expki/go-dataminer/env"
)

// PageBody is raw page HTML stored zstd-compressed.
type PageBody []byte

// Scan scan value into PageBody, implements sql.Scanner interface
func (b *PageBody) Scan(value any) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal PageBody value: %+v", value)
	}
	original, err := decompressPage(bytes)
	if err != nil {
		return fmt.Errorf("failed to decompress PageBody value: %+v", subSlice(bytes, 10))
	}
	*b = PageBody(original)
	return nil
}

// Value return compressed PageBody value, implement driver.Valuer interface
func (b PageBody) Value() (driver.Value, error) {
	return compressPage([]byte(b)), nil
}

func subSlice[T any](list []T, max int) []T {
	if len(list) > max {
		return list[:max]
	}
	return list
}

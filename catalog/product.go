package catalog

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedProduct is returned when a product page lacks the expected specification fields.
var ErrMalformedProduct = errors.New("malformed product")

const (
	kitOfTwo  = "Комплект из двух модулей"
	kitOfFour = "Комплект из четырех модулей"
)

// MemoryModule is one exported row. Size is per module, so kits are divided by their count.
type MemoryModule struct {
	URL   string
	Type  string
	Freq  int
	Size  int
	Price int
}

// ParsePrice converts a listing price such as "2990.00" to whole units by dropping the
// two-digit fraction and its separator.
func ParsePrice(price string) (int, error) {
	price = strings.TrimSpace(price)
	if len(price) <= 3 {
		return 0, fmt.Errorf("price %q: %w", price, ErrMalformedProduct)
	}
	value, err := strconv.Atoi(price[:len(price)-3])
	if err != nil {
		return 0, fmt.Errorf("price %q: %w", price, errors.Join(ErrMalformedProduct, err))
	}
	return value, nil
}

// ToMemoryModule maps the specification fields of a product page to a row.
//
// fields[0] is the kit description, fields[1] the total size ("16 ГБ"), fields[2] the memory
// type and fields[4] the frequency ("2400 МГц").
func ToMemoryModule(url string, price int, fields []string) (MemoryModule, error) {
	if len(fields) < 5 {
		return MemoryModule{}, fmt.Errorf("%s has %d fields: %w", url, len(fields), ErrMalformedProduct)
	}
	modules := 1
	switch fields[0] {
	case kitOfTwo:
		modules = 2
	case kitOfFour:
		modules = 4
	}
	size, err := leadingInt(fields[1])
	if err != nil {
		return MemoryModule{}, fmt.Errorf("%s size: %w", url, err)
	}
	freq, err := leadingInt(fields[4])
	if err != nil {
		return MemoryModule{}, fmt.Errorf("%s frequency: %w", url, err)
	}
	return MemoryModule{
		URL:   url,
		Type:  fields[2],
		Freq:  freq,
		Size:  size / modules,
		Price: price,
	}, nil
}

func leadingInt(field string) (int, error) {
	tokens := strings.Fields(field)
	if len(tokens) == 0 {
		return 0, ErrMalformedProduct
	}
	value, err := strconv.Atoi(tokens[0])
	if err != nil {
		return 0, errors.Join(ErrMalformedProduct, err)
	}
	return value, nil
}

package cart

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Discounts maps a case-sensitive code to a rate in [0, 1].
type Discounts map[string]decimal.Decimal

// DefaultDiscounts is used when no discount file is configured.
var DefaultDiscounts = Discounts{
	"WELCOME10": decimal.RequireFromString("0.10"),
	"SUMMER20":  decimal.RequireFromString("0.20"),
}

// Rate looks up a code. Empty codes never match.
func (d Discounts) Rate(code string) (decimal.Decimal, bool) {
	if code == "" {
		return decimal.Zero, false
	}
	rate, ok := d[code]
	return rate, ok
}

type discountFile struct {
	Discounts []struct {
		Code    string  `yaml:"code"`
		Percent float64 `yaml:"percent"`
	} `yaml:"discounts"`
}

// LoadDiscounts reads a YAML table of the form:
//
//	discounts:
//	  - code: WELCOME10
//	    percent: 10
func LoadDiscounts(path string) (Discounts, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read discounts: %w", err)
	}
	return ParseDiscounts(data)
}

// ParseDiscounts decodes a YAML discount table.
func ParseDiscounts(data []byte) (Discounts, error) {
	var f discountFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode discounts: %w", err)
	}

	table := make(Discounts, len(f.Discounts))
	for _, d := range f.Discounts {
		if d.Code == "" {
			return nil, fmt.Errorf("discount with empty code")
		}
		if d.Percent < 0 || d.Percent > 100 {
			return nil, fmt.Errorf("discount %s: percent %v out of range", d.Code, d.Percent)
		}
		table[d.Code] = decimal.NewFromFloat(d.Percent).Div(decimal.NewFromInt(100))
	}
	return table, nil
}

package wcif

import (
	"cmp"
	"fmt"
	"strconv"
)

const (
	wcaIDType   = "wca id"
	wcaIDLength = 10
)

// WCAID is a person's permanent identifier, e.g. 2015DOEJ01: the year of
// their first competition, four letters of their name and a discriminant.
type WCAID struct {
	Year         uint16
	Name         string
	Discriminant uint8
}

func ParseWCAID(s string) (WCAID, error) {
	r := []rune(s)
	if len(r) != wcaIDLength {
		return WCAID{}, parseError(wcaIDType, s, fmt.Errorf("%w %d", ErrLength, len(r)))
	}
	year, err := strconv.ParseUint(string(r[:4]), 10, 16)
	if err != nil {
		return WCAID{}, parseError(wcaIDType, s, fmt.Errorf("%w: year %q", ErrDigitParse, string(r[:4])))
	}
	discriminant, err := strconv.ParseUint(string(r[8:]), 10, 8)
	if err != nil {
		return WCAID{}, parseError(wcaIDType, s, fmt.Errorf("%w: discriminant %q", ErrDigitParse, string(r[8:])))
	}
	return WCAID{
		Year:         uint16(year),
		Name:         string(r[4:8]),
		Discriminant: uint8(discriminant),
	}, nil
}

func (id WCAID) String() string {
	return fmt.Sprintf("%04d%s%02d", id.Year, id.Name, id.Discriminant)
}

// Compare orders by year, then name, then discriminant.
func (id WCAID) Compare(o WCAID) int {
	if c := cmp.Compare(id.Year, o.Year); c != 0 {
		return c
	}
	if c := cmp.Compare(id.Name, o.Name); c != 0 {
		return c
	}
	return cmp.Compare(id.Discriminant, o.Discriminant)
}

func (id WCAID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *WCAID) UnmarshalText(b []byte) error {
	parsed, err := ParseWCAID(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

package equipment

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrInvalidClass = errors.New("invalid equipment class")

// Class is fixed per equipment name when the catalog is loaded.
type Class string

const (
	ClassHeavy       Class = "Heavy"
	ClassRegular     Class = "Regular"
	ClassSpecialized Class = "Specialized"
)

func (c Class) String() string {
	return string(c)
}

func (c Class) IsValid() bool {
	switch c {
	case ClassHeavy, ClassRegular, ClassSpecialized:
		return true
	default:
		return false
	}
}

// ParseClass accepts the exact class name, surrounding whitespace ignored.
func ParseClass(s string) (Class, error) {
	c := Class(strings.TrimSpace(s))
	if !c.IsValid() {
		return "", ErrInvalidClass
	}
	return c, nil
}

func (c *Class) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClass(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

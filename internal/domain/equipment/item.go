package equipment

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrEmptyName    = errors.New("equipment name cannot be empty")
	ErrInvalidStock = errors.New("stock count must be positive")
	ErrMalformed    = errors.New("malformed catalog line")
)

const (
	catalogFieldCount = 3
	catalogSeparator  = ","
)

type Item struct {
	name  string
	class Class
	stock int
}

func NewItem(name string, class Class, stock int) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !class.IsValid() {
		return nil, ErrInvalidClass
	}
	if stock <= 0 {
		return nil, ErrInvalidStock
	}
	return &Item{name: name, class: class, stock: stock}, nil
}

// ReconstructItem rebuilds an item from storage without validation.
func ReconstructItem(name string, class Class, stock int) *Item {
	return &Item{name: name, class: class, stock: stock}
}

func (i *Item) Name() string { return i.name }
func (i *Item) Class() Class  { return i.class }
func (i *Item) Stock() int    { return i.stock }

// ParseCatalogLine reads "name, class, count". Any line that does not yield a
// valid item is reported through the error; callers skip it.
func ParseCatalogLine(line string) (*Item, error) {
	fields := strings.Split(line, catalogSeparator)
	if len(fields) != catalogFieldCount {
		return nil, ErrMalformed
	}

	name := strings.TrimSpace(fields[0])
	if name == "" {
		return nil, ErrEmptyName
	}

	class, err := ParseClass(fields[1])
	if err != nil {
		return nil, err
	}

	count, err := strconv.Atoi(strings.TrimSpace(fields[2]))
	if err != nil {
		return nil, ErrInvalidStock
	}

	return NewItem(name, class, count)
}

// AvailableUnits never reports less than zero, even if past races over-admitted.
func AvailableUnits(stock, activeRentals int) int {
	available := stock - activeRentals
	if available < 0 {
		return 0
	}
	return available
}

package shared

import (
	"fmt"
	"math"
	"sort"
)

// Stock maps good name to a non-negative unit count.
// It backs raw materials, finished goods, market shelves and customer inventories.
type Stock struct {
	holder string
	units  map[string]int
}

// NewStock creates an empty stock owned by holder (used in error messages)
func NewStock(holder string) *Stock {
	return &Stock{
		holder: holder,
		units:  make(map[string]int),
	}
}

// Units gets units of a good (0 if not present)
func (s *Stock) Units(good string) int {
	return s.units[good]
}

// Has reports whether the good has an entry, even one at zero units
func (s *Stock) Has(good string) bool {
	_, ok := s.units[good]
	return ok
}

// CanAdd checks a deposit without performing it. The count of a good may not exceed math.MaxInt.
func (s *Stock) CanAdd(good string, units int) error {
	if good == "" {
		return NewInvalidInputError("good", "good name cannot be empty")
	}
	if units <= 0 {
		return NewInvalidInputError("amount", fmt.Sprintf("amount must be greater than zero, got %d", units))
	}
	if held := s.units[good]; units > math.MaxInt-held {
		return NewInvalidInputError("amount",
			fmt.Sprintf("%s cannot hold %d more %s on top of %d", s.holder, units, good, held))
	}
	return nil
}

// Add puts units of a good into stock, creating the entry if absent
func (s *Stock) Add(good string, units int) error {
	if err := s.CanAdd(good, units); err != nil {
		return err
	}
	s.units[good] += units
	return nil
}

// CanRemove checks a withdrawal without performing it
func (s *Stock) CanRemove(good string, units int) error {
	if available := s.units[good]; available < units {
		return NewInsufficientStockError(s.holder, good, units, available)
	}
	return nil
}

// Remove withdraws units, keeping the entry at zero
func (s *Stock) Remove(good string, units int) error {
	if err := s.CanRemove(good, units); err != nil {
		return err
	}
	s.units[good] -= units
	return nil
}

// Discard destroys units and drops the entry once it reaches zero
func (s *Stock) Discard(good string, units int) error {
	if units <= 0 {
		return NewInvalidInputError("amount", fmt.Sprintf("amount must be greater than zero, got %d", units))
	}
	if !s.Has(good) {
		return NewProductUnavailableError(s.holder, good)
	}
	if err := s.Remove(good, units); err != nil {
		return err
	}
	if s.units[good] == 0 {
		delete(s.units, good)
	}
	return nil
}

// Goods returns good names in alphabetical order
func (s *Stock) Goods() []string {
	goods := make([]string, 0, len(s.units))
	for good := range s.units {
		goods = append(goods, good)
	}
	sort.Strings(goods)
	return goods
}

// Snapshot returns a copy of the unit counts
func (s *Stock) Snapshot() map[string]int {
	snapshot := make(map[string]int, len(s.units))
	for good, units := range s.units {
		snapshot[good] = units
	}
	return snapshot
}

// Total counts all units across goods
func (s *Stock) Total() int {
	total := 0
	for _, units := range s.units {
		total += units
	}
	return total
}

func (s *Stock) String() string {
	return fmt.Sprintf("Stock(%s, %d goods, %d units)", s.holder, len(s.units), s.Total())
}

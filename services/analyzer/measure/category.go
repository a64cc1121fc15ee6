package measure

import (
	"errors"
	"strings"
)

// Category classifies a drawn shape and drives whether the floor multiplier
// applies (buildings only).
type Category string

const (
	CategoryBoundary Category = "boundary"
	CategoryBuilding Category = "building"
	CategoryField    Category = "field"
	CategoryParking  Category = "parking"
	CategoryOutdoor  Category = "outdoor"
)

// Categories lists all categories in a stable order for summaries and
// exports.
var Categories = []Category{
	CategoryBoundary,
	CategoryBuilding,
	CategoryField,
	CategoryParking,
	CategoryOutdoor,
}

// ErrUnknownCategory is returned for category tags outside the closed set.
var ErrUnknownCategory = errors.New("measure: unknown category")

// ParseCategory maps a category tag from the drawing surface onto the closed
// set, case-insensitively.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", ErrUnknownCategory
	}
	return c, nil
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryBoundary, CategoryBuilding, CategoryField, CategoryParking, CategoryOutdoor:
		return true
	}
	return false
}

// AppliesFloors reports whether total area scales with the floor count.
func (c Category) AppliesFloors() bool {
	return c == CategoryBuilding
}

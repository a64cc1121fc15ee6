package measure

import "errors"

// ErrInvalidFloorCount is returned for floor counts below 1.
var ErrInvalidFloorCount = errors.New("measure: floor count must be a positive integer")

// TotalBuildingArea scales a building footprint by its floor count. Pure
// function; the caller persists the result onto the record.
func TotalBuildingArea(footprintSqm float64, floors int) (float64, error) {
	if floors < 1 {
		return 0, ErrInvalidFloorCount
	}
	return footprintSqm * float64(floors), nil
}

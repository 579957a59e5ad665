package units

import "fmt"

// UndefinedUnitError is returned when a unit name is not known to the registry.
type UndefinedUnitError struct {
	Name string
}

func (e *UndefinedUnitError) Error() string {
	return fmt.Sprintf("'%s' is not defined in the unit registry", e.Name)
}

// DimensionalityError is returned when two units do not share a dimension.
type DimensionalityError struct {
	From, To       string
	FromDim, ToDim Dimension
}

func (e *DimensionalityError) Error() string {
	return fmt.Sprintf("Cannot convert from '%s' (%s) to '%s' (%s)", e.From, e.FromDim, e.To, e.ToDim)
}

// DuplicateUnitError is returned by Register when a name or alias is taken.
type DuplicateUnitError struct {
	Name string
}

func (e *DuplicateUnitError) Error() string {
	return fmt.Sprintf("unit '%s' is already defined", e.Name)
}

// InvalidUnitError is returned by Register for a unit with an unusable factor.
type InvalidUnitError struct {
	Name   string
	Factor float64
}

func (e *InvalidUnitError) Error() string {
	return fmt.Sprintf("unit '%s' has invalid factor %v", e.Name, e.Factor)
}

package units

import (
	"fmt"
	"math"
	"sync"

	gounits "github.com/bcicen/go-units"
)

// go-units keeps one process-wide unit table, so units this package adds to
// it are registered once and shared by every Registry.
var (
	libMu    sync.Mutex
	libUnits = make(map[string]gounits.Unit)
	libBases = make(map[Dimension]gounits.Unit)
)

// libBaseNames are the go-units names of the SI base unit of each dimension.
var libBaseNames = map[Dimension]string{
	dimLength:      "meter",
	dimMass:        "kilogram",
	dimTime:        "second",
	dimTemperature: "kelvin",
	dimArea:        "square meter",
	dimVolume:      "cubic meter",
	dimSpeed:       "meter per second",
	dimPressure:    "pascal",
	dimEnergy:      "joule",
}

// factorTolerance is the relative error allowed between a go-units
// definition and the factor a Unit declares.
const factorTolerance = 1e-9

// bindLibUnit returns the go-units unit that carries out conversions for u.
// Affine units must be predefined by go-units. A linear unit uses the
// go-units definition of the same name when it agrees with u.Factor,
// otherwise it is added to go-units with a ratio conversion to the base
// unit of its dimension.
func bindLibUnit(u Unit) (gounits.Unit, error) {
	libMu.Lock()
	defer libMu.Unlock()

	if u.Affine {
		lu, err := gounits.Find(u.Name)
		if err != nil {
			return gounits.Unit{}, fmt.Errorf("affine unit '%s' is not provided by go-units: %w", u.Name, err)
		}
		base := baseUnit(u.Dim)
		if _, err := gounits.ConvertFloat(0, lu, base); err != nil {
			return gounits.Unit{}, fmt.Errorf("affine unit '%s' does not convert to %s: %w", u.Name, base.Name, err)
		}
		return lu, nil
	}

	base := baseUnit(u.Dim)
	if lu, err := gounits.Find(u.Name); err == nil && agrees(lu, base, u.Factor) {
		return lu, nil
	}

	key := fmt.Sprintf("smartconv:%s:%v", u.Name, u.Factor)
	if lu, ok := libUnits[key]; ok {
		return lu, nil
	}
	lu := gounits.NewUnit(key, key)
	gounits.NewRatioConversion(lu, base, u.Factor)
	libUnits[key] = lu
	return lu, nil
}

// baseUnit must be called with libMu held.
func baseUnit(dim Dimension) gounits.Unit {
	if base, ok := libBases[dim]; ok {
		return base
	}
	var base gounits.Unit
	if name, ok := libBaseNames[dim]; ok {
		if lu, err := gounits.Find(name); err == nil {
			base = lu
		}
	}
	if base.Name == "" {
		key := "smartconv:base:" + dim.String()
		base = gounits.NewUnit(key, key)
	}
	libBases[dim] = base
	return base
}

func agrees(lu, base gounits.Unit, factor float64) bool {
	v, err := gounits.ConvertFloat(1, lu, base)
	if err != nil {
		return false
	}
	return math.Abs(v.Float()-factor) <= factorTolerance*math.Abs(factor)
}

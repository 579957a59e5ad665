package units

var (
	dimLength      = Dim(int(Length), 1)
	dimMass        = Dim(int(Mass), 1)
	dimTime        = Dim(int(Time), 1)
	dimTemperature = Dim(int(Temperature), 1)
	dimArea        = Dim(int(Length), 2)
	dimVolume      = Dim(int(Length), 3)
	dimSpeed       = Dim(int(Length), 1, int(Time), -1)
	dimPressure    = Dim(int(Mass), 1, int(Length), -1, int(Time), -2)
	dimEnergy      = Dim(int(Mass), 1, int(Length), 2, int(Time), -2)
)

const (
	usGallon   = 3.785411784e-3 // m^3
	poundForce = 4.4482216152605
	squareInch = 0.0254 * 0.0254
)

// defaultUnits covers every unit offered by the converter catalog. Factors
// pin each linear unit to its SI base; go-units definitions that disagree are
// replaced by these.
var defaultUnits = []Unit{
	// length, metre
	{Name: "meter", Aliases: []string{"m", "metre", "meters"}, Dim: dimLength, Factor: 1},
	{Name: "kilometer", Aliases: []string{"km", "kilometre", "kilometers"}, Dim: dimLength, Factor: 1000},
	{Name: "centimeter", Aliases: []string{"cm", "centimetre"}, Dim: dimLength, Factor: 0.01},
	{Name: "millimeter", Aliases: []string{"mm", "millimetre"}, Dim: dimLength, Factor: 0.001},
	{Name: "mile", Aliases: []string{"mi", "miles"}, Dim: dimLength, Factor: 1609.344},
	{Name: "yard", Aliases: []string{"yd"}, Dim: dimLength, Factor: 0.9144},
	{Name: "foot", Aliases: []string{"ft", "feet"}, Dim: dimLength, Factor: 0.3048},
	{Name: "inch", Aliases: []string{"in", "inches"}, Dim: dimLength, Factor: 0.0254},

	// mass, kilogram
	{Name: "gram", Aliases: []string{"g", "grams"}, Dim: dimMass, Factor: 0.001},
	{Name: "kilogram", Aliases: []string{"kg", "kilograms"}, Dim: dimMass, Factor: 1},
	{Name: "pound", Aliases: []string{"lb", "lbs", "pounds"}, Dim: dimMass, Factor: 0.45359237},
	{Name: "ounce", Aliases: []string{"oz"}, Dim: dimMass, Factor: 0.45359237 / 16},
	{Name: "tonne", Aliases: []string{"t", "metric_ton"}, Dim: dimMass, Factor: 1000},

	// time, second
	{Name: "second", Aliases: []string{"s", "sec", "seconds"}, Dim: dimTime, Factor: 1},
	{Name: "minute", Aliases: []string{"min", "minutes"}, Dim: dimTime, Factor: 60},
	{Name: "hour", Aliases: []string{"h", "hr", "hours"}, Dim: dimTime, Factor: 3600},
	{Name: "day", Aliases: []string{"d", "days"}, Dim: dimTime, Factor: 86400},
	{Name: "week", Aliases: []string{"weeks"}, Dim: dimTime, Factor: 604800},

	// temperature, scales from go-units
	{Name: "kelvin", Aliases: []string{"K", "degK"}, Dim: dimTemperature, Affine: true},
	{Name: "celsius", Aliases: []string{"degC", "degree_Celsius"}, Dim: dimTemperature, Affine: true},
	{Name: "fahrenheit", Aliases: []string{"degF", "degree_Fahrenheit"}, Dim: dimTemperature, Affine: true},

	// pressure, pascal
	{Name: "pascal", Aliases: []string{"Pa"}, Dim: dimPressure, Factor: 1},
	{Name: "kilopascal", Aliases: []string{"kPa"}, Dim: dimPressure, Factor: 1000},
	{Name: "bar", Dim: dimPressure, Factor: 1e5},
	{Name: "psi", Dim: dimPressure, Factor: poundForce / squareInch},
	{Name: "atmosphere", Aliases: []string{"atm"}, Dim: dimPressure, Factor: 101325},

	// area, square metre
	{Name: "square meter", Aliases: []string{"square_meter", "m^2", "m**2"}, Dim: dimArea, Factor: 1},
	{Name: "square kilometer", Aliases: []string{"square_kilometer", "km^2"}, Dim: dimArea, Factor: 1e6},
	{Name: "hectare", Aliases: []string{"ha"}, Dim: dimArea, Factor: 1e4},
	{Name: "acre", Aliases: []string{"acres"}, Dim: dimArea, Factor: 4046.8564224},
	{Name: "square mile", Aliases: []string{"square_mile", "mi^2"}, Dim: dimArea, Factor: 1609.344 * 1609.344},
	{Name: "square foot", Aliases: []string{"square_foot", "ft^2"}, Dim: dimArea, Factor: 0.3048 * 0.3048},

	// energy, joule
	{Name: "joule", Aliases: []string{"J"}, Dim: dimEnergy, Factor: 1},
	{Name: "kilojoule", Aliases: []string{"kJ"}, Dim: dimEnergy, Factor: 1000},
	{Name: "calorie", Aliases: []string{"cal"}, Dim: dimEnergy, Factor: 4.184},
	{Name: "kilocalorie", Aliases: []string{"kcal"}, Dim: dimEnergy, Factor: 4184},
	{Name: "kilowatt-hour", Aliases: []string{"kWh", "kilowatt_hour"}, Dim: dimEnergy, Factor: 3.6e6},

	// speed, metre per second
	{Name: "meter/second", Aliases: []string{"m/s", "meter_per_second"}, Dim: dimSpeed, Factor: 1},
	{Name: "kilometer/hour", Aliases: []string{"km/h", "kph", "kilometer_per_hour"}, Dim: dimSpeed, Factor: 1000.0 / 3600.0},
	{Name: "mile/hour", Aliases: []string{"mph", "mile_per_hour"}, Dim: dimSpeed, Factor: 0.44704},
	{Name: "knot", Aliases: []string{"kn"}, Dim: dimSpeed, Factor: 1852.0 / 3600.0},

	// volume, cubic metre
	{Name: "cubic meter", Aliases: []string{"cubic_meter", "m^3"}, Dim: dimVolume, Factor: 1},
	{Name: "liter", Aliases: []string{"l", "litre", "liters"}, Dim: dimVolume, Factor: 1e-3},
	{Name: "milliliter", Aliases: []string{"ml", "millilitre"}, Dim: dimVolume, Factor: 1e-6},
	{Name: "gallon", Aliases: []string{"gal"}, Dim: dimVolume, Factor: usGallon},
	{Name: "cup", Dim: dimVolume, Factor: usGallon / 16},
	{Name: "fluid ounce", Aliases: []string{"fluid_ounce", "floz", "fl oz"}, Dim: dimVolume, Factor: usGallon / 128},
}

// Default returns a registry loaded with the built-in units.
func Default() *Registry {
	r := New()
	for _, u := range defaultUnits {
		if err := r.Register(u); err != nil {
			panic(err)
		}
	}
	return r
}

package traffic

import "fmt"

// Dimension enumerates the columns a user can break the fatality rate
// down by. Dimensions map to typed accessors rather than stringly column
// lookups so an unsupported dimension is a compile-time or parse-time
// error, never a silent empty grouping.
type Dimension int

const (
	DimWeather Dimension = iota
	DimSpeedBucket
	DimMonth
	DimDrugResult
	DimImpairment
	DimDistraction
	DimVehicleMake
	DimHarmEvent
)

// dimensionInfo pairs a stable API key with the user-facing label shown
// in the dashboard's dimension selector.
type dimensionInfo struct {
	key      string
	label    string
	accessor func(*Record) string
}

var dimensions = map[Dimension]dimensionInfo{
	DimWeather:     {"weather", "Weather", func(r *Record) string { return r.Weather }},
	DimSpeedBucket: {"speed", "Speed", func(r *Record) string { return r.SpeedBucket }},
	DimMonth:       {"month", "Month", func(r *Record) string { return r.MonthName }},
	DimDrugResult:  {"drugs", "Under the influence of drugs", func(r *Record) string { return r.DrugResult }},
	DimImpairment:  {"impairment", "Driving impaired", func(r *Record) string { return r.Impairment }},
	DimDistraction: {"distraction", "Driving distracted", func(r *Record) string { return r.Distraction }},
	DimVehicleMake: {"make", "Vehicle Make", func(r *Record) string { return r.VehicleMake }},
	DimHarmEvent:   {"accident", "Accident Type", func(r *Record) string { return r.HarmEvent }},
}

// AllDimensions returns the supported dimensions in selector order.
func AllDimensions() []Dimension {
	return []Dimension{
		DimWeather, DimSpeedBucket, DimMonth, DimDrugResult,
		DimImpairment, DimDistraction, DimVehicleMake, DimHarmEvent,
	}
}

// Key returns the stable API identifier for the dimension.
func (d Dimension) Key() string {
	return dimensions[d].key
}

// Label returns the display label for the dimension selector.
func (d Dimension) Label() string {
	return dimensions[d].label
}

// Value extracts this dimension's category value from a record. Empty
// string means the value is null for the row.
func (d Dimension) Value(r *Record) string {
	return dimensions[d].accessor(r)
}

func (d Dimension) String() string {
	return d.Key()
}

// ParseDimension resolves an API key to its dimension.
func ParseDimension(key string) (Dimension, error) {
	for _, d := range AllDimensions() {
		if dimensions[d].key == key {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q", key)
}

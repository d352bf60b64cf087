package traffic

// FatalInjuryCode is the injury-severity code FARS assigns to a fatal
// injury. The high-severity flag is derived from it once, at build time.
const FatalInjuryCode = 4

// Pedestrian is the substitute category written into vehicle-keyed
// columns that came back null from the outer joins. Pedestrian records
// simply have no vehicle row, so this is a naming convention rather than
// a verified pedestrian indicator; the aggregator filters it out of
// every dimension breakdown.
const Pedestrian = "Pedestrian"

// Record is one denormalized row of the Traffic table: one
// (state, case, vehicle, person) combination after the six-way merge and
// recode. Empty string means the value was null on its side of a join
// and was not subject to the Pedestrian substitution.
type Record struct {
	State      string
	StateName  string
	CaseID     string
	VehicleNo  string
	PersonNo   string
	Age        string
	HourName   string
	HarmEvent  string
	CollManner string

	InjSeverityName string

	// Recoded categoricals. The five substitution columns (Impairment,
	// Distraction, VehicleMake, SpeedRaw, MonthName) are never empty
	// after recoding; null becomes Pedestrian.
	Weather     string
	MonthName   string
	DrugResult  string
	Impairment  string
	Distraction string
	VehicleMake string

	// SpeedRaw keeps the recoded string form of the travel-speed column.
	// Speed and SpeedBucket are set only when SpeedRaw parsed as a
	// non-negative number inside the binning range.
	SpeedRaw    string
	Speed       float64
	SpeedKnown  bool
	SpeedBucket string

	// Fatal is 1 iff the injury-severity code equals FatalInjuryCode.
	// FatalKnown is false when the person side of the join was missing,
	// in which case the row never contributes to an aggregation.
	Fatal      int
	FatalKnown bool
}

// Table is the immutable in-memory Traffic table. It is built once at
// startup and only ever read afterwards, so handlers share it without
// locking.
type Table struct {
	records []Record
}

// NewTable wraps a record slice. Callers must not mutate records after
// handing them over.
func NewTable(records []Record) *Table {
	return &Table{records: records}
}

// Records returns the underlying rows for read-only iteration.
func (t *Table) Records() []Record {
	return t.records
}

// Len returns the number of merged rows.
func (t *Table) Len() int {
	return len(t.records)
}

package dataset

// Source column names. Exact file and column names are a fixed external
// contract with the upstream FARS-style export; changing them means
// changing the join keys and recode mappings below in lockstep.
const (
	ColState       = "STATE"
	ColStateName   = "STATENAME"
	ColCase        = "ST_CASE"
	ColVehicleNo   = "VEH_NO"
	ColPersonNo    = "PER_NO"
	ColAge         = "AGE"
	ColHourName    = "HOURNAME"
	ColHarmEvent   = "HARM_EVNAME"
	ColCollManner  = "MAN_COLLNAME"
	ColInjSeverity = "INJ_SEV"
	ColInjSevName  = "INJ_SEVNAME"
	ColImpairment  = "DRIMPAIRNAME"
	ColDistraction = "DRDISTRACTNAME"
	ColVehicleMake = "MAKENAME"
	ColTravelSpeed = "TRAV_SP"
	ColMonthName   = "MONTHNAME"
	ColDrugResult  = "DRUGRESNAME"
	ColWeatherName = "WEATHERNAME"
)

// Source names the six inputs and their contract columns. RequiredCols
// is validated at parse time; a missing column aborts startup.
type Source struct {
	Name         string
	RequiredCols []string
}

// Sources lists the six inputs in merge order: person is the join base,
// then the (case, vehicle)-keyed sources, then drugs on
// (case, vehicle, person), then accident on (case).
var Sources = []Source{
	{Name: "person", RequiredCols: []string{
		ColState, ColStateName, ColCase, ColVehicleNo, ColPersonNo,
		ColAge, ColHourName, ColHarmEvent, ColCollManner,
		ColInjSeverity, ColInjSevName,
	}},
	{Name: "drimpair", RequiredCols: []string{ColCase, ColVehicleNo, ColImpairment}},
	{Name: "distract", RequiredCols: []string{ColCase, ColVehicleNo, ColDistraction}},
	{Name: "vehicle", RequiredCols: []string{ColCase, ColVehicleNo, ColVehicleMake, ColTravelSpeed, ColMonthName}},
	{Name: "drugs", RequiredCols: []string{ColCase, ColVehicleNo, ColPersonNo, ColDrugResult}},
	{Name: "accident", RequiredCols: []string{ColCase, ColWeatherName}},
}

var caseVehicleKey = []string{ColCase, ColVehicleNo}
var caseVehiclePersonKey = []string{ColCase, ColVehicleNo, ColPersonNo}
var caseKey = []string{ColCase}

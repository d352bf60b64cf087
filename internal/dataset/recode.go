package dataset

import (
	"fmt"
	"strconv"
	"strings"

	"fatalview/adapters/tabular"
	"fatalview/domain/traffic"
)

// Consolidation tables. Each collapses several raw labels into one
// canonical category so thin near-duplicate groups do not fragment the
// breakdowns. These are static configuration, not per-deployment knobs.
var (
	weatherRecode = map[string]string{
		"Not Reported":        "Unknown",
		"Other":               "Unknown",
		"Reported as Unknown": "Unknown",
	}

	drugResultRecode = map[string]string{
		"Test Not Given":                          "Negative / Not Tested",
		"Tested, No Drugs Found/Negative":         "Negative / Not Tested",
		"Not Reported":                            "Negative / Not Tested",
		"Reported as Unknown if Tested for Drugs": "Negative / Not Tested",
	}

	impairmentRecode = map[string]string{
		"Physical Impairment - No Details": "Physical Impairment",
		"Other Physical Impairment":        "Physical Impairment",
		"Not Reported":                     "Unknown",
		"Reported as Unknown if Impaired":  "Unknown",
	}

	distractionRecode = map[string]string{
		"Inattention (Inattentive), Details Unknown": "Distracted: Unknown",
		"Distraction (Distracted), Details Unknown":  "Distracted: Unknown",
		"Distraction/Inattention":                    "Distracted: Unknown",
		"Careless/Inattentive":                       "Distracted: Unknown",
		"Not Reported":                               "Unknown",
		"Reported as Unknown if Distracted":          "Unknown",
	}

	speedRecode = map[string]string{
		"Not Reported":        "Unknown",
		"Reported as Unknown": "Unknown",
	}
)

// nonNumericSpeeds are the recoded speed strings that carry no parsable
// speed. Rows with one of these have no speed bucket and drop out of the
// speed dimension; every other dimension is unaffected.
var nonNumericSpeeds = map[string]bool{
	"Not Reported":                       true,
	"Reported as Unknown":                true,
	"Unknown":                            true,
	traffic.Pedestrian:                   true,
	"Stopped Motor Vehicle In Transport": true,
}

const speedBinWidth = 10
const speedBinMax = 100

// Recode turns the merged wide table into the typed Traffic records.
// It is a pure single pass: null substitution for the five vehicle-keyed
// columns, label consolidation, speed normalization and bucketing, and
// the one-time high-severity derivation.
func Recode(merged *tabular.TableData) []traffic.Record {
	records := make([]traffic.Record, 0, len(merged.Rows))
	for _, row := range merged.Rows {
		rec := traffic.Record{
			State:      cell(row, ColState),
			StateName:  cell(row, ColStateName),
			CaseID:     cell(row, ColCase),
			VehicleNo:  cell(row, ColVehicleNo),
			PersonNo:   cell(row, ColPersonNo),
			Age:        cell(row, ColAge),
			HourName:   cell(row, ColHourName),
			HarmEvent:  cell(row, ColHarmEvent),
			CollManner: cell(row, ColCollManner),

			InjSeverityName: cell(row, ColInjSevName),
		}

		rec.Weather = applyRecode(cell(row, ColWeatherName), weatherRecode)
		rec.DrugResult = applyRecode(cell(row, ColDrugResult), drugResultRecode)

		// The five vehicle-keyed columns get the Pedestrian substitute
		// when null; pedestrian person rows have no vehicle record.
		rec.Impairment = applyRecode(pedestrianDefault(row, ColImpairment), impairmentRecode)
		rec.Distraction = applyRecode(pedestrianDefault(row, ColDistraction), distractionRecode)
		rec.VehicleMake = pedestrianDefault(row, ColVehicleMake)
		rec.MonthName = pedestrianDefault(row, ColMonthName)
		rec.SpeedRaw = applyRecode(pedestrianDefault(row, ColTravelSpeed), speedRecode)

		if speed, ok := parseSpeed(rec.SpeedRaw); ok {
			rec.Speed = speed
			rec.SpeedKnown = true
			rec.SpeedBucket = speedBucket(speed)
		}

		if code, err := strconv.Atoi(cell(row, ColInjSeverity)); err == nil {
			rec.FatalKnown = true
			if code == traffic.FatalInjuryCode {
				rec.Fatal = 1
			}
		}

		records = append(records, rec)
	}
	return records
}

// cell reads a column treating both an absent key and an empty string
// as null.
func cell(row tabular.RowData, column string) string {
	return row[column]
}

func pedestrianDefault(row tabular.RowData, column string) string {
	if value := row[column]; value != "" {
		return value
	}
	return traffic.Pedestrian
}

func applyRecode(value string, table map[string]string) string {
	if canonical, ok := table[value]; ok {
		return canonical
	}
	return value
}

// parseSpeed strips the unit suffix and parses the remainder as a
// non-negative number. Known non-numeric tokens map to undefined.
func parseSpeed(raw string) (float64, bool) {
	if raw == "" || nonNumericSpeeds[raw] {
		return 0, false
	}
	trimmed := strings.TrimSpace(strings.TrimSuffix(strings.ToUpper(raw), "MPH"))
	speed, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || speed < 0 {
		return 0, false
	}
	return speed, true
}

// speedBucket assigns the width-10 half-open bin label, [0,10) through
// [90,100] with the top bin closed. Out-of-range speeds get no bucket.
func speedBucket(speed float64) string {
	if speed < 0 || speed > speedBinMax {
		return ""
	}
	low := int(speed) / speedBinWidth * speedBinWidth
	if low == speedBinMax {
		low = speedBinMax - speedBinWidth
	}
	return fmt.Sprintf("%d-%d", low, low+speedBinWidth)
}

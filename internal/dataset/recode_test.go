package dataset

import (
	"testing"

	"fatalview/adapters/tabular"
	"fatalview/domain/traffic"
)

func recodeOne(t *testing.T, row tabular.RowData) traffic.Record {
	t.Helper()
	records := Recode(&tabular.TableData{Rows: []tabular.RowData{row}})
	if len(records) != 1 {
		t.Fatalf("Expected 1 record, got %d", len(records))
	}
	return records[0]
}

func TestRecode_WeatherConsolidation(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Other", "Unknown"},
		{"Not Reported", "Unknown"},
		{"Reported as Unknown", "Unknown"},
		{"Clear", "Clear"},
		{"Rain", "Rain"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			rec := recodeOne(t, tabular.RowData{ColWeatherName: tt.raw})
			if rec.Weather != tt.want {
				t.Errorf("Weather %q: expected %q, got %q", tt.raw, tt.want, rec.Weather)
			}
		})
	}
}

func TestRecode_PedestrianSubstitution(t *testing.T) {
	// A person row with no vehicle-keyed columns at all, as produced by
	// an unmatched outer join.
	rec := recodeOne(t, tabular.RowData{
		ColCase:     "10001",
		ColPersonNo: "1",
	})

	if rec.Impairment != traffic.Pedestrian {
		t.Errorf("Null impairment: expected Pedestrian, got %q", rec.Impairment)
	}
	if rec.Distraction != traffic.Pedestrian {
		t.Errorf("Null distraction: expected Pedestrian, got %q", rec.Distraction)
	}
	if rec.VehicleMake != traffic.Pedestrian {
		t.Errorf("Null make: expected Pedestrian, got %q", rec.VehicleMake)
	}
	if rec.MonthName != traffic.Pedestrian {
		t.Errorf("Null month: expected Pedestrian, got %q", rec.MonthName)
	}
	if rec.SpeedRaw != traffic.Pedestrian {
		t.Errorf("Null speed: expected Pedestrian, got %q", rec.SpeedRaw)
	}
	if rec.SpeedKnown {
		t.Error("Pedestrian speed must stay undefined")
	}

	// Columns outside the substitution list stay null.
	if rec.Weather != "" || rec.HarmEvent != "" {
		t.Errorf("Non-substitution columns must stay null, got weather=%q harm=%q", rec.Weather, rec.HarmEvent)
	}
}

func TestRecode_SpeedParsing(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   float64
		known  bool
		bucket string
	}{
		{"plain mph", "35 MPH", 35, true, "30-40"},
		{"zero", "0 MPH", 0, true, "0-10"},
		{"bin lower bound", "30 MPH", 30, true, "30-40"},
		{"just below bin", "29 MPH", 29, true, "20-30"},
		{"top bin closed", "100 MPH", 100, true, "90-100"},
		{"above range has no bucket", "120 MPH", 120, true, ""},
		{"not reported", "Not Reported", 0, false, ""},
		{"unknown", "Unknown", 0, false, ""},
		{"stopped vehicle", "Stopped Motor Vehicle In Transport", 0, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := recodeOne(t, tabular.RowData{ColTravelSpeed: tt.raw})
			if rec.SpeedKnown != tt.known {
				t.Fatalf("SpeedKnown: expected %v, got %v", tt.known, rec.SpeedKnown)
			}
			if tt.known && rec.Speed != tt.want {
				t.Errorf("Speed: expected %v, got %v", tt.want, rec.Speed)
			}
			if rec.SpeedBucket != tt.bucket {
				t.Errorf("Bucket: expected %q, got %q", tt.bucket, rec.SpeedBucket)
			}
		})
	}
}

func TestRecode_SpeedUnknownConsolidation(t *testing.T) {
	rec := recodeOne(t, tabular.RowData{ColTravelSpeed: "Not Reported"})
	if rec.SpeedRaw != "Unknown" {
		t.Errorf("Expected speed string consolidated to Unknown, got %q", rec.SpeedRaw)
	}
}

func TestRecode_DrugResultConsolidation(t *testing.T) {
	for _, raw := range []string{
		"Test Not Given",
		"Tested, No Drugs Found/Negative",
		"Not Reported",
		"Reported as Unknown if Tested for Drugs",
	} {
		rec := recodeOne(t, tabular.RowData{ColDrugResult: raw})
		if rec.DrugResult != "Negative / Not Tested" {
			t.Errorf("Drug result %q: expected Negative / Not Tested, got %q", raw, rec.DrugResult)
		}
	}
}

func TestRecode_ImpairmentConsolidation(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Physical Impairment - No Details", "Physical Impairment"},
		{"Other Physical Impairment", "Physical Impairment"},
		{"Not Reported", "Unknown"},
		{"Reported as Unknown if Impaired", "Unknown"},
		{"None/Apparently Normal", "None/Apparently Normal"},
	}
	for _, tt := range tests {
		rec := recodeOne(t, tabular.RowData{ColImpairment: tt.raw})
		if rec.Impairment != tt.want {
			t.Errorf("Impairment %q: expected %q, got %q", tt.raw, tt.want, rec.Impairment)
		}
	}
}

func TestRecode_DistractionConsolidation(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Inattention (Inattentive), Details Unknown", "Distracted: Unknown"},
		{"Distraction (Distracted), Details Unknown", "Distracted: Unknown"},
		{"Distraction/Inattention", "Distracted: Unknown"},
		{"Careless/Inattentive", "Distracted: Unknown"},
		{"Not Reported", "Unknown"},
		{"Reported as Unknown if Distracted", "Unknown"},
		{"Not Distracted", "Not Distracted"},
	}
	for _, tt := range tests {
		rec := recodeOne(t, tabular.RowData{ColDistraction: tt.raw})
		if rec.Distraction != tt.want {
			t.Errorf("Distraction %q: expected %q, got %q", tt.raw, tt.want, rec.Distraction)
		}
	}
}

func TestRecode_SeverityDerivation(t *testing.T) {
	tests := []struct {
		name       string
		injSev     string
		fatal      int
		fatalKnown bool
	}{
		{"fatal code", "4", 1, true},
		{"non-fatal code", "2", 0, true},
		{"zero code", "0", 0, true},
		{"missing code", "", 0, false},
		{"non-numeric code", "Unknown", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := tabular.RowData{}
			if tt.injSev != "" {
				row[ColInjSeverity] = tt.injSev
			}
			rec := recodeOne(t, row)
			if rec.FatalKnown != tt.fatalKnown {
				t.Fatalf("FatalKnown: expected %v, got %v", tt.fatalKnown, rec.FatalKnown)
			}
			if rec.Fatal != tt.fatal {
				t.Errorf("Fatal: expected %d, got %d", tt.fatal, rec.Fatal)
			}
		})
	}
}

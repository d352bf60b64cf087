package dataset

import (
	"testing"

	"fatalview/adapters/tabular"
)

func TestFullOuterJoin_MatchedRows(t *testing.T) {
	left := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColHarmEvent},
		Rows: []tabular.RowData{
			{ColCase: "10001", ColVehicleNo: "1", ColHarmEvent: "Rollover"},
		},
	}
	right := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColVehicleMake},
		Rows: []tabular.RowData{
			{ColCase: "10001", ColVehicleNo: "1", ColVehicleMake: "Ford"},
		},
	}

	merged := FullOuterJoin(left, right, caseVehicleKey)

	if len(merged.Rows) != 1 {
		t.Fatalf("Expected 1 merged row, got %d", len(merged.Rows))
	}
	row := merged.Rows[0]
	if row[ColHarmEvent] != "Rollover" || row[ColVehicleMake] != "Ford" {
		t.Errorf("Matched row missing columns from a side: %v", row)
	}
}

func TestFullOuterJoin_UnmatchedLeftSurvivesWithNulls(t *testing.T) {
	// A pedestrian person row: no vehicle-side match. It must survive
	// the join with the vehicle columns null (absent), never be dropped.
	left := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColPersonNo},
		Rows: []tabular.RowData{
			{ColCase: "10001", ColVehicleNo: "0", ColPersonNo: "1"},
		},
	}
	right := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColVehicleMake},
		Rows: []tabular.RowData{
			{ColCase: "20002", ColVehicleNo: "1", ColVehicleMake: "Ford"},
		},
	}

	merged := FullOuterJoin(left, right, caseVehicleKey)

	if len(merged.Rows) != 2 {
		t.Fatalf("Expected both unmatched rows to survive, got %d", len(merged.Rows))
	}

	var pedestrian tabular.RowData
	for _, row := range merged.Rows {
		if row[ColCase] == "10001" {
			pedestrian = row
		}
	}
	if pedestrian == nil {
		t.Fatal("Unmatched left row was dropped")
	}
	if _, present := pedestrian[ColVehicleMake]; present {
		t.Errorf("Unmatched left row should have null vehicle columns, got %v", pedestrian)
	}
}

func TestFullOuterJoin_UnmatchedRightSurvives(t *testing.T) {
	left := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColPersonNo},
		Rows: []tabular.RowData{
			{ColCase: "10001", ColVehicleNo: "1", ColPersonNo: "1"},
		},
	}
	right := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColImpairment},
		Rows: []tabular.RowData{
			{ColCase: "10001", ColVehicleNo: "1", ColImpairment: "None/Apparently Normal"},
			{ColCase: "30003", ColVehicleNo: "2", ColImpairment: "Asleep or Fatigued"},
		},
	}

	merged := FullOuterJoin(left, right, caseVehicleKey)

	if len(merged.Rows) != 2 {
		t.Fatalf("Expected 2 rows, got %d", len(merged.Rows))
	}
	var rightOnly tabular.RowData
	for _, row := range merged.Rows {
		if row[ColCase] == "30003" {
			rightOnly = row
		}
	}
	if rightOnly == nil {
		t.Fatal("Unmatched right row was dropped")
	}
	if _, present := rightOnly[ColPersonNo]; present {
		t.Errorf("Unmatched right row should have null person columns, got %v", rightOnly)
	}
}

func TestFullOuterJoin_DuplicateKeysCrossProduct(t *testing.T) {
	left := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColPersonNo},
		Rows: []tabular.RowData{
			{ColCase: "10001", ColVehicleNo: "1", ColPersonNo: "1"},
			{ColCase: "10001", ColVehicleNo: "1", ColPersonNo: "2"},
		},
	}
	right := &tabular.TableData{
		Headers: []string{ColCase, ColVehicleNo, ColImpairment},
		Rows: []tabular.RowData{
			{ColCase: "10001", ColVehicleNo: "1", ColImpairment: "None/Apparently Normal"},
		},
	}

	merged := FullOuterJoin(left, right, caseVehicleKey)

	if len(merged.Rows) != 2 {
		t.Fatalf("Expected one merged row per person, got %d", len(merged.Rows))
	}
	for _, row := range merged.Rows {
		if row[ColImpairment] != "None/Apparently Normal" {
			t.Errorf("Impairment not joined onto person row: %v", row)
		}
	}
}

func TestFullOuterJoin_LeftWinsSharedColumns(t *testing.T) {
	left := &tabular.TableData{
		Headers: []string{ColCase, ColStateName},
		Rows:    []tabular.RowData{{ColCase: "10001", ColStateName: "Alabama"}},
	}
	right := &tabular.TableData{
		Headers: []string{ColCase, ColStateName},
		Rows:    []tabular.RowData{{ColCase: "10001", ColStateName: "ALABAMA"}},
	}

	merged := FullOuterJoin(left, right, caseKey)

	if merged.Rows[0][ColStateName] != "Alabama" {
		t.Errorf("Left side should win shared columns, got %q", merged.Rows[0][ColStateName])
	}
}

func TestUnionHeaders(t *testing.T) {
	merged := FullOuterJoin(
		&tabular.TableData{Headers: []string{"A", "B"}},
		&tabular.TableData{Headers: []string{"B", "C"}},
		[]string{"B"},
	)
	want := []string{"A", "B", "C"}
	if len(merged.Headers) != len(want) {
		t.Fatalf("Expected headers %v, got %v", want, merged.Headers)
	}
	for i, h := range want {
		if merged.Headers[i] != h {
			t.Errorf("Header %d: expected %q, got %q", i, h, merged.Headers[i])
		}
	}
}

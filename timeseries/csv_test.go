package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,101
2020-01-03,102
2020-01-04,103
2020-01-05,104`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 5 {
		t.Errorf("Expected 5 observations, got %d", series.Len())
	}
	if len(series.Timestamps) != 5 {
		t.Errorf("Expected 5 timestamps, got %d", len(series.Timestamps))
	}

	expected := []float64{100, 101, 102, 103, 104}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVNamedColumn(t *testing.T) {
	csvData := `date,temp,load
2020-01-01,21.5,830
2020-01-02,22.1,845`

	opts := DefaultCSVOptions()
	opts.ValueColumn = "load"
	opts.DateColumn = "date"

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	if series.Len() != 2 {
		t.Fatalf("Expected 2 observations, got %d", series.Len())
	}
	if series.Values[0] != 830 || series.Values[1] != 845 {
		t.Errorf("Unexpected values: %v", series.Values)
	}
}

func TestLoadCSVWithNAValues(t *testing.T) {
	csvData := `y
100
NA
102
NaN
null

104`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}

	expected := []float64{100, 102, 104}
	if series.Len() != len(expected) {
		t.Fatalf("Expected %d observations, got %d", len(expected), series.Len())
	}
	for i, v := range expected {
		if series.Values[i] != v {
			t.Errorf("Value at index %d: expected %f, got %f", i, v, series.Values[i])
		}
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	csvData := `2020-01-01,100
2020-01-02,101`

	opts := DefaultCSVOptions()
	opts.HasHeader = false

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	if err != nil {
		t.Fatalf("Failed to load CSV: %v", err)
	}
	if series.Len() != 2 {
		t.Errorf("Expected 2 observations, got %d", series.Len())
	}
}

func TestLoadCSVEmpty(t *testing.T) {
	if _, err := LoadCSVFromReader(strings.NewReader("y\n"), nil); err == nil {
		t.Error("Expected error for CSV without data rows")
	}
}

func TestLoadFrameCSVFromReader(t *testing.T) {
	csvData := `region,temp,load
north,21.5,830
south,22.1,845
north,20.9,812`

	frame, err := LoadFrameCSVFromReader(strings.NewReader(csvData), nil)
	if err != nil {
		t.Fatalf("Failed to load frame: %v", err)
	}

	if frame.Rows() != 3 {
		t.Fatalf("Expected 3 rows, got %d", frame.Rows())
	}
	if len(frame.Columns) != 2 {
		t.Fatalf("Expected 2 numeric columns, got %v", frame.Columns)
	}

	labels, err := frame.LabelColumn("region")
	if err != nil {
		t.Fatalf("Expected region label column: %v", err)
	}
	if labels[1] != "south" {
		t.Errorf("Expected label 'south', got %q", labels[1])
	}

	load, err := frame.Column("load")
	if err != nil {
		t.Fatalf("Expected load column: %v", err)
	}
	if load[2] != 812 {
		t.Errorf("Expected load 812, got %f", load[2])
	}
}

func TestLoadFrameCSVMixedRow(t *testing.T) {
	csvData := `temp
21.5
oops`

	if _, err := LoadFrameCSVFromReader(strings.NewReader(csvData), nil); err == nil {
		t.Error("Expected error for non-numeric value in numeric column")
	}
}

func TestSaveCSVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "series.csv")

	s := New([]float64{1.5, 2.5, 3.5})
	s.Name = "v"
	if err := SaveCSV(s, path, true); err != nil {
		t.Fatalf("Failed to save CSV: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read back CSV: %v", err)
	}
	if !strings.HasPrefix(string(data), "index,v\n1,1.5\n") {
		t.Errorf("Unexpected CSV content:\n%s", data)
	}

	opts := DefaultCSVOptions()
	opts.ValueColumn = "v"
	loaded, err := LoadCSV(path, opts)
	if err != nil {
		t.Fatalf("Failed to reload CSV: %v", err)
	}
	if loaded.Len() != 3 || loaded.Values[2] != 3.5 {
		t.Errorf("Round trip mismatch: %v", loaded.Values)
	}
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	if !opts.HasHeader {
		t.Error("Default should expect a header")
	}
	if opts.Delimiter != ',' {
		t.Errorf("Default delimiter should be comma, got %q", opts.Delimiter)
	}
	if opts.DateFormat != "2006-01-02" {
		t.Errorf("Unexpected default date format %q", opts.DateFormat)
	}
}

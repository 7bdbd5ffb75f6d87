package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sartorproj/tswizard/errs"
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	ValueColumn string // Column name for values (default: last column)
	DateColumn  string // Column name for dates (optional)
	DateFormat  string // Date format (default: "2006-01-02")
	HasHeader   bool   // Whether CSV has a header row (default: true)
	Delimiter   rune   // Field delimiter (default: ',')
	SkipRows    int    // Number of rows to skip at start
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// LoadCSV loads a univariate series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVFromReader loads a univariate series from an io.Reader.
// Rows with a missing or unparseable value are skipped.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	header, records, err := readRecords(r, opts)
	if err != nil {
		return nil, err
	}

	valueIdx, dateIdx := -1, -1
	if len(header) > 0 {
		valueIdx = findColumn(header, opts.ValueColumn, []string{"y", "value", "Value"})
		dateIdx = findColumn(header, opts.DateColumn, []string{"ds", "date", "Date", "Month", "Year"})
	}
	if valueIdx < 0 {
		// Headerless or unnamed data: take the last column as values.
		if len(records) == 0 {
			return nil, fmt.Errorf("timeseries: no data rows in CSV: %w", errs.ErrShortSeries)
		}
		valueIdx = len(records[0]) - 1
		if dateIdx < 0 && valueIdx > 0 {
			dateIdx = 0
		}
	}

	var values []float64
	var timestamps []time.Time
	for _, record := range records {
		if valueIdx >= len(record) {
			continue
		}
		v, ok := parseValue(record[valueIdx])
		if !ok {
			continue
		}
		values = append(values, v)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, err := time.Parse(opts.DateFormat, cleanField(record[dateIdx])); err == nil {
				timestamps = append(timestamps, ts)
			}
		}
	}

	if len(values) == 0 {
		return nil, fmt.Errorf("timeseries: no valid values in CSV: %w", errs.ErrShortSeries)
	}

	s := &Series{Values: values, Name: opts.ValueColumn}
	if len(timestamps) == len(values) {
		s.Timestamps = timestamps
	}
	return s, nil
}

// LoadFrameCSV loads a feature table from a CSV file. Columns whose
// first data row parses as a number become numeric columns; all other
// columns become label columns.
func LoadFrameCSV(filename string, opts *CSVOptions) (*Frame, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadFrameCSVFromReader(file, opts)
}

// LoadFrameCSVFromReader loads a feature table from an io.Reader.
func LoadFrameCSVFromReader(r io.Reader, opts *CSVOptions) (*Frame, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	header, records, err := readRecords(r, opts)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("timeseries: no data rows in CSV: %w", errs.ErrShortSeries)
	}
	if len(header) == 0 {
		header = make([]string, len(records[0]))
		for i := range header {
			header[i] = "c" + strconv.Itoa(i)
		}
	}

	// Classify columns by probing the first row.
	numeric := make([]bool, len(header))
	for i := range header {
		if i < len(records[0]) {
			_, numeric[i] = parseValue(records[0][i])
		}
	}

	frame := &Frame{}
	for i, name := range header {
		if numeric[i] {
			frame.Columns = append(frame.Columns, name)
		}
	}

	labels := make(map[string][]string)
	for _, record := range records {
		row := make([]float64, 0, len(frame.Columns))
		for i, name := range header {
			if i >= len(record) {
				continue
			}
			if numeric[i] {
				v, ok := parseValue(record[i])
				if !ok {
					return nil, fmt.Errorf("timeseries: non-numeric value %q in column %q: %w",
						record[i], name, errs.ErrShapeMismatch)
				}
				row = append(row, v)
			} else {
				labels[name] = append(labels[name], cleanField(record[i]))
			}
		}
		frame.Data = append(frame.Data, row)
	}

	if len(labels) > 0 {
		frame.Labels = labels
	}
	return frame, nil
}

// SaveCSV saves a series to a CSV file. When the series carries
// timestamps they are written as a leading "ds" column, otherwise a
// 1-based index is written when includeIndex is set.
func SaveCSV(series *Series, filename string, includeIndex bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	defer writer.Flush()

	hasTimestamps := len(series.Timestamps) == len(series.Values)
	name := series.Name
	if name == "" {
		name = "y"
	}

	switch {
	case hasTimestamps:
		fmt.Fprintf(writer, "ds,%s\n", name)
	case includeIndex:
		fmt.Fprintf(writer, "index,%s\n", name)
	default:
		fmt.Fprintf(writer, "%s\n", name)
	}

	for i, v := range series.Values {
		if hasTimestamps {
			writer.WriteString(series.Timestamps[i].Format("2006-01-02"))
			writer.WriteByte(',')
		} else if includeIndex {
			writer.WriteString(strconv.Itoa(i + 1))
			writer.WriteByte(',')
		}
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteByte('\n')
	}

	return nil
}

func readRecords(r io.Reader, opts *CSVOptions) (header []string, records [][]string, err error) {
	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, nil, err
		}
	}

	if opts.HasHeader {
		row, err := reader.Read()
		if err != nil {
			return nil, nil, err
		}
		header = make([]string, len(row))
		for i, h := range row {
			header[i] = cleanField(h)
		}
	}

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
		records = append(records, record)
	}
	return header, records, nil
}

// findColumn locates a column by explicit name, falling back to a list
// of conventional names. Returns -1 when nothing matches.
func findColumn(header []string, name string, fallbacks []string) int {
	if name != "" {
		for i, h := range header {
			if h == name {
				return i
			}
		}
		return -1
	}
	for _, fb := range fallbacks {
		for i, h := range header {
			if h == fb {
				return i
			}
		}
	}
	return -1
}

func parseValue(field string) (float64, bool) {
	field = cleanField(field)
	if field == "" || field == "NA" || field == "NaN" || field == "null" {
		return 0, false
	}
	v, err := strconv.ParseFloat(field, 64)
	return v, err == nil
}

func cleanField(field string) string {
	return strings.TrimSpace(strings.Trim(field, "\""))
}

package gradebook

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Required input columns.
const (
	ColumnName    = "name"
	ColumnDate    = "date"
	ColumnSubject = "subject"
	ColumnScore   = "score"
)

// ErrMissingColumn is returned when the header row lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// ErrNoHeader is returned when the input contains no header row at all.
var ErrNoHeader = errors.New("input has no header row")

// MalformedRecordError describes a data row that cannot be turned into a
// Record. Loading aborts on the first malformed row: skipping rows silently
// would change every downstream statistic.
type MalformedRecordError struct {
	// Source names the input (file path or reader label).
	Source string
	// Line is the 1-based line number of the offending row.
	Line int
	// Column names the field that failed to parse, when known.
	Column string
	// Err is the underlying cause.
	Err error
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	if e.Column != "" {
		return fmt.Sprintf("%s:%d: malformed record: column %q: %v", e.Source, e.Line, e.Column, e.Err)
	}

	return fmt.Sprintf("%s:%d: malformed record: %v", e.Source, e.Line, e.Err)
}

// Unwrap returns the underlying cause.
func (e *MalformedRecordError) Unwrap() error {
	return e.Err
}

// DefaultDelimiter is the standard CSV field separator.
const DefaultDelimiter = ','

// Load reads score records from the CSV file at path.
// A missing file is reported as an error wrapping fs.ErrNotExist;
// no partial result is ever returned.
func Load(path string) ([]Record, error) {
	return LoadDelimited(path, DefaultDelimiter)
}

// LoadDelimited reads score records from the file at path using a custom
// field delimiter.
func LoadDelimited(path string, delimiter rune) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	defer file.Close()

	return ReadDelimited(file, path, delimiter)
}

// Read parses score records from r. The first row must be a header
// containing the name, date, subject and score columns (extra columns are
// ignored). source labels the input in error messages.
func Read(r io.Reader, source string) ([]Record, error) {
	return ReadDelimited(r, source, DefaultDelimiter)
}

// ReadDelimited parses score records from r using a custom field delimiter.
func ReadDelimited(r io.Reader, source string, delimiter rune) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%s: %w", source, ErrNoHeader)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: read header: %w", source, err)
	}

	columns, err := resolveColumns(header, source)
	if err != nil {
		return nil, err
	}

	var records []Record

	for {
		row, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}

		if readErr != nil {
			return nil, &MalformedRecordError{Source: source, Line: errorLine(readErr), Err: readErr}
		}

		// FieldPos reports the physical line of the current record, which
		// differs from the record count when quoted fields span lines.
		line, _ := reader.FieldPos(0)

		record, rowErr := parseRow(row, columns, source, line)
		if rowErr != nil {
			return nil, rowErr
		}

		records = append(records, record)
	}

	return records, nil
}

// errorLine extracts the physical line number carried by a CSV parse error.
func errorLine(err error) int {
	var parseErr *csv.ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Line
	}

	return 0
}

// columnIndexes maps each required column to its position in the header row.
type columnIndexes struct {
	name    int
	date    int
	subject int
	score   int
}

func resolveColumns(header []string, source string) (columnIndexes, error) {
	indexes := map[string]int{}
	for i, column := range header {
		indexes[column] = i
	}

	resolved := columnIndexes{}

	for _, want := range []struct {
		column string
		target *int
	}{
		{ColumnName, &resolved.name},
		{ColumnDate, &resolved.date},
		{ColumnSubject, &resolved.subject},
		{ColumnScore, &resolved.score},
	} {
		index, ok := indexes[want.column]
		if !ok {
			return columnIndexes{}, fmt.Errorf("%s: %w: %s", source, ErrMissingColumn, want.column)
		}

		*want.target = index
	}

	return resolved, nil
}

func parseRow(row []string, columns columnIndexes, source string, line int) (Record, error) {
	scoreField := row[columns.score]

	score, err := strconv.Atoi(scoreField)
	if err != nil {
		return Record{}, &MalformedRecordError{
			Source: source,
			Line:   line,
			Column: ColumnScore,
			Err:    err,
		}
	}

	return Record{
		Name:    row[columns.name],
		Date:    row[columns.date],
		Subject: row[columns.subject],
		Score:   score,
	}, nil
}

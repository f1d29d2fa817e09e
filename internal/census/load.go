package census

import (
	"log/slog"
)

// Load dispatches to the loader registered for country. Countries without a
// loader fail with ErrUnsupportedCountry.
func Load(country Country, path, expectedHeader string, schema Schema) (Collection, error) {
	loader, ok := Lookup(country)
	if !ok {
		return nil, newError(ErrUnsupportedCountry, country.String())
	}
	return loader.Load(path, expectedHeader, schema)
}

// CSVLoader runs the validate, parse, insert pipeline over a single file.
// It holds no state and may be shared between goroutines.
type CSVLoader struct{}

// Load validates path, parses every data line with schema and returns the
// records keyed by Record.Key. The first failure aborts the load.
func (CSVLoader) Load(path, expectedHeader string, schema Schema) (Collection, error) {
	lines, err := Validate(path, expectedHeader)
	if err != nil {
		return nil, err
	}

	records := make(Collection, len(lines)-1)
	for i, line := range lines[1:] {
		lineNo := i + 2

		rec, err := ParseRow(line, schema)
		if err != nil {
			return nil, at(err, path, lineNo)
		}
		if err := records.Insert(rec.Key(), rec); err != nil {
			return nil, at(err, path, lineNo)
		}
	}

	slog.Debug("census file loaded",
		"path", path,
		"schema", schema.String(),
		"records", len(records),
	)

	return records, nil
}

// Dataset names one census file together with how it should be read.
type Dataset struct {
	Country Country
	Schema  Schema
	Path    string
	Header  string // Expected header; Schema.Header() when empty
}

// ExpectedHeader returns the header the file must start with.
func (d Dataset) ExpectedHeader() string {
	if d.Header != "" {
		return d.Header
	}
	return d.Schema.Header()
}

// Load reads the dataset through the country dispatcher.
func (d Dataset) Load() (Collection, error) {
	return Load(d.Country, d.Path, d.ExpectedHeader(), d.Schema)
}

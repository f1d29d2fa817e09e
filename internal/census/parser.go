package census

import (
	"fmt"
	"strings"
)

// ParseRow splits a data line on Delimiter and builds the record variant
// selected by schema. Fields are mapped by position; fields past the fourth
// are ignored.
func ParseRow(line string, schema Schema) (Record, error) {
	if !strings.Contains(line, Delimiter) {
		return Record{}, newError(ErrIncorrectDelimiter, fmt.Sprintf("no %q in %q", Delimiter, line))
	}

	fields := strings.Split(line, Delimiter)
	if len(fields) < fieldCount {
		return Record{}, newError(ErrMalformedRow, fmt.Sprintf("got %d fields, want %d", len(fields), fieldCount))
	}

	switch schema {
	case SchemaPopulation:
		return parsePopulation(fields)
	case SchemaStateCode:
		return Record{
			Schema: SchemaStateCode,
			Code: &CodeRecord{
				SerialNumber:  fields[0],
				RegionName:    fields[1],
				TaxIdentifier: fields[2],
				RegionCode:    fields[3],
			},
		}, nil
	default:
		return Record{}, newError(ErrMalformedRow, fmt.Sprintf("unsupported schema %s", schema))
	}
}

func parsePopulation(fields []string) (Record, error) {
	population, err := parseCount("Population", fields[1])
	if err != nil {
		return Record{}, err
	}
	area, err := parseMeasure("AreaInSqKm", fields[2])
	if err != nil {
		return Record{}, err
	}
	density, err := parseMeasure("DensityPerSqKm", fields[3])
	if err != nil {
		return Record{}, err
	}

	return Record{
		Schema: SchemaPopulation,
		Population: &PopulationRecord{
			RegionName:     fields[0],
			Population:     population,
			AreaSqKm:       area,
			DensityPerSqKm: density,
		},
	}, nil
}

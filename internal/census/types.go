package census

import (
	"fmt"
	"sort"
	"strings"
)

// Delimiter separates fields within a line. Quoting is not supported.
const Delimiter = ","

// FileExtension is the only extension accepted by Validate.
const FileExtension = ".csv"

// Canonical headers for the two schemas.
const (
	PopulationHeader = "State,Population,AreaInSqKm,DensityPerSqKm"
	StateCodeHeader  = "SrNo,State Name,TIN,StateCode"
)

// fieldCount is the number of leading fields both schemas consume.
const fieldCount = 4

// Country selects the loader used by Load.
type Country int

const (
	India Country = iota + 1
	Russia
	Canada
)

var countryNames = map[Country]string{
	India:  "india",
	Russia: "russia",
	Canada: "canada",
}

// KnownCountries lists every recognized country, supported or not.
func KnownCountries() []Country {
	return []Country{India, Russia, Canada}
}

func (c Country) String() string {
	if name, ok := countryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("country(%d)", int(c))
}

// ParseCountry resolves a case-insensitive country name.
func ParseCountry(s string) (Country, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range countryNames {
		if n == name {
			return c, nil
		}
	}
	return 0, newError(ErrUnsupportedCountry, fmt.Sprintf("%q", s))
}

// Schema selects which record variant a data line parses into.
type Schema int

const (
	SchemaUnknown Schema = iota
	SchemaPopulation
	SchemaStateCode
)

func (s Schema) String() string {
	switch s {
	case SchemaPopulation:
		return "population"
	case SchemaStateCode:
		return "state_code"
	default:
		return "unknown"
	}
}

// Header returns the canonical header line for the schema.
func (s Schema) Header() string {
	switch s {
	case SchemaPopulation:
		return PopulationHeader
	case SchemaStateCode:
		return StateCodeHeader
	default:
		return ""
	}
}

// ParseSchema resolves a schema name as produced by String.
func ParseSchema(s string) (Schema, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "population":
		return SchemaPopulation, nil
	case "state_code", "statecode", "code":
		return SchemaStateCode, nil
	default:
		return SchemaUnknown, fmt.Errorf("unknown schema %q", s)
	}
}

// PopulationRecord is one row of a state census file.
type PopulationRecord struct {
	RegionName     string  `json:"regionName"`
	Population     int64   `json:"population"`
	AreaSqKm       float64 `json:"areaSqKm"`
	DensityPerSqKm float64 `json:"densityPerSqKm"`
}

// CodeRecord is one row of a state code file.
type CodeRecord struct {
	SerialNumber  string `json:"serialNumber"`
	RegionName    string `json:"regionName"`
	TaxIdentifier string `json:"taxIdentifier"`
	RegionCode    string `json:"regionCode"`
}

// Record holds exactly one populated variant, chosen by Schema.
type Record struct {
	Schema     Schema            `json:"-"`
	Population *PopulationRecord `json:"population,omitempty"`
	Code       *CodeRecord       `json:"code,omitempty"`
}

// Key returns the collection key: region name for population records,
// region code for code records.
func (r Record) Key() string {
	switch r.Schema {
	case SchemaPopulation:
		if r.Population != nil {
			return r.Population.RegionName
		}
	case SchemaStateCode:
		if r.Code != nil {
			return r.Code.RegionCode
		}
	}
	return ""
}

// Collection maps record keys to records. A fresh collection is built by
// every load and belongs to the caller once returned.
type Collection map[string]Record

// Keys returns the collection keys in sorted order.
func (c Collection) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

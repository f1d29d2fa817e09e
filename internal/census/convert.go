package census

// convert.go turns numeric census fields into Go values. Parsing goes
// through pgtype.Numeric so whole numbers and decimals share one parser and
// fractional populations are caught by its integer conversion.

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
)

// numericRegex accepts signed integers and decimals.
var numericRegex = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)$`)

// toNumeric converts a trimmed field to pgtype.Numeric.
// Returns Valid=false for empty or malformed input.
func toNumeric(s string) pgtype.Numeric {
	s = strings.TrimSpace(s)
	if s == "" || !numericRegex.MatchString(s) {
		return pgtype.Numeric{Valid: false}
	}

	var n pgtype.Numeric
	if err := n.Scan(s); err != nil {
		return pgtype.Numeric{Valid: false}
	}
	return n
}

// parseCount parses a whole number such as a population figure.
func parseCount(field, value string) (int64, error) {
	n := toNumeric(value)
	if !n.Valid {
		return 0, newError(ErrInvalidNumber, fmt.Sprintf("%s: %q", field, value))
	}
	v, err := n.Int64Value()
	if err != nil || !v.Valid {
		return 0, &Error{Kind: ErrInvalidNumber, Detail: fmt.Sprintf("%s: %q is not a whole number", field, value), Err: err}
	}
	return v.Int64, nil
}

// parseMeasure parses a decimal quantity such as an area or a density.
func parseMeasure(field, value string) (float64, error) {
	n := toNumeric(value)
	if !n.Valid {
		return 0, newError(ErrInvalidNumber, fmt.Sprintf("%s: %q", field, value))
	}
	v, err := n.Float64Value()
	if err != nil || !v.Valid {
		return 0, &Error{Kind: ErrInvalidNumber, Detail: fmt.Sprintf("%s: %q", field, value), Err: err}
	}
	return v.Float64, nil
}

package census

// error_messages.go maps load failures to user-facing messages with codes
// for support reference.
//
//	CEN001 - File not found: the census file does not exist
//	CEN002 - Invalid file type: the file is not a .csv file
//	CEN003 - Incorrect header: the first line differs from the expected header
//	CEN004 - Incorrect delimiter: a data line is not comma-separated
//	CEN005 - Unsupported country: no loader is registered for the country
//	CEN006 - Malformed row: a data line has too few fields
//	CEN007 - Invalid number: a numeric column does not parse
//	CEN008 - Duplicate key: two rows share the same key
//	ERR000 - Unknown error
//
// The first matching kind wins.

import "errors"

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

type errorKind struct {
	kind error
	msg  UserMessage
}

var errorKinds = []errorKind{
	{
		kind: ErrFileNotFound,
		msg: UserMessage{
			Message: "The census file could not be found",
			Action:  "Check the configured file path",
			Code:    "CEN001",
		},
	},
	{
		kind: ErrInvalidFileType,
		msg: UserMessage{
			Message: "The census file is not a CSV file",
			Action:  "Provide a file with the .csv extension",
			Code:    "CEN002",
		},
	},
	{
		kind: ErrIncorrectHeader,
		msg: UserMessage{
			Message: "The file header does not match the expected columns",
			Action:  "Verify the first line matches the template exactly",
			Code:    "CEN003",
		},
	},
	{
		kind: ErrIncorrectDelimiter,
		msg: UserMessage{
			Message: "A data row is not comma-separated",
			Action:  "Save the file with ',' as the delimiter",
			Code:    "CEN004",
		},
	},
	{
		kind: ErrUnsupportedCountry,
		msg: UserMessage{
			Message: "Census data for this country is not supported",
			Action:  "Choose a supported country",
			Code:    "CEN005",
		},
	},
	{
		kind: ErrMalformedRow,
		msg: UserMessage{
			Message: "A data row is missing columns",
			Action:  "Ensure every row has a value for each header column",
			Code:    "CEN006",
		},
	},
	{
		kind: ErrInvalidNumber,
		msg: UserMessage{
			Message: "A numeric column contains an invalid number",
			Action:  "Use plain digits without separators or units",
			Code:    "CEN007",
		},
	},
	{
		kind: ErrDuplicateKey,
		msg: UserMessage{
			Message: "Two rows share the same key",
			Action:  "Remove the duplicate row",
			Code:    "CEN008",
		},
	},
}

var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts an error to a user-friendly message.
// Returns an empty UserMessage for a nil error.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}
	for _, k := range errorKinds {
		if errors.Is(err, k.kind) {
			return k.msg
		}
	}
	return defaultMessage
}

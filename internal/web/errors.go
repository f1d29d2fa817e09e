package web

// errors.go turns load failures into JSON error responses.
//
// The technical error is logged with the request ID; the client only sees
// the mapped census.UserMessage and its support code.

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/census/internal/census"
	"github.com/JonMunkholm/census/internal/logging"
)

// ErrorResponse represents the JSON structure for API error responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
	Code    string `json:"code"`
}

var (
	errUnknownSchema  = errors.New("unknown schema")
	errNoDataset      = errors.New("no dataset configured")
	errRecordNotFound = errors.New("record not found")
)

var apiMessages = map[error]census.UserMessage{
	errUnknownSchema: {
		Message: "Unknown census schema",
		Action:  "Use population or state_code",
		Code:    "API001",
	},
	errNoDataset: {
		Message: "No census file is configured for this country and schema",
		Action:  "Check the server configuration",
		Code:    "API002",
	},
	errRecordNotFound: {
		Message: "No record exists for this key",
		Action:  "Check the key against the census listing",
		Code:    "API003",
	},
}

// statusFor picks the HTTP status for a load error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, census.ErrUnsupportedCountry),
		errors.Is(err, errUnknownSchema),
		errors.Is(err, errNoDataset),
		errors.Is(err, errRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, census.ErrFileNotFound):
		return http.StatusServiceUnavailable
	case errors.Is(err, census.ErrInvalidFileType),
		errors.Is(err, census.ErrIncorrectHeader),
		errors.Is(err, census.ErrIncorrectDelimiter),
		errors.Is(err, census.ErrMalformedRow),
		errors.Is(err, census.ErrInvalidNumber),
		errors.Is(err, census.ErrDuplicateKey):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// userMessage maps API-level errors first, then census errors.
func userMessage(err error) census.UserMessage {
	for sentinel, msg := range apiMessages {
		if errors.Is(err, sentinel) {
			return msg
		}
	}
	return census.MapError(err)
}

// respondError logs err and writes the mapped user message.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	msg := userMessage(err)

	logging.FromContext(r.Context()).Error("request error",
		"path", r.URL.Path,
		"method", r.Method,
		"status", status,
		"error", err.Error(),
		"code", msg.Code,
	)

	writeJSON(w, status, ErrorResponse{
		Error:   msg.Message,
		Message: msg.Message,
		Action:  msg.Action,
		Code:    msg.Code,
	})
}

package relay

import (
	"encoding/json"
)

// ErrorPayload is the normalized json body returned for every failure
// condition: {"error":{"message":"..."}}.
type ErrorPayload struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries the failure message inside an ErrorPayload.
type ErrorDetail struct {
	Message string `json:"message"`
}

// NewErrorPayload returns an ErrorPayload for the given message.
func NewErrorPayload(message string) ErrorPayload {
	return ErrorPayload{Error: ErrorDetail{Message: message}}
}

// Body returns the serialized payload.
func (payload ErrorPayload) Body() string {
	b, err := json.Marshal(payload)
	if err != nil {
		// Unreachable for a struct of plain strings, but never return a
		// non-json body.
		return `{"error":{"message":"failed serializing error payload"}}`
	}

	return string(b)
}

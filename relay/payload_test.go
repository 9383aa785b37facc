package relay

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorPayload_Body(t *testing.T) {
	payload := NewErrorPayload("connection refused")

	assert.Equal(t, `{"error":{"message":"connection refused"}}`, payload.Body())
}

func TestErrorPayload_Body_roundTrip(t *testing.T) {
	payload := NewErrorPayload(`quote " and slash \`)

	parsed := ErrorPayload{}
	err := json.Unmarshal([]byte(payload.Body()), &parsed)

	assert.NoError(t, err)
	assert.Equal(t, `quote " and slash \`, parsed.Error.Message)
}

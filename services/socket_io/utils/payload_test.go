package socketio_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePayload(t *testing.T) {
	data, ok := ParsePayload(map[string]interface{}{"senderId": "alice"})
	assert.True(t, ok)
	assert.Equal(t, "alice", data["senderId"])

	_, ok = ParsePayload()
	assert.False(t, ok)

	_, ok = ParsePayload("not-an-object")
	assert.False(t, ok)

	_, ok = ParsePayload(nil)
	assert.False(t, ok)
}

func TestRequireString(t *testing.T) {
	data := map[string]interface{}{
		"senderId": "alice",
		"empty":    "",
		"number":   float64(7),
	}

	value, ok := RequireString(data, "senderId")
	assert.True(t, ok)
	assert.Equal(t, "alice", value)

	_, ok = RequireString(data, "empty")
	assert.False(t, ok)

	_, ok = RequireString(data, "number")
	assert.False(t, ok)

	_, ok = RequireString(data, "missing")
	assert.False(t, ok)
}

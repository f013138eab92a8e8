package middlewares

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaskBodyMasksSensitiveFields(t *testing.T) {
	body := []byte(`{"phone_number": "9876543210", "password": "secret123", "token": "abc"}`)

	masked := MaskBody(body)
	require.NotNil(t, masked)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(masked, &decoded))
	assert.Equal(t, "9876543210", decoded["phone_number"])
	assert.Equal(t, "***", decoded["password"])
	assert.Equal(t, "***", decoded["token"])
}

func TestMaskBodyDropsNonJSON(t *testing.T) {
	assert.Nil(t, MaskBody([]byte("plain text body")))
	assert.Nil(t, MaskBody(nil))
	assert.Nil(t, MaskBody([]byte("")))
}

func TestMaskBodyLeavesCleanPayloadAlone(t *testing.T) {
	body := []byte(`{"household_head_name": "Raman", "hamlet_id": 1}`)

	masked := MaskBody(body)
	require.NotNil(t, masked)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(masked, &decoded))
	assert.Equal(t, "Raman", decoded["household_head_name"])
	assert.Equal(t, float64(1), decoded["hamlet_id"])
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, "create", actionFor("POST"))
	assert.Equal(t, "update", actionFor("PUT"))
	assert.Equal(t, "update", actionFor("PATCH"))
	assert.Equal(t, "delete", actionFor("DELETE"))
	assert.Equal(t, "read", actionFor("GET"))
}

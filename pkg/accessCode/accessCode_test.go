package accessCode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateCode(t *testing.T) {
	eventID := "evt-123"
	encodedCode := GenerateCode(eventID)
	assert.NotEmpty(t, encodedCode, "Encoded code should not be empty")
}

func TestDecode(t *testing.T) {
	// First, generate a code
	eventID := "evt-123"
	encodedCode := GenerateCode(eventID)

	// Now, decode the encoded code
	decodedEventID, decodedUniqueID, err := Decode(encodedCode)

	// Check if there are any errors
	assert.Nil(t, err, "Should not have an error during decoding")
	assert.Equal(t, eventID, decodedEventID, "Decoded event id should match the original")
	assert.NotEmpty(t, decodedUniqueID, "Decoded unique id should not be empty")
}

func TestDecode_ErrorHandling(t *testing.T) {
	// Pass an incorrectly formatted string
	_, _, err := Decode("this is not a base64 string")
	assert.NotNil(t, err, "Expected an error for incorrect base64 string")
}

func TestDecode_NoSeparator(t *testing.T) {
	_, _, err := Decode("bm8gc2VwYXJhdG9yIGhlcmU=")
	assert.NotNil(t, err, "Expected an error when the separator is missing")
}

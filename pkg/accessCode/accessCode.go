package accessCode

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/samborkent/uuidv7"
)

// GenerateCode builds the access code handed out for a private event:
// base64 of "eventID|uniqueID". The event id half makes the code
// self-resolving, the unique half is what gets checked against the code
// stored on the event.
func GenerateCode(eventID string) string {
	uniqueID := uuidv7.New()

	code := fmt.Sprintf("%s|%s", eventID, uniqueID.String())

	return base64.StdEncoding.EncodeToString([]byte(code))
}

func Decode(code string) (eventID, uniqueID string, err error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(code)
	if err != nil {
		return "", "", err
	}
	res := strings.Split(string(decodedBytes), "|")
	if len(res) != 2 {
		return "", "", fmt.Errorf("not correct format")
	}
	return res[0], res[1], nil
}

package telemetry

import (
	"regexp"
	"strings"
)

const redacted = "[redacted]"

// Keys whose values are dropped wholesale, regardless of content.
var piiKeyFragments = []string{
	"name", "email", "phone", "address", "birth", "dob", "ssn", "password", "token",
}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`\+?[0-9][0-9 .\-()]{7,}[0-9]`)
)

func isPIIKey(key string) bool {
	k := strings.ToLower(key)
	for _, fragment := range piiKeyFragments {
		if strings.Contains(k, fragment) {
			return true
		}
	}
	return false
}

func scrub(s string) string {
	s = emailPattern.ReplaceAllString(s, redacted)
	s = phonePattern.ReplaceAllString(s, redacted)
	return s
}

// sanitizeMap returns a copy of data with personally identifying
// content redacted. The input map is never modified.
func sanitizeMap(data map[string]any) map[string]any {
	if data == nil {
		return nil
	}

	clean := make(map[string]any, len(data))

	for k, v := range data {
		if isPIIKey(k) {
			clean[k] = redacted
			continue
		}

		switch value := v.(type) {
		case string:
			clean[k] = scrub(value)
		case map[string]any:
			clean[k] = sanitizeMap(value)
		case []string:
			scrubbed := make([]string, len(value))
			for i, s := range value {
				scrubbed[i] = scrub(s)
			}
			clean[k] = scrubbed
		default:
			clean[k] = v
		}
	}

	return clean
}

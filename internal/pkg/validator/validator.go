package validator

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

type ValidationError struct {
	Field   string
	Message string
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var msgs []string
	for _, err := range v {
		msgs = append(msgs, err.Field+": "+err.Message)
	}
	return strings.Join(msgs, "; ")
}

func (v ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string)
	for _, err := range v {
		result[err.Field] = err.Message
	}
	return result
}

// IsEmpty checks if a string is empty after trimming whitespace.
func IsEmpty(s string) bool {
	return strings.TrimSpace(s) == ""
}

var monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ParseMonth parses a "YYYY-MM" month token. The year must fall in
// [1900, 2100] and the month in [1, 12].
func ParseMonth(month string) (year int, monthNum int, ok bool) {
	if !monthRegex.MatchString(month) {
		return 0, 0, false
	}
	parts := strings.SplitN(month, "-", 2)
	year, _ = strconv.Atoi(parts[0])
	monthNum, _ = strconv.Atoi(parts[1])
	if year < 1900 || year > 2100 || monthNum < 1 || monthNum > 12 {
		return 0, 0, false
	}
	return year, monthNum, true
}

// IsValidMonth checks a "YYYY-MM" month token.
func IsValidMonth(month string) bool {
	_, _, ok := ParseMonth(month)
	return ok
}

// UUID regex: any RFC 4122 variant, case-insensitive.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[1-7][0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`)

// IsValidUUID validates an RFC 4122 UUID string.
func IsValidUUID(uuid string) bool {
	return uuidRegex.MatchString(strings.ToLower(uuid))
}

// IsValidDateTime checks if a string is a valid ISO8601 timestamp.
// Accepts formats like: "2024-01-15T10:30:00Z" or "2024-01-15T10:30:00+07:00"
func IsValidDateTime(dateTimeStr string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, dateTimeStr)
	if err == nil {
		return t, true
	}

	t, err = time.Parse(time.RFC3339Nano, dateTimeStr)
	if err == nil {
		return t, true
	}

	return time.Time{}, false
}

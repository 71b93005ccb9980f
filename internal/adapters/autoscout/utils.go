package autoscout_adapter

import (
	"regexp"
	"strconv"
	"strings"
)

// The structured data on these pages is hand-fed by dealers, so every field
// arrives in whatever shape the upstream CMS felt like that day. The helpers
// below coerce instead of asserting.

func asMap(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func asSlice(v interface{}) ([]interface{}, bool) {
	s, ok := v.([]interface{})
	return s, ok
}

// getStringPtr reads m[key] as a string, stringifying numbers. Empty or
// missing values come back nil.
func getStringPtr(m map[string]interface{}, key string) *string {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	var s string
	switch t := v.(type) {
	case string:
		s = strings.TrimSpace(t)
	case float64:
		s = formatFloat(t)
	case bool:
		s = strconv.FormatBool(t)
	default:
		return nil
	}
	if s == "" {
		return nil
	}
	return &s
}

// getFloat64Ptr reads m[key] as a number, parsing numeric strings. Upstream
// sometimes writes prices as "16990" and sometimes as 16990.
func getFloat64Ptr(m map[string]interface{}, key string) *float64 {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		return &t
	case string:
		cleaned := strings.TrimSpace(t)
		cleaned = strings.ReplaceAll(cleaned, ",", ".")
		if f, err := strconv.ParseFloat(cleaned, 64); err == nil {
			return &f
		}
	}
	return nil
}

// getIntPtr reads m[key] as an int, truncating floats and parsing strings.
func getIntPtr(m map[string]interface{}, key string) *int {
	v, ok := m[key]
	if !ok || v == nil {
		return nil
	}
	switch t := v.(type) {
	case float64:
		i := int(t)
		return &i
	case string:
		digits := nonDigitPattern.ReplaceAllString(t, "")
		if digits == "" {
			return nil
		}
		if i, err := strconv.Atoi(digits); err == nil {
			return &i
		}
	}
	return nil
}

var nonDigitPattern = regexp.MustCompile(`[^\d]`)

// formatFloat renders a float the way JSON did: no trailing ".0" on whole
// numbers.
func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func strPtr(s string) *string { return &s }

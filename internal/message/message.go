// Package message renders the default human-readable text for failure kinds.
package message

import (
	"fmt"
	"strings"
)

// Data carries the payload embedded into a message.
type Data struct {
	Check    string
	Keys     []string
	Types    []string
	Variants []string
}

// Text returns the default message for the given kind code.
// Unknown codes are returned verbatim.
func Text(code string, d Data) string {
	switch code {
	case "required_data_unavailable":
		return fmt.Sprintf("Required data is unavailable for the check '%s'", d.Check)
	case "missing_keys":
		return "Missing required keys: " + Sentence(d.Keys)
	case "unexpected_keys":
		return "Unexpected keys found: " + Sentence(d.Keys)
	case "unexpected_blank_value":
		return "Unexpected blank values for keys: " + Sentence(d.Keys)
	case "unexpected_populated_value":
		return "Unexpected populated values for keys: " + Sentence(d.Keys)
	case "unexpected_non_nil_value":
		return "Unexpected non-nil values for keys: " + Sentence(d.Keys)
	case "unexpected_nil_value":
		return "Unexpected nil values for keys: " + Sentence(d.Keys)
	case "unexpected_multiple_keys":
		return "Multiple keys present when only one is expected: " + Sentence(d.Keys)
	case "unexpected_value_type":
		return "Unexpected value types for keys: " + Sentence(d.Keys) +
			". Expected types: " + Sentence(d.Types)
	case "unexpected_value_variant":
		return "Unexpected value variants for keys: " + Sentence(d.Keys) +
			". Expected variants: " + Sentence(d.Variants)
	case "expected_multiple_keys":
		return "Expected multiple keys but none were provided"
	}
	return code
}

// Sentence joins words into an English list: "a", "a and b", "a, b, and c".
func Sentence(words []string) string {
	switch len(words) {
	case 0:
		return ""
	case 1:
		return words[0]
	case 2:
		return words[0] + " and " + words[1]
	}
	return strings.Join(words[:len(words)-1], ", ") + ", and " + words[len(words)-1]
}

package profile

import "strings"

// Field checklist driving completeness tracking. Order matters: missing-field
// lists preserve it, and the prompt selector keys off the first missing
// required entry.
var requiredFields = []string{
	"name",
	"email",
	"type",
	"address.street",
	"address.city",
	"address.country",
}

var optionalFields = []string{
	"address.state",
	"address.zipcode",
	"contact.phone",
	"contact.mobile",
}

// Contextual prompts for the next required field to collect.
var fieldPrompts = map[string]string{
	"name":            "What's your name?",
	"email":           "Great! What's your email address?",
	"type":            "Are you an individual or corporate customer?",
	"address.street":  "What's your street address?",
	"address.city":    "Which city are you in?",
	"address.country": "Which country are you in? (US, CA, or UK)",
}

const (
	promptComplete        = "Profile complete! Ready to submit?"
	promptOptionalContact = "Would you like to add contact information? (optional)"
)

// hasField reports whether the dot-delimited path resolves to a present,
// non-empty value inside the mapping. Every intermediate segment must exist
// as a non-empty mapping; the terminal value must be truthy. Missing
// segments, non-mapping intermediates and falsy terminals all yield false.
func hasField(data map[string]interface{}, fieldPath string) bool {
	var current interface{} = data
	for _, part := range strings.Split(fieldPath, ".") {
		m, ok := current.(map[string]interface{})
		if !ok {
			return false
		}
		value, ok := m[part]
		if !ok || !truthy(value) {
			return false
		}
		current = value
	}
	return true
}

// truthy mirrors the emptiness rules the field checklist is defined against:
// nil, false, zero numbers, empty strings and empty containers do not count
// as collected values.
func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	case float64:
		return value != 0
	case int:
		return value != 0
	case map[string]interface{}:
		return len(value) > 0
	case []interface{}:
		return len(value) > 0
	default:
		return true
	}
}

// calculateCompleteness filters the fixed field lists through hasField and
// derives the overall percentage with integer truncation. A nil profile is
// treated as an empty mapping; there are no error conditions.
func calculateCompleteness(profile map[string]interface{}) (percentage int, missingRequired, missingOptional []string) {
	missingRequired = make([]string, 0, len(requiredFields))
	for _, f := range requiredFields {
		if !hasField(profile, f) {
			missingRequired = append(missingRequired, f)
		}
	}

	missingOptional = make([]string, 0, len(optionalFields))
	for _, f := range optionalFields {
		if !hasField(profile, f) {
			missingOptional = append(missingOptional, f)
		}
	}

	totalFields := len(requiredFields) + len(optionalFields)
	completedFields := totalFields - len(missingRequired) - len(missingOptional)
	percentage = completedFields * 100 / totalFields

	return percentage, missingRequired, missingOptional
}

// nextPrompt maps the computed missing-field lists to the next conversational
// step. The tie-break is strictly the first missing required field; when only
// optional fields remain a single generic contact prompt is used so the model
// does not press for any specific optional value.
func nextPrompt(missingRequired, missingOptional []string) string {
	if len(missingRequired) == 0 && len(missingOptional) == 0 {
		return promptComplete
	}

	if len(missingRequired) > 0 {
		field := missingRequired[0]
		if prompt, ok := fieldPrompts[field]; ok {
			return prompt
		}
		return "Please provide: " + field
	}

	return promptOptionalContact
}

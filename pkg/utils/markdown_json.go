package utils

import (
	"encoding/json"
	"log"
	"regexp"
	"strings"
)

var fencedJSONPattern = regexp.MustCompile("```json\\n([\\s\\S]+?)\\n```")

// Repair rules for known quirks of AI-generated itinerary JSON. The list is
// fixed, ordered and idempotent: applying it to already-repaired text must not
// change it. It is deliberately narrow, not a general JSON recovery.
var jsonRepairRules = []struct {
	pattern     *regexp.Regexp
	replacement string
}{
	// {"time": "Evening": "text"} -> {"time": "Evening", "description": "text"}
	{regexp.MustCompile(`\{"time":\s*"([^"]+)":\s*"([^"]+)"\}`), `{"time": "${1}", "description": "${2}"}`},
	// bare "Evening": "text" pairs missing their enclosing object
	{regexp.MustCompile(`"(Morning|Afternoon|Evening)":\s*"([^"]+)"`), `{"time": "${1}", "description": "${2}"}`},
	// missing comma between adjacent object literals on separate lines
	{regexp.MustCompile(`\}\s*\n\s*\{`), "},\n        {"},
	// stray quote/whitespace before a closing array bracket
	{regexp.MustCompile(`"\s*\}\s*\]`), `"}]`},
}

// RepairJSON applies the ordered repair rules to raw JSON text.
func RepairJSON(s string) string {
	for _, rule := range jsonRepairRules {
		s = rule.pattern.ReplaceAllString(s, rule.replacement)
	}
	return s
}

// ExtractMarkdownJSON pulls the fenced ```json block out of a free-form model
// response and parses it, repairing common structural mistakes once before
// giving up. No fence returns ErrNoFencedBlock; a fence that cannot be parsed
// even after repair returns ErrUnrepairableJSON. No error escapes as a panic.
func ExtractMarkdownJSON(markdown string) (any, error) {
	match := fencedJSONPattern.FindStringSubmatch(markdown)
	if match == nil {
		return nil, ErrNoFencedBlock
	}

	captured := strings.TrimSpace(match[1])

	var value any
	if err := json.Unmarshal([]byte(captured), &value); err == nil {
		return value, nil
	}

	repaired := RepairJSON(captured)
	if err := json.Unmarshal([]byte(repaired), &value); err != nil {
		log.Printf("Error parsing JSON after cleanup attempts: %v", err)
		log.Printf("Original JSON: %s", captured)
		return nil, ErrUnrepairableJSON
	}
	return value, nil
}

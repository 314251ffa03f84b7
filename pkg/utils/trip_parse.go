package utils

import (
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"

	"tourvisto/internal/models/response_models"
)

// ParseTripData deserializes a persisted tripDetail string. Blank or missing
// input is not an error, it simply yields nil; malformed input is logged and
// also yields nil. Nothing throws past this boundary.
func ParseTripData(jsonString string) *response_models.TripDetail {
	if strings.TrimSpace(jsonString) == "" {
		return nil
	}

	var detail response_models.TripDetail
	if err := json.Unmarshal([]byte(jsonString), &detail); err != nil {
		log.Printf("Failed to parse trip data: %v", err)
		log.Printf("Input was: %s", jsonString)
		return nil
	}
	return &detail
}

var leadingDigitsPattern = regexp.MustCompile(`\d+`)

// ExtractPrice derives an advisory integer price from a free-text estimate
// such as "$1,250 per person". Thousands separators are stripped first, then
// the first contiguous digit run wins, so "$1,200-$1,500" yields 1200. When no
// digits are present the fallback of 100 applies; price is advisory here, not
// authoritative.
func ExtractPrice(estimated string) int {
	cleaned := strings.ReplaceAll(estimated, ",", "")
	digits := leadingDigitsPattern.FindString(cleaned)
	if digits == "" {
		return 100
	}
	price, err := strconv.Atoi(digits)
	if err != nil {
		return 100
	}
	return price
}

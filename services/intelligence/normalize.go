package ai

import (
	"encoding/json"
	"regexp"
)

// RawResponseField holds the unparsed model text when no JSON could be recovered.
const RawResponseField = "raw_response"

// Strategy records which normalization attempt produced the body.
type Strategy string

const (
	StrategyStrict   Strategy = "strict"
	StrategySalvaged Strategy = "salvaged"
	StrategyRaw      Strategy = "raw"
)

// NormalizedResponse is the body returned to the client.
type NormalizedResponse struct {
	Body     json.RawMessage
	Strategy Strategy
}

// jsonObjectPattern spans from the first '{' to the last '}'.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// NormalizeResponse turns model output into a JSON body. It tries the whole
// text, then the greedy {...} span inside it, and finally wraps the raw text
// under RawResponseField. The parsed document is not checked against the
// timetable schema.
func NormalizeResponse(text string) NormalizedResponse {
	if body, ok := parseJSON(text); ok {
		return NormalizedResponse{Body: body, Strategy: StrategyStrict}
	}

	if match := jsonObjectPattern.FindString(text); match != "" {
		if body, ok := parseJSON(match); ok {
			return NormalizedResponse{Body: body, Strategy: StrategySalvaged}
		}
	}

	// Marshal of a map with a single string value cannot fail.
	body, _ := json.Marshal(map[string]string{RawResponseField: text})
	return NormalizedResponse{Body: body, Strategy: StrategyRaw}
}

func parseJSON(s string) (json.RawMessage, bool) {
	var v json.RawMessage
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

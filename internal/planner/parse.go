package planner

import (
	"encoding/json"
	"errors"
	"strings"
)

// StripCodeFences removes a surrounding markdown code fence (``` or ```json)
// from s. Text without a fence is returned trimmed.
func StripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	// Drop the info string (json, JSON, ...) on the opening line.
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		if info := strings.TrimSpace(s[:i]); info == "" || isFenceInfo(info) {
			s = s[i+1:]
		}
	} else if isFenceInfo(strings.TrimSpace(s)) {
		s = ""
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func isFenceInfo(s string) bool {
	for _, r := range s {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z') {
			return false
		}
	}
	return s != ""
}

// ParseResponse strips code fences from raw generation output and checks that
// the remainder is JSON. Failures are reported as *MalformedResponseError.
func ParseResponse(raw string) (json.RawMessage, error) {
	body := StripCodeFences(raw)
	if body == "" {
		return nil, &MalformedResponseError{Raw: raw, Err: errors.New("empty response")}
	}
	var v any
	if err := json.Unmarshal([]byte(body), &v); err != nil {
		return nil, &MalformedResponseError{Raw: raw, Err: err}
	}
	return json.RawMessage(body), nil
}

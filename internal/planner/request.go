package planner

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// BudgetLevel is the spending tier of a trip.
type BudgetLevel string

const (
	BudgetLow    BudgetLevel = "low"
	BudgetMedium BudgetLevel = "medium"
	BudgetHigh   BudgetLevel = "high"
)

// TravelStyle controls how densely days are packed.
type TravelStyle string

const (
	StyleRelaxed  TravelStyle = "relaxed"
	StyleBalanced TravelStyle = "balanced"
	StylePacked   TravelStyle = "packed"
)

// TripPlanRequest is the validated input of the strict flow. Values returned
// by ParseTripPlanRequest are fully defaulted; only StartingCity and Notes may
// be empty.
type TripPlanRequest struct {
	Destination  string      `json:"destination" validate:"required,min=2"`
	StartDate    string      `json:"startDate" validate:"required"`
	EndDate      string      `json:"endDate" validate:"required"`
	StartingCity string      `json:"startingCity,omitempty"`
	BudgetLevel  BudgetLevel `json:"budgetLevel" validate:"oneof=low medium high"`
	Travelers    int         `json:"travelers" validate:"min=1"`
	Interests    []string    `json:"interests"`
	TravelStyle  TravelStyle `json:"travelStyle" validate:"oneof=relaxed balanced packed"`
	Notes        string      `json:"notes,omitempty"`
}

// ParseTripPlanRequest decodes and validates body. It never panics on bad
// input; every problem found is reported in a *ValidationError.
func ParseTripPlanRequest(body []byte) (TripPlanRequest, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return TripPlanRequest{}, err
	}

	var (
		req  TripPlanRequest
		errs []FieldError
	)
	errs = decodeString(fields, "destination", &req.Destination, errs)
	errs = decodeString(fields, "startDate", &req.StartDate, errs)
	errs = decodeString(fields, "endDate", &req.EndDate, errs)
	errs = decodeString(fields, "startingCity", &req.StartingCity, errs)
	errs = decodeString(fields, "notes", &req.Notes, errs)

	var budget, style string
	errs = decodeString(fields, "budgetLevel", &budget, errs)
	errs = decodeString(fields, "travelStyle", &style, errs)
	req.BudgetLevel = BudgetLevel(budget)
	req.TravelStyle = TravelStyle(style)

	travelersSet := present(fields, "travelers")
	errs = decodeInt(fields, "travelers", &req.Travelers, errs)
	errs = decodeStrings(fields, "interests", &req.Interests, errs)

	// Absent optional fields take their defaults before constraint checks so
	// that an explicit travelers=0 is still rejected.
	if !present(fields, "budgetLevel") {
		req.BudgetLevel = BudgetMedium
	}
	if !present(fields, "travelStyle") {
		req.TravelStyle = StyleBalanced
	}
	if !travelersSet {
		req.Travelers = 1
	}
	if req.Interests == nil {
		req.Interests = []string{}
	}

	errs = append(errs, structErrors(req, typeErrorPaths(errs))...)
	if len(errs) > 0 {
		return TripPlanRequest{}, &ValidationError{Fields: errs}
	}
	return req, nil
}

// ItineraryRequest is the input of the lenient flow. Only ToDestination and
// Duration are required.
type ItineraryRequest struct {
	FromDestination string   `json:"fromDestination,omitempty"`
	ToDestination   string   `json:"toDestination"`
	Duration        int      `json:"duration"`
	Budget          string   `json:"budget,omitempty"`
	Travelers       int      `json:"travelers,omitempty"`
	Interests       []string `json:"interests,omitempty"`
	TravelStyle     string   `json:"travelStyle,omitempty"`
}

// ErrItineraryRequired is the only terminal error of the lenient flow.
var ErrItineraryRequired = &ValidationError{Fields: []FieldError{
	{Path: "toDestination", Reason: ReasonRequired, Message: "destination is required"},
	{Path: "duration", Reason: ReasonRequired, Message: "duration is required"},
}}

// ParseItineraryRequest decodes a lenient-flow body. Optional fields with the
// wrong type are ignored; duration may be a number or a numeric string such as
// "5" or "5 days", and interests may be a list or a comma-separated string.
func ParseItineraryRequest(body []byte) (ItineraryRequest, error) {
	fields, err := decodeObject(body)
	if err != nil {
		return ItineraryRequest{}, ErrItineraryRequired
	}

	var req ItineraryRequest
	_ = decodeString(fields, "fromDestination", &req.FromDestination, nil)
	_ = decodeString(fields, "toDestination", &req.ToDestination, nil)
	_ = decodeString(fields, "budget", &req.Budget, nil)
	_ = decodeString(fields, "travelStyle", &req.TravelStyle, nil)
	req.Duration = looseInt(fields["duration"])
	req.Travelers = looseInt(fields["travelers"])
	req.Interests = looseStrings(fields["interests"])

	req.FromDestination = strings.TrimSpace(req.FromDestination)
	req.ToDestination = strings.TrimSpace(req.ToDestination)
	if req.ToDestination == "" || req.Duration <= 0 {
		return ItineraryRequest{}, ErrItineraryRequired
	}
	return req, nil
}

func decodeObject(body []byte) (map[string]json.RawMessage, error) {
	var fields map[string]json.RawMessage
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &ValidationError{Fields: []FieldError{{Reason: ReasonInvalidType, Message: "request body must be a JSON object"}}}
	}
	if err := json.Unmarshal(trimmed, &fields); err != nil {
		return nil, &ValidationError{Fields: []FieldError{{Reason: ReasonInvalidType, Message: "request body is not valid JSON: " + err.Error()}}}
	}
	return fields, nil
}

func present(fields map[string]json.RawMessage, name string) bool {
	raw, ok := fields[name]
	return ok && !isNull(raw)
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}

func typeError(name, want string) FieldError {
	return FieldError{Path: name, Reason: ReasonInvalidType, Message: "expected " + want}
}

func decodeString(fields map[string]json.RawMessage, name string, dst *string, errs []FieldError) []FieldError {
	if !present(fields, name) {
		return errs
	}
	if err := json.Unmarshal(fields[name], dst); err != nil {
		return append(errs, typeError(name, "string"))
	}
	return errs
}

func decodeInt(fields map[string]json.RawMessage, name string, dst *int, errs []FieldError) []FieldError {
	if !present(fields, name) {
		return errs
	}
	raw := bytes.TrimSpace(fields[name])
	if raw[0] == '"' {
		return append(errs, typeError(name, "integer"))
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return append(errs, typeError(name, "integer"))
	}
	v, ok := integral(n)
	if !ok {
		return append(errs, typeError(name, "integer"))
	}
	*dst = v
	return errs
}

// integral accepts integers written with a zero fraction (2.0) or an
// exponent (2e1), as JavaScript clients often send them.
func integral(n json.Number) (int, bool) {
	if v, err := strconv.Atoi(n.String()); err == nil {
		return v, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}

func decodeStrings(fields map[string]json.RawMessage, name string, dst *[]string, errs []FieldError) []FieldError {
	if !present(fields, name) {
		return errs
	}
	if err := json.Unmarshal(fields[name], dst); err != nil {
		return append(errs, typeError(name, "array of strings"))
	}
	return errs
}

func looseInt(raw json.RawMessage) int {
	if len(raw) == 0 || isNull(raw) {
		return 0
	}
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		return int(f)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0
	}
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}

func looseStrings(raw json.RawMessage) []string {
	if len(raw) == 0 || isNull(raw) {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return cleanStrings(list)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return cleanStrings(strings.Split(s, ","))
	}
	return nil
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func typeErrorPaths(errs []FieldError) map[string]bool {
	paths := make(map[string]bool, len(errs))
	for _, e := range errs {
		paths[e.Path] = true
	}
	return paths
}

// String renders the request in a compact form for logs.
func (r TripPlanRequest) String() string {
	return fmt.Sprintf("%s (%s..%s, %d traveler(s), %s/%s)", r.Destination, r.StartDate, r.EndDate, r.Travelers, r.BudgetLevel, r.TravelStyle)
}

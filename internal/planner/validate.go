package planner

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// structErrors runs the validate tags of v and converts failures into
// FieldErrors. Paths listed in skip already carry a type error and are not
// reported twice.
func structErrors(v any, skip map[string]bool) []FieldError {
	err := structValidator().Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Reason: ReasonInvalid, Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		path := fe.Namespace()
		if i := strings.IndexByte(path, '.'); i >= 0 {
			path = path[i+1:]
		}
		if covered(skip, path) {
			continue
		}
		out = append(out, toFieldError(path, fe))
	}
	return out
}

// covered reports whether path or one of its ancestors already carries a
// type error.
func covered(skip map[string]bool, path string) bool {
	for p := range skip {
		if path == p || strings.HasPrefix(path, p+".") || strings.HasPrefix(path, p+"[") {
			return true
		}
	}
	return false
}

func toFieldError(path string, fe validator.FieldError) FieldError {
	switch fe.Tag() {
	case "required":
		return FieldError{Path: path, Reason: ReasonRequired, Message: "is required"}
	case "min":
		switch fe.Kind() {
		case reflect.String:
			return FieldError{Path: path, Reason: ReasonTooSmall, Message: "must be at least " + fe.Param() + " characters"}
		case reflect.Slice, reflect.Array:
			return FieldError{Path: path, Reason: ReasonTooSmall, Message: "must contain at least " + fe.Param() + " item(s)"}
		default:
			return FieldError{Path: path, Reason: ReasonTooSmall, Message: "must be at least " + fe.Param()}
		}
	case "oneof":
		return FieldError{Path: path, Reason: ReasonInvalidEnum, Message: "must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")}
	default:
		return FieldError{Path: path, Reason: ReasonInvalid, Message: "failed " + fe.Tag() + " check"}
	}
}

// ValidateTripPlan checks parsed generation output against the TripPlan
// contract and returns the plan without any unknown fields.
func ValidateTripPlan(raw json.RawMessage) (TripPlan, error) {
	var plan TripPlan
	fields, err := decodeShape(raw, &plan)
	if err != nil {
		return TripPlan{}, err
	}
	fields = append(fields, structErrors(plan, typeErrorPaths(fields))...)
	days := make([]int, len(plan.DailyPlan))
	for i, d := range plan.DailyPlan {
		days[i] = d.Day
	}
	fields = append(fields, sequenceErrors("dailyPlan", days, fields)...)
	if len(fields) > 0 {
		return TripPlan{}, &SchemaViolationError{Fields: fields}
	}
	return plan, nil
}

// ValidateFreeformPlan checks parsed generation output against the
// FreeformPlan contract.
func ValidateFreeformPlan(raw json.RawMessage) (FreeformPlan, error) {
	var plan FreeformPlan
	fields, err := decodeShape(raw, &plan)
	if err != nil {
		return FreeformPlan{}, err
	}
	fields = append(fields, structErrors(plan, typeErrorPaths(fields))...)
	days := make([]int, len(plan.Itinerary))
	for i, d := range plan.Itinerary {
		days[i] = d.Day
	}
	fields = append(fields, sequenceErrors("itinerary", days, fields)...)
	if len(fields) > 0 {
		return FreeformPlan{}, &SchemaViolationError{Fields: fields}
	}
	return plan, nil
}

// sequenceErrors requires days to be numbered 1..n in order. Positions that
// already carry a diagnostic, on the day or on its parent, are not reported
// again.
func sequenceErrors(list string, days []int, reported []FieldError) []FieldError {
	seen := typeErrorPaths(reported)
	var out []FieldError
	for i, d := range days {
		path := fmt.Sprintf("%s[%d].day", list, i)
		if d == i+1 || covered(seen, path) {
			continue
		}
		out = append(out, FieldError{Path: path, Reason: ReasonInvalid, Message: fmt.Sprintf("must be %d, days are numbered from 1 in order", i+1)})
	}
	return out
}

// decodeShape decodes raw into dst one level at a time so every type
// mismatch is reported with its own indexed path. Type mismatches are field
// errors rather than a hard error so constraint checks still run.
func decodeShape(raw json.RawMessage, dst any) ([]FieldError, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &SchemaViolationError{Fields: []FieldError{{Reason: ReasonInvalidType, Message: "expected a JSON object"}}}
	}
	if !json.Valid(trimmed) {
		return nil, &SchemaViolationError{Fields: []FieldError{{Reason: ReasonInvalid, Message: "invalid JSON"}}}
	}
	return decodeValue(trimmed, reflect.ValueOf(dst).Elem(), "", nil), nil
}

func decodeValue(raw json.RawMessage, v reflect.Value, path string, errs []FieldError) []FieldError {
	if isNull(raw) {
		return errs
	}
	switch v.Kind() {
	case reflect.Struct:
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(raw, &obj); err != nil {
			return append(errs, shapeTypeError(path, "object"))
		}
		t := v.Type()
		for i := 0; i < t.NumField(); i++ {
			name := jsonName(t.Field(i))
			if name == "" {
				continue
			}
			if fieldRaw, ok := obj[name]; ok {
				errs = decodeValue(fieldRaw, v.Field(i), joinPath(path, name), errs)
			}
		}
	case reflect.Slice:
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return append(errs, shapeTypeError(path, "array"))
		}
		list := reflect.MakeSlice(v.Type(), len(items), len(items))
		for i, item := range items {
			errs = decodeValue(item, list.Index(i), fmt.Sprintf("%s[%d]", path, i), errs)
		}
		v.Set(list)
	default:
		if err := json.Unmarshal(raw, v.Addr().Interface()); err != nil {
			return append(errs, shapeTypeError(path, kindName(v.Kind())))
		}
	}
	return errs
}

func jsonName(f reflect.StructField) string {
	if !f.IsExported() {
		return ""
	}
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func kindName(k reflect.Kind) string {
	switch k {
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	default:
		return k.String()
	}
}

func shapeTypeError(path, want string) FieldError {
	return FieldError{Path: path, Reason: ReasonInvalidType, Message: "expected " + want}
}

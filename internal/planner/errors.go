package planner

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies a planning failure so callers can switch on it instead of
// inspecting error strings.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindCredentialMissing
	KindQuotaExceeded
	KindTransport
	KindMalformedResponse
	KindSchemaViolation
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation_error"
	case KindCredentialMissing:
		return "credential_missing"
	case KindQuotaExceeded:
		return "quota_exceeded"
	case KindTransport:
		return "transport_error"
	case KindMalformedResponse:
		return "malformed_response"
	case KindSchemaViolation:
		return "schema_violation"
	default:
		return "unknown"
	}
}

// Field-level failure reasons.
const (
	ReasonRequired    = "required"
	ReasonInvalidType = "invalid_type"
	ReasonInvalidEnum = "invalid_enum"
	ReasonTooSmall    = "too_small"
	ReasonInvalid     = "invalid"
)

// FieldError describes one violated constraint.
type FieldError struct {
	Path    string `json:"path"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (f FieldError) String() string {
	if f.Path == "" {
		return f.Message
	}
	return f.Path + ": " + f.Message
}

func joinFieldErrors(fields []FieldError) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, "; ")
}

// ValidationError is returned when a planning request does not match its
// input contract.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	return "invalid request: " + joinFieldErrors(e.Fields)
}

// SchemaViolationError is returned when generated output parses as JSON but
// does not match the plan contract.
type SchemaViolationError struct {
	Fields []FieldError
}

func (e *SchemaViolationError) Error() string {
	return "generated plan does not match schema: " + joinFieldErrors(e.Fields)
}

// MalformedResponseError is returned when generated output is not JSON.
type MalformedResponseError struct {
	Raw string
	Err error
}

func (e *MalformedResponseError) Error() string {
	if e.Err == nil {
		return "malformed generation response"
	}
	return "malformed generation response: " + e.Err.Error()
}

func (e *MalformedResponseError) Unwrap() error { return e.Err }

// BackendError is the error surface of a Generator. Kind is one of
// KindCredentialMissing, KindQuotaExceeded or KindTransport.
type BackendError struct {
	Kind       Kind
	HTTPStatus int
	Message    string
	Err        error
}

func (e *BackendError) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	if e.HTTPStatus != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.HTTPStatus, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *BackendError) Unwrap() error { return e.Err }

// Is matches any BackendError of the same kind, so errors.Is(err, ErrCredentialMissing)
// works for wrapped values.
func (e *BackendError) Is(target error) bool {
	t, ok := target.(*BackendError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.HTTPStatus == 0 && t.Message == ""
}

// ErrCredentialMissing is reported when no generation credential is configured.
var ErrCredentialMissing = &BackendError{Kind: KindCredentialMissing}

// KindOf returns the classification of err.
func KindOf(err error) Kind {
	if err == nil {
		return KindUnknown
	}
	var be *BackendError
	if errors.As(err, &be) {
		return be.Kind
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return KindValidation
	}
	var me *MalformedResponseError
	if errors.As(err, &me) {
		return KindMalformedResponse
	}
	var se *SchemaViolationError
	if errors.As(err, &se) {
		return KindSchemaViolation
	}
	return KindUnknown
}

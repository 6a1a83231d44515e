package optionoids

import (
	"errors"
	"fmt"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/Fish-Fur/optionoids/internal/message"
)

// Kind identifies one of the failure kinds a Checker can report.
type Kind string

// Failure kinds (the set is closed).
const (
	KindRequiredDataUnavailable  Kind = "required_data_unavailable"
	KindMissingKeys              Kind = "missing_keys"
	KindUnexpectedKeys           Kind = "unexpected_keys"
	KindUnexpectedBlankValue     Kind = "unexpected_blank_value"
	KindUnexpectedPopulatedValue Kind = "unexpected_populated_value"
	KindUnexpectedNonNilValue    Kind = "unexpected_non_nil_value"
	KindUnexpectedNilValue       Kind = "unexpected_nil_value"
	KindUnexpectedMultipleKeys   Kind = "unexpected_multiple_keys"
	KindUnexpectedValueType      Kind = "unexpected_value_type"
	KindUnexpectedValueVariant   Kind = "unexpected_value_variant"
	KindExpectedMultipleKeys     Kind = "expected_multiple_keys"
)

// Check names carried by RequiredDataUnavailable.
const (
	CheckPresent     = "present"
	CheckOneRequired = "one_required"
	CheckParams      = "params"
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrRequiredDataUnavailable  = &Error{Kind: KindRequiredDataUnavailable}
	ErrMissingKeys              = &Error{Kind: KindMissingKeys}
	ErrUnexpectedKeys           = &Error{Kind: KindUnexpectedKeys}
	ErrUnexpectedBlankValue     = &Error{Kind: KindUnexpectedBlankValue}
	ErrUnexpectedPopulatedValue = &Error{Kind: KindUnexpectedPopulatedValue}
	ErrUnexpectedNonNilValue    = &Error{Kind: KindUnexpectedNonNilValue}
	ErrUnexpectedNilValue       = &Error{Kind: KindUnexpectedNilValue}
	ErrUnexpectedMultipleKeys   = &Error{Kind: KindUnexpectedMultipleKeys}
	ErrUnexpectedValueType      = &Error{Kind: KindUnexpectedValueType}
	ErrUnexpectedValueVariant   = &Error{Kind: KindUnexpectedValueVariant}
	ErrExpectedMultipleKeys     = &Error{Kind: KindExpectedMultipleKeys}
)

// Error is a single check failure.
type Error struct {
	Kind Kind
	// Check names the check whose input was unavailable (RequiredDataUnavailable only).
	Check string
	// Keys lists the offending keys.
	Keys []string
	// Types lists the expected type names (UnexpectedValueType only).
	Types []string
	// Variants lists the accepted values (UnexpectedValueVariant only).
	Variants []any
	// Message overrides the default text when set.
	Message string
}

// ErrorOpt configures an Error built with NewError.
type ErrorOpt func(*Error)

// WithMessage sets a message that replaces the default text.
func WithMessage(msg string) ErrorOpt { return func(e *Error) { e.Message = msg } }

// WithCheck names the check whose input was unavailable.
func WithCheck(check string) ErrorOpt { return func(e *Error) { e.Check = check } }

// WithErrorKeys sets the offending keys.
func WithErrorKeys(keys ...string) ErrorOpt { return func(e *Error) { e.Keys = keys } }

// WithTypes sets the expected type names.
func WithTypes(types ...string) ErrorOpt { return func(e *Error) { e.Types = types } }

// WithVariants sets the accepted values.
func WithVariants(variants ...any) ErrorOpt { return func(e *Error) { e.Variants = variants } }

// NewError builds an Error of the given kind.
func NewError(kind Kind, opts ...ErrorOpt) *Error {
	e := &Error{Kind: kind}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return message.Text(string(e.Kind), message.Data{
		Check:    e.Check,
		Keys:     e.Keys,
		Types:    e.Types,
		Variants: variantStrings(e.Variants),
	})
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// MarshalJSON renders the kind, the message and the non-empty payload fields.
func (e *Error) MarshalJSON() ([]byte, error) {
	type payload struct {
		Kind     Kind     `json:"kind"`
		Message  string   `json:"message"`
		Check    string   `json:"check,omitempty"`
		Keys     []string `json:"keys,omitempty"`
		Types    []string `json:"types,omitempty"`
		Variants []any    `json:"variants,omitempty"`
	}
	return json.Marshal(payload{
		Kind:     e.Kind,
		Message:  e.Error(),
		Check:    e.Check,
		Keys:     e.Keys,
		Types:    e.Types,
		Variants: e.Variants,
	})
}

func variantStrings(vs []any) []string {
	if len(vs) == 0 {
		return nil
	}
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// Errors is an ordered collection of failures that implements error.
type Errors []*Error

// Error summarizes the first few failures.
func (errs Errors) Error() string {
	if len(errs) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	lim := min(len(errs), maxShown)
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(errs[i].Error())
	}
	if len(errs) > lim {
		fmt.Fprintf(b, "; ... (total %d)", len(errs))
	}
	return b.String()
}

// Kinds returns the kind of every failure, in order.
func (errs Errors) Kinds() []Kind {
	out := make([]Kind, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.Kind)
	}
	return out
}

// Has reports whether any failure is of the given kind.
func (errs Errors) Has(kind Kind) bool {
	return errs.First(kind) != nil
}

// First returns the first failure of the given kind, or nil.
func (errs Errors) First(kind Kind) *Error {
	for _, e := range errs {
		if e.Kind == kind {
			return e
		}
	}
	return nil
}

// Is lets errors.Is find a kind sentinel inside the collection.
func (errs Errors) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return errs.Has(t.Kind)
}

// AsError extracts a single *Error using errors.As.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// AsErrors extracts the failure collection from an error. A lone *Error is
// returned as a one-element collection.
func AsErrors(err error) (Errors, bool) {
	if err == nil {
		return nil, false
	}
	var errs Errors
	if errors.As(err, &errs) {
		return errs, true
	}
	if e, ok := AsError(err); ok {
		return Errors{e}, true
	}
	return nil, false
}

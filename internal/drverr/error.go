package drverr

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// Location is the source position where an Error was raised.
type Location struct {
	File string `json:"file"`
	Line int    `json:"line"`
}

func (l Location) String() string {
	if l.File == "" {
		return "unknown"
	}
	return fmt.Sprintf("%s:%d", l.File, l.Line)
}

// Field is one named value carried by an Error.
type Field struct {
	Name  string
	Value any
}

// Error is a Kind together with its field values and the raise site.
type Error struct {
	Kind     Kind
	Fields   []Field
	Location Location
	cause    error
}

// New builds an Error of the given kind. Values are bound positionally to the
// kind's declared field names; missing values are left nil and extra values
// are dropped.
func New(kind Kind, values ...any) *Error {
	return newAt(2, kind, values)
}

// Context maps any error into kind, keeping err reachable through Unwrap.
// A nil err returns nil.
func Context(err error, kind Kind, values ...any) error {
	if err == nil {
		return nil
	}
	out := newAt(2, kind, values)
	out.cause = err
	return out
}

func newAt(skip int, kind Kind, values []any) *Error {
	if kind >= kindCount {
		kind = kindUnknown
	}
	names := kinds[kind].fields
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i].Name = name
		if i < len(values) {
			fields[i].Value = values[i]
		}
	}
	return &Error{
		Kind:     kind,
		Fields:   fields,
		Location: callerLocation(skip + 1),
	}
}

func callerLocation(skip int) Location {
	_, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{}
	}
	return Location{File: trimSourcePath(file), Line: line}
}

func trimSourcePath(file string) string {
	file = filepath.ToSlash(file)
	if idx := strings.Index(file, "/internal/"); idx >= 0 {
		return file[idx+1:]
	}
	return filepath.Base(file)
}

func (e *Error) Error() string {
	return e.Message()
}

// Code is the stable numeric code of the error's kind.
func (e *Error) Code() uint32 {
	return e.Kind.Code()
}

// Message renders the kind's template with the error's field values.
func (e *Error) Message() string {
	msg := kinds[e.Kind].msg
	if !strings.Contains(msg, "{") {
		return msg
	}
	for _, field := range e.Fields {
		msg = strings.ReplaceAll(msg, "{"+field.Name+"}", formatValue(field.Value))
	}
	return msg
}

// Field returns the value bound to name.
func (e *Error) Field(name string) (any, bool) {
	for _, field := range e.Fields {
		if field.Name == name {
			return field.Value, true
		}
	}
	return nil, false
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether target is the same Kind, so errors.Is(err, InvalidPrice)
// works through wrapping.
func (e *Error) Is(target error) bool {
	switch t := target.(type) {
	case Kind:
		return e.Kind == t
	case *Error:
		return t != nil && e.Kind == t.Kind
	default:
		return false
	}
}

// Code is the stable numeric code of k.
func (k Kind) Code() uint32 {
	if k >= kindCount {
		return 0
	}
	return kinds[k].code
}

// Name is the variant name of k.
func (k Kind) Name() string {
	if k >= kindCount {
		return kinds[kindUnknown].name
	}
	return kinds[k].name
}

// Template is the unrendered message template of k.
func (k Kind) Template() string {
	if k >= kindCount {
		return kinds[kindUnknown].msg
	}
	return kinds[k].msg
}

// FieldNames lists the field names k carries, in declaration order.
func (k Kind) FieldNames() []string {
	if k >= kindCount {
		return nil
	}
	return append([]string(nil), kinds[k].fields...)
}

// Error lets a bare Kind act as a comparison target for errors.Is.
func (k Kind) Error() string {
	return k.Template()
}

func (k Kind) String() string {
	return fmt.Sprintf("%s(%d)", k.Name(), k.Code())
}

// KindOf extracts the Kind of err, if err wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var derr *Error
	if errors.As(err, &derr) {
		return derr.Kind, true
	}
	return kindUnknown, false
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

package template

import "fmt"

// ParseError reports malformed JSON on import. The in-memory form state of
// the caller is never touched when decoding fails.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "template parse: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// SchemaError reports the first structural problem found in an imported
// template. Field carries the missing key when one could be named.
type SchemaError struct {
	Field   string
	Message string
}

func (e *SchemaError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("template schema: missing field %q", e.Field)
	}
	return "template schema: " + e.Message
}

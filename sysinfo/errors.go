package sysinfo

import "fmt"

// ParseErrorKind classifies why a source could not be parsed.
type ParseErrorKind int

const (
	// FieldNotFound means a required key is absent from the source.
	FieldNotFound ParseErrorKind = iota + 1
	// NameTooLong means the CPU model name is 256 bytes or longer.
	NameTooLong
	// TooLarge means the source exceeded its read cap and the cut-off text
	// did not hold the required data.
	TooLarge
	// Malformed means a value was present but not numeric.
	Malformed
)

func (k ParseErrorKind) String() string {
	switch k {
	case FieldNotFound:
		return "field not found"
	case NameTooLong:
		return "name too long"
	case TooLarge:
		return "source too large"
	case Malformed:
		return "malformed value"
	default:
		return fmt.Sprintf("ParseErrorKind(%d)", int(k))
	}
}

// ParseError reports a source whose content did not yield the expected value.
type ParseError struct {
	Kind ParseErrorKind

	// Source names the file or format being parsed, e.g. "/proc/meminfo"
	Source string

	// Field is the key involved, if any
	Field string
}

func (e *ParseError) Error() string {
	msg := e.Kind.String()
	if e.Field != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Field)
	}
	if e.Source != "" {
		return e.Source + ": " + msg
	}
	return msg
}

// Is matches any ParseError of the same kind, so the sentinels below work
// with errors.Is regardless of Source and Field.
func (e *ParseError) Is(target error) bool {
	t, ok := target.(*ParseError)
	return ok && t.Kind == e.Kind
}

var (
	ErrFieldNotFound = &ParseError{Kind: FieldNotFound}
	ErrNameTooLong   = &ParseError{Kind: NameTooLong}
	ErrTooLarge      = &ParseError{Kind: TooLarge}
	ErrMalformed     = &ParseError{Kind: Malformed}
)

// IOError reports a pseudo-file or system call that could not be accessed.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }

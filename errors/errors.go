package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseEncode   Phase = "encode"   // value to wire bytes
	PhaseDecode   Phase = "decode"   // wire bytes to value
	PhaseValidate Phase = "validate" // entity invariant checks
)

// Kind categorizes the error
type Kind string

const (
	// KindBounds means a length or count exceeded a protocol maximum.
	KindBounds Kind = "bounds"
	// KindTruncated means the buffer ended before a field was complete.
	KindTruncated Kind = "truncated"
	// KindDiscriminant means a tagged union carried an unknown tag,
	// usually a protocol version skew between the two processes.
	KindDiscriminant Kind = "unknown_discriminant"
	// KindInvalidData means a field value violated an entity invariant.
	KindInvalidData Kind = "invalid_data"
)

// Error is the structured error type used throughout the codec
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// IsKind reports whether any error in err's chain is an *Error of the
// given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the field path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Bounds creates a bounds-violation error for a length or count that
// exceeds its protocol maximum.
func Bounds(phase Phase, path []string, got, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBounds,
		Path:   path,
		Detail: fmt.Sprintf("length %d exceeds maximum %d", got, max),
		Value:  got,
	}
}

// Truncated creates a truncated-buffer error.
func Truncated(path []string, cause error) *Error {
	return &Error{
		Phase: PhaseDecode,
		Kind:  KindTruncated,
		Path:  path,
		Cause: cause,
	}
}

// UnknownDiscriminant creates an error for a union tag outside the
// known variant range.
func UnknownDiscriminant(path []string, tag byte, maxValid byte) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindDiscriminant,
		Path:   path,
		Detail: fmt.Sprintf("discriminant %d out of range (max %d)", tag, maxValid),
		Value:  tag,
	}
}

// InvalidData creates an invalid data error
func InvalidData(phase Phase, path []string, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidData,
		Path:   path,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}

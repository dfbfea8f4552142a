package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
	"runtime"
	"strings"
)

// stackDepth bounds the frames recorded per error.
const stackDepth = 10

// Error is a coded failure. Message is what the client sees; Err keeps the
// cause for errors.Is/As and for logs.
type Error struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Err     error
	Stack   string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Code.Message()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithDetail attaches a key/value for logging. Details never reach the body.
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

func build(code ErrorCode, msg string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: msg,
		Err:     cause,
		Details: make(map[string]interface{}),
		Stack:   callers(3),
	}
}

// New returns an error carrying the default message of code.
func New(code ErrorCode) *Error {
	return build(code, code.Message(), nil)
}

// Newf returns an error of code with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) *Error {
	return build(code, fmt.Sprintf(format, args...), nil)
}

// Wrap classifies err under code. An *Error yields a recoded copy and is
// left untouched; anything else keeps its own text as the message.
func Wrap(err error, code ErrorCode) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		c := *e
		c.Code = code
		c.Details = maps.Clone(e.Details)
		return &c
	}
	return build(code, err.Error(), err)
}

// Wrapf classifies err under code with a formatted message.
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return build(code, fmt.Sprintf(format, args...), err)
}

// RequiredField reports an absent or empty request field.
func RequiredField(field string) *Error {
	return build(RequiredFieldEmpty, RequiredFieldEmpty.Message()+": "+field, nil).
		WithDetail("field", field)
}

// Transport reports a failure raised by the HTTP layer. detail is appended to
// the default message of code when present.
func Transport(code ErrorCode, detail string) *Error {
	msg := code.Message()
	if detail != "" {
		msg += ": " + detail
	}
	return build(code, msg, nil)
}

func asError(err error) (*Error, bool) {
	var e *Error
	if err == nil || !stderrors.As(err, &e) {
		return nil, false
	}
	return e, true
}

// GetCode returns the code of the first *Error in err's chain, Success for
// nil and InternalServerError for anything outside the taxonomy.
func GetCode(err error) ErrorCode {
	if err == nil {
		return Success
	}
	if e, ok := asError(err); ok {
		return e.Code
	}
	return InternalServerError
}

// GetError returns the *Error in err's chain, wrapping foreign errors as
// InternalServerError.
func GetError(err error) *Error {
	if err == nil {
		return nil
	}
	if e, ok := asError(err); ok {
		return e
	}
	return build(InternalServerError, err.Error(), err)
}

// Is reports whether err carries code.
func Is(err error, code ErrorCode) bool {
	e, ok := asError(err)
	return ok && e.Code == code
}

func callers(skip int) string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(skip+1, pcs)
	if n == 0 {
		return ""
	}

	var b strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for frame, more := frames.Next(); ; frame, more = frames.Next() {
		if !strings.HasPrefix(frame.Function, "runtime.") {
			fmt.Fprintf(&b, "\n\t%s:%d %s", frame.File, frame.Line, frame.Function)
		}
		if !more {
			break
		}
	}
	return b.String()
}

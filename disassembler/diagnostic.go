package disassembler

import (
	"errors"
	"fmt"
	"strconv"
)

// Severity represents the severity level of a diagnostic.
type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Diagnostic is a message produced while decoding a program.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	Line     *int     `json:"line,omitempty"` // 0-based input line, errors only
	Err      error    `json:"-"`
}

// LineError is a decode error tied to the input line it was found on.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	// plain digits, the printer would group them by locale
	return f("At line %s: %v", strconv.Itoa(e.Line), e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

func newError(err error, line int) Diagnostic {
	return Diagnostic{Severity: SeverityError, Message: err.Error(), Line: &line, Err: err}
}

func newWarning(message string) Diagnostic {
	return Diagnostic{Severity: SeverityWarning, Message: message}
}

// IsError reports whether the diagnostic stopped decoding.
func (d Diagnostic) IsError() bool {
	return d.Severity == SeverityError
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
}

// FirstError returns the first error diagnostic as a Go error, or nil. The
// error keeps the cause recorded on the diagnostic.
func FirstError(diags []Diagnostic) error {
	for _, d := range diags {
		if !d.IsError() {
			continue
		}
		if d.Err != nil {
			return d.Err
		}
		return errors.New(d.Message)
	}
	return nil
}

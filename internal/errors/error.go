package errors

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
)

// Category represents the type of error.
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryTreefile   Category = "treefile"
	CategoryConfig     Category = "config"
	CategoryPublish    Category = "publish"
	CategoryCLI        Category = "cli"
)

// Location represents a position in a source file.
type Location struct {
	File   string
	Line   int
	Column int
}

// String returns the location as a formatted string.
func (l *Location) String() string {
	if l == nil {
		return ""
	}
	file := l.File
	if file == "" {
		file = "<input>"
	}
	if l.Line == 0 {
		return file
	}
	if l.Column > 0 {
		return fmt.Sprintf("%s:%d:%d", file, l.Line, l.Column)
	}
	return fmt.Sprintf("%s:%d", file, l.Line)
}

// Error is a structured error with an optional source location.
type Error struct {
	// Code is a unique error identifier (e.g., "E100").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer, instance-specific explanation.
	Detail string

	// Location is the source position where the error occurred.
	Location *Location

	// Context contains surrounding source lines.
	Context []string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = e.Code + ": " + msg
	}
	if e.Location != nil {
		msg = e.Location.String() + ": " + msg
	}
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Is reports whether target is an *Error with the same code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || t.Code == "" {
		return false
	}
	return t.Code == e.Code
}

// WithDetail adds an explanation specific to this occurrence.
func (e *Error) WithDetail(format string, args ...any) *Error {
	if len(args) > 0 {
		e.Detail = fmt.Sprintf(format, args...)
	} else {
		e.Detail = format
	}
	return e
}

// WithLocation records the source position and reads the surrounding
// lines from file when it exists.
func (e *Error) WithLocation(file string, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	if file != "" && line > 0 {
		e.Context = readContextLines(file, line, contextSize)
	}
	return e
}

// WithSource records the source position using src for context lines.
func (e *Error) WithSource(file string, src []byte, line, column int) *Error {
	e.Location = &Location{File: file, Line: line, Column: column}
	e.Context = contextLines(bufio.NewScanner(bytes.NewReader(src)), line, contextSize)
	return e
}

// Wrap wraps another error.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// readContextLines reads lines around targetLine from a file.
func readContextLines(filename string, targetLine, contextSize int) []string {
	file, err := os.Open(filename)
	if err != nil {
		return nil
	}
	defer file.Close()

	return contextLines(bufio.NewScanner(file), targetLine, contextSize)
}

// contextLines returns the lines within contextSize/2 of targetLine.
// When targetLine is near the top of the input the window is truncated;
// ContextStart reports the first line number returned.
func contextLines(scanner *bufio.Scanner, targetLine, contextSize int) []string {
	var lines []string
	lineNum := 0
	startLine := ContextStart(targetLine, contextSize)
	endLine := targetLine + contextSize/2

	for scanner.Scan() {
		lineNum++
		if lineNum >= startLine && lineNum <= endLine {
			lines = append(lines, scanner.Text())
		}
		if lineNum > endLine {
			break
		}
	}

	return lines
}

// ContextStart returns the first line number of a context window.
func ContextStart(targetLine, contextSize int) int {
	start := targetLine - contextSize/2
	if start < 1 {
		start = 1
	}
	return start
}

// New creates an Error from a registered error code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates an Error with a formatted message and no code.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps a standard error in an Error. Existing *Error values are
// returned unchanged.
func FromError(err error, code string) *Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return e
	}
	return New(code).Wrap(err)
}

package wininf

import (
	"errors"
	"fmt"
)

// Errors returned by parsing. All are fatal: the first occurrence aborts
// the whole parse and no partial document is returned.
var (
	// ErrFileNotFound indicates the INF file doesn't exist.
	ErrFileNotFound = errors.New("inf file not found")

	// ErrSectionName indicates a section header failed validation.
	ErrSectionName = errors.New("invalid section name")

	// ErrQuotedValue indicates a quoted value with no closing quote.
	ErrQuotedValue = errors.New("unterminated quoted value")

	// ErrContinuation indicates malformed text after a quoted value's
	// closing quote, where only a comment or a single backslash may follow.
	ErrContinuation = errors.New("invalid continuation after quoted value")
)

// Stage identifies which part of the pipeline an error came from.
type Stage uint8

const (
	// StageOpen covers the existence check and opening the file.
	StageOpen Stage = iota
	// StageRead covers reads from the byte source.
	StageRead
	// StageLine covers decoding and line assembly.
	StageLine
	// StageGrammar covers the section grammar.
	StageGrammar
)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageOpen:
		return "open"
	case StageRead:
		return "read"
	case StageLine:
		return "line"
	case StageGrammar:
		return "grammar"
	default:
		return "unknown"
	}
}

// ParseError is the single top-level error surface. It reports which
// stage failed and wraps the underlying cause.
type ParseError struct {
	// Stage is the pipeline stage that failed.
	Stage Stage
	// Path is the file path being parsed, when known.
	Path string
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("parse %s: %s stage: %v", e.Path, e.Stage, e.Err)
	}
	return fmt.Sprintf("parse: %s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// GrammarError describes a grammar violation with the section and key
// being parsed when it occurred.
type GrammarError struct {
	// Section is the current section name, empty before any header.
	Section string
	// Key is the offending entry key, when the line had one.
	Key string
	// Err is one of ErrSectionName, ErrQuotedValue or ErrContinuation,
	// possibly wrapped with detail.
	Err error
}

// Error implements the error interface.
func (e *GrammarError) Error() string {
	switch {
	case e.Section != "" && e.Key != "":
		return fmt.Sprintf("section %q: key %q: %v", e.Section, e.Key, e.Err)
	case e.Section != "":
		return fmt.Sprintf("section %q: %v", e.Section, e.Err)
	default:
		return e.Err.Error()
	}
}

// Unwrap returns the underlying error.
func (e *GrammarError) Unwrap() error {
	return e.Err
}

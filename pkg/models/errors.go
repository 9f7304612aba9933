package models

import "fmt"

// ValidationError is a single field failing a rule on manual entry.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// FormatError aborts a whole parse before any record is accepted.
type FormatError struct {
	Reason string
}

func (e *FormatError) Error() string {
	return e.Reason
}

// PartialRecordError describes one skipped row. Row is 1-based and counts the header.
type PartialRecordError struct {
	Row    int
	Reason string
}

func (e *PartialRecordError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// BackendError wraps any failure of a store call.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

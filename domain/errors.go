package domain

import (
	"fmt"
)

// DomainError represents errors in the domain layer
type DomainError struct {
	Code    string
	Message string
	Cause   error
}

func (e DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e DomainError) Unwrap() error {
	return e.Cause
}

// Domain error codes
const (
	ErrCodeInvalidInput      = "INVALID_INPUT"
	ErrCodeFileNotFound      = "FILE_NOT_FOUND"
	ErrCodeParseError        = "PARSE_ERROR"
	ErrCodeConfigError       = "CONFIG_ERROR"
	ErrCodeOutputError       = "OUTPUT_ERROR"
	ErrCodeUnsupportedFormat = "UNSUPPORTED_FORMAT"

	// Graph construction misuse. These signal bugs in the calling encoder,
	// not properties of the graph being lowered.
	ErrCodeInvalidLabel   = "INVALID_LABEL"
	ErrCodeDuplicateLabel = "DUPLICATE_LABEL"
	ErrCodeReservedLabel  = "RESERVED_LABEL"
	ErrCodeGraphMismatch  = "GRAPH_MISMATCH"
	ErrCodeGraphConsumed  = "GRAPH_CONSUMED"
)

// NewDomainError creates a new domain error
func NewDomainError(code, message string, cause error) error {
	return DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewInvalidInputError creates an invalid input error
func NewInvalidInputError(message string, cause error) error {
	return NewDomainError(ErrCodeInvalidInput, message, cause)
}

// NewFileNotFoundError creates a file not found error
func NewFileNotFoundError(path string, cause error) error {
	return NewDomainError(ErrCodeFileNotFound, fmt.Sprintf("file not found: %s", path), cause)
}

// NewParseError creates a parse error for a graph description document
func NewParseError(file string, cause error) error {
	return NewDomainError(ErrCodeParseError, fmt.Sprintf("failed to parse graph document: %s", file), cause)
}

// NewConfigError creates a configuration error
func NewConfigError(message string, cause error) error {
	return NewDomainError(ErrCodeConfigError, message, cause)
}

// NewOutputError creates an output error
func NewOutputError(message string, cause error) error {
	return NewDomainError(ErrCodeOutputError, message, cause)
}

// NewUnsupportedFormatError creates an unsupported format error
func NewUnsupportedFormatError(format string) error {
	return NewDomainError(ErrCodeUnsupportedFormat, fmt.Sprintf("unsupported format: %s", format), nil)
}

// NewInvalidLabelError reports a block label violating the lexical rule
func NewInvalidLabelError(label string) error {
	return NewDomainError(ErrCodeInvalidLabel, fmt.Sprintf("invalid block label: %q", label), nil)
}

// NewDuplicateLabelError reports a block label already used in the graph
func NewDuplicateLabelError(label string) error {
	return NewDomainError(ErrCodeDuplicateLabel, fmt.Sprintf("duplicate block label: %q", label), nil)
}

// NewReservedLabelError reports a block label colliding with the reserved
// terminal label
func NewReservedLabelError(label string) error {
	return NewDomainError(ErrCodeReservedLabel, fmt.Sprintf("block label %q is reserved", label), nil)
}

// NewGraphMismatchError reports a block index applied to a graph other than
// the one that minted it
func NewGraphMismatchError(method string) error {
	return NewDomainError(ErrCodeGraphMismatch,
		fmt.Sprintf("block index does not belong to method %q", method), nil)
}

// NewGraphConsumedError reports use of a builder after lowering consumed it
func NewGraphConsumedError(method string) error {
	return NewDomainError(ErrCodeGraphConsumed,
		fmt.Sprintf("method %q was already lowered and can no longer be used", method), nil)
}

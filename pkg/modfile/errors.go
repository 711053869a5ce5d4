// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFileNotFound is the sentinel error wrapped by FileNotFoundError.
	ErrFileNotFound = errors.New("file not found")
	// ErrMalformedDocument is the sentinel error wrapped by MalformedDocumentError.
	ErrMalformedDocument = errors.New("malformed document")
	// ErrCyclicReference is the sentinel error wrapped by CyclicReferenceError.
	ErrCyclicReference = errors.New("cyclic reference")
)

type (
	// FileNotFoundError is returned when the root document or a relative
	// reference target does not exist on disk. Path names the exact file
	// that could not be found.
	FileNotFoundError struct {
		Path string
	}

	// MalformedDocumentError is returned when any file along a reference
	// chain is not valid JSON.
	MalformedDocumentError struct {
		Path  string
		Cause error
	}

	// CyclicReferenceError is returned when a reference chain revisits a
	// file that is still being resolved on the active path.
	CyclicReferenceError struct {
		// Path is the file that closed the cycle.
		Path string
		// Chain is the sequence of files on the active resolution path.
		Chain []string
	}
)

// Error implements the error interface.
func (e *FileNotFoundError) Error() string {
	return fmt.Sprintf("referenced file not found: %s", e.Path)
}

// Unwrap returns ErrFileNotFound for errors.Is() compatibility.
func (e *FileNotFoundError) Unwrap() error { return ErrFileNotFound }

// Error implements the error interface.
func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("invalid JSON in %s: %v", e.Path, e.Cause)
}

// Unwrap returns the chain of ErrMalformedDocument and the decode cause.
func (e *MalformedDocumentError) Unwrap() []error {
	return []error{ErrMalformedDocument, e.Cause}
}

// Error implements the error interface.
func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("cyclic reference: %s re-enters active chain [%s]",
		e.Path, strings.Join(e.Chain, " -> "))
}

// Unwrap returns ErrCyclicReference for errors.Is() compatibility.
func (e *CyclicReferenceError) Unwrap() error { return ErrCyclicReference }

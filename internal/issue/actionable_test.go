// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestActionableError_Error(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  *ActionableError
		want string
	}{
		{
			"operation only",
			&ActionableError{Operation: "resolve module tree"},
			"failed to resolve module tree",
		},
		{
			"with resource",
			&ActionableError{Operation: "load schema", Resource: "./schema.json"},
			"failed to load schema: ./schema.json",
		},
		{
			"with cause",
			&ActionableError{Operation: "load schema", Resource: "./schema.json", Cause: errors.New("permission denied")},
			"failed to load schema: ./schema.json: permission denied",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestActionableError_Unwrap(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("root cause")
	wrapped := fmt.Errorf("mid layer: %w", sentinel)
	ae := &ActionableError{Operation: "extract test cases", Cause: wrapped}

	if !errors.Is(ae, sentinel) {
		t.Error("errors.Is() does not reach the root cause through Unwrap")
	}
}

func TestActionableError_Format(t *testing.T) {
	t.Parallel()

	ae := NewErrorContext().
		WithOperation("resolve module tree").
		WithResource("./soc_top.json").
		WithSuggestion("Check the $ref target path").
		WithSuggestion("Run chipdoc resolve to inspect the tree").
		Wrap(fmt.Errorf("read file: %w", errors.New("no such file"))).
		Build()

	concise := ae.Format(false)
	if !strings.Contains(concise, "• Check the $ref target path") {
		t.Errorf("Format(false) missing suggestion bullet:\n%s", concise)
	}
	if strings.Contains(concise, "Error chain:") {
		t.Errorf("Format(false) must not print the error chain:\n%s", concise)
	}

	verbose := ae.Format(true)
	for _, want := range []string{"Error chain:", "1. read file: no such file", "2. no such file"} {
		if !strings.Contains(verbose, want) {
			t.Errorf("Format(true) missing %q:\n%s", want, verbose)
		}
	}
}

func TestErrorContext_Build(t *testing.T) {
	t.Parallel()

	if got := NewErrorContext().Build(); got != nil {
		t.Errorf("Build() without operation = %v, want nil", got)
	}
	if got := NewErrorContext().WithResource("x").BuildError(); got != nil {
		t.Errorf("BuildError() without operation = %v, want nil", got)
	}

	err := NewErrorContext().WithOperation("load configuration").BuildError()
	if err == nil {
		t.Fatal("BuildError() = nil with an operation set")
	}
	var ae *ActionableError
	if !errors.As(err, &ae) || ae.Operation != "load configuration" {
		t.Errorf("BuildError() = %v, want an ActionableError", err)
	}
}

func TestWrapWithContext(t *testing.T) {
	t.Parallel()

	if got := WrapWithContext(nil, "op", "res"); got != nil {
		t.Errorf("WrapWithContext(nil) = %v, want nil", got)
	}

	cause := errors.New("boom")
	ae := WrapWithContext(cause, "render report", "./out.json")
	if ae == nil || ae.Operation != "render report" || ae.Resource != "./out.json" {
		t.Fatalf("WrapWithContext() = %+v", ae)
	}
	if !errors.Is(ae, cause) {
		t.Error("wrapped error does not unwrap to its cause")
	}
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"strings"
	"testing"

	"chipdoc-cli/internal/config"
	"chipdoc-cli/internal/extract"
	"chipdoc-cli/internal/issue"
)

func TestPickFormat(t *testing.T) {
	orig := appConfig
	t.Cleanup(func() { appConfig = orig })

	tests := []struct {
		name       string
		flag       string
		configured config.OutputFormat
		allowed    []config.OutputFormat
		want       config.OutputFormat
		wantErr    bool
	}{
		{
			"flag wins over config",
			"json",
			config.FormatTree,
			[]config.OutputFormat{config.FormatTable, config.FormatTree, config.FormatJSON},
			config.FormatJSON,
			false,
		},
		{
			"empty flag uses configured default",
			"",
			config.FormatTree,
			[]config.OutputFormat{config.FormatTable, config.FormatTree, config.FormatJSON},
			config.FormatTree,
			false,
		},
		{
			"unsupported configured default falls back to table",
			"",
			config.FormatSummary,
			[]config.OutputFormat{config.FormatTable, config.FormatTree, config.FormatJSON},
			config.FormatTable,
			false,
		},
		{
			"invalid flag value errors",
			"csv",
			config.FormatTable,
			[]config.OutputFormat{config.FormatTable},
			"",
			true,
		},
		{
			"flag valid globally but not for this command",
			"tree",
			config.FormatTable,
			[]config.OutputFormat{config.FormatTable, config.FormatJSON, config.FormatSummary},
			"",
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			appConfig = config.DefaultConfig()
			appConfig.Output.Format = tt.configured

			got, err := pickFormat(tt.flag, tt.allowed...)
			if (err != nil) != tt.wantErr {
				t.Fatalf("pickFormat() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, config.ErrInvalidOutputFormat) {
					t.Errorf("pickFormat() error = %v, want ErrInvalidOutputFormat", err)
				}
				return
			}
			if got != tt.want {
				t.Errorf("pickFormat() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFilterModuleRecords(t *testing.T) {
	t.Parallel()

	records := []extract.ModuleRecord{
		{Name: "alu", FullPath: "cpu0/alu"},
		{Name: "regfile", FullPath: "cpu0/regfile"},
		{Name: "alu", FullPath: "cpu1/alu"},
	}

	kept := filterModuleRecords(records, "alu")
	if len(kept) != 2 {
		t.Fatalf("filterModuleRecords() len = %d, want 2", len(kept))
	}
	if kept[0].FullPath != "cpu0/alu" || kept[1].FullPath != "cpu1/alu" {
		t.Errorf("filterModuleRecords() = %+v", kept)
	}
	if got := filterModuleRecords(records, "fifo"); len(got) != 0 {
		t.Errorf("filterModuleRecords(fifo) = %+v, want none", got)
	}
}

func TestFilterTestCaseRecords(t *testing.T) {
	t.Parallel()

	records := []extract.TestCaseRecord{
		{Module: "cpu", TestName: "reset"},
		{Module: "alu", TestName: "add"},
		{Module: "cpu", TestName: "random"},
	}

	kept := filterTestCaseRecords(records, "cpu")
	if len(kept) != 2 || kept[0].TestName != "reset" || kept[1].TestName != "random" {
		t.Errorf("filterTestCaseRecords() = %+v", kept)
	}
}

func TestFindModule(t *testing.T) {
	t.Parallel()

	records := []extract.ModuleRecord{
		{Name: "cpu", FullPath: "cpu"},
		{Name: "alu", FullPath: "cpu/alu"},
		{Name: "alu", FullPath: "cpu/fpu/alu"},
		{Name: "regfile", FullPath: "cpu/regfile"},
	}

	rec, err := findModule(records, "cpu/fpu/alu")
	if err != nil || rec.FullPath != "cpu/fpu/alu" {
		t.Errorf("findModule(full path) = %+v, %v", rec, err)
	}

	rec, err = findModule(records, "regfile")
	if err != nil || rec.FullPath != "cpu/regfile" {
		t.Errorf("findModule(unambiguous name) = %+v, %v", rec, err)
	}

	_, err = findModule(records, "alu")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("findModule(ambiguous name) error = %v", err)
	}

	_, err = findModule(records, "fifo")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("findModule(missing) error = %v", err)
	}
}

func TestSamePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		a, b string
		want bool
	}{
		{"./top.json", "top.json", true},
		{"a/../top.json", "top.json", true},
		{"top.json", "other.json", false},
		{"./dir/top.json", "dir/top.json", true},
	}

	for _, tt := range tests {
		if got := samePath(tt.a, tt.b); got != tt.want {
			t.Errorf("samePath(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFormatErrorForDisplay(t *testing.T) {
	t.Parallel()

	plain := errors.New("boom")
	if got := formatErrorForDisplay(plain, false); got != "boom" {
		t.Errorf("formatErrorForDisplay(plain) = %q", got)
	}

	actionable := issue.NewErrorContext().
		WithOperation("resolve module tree").
		WithSuggestion("Check the path").
		BuildError()
	got := formatErrorForDisplay(actionable, false)
	if !strings.Contains(got, "Check the path") {
		t.Errorf("formatErrorForDisplay(actionable) = %q, want the suggestion", got)
	}
}

func TestExitError(t *testing.T) {
	t.Parallel()

	cause := errors.New("underlying")
	err := &ExitError{Code: 1, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("ExitError does not unwrap to its cause")
	}

	bare := &ExitError{Code: 2}
	if bare.Error() == "" {
		t.Error("ExitError without cause should still describe itself")
	}
}

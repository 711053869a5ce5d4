// SPDX-License-Identifier: MPL-2.0

package cmdcheck

import (
	"errors"
	"fmt"
	"strings"

	"mvdan.cc/sh/v3/syntax"

	"chipdoc-cli/internal/extract"
)

var (
	// ErrEmptyRunCmd is reported for test cases with no run command at all.
	ErrEmptyRunCmd = errors.New("empty run command")
)

type (
	// Problem describes one test case whose run command failed the lint.
	Problem struct {
		// Module is the owning module's bare name.
		Module string
		// TestName is the offending test case.
		TestName string
		// Err is the parse failure (or ErrEmptyRunCmd).
		Err error
	}
)

// Error formats the problem for direct display.
func (p Problem) Error() string {
	return fmt.Sprintf("%s/%s: %v", p.Module, p.TestName, p.Err)
}

// CheckRunCmd parses a single run command as shell syntax.
func CheckRunCmd(cmd string) error {
	if strings.TrimSpace(cmd) == "" {
		return ErrEmptyRunCmd
	}
	parser := syntax.NewParser()
	_, err := parser.Parse(strings.NewReader(cmd), "")
	return err
}

// Check lints every record's run command and returns the problems found,
// in record order. An empty result means all commands parse.
func Check(records []extract.TestCaseRecord) []Problem {
	var problems []Problem
	for _, rec := range records {
		if err := CheckRunCmd(rec.RunCmd); err != nil {
			problems = append(problems, Problem{
				Module:   rec.Module,
				TestName: rec.TestName,
				Err:      err,
			})
		}
	}
	return problems
}

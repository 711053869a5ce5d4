// SPDX-License-Identifier: MPL-2.0

package cmdcheck

import (
	"errors"
	"testing"

	"chipdoc-cli/internal/extract"
)

func TestCheckRunCmd(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cmd     string
		wantErr bool
	}{
		{"simple command", "make sim", false},
		{"pipeline", "iverilog -o sim tb.v | tee build.log", false},
		{"env assignment", "SEED=42 make random", false},
		{"subshell and redirect", "(cd build && vvp sim) > run.log 2>&1", false},
		{"unterminated quote", `echo "oops`, true},
		{"dangling pipe", "make |", true},
		{"unclosed subshell", "(make sim", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := CheckRunCmd(tt.cmd)
			if (err != nil) != tt.wantErr {
				t.Errorf("CheckRunCmd(%q) error = %v, wantErr %v", tt.cmd, err, tt.wantErr)
			}
		})
	}
}

func TestCheckRunCmd_Empty(t *testing.T) {
	t.Parallel()

	for _, cmd := range []string{"", "   ", "\t\n"} {
		if err := CheckRunCmd(cmd); !errors.Is(err, ErrEmptyRunCmd) {
			t.Errorf("CheckRunCmd(%q) = %v, want ErrEmptyRunCmd", cmd, err)
		}
	}
}

func TestCheck(t *testing.T) {
	t.Parallel()

	records := []extract.TestCaseRecord{
		{Module: "cpu", TestName: "smoke", RunCmd: "make smoke"},
		{Module: "cpu", TestName: "broken", RunCmd: `echo "unterminated`},
		{Module: "alu", TestName: "empty", RunCmd: ""},
	}

	problems := Check(records)
	if len(problems) != 2 {
		t.Fatalf("Check() = %d problems, want 2: %v", len(problems), problems)
	}
	if problems[0].Module != "cpu" || problems[0].TestName != "broken" {
		t.Errorf("problems[0] = %+v, want cpu/broken", problems[0])
	}
	if !errors.Is(problems[1].Err, ErrEmptyRunCmd) {
		t.Errorf("problems[1].Err = %v, want ErrEmptyRunCmd", problems[1].Err)
	}
}

func TestCheck_AllClean(t *testing.T) {
	t.Parallel()

	records := []extract.TestCaseRecord{
		{Module: "cpu", TestName: "a", RunCmd: "make a"},
		{Module: "cpu", TestName: "b", RunCmd: "make b && make check"},
	}
	if problems := Check(records); len(problems) != 0 {
		t.Errorf("Check() = %v, want none", problems)
	}
}

func TestProblem_Error(t *testing.T) {
	t.Parallel()

	p := Problem{Module: "cpu", TestName: "smoke", Err: ErrEmptyRunCmd}
	want := "cpu/smoke: empty run command"
	if got := p.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

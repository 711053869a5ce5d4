// SPDX-License-Identifier: MPL-2.0

package modfile

import "testing"

func TestAsModule(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node map[string]any
		want bool
	}{
		{
			"all required fields",
			map[string]any{"name": "alu", "filepath": "./alu.v", "docpath": "./alu.md"},
			true,
		},
		{
			"missing docpath",
			map[string]any{"name": "alu", "filepath": "./alu.v"},
			false,
		},
		{
			"non-string filepath",
			map[string]any{"name": "alu", "filepath": 1, "docpath": "./alu.md"},
			false,
		},
		{
			"name only",
			map[string]any{"name": "alu"},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			mod, ok := AsModule(tt.node)
			if ok != tt.want {
				t.Fatalf("AsModule() ok = %v, want %v", ok, tt.want)
			}
			if ok && mod.Name != "alu" {
				t.Errorf("AsModule() name = %q, want alu", mod.Name)
			}
		})
	}
}

func TestNormalizeSubmodules(t *testing.T) {
	t.Parallel()

	single := map[string]any{"name": "one"}
	tests := []struct {
		name      string
		value     any
		wantCount int
	}{
		{"absent", nil, 0},
		{"single mapping", single, 1},
		{"sequence", []any{single, map[string]any{"name": "two"}}, 2},
		{"sequence with junk", []any{single, "noise", 42}, 1},
		{"scalar", "oops", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			subs := NormalizeSubmodules(tt.value)
			if got := len(subs.Entries()); got != tt.wantCount {
				t.Errorf("NormalizeSubmodules() count = %d, want %d", got, tt.wantCount)
			}
			if subs.IsEmpty() != (tt.wantCount == 0) {
				t.Errorf("IsEmpty() = %v with %d entries", subs.IsEmpty(), tt.wantCount)
			}
		})
	}
}

func TestModule_Test(t *testing.T) {
	t.Parallel()

	withTest := map[string]any{
		"name": "alu", "filepath": "./alu.v", "docpath": "./alu.md",
		"test": map[string]any{
			"testbench_path":    "./tb/alu_tb.sv",
			"golden_model_path": "./model/alu.py",
			"test_case": []any{
				map[string]any{"name": "smoke", "run_cmd": "make sim"},
			},
		},
	}

	mod, ok := AsModule(withTest)
	if !ok {
		t.Fatal("AsModule() = false, want true")
	}
	cfg, ok := mod.Test()
	if !ok {
		t.Fatal("Test() = false, want true")
	}
	if cfg.TestbenchPath() != "./tb/alu_tb.sv" {
		t.Errorf("TestbenchPath() = %q", cfg.TestbenchPath())
	}
	if cfg.GoldenModelPath() != "./model/alu.py" {
		t.Errorf("GoldenModelPath() = %q", cfg.GoldenModelPath())
	}
	if len(cfg.Cases()) != 1 {
		t.Fatalf("Cases() len = %d, want 1", len(cfg.Cases()))
	}

	noTest := map[string]any{"name": "alu", "filepath": "./alu.v", "docpath": "./alu.md"}
	mod, _ = AsModule(noTest)
	if mod.HasTest() {
		t.Error("HasTest() = true for module without test config")
	}
}

func TestTestCase_OutputLogPaths(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value any
		want  []string
	}{
		{"single string", "./logs/a.log", []string{"./logs/a.log"}},
		{"sequence", []any{"./a.log", "./b.log"}, []string{"./a.log", "./b.log"}},
		{"absent", nil, nil},
		{"mixed junk", []any{"./a.log", 7}, []string{"./a.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tc := TestCase{raw: map[string]any{FieldOutputLogPath: tt.value}}
			got := tc.OutputLogPaths()
			if len(got) != len(tt.want) {
				t.Fatalf("OutputLogPaths() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("OutputLogPaths()[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

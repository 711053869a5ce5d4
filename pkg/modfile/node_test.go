// SPDX-License-Identifier: MPL-2.0

package modfile

import "testing"

func TestClassifyNode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		node     map[string]any
		wantRef  bool
		wantPath string
	}{
		{"relative ref", map[string]any{"$ref": "./alu.json"}, true, "./alu.json"},
		{"parent ref", map[string]any{"$ref": "../common/fifo.json"}, true, "../common/fifo.json"},
		{"opaque ref", map[string]any{"$ref": "http://example.com/x.json"}, true, "http://example.com/x.json"},
		{"ref with siblings", map[string]any{"$ref": "./x.json", "note": "y"}, true, "./x.json"},
		{"non-string ref", map[string]any{"$ref": 42}, false, ""},
		{"plain mapping", map[string]any{"name": "alu"}, false, ""},
		{"empty mapping", map[string]any{}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ref, ok := ClassifyNode(tt.node)
			if ok != tt.wantRef {
				t.Fatalf("ClassifyNode() ok = %v, want %v", ok, tt.wantRef)
			}
			if ok && ref.Path != tt.wantPath {
				t.Errorf("ClassifyNode() path = %q, want %q", ref.Path, tt.wantPath)
			}
		})
	}
}

func TestRef_IsRelative(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want bool
	}{
		{"./alu.json", true},
		{"../common/fifo.json", true},
		{"alu.json", false},
		{"http://example.com/x.json", false},
		{"#/definitions/module", false},
		{"/abs/path.json", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			if got := (Ref{Path: tt.path}).IsRelative(); got != tt.want {
				t.Errorf("Ref(%q).IsRelative() = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

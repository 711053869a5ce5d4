// SPDX-License-Identifier: MPL-2.0

package modfile

const (
	// FieldName is the module's identifying name.
	FieldName = "name"
	// FieldFilepath is the path to the module's HDL source.
	FieldFilepath = "filepath"
	// FieldDocpath is the path to the module's documentation.
	FieldDocpath = "docpath"
	// FieldTest holds the module's test configuration mapping.
	FieldTest = "test"
	// FieldSubmodules holds child modules (single mapping or sequence).
	FieldSubmodules = "submodules"
)

type (
	// Module is a typed view over a resolved mapping that satisfies the
	// module contract: string values for name, filepath and docpath. It
	// holds a reference to the underlying mapping, never a copy.
	Module struct {
		Name     string
		Filepath string
		Docpath  string

		raw map[string]any
	}

	// Submodules is the tagged form of a module's submodules field, which
	// documents may write as absent, a single mapping, or a sequence of
	// mappings. Traversal code only ever sees the normalized sequence.
	Submodules struct {
		entries []map[string]any
	}
)

// AsModule reports whether a mapping qualifies as a module and, if so,
// returns its typed view. A mapping qualifies iff all three required
// fields are present with string values.
func AsModule(m map[string]any) (Module, bool) {
	name, okName := m[FieldName].(string)
	file, okFile := m[FieldFilepath].(string)
	doc, okDoc := m[FieldDocpath].(string)
	if !okName || !okFile || !okDoc {
		return Module{}, false
	}
	return Module{Name: name, Filepath: file, Docpath: doc, raw: m}, true
}

// Test returns the module's test configuration, if it carries one.
func (m Module) Test() (TestConfig, bool) {
	cfg, ok := m.raw[FieldTest].(map[string]any)
	if !ok {
		return TestConfig{}, false
	}
	return TestConfig{raw: cfg}, true
}

// HasTest reports whether the module carries a test configuration mapping.
func (m Module) HasTest() bool {
	_, ok := m.Test()
	return ok
}

// Submodules returns the module's children in normalized form.
func (m Module) Submodules() Submodules {
	return NormalizeSubmodules(m.raw[FieldSubmodules])
}

// NormalizeSubmodules converts any of the accepted submodule container
// shapes into the canonical sequence form. Non-mapping sequence elements
// are skipped; an unrecognized shape normalizes to empty.
func NormalizeSubmodules(v any) Submodules {
	switch node := v.(type) {
	case map[string]any:
		return Submodules{entries: []map[string]any{node}}
	case []any:
		entries := make([]map[string]any, 0, len(node))
		for _, child := range node {
			if m, ok := child.(map[string]any); ok {
				entries = append(entries, m)
			}
		}
		return Submodules{entries: entries}
	default:
		return Submodules{}
	}
}

// Entries returns the normalized child sequence in declaration order.
func (s Submodules) Entries() []map[string]any { return s.entries }

// IsEmpty reports whether the module has no children.
func (s Submodules) IsEmpty() bool { return len(s.entries) == 0 }

// SPDX-License-Identifier: MPL-2.0

package modfile

import "strings"

// RefKey is the reserved mapping key that marks a reference node.
const RefKey = "$ref"

type (
	// Ref is a reference node extracted from a mapping: a link to another
	// document identified by path. Relative paths (./ or ../) are resolved
	// against the directory of the file that produced the node; any other
	// path is opaque and passes through resolution untouched.
	Ref struct {
		// Path is the raw reference target as written in the document.
		Path string
	}
)

// ClassifyNode inspects a mapping and reports whether it is a reference
// node. A mapping is a reference node when it carries RefKey with a string
// value. Classification happens once, before any recursion, so resolution
// logic never re-checks node kinds mid-walk.
func ClassifyNode(m map[string]any) (Ref, bool) {
	raw, ok := m[RefKey]
	if !ok {
		return Ref{}, false
	}
	path, ok := raw.(string)
	if !ok {
		return Ref{}, false
	}
	return Ref{Path: path}, true
}

// IsRelative reports whether the reference target is a relative filesystem
// path that the resolver must follow. Anything else (URLs, fragment-style
// schema pointers) is opaque to this package.
func (r Ref) IsRelative() bool {
	return strings.HasPrefix(r.Path, "./") || strings.HasPrefix(r.Path, "../")
}

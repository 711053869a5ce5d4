// SPDX-License-Identifier: MPL-2.0

package modfile

import (
	"encoding/json"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"
)

// Resolve loads the JSON document at path and replaces every relative
// reference node with the fully resolved content of its target file.
// Each hop in a reference chain is resolved against the directory of the
// file that declared it, not against the root document's directory, so a
// chain spanning three files re-bases twice.
//
// Resolution is eager and uncached: a file referenced twice is read and
// parsed twice. Sequences keep their element order; mapping key order is
// not significant. Opaque (non-relative) references are left in place.
//
// Errors: FileNotFoundError for a missing root or target file,
// MalformedDocumentError for invalid JSON at any hop, and
// CyclicReferenceError when a chain re-enters a file that is still being
// resolved.
func Resolve(path string) (any, error) {
	return loadAndResolve(path, nil)
}

// loadAndResolve reads one file, guards against re-entering it while it is
// still open on the active chain, and resolves its contents with the
// file's own directory as the new base.
func loadAndResolve(path string, active []string) (any, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	if slices.Contains(active, abs) {
		return nil, &CyclicReferenceError{Path: abs, Chain: active}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &FileNotFoundError{Path: path}
		}
		return nil, err
	}
	log.Debug("loaded document", "path", path, "bytes", len(data))

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &MalformedDocumentError{Path: path, Cause: err}
	}

	chain := append(slices.Clone(active), abs)
	return resolveValue(doc, filepath.Dir(path), chain)
}

// resolveValue rebuilds a document value with all relative reference nodes
// replaced. baseDir is the directory of whichever file produced this value.
func resolveValue(v any, baseDir string, active []string) (any, error) {
	switch node := v.(type) {
	case map[string]any:
		if ref, ok := ClassifyNode(node); ok {
			if !ref.IsRelative() {
				// Opaque reference (URL, schema pointer): not ours to chase.
				return node, nil
			}
			target := filepath.Join(baseDir, ref.Path)
			log.Debug("resolving reference", "ref", ref.Path, "base", baseDir)
			return loadAndResolve(target, active)
		}
		resolved := make(map[string]any, len(node))
		for key, child := range node {
			out, err := resolveValue(child, baseDir, active)
			if err != nil {
				return nil, err
			}
			resolved[key] = out
		}
		return resolved, nil
	case []any:
		// Element order reflects declaration order of submodules and test
		// cases and must survive resolution.
		resolved := make([]any, len(node))
		for i, child := range node {
			out, err := resolveValue(child, baseDir, active)
			if err != nil {
				return nil, err
			}
			resolved[i] = out
		}
		return resolved, nil
	default:
		return v, nil
	}
}

// SPDX-License-Identifier: MPL-2.0

package extract

import (
	"github.com/charmbracelet/log"

	"chipdoc-cli/pkg/modfile"
)

// moduleWalk is the traversal context for one Modules call. The visited
// set lives here rather than in package state so each extraction is
// side-effect-free outside its own invocation.
type moduleWalk struct {
	visited map[string]struct{}
	records []ModuleRecord
}

// Modules walks a resolved document and returns its modules as a flat
// sequence in pre-order: a module's record precedes its descendants'.
//
// A node qualifies as a module iff it is a mapping with the three required
// string fields (name, filepath, docpath). The full hierarchical path of a
// child is its parent's full path plus "/" plus its own name; a root
// module's full path is just its name. The full path is also the dedup
// key: when the same path is reached again (for example through a second
// $ref to the same sub-tree), the first occurrence wins and the duplicate
// is dropped without re-descending into its children.
func Modules(doc any) []ModuleRecord {
	walk := &moduleWalk{visited: make(map[string]struct{})}
	walk.visit(doc, "")
	return walk.records
}

func (w *moduleWalk) visit(node any, parentPath string) {
	mapping, ok := node.(map[string]any)
	if !ok {
		return
	}
	mod, ok := modfile.AsModule(mapping)
	if !ok {
		return
	}

	fullPath := mod.Name
	if parentPath != "" {
		fullPath = parentPath + "/" + mod.Name
	}
	if _, seen := w.visited[fullPath]; seen {
		log.Debug("skipping duplicate module", "path", fullPath)
		return
	}
	w.visited[fullPath] = struct{}{}

	subs := mod.Submodules()
	w.records = append(w.records, ModuleRecord{
		Name:          mod.Name,
		Filepath:      mod.Filepath,
		Docpath:       mod.Docpath,
		Parent:        parentPath,
		FullPath:      fullPath,
		HasTest:       mod.HasTest(),
		HasSubmodules: !subs.IsEmpty(),
	})

	for _, child := range subs.Entries() {
		w.visit(child, fullPath)
	}
}

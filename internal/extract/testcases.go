// SPDX-License-Identifier: MPL-2.0

package extract

import (
	"fmt"

	"github.com/charmbracelet/log"

	"chipdoc-cli/pkg/modfile"
)

// testCaseWalk is the traversal context for one TestCases call.
type testCaseWalk struct {
	visited map[string]struct{}
	records []TestCaseRecord
}

// TestCases walks a resolved document and returns every test case as a
// flat sequence in declaration order.
//
// A node qualifies for extraction iff it is a mapping with a name field;
// it need not satisfy the stricter module contract. Deduplication is keyed
// by bare module name, not hierarchical path: once a name has been visited
// anywhere in the traversal, later occurrences and their descendants are
// skipped entirely. This key is deliberately looser than the one used by
// Modules and must stay that way; two distinct modules sharing a bare name
// collide here, which callers observe as cases from the first one only.
//
// Cases without a name field are assigned test_<index> from their
// zero-based position in the module's test_case sequence. A record's
// ModulePath is the path of the module's ancestors, excluding the module
// itself; children receive the accumulated path including it.
func TestCases(doc any) []TestCaseRecord {
	walk := &testCaseWalk{visited: make(map[string]struct{})}
	walk.visit(doc, "")
	return walk.records
}

func (w *testCaseWalk) visit(node any, parentPath string) {
	mapping, ok := node.(map[string]any)
	if !ok {
		return
	}
	name, ok := mapping[modfile.FieldName].(string)
	if !ok {
		return
	}
	if _, seen := w.visited[name]; seen {
		log.Debug("skipping already visited module", "module", name)
		return
	}
	w.visited[name] = struct{}{}

	if rawCfg, ok := mapping[modfile.FieldTest].(map[string]any); ok {
		w.emit(name, parentPath, rawCfg)
	}

	childPath := name
	if parentPath != "" {
		childPath = parentPath + "/" + name
	}
	for _, child := range modfile.NormalizeSubmodules(mapping[modfile.FieldSubmodules]).Entries() {
		w.visit(child, childPath)
	}
}

// emit appends one record per test_case entry of a module's test config.
func (w *testCaseWalk) emit(module, modulePath string, rawCfg map[string]any) {
	cfg := modfile.TestConfigOf(rawCfg)
	for idx, tc := range cfg.Cases() {
		testName, ok := tc.Name()
		if !ok {
			testName = fmt.Sprintf("test_%d", idx)
		}
		w.records = append(w.records, TestCaseRecord{
			Module:          module,
			ModulePath:      modulePath,
			TestName:        testName,
			RunCmd:          tc.RunCmd(),
			OutputLogPaths:  tc.OutputLogPaths(),
			OutputWavePath:  tc.OutputWavePath(),
			TestbenchPath:   cfg.TestbenchPath(),
			GoldenModelPath: cfg.GoldenModelPath(),
		})
	}
}

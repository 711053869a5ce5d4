// SPDX-License-Identifier: MPL-2.0

package extract

type (
	// ModuleRecord is one flattened module. Records are synthesized during
	// the tree walk and never mutated afterwards.
	ModuleRecord struct {
		// Name is the module's bare name.
		Name string `json:"name"`
		// Filepath is the module's HDL source path.
		Filepath string `json:"filepath"`
		// Docpath is the module's documentation path.
		Docpath string `json:"docpath"`
		// Parent is the full hierarchical path of the enclosing module,
		// empty for a root module.
		Parent string `json:"parent,omitempty"`
		// FullPath is the slash-joined chain of ancestor names plus Name.
		// It is the record's identity: no two emitted records share one.
		FullPath string `json:"full_path"`
		// HasTest reports whether the module carries a test configuration.
		HasTest bool `json:"has_test"`
		// HasSubmodules reports whether the module has child modules.
		HasSubmodules bool `json:"has_submodules"`
	}

	// TestCaseRecord is one flattened test case.
	TestCaseRecord struct {
		// Module is the bare name of the module that owns the case.
		Module string `json:"module"`
		// ModulePath is the hierarchical path of the owning module's
		// ancestors. It does not include the module's own name.
		ModulePath string `json:"module_path"`
		// TestName is the declared case name, or test_<index> when the
		// document leaves it unnamed (index is zero-based within the
		// module's test_case sequence).
		TestName string `json:"test_name"`
		// RunCmd is the shell command that runs the case.
		RunCmd string `json:"run_cmd"`
		// OutputLogPaths are the simulation log path(s) the case writes.
		OutputLogPaths []string `json:"output_log_path"`
		// OutputWavePath is the waveform dump path, empty when none.
		OutputWavePath string `json:"output_wave_path,omitempty"`
		// TestbenchPath is shared by all cases of the owning module.
		TestbenchPath string `json:"testbench_path"`
		// GoldenModelPath is shared by all cases of the owning module.
		GoldenModelPath string `json:"golden_model_path"`
	}
)

// HasWave reports whether the case produces a waveform dump.
func (r TestCaseRecord) HasWave() bool { return r.OutputWavePath != "" }

// SPDX-License-Identifier: MPL-2.0

package modfile

const (
	// FieldTestCase is the sequence of test case mappings inside a test config.
	FieldTestCase = "test_case"
	// FieldTestbenchPath is the testbench shared by all cases of a module.
	FieldTestbenchPath = "testbench_path"
	// FieldGoldenModelPath is the golden model shared by all cases of a module.
	FieldGoldenModelPath = "golden_model_path"

	// FieldRunCmd is the shell command that runs a test case.
	FieldRunCmd = "run_cmd"
	// FieldOutputLogPath holds the case's simulation log path(s).
	FieldOutputLogPath = "output_log_path"
	// FieldOutputWavePath holds the case's optional waveform dump path.
	FieldOutputWavePath = "output_wave_path"
)

type (
	// TestConfig is a typed view over a module's test configuration mapping.
	TestConfig struct {
		raw map[string]any
	}

	// TestCase is a typed view over one entry of the test_case sequence.
	TestCase struct {
		raw map[string]any
	}
)

// TestConfigOf wraps a raw test configuration mapping. Callers that hold
// a Module should prefer Module.Test; this entry point exists for walkers
// that accept the looser name-only module contract.
func TestConfigOf(m map[string]any) TestConfig {
	return TestConfig{raw: m}
}

// Cases returns the test_case entries in declaration order. Non-mapping
// entries are skipped.
func (c TestConfig) Cases() []TestCase {
	seq, ok := c.raw[FieldTestCase].([]any)
	if !ok {
		return nil
	}
	cases := make([]TestCase, 0, len(seq))
	for _, entry := range seq {
		if m, ok := entry.(map[string]any); ok {
			cases = append(cases, TestCase{raw: m})
		}
	}
	return cases
}

// TestbenchPath returns the shared testbench path, or "" when absent.
func (c TestConfig) TestbenchPath() string {
	s, _ := c.raw[FieldTestbenchPath].(string)
	return s
}

// GoldenModelPath returns the shared golden model path, or "" when absent.
func (c TestConfig) GoldenModelPath() string {
	s, _ := c.raw[FieldGoldenModelPath].(string)
	return s
}

// Name returns the case name and whether one was declared. Unnamed cases
// get a synthetic index-based name from the extractor, not from here.
func (t TestCase) Name() (string, bool) {
	s, ok := t.raw[FieldName].(string)
	return s, ok
}

// RunCmd returns the case's run command, or "" when absent.
func (t TestCase) RunCmd() string {
	s, _ := t.raw[FieldRunCmd].(string)
	return s
}

// OutputLogPaths returns the case's log path(s) normalized to a sequence.
// Documents write this field as either a single string or a sequence.
func (t TestCase) OutputLogPaths() []string {
	switch v := t.raw[FieldOutputLogPath].(type) {
	case string:
		return []string{v}
	case []any:
		paths := make([]string, 0, len(v))
		for _, p := range v {
			if s, ok := p.(string); ok {
				paths = append(paths, s)
			}
		}
		return paths
	default:
		return nil
	}
}

// OutputWavePath returns the waveform dump path, or "" when the case does
// not produce one.
func (t TestCase) OutputWavePath() string {
	s, _ := t.raw[FieldOutputWavePath].(string)
	return s
}

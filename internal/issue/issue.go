// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies one help card in the registry.
type Id int

const (
	DocumentNotFoundId Id = iota + 1
	ReferenceNotFoundId
	MalformedDocumentId
	CyclicReferenceId
	SchemaNotFoundId
	NoModulesFoundId
	NoTestCasesFoundId
	ConfigLoadFailedId
)

type (
	// MarkdownMsg is the card body, rendered to the terminal with glamour.
	MarkdownMsg string

	// Issue is one registered help card.
	Issue struct {
		id    Id
		mdMsg MarkdownMsg
	}
)

// Id returns the card's registry key.
func (i *Issue) Id() Id {
	return i.id
}

// MarkdownMsg returns the raw markdown body.
func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

// Render renders the card for the given glamour style ("dark", "light",
// "auto" or a style file path).
func (i *Issue) Render(stylePath string) (string, error) {
	return render(string(i.mdMsg), stylePath)
}

var (
	render = glamour.Render

	documentNotFoundIssue = &Issue{
		id: DocumentNotFoundId,
		mdMsg: `
# Module description file not found!

The JSON file you pointed chipdoc at does not exist.

## Things you can try:
- Check the path passed via --json
- Run from the project root where module descriptions live:
~~~
$ chipdoc modules --json ./soc_top.json
~~~`,
	}

	referenceNotFoundIssue = &Issue{
		id: ReferenceNotFoundId,
		mdMsg: `
# Referenced file not found!

A $ref inside the module tree points at a file that does not exist.
Relative references are resolved against the directory of the file that
declares them, not against the root document.

## Things you can try:
- Check the path in the error message above for typos
- Remember that a reference chain re-bases at every hop:
~~~json
{ "$ref": "./alu/alu.json" }
~~~
  resolves relative to the *referring* file's directory
- List the resolved tree to see how far resolution gets:
~~~
$ chipdoc resolve --json ./soc_top.json
~~~`,
	}

	malformedDocumentIssue = &Issue{
		id: MalformedDocumentId,
		mdMsg: `
# Invalid JSON!

A file along the reference chain is not valid JSON.

## Common causes:
- Trailing commas (JSON forbids them)
- Single quotes instead of double quotes
- Unquoted keys

## Things you can try:
- The error message names the offending file and decode position
- Validate the file shape against your schema:
~~~
$ chipdoc validate --schema ./module_schema.json --json <file>
~~~`,
	}

	cyclicReferenceIssue = &Issue{
		id: CyclicReferenceId,
		mdMsg: `
# Cyclic reference detected!

Following the $ref chain led back to a file that is still being resolved.
Inlining such a cycle would never terminate.

## Things you can try:
- The error message lists the chain of files forming the cycle
- Break the cycle by removing one of the references
- Factor the shared sub-tree into its own file referenced from both sides`,
	}

	schemaNotFoundIssue = &Issue{
		id: SchemaNotFoundId,
		mdMsg: `
# Schema file not found!

The JSON Schema passed via --schema does not exist.

## Things you can try:
- Check the --schema path
- Set a default schema once in your config file:
~~~cue
default_schema: "/path/to/module_schema.json"
~~~`,
	}

	noModulesFoundIssue = &Issue{
		id: NoModulesFoundId,
		mdMsg: `
# No modules found!

The document resolved cleanly but contains no module definitions. A
module needs all three required fields:

~~~json
{
  "name": "alu",
  "filepath": "./rtl/alu.v",
  "docpath": "./docs/alu.md"
}
~~~

## Things you can try:
- Check for missing or misspelled required fields
- Validate against the schema to see what is off:
~~~
$ chipdoc validate --schema ./module_schema.json --json <file>
~~~`,
	}

	noTestCasesFoundIssue = &Issue{
		id: NoTestCasesFoundId,
		mdMsg: `
# No test cases found!

No module in the tree carries a test configuration with a non-empty
test_case list.

## Expected shape:
~~~json
{
  "test": {
    "testbench_path": "./tb/alu_tb.sv",
    "golden_model_path": "./model/alu.py",
    "test_case": [
      { "name": "smoke", "run_cmd": "make sim TEST=smoke" }
    ]
  }
}
~~~

## Things you can try:
- Check the test mapping spelling ("test", "test_case")
- If you filtered with --filter-module, check the module name`,
	}

	configLoadFailedIssue = &Issue{
		id: ConfigLoadFailedId,
		mdMsg: `
# Failed to load configuration!

Could not load the chipdoc configuration file.

## Configuration file locations:
- Linux: ~/.config/chipdoc/config.cue
- macOS: ~/Library/Application Support/chipdoc/config.cue
- Windows: %APPDATA%\chipdoc\config.cue

## Example configuration:
~~~cue
default_schema: "./module_schema.json"

output: {
  format: "table"
}

ui: {
  color_scheme: "auto"
  verbose: false
}
~~~`,
	}

	issues = map[Id]*Issue{
		documentNotFoundIssue.Id():  documentNotFoundIssue,
		referenceNotFoundIssue.Id(): referenceNotFoundIssue,
		malformedDocumentIssue.Id(): malformedDocumentIssue,
		cyclicReferenceIssue.Id():   cyclicReferenceIssue,
		schemaNotFoundIssue.Id():    schemaNotFoundIssue,
		noModulesFoundIssue.Id():    noModulesFoundIssue,
		noTestCasesFoundIssue.Id():  noTestCasesFoundIssue,
		configLoadFailedIssue.Id():  configLoadFailedIssue,
	}
)

// Values returns every registered card.
func Values() []*Issue {
	return maps.Values(issues)
}

// Get looks up a card by Id.
func Get(id Id) *Issue {
	return issues[id]
}

// Sorted returns every card ordered by Id, for deterministic listings.
func Sorted() []*Issue {
	all := Values()
	slices.SortFunc(all, func(a, b *Issue) int { return int(a.id) - int(b.id) })
	return all
}

// SPDX-License-Identifier: MPL-2.0

// chipdoc is a CLI for inspecting hardware module description trees:
// listing modules and test cases, resolving $ref links and validating
// documents against a JSON Schema.
package main

import (
	cmd "chipdoc-cli/cmd/chipdoc"
)

func main() {
	cmd.Execute()
}

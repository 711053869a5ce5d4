// SPDX-License-Identifier: MPL-2.0

package report

import (
	"encoding/json"
	"io"
)

// JSON writes any record sequence as indented JSON, one trailing newline.
func JSON(w io.Writer, records any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

// SPDX-License-Identifier: MPL-2.0

package schema

import "strings"

const (
	// CategoryFileNotFound covers a missing schema, document or reference target.
	CategoryFileNotFound Category = "file-not-found"
	// CategoryMalformedDocument covers invalid JSON in any input file.
	CategoryMalformedDocument Category = "malformed-document"
	// CategorySchemaViolation covers documents the engine rejects.
	CategorySchemaViolation Category = "schema-violation"
	// CategoryOther collapses every unexpected internal failure, so
	// callers always see one of these four categories.
	CategoryOther Category = "other"
)

// rootLocation is reported when the violation sits at the document root.
const rootLocation = "root"

type (
	// Category classifies a failed validation.
	Category string

	// Outcome is the result of one validation run.
	Outcome struct {
		// Valid is true when the document conforms to the schema.
		Valid bool
		// Category is set on failure.
		Category Category
		// Location is the violating node's path inside the document,
		// segments joined with "->", or "root" for the document itself.
		// Only set for schema violations.
		Location string
		// Message is the human-readable failure description.
		Message string
	}
)

// passed is the single success outcome.
func passed() Outcome {
	return Outcome{Valid: true}
}

// failed builds a non-violation failure outcome.
func failed(cat Category, message string) Outcome {
	return Outcome{Category: cat, Message: message}
}

// violation builds a schema-violation outcome from an instance pointer.
func violation(instancePtr, message string) Outcome {
	return Outcome{
		Category: CategorySchemaViolation,
		Location: formatLocation(instancePtr),
		Message:  message,
	}
}

// formatLocation converts a JSON pointer ("/submodules/0/name") into the
// arrow-joined display form ("submodules -> 0 -> name"). An empty pointer
// means the document root.
func formatLocation(ptr string) string {
	trimmed := strings.TrimPrefix(ptr, "/")
	if trimmed == "" {
		return rootLocation
	}
	segments := strings.Split(trimmed, "/")
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, "~1", "/")
		segments[i] = strings.ReplaceAll(seg, "~0", "~")
	}
	return strings.Join(segments, " -> ")
}

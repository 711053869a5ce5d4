// SPDX-License-Identifier: MPL-2.0

package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"chipdoc-cli/pkg/modfile"
)

// fallbackSchemaURL keys the schema in the engine's resource store when it
// declares no $id of its own.
const fallbackSchemaURL = "schema.json"

// Validate checks the document at documentPath against the schema at
// schemaPath and reports a single Outcome.
//
// The schema file is loaded as plain JSON and handed to the engine under
// its self-declared $id; $ref resolution inside the schema is entirely
// the engine's job. The document is loaded through modfile.Resolve unless
// resolveRefs is false, in which case it is parsed raw and any $ref nodes
// it contains are validated as the literal mappings they are.
//
// Validate never returns an error or panics: unexpected failures collapse
// into CategoryOther so callers always see the closed outcome set.
func Validate(schemaPath, documentPath string, resolveRefs bool) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			outcome = failed(CategoryOther, fmt.Sprintf("unexpected error: %v", r))
		}
	}()

	compiled, out, ok := compileSchema(schemaPath)
	if !ok {
		return out
	}

	doc, out, ok := loadDocument(documentPath, resolveRefs)
	if !ok {
		return out
	}

	if err := compiled.Validate(doc); err != nil {
		var verr *jsonschema.ValidationError
		if errors.As(err, &verr) {
			leaf := leafCause(verr)
			return violation(leaf.InstanceLocation, leaf.Message)
		}
		return failed(CategoryOther, err.Error())
	}
	return passed()
}

// compileSchema loads, registers and compiles the schema file.
func compileSchema(schemaPath string) (*jsonschema.Schema, Outcome, bool) {
	data, err := os.ReadFile(schemaPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, failed(CategoryFileNotFound, fmt.Sprintf("schema file not found: %s", schemaPath)), false
		}
		return nil, failed(CategoryOther, err.Error()), false
	}

	var schemaDoc map[string]any
	if err := json.Unmarshal(data, &schemaDoc); err != nil {
		return nil, failed(CategoryMalformedDocument, fmt.Sprintf("invalid JSON in %s: %v", schemaPath, err)), false
	}

	url := fallbackSchemaURL
	if id, ok := schemaDoc["$id"].(string); ok && id != "" {
		url = id
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, failed(CategoryOther, err.Error()), false
	}
	compiled, err := compiler.Compile(url)
	if err != nil {
		return nil, failed(CategoryOther, fmt.Sprintf("schema compilation failed: %v", err)), false
	}
	return compiled, Outcome{}, true
}

// loadDocument loads the instance document, resolved or raw.
func loadDocument(documentPath string, resolveRefs bool) (any, Outcome, bool) {
	if resolveRefs {
		doc, err := modfile.Resolve(documentPath)
		if err != nil {
			return nil, outcomeFromResolveError(err), false
		}
		return doc, Outcome{}, true
	}

	data, err := os.ReadFile(documentPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, failed(CategoryFileNotFound, fmt.Sprintf("file not found: %s", documentPath)), false
		}
		return nil, failed(CategoryOther, err.Error()), false
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, failed(CategoryMalformedDocument, fmt.Sprintf("invalid JSON in %s: %v", documentPath, err)), false
	}
	return doc, Outcome{}, true
}

// outcomeFromResolveError maps resolver errors onto the outcome taxonomy.
func outcomeFromResolveError(err error) Outcome {
	switch {
	case errors.Is(err, modfile.ErrFileNotFound):
		return failed(CategoryFileNotFound, err.Error())
	case errors.Is(err, modfile.ErrMalformedDocument):
		return failed(CategoryMalformedDocument, err.Error())
	default:
		return failed(CategoryOther, err.Error())
	}
}

// leafCause descends to the most specific nested cause of a validation
// error; the engine's root error only says "doesn't validate".
func leafCause(verr *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(verr.Causes) > 0 {
		verr = verr.Causes[0]
	}
	return verr
}

// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"chipdoc-cli/internal/issue"
	"chipdoc-cli/pkg/modfile"
)

// formatErrorForDisplay renders an error for the terminal, using the
// actionable form (suggestions, optional error chain) when available.
func formatErrorForDisplay(err error, verbose bool) string {
	var actionable *issue.ActionableError
	if errors.As(err, &actionable) {
		return actionable.Format(verbose)
	}
	return err.Error()
}

// renderIssueCard writes the markdown help card for id to stderr. Card
// rendering failures fall back to plain output rather than masking the
// real error.
func renderIssueCard(id issue.Id) {
	card := issue.Get(id)
	if card == nil {
		return
	}
	rendered, err := card.Render(glamourStyle())
	if err != nil {
		rendered = string(card.MarkdownMsg())
	}
	fmt.Fprint(os.Stderr, rendered)
}

// resolveDocument loads and fully resolves the document at path, mapping
// resolver failures to the matching help card plus a non-zero exit.
// rootPath distinguishes "the file you named is missing" from "a $ref
// target is missing".
func resolveDocument(rootPath string) (any, error) {
	doc, err := modfile.Resolve(rootPath)
	if err == nil {
		return doc, nil
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, formatErrorForDisplay(err, verbose))

	var notFound *modfile.FileNotFoundError
	switch {
	case errors.As(err, &notFound):
		if samePath(notFound.Path, rootPath) {
			renderIssueCard(issue.DocumentNotFoundId)
		} else {
			renderIssueCard(issue.ReferenceNotFoundId)
		}
	case errors.Is(err, modfile.ErrMalformedDocument):
		renderIssueCard(issue.MalformedDocumentId)
	case errors.Is(err, modfile.ErrCyclicReference):
		renderIssueCard(issue.CyclicReferenceId)
	}

	return nil, &ExitError{Code: 1, Err: err}
}

// samePath compares two paths after cleaning, tolerating ./ prefixes.
func samePath(a, b string) bool {
	return filepath.Clean(a) == filepath.Clean(b)
}

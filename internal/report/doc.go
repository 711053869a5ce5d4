// SPDX-License-Identifier: MPL-2.0

// Package report renders the flat record sequences produced by
// internal/extract as tables, trees, summaries or JSON. Renderers are
// pure consumers: they never re-walk the document tree.
package report

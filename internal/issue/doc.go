// SPDX-License-Identifier: MPL-2.0

// Package issue provides user-facing error presentation: actionable
// errors that carry the failed operation, the resource involved and fix
// suggestions, plus a registry of markdown help cards rendered to the
// terminal for the common failure modes of module tree inspection.
package issue

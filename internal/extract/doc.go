// SPDX-License-Identifier: MPL-2.0

// Package extract flattens a resolved module description tree into ordered
// record sequences: one per module and one per test case. Records carry
// their position in the hierarchy so report builders never need to walk
// the tree themselves.
package extract

// SPDX-License-Identifier: MPL-2.0

// Package modfile defines the on-disk document model for hardware module
// description trees: JSON documents whose sub-trees may be split across
// files and linked together with $ref nodes. It provides the reference
// resolver that inlines those links and typed views over the resolved
// mappings (modules, test configurations).
package modfile

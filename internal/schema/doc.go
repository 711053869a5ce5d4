// SPDX-License-Identifier: MPL-2.0

// Package schema adapts the external JSON Schema engine to a closed
// outcome contract: every validation attempt produces either success or
// one of a small set of failure categories with a document location and
// message. JSON Schema semantics themselves are the engine's business;
// this package never reimplements them.
package schema

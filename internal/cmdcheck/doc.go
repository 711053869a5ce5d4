// SPDX-License-Identifier: MPL-2.0

// Package cmdcheck lints test case run commands by parsing them as POSIX
// shell. A command that does not parse will fail on every simulator
// invocation, so catching it at listing time is cheap feedback.
package cmdcheck

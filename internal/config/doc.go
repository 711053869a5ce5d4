// SPDX-License-Identifier: MPL-2.0

// Package config loads chipdoc configuration from a CUE config file
// merged over defaults via Viper. The config carries workspace-wide
// settings that would otherwise be repeated on every invocation: the
// default schema path, the preferred output format and UI options.
package config

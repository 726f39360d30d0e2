// Package ui provides semantic text formatting for CLI output.
//
// This package defines formatters for different types of content (paths,
// commands, user ids, status indicators) so output stays consistent across
// commands. Each formatter degrades gracefully when color is disabled,
// substituting plain-text decoration where it helps readability.
//
// Color is disabled when the NO_COLOR environment variable is set or when
// fatih/color detects a non-terminal destination.
package ui

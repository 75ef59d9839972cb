//go:build !windows

package wordslide

// Newline is the line terminator written into imported texts.
const Newline = "\n"

// Package exec runs task definitions in a login shell and times them.
//
// Each run feeds the rendered command line and an "exit" instruction to the
// shell's standard input and blocks until the shell terminates. Runs never
// overlap; the caller decides what happens after a non-zero exit status.
package exec

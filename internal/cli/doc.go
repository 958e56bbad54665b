// Package cli parses command-line arguments, validates user input, and owns
// process-level concerns like exit codes. It turns CLI flags into the
// application's content configuration.
package cli

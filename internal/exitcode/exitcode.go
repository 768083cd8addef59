// Package exitcode holds the BSD sysexits codes the CLI terminates with.
package exitcode

const (
	OK      = 0
	NoInput = 66
	IOErr   = 74
)

//go:build !windows

package main

import (
	"os"
	"syscall"
)

// shutdownSignals cancel the picker. SIGTSTP is left to the terminal program.
func shutdownSignals() []os.Signal {
	return []os.Signal{
		syscall.SIGINT,
		syscall.SIGTERM,
		syscall.SIGQUIT,
		syscall.SIGHUP,
	}
}

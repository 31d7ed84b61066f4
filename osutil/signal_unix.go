//go:build !windows
// +build !windows

package osutil

import (
	"os"
	"os/signal"
	"syscall"
)

// watched are the signals the zonecheck watch loop acts on.
var watched = []os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGHUP,
	syscall.SIGUSR1, syscall.SIGUSR2}

// SignalNotify arranges for all watched signals to be delivered to c.
func SignalNotify(c chan os.Signal) {
	signal.Notify(c, watched...)
}

// IsTerminating returns true for SIGINT and SIGTERM.
func IsTerminating(s os.Signal) bool {
	return s == os.Interrupt || s == syscall.SIGTERM
}

// IsSignalUSR1 returns true for SIGUSR1: print the current report.
func IsSignalUSR1(s os.Signal) bool {
	return s == syscall.SIGUSR1
}

// IsSignalUSR2 returns true for SIGUSR2: regenerate all outputs.
func IsSignalUSR2(s os.Signal) bool {
	return s == syscall.SIGUSR2
}

// IsSignalHUP returns true for SIGHUP: reload all sources.
func IsSignalHUP(s os.Signal) bool {
	return s == syscall.SIGHUP
}

// Package osutil hides the platform differences in signal handling from the zonecheck
// watch loop. On Windows only os.Interrupt is delivered and the IsSignal* predicates for
// Unix-only signals always return false.
package osutil

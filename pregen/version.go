// Package pregen contains values generated for the build process.
package pregen

const (
	// Version is auto-generated from ChangeLog.md
	Version = "v0.1.0"
	// ReleaseDate is also auto-generated from ChangeLog.md
	ReleaseDate = "2026-10-19"
)

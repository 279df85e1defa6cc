// Package uldspec holds the static reference table of ULD (Unit Load Device)
// container classes: weight limits, internal dimensions, and usable volume.
// The table is immutable process-wide constant data; every lookup is
// case-insensitive on the container code.
package uldspec

// Package layout computes the region geometry for a presentation screen.
//
// The screen is carved into four overlapping regions (background, header,
// body, footer) stacked by z-order. Compute is pure: the same dimensions
// always produce the same regions, so callers can recompute on every resize
// without drift.
package layout

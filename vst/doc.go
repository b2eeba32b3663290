// Package vst defines the VST 2.4 plugin-ABI structures that cross the
// process boundary.
//
// The layouts mirror the protocol's binary-compatible C structs
// field-for-field; the wire package serializes them in declared order
// with explicit widths. Pointer fields of the C structs are never
// represented here — AEffect in particular is carried as a snapshot of
// its scalar capability fields only, so a decode can be applied to an
// existing live instance without disturbing its function pointers.
package vst

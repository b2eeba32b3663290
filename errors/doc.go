// Package errors provides structured error types for the vst-bridge
// wire codec.
//
// Errors are categorized by Phase (where the error occurred) and Kind
// (error category). The Error type includes a field path and cause
// chain, so a failed decode reports exactly which field of which
// message was malformed.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindBounds).
//		Path("audio_block", "channel").
//		Detail("too many channels").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Bounds(errors.PhaseDecode, path, 33, 32)
//	err := errors.UnknownDiscriminant(path, 14, 12)
//
// All errors implement the standard error interface and support
// errors.Is/As. IsKind is a shorthand for matching the Kind anywhere in
// a wrapped chain, which is what callers usually want:
//
//	if errors.IsKind(err, errors.KindBounds) { ... }
package errors

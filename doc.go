// Package vstbridge provides the wire protocol for bridging a native
// VST 2.4 host to a plugin running in a separate, incompatible process.
//
// The host and the plugin host process cannot share memory or pointers,
// so every dispatcher call, host callback, parameter access, and audio
// block crosses the boundary as a self-describing binary message. This
// library defines those messages and their codec; process lifecycle,
// socket transport, and opcode dispatch policy live in the surrounding
// application.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	vstbridge/       Root package with the Transport and Dispatcher seams
//	├── wire/        Message entities and the binary codec
//	├── vst/         Plugin-ABI structures (AEffect, events, descriptors)
//	├── errors/      Structured error types for codec failures
//	└── cmd/wiredump Inspector CLI for captured wire messages
//
// # Quick Start
//
// Encode a dispatcher call and decode the response:
//
//	call := &wire.DispatchCall{
//	    Opcode:  int32(vst.EffGetProgramName),
//	    Payload: wire.WantsText{},
//	}
//	buf, err := call.Encode()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// ... send buf over the transport, receive the reply ...
//	result, err := wire.DecodeDispatchResult(reply)
//
// # Wire Format
//
// All scalars are little-endian with fixed widths. Values that are
// pointer-sized in the plugin ABI always occupy 8 bytes on the wire, so
// a 32-bit plugin host and a 64-bit native host agree on every message
// layout. Bounded fields (strings, chunks, event lists, audio channels)
// are length-prefixed and validated against protocol maximums on both
// encode and decode; see the wire package for the limits.
//
// # Thread Safety
//
// The codec is stateless: messages are plain values and every
// encode/decode call operates on its own buffer, so concurrent use from
// multiple goroutines is safe as long as individual messages are not
// shared mutably.
package vstbridge

// Package wire implements the binary codec for host↔plugin bridge
// messages.
//
// Five message shapes cross the process boundary: DispatchCall,
// DispatchResult, ParameterCall, ParameterResult, and AudioBlock. Each
// is a plain value with an Encode method and a matching DecodeXxx
// function; the transport delivers one complete encoded buffer per
// message in both directions.
//
// The opaque argument slot of a dispatcher call is modeled as a closed
// tagged union per direction: CallPayload for outgoing calls and
// ResultPayload for responses. The two sets are distinct Go types even
// where shapes coincide, because a blob in a call means "chunk to
// apply" while a blob in a result means "chunk returned". The codec
// enforces no opcode→variant mapping; choosing the right variant for
// an opcode is dispatch logic and lives with the caller.
//
// Every bounded field is validated against its protocol maximum on
// both encode and decode, so a buggy or hostile counterpart cannot
// force unbounded allocation. Failures are structured errors from the
// errors package: bounds violations, truncation, and unknown union
// discriminants are distinct kinds.
package wire

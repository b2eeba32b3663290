package vstbridge

// Transport moves complete, length-delimited message buffers between
// the native host and the plugin host process. Framing is the
// transport's job: Receive returns exactly one encoded message, and
// Send accepts exactly one. The wire codec never sees partial buffers.
type Transport interface {
	// Send delivers one encoded message to the peer.
	Send(data []byte) error

	// Receive blocks until one complete encoded message is available.
	Receive() ([]byte, error)

	Close() error
}

// Dispatcher maps opcodes to payload shapes. The wire codec is
// deliberately opcode-agnostic: it can represent every payload variant
// the protocol allows but does not know which variant a given opcode
// carries. A Dispatcher supplies that knowledge when building outgoing
// calls and interpreting results.
type Dispatcher interface {
	// Dispatch handles one decoded call and produces the encoded
	// result buffer to send back.
	Dispatch(call []byte) (result []byte, err error)
}

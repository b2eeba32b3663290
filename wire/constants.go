package wire

// Protocol maximums for bounded fields. These are enforced by the
// codec on both encode and decode; the transport never sees a message
// that violates them, and a received message that does is rejected
// before any allocation of the declared size.
const (
	// MaxAudioChannels is the most per-channel buffers an AudioBlock
	// may carry.
	MaxAudioChannels = 32

	// MaxBufferSize is the most samples a single channel may carry.
	MaxBufferSize = 16384

	// MaxMidiEvents is the most sub-events in one event list, matching
	// the largest pointer array that fits a MaxBufferSize byte block.
	MaxMidiEvents = MaxBufferSize / 8

	// MaxStringLength bounds the short text fields exchanged through
	// the dispatcher's argument slot (program names, labels, can-do
	// strings).
	MaxStringLength = 64

	// MaxBinarySize bounds chunk blobs. 50 MiB is far beyond any sane
	// preset but keeps a corrupt length prefix from allocating the
	// whole address space.
	MaxBinarySize = 50 << 20
)

// CallTag discriminates the variants of CallPayload on the wire.
type CallTag byte

const (
	CallTagNone CallTag = iota
	CallTagText
	CallTagBlob
	CallTagHandle
	CallTagPlugin
	CallTagEvents
	CallTagWantsBlob
	CallTagIOProperties
	CallTagKeyName
	CallTagParameterProperties
	CallTagWantsRect
	CallTagWantsTimeInfo
	CallTagWantsText
)

// callTagMax is the highest valid CallTag; anything above it is a
// protocol-version mismatch.
const callTagMax = CallTagWantsText

// ResultTag discriminates the variants of ResultPayload on the wire.
// It is a separate numbering from CallTag: the unions are distinct
// closed sets and their discriminants are not interchangeable.
type ResultTag byte

const (
	ResultTagNone ResultTag = iota
	ResultTagText
	ResultTagBlob
	ResultTagPlugin
	ResultTagIOProperties
	ResultTagKeyName
	ResultTagParameterProperties
	ResultTagRect
	ResultTagTimeInfo
)

const resultTagMax = ResultTagTimeInfo

package vst

import "encoding/binary"

// EventSize is the fixed size of one VstEvent record: four 32-bit
// header fields plus 16 data bytes. MIDI and sysex events share this
// envelope; sysex payloads larger than the inline data are not
// forwarded across the bridge.
const EventSize = 32

// Event type codes (VstEvent.type).
const (
	MidiType  int32 = 1
	SysExType int32 = 6
)

// Event is one sub-event of a VstEvents batch, stored as its raw
// 32-byte ABI dump. Accessors decode the header fields in place so the
// record can be copied to and from the plugin without re-layout.
type Event struct {
	Dump [EventSize]byte
}

func (e *Event) Type() int32        { return int32(binary.LittleEndian.Uint32(e.Dump[0:4])) }
func (e *Event) ByteSize() int32    { return int32(binary.LittleEndian.Uint32(e.Dump[4:8])) }
func (e *Event) DeltaFrames() int32 { return int32(binary.LittleEndian.Uint32(e.Dump[8:12])) }
func (e *Event) Flags() int32       { return int32(binary.LittleEndian.Uint32(e.Dump[12:16])) }

// Data returns the 16 inline payload bytes following the header.
func (e *Event) Data() []byte { return e.Dump[16:] }

// MidiEvent builds a MIDI sub-event carrying one channel message.
func MidiEvent(deltaFrames int32, status, data1, data2 byte) Event {
	var e Event
	binary.LittleEndian.PutUint32(e.Dump[0:4], uint32(MidiType))
	binary.LittleEndian.PutUint32(e.Dump[4:8], uint32(EventSize))
	binary.LittleEndian.PutUint32(e.Dump[8:12], uint32(deltaFrames))
	e.Dump[16] = status
	e.Dump[17] = data1
	e.Dump[18] = data2
	return e
}

// Events is the foreign-shaped batch the plugin ABI expects: a count,
// a reserved pointer-sized field, and an array of event pointers. In C
// this is a variable-size struct ending in a flexible pointer array; a
// received batch is always materialized from a DynamicEvents value, and
// its pointers alias that value's storage.
type Events struct {
	NumEvents int32
	Reserved  int64
	Events    []*Event
}

// DynamicEvents owns a batch of sub-events in contiguous storage. It is
// the serializable counterpart of Events: the host side constructs one
// by copying out of the plugin's pointer array, and the receiving side
// rebuilds the pointer array over the owned slice with CEvents.
type DynamicEvents struct {
	Events []Event
}

// NewDynamicEvents copies a foreign Events batch into owned storage.
// Only the first NumEvents entries are taken, and nil entries are
// skipped; the plugin ABI permits neither but a buggy counterpart must
// not crash the bridge.
func NewDynamicEvents(c *Events) DynamicEvents {
	if c == nil {
		return DynamicEvents{}
	}
	n := int(c.NumEvents)
	if n > len(c.Events) {
		n = len(c.Events)
	}
	d := DynamicEvents{Events: make([]Event, 0, n)}
	for _, ev := range c.Events[:n] {
		if ev == nil {
			continue
		}
		d.Events = append(d.Events, *ev)
	}
	return d
}

// CEvents materializes the foreign-shaped Events view over the owned
// storage. The view's element pointers alias d.Events directly, so
// mutations through the view are visible in the owner and the storage
// stays reachable for as long as the view is.
func (d *DynamicEvents) CEvents() *Events {
	c := &Events{
		NumEvents: int32(len(d.Events)),
		Events:    make([]*Event, len(d.Events)),
	}
	for i := range d.Events {
		c.Events[i] = &d.Events[i]
	}
	return c
}

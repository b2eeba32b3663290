package wire

import (
	errs "github.com/crossaudio/vst-bridge/errors"
	"github.com/crossaudio/vst-bridge/vst"
	"github.com/crossaudio/vst-bridge/wire/internal/binary"
)

// Event lists cross the wire as a u32 count followed by one bounded
// byte container per sub-event. The container length is always
// vst.EventSize today, but it travels explicitly so a future event
// revision fails loudly instead of shearing the stream.

func writeEvents(w *binary.Writer, path []string, d *vst.DynamicEvents) error {
	if len(d.Events) > MaxMidiEvents {
		return errs.Bounds(errs.PhaseEncode, path, len(d.Events), MaxMidiEvents)
	}
	w.WriteU32(uint32(len(d.Events)))
	for i := range d.Events {
		w.WriteU32(vst.EventSize)
		w.WriteBytes(d.Events[i].Dump[:])
	}
	return nil
}

func readEvents(r *binary.Reader, path []string) (vst.DynamicEvents, error) {
	count, err := r.ReadU32()
	if err != nil {
		return vst.DynamicEvents{}, errs.Truncated(path, err)
	}
	if int(count) > MaxMidiEvents {
		return vst.DynamicEvents{}, errs.Bounds(errs.PhaseDecode, path, int(count), MaxMidiEvents)
	}

	d := vst.DynamicEvents{Events: make([]vst.Event, count)}
	for i := range d.Events {
		size, err := r.ReadU32()
		if err != nil {
			return vst.DynamicEvents{}, errs.Truncated(path, err)
		}
		if size != vst.EventSize {
			return vst.DynamicEvents{}, errs.InvalidData(errs.PhaseDecode, path,
				"sub-event size mismatch")
		}
		if err := r.ReadFull(d.Events[i].Dump[:]); err != nil {
			return vst.DynamicEvents{}, errs.Truncated(path, err)
		}
	}
	return d, nil
}

package wire

import (
	"fmt"

	"go.uber.org/zap"

	errs "github.com/crossaudio/vst-bridge/errors"
	"github.com/crossaudio/vst-bridge/vst"
	"github.com/crossaudio/vst-bridge/wire/internal/binary"
)

// CallPayload is the opaque argument slot of an outgoing dispatcher
// call. It is a closed union: exactly the types below implement it,
// and the discriminant on the wire identifies which one is present.
// Which variant is legal for a given opcode is the caller's knowledge,
// not the codec's.
type CallPayload interface {
	callPayload()
}

// NoPayload marks a call whose argument slot is unused. A nil Payload
// field encodes the same way.
type NoPayload struct{}

// TextPayload carries a short string to the plugin, such as a program
// name for effSetProgramName.
type TextPayload struct {
	Text string
}

// BlobPayload carries raw bytes to the plugin, such as preset chunk
// data for effSetChunk.
type BlobPayload struct {
	Data []byte
}

// HandlePayload carries a window handle or similar pointer-sized
// token. It is always 8 bytes on the wire regardless of either
// process's pointer width.
type HandlePayload struct {
	Handle uint64
}

// PluginPayload carries an AEffect capability snapshot, used when the
// host must be told the plugin's descriptor changed.
type PluginPayload struct {
	Plugin vst.AEffect
}

// EventsPayload carries a batch of MIDI events for effProcessEvents.
type EventsPayload struct {
	Events vst.DynamicEvents
}

// WantsBlob marks a call whose receiver should respond with a
// BlobResult, such as effGetChunk.
type WantsBlob struct{}

// IOPropertiesPayload carries pin properties to the receiver.
type IOPropertiesPayload struct {
	Props vst.IOProperties
}

// KeyNamePayload carries a MIDI key-name request block.
type KeyNamePayload struct {
	KeyName vst.MidiKeyName
}

// ParameterPropertiesPayload carries extended parameter metadata.
type ParameterPropertiesPayload struct {
	Props vst.ParameterProperties
}

// WantsRect marks a call whose receiver should respond with a
// RectResult, such as effEditGetRect.
type WantsRect struct{}

// WantsTimeInfo marks a call whose receiver should respond with a
// TimeInfoResult, such as audioMasterGetTime.
type WantsTimeInfo struct{}

// WantsText marks a call whose receiver should respond with a
// TextResult. This is the default for the many opcodes that hand the
// plugin a small string buffer to fill.
type WantsText struct{}

func (NoPayload) callPayload()                  {}
func (TextPayload) callPayload()                {}
func (BlobPayload) callPayload()                {}
func (HandlePayload) callPayload()              {}
func (PluginPayload) callPayload()              {}
func (EventsPayload) callPayload()              {}
func (WantsBlob) callPayload()                  {}
func (IOPropertiesPayload) callPayload()        {}
func (KeyNamePayload) callPayload()             {}
func (ParameterPropertiesPayload) callPayload() {}
func (WantsRect) callPayload()                  {}
func (WantsTimeInfo) callPayload()              {}
func (WantsText) callPayload()                  {}

// ResultPayload is the opaque slot of a dispatcher response. Like
// CallPayload it is a closed union, but a distinct one: result
// variants are never valid where call variants are expected, even
// where the shapes coincide.
type ResultPayload interface {
	resultPayload()
}

// NoResult marks a response that carries only the return value.
type NoResult struct{}

// TextResult carries a short string written by the receiver.
type TextResult struct {
	Text string
}

// BlobResult carries raw bytes written by the receiver, such as chunk
// data answering effGetChunk.
type BlobResult struct {
	Data []byte
}

// PluginResult carries an updated AEffect capability snapshot.
type PluginResult struct {
	Plugin vst.AEffect
}

// IOPropertiesResult carries pin properties filled in by the plugin.
type IOPropertiesResult struct {
	Props vst.IOProperties
}

// KeyNameResult carries a filled-in MIDI key-name block.
type KeyNameResult struct {
	KeyName vst.MidiKeyName
}

// ParameterPropertiesResult carries filled-in parameter metadata.
type ParameterPropertiesResult struct {
	Props vst.ParameterProperties
}

// RectResult carries the editor rectangle answering effEditGetRect.
type RectResult struct {
	Rect vst.Rect
}

// TimeInfoResult carries transport state answering audioMasterGetTime.
type TimeInfoResult struct {
	TimeInfo vst.TimeInfo
}

func (NoResult) resultPayload()                  {}
func (TextResult) resultPayload()                {}
func (BlobResult) resultPayload()                {}
func (PluginResult) resultPayload()              {}
func (IOPropertiesResult) resultPayload()        {}
func (KeyNameResult) resultPayload()             {}
func (ParameterPropertiesResult) resultPayload() {}
func (RectResult) resultPayload()                {}
func (TimeInfoResult) resultPayload()            {}

func encodeCallPayload(w *binary.Writer, path []string, p CallPayload) error {
	switch v := p.(type) {
	case nil, NoPayload:
		w.Byte(byte(CallTagNone))
	case TextPayload:
		w.Byte(byte(CallTagText))
		return writeText(w, path, v.Text)
	case BlobPayload:
		w.Byte(byte(CallTagBlob))
		return writeBlob(w, path, v.Data)
	case HandlePayload:
		w.Byte(byte(CallTagHandle))
		w.WriteU64(v.Handle)
	case PluginPayload:
		w.Byte(byte(CallTagPlugin))
		writeAEffect(w, &v.Plugin)
	case EventsPayload:
		w.Byte(byte(CallTagEvents))
		return writeEvents(w, path, &v.Events)
	case WantsBlob:
		w.Byte(byte(CallTagWantsBlob))
	case IOPropertiesPayload:
		w.Byte(byte(CallTagIOProperties))
		writeIOProperties(w, &v.Props)
	case KeyNamePayload:
		w.Byte(byte(CallTagKeyName))
		writeMidiKeyName(w, &v.KeyName)
	case ParameterPropertiesPayload:
		w.Byte(byte(CallTagParameterProperties))
		writeParameterProperties(w, &v.Props)
	case WantsRect:
		w.Byte(byte(CallTagWantsRect))
	case WantsTimeInfo:
		w.Byte(byte(CallTagWantsTimeInfo))
	case WantsText:
		w.Byte(byte(CallTagWantsText))
	default:
		return errs.InvalidData(errs.PhaseEncode, path,
			fmt.Sprintf("unsupported call payload type %T", p))
	}
	return nil
}

func decodeCallPayload(r *binary.Reader, path []string) (CallPayload, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, errs.Truncated(path, err)
	}

	switch CallTag(tag) {
	case CallTagNone:
		return NoPayload{}, nil
	case CallTagText:
		s, err := readText(r, path)
		if err != nil {
			return nil, err
		}
		return TextPayload{Text: s}, nil
	case CallTagBlob:
		data, err := readBlob(r, path)
		if err != nil {
			return nil, err
		}
		return BlobPayload{Data: data}, nil
	case CallTagHandle:
		h, err := r.ReadU64()
		if err != nil {
			return nil, errs.Truncated(path, err)
		}
		return HandlePayload{Handle: h}, nil
	case CallTagPlugin:
		e, err := readAEffect(r, path)
		if err != nil {
			return nil, err
		}
		return PluginPayload{Plugin: e}, nil
	case CallTagEvents:
		d, err := readEvents(r, path)
		if err != nil {
			return nil, err
		}
		return EventsPayload{Events: d}, nil
	case CallTagWantsBlob:
		return WantsBlob{}, nil
	case CallTagIOProperties:
		p, err := readIOProperties(r, path)
		if err != nil {
			return nil, err
		}
		return IOPropertiesPayload{Props: p}, nil
	case CallTagKeyName:
		k, err := readMidiKeyName(r, path)
		if err != nil {
			return nil, err
		}
		return KeyNamePayload{KeyName: k}, nil
	case CallTagParameterProperties:
		p, err := readParameterProperties(r, path)
		if err != nil {
			return nil, err
		}
		return ParameterPropertiesPayload{Props: p}, nil
	case CallTagWantsRect:
		return WantsRect{}, nil
	case CallTagWantsTimeInfo:
		return WantsTimeInfo{}, nil
	case CallTagWantsText:
		return WantsText{}, nil
	default:
		Logger().Warn("unknown call payload discriminant",
			zap.Uint8("tag", tag))
		return nil, errs.UnknownDiscriminant(path, tag, byte(callTagMax))
	}
}

func encodeResultPayload(w *binary.Writer, path []string, p ResultPayload) error {
	switch v := p.(type) {
	case nil, NoResult:
		w.Byte(byte(ResultTagNone))
	case TextResult:
		w.Byte(byte(ResultTagText))
		return writeText(w, path, v.Text)
	case BlobResult:
		w.Byte(byte(ResultTagBlob))
		return writeBlob(w, path, v.Data)
	case PluginResult:
		w.Byte(byte(ResultTagPlugin))
		writeAEffect(w, &v.Plugin)
	case IOPropertiesResult:
		w.Byte(byte(ResultTagIOProperties))
		writeIOProperties(w, &v.Props)
	case KeyNameResult:
		w.Byte(byte(ResultTagKeyName))
		writeMidiKeyName(w, &v.KeyName)
	case ParameterPropertiesResult:
		w.Byte(byte(ResultTagParameterProperties))
		writeParameterProperties(w, &v.Props)
	case RectResult:
		w.Byte(byte(ResultTagRect))
		writeRect(w, &v.Rect)
	case TimeInfoResult:
		w.Byte(byte(ResultTagTimeInfo))
		writeTimeInfo(w, &v.TimeInfo)
	default:
		return errs.InvalidData(errs.PhaseEncode, path,
			fmt.Sprintf("unsupported result payload type %T", p))
	}
	return nil
}

func decodeResultPayload(r *binary.Reader, path []string) (ResultPayload, error) {
	tag, err := r.ReadByte()
	if err != nil {
		return nil, errs.Truncated(path, err)
	}

	switch ResultTag(tag) {
	case ResultTagNone:
		return NoResult{}, nil
	case ResultTagText:
		s, err := readText(r, path)
		if err != nil {
			return nil, err
		}
		return TextResult{Text: s}, nil
	case ResultTagBlob:
		data, err := readBlob(r, path)
		if err != nil {
			return nil, err
		}
		return BlobResult{Data: data}, nil
	case ResultTagPlugin:
		e, err := readAEffect(r, path)
		if err != nil {
			return nil, err
		}
		return PluginResult{Plugin: e}, nil
	case ResultTagIOProperties:
		p, err := readIOProperties(r, path)
		if err != nil {
			return nil, err
		}
		return IOPropertiesResult{Props: p}, nil
	case ResultTagKeyName:
		k, err := readMidiKeyName(r, path)
		if err != nil {
			return nil, err
		}
		return KeyNameResult{KeyName: k}, nil
	case ResultTagParameterProperties:
		p, err := readParameterProperties(r, path)
		if err != nil {
			return nil, err
		}
		return ParameterPropertiesResult{Props: p}, nil
	case ResultTagRect:
		rc, err := readRect(r, path)
		if err != nil {
			return nil, err
		}
		return RectResult{Rect: rc}, nil
	case ResultTagTimeInfo:
		t, err := readTimeInfo(r, path)
		if err != nil {
			return nil, err
		}
		return TimeInfoResult{TimeInfo: t}, nil
	default:
		Logger().Warn("unknown result payload discriminant",
			zap.Uint8("tag", tag))
		return nil, errs.UnknownDiscriminant(path, tag, byte(resultTagMax))
	}
}

package wire_test

import (
	"bytes"
	"encoding/binary"
	"reflect"
	"strings"
	"testing"

	"github.com/crossaudio/vst-bridge/errors"
	"github.com/crossaudio/vst-bridge/vst"
	"github.com/crossaudio/vst-bridge/wire"
)

func sampleAEffect() vst.AEffect {
	return vst.AEffect{
		Magic:        vst.EffectMagic,
		NumPrograms:  8,
		NumParams:    16,
		NumInputs:    2,
		NumOutputs:   2,
		Flags:        vst.EffFlagsCanReplacing | vst.EffFlagsProgramChunks,
		InitialDelay: 64,
		UnknownFloat: 1.0,
		UniqueID:     0x476E4131, // "GnA1"
		Version:      1100,
	}
}

func sampleParameterProperties() vst.ParameterProperties {
	p := vst.ParameterProperties{
		StepFloat:        0.01,
		SmallStepFloat:   0.001,
		LargeStepFloat:   0.1,
		Flags:            1,
		MinInteger:       0,
		MaxInteger:       127,
		StepInteger:      1,
		LargeStepInteger: 10,
		DisplayIndex:     3,
		Category:         1,
	}
	copy(p.Label[:], "Cutoff Frequency")
	copy(p.ShortLabel[:], "Cutoff")
	copy(p.CategoryLabel[:], "Filter")
	return p
}

func sampleTimeInfo() vst.TimeInfo {
	return vst.TimeInfo{
		SamplePos:          88200,
		SampleRate:         44100,
		NanoSeconds:        1.5e9,
		PpqPos:             4,
		Tempo:              120,
		BarStartPos:        0,
		CycleStartPos:      0,
		CycleEndPos:        8,
		TimeSigNumerator:   4,
		TimeSigDenominator: 4,
		Flags:              vst.TransportPlaying | vst.TempoValid,
	}
}

func sampleEvents() vst.DynamicEvents {
	return vst.DynamicEvents{Events: []vst.Event{
		vst.MidiEvent(0, 0x90, 60, 100),
		vst.MidiEvent(128, 0x80, 60, 0),
	}}
}

func TestCallPayloadRoundTrip(t *testing.T) {
	var io vst.IOProperties
	copy(io.Data[:], "Stereo In")
	var key vst.MidiKeyName
	copy(key.Data[:], "C4")

	payloads := []wire.CallPayload{
		wire.NoPayload{},
		wire.TextPayload{Text: "Lead Synth"},
		wire.BlobPayload{Data: []byte{0x00, 0x01, 0xFF, 0x00, 0x7F}},
		wire.HandlePayload{Handle: 0x00007F0012340000},
		wire.PluginPayload{Plugin: sampleAEffect()},
		wire.EventsPayload{Events: sampleEvents()},
		wire.WantsBlob{},
		wire.IOPropertiesPayload{Props: io},
		wire.KeyNamePayload{KeyName: key},
		wire.ParameterPropertiesPayload{Props: sampleParameterProperties()},
		wire.WantsRect{},
		wire.WantsTimeInfo{},
		wire.WantsText{},
	}

	for _, p := range payloads {
		name := reflect.TypeOf(p).Name()
		t.Run(name, func(t *testing.T) {
			call := &wire.DispatchCall{Opcode: 42, Payload: p}
			data, err := call.Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := wire.DecodeDispatchCall(data)
			if err != nil {
				t.Fatalf("DecodeDispatchCall: %v", err)
			}
			if !reflect.DeepEqual(got.Payload, p) {
				t.Errorf("payload mismatch:\ngot  %+v\nwant %+v", got.Payload, p)
			}
		})
	}
}

func TestResultPayloadRoundTrip(t *testing.T) {
	var io vst.IOProperties
	copy(io.Data[:], "Stereo Out")
	var key vst.MidiKeyName
	copy(key.Data[:], "C#4")

	payloads := []wire.ResultPayload{
		wire.NoResult{},
		wire.TextResult{Text: "GainPlugin"},
		wire.BlobResult{Data: bytes.Repeat([]byte{0xAB}, 1024)},
		wire.PluginResult{Plugin: sampleAEffect()},
		wire.IOPropertiesResult{Props: io},
		wire.KeyNameResult{KeyName: key},
		wire.ParameterPropertiesResult{Props: sampleParameterProperties()},
		wire.RectResult{Rect: vst.Rect{Top: 0, Left: 0, Right: 640, Bottom: 480}},
		wire.TimeInfoResult{TimeInfo: sampleTimeInfo()},
	}

	for _, p := range payloads {
		name := reflect.TypeOf(p).Name()
		t.Run(name, func(t *testing.T) {
			res := &wire.DispatchResult{ReturnValue: 1, Payload: p}
			data, err := res.Encode()
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := wire.DecodeDispatchResult(data)
			if err != nil {
				t.Fatalf("DecodeDispatchResult: %v", err)
			}
			if !reflect.DeepEqual(got.Payload, p) {
				t.Errorf("payload mismatch:\ngot  %+v\nwant %+v", got.Payload, p)
			}
		})
	}
}

// dispatchCallHeader builds the 20 fixed bytes preceding the payload
// tag of a DispatchCall.
func dispatchCallHeader(opcode int32) []byte {
	var buf bytes.Buffer
	var b4 [4]byte
	var b8 [8]byte
	binary.LittleEndian.PutUint32(b4[:], uint32(opcode))
	buf.Write(b4[:]) // opcode
	binary.LittleEndian.PutUint32(b4[:], 0)
	buf.Write(b4[:]) // index
	buf.Write(b8[:]) // value
	buf.Write(b4[:]) // option
	return buf.Bytes()
}

func TestCallPayloadUnknownDiscriminant(t *testing.T) {
	data := append(dispatchCallHeader(42), 0xEE)

	_, err := wire.DecodeDispatchCall(data)
	if !errors.IsKind(err, errors.KindDiscriminant) {
		t.Fatalf("expected KindDiscriminant, got %v", err)
	}
	if !strings.Contains(err.Error(), "238") {
		t.Errorf("error should name the bad tag: %v", err)
	}
}

func TestResultPayloadUnknownDiscriminant(t *testing.T) {
	var buf bytes.Buffer
	var b8 [8]byte
	buf.Write(b8[:]) // return value
	// Tag 9 is the first value past the result union's range, but well
	// inside the call union's: the two sets must not bleed together.
	buf.WriteByte(9)

	_, err := wire.DecodeDispatchResult(buf.Bytes())
	if !errors.IsKind(err, errors.KindDiscriminant) {
		t.Fatalf("expected KindDiscriminant, got %v", err)
	}
}

func TestTextPayloadBounds(t *testing.T) {
	long := strings.Repeat("x", wire.MaxStringLength+1)
	call := &wire.DispatchCall{Opcode: 4, Payload: wire.TextPayload{Text: long}}
	if _, err := call.Encode(); !errors.IsKind(err, errors.KindBounds) {
		t.Errorf("encode: expected KindBounds, got %v", err)
	}

	// Decode side: a declared length of 65 with no bytes behind it
	// must be rejected before any read.
	data := append(dispatchCallHeader(4), byte(wire.CallTagText))
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], wire.MaxStringLength+1)
	data = append(data, n[:]...)
	if _, err := wire.DecodeDispatchCall(data); !errors.IsKind(err, errors.KindBounds) {
		t.Errorf("decode: expected KindBounds, got %v", err)
	}
}

func TestBlobPayloadBounds(t *testing.T) {
	// Encode side: one byte over the chunk limit.
	big := make([]byte, wire.MaxBinarySize+1)
	call := &wire.DispatchCall{Opcode: 24, Payload: wire.BlobPayload{Data: big}}
	if _, err := call.Encode(); !errors.IsKind(err, errors.KindBounds) {
		t.Errorf("encode: expected KindBounds, got %v", err)
	}

	// Decode side: forged oversized length prefix, no allocation may
	// happen before the bound check.
	data := append(dispatchCallHeader(24), byte(wire.CallTagBlob))
	var n [4]byte
	binary.LittleEndian.PutUint32(n[:], wire.MaxBinarySize+1)
	data = append(data, n[:]...)
	if _, err := wire.DecodeDispatchCall(data); !errors.IsKind(err, errors.KindBounds) {
		t.Errorf("decode: expected KindBounds, got %v", err)
	}
}

func TestBlobPayloadAtLimit(t *testing.T) {
	if testing.Short() {
		t.Skip("allocates the full chunk limit")
	}
	data := make([]byte, wire.MaxBinarySize)
	data[0] = 0x12
	data[len(data)-1] = 0x34

	call := &wire.DispatchCall{Opcode: 24, Payload: wire.BlobPayload{Data: data}}
	enc, err := call.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := wire.DecodeDispatchCall(enc)
	if err != nil {
		t.Fatalf("DecodeDispatchCall: %v", err)
	}
	blob := got.Payload.(wire.BlobPayload)
	if len(blob.Data) != wire.MaxBinarySize || blob.Data[0] != 0x12 || blob.Data[len(blob.Data)-1] != 0x34 {
		t.Error("blob at limit did not round trip")
	}
}

func TestTextPayloadAtLimit(t *testing.T) {
	text := strings.Repeat("y", wire.MaxStringLength)
	call := &wire.DispatchCall{Opcode: 4, Payload: wire.TextPayload{Text: text}}
	data, err := call.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := wire.DecodeDispatchCall(data)
	if err != nil {
		t.Fatalf("DecodeDispatchCall: %v", err)
	}
	if got.Payload.(wire.TextPayload).Text != text {
		t.Error("text at limit did not round trip")
	}
}

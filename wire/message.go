package wire

import (
	errs "github.com/crossaudio/vst-bridge/errors"
	"github.com/crossaudio/vst-bridge/wire/internal/binary"
)

// DispatchCall is one generic dispatcher invocation: the scalar
// arguments of AEffect.dispatcher plus the opaque payload slot. Value
// is pointer-sized in the ABI and therefore always 8 bytes on the
// wire.
type DispatchCall struct {
	Payload CallPayload
	Value   int64
	Opcode  int32
	Index   int32
	Option  float32
}

// Encode serializes the call to its wire form.
func (c *DispatchCall) Encode() ([]byte, error) {
	w := binary.NewWriter()
	w.WriteI32(c.Opcode)
	w.WriteI32(c.Index)
	w.WriteI64(c.Value)
	w.WriteF32(c.Option)
	if err := encodeCallPayload(w, []string{"dispatch_call", "payload"}, c.Payload); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodeDispatchCall parses one complete encoded dispatch call.
func DecodeDispatchCall(data []byte) (*DispatchCall, error) {
	r := binary.NewReader(data)
	d := &descReader{r: r, path: []string{"dispatch_call"}}

	var c DispatchCall
	d.i32(&c.Opcode)
	d.i32(&c.Index)
	d.i64(&c.Value)
	d.f32(&c.Option)
	if d.err != nil {
		return nil, d.err
	}

	payload, err := decodeCallPayload(r, []string{"dispatch_call", "payload"})
	if err != nil {
		return nil, err
	}
	c.Payload = payload

	if err := expectEnd(r, "dispatch_call"); err != nil {
		return nil, err
	}
	return &c, nil
}

// DispatchResult is the response to a DispatchCall: the dispatcher's
// return value plus the result payload slot.
type DispatchResult struct {
	Payload     ResultPayload
	ReturnValue int64
}

// Encode serializes the result to its wire form.
func (res *DispatchResult) Encode() ([]byte, error) {
	w := binary.NewWriter()
	w.WriteI64(res.ReturnValue)
	if err := encodeResultPayload(w, []string{"dispatch_result", "payload"}, res.Payload); err != nil {
		return nil, err
	}
	return w.Bytes(), nil
}

// DecodeDispatchResult parses one complete encoded dispatch result.
func DecodeDispatchResult(data []byte) (*DispatchResult, error) {
	r := binary.NewReader(data)

	ret, err := r.ReadI64()
	if err != nil {
		return nil, errs.Truncated([]string{"dispatch_result"}, err)
	}

	payload, err := decodeResultPayload(r, []string{"dispatch_result", "payload"})
	if err != nil {
		return nil, err
	}

	if err := expectEnd(r, "dispatch_result"); err != nil {
		return nil, err
	}
	return &DispatchResult{ReturnValue: ret, Payload: payload}, nil
}

// ParameterCall represents getParameter or setParameter: a nil Value
// is a get, a present Value is a set.
type ParameterCall struct {
	Value *float32
	Index int32
}

// Encode serializes the parameter call to its wire form.
func (p *ParameterCall) Encode() ([]byte, error) {
	w := binary.NewWriter()
	w.WriteI32(p.Index)
	writeOptionalF32(w, p.Value)
	return w.Bytes(), nil
}

// DecodeParameterCall parses one complete encoded parameter call.
func DecodeParameterCall(data []byte) (*ParameterCall, error) {
	r := binary.NewReader(data)

	idx, err := r.ReadI32()
	if err != nil {
		return nil, errs.Truncated([]string{"parameter_call"}, err)
	}
	v, err := readOptionalF32(r, []string{"parameter_call", "value"})
	if err != nil {
		return nil, err
	}

	if err := expectEnd(r, "parameter_call"); err != nil {
		return nil, err
	}
	return &ParameterCall{Index: idx, Value: v}, nil
}

// ParameterResult answers a ParameterCall. For a set it is an empty
// acknowledgement; for a get it carries the parameter's value.
type ParameterResult struct {
	Value *float32
}

// Encode serializes the parameter result to its wire form.
func (p *ParameterResult) Encode() ([]byte, error) {
	w := binary.NewWriter()
	writeOptionalF32(w, p.Value)
	return w.Bytes(), nil
}

// DecodeParameterResult parses one complete encoded parameter result.
func DecodeParameterResult(data []byte) (*ParameterResult, error) {
	r := binary.NewReader(data)

	v, err := readOptionalF32(r, []string{"parameter_result", "value"})
	if err != nil {
		return nil, err
	}

	if err := expectEnd(r, "parameter_result"); err != nil {
		return nil, err
	}
	return &ParameterResult{Value: v}, nil
}

// AudioBlock is one batch of audio for the plugin to process, or the
// processed batch coming back. Invariant: when the block carries any
// channels, every channel holds exactly FrameCount samples.
type AudioBlock struct {
	Channels   [][]float32
	FrameCount int32
}

// Validate checks the block's bounds and the frame-count invariant.
func (b *AudioBlock) Validate(phase errs.Phase) error {
	if len(b.Channels) > MaxAudioChannels {
		return errs.Bounds(phase, []string{"audio_block", "channels"},
			len(b.Channels), MaxAudioChannels)
	}
	if b.FrameCount < 0 {
		return errs.InvalidData(phase, []string{"audio_block", "frame_count"},
			"negative frame count")
	}
	for i, ch := range b.Channels {
		if len(ch) > MaxBufferSize {
			return errs.Bounds(phase, []string{"audio_block", "samples"},
				len(ch), MaxBufferSize)
		}
		if len(ch) != int(b.FrameCount) {
			return errs.New(phase, errs.KindInvalidData).
				Path("audio_block", "samples").
				Detail("channel %d holds %d samples, frame count is %d",
					i, len(ch), b.FrameCount).
				Build()
		}
	}
	return nil
}

// Encode serializes the block to its wire form. Blocks violating the
// frame-count invariant are rejected, never normalized.
func (b *AudioBlock) Encode() ([]byte, error) {
	if err := b.Validate(errs.PhaseEncode); err != nil {
		return nil, err
	}

	w := binary.NewWriter()
	w.WriteU32(uint32(len(b.Channels)))
	for _, ch := range b.Channels {
		w.WriteU32(uint32(len(ch)))
		for _, sample := range ch {
			w.WriteF32(sample)
		}
	}
	w.WriteI32(b.FrameCount)
	return w.Bytes(), nil
}

// DecodeAudioBlock parses one complete encoded audio block, enforcing
// channel and sample bounds before allocating.
func DecodeAudioBlock(data []byte) (*AudioBlock, error) {
	r := binary.NewReader(data)

	nchan, err := r.ReadU32()
	if err != nil {
		return nil, errs.Truncated([]string{"audio_block", "channels"}, err)
	}
	if int(nchan) > MaxAudioChannels {
		return nil, errs.Bounds(errs.PhaseDecode, []string{"audio_block", "channels"},
			int(nchan), MaxAudioChannels)
	}

	b := &AudioBlock{Channels: make([][]float32, nchan)}
	for i := range b.Channels {
		nsamp, err := r.ReadU32()
		if err != nil {
			return nil, errs.Truncated([]string{"audio_block", "samples"}, err)
		}
		if int(nsamp) > MaxBufferSize {
			return nil, errs.Bounds(errs.PhaseDecode, []string{"audio_block", "samples"},
				int(nsamp), MaxBufferSize)
		}
		ch := make([]float32, nsamp)
		for j := range ch {
			ch[j], err = r.ReadF32()
			if err != nil {
				return nil, errs.Truncated([]string{"audio_block", "samples"}, err)
			}
		}
		b.Channels[i] = ch
	}

	b.FrameCount, err = r.ReadI32()
	if err != nil {
		return nil, errs.Truncated([]string{"audio_block", "frame_count"}, err)
	}

	if err := expectEnd(r, "audio_block"); err != nil {
		return nil, err
	}
	if err := b.Validate(errs.PhaseDecode); err != nil {
		return nil, err
	}
	return b, nil
}

// expectEnd rejects trailing bytes after a complete message. The
// transport frames exactly one message per buffer, so leftovers mean
// the two sides disagree about the protocol.
func expectEnd(r *binary.Reader, msg string) error {
	if r.Remaining() != 0 {
		return errs.New(errs.PhaseDecode, errs.KindInvalidData).
			Path(msg).
			Detail("%d trailing bytes after message", r.Remaining()).
			Build()
	}
	return nil
}

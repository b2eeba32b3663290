package wire

import (
	errs "github.com/crossaudio/vst-bridge/errors"
	"github.com/crossaudio/vst-bridge/vst"
	"github.com/crossaudio/vst-bridge/wire/internal/binary"
)

// Descriptor codecs are fixed, ordered sequences of primitive reads
// and writes mirroring the plugin ABI struct layouts. Field order and
// widths must never change: the receiving side reconstructs a
// binary-compatible struct from them. Embedded fixed-capacity arrays
// are written raw at their declared size, without a length prefix.

// descReader reads descriptor fields with a sticky error, so a
// truncated buffer surfaces once without a check after every field.
type descReader struct {
	r    *binary.Reader
	err  error
	path []string
}

func (d *descReader) fail(err error) {
	if d.err == nil {
		d.err = errs.Truncated(d.path, err)
	}
}

func (d *descReader) i16(dst *int16) {
	if d.err != nil {
		return
	}
	v, err := d.r.ReadI16()
	if err != nil {
		d.fail(err)
		return
	}
	*dst = v
}

func (d *descReader) i32(dst *int32) {
	if d.err != nil {
		return
	}
	v, err := d.r.ReadI32()
	if err != nil {
		d.fail(err)
		return
	}
	*dst = v
}

func (d *descReader) i64(dst *int64) {
	if d.err != nil {
		return
	}
	v, err := d.r.ReadI64()
	if err != nil {
		d.fail(err)
		return
	}
	*dst = v
}

func (d *descReader) f32(dst *float32) {
	if d.err != nil {
		return
	}
	v, err := d.r.ReadF32()
	if err != nil {
		d.fail(err)
		return
	}
	*dst = v
}

func (d *descReader) f64(dst *float64) {
	if d.err != nil {
		return
	}
	v, err := d.r.ReadF64()
	if err != nil {
		d.fail(err)
		return
	}
	*dst = v
}

func (d *descReader) bytes(dst []byte) {
	if d.err != nil {
		return
	}
	if err := d.r.ReadFull(dst); err != nil {
		d.fail(err)
	}
}

func writeAEffect(w *binary.Writer, e *vst.AEffect) {
	w.WriteI32(e.Magic)
	w.WriteI32(e.NumPrograms)
	w.WriteI32(e.NumParams)
	w.WriteI32(e.NumInputs)
	w.WriteI32(e.NumOutputs)
	w.WriteI32(e.Flags)
	w.WriteI32(e.InitialDelay)
	w.WriteI32(e.Empty3a)
	w.WriteI32(e.Empty3b)
	w.WriteF32(e.UnknownFloat)
	w.WriteI32(e.UniqueID)
	w.WriteI32(e.Version)
}

func readAEffect(r *binary.Reader, path []string) (vst.AEffect, error) {
	var e vst.AEffect
	d := &descReader{r: r, path: path}
	d.i32(&e.Magic)
	d.i32(&e.NumPrograms)
	d.i32(&e.NumParams)
	d.i32(&e.NumInputs)
	d.i32(&e.NumOutputs)
	d.i32(&e.Flags)
	d.i32(&e.InitialDelay)
	d.i32(&e.Empty3a)
	d.i32(&e.Empty3b)
	d.f32(&e.UnknownFloat)
	d.i32(&e.UniqueID)
	d.i32(&e.Version)
	return e, d.err
}

func writeIOProperties(w *binary.Writer, p *vst.IOProperties) {
	w.WriteBytes(p.Data[:])
}

func readIOProperties(r *binary.Reader, path []string) (vst.IOProperties, error) {
	var p vst.IOProperties
	d := &descReader{r: r, path: path}
	d.bytes(p.Data[:])
	return p, d.err
}

func writeMidiKeyName(w *binary.Writer, k *vst.MidiKeyName) {
	w.WriteBytes(k.Data[:])
}

func readMidiKeyName(r *binary.Reader, path []string) (vst.MidiKeyName, error) {
	var k vst.MidiKeyName
	d := &descReader{r: r, path: path}
	d.bytes(k.Data[:])
	return k, d.err
}

func writeParameterProperties(w *binary.Writer, p *vst.ParameterProperties) {
	w.WriteF32(p.StepFloat)
	w.WriteF32(p.SmallStepFloat)
	w.WriteF32(p.LargeStepFloat)
	w.WriteBytes(p.Label[:])
	w.WriteI32(p.Flags)
	w.WriteI32(p.MinInteger)
	w.WriteI32(p.MaxInteger)
	w.WriteI32(p.StepInteger)
	w.WriteI32(p.LargeStepInteger)
	w.WriteBytes(p.ShortLabel[:])
	w.WriteI16(p.DisplayIndex)
	w.WriteI16(p.Category)
	w.WriteI16(p.NumParametersInCategory)
	w.WriteI16(p.Reserved)
	w.WriteBytes(p.CategoryLabel[:])
	w.WriteBytes(p.Future[:])
}

func readParameterProperties(r *binary.Reader, path []string) (vst.ParameterProperties, error) {
	var p vst.ParameterProperties
	d := &descReader{r: r, path: path}
	d.f32(&p.StepFloat)
	d.f32(&p.SmallStepFloat)
	d.f32(&p.LargeStepFloat)
	d.bytes(p.Label[:])
	d.i32(&p.Flags)
	d.i32(&p.MinInteger)
	d.i32(&p.MaxInteger)
	d.i32(&p.StepInteger)
	d.i32(&p.LargeStepInteger)
	d.bytes(p.ShortLabel[:])
	d.i16(&p.DisplayIndex)
	d.i16(&p.Category)
	d.i16(&p.NumParametersInCategory)
	d.i16(&p.Reserved)
	d.bytes(p.CategoryLabel[:])
	d.bytes(p.Future[:])
	return p, d.err
}

func writeRect(w *binary.Writer, rc *vst.Rect) {
	w.WriteI16(rc.Top)
	w.WriteI16(rc.Left)
	w.WriteI16(rc.Right)
	w.WriteI16(rc.Bottom)
}

func readRect(r *binary.Reader, path []string) (vst.Rect, error) {
	var rc vst.Rect
	d := &descReader{r: r, path: path}
	d.i16(&rc.Top)
	d.i16(&rc.Left)
	d.i16(&rc.Right)
	d.i16(&rc.Bottom)
	return rc, d.err
}

func writeTimeInfo(w *binary.Writer, t *vst.TimeInfo) {
	w.WriteF64(t.SamplePos)
	w.WriteF64(t.SampleRate)
	w.WriteF64(t.NanoSeconds)
	w.WriteF64(t.PpqPos)
	w.WriteF64(t.Tempo)
	w.WriteF64(t.BarStartPos)
	w.WriteF64(t.CycleStartPos)
	w.WriteF64(t.CycleEndPos)
	w.WriteI32(t.TimeSigNumerator)
	w.WriteI32(t.TimeSigDenominator)
	for _, v := range t.Empty3 {
		w.WriteI32(v)
	}
	w.WriteI32(t.Flags)
}

func readTimeInfo(r *binary.Reader, path []string) (vst.TimeInfo, error) {
	var t vst.TimeInfo
	d := &descReader{r: r, path: path}
	d.f64(&t.SamplePos)
	d.f64(&t.SampleRate)
	d.f64(&t.NanoSeconds)
	d.f64(&t.PpqPos)
	d.f64(&t.Tempo)
	d.f64(&t.BarStartPos)
	d.f64(&t.CycleStartPos)
	d.f64(&t.CycleEndPos)
	d.i32(&t.TimeSigNumerator)
	d.i32(&t.TimeSigDenominator)
	for i := range t.Empty3 {
		d.i32(&t.Empty3[i])
	}
	d.i32(&t.Flags)
	return t, d.err
}

package binary

import (
	"bytes"
	"errors"
	"math"
	"testing"
)

func TestScalarRoundTrip(t *testing.T) {
	w := NewWriter()
	w.Byte(0xAB)
	w.WriteU16(0xBEEF)
	w.WriteI16(-12345)
	w.WriteU32(0xDEADBEEF)
	w.WriteI32(-2000000000)
	w.WriteU64(0x0123456789ABCDEF)
	w.WriteI64(-9000000000000000000)
	w.WriteF32(0.5)
	w.WriteF64(-1234.5678)

	r := NewReader(w.Bytes())

	if v, err := r.ReadByte(); err != nil || v != 0xAB {
		t.Errorf("byte = %x, %v", v, err)
	}
	if v, err := r.ReadU16(); err != nil || v != 0xBEEF {
		t.Errorf("u16 = %x, %v", v, err)
	}
	if v, err := r.ReadI16(); err != nil || v != -12345 {
		t.Errorf("i16 = %d, %v", v, err)
	}
	if v, err := r.ReadU32(); err != nil || v != 0xDEADBEEF {
		t.Errorf("u32 = %x, %v", v, err)
	}
	if v, err := r.ReadI32(); err != nil || v != -2000000000 {
		t.Errorf("i32 = %d, %v", v, err)
	}
	if v, err := r.ReadU64(); err != nil || v != 0x0123456789ABCDEF {
		t.Errorf("u64 = %x, %v", v, err)
	}
	if v, err := r.ReadI64(); err != nil || v != -9000000000000000000 {
		t.Errorf("i64 = %d, %v", v, err)
	}
	if v, err := r.ReadF32(); err != nil || v != 0.5 {
		t.Errorf("f32 = %v, %v", v, err)
	}
	if v, err := r.ReadF64(); err != nil || v != -1234.5678 {
		t.Errorf("f64 = %v, %v", v, err)
	}
	if r.Remaining() != 0 {
		t.Errorf("remaining = %d, want 0", r.Remaining())
	}
}

func TestLittleEndianLayout(t *testing.T) {
	w := NewWriter()
	w.WriteU32(0x01020304)
	want := []byte{0x04, 0x03, 0x02, 0x01}
	if !bytes.Equal(w.Bytes(), want) {
		t.Errorf("layout = % x, want % x", w.Bytes(), want)
	}
}

func TestFloatBitExact(t *testing.T) {
	nan := math.Float32frombits(0x7FC00001)
	w := NewWriter()
	w.WriteF32(nan)

	r := NewReader(w.Bytes())
	got, err := r.ReadF32()
	if err != nil {
		t.Fatal(err)
	}
	if math.Float32bits(got) != 0x7FC00001 {
		t.Errorf("NaN payload not preserved: %08x", math.Float32bits(got))
	}
}

func TestTruncatedReads(t *testing.T) {
	r := NewReader([]byte{0x01, 0x02})
	if _, err := r.ReadU32(); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
	// A failed read must not consume bytes.
	if r.Position() != 0 {
		t.Errorf("position moved to %d after failed read", r.Position())
	}
	if v, err := r.ReadU16(); err != nil || v != 0x0201 {
		t.Errorf("u16 after failed u32 = %x, %v", v, err)
	}
}

func TestReadBytesCopies(t *testing.T) {
	src := []byte{1, 2, 3, 4}
	r := NewReader(src)
	got, err := r.ReadBytes(4)
	if err != nil {
		t.Fatal(err)
	}
	src[0] = 99
	if got[0] != 1 {
		t.Error("ReadBytes must copy out of the buffer")
	}
}

func TestReadFull(t *testing.T) {
	r := NewReader([]byte{1, 2, 3})
	var dst [3]byte
	if err := r.ReadFull(dst[:]); err != nil {
		t.Fatal(err)
	}
	if dst != [3]byte{1, 2, 3} {
		t.Errorf("dst = %v", dst)
	}
	if err := r.ReadFull(dst[:]); !errors.Is(err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", err)
	}
}

func TestParseError(t *testing.T) {
	r := NewReader(nil)
	err := r.WrapError("opcode", ErrUnexpectedEOF)

	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatal("expected *ParseError")
	}
	if pe.Field != "opcode" || pe.Position != 0 {
		t.Errorf("unexpected ParseError: %+v", pe)
	}
	if !errors.Is(err, ErrUnexpectedEOF) {
		t.Error("ParseError should unwrap to cause")
	}
}

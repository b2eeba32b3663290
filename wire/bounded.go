package wire

import (
	errs "github.com/crossaudio/vst-bridge/errors"
	"github.com/crossaudio/vst-bridge/wire/internal/binary"
)

// Bounded containers are length-prefixed with a u32 and validated
// against their field maximum before any bytes are read, so a corrupt
// prefix never turns into an allocation.

func writeText(w *binary.Writer, path []string, s string) error {
	if len(s) > MaxStringLength {
		return errs.Bounds(errs.PhaseEncode, path, len(s), MaxStringLength)
	}
	w.WriteU32(uint32(len(s)))
	w.WriteBytes([]byte(s))
	return nil
}

func readText(r *binary.Reader, path []string) (string, error) {
	n, err := r.ReadU32()
	if err != nil {
		return "", errs.Truncated(path, err)
	}
	if int(n) > MaxStringLength {
		return "", errs.Bounds(errs.PhaseDecode, path, int(n), MaxStringLength)
	}
	data, err := r.ReadBytes(int(n))
	if err != nil {
		return "", errs.Truncated(path, err)
	}
	return string(data), nil
}

func writeBlob(w *binary.Writer, path []string, data []byte) error {
	if len(data) > MaxBinarySize {
		return errs.Bounds(errs.PhaseEncode, path, len(data), MaxBinarySize)
	}
	w.WriteU32(uint32(len(data)))
	w.WriteBytes(data)
	return nil
}

func readBlob(r *binary.Reader, path []string) ([]byte, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, errs.Truncated(path, err)
	}
	if int(n) > MaxBinarySize {
		return nil, errs.Bounds(errs.PhaseDecode, path, int(n), MaxBinarySize)
	}
	data, err := r.ReadBytes(int(n))
	if err != nil {
		return nil, errs.Truncated(path, err)
	}
	return data, nil
}

// Optional floats appear in parameter messages: a one-byte presence
// flag followed by the value when present.

func writeOptionalF32(w *binary.Writer, v *float32) {
	if v == nil {
		w.Byte(0)
		return
	}
	w.Byte(1)
	w.WriteF32(*v)
}

func readOptionalF32(r *binary.Reader, path []string) (*float32, error) {
	present, err := r.ReadByte()
	if err != nil {
		return nil, errs.Truncated(path, err)
	}
	switch present {
	case 0:
		return nil, nil
	case 1:
		v, err := r.ReadF32()
		if err != nil {
			return nil, errs.Truncated(path, err)
		}
		return &v, nil
	default:
		return nil, errs.InvalidData(errs.PhaseDecode, path,
			"presence flag must be 0 or 1")
	}
}

package seq

import (
	"fmt"
	"unsafe"

	"github.com/wippyai/fuzz-bridge/errors"
)

// Convert turns a Go host value into an encoded buffer.
//
// Byte slices become u8 buffers over the original storage (length = byte
// count). Strings are decoded and stored at the smallest width that holds
// every code point, mirroring compact flexible string representations:
// all points < 0x100 -> u8, < 0x10000 -> u16, otherwise u32. Length is the
// code-unit count. Any other value is rejected with a type-mismatch error.
func Convert(v any) (*Buffer, error) {
	switch s := v.(type) {
	case []byte:
		return &Buffer{
			Owner: s,
			Width: Width8,
			Data:  unsafe.Pointer(unsafe.SliceData(s)),
			Len:   len(s),
		}, nil
	case string:
		return convertString(s), nil
	default:
		return nil, errors.TypeMismatch(errors.PhaseConvert,
			fmt.Sprintf("%T", v), "expected string or []byte")
	}
}

func convertString(s string) *Buffer {
	runes := []rune(s)

	var max rune
	for _, r := range runes {
		if r > max {
			max = r
		}
	}

	switch {
	case max < 0x100:
		data := make([]uint8, len(runes))
		for i, r := range runes {
			data[i] = uint8(r)
		}
		return pinned(Width8, data)
	case max < 0x10000:
		data := make([]uint16, len(runes))
		for i, r := range runes {
			data[i] = uint16(r)
		}
		return pinned(Width16, data)
	default:
		data := make([]uint32, len(runes))
		for i, r := range runes {
			data[i] = uint32(r)
		}
		return pinned(Width32, data)
	}
}

func pinned[T uint8 | uint16 | uint32 | uint64](w Width, data []T) *Buffer {
	return &Buffer{
		Owner: data,
		Width: w,
		Data:  unsafe.Pointer(unsafe.SliceData(data)),
		Len:   len(data),
	}
}

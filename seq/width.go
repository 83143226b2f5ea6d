package seq

// Width identifies the element size of an encoded buffer.
// The zero value is invalid; a zeroed Buffer is the empty sentinel.
type Width uint8

const (
	Width8 Width = iota + 1
	Width16
	Width32
	Width64
)

var widthSizes = [...]int{
	Width8:  1,
	Width16: 2,
	Width32: 4,
	Width64: 8,
}

var widthNames = [...]string{
	Width8:  "u8",
	Width16: "u16",
	Width32: "u32",
	Width64: "u64",
}

// Size returns the element size in bytes, or 0 for an invalid tag.
func (w Width) Size() int {
	if int(w) < len(widthSizes) {
		return widthSizes[w]
	}
	return 0
}

// Valid reports whether w is one of the four recognized widths.
func (w Width) Valid() bool {
	return w >= Width8 && w <= Width64
}

func (w Width) String() string {
	if w.Valid() {
		return widthNames[w]
	}
	return "invalid"
}

package pixfmt

import "github.com/hitzhang/librealsense/errs"

// FourCC is a raw wire pixel-packing scheme identifier, as delivered by the
// sensor before decoding into a Format.
type FourCC int

// The closed set of input FourCCs.
const (
	YUY2 FourCC = iota
	FourCCZ16
	FourCCY8
	FourCCY16
	Y8I
	Y12I
	INVR
	INVZ
	INVI
	INRI
	INZI
)

// String returns the four-character wire name of the FourCC.
func (f FourCC) String() string {
	switch f {
	case YUY2:
		return "YUY2"
	case FourCCZ16:
		return "Z16 "
	case FourCCY8:
		return "Y8  "
	case FourCCY16:
		return "Y16 "
	case Y8I:
		return "Y8I "
	case Y12I:
		return "Y12I"
	case INVR:
		return "INVR"
	case INVZ:
		return "INVZ"
	case INVI:
		return "INVI"
	case INRI:
		return "INRI"
	case INZI:
		return "INZI"
	default:
		return "UnknownFourCC"
	}
}

// macropixel describes the packing geometry of one FourCC: how many pixels
// (width) are packed into how many bytes (bytes), and
// how many output planes a codec for this FourCC produces.
type macropixel struct {
	width  int
	bytes  int
	planes int
}

var macropixels = map[FourCC]macropixel{
	YUY2:      {width: 2, bytes: 4, planes: 1},
	FourCCZ16: {width: 1, bytes: 2, planes: 1},
	FourCCY8:  {width: 1, bytes: 1, planes: 1},
	FourCCY16: {width: 1, bytes: 2, planes: 1},
	Y8I:       {width: 1, bytes: 2, planes: 2},
	Y12I:      {width: 1, bytes: 3, planes: 2},
	INVR:      {width: 1, bytes: 2, planes: 1},
	INVZ:      {width: 1, bytes: 2, planes: 1},
	INVI:      {width: 1, bytes: 1, planes: 1},
	INRI:      {width: 1, bytes: 3, planes: 2},
	INZI:      {width: 2, bytes: 4, planes: 2},
}

// MacropixelWidth returns the number of logical pixels packed into one
// macropixel of this FourCC.
func (f FourCC) MacropixelWidth() (int, error) {
	m, ok := macropixels[f]
	if !ok {
		return 0, errs.Unsupportedf("pixfmt: unsupported fourcc %v", f)
	}
	return m.width, nil
}

// OutputPlanes returns how many output planes a codec for this FourCC
// produces (1 for single-image formats, 2 for interleaved dual-image
// formats such as Y8I, Y12I, and INRI/INZI).
func (f FourCC) OutputPlanes() (int, error) {
	m, ok := macropixels[f]
	if !ok {
		return 0, errs.Unsupportedf("pixfmt: unsupported fourcc %v", f)
	}
	return m.planes, nil
}

// SizeOfFourCC returns the number of raw wire bytes for an image of the
// given width and height in this FourCC. width must be a whole multiple of
// the FourCC's macropixel width, and YUY2 additionally requires even width.
func SizeOfFourCC(width, height int, f FourCC) (int, error) {
	m, ok := macropixels[f]
	if !ok {
		return 0, errs.Unsupportedf("pixfmt: unsupported fourcc %v", f)
	}
	if width%m.width != 0 {
		return 0, errs.BadGeometryf("pixfmt: width %d is not a multiple of macropixel width %d for %v", width, m.width, f)
	}
	if f == YUY2 && width%2 != 0 {
		return 0, errs.BadGeometryf("pixfmt: YUYV requires even width, got %d", width)
	}
	return (width / m.width) * height * m.bytes, nil
}

// Package pixfmt defines the closed set of output pixel formats and input
// FourCCs handled by the image pipeline core, along with the size oracle
// that maps (width, height, format) to a byte count.
package pixfmt

import "github.com/hitzhang/librealsense/errs"

// Format is an output pixel format produced by a codec.
type Format int

// The closed set of output pixel formats.
const (
	Z16 Format = iota
	YUYV
	RGB8
	BGR8
	RGBA8
	BGRA8
	Y8
	Y16
)

// String returns the canonical name of the format.
func (f Format) String() string {
	switch f {
	case Z16:
		return "Z16"
	case YUYV:
		return "YUYV"
	case RGB8:
		return "RGB8"
	case BGR8:
		return "BGR8"
	case RGBA8:
		return "RGBA8"
	case BGRA8:
		return "BGRA8"
	case Y8:
		return "Y8"
	case Y16:
		return "Y16"
	default:
		return "UnknownFormat"
	}
}

// BytesPerPixel returns the fixed bytes-per-pixel of the format, or an
// UnsupportedFormat error if f is outside the closed set.
func (f Format) BytesPerPixel() (int, error) {
	switch f {
	case Z16, YUYV, Y16:
		return 2, nil
	case RGB8, BGR8:
		return 3, nil
	case RGBA8, BGRA8:
		return 4, nil
	case Y8:
		return 1, nil
	default:
		return 0, errs.Unsupportedf("pixfmt: unsupported output format %v", int(f))
	}
}

// SizeOfFormat returns the number of bytes a conformant encoder writes for
// an image of the given width, height and output pixel format.
func SizeOfFormat(width, height int, f Format) (int, error) {
	bpp, err := f.BytesPerPixel()
	if err != nil {
		return 0, err
	}
	if f == YUYV && width%2 != 0 {
		return 0, errs.BadGeometryf("pixfmt: YUYV requires even width, got %d", width)
	}
	return width * height * bpp, nil
}

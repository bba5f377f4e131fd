package transform

import (
	"github.com/hitzhang/librealsense/errs"
	"github.com/hitzhang/librealsense/logging"
	"github.com/hitzhang/librealsense/pixfmt"
)

// Table is a rectification lookup table: entry i is the index into the
// unrectified buffer that supplies the pixel at rectified index i. It is
// built once per (rectIntrin, extrin, unrectIntrin) triple and is
// immutable and freely shareable thereafter (spec §3, §5).
type Table struct {
	Width, Height int
	entries       []int32
}

// BuildRectificationTable computes a Table by reusing the alignment kernel
// with a constant depth of 1.0 (spec §4.4): for every rectified pixel that
// reprojects inside the unrectified image, the table records the
// unrectified index; all other entries are left at zero (callers must not
// rely on content at out-of-bounds entries, per spec §3).
//
// logger may be nil; if non-nil, it receives a debug line reporting how
// many rectified pixels fell outside the unrectified image, a diagnostic
// with no effect on the table's contents.
func BuildRectificationTable(rectIntrin Intrinsics, rectToUnrect Extrinsics, unrectIntrin Intrinsics, logger logging.Logger) (*Table, error) {
	if err := rectIntrin.CheckValid(); err != nil {
		return nil, err
	}
	if err := unrectIntrin.CheckValid(); err != nil {
		return nil, err
	}

	n := rectIntrin.Width * rectIntrin.Height
	entries := make([]int32, n)
	written := 0

	alignPixels(
		rectIntrin, rectToUnrect, unrectIntrin,
		func(int) float64 { return 1.0 },
		func(rectIndex, unrectIndex int) {
			entries[rectIndex] = int32(unrectIndex)
			written++
		},
	)

	if logger != nil {
		logger.Debugf("rectification table built: %d/%d rectified pixels mapped, %d out of unrectified bounds", written, n, n-written)
	}

	return &Table{Width: rectIntrin.Width, Height: rectIntrin.Height, entries: entries}, nil
}

// At returns the raw entry at rectified index i.
func (t *Table) At(i int) int32 { return t.entries[i] }

// Len returns the number of entries in the table (Width*Height).
func (t *Table) Len() int { return len(t.entries) }

// Equal reports whether two tables have identical dimensions and entries;
// used to assert the determinism property in spec §8.
func (t *Table) Equal(other *Table) bool {
	if t.Width != other.Width || t.Height != other.Height || len(t.entries) != len(other.entries) {
		return false
	}
	for i, v := range t.entries {
		if other.entries[i] != v {
			return false
		}
	}
	return true
}

// RectifyBytes applies table to an unrectified source buffer of pixel width
// bytesPerPixel, producing a rectified output of the same pixel width:
// out[i] = source[table[i]] element-wise over pixels. bytesPerPixel must be
// 1, 2, 3, or 4.
func RectifyBytes(table *Table, source []byte, bytesPerPixel int, out []byte) error {
	if bytesPerPixel < 1 || bytesPerPixel > 4 {
		return errs.BadGeometryf("transform: bytesPerPixel must be in [1,4], got %d", bytesPerPixel)
	}
	if len(out) != table.Len()*bytesPerPixel {
		return errs.BadGeometryf("transform: output buffer is %d bytes, expected %d", len(out), table.Len()*bytesPerPixel)
	}
	if len(source)%bytesPerPixel != 0 {
		return errs.BadGeometryf("transform: source buffer length %d is not a multiple of pixel width %d", len(source), bytesPerPixel)
	}
	sourcePixels := len(source) / bytesPerPixel
	for i, entry := range table.entries {
		si := int(entry)
		if si < 0 || si >= sourcePixels {
			return errs.BadGeometryf("transform: rectification entry %d out of range for source with %d pixels", si, sourcePixels)
		}
		copy(out[i*bytesPerPixel:(i+1)*bytesPerPixel], source[si*bytesPerPixel:(si+1)*bytesPerPixel])
	}
	return nil
}

// Rectify is RectifyBytes parameterised by a pixfmt.Format instead of a raw
// byte width, rejecting YUYV per spec §4.4/§9.
func Rectify(table *Table, source []byte, format pixfmt.Format, out []byte) error {
	if err := checkAlignable(format); err != nil {
		return err
	}
	bpp, err := format.BytesPerPixel()
	if err != nil {
		return err
	}
	return RectifyBytes(table, source, bpp, out)
}

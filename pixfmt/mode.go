package pixfmt

import "github.com/hitzhang/librealsense/errs"

// Stream describes one output plane a codec is asked to produce: its
// dimensions (a top-left aligned sub-rectangle of the input) and pixel
// format.
type Stream struct {
	Width  int
	Height int
	Format Format
}

// SubdeviceMode is the descriptor carried with every raw frame: the input
// geometry and wire FourCC, plus one or two requested output streams.
type SubdeviceMode struct {
	Width   int
	Height  int
	FourCC  FourCC
	Streams []Stream
}

// CheckValid validates the invariants a SubdeviceMode must satisfy before
// any codec may be invoked on it: input width is a whole multiple of the
// FourCC's macropixel width, and every output stream is a top-left aligned
// sub-rectangle of the input (never larger).
func (m SubdeviceMode) CheckValid() error {
	macroWidth, err := m.FourCC.MacropixelWidth()
	if err != nil {
		return err
	}
	if m.Width%macroWidth != 0 {
		return errs.BadGeometryf("pixfmt: input width %d is not a multiple of macropixel width %d for %v", m.Width, macroWidth, m.FourCC)
	}
	if len(m.Streams) == 0 || len(m.Streams) > 2 {
		return errs.BadGeometryf("pixfmt: mode must have 1 or 2 output streams, got %d", len(m.Streams))
	}
	wantPlanes, err := m.FourCC.OutputPlanes()
	if err != nil {
		return err
	}
	if len(m.Streams) != wantPlanes {
		return errs.BadGeometryf("pixfmt: %v produces %d output plane(s), mode declares %d", m.FourCC, wantPlanes, len(m.Streams))
	}
	for i, s := range m.Streams {
		if s.Width > m.Width || s.Height > m.Height {
			return errs.BadGeometryf("pixfmt: output stream %d (%dx%d) exceeds input geometry (%dx%d)", i, s.Width, s.Height, m.Width, m.Height)
		}
		if s.Format == YUYV && s.Width%2 != 0 {
			return errs.BadGeometryf("pixfmt: output stream %d is YUYV and requires even width, got %d", i, s.Width)
		}
	}
	return nil
}

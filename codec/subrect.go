package codec

import (
	"github.com/hitzhang/librealsense/errs"
	"github.com/hitzhang/librealsense/pixfmt"
)

// unpackSubrect implements the sub-rect copy fallback: for single-plane
// formats where the input and output pixel layouts are byte-identical, copy
// min(inStride, outStride) bytes per row for min(inHeight, outHeight) rows.
//
// spec §9's open question ("unpack_subrect silently truncates when the
// output is wider than the input") is resolved by rejecting that
// configuration here rather than truncating it: pixfmt.SubdeviceMode.CheckValid
// already guarantees outWidth <= inWidth for every caller that goes through
// Decode, so an outStride > inStride at this point means Decode's own
// invariant was bypassed — a ContractViolation.
func unpackSubrect(out []byte, in []byte, inStride, outStride, inHeight, outHeight int) {
	if outStride > inStride {
		errs.ContractViolationf("codec: unpackSubrect output stride %d exceeds input stride %d", outStride, inStride)
	}
	rows := inHeight
	if outHeight < rows {
		rows = outHeight
	}
	copyLen := inStride
	if outStride < copyLen {
		copyLen = outStride
	}
	for y := 0; y < rows; y++ {
		copy(out[y*outStride:y*outStride+copyLen], in[y*inStride:y*inStride+copyLen])
	}
}

// passthroughFormats maps each FourCC to the output pixel format whose byte
// layout matches its wire layout exactly, making a sub-rect copy the correct
// (and only necessary) codec. FourCCY16 is deliberately absent here: its
// raw samples are 10-bit values packed in a 16-bit word and need the
// bit-shift expansion codec registered in expand.go, not a byte-identical
// copy.
var passthroughFormats = map[pixfmt.FourCC]pixfmt.Format{
	pixfmt.FourCCZ16: pixfmt.Z16,
	pixfmt.FourCCY8:  pixfmt.Y8,
	pixfmt.INVR:      pixfmt.Z16,
	pixfmt.INVZ:      pixfmt.Z16,
	pixfmt.INVI:      pixfmt.Y8,
}

func registerSubrectPassthrough() {
	for fourcc, format := range passthroughFormats {
		fourcc, format := fourcc, format
		register(fourcc, []pixfmt.Format{format}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
			if mode.FourCC != fourcc || len(mode.Streams) != 1 || mode.Streams[0].Format != format {
				errs.ContractViolationf("codec: subrect codec invoked on wrong mode %+v", mode)
			}
			inStride, err := pixfmt.SizeOfFourCC(mode.Width, 1, fourcc)
			if err != nil {
				errs.ContractViolationf("codec: %v", err)
			}
			outStride, err := pixfmt.SizeOfFormat(mode.Streams[0].Width, 1, format)
			if err != nil {
				errs.ContractViolationf("codec: %v", err)
			}
			unpackSubrect(outputs[0], input, inStride, outStride, mode.Height, mode.Streams[0].Height)
		})
	}
}

func init() {
	registerSubrectPassthrough()
}

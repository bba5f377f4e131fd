package codec

import (
	"encoding/binary"

	"github.com/hitzhang/librealsense/errs"
	"github.com/hitzhang/librealsense/pixfmt"
)

// expand8to16 promotes an 8-bit sample to 16-bit so that white stays white:
// p becomes (p<<8)|p.
func expand8to16(p byte) uint16 {
	return uint16(p)<<8 | uint16(p)
}

// expand10to16 promotes a 10-bit sample (0..1023) to 16-bit so that
// full-scale 10-bit maps to full-scale 16-bit: v10 -> (v10<<6)|(v10>>4).
// This is an exact-integer approximation of v10 * 65535/1023.
func expand10to16(v10 uint16) uint16 {
	return v10<<6 | v10>>4
}

// shiftRaw10to16 promotes a raw 10-bit sample already stored in a 16-bit
// word to a full 16-bit sample by shifting it into the high bits and
// zeroing the low bits: p -> p << 6.
func shiftRaw10to16(p uint16) uint16 {
	return p << 6
}

func init() {
	register(pixfmt.FourCCY8, []pixfmt.Format{pixfmt.Y16}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
		if mode.FourCC != pixfmt.FourCCY8 || len(mode.Streams) != 1 || mode.Streams[0].Format != pixfmt.Y16 {
			errs.ContractViolationf("codec: y8->y16 codec invoked on wrong mode %+v", mode)
		}
		s := mode.Streams[0]
		out := outputs[0]
		oi := 0
		for y := 0; y < s.Height; y++ {
			rowStart := y * mode.Width
			for x := 0; x < s.Width; x++ {
				binary.LittleEndian.PutUint16(out[oi:oi+2], expand8to16(input[rowStart+x]))
				oi += 2
			}
		}
	})

	register(pixfmt.FourCCY16, []pixfmt.Format{pixfmt.Y16}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
		if mode.FourCC != pixfmt.FourCCY16 || len(mode.Streams) != 1 || mode.Streams[0].Format != pixfmt.Y16 {
			errs.ContractViolationf("codec: y16->y16 codec invoked on wrong mode %+v", mode)
		}
		s := mode.Streams[0]
		out := outputs[0]
		oi := 0
		for y := 0; y < s.Height; y++ {
			rowStart := y * mode.Width * 2
			ii := rowStart
			for x := 0; x < s.Width; x++ {
				raw := binary.LittleEndian.Uint16(input[ii : ii+2])
				binary.LittleEndian.PutUint16(out[oi:oi+2], shiftRaw10to16(raw))
				ii += 2
				oi += 2
			}
		}
	})
}

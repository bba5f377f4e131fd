package codec

import (
	"encoding/binary"

	"github.com/hitzhang/librealsense/errs"
	"github.com/hitzhang/librealsense/pixfmt"
)

func init() {
	register(pixfmt.Y8I, []pixfmt.Format{pixfmt.Y8, pixfmt.Y8}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
		if mode.FourCC != pixfmt.Y8I || len(mode.Streams) != 2 || mode.Streams[0].Format != pixfmt.Y8 || mode.Streams[1].Format != pixfmt.Y8 {
			errs.ContractViolationf("codec: y8i codec invoked on wrong mode %+v", mode)
		}
		s := mode.Streams[0]
		left, right := outputs[0], outputs[1]
		oi := 0
		for y := 0; y < s.Height; y++ {
			rowStart := y * mode.Width * 2
			ii := rowStart
			for x := 0; x < s.Width; x++ {
				left[oi] = input[ii]
				right[oi] = input[ii+1]
				ii += 2
				oi++
			}
		}
	})

	register(pixfmt.Y12I, []pixfmt.Format{pixfmt.Y16, pixfmt.Y16}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
		if mode.FourCC != pixfmt.Y12I || len(mode.Streams) != 2 || mode.Streams[0].Format != pixfmt.Y16 || mode.Streams[1].Format != pixfmt.Y16 {
			errs.ContractViolationf("codec: y12i codec invoked on wrong mode %+v", mode)
		}
		s := mode.Streams[0]
		left, right := outputs[0], outputs[1]
		oi := 0
		for y := 0; y < s.Height; y++ {
			rowStart := y * mode.Width * 3
			ii := rowStart
			for x := 0; x < s.Width; x++ {
				rl := uint16(input[ii])
				rh := uint16(input[ii+1]) & 0x0F
				ll := (uint16(input[ii+1]) >> 4) & 0x0F
				lh := uint16(input[ii+2])
				ii += 3

				left10 := lh<<4 | ll
				right10 := rh<<8 | rl

				binary.LittleEndian.PutUint16(left[oi:oi+2], expand10to16(left10))
				binary.LittleEndian.PutUint16(right[oi:oi+2], expand10to16(right10))
				oi += 2
			}
		}
	})

	register(pixfmt.INRI, []pixfmt.Format{pixfmt.Z16, pixfmt.Y8}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
		if mode.FourCC != pixfmt.INRI || len(mode.Streams) != 2 || mode.Streams[0].Format != pixfmt.Z16 || mode.Streams[1].Format != pixfmt.Y8 {
			errs.ContractViolationf("codec: inri codec invoked on wrong mode %+v", mode)
		}
		splitINRI(outputs, input, mode, func(y8 byte, out []byte, oi int) int {
			out[oi] = y8
			return oi + 1
		})
	})

	register(pixfmt.INRI, []pixfmt.Format{pixfmt.Z16, pixfmt.Y16}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
		if mode.FourCC != pixfmt.INRI || len(mode.Streams) != 2 || mode.Streams[0].Format != pixfmt.Z16 || mode.Streams[1].Format != pixfmt.Y16 {
			errs.ContractViolationf("codec: inri codec invoked on wrong mode %+v", mode)
		}
		splitINRI(outputs, input, mode, func(y8 byte, out []byte, oi int) int {
			binary.LittleEndian.PutUint16(out[oi:oi+2], expand8to16(y8))
			return oi + 2
		})
	})
}

// splitINRI decodes the shared {z16, y8} macropixel body of the INRI FourCC,
// deferring only how the IR byte is written to the second plane (Y8
// passthrough or Y8->Y16 expansion) to writeIR.
func splitINRI(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode, writeIR func(y8 byte, out []byte, oi int) int) {
	s := mode.Streams[0]
	depth, ir := outputs[0], outputs[1]
	di, ii := 0, 0
	for y := 0; y < s.Height; y++ {
		rowStart := y * mode.Width * 3
		src := rowStart
		for x := 0; x < s.Width; x++ {
			z16 := binary.LittleEndian.Uint16(input[src : src+2])
			y8 := input[src+2]
			src += 3

			binary.LittleEndian.PutUint16(depth[di:di+2], z16)
			di += 2
			ii = writeIR(y8, ir, ii)
		}
	}
}

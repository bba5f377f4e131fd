package codec

import (
	"github.com/hitzhang/librealsense/errs"
	"github.com/hitzhang/librealsense/pixfmt"
)

func clampByte(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}

// yuvToRGB converts one BT.601 fixed-point YUV sample (already offset by
// -16/-128) to R, G, B bytes.
func yuvToRGB(y, u, v int) (r, g, b byte) {
	r = clampByte((128 + 298*y + 409*v) >> 8)
	g = clampByte((128 + 298*y - 100*u - 208*v) >> 8)
	b = clampByte((128 + 298*y + 516*u) >> 8)
	return
}

// writeYUY2Pixel writes one pixel in the given channel order into out at
// off, appending an opaque alpha byte of 255 when alpha is true.
func writeYUY2Pixel(out []byte, off int, r, g, b byte, order string, alpha bool) {
	switch order {
	case "rgb":
		out[off], out[off+1], out[off+2] = r, g, b
	case "bgr":
		out[off], out[off+1], out[off+2] = b, g, r
	}
	if alpha {
		out[off+3] = 255
	}
}

func decodeYUY2(order string, alpha bool, bpp int) codecFunc {
	return func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
		s := mode.Streams[0]
		out := outputs[0]
		oi := 0
		for y := 0; y < s.Height; y++ {
			rowStart := y * mode.Width * 2 // 2 bytes per pixel, 4 bytes per macropixel of 2 pixels
			ii := rowStart
			for x := 0; x < s.Width; x += 2 {
				y0 := int(input[ii]) - 16
				u := int(input[ii+1]) - 128
				y1 := int(input[ii+2]) - 16
				v := int(input[ii+3]) - 128
				ii += 4

				r0, g0, b0 := yuvToRGB(y0, u, v)
				writeYUY2Pixel(out, oi, r0, g0, b0, order, alpha)
				oi += bpp

				r1, g1, b1 := yuvToRGB(y1, u, v)
				writeYUY2Pixel(out, oi, r1, g1, b1, order, alpha)
				oi += bpp
			}
		}
	}
}

func init() {
	variants := []struct {
		format pixfmt.Format
		order  string
		alpha  bool
		bpp    int
	}{
		{pixfmt.RGB8, "rgb", false, 3},
		{pixfmt.BGR8, "bgr", false, 3},
		{pixfmt.RGBA8, "rgb", true, 4},
		{pixfmt.BGRA8, "bgr", true, 4},
	}
	for _, v := range variants {
		v := v
		fn := decodeYUY2(v.order, v.alpha, v.bpp)
		register(pixfmt.YUY2, []pixfmt.Format{v.format}, func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode) {
			if mode.FourCC != pixfmt.YUY2 || len(mode.Streams) != 1 || mode.Streams[0].Format != v.format {
				errs.ContractViolationf("codec: yuy2 codec invoked on wrong mode %+v", mode)
			}
			if mode.Streams[0].Width%2 != 0 {
				errs.ContractViolationf("codec: yuy2 output stream width must be even, got %d", mode.Streams[0].Width)
			}
			fn(outputs, input, mode)
		})
	}
}

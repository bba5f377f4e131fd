package transform

import (
	"math"

	"github.com/hitzhang/librealsense/errs"
	"github.com/hitzhang/librealsense/pixfmt"
)

// alignPixels is the shared geometric kernel behind AlignDepthToOther,
// AlignOtherToDepth, and BuildRectificationTable (spec §9's "callback
// parameterised alignment loop"). It iterates the depth image in raster
// order, deprojects each non-zero-depth pixel into 3D, transforms it into
// the other camera's frame, projects it back to a pixel, and invokes
// transfer with the (depthIndex, otherIndex) pair for every projection
// that lands inside the other image.
//
// getDepth supplies the metric depth for a given depth pixel index (or 0 to
// skip it); transfer performs the actual write. Ordering is raster
// top-to-bottom, left-to-right over the depth image, which is what makes
// last-writer-wins collisions in AlignDepthToOther deterministic.
func alignPixels(
	depthIntrin Intrinsics,
	depthToOther Extrinsics,
	otherIntrin Intrinsics,
	getDepth func(depthIndex int) float64,
	transfer func(depthIndex, otherIndex int),
) {
	depthIndex := 0
	for y := 0; y < depthIntrin.Height; y++ {
		for x := 0; x < depthIntrin.Width; x++ {
			z := getDepth(depthIndex)
			if z != 0 {
				depthPoint := depthIntrin.Deproject(float64(x), float64(y), z)
				otherPoint := depthToOther.Transform(depthPoint)
				u, v := otherIntrin.Project(otherPoint)

				ox := int(math.Round(u))
				oy := int(math.Round(v))
				if ox >= 0 && oy >= 0 && ox < otherIntrin.Width && oy < otherIntrin.Height {
					transfer(depthIndex, oy*otherIntrin.Width+ox)
				}
			}
			depthIndex++
		}
	}
}

// checkAlignable rejects the YUYV format as either source or destination of
// alignment: its two-pixel macropixel structure makes per-pixel transfer
// incorrect for the U/V channels (spec §4.3, §9).
func checkAlignable(format pixfmt.Format) error {
	if format == pixfmt.YUYV {
		return errs.Unsupportedf("transform: YUYV cannot be aligned pixel-by-pixel (U/V channels span two pixels)")
	}
	return nil
}

// AlignDepthToOther warps a raw 16-bit depth image into the other camera's
// pixel grid. out must be zeroed by the caller and sized
// otherIntrin.Width*otherIntrin.Height; unwritten pixels remain the
// documented "no depth / out of view" sentinel of zero. Where multiple
// depth pixels project to the same output index, the last writer in raster
// scan order wins (spec §4.3's deliberate, deterministic collision policy).
func AlignDepthToOther(
	depthIntrin Intrinsics,
	depthToOther Extrinsics,
	otherIntrin Intrinsics,
	rawDepth []uint16,
	depthScale float64,
	out []uint16,
) error {
	if err := depthIntrin.CheckValid(); err != nil {
		return err
	}
	if err := otherIntrin.CheckValid(); err != nil {
		return err
	}
	wantIn := depthIntrin.Width * depthIntrin.Height
	if len(rawDepth) != wantIn {
		return errs.BadGeometryf("transform: raw depth has %d pixels, expected %d", len(rawDepth), wantIn)
	}
	wantOut := otherIntrin.Width * otherIntrin.Height
	if len(out) != wantOut {
		return errs.BadGeometryf("transform: output has %d pixels, expected %d", len(out), wantOut)
	}

	alignPixels(
		depthIntrin, depthToOther, otherIntrin,
		func(i int) float64 { return float64(rawDepth[i]) * depthScale },
		func(depthIndex, otherIndex int) { out[otherIndex] = rawDepth[depthIndex] },
	)
	return nil
}

// AlignOtherToDepthBytes warps an arbitrary-depth-N pixel buffer from the
// other camera's grid into the depth camera's grid. Each output pixel is
// written at most once (no collisions in this direction; spec §4.3).
// bytesPerPixel must be 1, 2, 3, or 4.
func AlignOtherToDepthBytes(
	depthIntrin Intrinsics,
	depthToOther Extrinsics,
	otherIntrin Intrinsics,
	rawDepth []uint16,
	depthScale float64,
	otherPixels []byte,
	bytesPerPixel int,
	out []byte,
) error {
	if bytesPerPixel < 1 || bytesPerPixel > 4 {
		return errs.BadGeometryf("transform: bytesPerPixel must be in [1,4], got %d", bytesPerPixel)
	}
	if err := depthIntrin.CheckValid(); err != nil {
		return err
	}
	if err := otherIntrin.CheckValid(); err != nil {
		return err
	}
	wantDepth := depthIntrin.Width * depthIntrin.Height
	if len(rawDepth) != wantDepth {
		return errs.BadGeometryf("transform: raw depth has %d pixels, expected %d", len(rawDepth), wantDepth)
	}
	wantOther := otherIntrin.Width * otherIntrin.Height * bytesPerPixel
	if len(otherPixels) != wantOther {
		return errs.BadGeometryf("transform: other buffer is %d bytes, expected %d", len(otherPixels), wantOther)
	}
	wantOut := wantDepth * bytesPerPixel
	if len(out) != wantOut {
		return errs.BadGeometryf("transform: output buffer is %d bytes, expected %d", len(out), wantOut)
	}

	alignPixels(
		depthIntrin, depthToOther, otherIntrin,
		func(i int) float64 { return float64(rawDepth[i]) * depthScale },
		func(depthIndex, otherIndex int) {
			copy(out[depthIndex*bytesPerPixel:(depthIndex+1)*bytesPerPixel], otherPixels[otherIndex*bytesPerPixel:(otherIndex+1)*bytesPerPixel])
		},
	)
	return nil
}

// AlignOtherToDepth is AlignOtherToDepthBytes parameterised by a
// pixfmt.Format instead of a raw byte width, rejecting YUYV per spec §4.3/§9.
func AlignOtherToDepth(
	depthIntrin Intrinsics,
	depthToOther Extrinsics,
	otherIntrin Intrinsics,
	rawDepth []uint16,
	depthScale float64,
	otherPixels []byte,
	format pixfmt.Format,
	out []byte,
) error {
	if err := checkAlignable(format); err != nil {
		return err
	}
	bpp, err := format.BytesPerPixel()
	if err != nil {
		return err
	}
	return AlignOtherToDepthBytes(depthIntrin, depthToOther, otherIntrin, rawDepth, depthScale, otherPixels, bpp, out)
}

package transform

import (
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"

	"github.com/hitzhang/librealsense/pixfmt"
)

func TestAlignDepthToOtherNoOp(t *testing.T) {
	intrin := Intrinsics{Width: 4, Height: 4, Ppx: 1.5, Ppy: 1.5, Fx: 500, Fy: 500}
	extrin := Identity()

	rawDepth := make([]uint16, 16)
	for i := range rawDepth {
		rawDepth[i] = 1000
	}
	out := make([]uint16, 16)

	err := AlignDepthToOther(intrin, extrin, intrin, rawDepth, 0.001, out)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldResemble, rawDepth)
}

func TestAlignDepthToOtherOutOfView(t *testing.T) {
	intrin := Intrinsics{Width: 4, Height: 4, Ppx: 1.5, Ppy: 1.5, Fx: 500, Fy: 500}
	extrin := NewExtrinsics([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, r3.Vector{X: 10, Y: 0, Z: 0})

	rawDepth := make([]uint16, 16)
	for i := range rawDepth {
		rawDepth[i] = 1000
	}
	out := make([]uint16, 16)

	err := AlignDepthToOther(intrin, extrin, intrin, rawDepth, 0.001, out)
	test.That(t, err, test.ShouldBeNil)
	for _, v := range out {
		test.That(t, v, test.ShouldEqual, uint16(0))
	}
}

func TestAlignDepthToOtherRejectsSizeMismatch(t *testing.T) {
	intrin := Intrinsics{Width: 2, Height: 2, Fx: 500, Fy: 500}
	err := AlignDepthToOther(intrin, Identity(), intrin, make([]uint16, 3), 0.001, make([]uint16, 4))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestAlignOtherToDepthRejectsYUYV(t *testing.T) {
	intrin := Intrinsics{Width: 2, Height: 2, Fx: 500, Fy: 500}
	err := AlignOtherToDepth(intrin, Identity(), intrin, make([]uint16, 4), 0.001, make([]byte, 8), pixfmt.YUYV, make([]byte, 8))
	test.That(t, err, test.ShouldNotBeNil)
}

func TestAlignOtherToDepthBytesCopiesInView(t *testing.T) {
	intrin := Intrinsics{Width: 2, Height: 2, Ppx: 0.5, Ppy: 0.5, Fx: 500, Fy: 500}
	rawDepth := []uint16{1000, 1000, 1000, 1000}
	other := []byte{10, 20, 30, 40}
	out := make([]byte, 4)

	err := AlignOtherToDepthBytes(intrin, Identity(), intrin, rawDepth, 0.001, other, 1, out)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, out, test.ShouldResemble, other)
}

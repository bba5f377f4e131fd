package transform

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
)

var testCoeffs = [5]float64{0.1, 0.02, 0.001, -0.002, 0.003}

func TestModifiedBrownConradyForwardDiffersFromNone(t *testing.T) {
	x, y := 0.2, -0.15
	xd, yd := newDistorter(ModifiedBrownConrady, testCoeffs).Forward(x, y)
	xn, yn := newDistorter(None, testCoeffs).Forward(x, y)
	test.That(t, math.Abs(xd-xn), test.ShouldBeGreaterThan, 1e-6)
	test.That(t, math.Abs(yd-yn), test.ShouldBeGreaterThan, 1e-6)
}

func TestInverseBrownConradyInverseDiffersFromNone(t *testing.T) {
	xd, yd := 0.2, -0.15
	xu, yu := newDistorter(InverseBrownConrady, testCoeffs).Inverse(xd, yd)
	xn, yn := newDistorter(None, testCoeffs).Inverse(xd, yd)
	test.That(t, math.Abs(xu-xn), test.ShouldBeGreaterThan, 1e-6)
	test.That(t, math.Abs(yu-yn), test.ShouldBeGreaterThan, 1e-6)
}

// The Newton-Raphson iteration in inverseBrownConrady.Inverse should undo
// the forward Brown-Conrady distortion computed by modifiedBrownConrady.Forward
// for the same coefficients, within the iteration's own tolerance.
func TestInverseBrownConradyUndoesForwardDistortion(t *testing.T) {
	x, y := 0.3, 0.1
	xd, yd := modifiedBrownConrady{testCoeffs}.Forward(x, y)
	xu, yu := inverseBrownConrady{testCoeffs}.Inverse(xd, yd)
	test.That(t, xu, test.ShouldAlmostEqual, x, 1e-6)
	test.That(t, yu, test.ShouldAlmostEqual, y, 1e-6)
}

func TestModifiedBrownConradyInverseIsIdentity(t *testing.T) {
	xd, yd := modifiedBrownConrady{testCoeffs}.Inverse(0.4, -0.2)
	test.That(t, xd, test.ShouldAlmostEqual, 0.4, 1e-12)
	test.That(t, yd, test.ShouldAlmostEqual, -0.2, 1e-12)
}

func TestInverseBrownConradyForwardIsIdentity(t *testing.T) {
	x, y := inverseBrownConrady{testCoeffs}.Forward(0.4, -0.2)
	test.That(t, x, test.ShouldAlmostEqual, 0.4, 1e-12)
	test.That(t, y, test.ShouldAlmostEqual, -0.2, 1e-12)
}

func TestIntrinsicsProjectAppliesModifiedBrownConrady(t *testing.T) {
	distorted := Intrinsics{Width: 640, Height: 480, Ppx: 320, Ppy: 240, Fx: 500, Fy: 500, Distortion: ModifiedBrownConrady, Coeffs: testCoeffs}
	plain := Intrinsics{Width: 640, Height: 480, Ppx: 320, Ppy: 240, Fx: 500, Fy: 500}

	p := r3.Vector{X: 0.15, Y: -0.1, Z: 2.0}
	ud, vd := distorted.Project(p)
	up, vp := plain.Project(p)
	test.That(t, math.Abs(ud-up), test.ShouldBeGreaterThan, 1e-6)
	test.That(t, math.Abs(vd-vp), test.ShouldBeGreaterThan, 1e-6)
}

func TestIntrinsicsDeprojectAppliesInverseBrownConrady(t *testing.T) {
	distorted := Intrinsics{Width: 640, Height: 480, Ppx: 320, Ppy: 240, Fx: 500, Fy: 500, Distortion: InverseBrownConrady, Coeffs: testCoeffs}
	plain := Intrinsics{Width: 640, Height: 480, Ppx: 320, Ppy: 240, Fx: 500, Fy: 500}

	pd := distorted.Deproject(400, 300, 2.0)
	pp := plain.Deproject(400, 300, 2.0)
	test.That(t, math.Abs(pd.X-pp.X), test.ShouldBeGreaterThan, 1e-6)
	test.That(t, math.Abs(pd.Y-pp.Y), test.ShouldBeGreaterThan, 1e-6)
}

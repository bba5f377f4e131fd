// Package transform implements the pinhole camera math, geometric
// depth/color alignment, and rectification-table machinery of the image
// pipeline core.
package transform

import (
	"github.com/golang/geo/r3"
	"gonum.org/v1/gonum/mat"

	"github.com/hitzhang/librealsense/errs"
)

// Intrinsics holds the per-camera pinhole parameters used to project a 3D
// point to a pixel and to deproject a pixel-plus-depth back to 3D.
type Intrinsics struct {
	Width, Height int
	Ppx, Ppy      float64
	Fx, Fy        float64
	Distortion    DistortionModel
	Coeffs        [5]float64
}

// CheckValid reports whether the intrinsics have positive focal lengths and
// positive dimensions. It does not (and cannot) detect NaN inputs or
// otherwise-invalid calibration; per spec §7 numeric validity is the
// caller's responsibility.
func (in Intrinsics) CheckValid() error {
	if in.Width <= 0 || in.Height <= 0 {
		return errs.BadGeometryf("transform: invalid intrinsics size (%d, %d)", in.Width, in.Height)
	}
	if in.Fx <= 0 || in.Fy <= 0 {
		return errs.BadGeometryf("transform: invalid focal length (%v, %v)", in.Fx, in.Fy)
	}
	return nil
}

// Distorter returns the distortion implementation for this intrinsics'
// model tag and coefficients.
func (in Intrinsics) Distorter() Distorter {
	return newDistorter(in.Distortion, in.Coeffs)
}

// Project maps a 3D point in this camera's frame to a pixel coordinate.
// z == 0 returns (-1, -1) so that bounds-checking callers discard it, per
// the teacher's PointToPixel convention.
func (in Intrinsics) Project(p r3.Vector) (u, v float64) {
	if p.Z == 0 {
		return -1, -1
	}
	x := p.X / p.Z
	y := p.Y / p.Z
	x, y = in.Distorter().Forward(x, y)
	u = x*in.Fx + in.Ppx
	v = y*in.Fy + in.Ppy
	return u, v
}

// Deproject maps a pixel (px, py) with metric depth z to a 3D point in this
// camera's frame.
func (in Intrinsics) Deproject(px, py, z float64) r3.Vector {
	x := (px - in.Ppx) / in.Fx
	y := (py - in.Ppy) / in.Fy
	x, y = in.Distorter().Inverse(x, y)
	return r3.Vector{X: x * z, Y: y * z, Z: z}
}

// Extrinsics is the rigid transform from a source camera frame to a target
// camera frame: p_target = R*p_source + T.
type Extrinsics struct {
	Rotation    *mat.Dense // 3x3, column-major semantics per spec §3
	Translation r3.Vector
}

// NewExtrinsics builds an Extrinsics from a 3x3 rotation given in
// column-major order (as spec §3 specifies the wire layout) and a
// translation vector.
func NewExtrinsics(rotationColumnMajor [9]float64, translation r3.Vector) Extrinsics {
	// column-major [r0 r3 r6; r1 r4 r7; r2 r5 r8] laid out as rows for mat.Dense.
	rows := []float64{
		rotationColumnMajor[0], rotationColumnMajor[3], rotationColumnMajor[6],
		rotationColumnMajor[1], rotationColumnMajor[4], rotationColumnMajor[7],
		rotationColumnMajor[2], rotationColumnMajor[5], rotationColumnMajor[8],
	}
	return Extrinsics{
		Rotation:    mat.NewDense(3, 3, rows),
		Translation: translation,
	}
}

// Identity returns the identity rigid transform (no rotation, no translation).
func Identity() Extrinsics {
	return NewExtrinsics([9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}, r3.Vector{})
}

// Transform applies the rigid transform to a point: R*p + T.
func (e Extrinsics) Transform(p r3.Vector) r3.Vector {
	if e.Rotation == nil {
		return p.Add(e.Translation)
	}
	src := mat.NewVecDense(3, []float64{p.X, p.Y, p.Z})
	var dst mat.VecDense
	dst.MulVec(e.Rotation, src)
	return r3.Vector{X: dst.AtVec(0), Y: dst.AtVec(1), Z: dst.AtVec(2)}.Add(e.Translation)
}

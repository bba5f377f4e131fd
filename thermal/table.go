// Package thermal implements the fixed binary thermal calibration table
// used to correct a depth camera's depth scale as a function of the
// device's internal temperature.
package thermal

import (
	"encoding/binary"
	"math"

	"github.com/hitzhang/librealsense/errs"
)

// Resolution is the fixed number of temperature bins the table carries.
const Resolution = 29

// TableID is the identifying tag a thermal table blob is expected to carry
// alongside its raw bytes; this package does not itself validate it since
// the wire layout (spec §3) carries no self-describing tag field, but
// callers that read it from a device's table-of-tables record it against
// this constant before calling Parse.
const TableID = 0x317

const (
	headerFieldCount   = 4
	tempDataFieldCount = 4
	headerBytes        = headerFieldCount * 4
	tempDataBytes      = tempDataFieldCount * 4
	tableBytes         = headerBytes + Resolution*tempDataBytes
)

// Header is the four fixed float32 fields preceding the per-bin records.
type Header struct {
	MinTemp       float32
	MaxTemp       float32
	ReferenceTemp float32
	Valid         float32
}

// TempData is one temperature bin's scale-correction record.
type TempData struct {
	Scale float32
	Sheer float32
	Tx    float32
	Ty    float32
}

// Table is a parsed thermal calibration table: a Header plus exactly
// Resolution TempData bins, laid out contiguously in the same order as the
// wire format.
type Table struct {
	Header
	Vals [Resolution]TempData
}

// Parse decodes a thermal calibration table from its fixed little-endian
// byte layout (spec §3/§4.5): a Header of four float32 fields immediately
// followed by Resolution TempData records of four float32 fields each. Any
// other length is rejected as a malformed table.
func Parse(data []byte) (*Table, error) {
	if len(data) != tableBytes {
		return nil, errs.BadGeometryf("thermal: table is %d bytes, expected %d", len(data), tableBytes)
	}

	t := &Table{}
	off := 0
	t.MinTemp = readFloat32(data, &off)
	t.MaxTemp = readFloat32(data, &off)
	t.ReferenceTemp = readFloat32(data, &off)
	t.Valid = readFloat32(data, &off)

	for i := 0; i < Resolution; i++ {
		t.Vals[i] = TempData{
			Scale: readFloat32(data, &off),
			Sheer: readFloat32(data, &off),
			Tx:    readFloat32(data, &off),
			Ty:    readFloat32(data, &off),
		}
	}
	return t, nil
}

// Serialize encodes the table back into its fixed little-endian layout;
// Parse(t.Serialize()) reproduces t exactly.
func (t *Table) Serialize() []byte {
	out := make([]byte, tableBytes)
	off := 0
	writeFloat32(out, &off, t.MinTemp)
	writeFloat32(out, &off, t.MaxTemp)
	writeFloat32(out, &off, t.ReferenceTemp)
	writeFloat32(out, &off, t.Valid)
	for _, v := range t.Vals {
		writeFloat32(out, &off, v.Scale)
		writeFloat32(out, &off, v.Sheer)
		writeFloat32(out, &off, v.Tx)
		writeFloat32(out, &off, v.Ty)
	}
	return out
}

// Equal reports bitwise field equality between two tables.
func (t *Table) Equal(other *Table) bool {
	same := func(a, b float32) bool { return math.Float32bits(a) == math.Float32bits(b) }
	if !same(t.MinTemp, other.MinTemp) || !same(t.MaxTemp, other.MaxTemp) ||
		!same(t.ReferenceTemp, other.ReferenceTemp) || !same(t.Valid, other.Valid) {
		return false
	}
	for i := range t.Vals {
		a, b := t.Vals[i], other.Vals[i]
		if !same(a.Scale, b.Scale) || !same(a.Sheer, b.Sheer) || !same(a.Tx, b.Tx) || !same(a.Ty, b.Ty) {
			return false
		}
	}
	return true
}

// ScaleAt returns the depth-scale correction factor for temperature tempC,
// per spec §4.5: the table's [MinTemp, MaxTemp] range is divided into
// Resolution equal bins, each bin's correction applies at its center; below
// the first bin's center or above the last bin's center the nearest bin's
// scale is held constant, and in between values are linearly interpolated
// between the two neighboring bin centers.
func (t *Table) ScaleAt(tempC float64) float64 {
	binWidth := (float64(t.MaxTemp) - float64(t.MinTemp)) / Resolution
	center := func(k int) float64 {
		return float64(t.MinTemp) + (float64(k)+0.5)*binWidth
	}

	if tempC <= center(0) {
		return float64(t.Vals[0].Scale)
	}
	if tempC >= center(Resolution-1) {
		return float64(t.Vals[Resolution-1].Scale)
	}

	k := int(math.Floor((tempC-float64(t.MinTemp))/binWidth - 0.5))
	if k < 0 {
		k = 0
	}
	if k > Resolution-2 {
		k = Resolution - 2
	}

	c0, c1 := center(k), center(k+1)
	frac := (tempC - c0) / (c1 - c0)
	s0, s1 := float64(t.Vals[k].Scale), float64(t.Vals[k+1].Scale)
	return s0 + frac*(s1-s0)
}

func readFloat32(data []byte, off *int) float32 {
	bits := binary.LittleEndian.Uint32(data[*off:])
	*off += 4
	return math.Float32frombits(bits)
}

func writeFloat32(out []byte, off *int, v float32) {
	binary.LittleEndian.PutUint32(out[*off:], math.Float32bits(v))
	*off += 4
}

// Package codec decodes raw sensor frames delivered in the FourCCs defined
// by package pixfmt into one or two caller-owned output planes.
//
// Every codec function has the signature (outputs [][]byte, input []byte,
// mode pixfmt.SubdeviceMode) and returns nothing; Decode performs the
// validation that can fail and returns its error. No codec allocates; output planes must
// already be sized per pixfmt.SizeOfFormat for their declared stream, and
// the input slice must be sized per pixfmt.SizeOfFourCC for mode's input
// geometry. Mismatches between mode and the codec actually registered for
// it are a ContractViolation (programmer error), not a recoverable error.
package codec

import (
	"github.com/hitzhang/librealsense/errs"
	"github.com/hitzhang/librealsense/pixfmt"
)

// codecFunc is one hand-written inner loop for a specific (FourCC, output
// format tuple). It may assume mode has already passed CheckValid and that
// outputs are sized correctly; it still asserts its own preconditions
// (fourcc and stream formats match) because Decode is the only supported
// entry point and a caller could otherwise invoke the wrong codecFunc
// directly by mistake within this package.
type codecFunc func(outputs [][]byte, input []byte, mode pixfmt.SubdeviceMode)

// formatKey identifies a codec by its input FourCC and the tuple of output
// stream formats it produces, in order.
type formatKey struct {
	fourcc  pixfmt.FourCC
	formats [2]pixfmt.Format // second entry left at its zero value for single-plane codecs
	planes  int
}

var dispatch = map[formatKey]codecFunc{}

func register(fourcc pixfmt.FourCC, formats []pixfmt.Format, fn codecFunc) {
	key := formatKey{fourcc: fourcc, planes: len(formats)}
	for i, f := range formats {
		key.formats[i] = f
	}
	if _, exists := dispatch[key]; exists {
		panic(errs.Unsupportedf("codec: duplicate registration for %v -> %v", fourcc, formats))
	}
	dispatch[key] = fn
}

func lookup(fourcc pixfmt.FourCC, mode pixfmt.SubdeviceMode) (codecFunc, error) {
	key := formatKey{fourcc: fourcc, planes: len(mode.Streams)}
	for i, s := range mode.Streams {
		key.formats[i] = s.Format
	}
	fn, ok := dispatch[key]
	if !ok {
		formats := make([]pixfmt.Format, len(mode.Streams))
		for i, s := range mode.Streams {
			formats[i] = s.Format
		}
		return nil, errs.Unsupportedf("codec: no decoder registered for %v -> %v", fourcc, formats)
	}
	return fn, nil
}

// Decode dispatches to the registered codec for mode.FourCC and the output
// formats named by mode.Streams, validates output plane sizes, and runs it.
// It returns UnsupportedFormat if no codec is registered for the
// (fourcc, formats...) tuple, and BadGeometry if mode itself is invalid or
// an output plane is the wrong size.
func Decode(mode pixfmt.SubdeviceMode, input []byte, outputs [][]byte) error {
	if err := mode.CheckValid(); err != nil {
		return err
	}
	wantIn, err := pixfmt.SizeOfFourCC(mode.Width, mode.Height, mode.FourCC)
	if err != nil {
		return err
	}
	if len(input) != wantIn {
		return errs.BadGeometryf("codec: input is %d bytes, expected %d for %v %dx%d", len(input), wantIn, mode.FourCC, mode.Width, mode.Height)
	}
	if len(outputs) != len(mode.Streams) {
		return errs.BadGeometryf("codec: got %d output planes, mode declares %d streams", len(outputs), len(mode.Streams))
	}
	for i, s := range mode.Streams {
		want, err := pixfmt.SizeOfFormat(s.Width, s.Height, s.Format)
		if err != nil {
			return err
		}
		if len(outputs[i]) != want {
			return errs.BadGeometryf("codec: output plane %d is %d bytes, expected %d for %v %dx%d", i, len(outputs[i]), want, s.Format, s.Width, s.Height)
		}
	}

	fn, err := lookup(mode.FourCC, mode)
	if err != nil {
		return err
	}
	fn(outputs, input, mode)
	return nil
}

// Supported reports which output pixel formats decoders are registered to
// produce from fourcc, exposed as metadata for a collaborator negotiating
// a streaming mode (e.g. UVC format negotiation, out of scope for this
// core).
func Supported(fourcc pixfmt.FourCC) []pixfmt.Format {
	seen := map[pixfmt.Format]bool{}
	var out []pixfmt.Format
	for key := range dispatch {
		if key.fourcc != fourcc {
			continue
		}
		for i := 0; i < key.planes; i++ {
			if !seen[key.formats[i]] {
				seen[key.formats[i]] = true
				out = append(out, key.formats[i])
			}
		}
	}
	return out
}

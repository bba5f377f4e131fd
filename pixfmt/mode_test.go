package pixfmt

import (
	"testing"

	"go.viam.com/test"
)

func TestSubdeviceModeCheckValid(t *testing.T) {
	valid := SubdeviceMode{
		Width: 640, Height: 480, FourCC: YUY2,
		Streams: []Stream{{Width: 640, Height: 480, Format: RGB8}},
	}
	test.That(t, valid.CheckValid(), test.ShouldBeNil)

	subrect := SubdeviceMode{
		Width: 640, Height: 480, FourCC: FourCCZ16,
		Streams: []Stream{{Width: 320, Height: 240, Format: Z16}},
	}
	test.That(t, subrect.CheckValid(), test.ShouldBeNil)
}

func TestSubdeviceModeRejectsOversizedStream(t *testing.T) {
	m := SubdeviceMode{
		Width: 320, Height: 240, FourCC: FourCCZ16,
		Streams: []Stream{{Width: 640, Height: 480, Format: Z16}},
	}
	test.That(t, m.CheckValid(), test.ShouldNotBeNil)
}

func TestSubdeviceModeRejectsBadInputWidth(t *testing.T) {
	m := SubdeviceMode{
		Width: 641, Height: 480, FourCC: YUY2,
		Streams: []Stream{{Width: 640, Height: 480, Format: RGB8}},
	}
	test.That(t, m.CheckValid(), test.ShouldNotBeNil)
}

func TestSubdeviceModeRejectsWrongPlaneCount(t *testing.T) {
	m := SubdeviceMode{
		Width: 640, Height: 480, FourCC: Y12I,
		Streams: []Stream{{Width: 640, Height: 480, Format: Y16}},
	}
	test.That(t, m.CheckValid(), test.ShouldNotBeNil)
}

func TestSubdeviceModeDualStream(t *testing.T) {
	m := SubdeviceMode{
		Width: 640, Height: 480, FourCC: INRI,
		Streams: []Stream{
			{Width: 640, Height: 480, Format: Z16},
			{Width: 640, Height: 480, Format: Y8},
		},
	}
	test.That(t, m.CheckValid(), test.ShouldBeNil)
}

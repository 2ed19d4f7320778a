package color

import (
	"image/color"
	"testing"
)

func near(a, b color.NRGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 1 && d(a.G, b.G) <= 1 && d(a.B, b.B) <= 1 && d(a.A, b.A) <= 1
}

func TestRoundTrip(t *testing.T) {
	for _, c := range []color.NRGBA{
		{0, 0, 0, 0xFF},
		{0xFF, 0xFF, 0xFF, 0xFF},
		{0x2E, 0x8B, 0x57, 0xFF},
		{0xD9, 0x8E, 0x04, 0x80},
	} {
		if got := FromNRGBA(c).NRGBA(); !near(got, c) {
			t.Errorf("%v: got %v after round trip", c, got)
		}
	}
}

func TestMix(t *testing.T) {
	black := color.NRGBA{0, 0, 0, 0xFF}
	white := color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}
	if got := Mix(black, white, 0); got != black {
		t.Errorf("t=0: got %v", got)
	}
	if got := Mix(black, white, 1.5); got != white {
		t.Errorf("t=1.5: got %v", got)
	}

	mid := Mix(black, white, 0.5)
	if mid.R != mid.G || mid.G != mid.B {
		t.Errorf("mixing grays produced a hue: %v", mid)
	}
	// L=0.5 is linear 0.125, which is about 0x63 in sRGB.
	if mid.R < 0x61 || mid.R > 0x65 {
		t.Errorf("got %v, want a gray of about 0x63", mid)
	}

	prev := black
	for i := 1; i <= 10; i++ {
		c := Mix(black, white, float32(i)/10)
		if c.R < prev.R {
			t.Errorf("step %d: %v is darker than %v", i, c, prev)
		}
		prev = c
	}
}

package core

import "testing"

func TestHex(t *testing.T) {
	c, err := Hex("#64c896")
	if err != nil {
		t.Fatalf("Hex() failed: %v", err)
	}
	if c != RGB(100, 200, 150) {
		t.Errorf("Hex(#64c896) = %+v", c)
	}
	if c.String() != "#64c896" {
		t.Errorf("String() = %q", c.String())
	}

	if _, err := Hex("green"); err == nil {
		t.Error("Hex should reject non-hex input")
	}
	if NoColor.String() != "" {
		t.Errorf("NoColor.String() = %q, expected empty", NoColor.String())
	}
}

func TestBlend(t *testing.T) {
	black := RGB(0, 0, 0)
	white := RGB(255, 255, 255)

	if got := black.Blend(white, 0); !near(got, black) {
		t.Errorf("Blend(t=0) = %s, expected %s", got, black)
	}
	if got := black.Blend(white, 1); !near(got, white) {
		t.Errorf("Blend(t=1) = %s, expected %s", got, white)
	}
	if got := black.Blend(white, 7); !near(got, white) {
		t.Errorf("Blend(t=7) = %s, expected t clamped to 1", got)
	}

	mid := black.Blend(white, 0.5)
	if mid.R < 64 || mid.R > 192 || !near(mid, RGB(mid.R, mid.R, mid.R)) {
		t.Errorf("Blend(t=0.5) = %s, expected a mid gray", mid)
	}

	if got := NoColor.Blend(white, 0.5); got != white {
		t.Errorf("blending from NoColor = %s, expected %s", got, white)
	}
	if got := white.Blend(NoColor, 0.5); got != white {
		t.Errorf("blending to NoColor = %s, expected %s", got, white)
	}
}

// near reports whether two colors differ by at most one step per channel.
func near(a, b Color) bool {
	d := func(x, y uint8) bool { return x-y <= 1 || y-x <= 1 }
	return a.Valid == b.Valid && d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B)
}

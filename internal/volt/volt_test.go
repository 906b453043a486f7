package volt

import "testing"

func TestVoltsZero(t *testing.T) {
	if v := Default.Volts(0); v != 0 {
		t.Fatalf("Volts(0) = %f, want 0", v)
	}
}

func TestVoltsFormula(t *testing.T) {
	for r := 0; r < 1024; r++ {
		want := float32(r) * (5.0 / 1024) * ((7510.0 + 30000.0) / 30000.0)
		if got := Default.Volts(uint16(r)); got != want {
			t.Fatalf("Volts(%d) = %f, want %f", r, got, want)
		}
	}
}

func TestVoltsMonotonic(t *testing.T) {
	prev := Default.Volts(0)
	for r := 1; r < 1024; r++ {
		v := Default.Volts(uint16(r))
		if v <= prev {
			t.Fatalf("Volts(%d) = %f not above Volts(%d) = %f", r, v, r-1, prev)
		}
		prev = v
	}
}

func TestVoltsFullScale(t *testing.T) {
	// 1023 counts is just under the reference, scaled by the divider ratio
	got := Default.Volts(1023)
	if got < 6.24 || got > 6.26 {
		t.Fatalf("Volts(1023) = %f, want ~6.25", got)
	}

	d := Divider{Reference: 3.3, Resolution: 4096, R1: 10000, R2: 10000}
	if got := d.Volts(2048); got < 3.29 || got > 3.31 {
		t.Fatalf("half-scale on a 1:1 divider = %f, want ~3.3", got)
	}
}

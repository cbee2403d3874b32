package render

import (
	"math"
	"testing"
)

func TestNiceTicksStayInRange(t *testing.T) {
	cases := []struct{ min, max float64 }{
		{0, 10},
		{0, 1},
		{-5, 5},
		{0.3, 0.7},
		{0, 1234},
	}
	for _, c := range cases {
		ticks := niceTicks(c.min, c.max, 5)
		if len(ticks) < 2 {
			t.Fatalf("niceTicks(%v, %v): only %d ticks", c.min, c.max, len(ticks))
		}
		prev := math.Inf(-1)
		for _, tk := range ticks {
			if tk.Value < c.min-1e-9 || tk.Value > c.max+1e-9 {
				t.Fatalf("tick %v outside [%v, %v]", tk.Value, c.min, c.max)
			}
			if tk.Value <= prev {
				t.Fatalf("ticks not strictly increasing: %v after %v", tk.Value, prev)
			}
			prev = tk.Value
		}
	}
}

func TestNiceTicksDegenerate(t *testing.T) {
	if niceTicks(1, 1, 1) != nil {
		t.Fatal("expected nil for n < 2")
	}
	if niceTicks(math.NaN(), 1, 5) != nil {
		t.Fatal("expected nil for NaN bounds")
	}
}

func TestLogTicks(t *testing.T) {
	vals := logTicks(1, 1000)
	want := []float64{1, 10, 100, 1000}
	if len(vals) != len(want) {
		t.Fatalf("logTicks(1, 1000) = %v", vals)
	}
	for i := range want {
		if vals[i] != want[i] {
			t.Fatalf("logTicks(1, 1000) = %v, want %v", vals, want)
		}
	}

	vals = logTicks(3, 500)
	if vals[0] != 3 || vals[len(vals)-1] != 500 {
		t.Fatalf("endpoints missing: %v", vals)
	}

	if logTicks(0, 10) != nil {
		t.Fatal("expected nil for non-positive vmin")
	}
}

func TestNiceAxisBounds(t *testing.T) {
	lo, hi := niceAxisBounds(0, 97)
	if lo > 0 || hi < 97 {
		t.Fatalf("bounds [%v, %v] do not cover [0, 97]", lo, hi)
	}
	_, hi = niceAxisBounds(0, 0)
	if hi <= 0 {
		t.Fatalf("degenerate span must expand, got top %v", hi)
	}
}

func TestFormatTick(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{1500, "1500"},
		{12.34, "12.3"},
		{0.5, "0.50"},
	}
	for _, c := range cases {
		if got := formatTick(c.in); got != c.want {
			t.Fatalf("formatTick(%v) = %q, want %q", c.in, got, c.want)
		}
	}
}

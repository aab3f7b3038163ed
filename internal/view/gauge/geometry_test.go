package gauge

import (
	"math"
	"testing"
)

func TestPolarToCartesian_FlipsVerticalAxis(t *testing.T) {
	cases := []struct {
		deg  float64
		want Point
	}{
		{deg: 0, want: Point{X: 270, Y: 150}},
		{deg: 90, want: Point{X: 150, Y: 30}},
		{deg: 180, want: Point{X: 30, Y: 150}},
	}
	for _, tc := range cases {
		got := PolarToCartesian(150, 150, 120, tc.deg)
		if math.Abs(got.X-tc.want.X) > 1e-9 || math.Abs(got.Y-tc.want.Y) > 1e-9 {
			t.Fatalf("angle %v: expected %+v, got %+v", tc.deg, tc.want, got)
		}
	}
}

func TestArcPath_Flags(t *testing.T) {
	cases := []struct {
		name       string
		start, end float64
		want       string
	}{
		{name: "full semicircle", start: 180, end: 0, want: "M 30 150 A 120 120 0 0 1 270 150"},
		{name: "upper left quarter", start: 180, end: 90, want: "M 30 150 A 120 120 0 0 1 150 30"},
		{name: "increasing angle", start: 0, end: 90, want: "M 270 150 A 120 120 0 0 0 150 30"},
		{name: "span above 180", start: 0, end: 270, want: "M 270 150 A 120 120 0 1 0 150 270"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ArcPath(150, 150, 120, tc.start, tc.end); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestHomeEndAngle(t *testing.T) {
	if HomeEndAngle(0) != 180 || HomeEndAngle(0.5) != 90 || HomeEndAngle(1) != 0 {
		t.Fatalf("unexpected anchor angles: %v %v %v", HomeEndAngle(0), HomeEndAngle(0.5), HomeEndAngle(1))
	}
	if HomeEndAngle(-0.3) != 180 || HomeEndAngle(1.7) != 0 {
		t.Fatalf("out of range probabilities must clamp")
	}

	prev := HomeEndAngle(0)
	for i := 1; i <= 100; i++ {
		cur := HomeEndAngle(float64(i) / 100)
		if cur >= prev {
			t.Fatalf("angle must decrease with probability at step %d: %v >= %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestPercentages_AlwaysSumTo100(t *testing.T) {
	cases := []struct {
		p          float64
		home, away int
	}{
		{p: 0.5, home: 50, away: 50},
		{p: 0.67, home: 67, away: 33},
		{p: 0.333, home: 33, away: 67},
		{p: 0.999, home: 100, away: 0},
		{p: 0, home: 0, away: 100},
	}
	for _, tc := range cases {
		home, away := Percentages(tc.p)
		if home != tc.home || away != tc.away {
			t.Fatalf("p=%v: expected %d/%d, got %d/%d", tc.p, tc.home, tc.away, home, away)
		}
	}

	for i := 0; i <= 1000; i++ {
		home, away := Percentages(float64(i) / 1000)
		if home+away != 100 {
			t.Fatalf("p=%v: %d + %d != 100", float64(i)/1000, home, away)
		}
	}
}

func TestCompute_EvenMatchup(t *testing.T) {
	l := Compute(0.5, DefaultGeometry())

	if l.HomeEndAngle != 90 {
		t.Fatalf("expected end angle 90, got %v", l.HomeEndAngle)
	}
	if l.HomeArc != "M 30 150 A 120 120 0 0 1 150 30" {
		t.Fatalf("unexpected home arc %q", l.HomeArc)
	}
	if l.AwayArc != "M 150 30 A 120 120 0 0 1 270 150" {
		t.Fatalf("unexpected away arc %q", l.AwayArc)
	}
	if l.NeedlePath != "M 150 38 L 140 150 L 160 150 Z" {
		t.Fatalf("unexpected needle %q", l.NeedlePath)
	}
	if l.HomePercent != 50 || l.AwayPercent != 50 {
		t.Fatalf("expected 50/50, got %d/%d", l.HomePercent, l.AwayPercent)
	}
}

func TestCompute_SuppressesDegenerateArcs(t *testing.T) {
	g := DefaultGeometry()

	for _, p := range []float64{0, 0.005} {
		l := Compute(p, g)
		if l.HomeArc != "" {
			t.Fatalf("p=%v: home arc should be suppressed, got %q", p, l.HomeArc)
		}
		if l.AwayArc == "" {
			t.Fatalf("p=%v: away arc should be drawn", p)
		}
	}

	for _, p := range []float64{1, 0.995} {
		l := Compute(p, g)
		if l.AwayArc != "" {
			t.Fatalf("p=%v: away arc should be suppressed, got %q", p, l.AwayArc)
		}
		if l.HomeArc == "" {
			t.Fatalf("p=%v: home arc should be drawn", p)
		}
	}
}

package gauge

import (
	"math"
	"strconv"

	"github.com/valyala/bytebufferpool"
)

// degenerateEpsilon is how close to 0 or 1 the probability may get before the
// now zero length arc is dropped.
const degenerateEpsilon = 0.01

type Point struct {
	X float64
	Y float64
}

// Geometry fixes the circle the gauge is drawn on.
type Geometry struct {
	CX          float64
	CY          float64
	Radius      float64
	Width       int
	Height      int
	StrokeWidth float64
	NeedleInset float64
	NeedleBase  float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		CX:          150,
		CY:          150,
		Radius:      120,
		Width:       300,
		Height:      190,
		StrokeWidth: 20,
		NeedleInset: 8,
		NeedleBase:  10,
	}
}

// Layout is everything needed to draw the gauge for one probability.
type Layout struct {
	Probability  float64
	HomeEndAngle float64
	TrackArc     string
	HomeArc      string
	AwayArc      string
	Needle       [3]Point
	NeedlePath   string
	HomePercent  int
	AwayPercent  int
}

// PolarToCartesian maps an angle in degrees, counter-clockwise from the positive x axis,
// onto a y-down drawing surface.
func PolarToCartesian(cx, cy, r, deg float64) Point {
	rad := deg * math.Pi / 180
	return Point{
		X: cx + r*math.Cos(rad),
		Y: cy - r*math.Sin(rad),
	}
}

// ArcPath is an SVG path for the arc from angle start to angle end. The large-arc flag is set
// only for spans over 180 degrees.
func ArcPath(cx, cy, r, start, end float64) string {
	from := PolarToCartesian(cx, cy, r, start)
	to := PolarToCartesian(cx, cy, r, end)

	largeArc := 0
	if math.Abs(end-start) > 180 {
		largeArc = 1
	}
	// Decreasing angles run clockwise on screen once y is flipped.
	sweep := 0
	if end < start {
		sweep = 1
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("M ")
	writePoint(buf, from)
	_, _ = buf.WriteString(" A ")
	writeNum(buf, r)
	_ = buf.WriteByte(' ')
	writeNum(buf, r)
	_, _ = buf.WriteString(" 0 ")
	_, _ = buf.WriteString(strconv.Itoa(largeArc))
	_ = buf.WriteByte(' ')
	_, _ = buf.WriteString(strconv.Itoa(sweep))
	_ = buf.WriteByte(' ')
	writePoint(buf, to)
	return buf.String()
}

// HomeEndAngle is where the home arc stops: 180 for p=0 down to 0 for p=1.
func HomeEndAngle(p float64) float64 {
	return 180 - 180*clamp01(p)
}

// Percentages are the two labels shown under the gauge. They always sum to 100.
func Percentages(p float64) (home, away int) {
	home = int(math.Round(clamp01(p) * 100))
	return home, 100 - home
}

// Compute lays out the gauge for home win probability p.
func Compute(p float64, g Geometry) Layout {
	p = clamp01(p)
	end := HomeEndAngle(p)

	l := Layout{
		Probability:  p,
		HomeEndAngle: end,
		TrackArc:     ArcPath(g.CX, g.CY, g.Radius, 180, 0),
	}
	if p >= degenerateEpsilon {
		l.HomeArc = ArcPath(g.CX, g.CY, g.Radius, 180, end)
	}
	if p <= 1-degenerateEpsilon {
		l.AwayArc = ArcPath(g.CX, g.CY, g.Radius, end, 0)
	}

	l.Needle = [3]Point{
		PolarToCartesian(g.CX, g.CY, g.Radius-g.NeedleInset, end),
		PolarToCartesian(g.CX, g.CY, g.NeedleBase, end+90),
		PolarToCartesian(g.CX, g.CY, g.NeedleBase, end-90),
	}
	l.NeedlePath = trianglePath(l.Needle)
	l.HomePercent, l.AwayPercent = Percentages(p)
	return l
}

func trianglePath(pts [3]Point) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("M ")
	writePoint(buf, pts[0])
	_, _ = buf.WriteString(" L ")
	writePoint(buf, pts[1])
	_, _ = buf.WriteString(" L ")
	writePoint(buf, pts[2])
	_, _ = buf.WriteString(" Z")
	return buf.String()
}

func writePoint(buf *bytebufferpool.ByteBuffer, p Point) {
	writeNum(buf, p.X)
	_ = buf.WriteByte(' ')
	writeNum(buf, p.Y)
}

func writeNum(buf *bytebufferpool.ByteBuffer, v float64) {
	_, _ = buf.WriteString(formatNum(v))
}

// formatNum rounds to two decimals and never prints negative zero.
func formatNum(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func clamp01(p float64) float64 {
	if math.IsNaN(p) || p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

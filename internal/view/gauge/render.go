package gauge

import (
	"bytes"
	"fmt"
	"html"
	"io"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"github.com/riskibarqy/courtside/internal/domain/team"
	"github.com/valyala/bytebufferpool"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
)

// Theme colours one matchup.
type Theme struct {
	HomeLabel string
	AwayLabel string
	HomeColor string
	AwayColor string
	Track     string
	Needle    string
	Text      string
}

// ThemeFor picks team colours, falling back to the away secondary colour when both teams
// share a primary.
func ThemeFor(home, away string) Theme {
	hs := team.StyleFor(home)
	as := team.StyleFor(away)
	awayColor := as.Primary
	if awayColor == hs.Primary {
		awayColor = as.Secondary
	}
	return Theme{
		HomeLabel: team.Normalize(home),
		AwayLabel: team.Normalize(away),
		HomeColor: hs.Primary,
		AwayColor: awayColor,
		Track:     "#e5e7eb",
		Needle:    "#111827",
		Text:      "#374151",
	}
}

// RenderSVG writes the gauge as a standalone SVG document.
func RenderSVG(w io.Writer, l Layout, g Geometry, th Theme) error {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	fmt.Fprintf(buf, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		g.Width, g.Height, g.Width, g.Height)
	writeArc(buf, l.TrackArc, th.Track, g.StrokeWidth)
	writeArc(buf, l.HomeArc, th.HomeColor, g.StrokeWidth)
	writeArc(buf, l.AwayArc, th.AwayColor, g.StrokeWidth)
	fmt.Fprintf(buf, `<path d="%s" fill="%s"/>`, l.NeedlePath, html.EscapeString(th.Needle))
	fmt.Fprintf(buf, `<circle cx="%s" cy="%s" r="%s" fill="%s"/>`,
		formatNum(g.CX), formatNum(g.CY), formatNum(g.NeedleBase/2), html.EscapeString(th.Needle))

	labelY := g.CY + g.StrokeWidth + 10
	writeLabel(buf, g.CX-g.Radius, labelY, th.HomeColor, th.HomeLabel, l.HomePercent)
	writeLabel(buf, g.CX+g.Radius, labelY, th.AwayColor, th.AwayLabel, l.AwayPercent)
	_, _ = buf.WriteString(`</svg>`)

	_, err := w.Write(buf.B)
	return err
}

func writeArc(buf *bytebufferpool.ByteBuffer, path, color string, width float64) {
	if path == "" {
		return
	}
	fmt.Fprintf(buf, `<path d="%s" fill="none" stroke="%s" stroke-width="%s" stroke-linecap="butt"/>`,
		path, html.EscapeString(color), formatNum(width))
}

func writeLabel(buf *bytebufferpool.ByteBuffer, x, y float64, color, label string, percent int) {
	text := labelText(label, percent)
	fmt.Fprintf(buf, `<text x="%s" y="%s" text-anchor="middle" font-family="sans-serif" font-size="14" fill="%s">%s</text>`,
		formatNum(x), formatNum(y), html.EscapeString(color), html.EscapeString(text))
}

var (
	labelFaceOnce sync.Once
	labelFace     font.Face
	labelFaceErr  error
)

func loadLabelFace() (font.Face, error) {
	labelFaceOnce.Do(func() {
		f, err := truetype.Parse(gobold.TTF)
		if err != nil {
			labelFaceErr = fmt.Errorf("parse label font: %w", err)
			return
		}
		labelFace = truetype.NewFace(f, &truetype.Options{
			Size:    14,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	})
	return labelFace, labelFaceErr
}

// RenderPNG rasterizes the same gauge drawn by RenderSVG.
func RenderPNG(w io.Writer, l Layout, g Geometry, th Theme) error {
	face, err := loadLabelFace()
	if err != nil {
		return err
	}

	dc := gg.NewContext(g.Width, g.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetLineWidth(g.StrokeWidth)
	dc.SetLineCapButt()

	// gg measures angles clockwise in radians; gauge angles run counter-clockwise in degrees.
	toRad := func(deg float64) float64 { return -deg * math.Pi / 180 }

	dc.SetHexColor(th.Track)
	dc.DrawArc(g.CX, g.CY, g.Radius, toRad(180), toRad(0))
	dc.Stroke()

	if l.HomeArc != "" {
		dc.SetHexColor(th.HomeColor)
		dc.DrawArc(g.CX, g.CY, g.Radius, toRad(180), toRad(l.HomeEndAngle))
		dc.Stroke()
	}
	if l.AwayArc != "" {
		dc.SetHexColor(th.AwayColor)
		dc.DrawArc(g.CX, g.CY, g.Radius, toRad(l.HomeEndAngle), toRad(0))
		dc.Stroke()
	}

	dc.SetHexColor(th.Needle)
	dc.MoveTo(l.Needle[0].X, l.Needle[0].Y)
	dc.LineTo(l.Needle[1].X, l.Needle[1].Y)
	dc.LineTo(l.Needle[2].X, l.Needle[2].Y)
	dc.ClosePath()
	dc.Fill()
	dc.DrawCircle(g.CX, g.CY, g.NeedleBase/2)
	dc.Fill()

	dc.SetFontFace(face)
	labelY := g.CY + g.StrokeWidth + 10
	dc.SetHexColor(th.HomeColor)
	dc.DrawStringAnchored(labelText(th.HomeLabel, l.HomePercent), g.CX-g.Radius, labelY, 0.5, 0.5)
	dc.SetHexColor(th.AwayColor)
	dc.DrawStringAnchored(labelText(th.AwayLabel, l.AwayPercent), g.CX+g.Radius, labelY, 0.5, 0.5)

	var out bytes.Buffer
	if err := dc.EncodePNG(&out); err != nil {
		return fmt.Errorf("encode gauge png: %w", err)
	}
	_, err = w.Write(out.Bytes())
	return err
}

func labelText(label string, percent int) string {
	if label == "" {
		return strconv.Itoa(percent) + "%"
	}
	return label + " " + strconv.Itoa(percent) + "%"
}

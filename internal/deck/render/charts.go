package render

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/realty-decks/deck-backend/internal/deck/assembler"
	"github.com/realty-decks/deck-backend/internal/deck/catalog"
)

// pixelsPerUnit sets the chart bitmap resolution.
const pixelsPerUnit = 120

var regularFont = sync.OnceValues(func() (*truetype.Font, error) {
	return truetype.Parse(goregular.TTF)
})

func fontFace(size float64) (font.Face, error) {
	f, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingNone}), nil
}

// hexColor parses RRGGBB. Malformed input falls back to a neutral gray.
func hexColor(s string) color.NRGBA {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 3 {
		return color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}
	}
	return color.NRGBA{R: raw[0], G: raw[1], B: raw[2], A: 0xFF}
}

func paletteColor(colors []string, i int) color.NRGBA {
	if len(colors) == 0 {
		return hexColor("")
	}
	return hexColor(colors[i%len(colors)])
}

// chartPNG draws a chart element as a PNG sized to its rectangle.
func chartPNG(e assembler.Element) ([]byte, error) {
	if e.Chart == nil {
		return nil, fmt.Errorf("element %s has no chart", e.RegionID)
	}
	w := int(math.Round(e.Rect.W * pixelsPerUnit))
	h := int(math.Round(e.Rect.H * pixelsPerUnit))
	dc := gg.NewContext(w, h)

	dc.SetColor(color.White)
	dc.DrawRoundedRectangle(0, 0, float64(w), float64(h), 16)
	dc.Fill()

	textColor := hexColor(e.Font.Color)
	titleFace, err := fontFace(26)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(titleFace)
	dc.SetColor(textColor)
	dc.DrawStringAnchored(e.Chart.Title, float64(w)/2, 30, 0.5, 0.5)

	labelFace, err := fontFace(18)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(labelFace)

	switch e.Chart.Kind {
	case catalog.ChartBar:
		drawBars(dc, e.Chart, textColor)
	case catalog.ChartDoughnut:
		drawDoughnut(dc, e.Chart, textColor)
	default:
		return nil, fmt.Errorf("unsupported chart kind %q", e.Chart.Kind)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBars(dc *gg.Context, c *assembler.Chart, textColor color.Color) {
	const (
		left, right, top, bottom = 40.0, 30.0, 80.0, 50.0
		gapRatio                 = 0.35
	)
	w, h := float64(dc.Width()), float64(dc.Height())
	plotW, plotH := w-left-right, h-top-bottom
	n := len(c.Values)
	if n == 0 || plotW <= 0 || plotH <= 0 {
		return
	}

	maxV := 0.0
	for _, v := range c.Values {
		maxV = math.Max(maxV, v)
	}
	if maxV == 0 {
		maxV = 1
	}

	dc.SetColor(color.NRGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF})
	dc.SetLineWidth(2)
	dc.DrawLine(left, top+plotH, left+plotW, top+plotH)
	dc.Stroke()

	slot := plotW / float64(n)
	barW := slot * (1 - gapRatio)
	for i, v := range c.Values {
		x := left + float64(i)*slot + (slot-barW)/2
		barH := plotH * v / maxV
		y := top + plotH - barH

		dc.SetColor(paletteColor(c.Colors, i))
		dc.DrawRectangle(x, y, barW, barH)
		dc.Fill()

		dc.SetColor(textColor)
		dc.DrawStringAnchored(formatValue(v), x+barW/2, y-14, 0.5, 0.5)
		if i < len(c.Labels) {
			dc.DrawStringAnchored(c.Labels[i], x+barW/2, top+plotH+24, 0.5, 0.5)
		}
	}
}

func drawDoughnut(dc *gg.Context, c *assembler.Chart, textColor color.Color) {
	w, h := float64(dc.Width()), float64(dc.Height())
	legendH := 36.0 * float64(len(c.Labels))
	cx := w / 2
	cy := 60 + (h-60-legendH)/2
	r := math.Min(w/2, (h-60-legendH)/2) - 16
	if r <= 0 {
		return
	}

	total := 0.0
	for _, v := range c.Values {
		total += v
	}
	if total <= 0 {
		return
	}

	angle := -math.Pi / 2
	for i, v := range c.Values {
		sweep := 2 * math.Pi * v / total
		dc.SetColor(paletteColor(c.Colors, i))
		dc.MoveTo(cx, cy)
		dc.DrawArc(cx, cy, r, angle, angle+sweep)
		dc.ClosePath()
		dc.Fill()
		angle += sweep
	}

	dc.SetColor(color.White)
	dc.DrawCircle(cx, cy, r*0.55)
	dc.Fill()

	y := cy + r + 30
	for i, label := range c.Labels {
		if i >= len(c.Values) {
			break
		}
		dc.SetColor(paletteColor(c.Colors, i))
		dc.DrawRectangle(cx-110, y-9, 18, 18)
		dc.Fill()
		dc.SetColor(textColor)
		dc.DrawStringAnchored(fmt.Sprintf("%s %.0f%%", label, 100*c.Values[i]/total), cx-80, y, 0, 0.5)
		y += 36
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

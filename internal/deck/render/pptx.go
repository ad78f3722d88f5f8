// Package render serializes an assembled deck into a PowerPoint file.
package render

import (
	"bytes"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	ppt "github.com/VantageDataChat/GoPPT"

	"github.com/realty-decks/deck-backend/internal/deck/assembler"
	"github.com/realty-decks/deck-backend/internal/deck/catalog"
)

const (
	emuPerInch = 914400

	// The writer's default canvas is 10in x 5.625in; layout units describe
	// a 13.33 x 7.5 canvas of the same ratio.
	slideWidthInches = 10.0
	scale            = slideWidthInches / catalog.CanvasWidth

	minFontSize = 6
)

func emu(v float64) int64 {
	return int64(math.Round(v * scale * emuPerInch))
}

func fontSize(pt int) int {
	s := int(math.Round(float64(pt) * scale))
	if s < minFontSize {
		return minFontSize
	}
	return s
}

// argb prefixes a hex color with an alpha channel derived from a
// transparency percentage.
func argb(hex string, transparency int) string {
	if transparency < 0 {
		transparency = 0
	}
	if transparency > 100 {
		transparency = 100
	}
	alpha := int(math.Round(255 * float64(100-transparency) / 100))
	return fmt.Sprintf("%02X%s", alpha, strings.ToUpper(hex))
}

func solidFill(hex string, transparency int) *ppt.Fill {
	return ppt.NewFill().SetSolid(ppt.NewColor(argb(hex, transparency)))
}

// PPTX writes the deck as an Office Open XML presentation. Every failure,
// including a panic inside the writer, is reported as ErrGenerationFailed.
func PPTX(d *assembler.Deck) (out []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, fmt.Errorf("%w: writer panic: %v", ErrGenerationFailed, r)
		}
	}()

	if d == nil || len(d.Slides) == 0 {
		return nil, fmt.Errorf("%w: empty deck", ErrGenerationFailed)
	}

	p := ppt.New()
	props := p.GetDocumentProperties()
	props.Title = d.Title
	props.Creator = d.Author

	for i, s := range d.Slides {
		var slide *ppt.Slide
		if i == 0 {
			slide = p.GetActiveSlide()
		} else {
			slide = p.CreateSlide()
		}
		for _, e := range s.Elements {
			if err := drawElement(slide, e); err != nil {
				return nil, fmt.Errorf("%w: slide %d %s: %v", ErrGenerationFailed, s.Index+1, e.RegionID, err)
			}
		}
	}

	w, err := ppt.NewWriter(p, ppt.WriterPowerPoint2007)
	if err != nil {
		return nil, fmt.Errorf("%w: create writer: %v", ErrGenerationFailed, err)
	}
	var buf bytes.Buffer
	if err := w.(*ppt.PPTXWriter).WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("%w: write pptx: %v", ErrGenerationFailed, err)
	}
	return buf.Bytes(), nil
}

func drawElement(slide *ppt.Slide, e assembler.Element) error {
	switch e.Kind {
	case assembler.ElementShape:
		drawBox(slide, e.Rect, e.Fill, e.Transparency)
	case assembler.ElementText:
		drawText(slide, e.Rect, e.Text, e.Font, e.Align, e.Fill, e.Transparency)
	case assembler.ElementTable:
		drawTable(slide, e)
	case assembler.ElementImage:
		data, err := decodeLogo(e.Image)
		if err != nil {
			return err
		}
		drawImage(slide, e.Rect, data)
	case assembler.ElementChart:
		data, err := chartPNG(e)
		if err != nil {
			return err
		}
		drawImage(slide, e.Rect, data)
	default:
		return fmt.Errorf("unknown element kind %q", e.Kind)
	}
	return nil
}

func place(shape *ppt.RichTextShape, r catalog.Rect) {
	shape.SetOffsetX(emu(r.X)).SetOffsetY(emu(r.Y))
	shape.SetWidth(emu(r.W)).SetHeight(emu(r.H))
}

// drawBox renders every shape kind as a filled rectangle; the writer has no
// preset geometry for rounded corners or ellipses.
func drawBox(slide *ppt.Slide, r catalog.Rect, fill string, transparency int) {
	if fill == "" {
		return
	}
	box := slide.CreateRichTextShape()
	place(box, r)
	box.SetFill(solidFill(fill, transparency))
}

func drawText(slide *ppt.Slide, r catalog.Rect, text string, f assembler.Font, align catalog.Align, fill string, transparency int) {
	shape := slide.CreateRichTextShape()
	place(shape, r)
	if fill != "" {
		shape.SetFill(solidFill(fill, transparency))
	}

	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			shape.CreateParagraph()
		}
		run := shape.CreateTextRun(line)
		font := run.GetFont().SetSize(fontSize(f.Size)).SetBold(f.Bold)
		if f.Color != "" {
			font.SetColor(ppt.NewColor(argb(f.Color, 0)))
		}
		setAlignment(shape.GetActiveParagraph(), align)
	}
}

func setAlignment(p *ppt.Paragraph, align catalog.Align) {
	switch align {
	case catalog.AlignCenter:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalCenter))
	case catalog.AlignRight:
		p.SetAlignment(ppt.NewAlignment().SetHorizontal(ppt.HorizontalRight))
	}
}

// drawTable places each cell as its own text box so column positions match
// the layout exactly.
func drawTable(slide *ppt.Slide, e assembler.Element) {
	t := e.Table
	if t == nil {
		return
	}
	for i, row := range t.Rows {
		y := e.Rect.Y + float64(i)*t.Step
		for j, cell := range row {
			if j >= len(t.Columns) {
				break
			}
			col := t.Columns[j]
			drawText(slide, catalog.Rect{X: col.X, Y: y, W: col.W, H: e.Rect.H}, cell, col.Font, col.Align, "", 0)
		}
	}
}

func drawImage(slide *ppt.Slide, r catalog.Rect, png []byte) {
	img := slide.CreateDrawingShape()
	img.SetImageData(png, "image/png")
	img.SetOffsetX(emu(r.X)).SetOffsetY(emu(r.Y))
	img.SetWidth(emu(r.W)).SetHeight(emu(r.H))
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// FileName names the download as {projectName}-{YYYY-MM-DD}.pptx, with
// "Investor-Deck" standing in for a blank project name.
func FileName(projectName string, now time.Time) string {
	name := strings.Trim(unsafeFileChars.ReplaceAllString(strings.TrimSpace(projectName), "-"), "-")
	if name == "" {
		name = "Investor-Deck"
	}
	return fmt.Sprintf("%s-%s.pptx", name, now.Format("2006-01-02"))
}

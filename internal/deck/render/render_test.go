package render

import (
	"archive/zip"
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/realty-decks/deck-backend/internal/deck/assembler"
	"github.com/realty-decks/deck-backend/internal/deck/domain"
)

var fixedNow = time.Date(2025, time.March, 14, 10, 0, 0, 0, time.UTC)

func pngLogo(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 0xFF, A: 0xFF})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func slideCount(t *testing.T, pptx []byte) int {
	t.Helper()
	zr, err := zip.NewReader(bytes.NewReader(pptx), int64(len(pptx)))
	require.NoError(t, err)
	n := 0
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/slide") && strings.HasSuffix(f.Name, ".xml") {
			n++
		}
	}
	return n
}

func TestPPTX_EmptyInput(t *testing.T) {
	deck := assembler.Assemble(domain.BrandConfig{}, domain.ProjectData{}, assembler.Options{Now: fixedNow})

	out, err := PPTX(deck)
	require.NoError(t, err)
	require.NotEmpty(t, out)
	assert.Equal(t, 10, slideCount(t, out))
}

func TestPPTX_WithLogo(t *testing.T) {
	for name, logo := range map[string]string{
		"bare base64": pngLogo(t),
		"data url":    "data:image/png;base64," + pngLogo(t),
	} {
		t.Run(name, func(t *testing.T) {
			brand := domain.BrandConfig{CompanyName: "Acme", Logo: logo}
			deck := assembler.Assemble(brand, domain.ProjectData{ProjectName: "Harbor View"}, assembler.Options{Now: fixedNow})

			out, err := PPTX(deck)
			require.NoError(t, err)
			assert.Equal(t, 10, slideCount(t, out))
		})
	}
}

func TestPPTX_CorruptLogoFails(t *testing.T) {
	for name, logo := range map[string]string{
		"not base64":     "%%%not-base64%%%",
		"not an image":   base64.StdEncoding.EncodeToString([]byte("hello")),
		"plain data url": "data:image/png,rawbytes",
	} {
		t.Run(name, func(t *testing.T) {
			deck := assembler.Assemble(domain.BrandConfig{Logo: logo}, domain.ProjectData{}, assembler.Options{Now: fixedNow})

			out, err := PPTX(deck)
			assert.ErrorIs(t, err, ErrGenerationFailed)
			assert.Nil(t, out)
		})
	}
}

func TestPPTX_NilDeck(t *testing.T) {
	_, err := PPTX(nil)
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestDecodeLogo_ReencodesPNG(t *testing.T) {
	out, err := decodeLogo(pngLogo(t))
	require.NoError(t, err)

	img, format, err := image.Decode(bytes.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 4, img.Bounds().Dx())
}

func TestChartPNG(t *testing.T) {
	deck := assembler.Assemble(domain.BrandConfig{}, domain.ProjectData{}, assembler.Options{Now: fixedNow})
	for _, s := range deck.Slides {
		for _, e := range s.Elements {
			if e.Kind != assembler.ElementChart {
				continue
			}
			out, err := chartPNG(e)
			require.NoError(t, err, e.RegionID)

			img, err := png.Decode(bytes.NewReader(out))
			require.NoError(t, err)
			assert.Equal(t, int(e.Rect.W*pixelsPerUnit+0.5), img.Bounds().Dx())
		}
	}
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0x3B, B: 0x75, A: 0xFF}, hexColor("003B75"))
	assert.Equal(t, color.NRGBA{R: 0x99, G: 0x99, B: 0x99, A: 0xFF}, hexColor("not-a-color"))
}

func TestArgb(t *testing.T) {
	assert.Equal(t, "FF003B75", argb("003b75", 0))
	assert.Equal(t, "261E293B", argb("1E293B", 85))
	assert.Equal(t, "00FFFFFF", argb("FFFFFF", 150))
}

func TestFileName(t *testing.T) {
	assert.Equal(t, "Sunrise-Gardens-2025-03-14.pptx", FileName("Sunrise Gardens", fixedNow))
	assert.Equal(t, "Investor-Deck-2025-03-14.pptx", FileName("  ", fixedNow))
	assert.Equal(t, "a-b-c-2025-03-14.pptx", FileName("a/b: c", fixedNow))
}

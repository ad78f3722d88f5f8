// Package theme derives the per-deck color palette from a BrandConfig.
package theme

import (
	"strings"

	"github.com/realty-decks/deck-backend/internal/deck/domain"
)

// Role names a semantic color slot used by slide regions.
type Role string

const (
	Primary   Role = "primary"
	Secondary Role = "secondary"
	Accent    Role = "accent"
	Dark      Role = "dark"
	Light     Role = "light"
	White     Role = "white"
	Text      Role = "text"
	TextLight Role = "textLight"
)

const (
	whiteHex     = "FFFFFF"
	textHex      = "333333"
	textLightHex = "666666"
)

// Theme holds normalized hex colors without a leading '#'.
type Theme struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
	Dark      string `json:"dark"`
	Light     string `json:"light"`
	White     string `json:"white"`
	Text      string `json:"text"`
	TextLight string `json:"textLight"`
}

// Resolve maps brand colors onto a Theme. Malformed values pass through.
func Resolve(brand domain.BrandConfig) Theme {
	b := brand.WithDefaults()
	return Theme{
		Primary:   Normalize(b.PrimaryColor),
		Secondary: Normalize(b.SecondaryColor),
		Accent:    Normalize(b.AccentColor),
		Dark:      Normalize(b.DarkColor),
		Light:     Normalize(b.LightColor),
		White:     whiteHex,
		Text:      textHex,
		TextLight: textLightHex,
	}
}

// Normalize trims whitespace and a single leading '#'.
func Normalize(hex string) string {
	return strings.TrimPrefix(strings.TrimSpace(hex), "#")
}

// Color resolves a role. Anything that is not a known role is treated as a
// literal hex value, which lets the catalog use fixed tints such as E0E0E0.
func (t Theme) Color(r Role) string {
	switch r {
	case Primary:
		return t.Primary
	case Secondary:
		return t.Secondary
	case Accent:
		return t.Accent
	case Dark:
		return t.Dark
	case Light:
		return t.Light
	case White:
		return t.White
	case Text:
		return t.Text
	case TextLight:
		return t.TextLight
	case "":
		return ""
	}
	return Normalize(string(r))
}

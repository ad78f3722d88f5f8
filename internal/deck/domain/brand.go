package domain

import "strings"

// BrandConfig carries the presentation styling chosen in the branding panel.
type BrandConfig struct {
	// Logo is a data URL or bare base64 image. Empty means no logo.
	Logo           string `json:"logo,omitempty"`
	CompanyName    string `json:"companyName"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	AccentColor    string `json:"accentColor"`
	DarkColor      string `json:"darkColor"`
	LightColor     string `json:"lightColor"`
}

const (
	DefaultPrimaryColor   = "#003B75"
	DefaultSecondaryColor = "#00A3E0"
	DefaultAccentColor    = "#FF6B35"
	DefaultDarkColor      = "#1E293B"
	DefaultLightColor     = "#F8FAFC"
)

func DefaultBrand() BrandConfig {
	return BrandConfig{
		PrimaryColor:   DefaultPrimaryColor,
		SecondaryColor: DefaultSecondaryColor,
		AccentColor:    DefaultAccentColor,
		DarkColor:      DefaultDarkColor,
		LightColor:     DefaultLightColor,
	}
}

// WithDefaults fills blank colors from DefaultBrand.
func (b BrandConfig) WithDefaults() BrandConfig {
	def := DefaultBrand()
	b.PrimaryColor = orDefault(b.PrimaryColor, def.PrimaryColor)
	b.SecondaryColor = orDefault(b.SecondaryColor, def.SecondaryColor)
	b.AccentColor = orDefault(b.AccentColor, def.AccentColor)
	b.DarkColor = orDefault(b.DarkColor, def.DarkColor)
	b.LightColor = orDefault(b.LightColor, def.LightColor)
	return b
}

func (b BrandConfig) HasLogo() bool {
	return strings.TrimSpace(b.Logo) != ""
}

func orDefault(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}

// Merge returns a copy of b where every non-blank field of partial wins.
func (b BrandConfig) Merge(partial BrandConfig) BrandConfig {
	b.Logo = orDefault(partial.Logo, b.Logo)
	b.CompanyName = orDefault(partial.CompanyName, b.CompanyName)
	b.PrimaryColor = orDefault(partial.PrimaryColor, b.PrimaryColor)
	b.SecondaryColor = orDefault(partial.SecondaryColor, b.SecondaryColor)
	b.AccentColor = orDefault(partial.AccentColor, b.AccentColor)
	b.DarkColor = orDefault(partial.DarkColor, b.DarkColor)
	b.LightColor = orDefault(partial.LightColor, b.LightColor)
	return b
}

// Package ui draws the page, the sign layer HUD and the work overlay.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PageBg         rl.Color
	PageText       rl.Color
	PageMuted      rl.Color
	ThumbBg        rl.Color
	ThumbBorder    rl.Color
	ThumbHover     rl.Color
	SignColor      rl.Color
	SignCooling    rl.Color
	Backdrop       rl.Color
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	BarBg          rl.Color
	BarFill        rl.Color
	BarFillHigh    rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
	TitleFontSize  int32
	BodyFontSize   int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PageBg:         rl.Color{R: 245, G: 242, B: 236, A: 255},
		PageText:       rl.Color{R: 30, G: 30, B: 30, A: 255},
		PageMuted:      rl.Color{R: 120, G: 120, B: 120, A: 255},
		ThumbBg:        rl.Color{R: 220, G: 216, B: 208, A: 255},
		ThumbBorder:    rl.Color{R: 180, G: 176, B: 168, A: 255},
		ThumbHover:     rl.Color{R: 30, G: 30, B: 30, A: 255},
		SignColor:      rl.Color{R: 200, G: 60, B: 40, A: 255},
		SignCooling:    rl.Color{R: 40, G: 120, B: 200, A: 255},
		Backdrop:       rl.Color{R: 0, G: 0, B: 0, A: 220},
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		BarBg:          rl.Color{R: 40, G: 40, B: 40, A: 255},
		BarFill:        rl.Color{R: 100, G: 150, B: 200, A: 255},
		BarFillHigh:    rl.Color{R: 200, G: 100, B: 100, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     90,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
		TitleFontSize:  40,
		BodyFontSize:   20,
	}
}

// rect converts a float64 layout rectangle to a raylib rectangle.
func rect(x, y, w, h float64) rl.Rectangle {
	return rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(w), Height: float32(h)}
}

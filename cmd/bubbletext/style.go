package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/mangakit/bubbletext/internal/compose"
)

// styleFlags holds the raw flag values for the lettering style. Colors and
// alignment stay strings until buildStyle validates them.
type styleFlags struct {
	fontFamily   string
	fontSize     int
	fontColor    string
	bgColor      string
	strokeWidth  int
	strokeColor  string
	padding      int
	align        string
	transparency float64
	autoSize     bool
}

func bindStyleFlags(fs *pflag.FlagSet, sf *styleFlags) {
	d := compose.DefaultStyle()
	fs.StringVar(&sf.fontFamily, "font-family", d.FontFamily, "font family name")
	fs.IntVar(&sf.fontSize, "font-size", d.FontSize, "font size in pixels (8-48), ignored when auto-size is on")
	fs.StringVar(&sf.fontColor, "font-color", d.FontColor.Hex(), "text color as #RRGGBB")
	fs.StringVar(&sf.bgColor, "bg-color", d.BGColor.Hex(), "erase fill color as #RRGGBB")
	fs.IntVar(&sf.strokeWidth, "stroke-width", d.StrokeWidth, "text outline thickness in pixels (0-5)")
	fs.StringVar(&sf.strokeColor, "stroke-color", d.StrokeColor.Hex(), "text outline color as #RRGGBB")
	fs.IntVar(&sf.padding, "padding", d.Padding, "inset between region border and text in pixels (0-20)")
	fs.StringVar(&sf.align, "align", string(d.Alignment), "text alignment: left, center or right")
	fs.Float64Var(&sf.transparency, "transparency", d.Transparency, "erase fill opacity (0.0-1.0)")
	fs.BoolVar(&sf.autoSize, "auto-size", d.AutoFontSize, "pick the largest font size that fits each region")
}

func buildStyle(sf styleFlags) (compose.Style, error) {
	style := compose.Style{
		FontFamily:   sf.fontFamily,
		FontSize:     sf.fontSize,
		StrokeWidth:  sf.strokeWidth,
		Padding:      sf.padding,
		Transparency: sf.transparency,
		AutoFontSize: sf.autoSize,
	}

	var err error
	if style.FontColor, err = compose.ParseHexColor(sf.fontColor); err != nil {
		return compose.Style{}, fmt.Errorf("--font-color: %w", err)
	}
	if style.BGColor, err = compose.ParseHexColor(sf.bgColor); err != nil {
		return compose.Style{}, fmt.Errorf("--bg-color: %w", err)
	}
	if style.StrokeColor, err = compose.ParseHexColor(sf.strokeColor); err != nil {
		return compose.Style{}, fmt.Errorf("--stroke-color: %w", err)
	}
	if style.Alignment, err = compose.ParseAlignment(sf.align); err != nil {
		return compose.Style{}, fmt.Errorf("--align: %w", err)
	}
	if err := style.Validate(); err != nil {
		return compose.Style{}, err
	}
	return style, nil
}

package main

import (
	"testing"

	"github.com/mangakit/bubbletext/internal/compose"
)

func TestBuildStyleDefaults(t *testing.T) {
	d := compose.DefaultStyle()
	sf := styleFlags{
		fontFamily:   d.FontFamily,
		fontSize:     d.FontSize,
		fontColor:    d.FontColor.Hex(),
		bgColor:      d.BGColor.Hex(),
		strokeWidth:  d.StrokeWidth,
		strokeColor:  d.StrokeColor.Hex(),
		padding:      d.Padding,
		align:        string(d.Alignment),
		transparency: d.Transparency,
		autoSize:     d.AutoFontSize,
	}
	style, err := buildStyle(sf)
	if err != nil {
		t.Fatalf("buildStyle: %v", err)
	}
	if style != d {
		t.Errorf("buildStyle(defaults) = %+v, want %+v", style, d)
	}
}

func TestBuildStyleInvalid(t *testing.T) {
	base := func() styleFlags {
		d := compose.DefaultStyle()
		return styleFlags{
			fontFamily:   d.FontFamily,
			fontSize:     d.FontSize,
			fontColor:    d.FontColor.Hex(),
			bgColor:      d.BGColor.Hex(),
			strokeWidth:  d.StrokeWidth,
			strokeColor:  d.StrokeColor.Hex(),
			padding:      d.Padding,
			align:        string(d.Alignment),
			transparency: d.Transparency,
			autoSize:     d.AutoFontSize,
		}
	}

	tests := []struct {
		name   string
		mutate func(*styleFlags)
	}{
		{"bad font color", func(sf *styleFlags) { sf.fontColor = "red" }},
		{"bad bg color", func(sf *styleFlags) { sf.bgColor = "#12" }},
		{"bad stroke color", func(sf *styleFlags) { sf.strokeColor = "zzz" }},
		{"bad alignment", func(sf *styleFlags) { sf.align = "justified" }},
		{"font size too small", func(sf *styleFlags) { sf.fontSize = 4 }},
		{"stroke width too large", func(sf *styleFlags) { sf.strokeWidth = 9 }},
		{"padding too large", func(sf *styleFlags) { sf.padding = 99 }},
		{"transparency out of range", func(sf *styleFlags) { sf.transparency = 1.5 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sf := base()
			tt.mutate(&sf)
			if _, err := buildStyle(sf); err == nil {
				t.Error("buildStyle: expected error")
			}
		})
	}
}

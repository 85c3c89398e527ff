package style

import "testing"

func TestParseColor(t *testing.T) {
	tests := []struct {
		input   string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{0xff, 0x00, 0x00, 0xff}, false},
		{"#F00", Color{0xff, 0x00, 0x00, 0xff}, false},
		{"#80008080", Color{0x00, 0x80, 0x80, 0x80}, false},
		{"  #800080 ", Color{0x80, 0x00, 0x80, 0xff}, false},
		{"teal", Color{0x00, 0x80, 0x80, 0xff}, false},
		{"Blue", ColorBlue, false},
		{"", Color{}, true},
		{"#12345", Color{}, true},
		{"#zz0000", Color{}, true},
		{"#gg000000", Color{}, true},
		{"not-a-color", Color{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseColor(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseColor(%q) expected error, got %v", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseColor(%q) unexpected error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestColorARGB(t *testing.T) {
	c := ColorFromARGB(0x7f112233)
	if c != (Color{R: 0x11, G: 0x22, B: 0x33, A: 0x7f}) {
		t.Fatalf("unexpected color %+v", c)
	}
	if c.ARGB() != 0x7f112233 {
		t.Errorf("expected 0x7f112233, got %#x", c.ARGB())
	}
	if c.String() != "#7f112233" {
		t.Errorf("expected #7f112233, got %s", c.String())
	}

	var back Color
	if err := back.UnmarshalText([]byte(c.String())); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if back != c {
		t.Errorf("expected %v, got %v", c, back)
	}
}

func TestStyle_IsEmpty(t *testing.T) {
	if !(Style{}).IsEmpty() {
		t.Error("expected zero style to be empty")
	}
	if (Style{}).WithFontWeight(FontWeightBold).IsEmpty() {
		t.Error("expected bold style to be non-empty")
	}
}

func TestStyle_WithDoesNotAlias(t *testing.T) {
	base := Style{}.WithColor(ColorBlue)
	red := base.WithColor(Color{R: 0xff, A: 0xff})

	if *base.Color != ColorBlue {
		t.Errorf("base color changed to %v", *base.Color)
	}
	if red.Color.R != 0xff {
		t.Errorf("expected red, got %v", *red.Color)
	}
}

func TestStyle_ResolvedFontSize(t *testing.T) {
	tests := []struct {
		name   string
		style  Style
		base   float32
		want   float32
		wantOK bool
	}{
		{"unset", Style{}, 16, 0, false},
		{"scale", Style{}.WithFontSizeScale(1.5), 16, 24, true},
		{"absolute", Style{}.WithFontSize(20), 16, 20, true},
		{"absolute wins", Style{}.WithFontSize(20).WithFontSizeScale(2), 16, 20, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := tc.style.ResolvedFontSize(tc.base)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("ResolvedFontSize(%g) = %g, %v; want %g, %v", tc.base, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestStyle_String(t *testing.T) {
	s := Style{}.
		WithFontWeight(FontWeightBold).
		WithFontStyle(FontStyleItalic).
		WithBaselineShift(BaselineShiftSuperscript)
	want := "font-weight=bold font-style=italic baseline-shift=superscript"
	if s.String() != want {
		t.Errorf("expected %q, got %q", want, s.String())
	}
	if (Style{}).String() != "(empty)" {
		t.Errorf("expected (empty), got %q", Style{}.String())
	}
}

func TestStyle_Clone(t *testing.T) {
	orig := Style{}.WithColor(ColorBlue).WithTextDecoration(TextDecorationUnderline)
	clone := orig.Clone()

	*orig.Color = ColorBlack
	if *clone.Color != ColorBlue {
		t.Errorf("clone shares color with original: %v", *clone.Color)
	}
	if clone.TextDecoration == nil || *clone.TextDecoration != TextDecorationUnderline {
		t.Errorf("expected underline, got %v", clone.TextDecoration)
	}
	if clone.FontWeight != nil {
		t.Error("expected unset weight to stay nil")
	}
}

// Package style defines the renderer-facing style facets produced from markers.
package style

import (
	"fmt"
	"strings"
)

// FontWeight is a numeric font weight (100-900).
type FontWeight int

const (
	FontWeightNormal FontWeight = 400
	FontWeightBold   FontWeight = 700
)

// String returns the string representation of the weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightNormal:
		return "normal"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("%d", int(w))
	}
}

// FontStyle is the font slant.
type FontStyle string

const (
	FontStyleNormal FontStyle = "normal"
	FontStyleItalic FontStyle = "italic"
)

// TextDecoration is a line drawn over, under or through text.
type TextDecoration string

const (
	TextDecorationNone        TextDecoration = "none"
	TextDecorationUnderline   TextDecoration = "underline"
	TextDecorationLineThrough TextDecoration = "line-through"
)

// BaselineShift moves text up or down as a fraction of the font ascent.
type BaselineShift float32

const (
	BaselineShiftNone        BaselineShift = 0
	BaselineShiftSuperscript BaselineShift = 0.5
	BaselineShiftSubscript   BaselineShift = -0.5
)

// String returns the string representation of the shift.
func (b BaselineShift) String() string {
	switch b {
	case BaselineShiftNone:
		return "none"
	case BaselineShiftSuperscript:
		return "superscript"
	case BaselineShiftSubscript:
		return "subscript"
	default:
		return fmt.Sprintf("%g", float32(b))
	}
}

// Style is a bundle of optional style facets. A nil facet is unset and
// leaves whatever the renderer already applies untouched.
type Style struct {
	Color          *Color          `json:"color,omitempty" yaml:"color,omitempty"`
	FontSizeScale  *float32        `json:"font_size_scale,omitempty" yaml:"font_size_scale,omitempty"` // relative to the ambient size
	FontSize       *float32        `json:"font_size,omitempty" yaml:"font_size,omitempty"`             // absolute, in sp
	FontWeight     *FontWeight     `json:"font_weight,omitempty" yaml:"font_weight,omitempty"`
	FontStyle      *FontStyle      `json:"font_style,omitempty" yaml:"font_style,omitempty"`
	TextDecoration *TextDecoration `json:"text_decoration,omitempty" yaml:"text_decoration,omitempty"`
	BaselineShift  *BaselineShift  `json:"baseline_shift,omitempty" yaml:"baseline_shift,omitempty"`
}

// WithColor returns a copy of s with the foreground color set.
func (s Style) WithColor(c Color) Style {
	s.Color = &c
	return s
}

// WithFontSizeScale returns a copy of s with a relative font size.
func (s Style) WithFontSizeScale(scale float32) Style {
	s.FontSizeScale = &scale
	return s
}

// WithFontSize returns a copy of s with an absolute font size in sp.
func (s Style) WithFontSize(sp float32) Style {
	s.FontSize = &sp
	return s
}

// WithFontWeight returns a copy of s with the font weight set.
func (s Style) WithFontWeight(w FontWeight) Style {
	s.FontWeight = &w
	return s
}

// WithFontStyle returns a copy of s with the font slant set.
func (s Style) WithFontStyle(fs FontStyle) Style {
	s.FontStyle = &fs
	return s
}

// WithTextDecoration returns a copy of s with the decoration set.
func (s Style) WithTextDecoration(d TextDecoration) Style {
	s.TextDecoration = &d
	return s
}

// WithBaselineShift returns a copy of s with the baseline shift set.
func (s Style) WithBaselineShift(b BaselineShift) Style {
	s.BaselineShift = &b
	return s
}

// Clone returns a copy of s that shares no facet pointers with it.
func (s Style) Clone() Style {
	return Style{
		Color:          clonePtr(s.Color),
		FontSizeScale:  clonePtr(s.FontSizeScale),
		FontSize:       clonePtr(s.FontSize),
		FontWeight:     clonePtr(s.FontWeight),
		FontStyle:      clonePtr(s.FontStyle),
		TextDecoration: clonePtr(s.TextDecoration),
		BaselineShift:  clonePtr(s.BaselineShift),
	}
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// IsEmpty returns true if no facet is set.
func (s Style) IsEmpty() bool {
	return s.Color == nil &&
		s.FontSizeScale == nil &&
		s.FontSize == nil &&
		s.FontWeight == nil &&
		s.FontStyle == nil &&
		s.TextDecoration == nil &&
		s.BaselineShift == nil
}

// ResolvedFontSize returns the font size in sp this style asks for, given the
// ambient base size of the enclosing text. An absolute size wins over a scale.
// The second result is false when the style leaves the size alone.
func (s Style) ResolvedFontSize(base float32) (float32, bool) {
	switch {
	case s.FontSize != nil:
		return *s.FontSize, true
	case s.FontSizeScale != nil:
		return base * *s.FontSizeScale, true
	default:
		return 0, false
	}
}

// String returns a compact, space separated list of the set facets.
func (s Style) String() string {
	var parts []string
	if s.Color != nil {
		parts = append(parts, "color="+s.Color.String())
	}
	if s.FontSizeScale != nil {
		parts = append(parts, fmt.Sprintf("font-size-scale=%g", *s.FontSizeScale))
	}
	if s.FontSize != nil {
		parts = append(parts, fmt.Sprintf("font-size=%gsp", *s.FontSize))
	}
	if s.FontWeight != nil {
		parts = append(parts, "font-weight="+s.FontWeight.String())
	}
	if s.FontStyle != nil {
		parts = append(parts, "font-style="+string(*s.FontStyle))
	}
	if s.TextDecoration != nil {
		parts = append(parts, "text-decoration="+string(*s.TextDecoration))
	}
	if s.BaselineShift != nil {
		parts = append(parts, "baseline-shift="+s.BaselineShift.String())
	}
	if len(parts) == 0 {
		return "(empty)"
	}
	return strings.Join(parts, " ")
}

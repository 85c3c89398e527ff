// Package translate converts marked strings into styled text.
//
// Each recognized marker becomes exactly one style run over the same range,
// in marker order. Hyperlinks additionally produce a styled.URLTag
// annotation holding the link target. Markers that resolve to no style
// (Typeface normal, unknown kinds) are dropped. Overlapping runs are never
// merged.
package translate

import (
	"errors"
	"fmt"

	"github.com/roboco-io/spanstyle/internal/marked"
	"github.com/roboco-io/spanstyle/internal/style"
	"github.com/roboco-io/spanstyle/internal/styled"
)

// DefaultBulletFontSize is the font size in sp given to bullet list items.
const DefaultBulletFontSize float32 = 20

// OffsetPolicy selects how TranslateChecked treats out of range markers.
type OffsetPolicy string

const (
	OffsetsStrict OffsetPolicy = "strict" // reject the whole string
	OffsetsClamp  OffsetPolicy = "clamp"  // clamp offsets into the text
)

// ParseOffsetPolicy parses "strict" or "clamp".
func ParseOffsetPolicy(s string) (OffsetPolicy, error) {
	switch p := OffsetPolicy(s); p {
	case OffsetsStrict, OffsetsClamp:
		return p, nil
	default:
		return "", fmt.Errorf("unknown offset policy %q (want strict or clamp)", s)
	}
}

// Options controls translation.
type Options struct {
	// LinkStyle is applied to hyperlink ranges. An empty style means
	// DefaultLinkStyle, so every link gets exactly one style run.
	LinkStyle style.Style

	// BulletFontSize is the absolute font size in sp for bullet items.
	// Zero means DefaultBulletFontSize.
	BulletFontSize float32

	// Offsets is the policy used by TranslateChecked.
	Offsets OffsetPolicy
}

// DefaultLinkStyle returns the style used for links unless overridden: a
// blue foreground and nothing else.
func DefaultLinkStyle() style.Style {
	return style.Style{}.WithColor(style.ColorBlue)
}

// DefaultOptions returns the default translation options.
func DefaultOptions() Options {
	return Options{
		LinkStyle:      DefaultLinkStyle(),
		BulletFontSize: DefaultBulletFontSize,
		Offsets:        OffsetsStrict,
	}
}

// Translate converts s into styled text. Marker offsets must lie within the
// text; use TranslateChecked for input that has not been validated.
func Translate(s marked.String, opts Options) styled.Text {
	b := styled.NewBuilder()
	b.Append(s.Text)

	for _, m := range s.Markers {
		if link, ok := m.Kind.(marked.Hyperlink); ok {
			b.AddStringAnnotation(styled.URLTag, link.URL, m.Range)
		}
		if st, ok := Resolve(m.Kind, opts); ok {
			b.AddStyle(st, m.Range)
		}
	}

	return b.ToText()
}

// TranslateChecked validates marker ranges before translating. With
// OffsetsStrict any invalid range fails the call with an error wrapping
// marked.ErrInvalidRange; with OffsetsClamp ranges are clamped first.
func TranslateChecked(s marked.String, opts Options) (styled.Text, error) {
	errs := marked.Validate(s)
	if len(errs) == 0 {
		return Translate(s, opts), nil
	}

	switch opts.Offsets {
	case OffsetsClamp:
		return Translate(marked.Clamp(s), opts), nil
	case OffsetsStrict, "":
		return styled.Text{}, fmt.Errorf("%d invalid marker(s): %w", len(errs), errors.Join(errs...))
	default:
		return styled.Text{}, fmt.Errorf("unknown offset policy %q", opts.Offsets)
	}
}

// Resolve maps a marker kind to the style it produces. The second result is
// false when the kind contributes no style.
func Resolve(k marked.Kind, opts Options) (style.Style, bool) {
	var s style.Style

	switch k := k.(type) {
	case marked.ForegroundColor:
		s = s.WithColor(k.Color)
	case marked.RelativeSize:
		s = s.WithFontSizeScale(k.Factor)
	case marked.Strikethrough:
		s = s.WithTextDecoration(style.TextDecorationLineThrough)
	case marked.Underline:
		s = s.WithTextDecoration(style.TextDecorationUnderline)
	case marked.Superscript:
		s = s.WithBaselineShift(style.BaselineShiftSuperscript)
	case marked.Subscript:
		s = s.WithBaselineShift(style.BaselineShiftSubscript)
	case marked.Typeface:
		s = typefaceStyle(k.Style)
	case marked.Hyperlink:
		if opts.LinkStyle.IsEmpty() {
			s = DefaultLinkStyle()
		} else {
			s = opts.LinkStyle.Clone()
		}
	case marked.BulletListItem:
		size := opts.BulletFontSize
		if size <= 0 {
			size = DefaultBulletFontSize
		}
		s = s.WithFontSize(size)
	case marked.Unknown:
		return style.Style{}, false
	default:
		return style.Style{}, false
	}

	if s.IsEmpty() {
		return style.Style{}, false
	}
	return s, true
}

func typefaceStyle(t marked.TypefaceStyle) style.Style {
	var s style.Style
	switch t {
	case marked.TypefaceBold:
		s = s.WithFontWeight(style.FontWeightBold)
	case marked.TypefaceItalic:
		s = s.WithFontStyle(style.FontStyleItalic)
	case marked.TypefaceBoldItalic:
		s = s.WithFontWeight(style.FontWeightBold).WithFontStyle(style.FontStyleItalic)
	}
	return s
}

// Package marked defines the legacy marked-string model: a flat text plus
// style markers covering rune ranges of it, as produced by an upstream
// HTML-to-text parser.
package marked

import (
	"unicode/utf8"

	"github.com/roboco-io/spanstyle/internal/style"
)

// Range is a half-open [Start, End) range of rune offsets.
type Range struct {
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// Len returns the number of runes covered by the range.
func (r Range) Len() int {
	return r.End - r.Start
}

// IsEmpty returns true for a zero-width range.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// Contains reports whether offset falls inside the range.
func (r Range) Contains(offset int) bool {
	return r.Start <= offset && offset < r.End
}

// Intersects reports whether r and o overlap. A zero-width range intersects
// a range that contains its position, or an equal zero-width range.
func (r Range) Intersects(o Range) bool {
	switch {
	case r.IsEmpty() && o.IsEmpty():
		return r.Start == o.Start
	case r.IsEmpty():
		return o.Contains(r.Start)
	case o.IsEmpty():
		return r.Contains(o.Start)
	default:
		return r.Start < o.End && o.Start < r.End
	}
}

// Marker attaches a Kind to a range of the text.
type Marker struct {
	Range
	Kind Kind
}

// String is an immutable text with its markers, in insertion order.
type String struct {
	Text    string
	Markers []Marker
}

// New creates a marked string. The markers slice is copied.
func New(text string, markers ...Marker) String {
	ms := String{Text: text}
	if len(markers) > 0 {
		ms.Markers = make([]Marker, len(markers))
		copy(ms.Markers, markers)
	}
	return ms
}

// Len returns the length of the text in runes.
func (s String) Len() int {
	return utf8.RuneCountInString(s.Text)
}

// Builder assembles a marked string by appending text runs.
type Builder struct {
	text    []byte
	length  int
	markers []Marker
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Append adds text covered by one marker per given kind.
func (b *Builder) Append(text string, kinds ...Kind) *Builder {
	start := b.length
	b.text = append(b.text, text...)
	b.length += utf8.RuneCountInString(text)
	for _, k := range kinds {
		b.markers = append(b.markers, Marker{
			Range: Range{Start: start, End: b.length},
			Kind:  k,
		})
	}
	return b
}

// Mark adds a marker over an explicit range of the text appended so far.
func (b *Builder) Mark(r Range, k Kind) *Builder {
	b.markers = append(b.markers, Marker{Range: r, Kind: k})
	return b
}

// Build returns the marked string built so far.
func (b *Builder) Build() String {
	return New(string(b.text), b.markers...)
}

// Kind is the closed set of marker kinds. Only types in this package
// implement it.
type Kind interface {
	// Name returns the document name of the kind (e.g., "url", "underline").
	Name() string

	sealed()
}

// Kind names used in marker documents.
const (
	KindForegroundColor = "foreground_color"
	KindRelativeSize    = "relative_size"
	KindStrikethrough   = "strikethrough"
	KindUnderline       = "underline"
	KindSuperscript     = "superscript"
	KindSubscript       = "subscript"
	KindTypeface        = "style"
	KindHyperlink       = "url"
	KindBulletListItem  = "bullet"
)

// ForegroundColor colors the text.
type ForegroundColor struct {
	Color style.Color
}

// RelativeSize scales the font size relative to the surrounding text.
type RelativeSize struct {
	Factor float32
}

// Strikethrough draws a line through the text.
type Strikethrough struct{}

// Underline draws a line under the text.
type Underline struct{}

// Superscript raises the baseline.
type Superscript struct{}

// Subscript lowers the baseline.
type Subscript struct{}

// TypefaceStyle selects bold and/or italic.
type TypefaceStyle int

const (
	TypefaceNormal TypefaceStyle = iota
	TypefaceBold
	TypefaceItalic
	TypefaceBoldItalic
)

// String returns the document name of the typeface style.
func (t TypefaceStyle) String() string {
	switch t {
	case TypefaceNormal:
		return "normal"
	case TypefaceBold:
		return "bold"
	case TypefaceItalic:
		return "italic"
	case TypefaceBoldItalic:
		return "bold_italic"
	default:
		return "unknown"
	}
}

// Typeface applies bold, italic, both, or neither (<b>, <i>, <em>, <strong>).
type Typeface struct {
	Style TypefaceStyle
}

// Hyperlink marks an <a href> link.
type Hyperlink struct {
	URL string
}

// BulletListItem marks an <li> item.
type BulletListItem struct{}

// Unknown is any marker the upstream parser produced that this model does
// not recognize. It carries the original kind name.
type Unknown struct {
	Kind string
}

func (ForegroundColor) Name() string { return KindForegroundColor }
func (RelativeSize) Name() string    { return KindRelativeSize }
func (Strikethrough) Name() string   { return KindStrikethrough }
func (Underline) Name() string       { return KindUnderline }
func (Superscript) Name() string     { return KindSuperscript }
func (Subscript) Name() string       { return KindSubscript }
func (Typeface) Name() string        { return KindTypeface }
func (Hyperlink) Name() string       { return KindHyperlink }
func (BulletListItem) Name() string  { return KindBulletListItem }
func (u Unknown) Name() string       { return u.Kind }

func (ForegroundColor) sealed() {}
func (RelativeSize) sealed()    {}
func (Strikethrough) sealed()   {}
func (Underline) sealed()       {}
func (Superscript) sealed()     {}
func (Subscript) sealed()       {}
func (Typeface) sealed()        {}
func (Hyperlink) sealed()       {}
func (BulletListItem) sealed()  {}
func (Unknown) sealed()         {}

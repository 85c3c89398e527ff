// Package styled defines the immutable styled-text model consumed by the
// rendering layer: a text, ordered style runs, and ordered string
// annotations such as link targets.
package styled

import (
	"unicode/utf8"

	"github.com/roboco-io/spanstyle/internal/marked"
	"github.com/roboco-io/spanstyle/internal/style"
)

// URLTag is the annotation tag carrying hyperlink targets.
const URLTag = "url-link"

// Range is a half-open range of rune offsets.
type Range = marked.Range

// StyleRange applies a style to a range of the text.
type StyleRange struct {
	Range `yaml:",inline"`
	Style style.Style `json:"style" yaml:"style"`
}

// Annotation attaches non-visual metadata to a range of the text.
type Annotation struct {
	Range `yaml:",inline"`
	Tag   string `json:"tag" yaml:"tag"`
	Value string `json:"value" yaml:"value"`
}

// Text is a string with style runs and annotations, each kept in the order
// they were added. Overlapping runs are not merged; a renderer applies them
// in sequence.
type Text struct {
	Text        string       `json:"text" yaml:"text"`
	Styles      []StyleRange `json:"styles" yaml:"styles"`
	Annotations []Annotation `json:"annotations" yaml:"annotations"`
}

// Len returns the length of the text in runes.
func (t Text) Len() int {
	return utf8.RuneCountInString(t.Text)
}

// Substring returns the runes of the text covered by r. Out of range
// offsets are clamped.
func (t Text) Substring(r Range) string {
	runes := []rune(t.Text)
	start := min(max(r.Start, 0), len(runes))
	end := min(max(r.End, start), len(runes))
	return string(runes[start:end])
}

// StringAnnotations returns the annotations with the given tag that
// intersect [start, end), in insertion order.
func (t Text) StringAnnotations(tag string, start, end int) []Annotation {
	query := Range{Start: start, End: end}
	var out []Annotation
	for _, a := range t.Annotations {
		if a.Tag == tag && a.Range.Intersects(query) {
			out = append(out, a)
		}
	}
	return out
}

// LinkAt returns the target of the first link annotation covering offset.
func (t Text) LinkAt(offset int) (string, bool) {
	for _, a := range t.Annotations {
		if a.Tag == URLTag && a.Contains(offset) {
			return a.Value, true
		}
	}
	return "", false
}

// StylesAt returns the styles covering offset in application order.
func (t Text) StylesAt(offset int) []style.Style {
	var out []style.Style
	for _, s := range t.Styles {
		if s.Contains(offset) {
			out = append(out, s.Style)
		}
	}
	return out
}

// Builder accumulates text, styles and annotations for a Text.
type Builder struct {
	text        []byte
	length      int
	styles      []StyleRange
	annotations []Annotation
}

// NewBuilder creates an empty builder.
func NewBuilder() *Builder {
	return &Builder{
		styles:      make([]StyleRange, 0),
		annotations: make([]Annotation, 0),
	}
}

// Append adds unstyled text at the end.
func (b *Builder) Append(text string) {
	b.text = append(b.text, text...)
	b.length += utf8.RuneCountInString(text)
}

// Len returns the rune length of the text appended so far.
func (b *Builder) Len() int {
	return b.length
}

// AddStyle applies s to r.
func (b *Builder) AddStyle(s style.Style, r Range) {
	b.styles = append(b.styles, StyleRange{Range: r, Style: s})
}

// AddStringAnnotation attaches a tagged string value to r.
func (b *Builder) AddStringAnnotation(tag, value string, r Range) {
	b.annotations = append(b.annotations, Annotation{Range: r, Tag: tag, Value: value})
}

// ToText returns the built text. Later changes to the builder do not affect
// the result.
func (b *Builder) ToText() Text {
	t := Text{
		Text:        string(b.text),
		Styles:      make([]StyleRange, len(b.styles)),
		Annotations: make([]Annotation, len(b.annotations)),
	}
	copy(t.Styles, b.styles)
	copy(t.Annotations, b.annotations)
	return t
}

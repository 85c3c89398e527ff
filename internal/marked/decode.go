package marked

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roboco-io/spanstyle/internal/style"
)

// ErrInvalidMarker is wrapped when a marker document entry cannot be decoded.
var ErrInvalidMarker = errors.New("invalid marker")

// document is the YAML (or JSON) form of a marked string:
//
//	text: "Hi there"
//	markers:
//	  - {kind: url, start: 0, end: 2, url: "https://example.com"}
//	  - {kind: foreground_color, start: 3, end: 8, color: teal}
type document struct {
	Text    string      `yaml:"text"`
	Markers []markerDoc `yaml:"markers"`
}

type markerDoc struct {
	Kind   string    `yaml:"kind"`
	Start  int       `yaml:"start"`
	End    int       `yaml:"end"`
	Color  yaml.Node `yaml:"color"`
	Factor float32   `yaml:"factor"`
	Style  string    `yaml:"style"`
	URL    string    `yaml:"url"`
}

// Parse decodes a marked string document from YAML or JSON bytes.
func Parse(data []byte) (String, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads a marked string document from r. Marker kinds this package
// does not know decode to Unknown rather than failing.
//
// Start and end count runes (Unicode code points), not UTF-16 code units.
// Producers that take offsets from UTF-16 strings, such as span positions
// on Android or JavaScript string indexes, must convert them first: in
// "😀ab" the "b" is rune 2 but UTF-16 unit 3, and unconverted offsets past
// a non-BMP character fail validation or land on the wrong text.
func Decode(r io.Reader) (String, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return String{}, fmt.Errorf("empty marker document")
		}
		return String{}, fmt.Errorf("failed to parse marker document: %w", err)
	}

	markers := make([]Marker, 0, len(doc.Markers))
	for i, md := range doc.Markers {
		kind, err := md.kind()
		if err != nil {
			return String{}, fmt.Errorf("markers[%d]: %w", i, err)
		}
		markers = append(markers, Marker{
			Range: Range{Start: md.Start, End: md.End},
			Kind:  kind,
		})
	}

	return New(doc.Text, markers...), nil
}

func (md markerDoc) kind() (Kind, error) {
	switch strings.ToLower(md.Kind) {
	case KindForegroundColor:
		c, err := decodeColor(md.Color)
		if err != nil {
			return nil, err
		}
		return ForegroundColor{Color: c}, nil
	case KindRelativeSize:
		if md.Factor <= 0 {
			return nil, fmt.Errorf("%w: relative_size requires a positive factor, got %g", ErrInvalidMarker, md.Factor)
		}
		return RelativeSize{Factor: md.Factor}, nil
	case KindStrikethrough:
		return Strikethrough{}, nil
	case KindUnderline:
		return Underline{}, nil
	case KindSuperscript:
		return Superscript{}, nil
	case KindSubscript:
		return Subscript{}, nil
	case KindTypeface:
		ts, err := parseTypefaceStyle(md.Style)
		if err != nil {
			return nil, err
		}
		return Typeface{Style: ts}, nil
	case KindHyperlink:
		return Hyperlink{URL: md.URL}, nil
	case KindBulletListItem:
		return BulletListItem{}, nil
	case "":
		return nil, fmt.Errorf("%w: kind is required", ErrInvalidMarker)
	default:
		return Unknown{Kind: md.Kind}, nil
	}
}

// decodeColor accepts a color string (see style.ParseColor) or a
// 0xAARRGGBB integer.
func decodeColor(n yaml.Node) (style.Color, error) {
	if n.Kind == 0 {
		return style.Color{}, fmt.Errorf("%w: foreground_color requires a color", ErrInvalidMarker)
	}
	if n.Kind != yaml.ScalarNode {
		return style.Color{}, fmt.Errorf("%w: color must be a scalar", ErrInvalidMarker)
	}
	if n.Tag == "!!int" {
		v, err := strconv.ParseUint(n.Value, 0, 32)
		if err != nil {
			return style.Color{}, fmt.Errorf("%w: invalid color %s: %v", ErrInvalidMarker, n.Value, err)
		}
		return style.ColorFromARGB(uint32(v)), nil
	}
	c, err := style.ParseColor(n.Value)
	if err != nil {
		return style.Color{}, fmt.Errorf("%w: %v", ErrInvalidMarker, err)
	}
	return c, nil
}

func parseTypefaceStyle(s string) (TypefaceStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "0", "":
		return TypefaceNormal, nil
	case "bold", "1":
		return TypefaceBold, nil
	case "italic", "2":
		return TypefaceItalic, nil
	case "bold_italic", "bolditalic", "3":
		return TypefaceBoldItalic, nil
	default:
		return TypefaceNormal, fmt.Errorf("%w: unknown typeface style %q", ErrInvalidMarker, s)
	}
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/roboco-io/spanstyle/internal/marked"
	"github.com/roboco-io/spanstyle/internal/style"
	"github.com/roboco-io/spanstyle/internal/styled"
	"github.com/roboco-io/spanstyle/internal/translate"
	"github.com/spf13/cobra"
)

var kindsCmd = &cobra.Command{
	Use:   "kinds",
	Short: "지원하는 마커 종류 목록",
	Long: `마커 문서에서 사용할 수 있는 마커 종류와 각 종류가 만드는 스타일을 표시합니다.

표시되는 효과는 현재 설정(링크 스타일, 글머리 기호 크기)을 반영합니다.
알 수 없는 종류는 오류 없이 무시됩니다.`,
	RunE: runKinds,
}

func init() {
	rootCmd.AddCommand(kindsCmd)
}

type kindInfo struct {
	Name        string
	Example     string
	Sample      marked.Kind
	Description string
}

var kindInfos = []kindInfo{
	{marked.KindForegroundColor, `color: "#d93025"`, marked.ForegroundColor{Color: style.Color{R: 0xd9, G: 0x30, B: 0x25, A: 0xff}}, "글자 색상"},
	{marked.KindRelativeSize, "factor: 1.5", marked.RelativeSize{Factor: 1.5}, "주변 크기 대비 배율"},
	{marked.KindStrikethrough, "", marked.Strikethrough{}, "취소선"},
	{marked.KindUnderline, "", marked.Underline{}, "밑줄"},
	{marked.KindSuperscript, "", marked.Superscript{}, "위 첨자"},
	{marked.KindSubscript, "", marked.Subscript{}, "아래 첨자"},
	{marked.KindTypeface, "style: normal", marked.Typeface{Style: marked.TypefaceNormal}, "기본 글꼴"},
	{marked.KindTypeface, "style: bold", marked.Typeface{Style: marked.TypefaceBold}, "굵게"},
	{marked.KindTypeface, "style: italic", marked.Typeface{Style: marked.TypefaceItalic}, "기울임"},
	{marked.KindTypeface, "style: bold_italic", marked.Typeface{Style: marked.TypefaceBoldItalic}, "굵은 기울임"},
	{marked.KindHyperlink, `url: "https://example.com"`, marked.Hyperlink{URL: "https://example.com"}, "링크 스타일 + url-link 주석"},
	{marked.KindBulletListItem, "", marked.BulletListItem{}, "글머리 기호 크기"},
	{"(기타)", "", marked.Unknown{Kind: "blink"}, "무시됨"},
}

func runKinds(cmd *cobra.Command, args []string) error {
	cfg, err := loadTranslateConfig()
	if err != nil {
		return err
	}
	opts, err := cfg.ToOptions()
	if err != nil {
		return fmt.Errorf("설정 오류: %w", err)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "종류\t예시\t효과\t설명")
	fmt.Fprintln(w, "----\t----\t----\t----")

	for _, k := range kindInfos {
		example := k.Example
		if example == "" {
			example = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", k.Name, example, describeEffect(k.Sample, opts), k.Description)
	}

	return w.Flush()
}

// describeEffect translates a one character string carrying k and reports
// what came out of it.
func describeEffect(k marked.Kind, opts translate.Options) string {
	s := marked.New("x", marked.Marker{Range: marked.Range{Start: 0, End: 1}, Kind: k})
	text := translate.Translate(s, opts)

	effect := "(없음)"
	if len(text.Styles) > 0 {
		effect = text.Styles[0].Style.String()
	}
	for _, a := range text.StringAnnotations(styled.URLTag, 0, 1) {
		effect += " +" + a.Tag
	}
	return effect
}

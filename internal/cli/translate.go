package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/roboco-io/spanstyle/internal/config"
	"github.com/roboco-io/spanstyle/internal/marked"
	"github.com/roboco-io/spanstyle/internal/styled"
	"github.com/roboco-io/spanstyle/internal/translate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"pkt.systems/pslog"
)

var translateCmd = &cobra.Command{
	Use:   "translate <file>",
	Short: "마커 문서를 스타일 텍스트로 변환",
	Long: `YAML 또는 JSON 마커 문서를 스타일 텍스트로 변환합니다.

파일 이름으로 "-"를 주면 표준 입력에서 읽습니다.

마커 문서 형식:
  text: "Tap here"
  markers:
    - {start: 4, end: 8, kind: url, url: "https://example.com"}
    - {start: 0, end: 3, kind: style, style: bold}

출력 형식:
  json    스타일 범위와 주석 (기본값)
  yaml    JSON과 같은 구조의 YAML
  text    사람이 읽기 좋은 요약

예시:
  spanstyle translate message.yaml
  spanstyle translate message.json -f text
  cat message.yaml | spanstyle translate - --offsets clamp`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

var (
	translateOutput  string
	translateFormat  string
	translateCompact bool
	translateOffsets string
	translateVerbose bool
	translateQuiet   bool
)

func init() {
	translateCmd.Flags().StringVarP(&translateOutput, "output", "o", "", "출력 파일 경로 (기본: stdout)")
	translateCmd.Flags().StringVarP(&translateFormat, "format", "f", "", "출력 형식 (json, yaml, text; 기본: 설정 파일)")
	translateCmd.Flags().BoolVar(&translateCompact, "compact", false, "JSON 들여쓰기 없이 출력")
	translateCmd.Flags().StringVar(&translateOffsets, "offsets", "", "범위 검사 정책 (strict, clamp; 기본: 설정 파일)")
	translateCmd.Flags().BoolVarP(&translateVerbose, "verbose", "v", false, "상세 로그 출력")
	translateCmd.Flags().BoolVarP(&translateQuiet, "quiet", "q", false, "완료 메시지 숨김")

	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	inputPath := args[0]
	logger := pslog.Ctx(cmd.Context()).With("input", inputPath)
	verbose := translateVerbose || config.GetEnvBool("SPANSTYLE_VERBOSE")

	cfg, err := loadTranslateConfig()
	if err != nil {
		return err
	}

	opts, err := cfg.ToOptions()
	if err != nil {
		return fmt.Errorf("설정 오류: %w", err)
	}

	data, err := readInput(cmd, inputPath)
	if err != nil {
		return err
	}

	s, err := marked.Parse(data)
	if err != nil {
		return fmt.Errorf("마커 문서 파싱 실패: %w", err)
	}
	if verbose {
		logger.Info("marker document parsed", "runes", s.Len(), "markers", len(s.Markers), "offsets", opts.Offsets)
	}

	if opts.Offsets == translate.OffsetsClamp {
		for _, e := range marked.Validate(s) {
			logger.Warn("marker clamped", "err", e)
		}
	}

	text, err := translate.TranslateChecked(s, opts)
	if err != nil {
		return fmt.Errorf("변환 실패: %w", err)
	}
	if verbose {
		logger.Info("translated", "styles", len(text.Styles), "annotations", len(text.Annotations))
	}

	output, err := formatOutput(text, cfg.Output.Format, cfg.Output.Pretty, cfg.BaseFontSize)
	if err != nil {
		return err
	}

	if translateOutput == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), output)
		return err
	}

	if err := os.WriteFile(translateOutput, []byte(output), 0644); err != nil {
		return fmt.Errorf("출력 파일 저장 실패: %w", err)
	}
	if !translateQuiet {
		logger.Info("output written", "path", translateOutput, "format", cfg.Output.Format)
	}
	return nil
}

// loadTranslateConfig loads the config file and applies command line
// overrides on top of it.
func loadTranslateConfig() (*config.Config, error) {
	loader, err := newLoader()
	if err != nil {
		return nil, fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}

	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("설정 로드 실패: %w", err)
	}

	if translateFormat != "" {
		cfg.Output.Format = translateFormat
	}
	if translateCompact {
		cfg.Output.Pretty = false
	}
	if translateOffsets != "" {
		cfg.Offsets = translateOffsets
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("설정 오류: %w", err)
	}
	return cfg, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("표준 입력 읽기 실패: %w", err)
		}
		return data, nil
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("파일을 찾을 수 없습니다: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("파일 읽기 실패: %w", err)
	}
	return data, nil
}

func formatOutput(text styled.Text, format string, pretty bool, baseFontSize float32) (string, error) {
	switch format {
	case "json":
		var data []byte
		var err error
		if pretty {
			data, err = json.MarshalIndent(text, "", "  ")
		} else {
			data, err = json.Marshal(text)
		}
		if err != nil {
			return "", fmt.Errorf("JSON 변환 실패: %w", err)
		}
		return string(data) + "\n", nil

	case "yaml":
		data, err := yaml.Marshal(text)
		if err != nil {
			return "", fmt.Errorf("YAML 변환 실패: %w", err)
		}
		return string(data), nil

	case "text":
		return formatAsText(text, baseFontSize), nil

	default:
		return "", fmt.Errorf("지원하지 않는 출력 형식: %s", format)
	}
}

// formatAsText renders one line per style run and annotation. Runs that
// change the font size also show the size resolved against baseFontSize.
func formatAsText(text styled.Text, baseFontSize float32) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "텍스트: %q\n", text.Text)
	fmt.Fprintf(&sb, "길이: %d\n", text.Len())

	fmt.Fprintf(&sb, "\n스타일 (%d):\n", len(text.Styles))
	w := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, sr := range text.Styles {
		line := fmt.Sprintf("  [%d,%d)\t%q\t%s", sr.Start, sr.End, text.Substring(sr.Range), sr.Style)
		if size, ok := sr.Style.ResolvedFontSize(baseFontSize); ok {
			line += fmt.Sprintf(" (%gsp)", size)
		}
		fmt.Fprintln(w, line)
	}
	w.Flush()

	fmt.Fprintf(&sb, "\n주석 (%d):\n", len(text.Annotations))
	w = tabwriter.NewWriter(&sb, 0, 0, 2, ' ', 0)
	for _, a := range text.Annotations {
		fmt.Fprintf(w, "  [%d,%d)\t%s\t%s\n", a.Start, a.End, a.Tag, a.Value)
	}
	w.Flush()

	return sb.String()
}

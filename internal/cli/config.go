package cli

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/roboco-io/spanstyle/internal/config"
	"github.com/roboco-io/spanstyle/internal/style"
	"github.com/roboco-io/spanstyle/internal/translate"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "설정 관리",
	Long: `spanstyle 설정을 관리합니다.

설정 파일 위치: ~/.spanstyle/config.yaml

하위 명령:
  show    현재 설정 표시
  init    기본 설정 파일 생성
  set     설정 값 변경
  path    설정 파일 경로 표시`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "현재 설정 표시",
	Long: `현재 적용된 설정을 표시합니다.

환경 변수가 설정되어 있으면 해당 값이 적용됩니다.
설정 파일이 없으면 기본값이 표시됩니다.`,
	RunE: runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "기본 설정 파일 생성",
	Long: `기본 설정 파일을 ~/.spanstyle/config.yaml에 생성합니다.

이미 설정 파일이 있는 경우 오류가 발생합니다.
기존 파일을 덮어쓰려면 --force 플래그를 사용하세요.`,
	RunE: runConfigInit,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "설정 값 변경",
	Long: `설정 값을 변경합니다.

지원하는 키:
  link.color          링크 색상 (#rrggbb, #aarrggbb, 색상 이름, 빈 값은 색상 없음; 밑줄 필요)
  link.underline      링크 밑줄 (true, false)
  bullet_font_size    글머리 기호 글꼴 크기 (sp, 0보다 큼)
  base_font_size      상대 크기 계산 기준 글꼴 크기 (sp, 0보다 큼)
  offsets             범위 검사 정책 (strict, clamp)
  output.format       출력 형식 (json, yaml, text)
  output.pretty       JSON 들여쓰기 (true, false)

예시:
  spanstyle config set link.color "#1a73e8"
  spanstyle config set offsets clamp`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "설정 파일 경로 표시",
	Run: func(cmd *cobra.Command, args []string) {
		loader, err := newLoader()
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "오류: %v\n", err)
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), loader.ConfigPath())
	},
}

var configForce bool

// configKeys lists the keys accepted by config set, in display order.
var configKeys = []string{
	"link.color",
	"link.underline",
	"bullet_font_size",
	"base_font_size",
	"offsets",
	"output.format",
	"output.pretty",
}

func init() {
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "기존 설정 파일 덮어쓰기")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configPathCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	out := cmd.OutOrStdout()

	// Show config file status
	if loader.Exists() {
		fmt.Fprintf(out, "설정 파일: %s\n\n", loader.ConfigPath())
	} else {
		fmt.Fprintf(out, "설정 파일: (기본값 사용)\n\n")
	}

	// Display as YAML
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("설정 출력 실패: %w", err)
	}

	fmt.Fprintln(out, string(data))

	// Show environment variable overrides
	fmt.Fprintln(out, "환경 변수:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	envVars := []struct {
		key   string
		desc  string
		value string
	}{
		{"SPANSTYLE_OFFSETS", "범위 검사 정책", os.Getenv("SPANSTYLE_OFFSETS")},
		{"SPANSTYLE_FORMAT", "출력 형식", os.Getenv("SPANSTYLE_FORMAT")},
		{"SPANSTYLE_LINK_COLOR", "링크 색상", os.Getenv("SPANSTYLE_LINK_COLOR")},
		{"SPANSTYLE_VERBOSE", "상세 로그", os.Getenv("SPANSTYLE_VERBOSE")},
	}

	for _, ev := range envVars {
		status := "(미설정)"
		if ev.value != "" {
			status = ev.value
		}
		fmt.Fprintf(w, "  %s\t%s\t%s\n", ev.key, ev.desc, status)
	}
	return w.Flush()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}

	if loader.Exists() && !configForce {
		return fmt.Errorf("설정 파일이 이미 존재합니다: %s\n덮어쓰려면 --force 플래그를 사용하세요", loader.ConfigPath())
	}

	if err := loader.Save(config.DefaultConfig()); err != nil {
		return fmt.Errorf("설정 파일 생성 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 파일 생성됨: %s\n", loader.ConfigPath())
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := args[0]
	value := args[1]

	loader, err := newLoader()
	if err != nil {
		return fmt.Errorf("설정 로더 초기화 실패: %w", err)
	}

	cfg, err := loader.LoadRaw()
	if err != nil {
		return fmt.Errorf("설정 로드 실패: %w", err)
	}

	if err := applySetting(cfg, key, value); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("설정 오류: %w", err)
	}

	if err := loader.Save(cfg); err != nil {
		return fmt.Errorf("설정 저장 실패: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "설정 변경됨: %s = %s\n", key, value)
	return nil
}

// applySetting validates value and stores it under key.
func applySetting(cfg *config.Config, key, value string) error {
	switch key {
	case "link.color":
		if value != "" {
			if _, err := style.ParseColor(value); err != nil {
				return fmt.Errorf("유효하지 않은 색상: %s", value)
			}
		}
		cfg.Link.Color = value

	case "link.underline":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("유효하지 않은 불리언 값: %s", value)
		}
		cfg.Link.Underline = b

	case "bullet_font_size", "base_font_size":
		size, err := parseFontSize(value)
		if err != nil {
			return err
		}
		if key == "bullet_font_size" {
			cfg.BulletFontSize = size
		} else {
			cfg.BaseFontSize = size
		}

	case "offsets":
		if _, err := translate.ParseOffsetPolicy(value); err != nil {
			return fmt.Errorf("유효하지 않은 범위 정책: %s (지원: strict, clamp)", value)
		}
		cfg.Offsets = value

	case "output.format":
		if !contains(config.OutputFormats, value) {
			return fmt.Errorf("유효하지 않은 출력 형식: %s (지원: %s)", value, strings.Join(config.OutputFormats, ", "))
		}
		cfg.Output.Format = value

	case "output.pretty":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("유효하지 않은 불리언 값: %s", value)
		}
		cfg.Output.Pretty = b

	default:
		return fmt.Errorf("알 수 없는 설정 키: %s\n지원하는 키: %s", key, strings.Join(configKeys, ", "))
	}

	return nil
}

func parseFontSize(value string) (float32, error) {
	size, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return 0, fmt.Errorf("유효하지 않은 글꼴 크기: %s", value)
	}
	if size <= 0 {
		return 0, fmt.Errorf("글꼴 크기는 0보다 커야 합니다: %g", size)
	}
	return float32(size), nil
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

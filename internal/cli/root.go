// Package cli implements the spanstyle command line interface.
package cli

import (
	"context"
	"fmt"

	"github.com/roboco-io/spanstyle/internal/config"
	"github.com/spf13/cobra"
)

var version = "dev"

// configFile overrides the default config location for every command.
var configFile string

var rootCmd = &cobra.Command{
	Use:   "spanstyle",
	Short: "마커 문자열을 스타일 텍스트로 변환",
	Long: `spanstyle은 HTML 파서가 만든 마커 문자열(텍스트 + 색상, 굵게, 밑줄, 링크 등의 범위 마커)을
UI 렌더링 계층이 사용하는 스타일 텍스트(스타일 범위 + 링크 주석)로 변환합니다.

입력은 YAML 또는 JSON 마커 문서이며, 출력은 JSON, YAML 또는 텍스트 요약입니다.

예시:
  spanstyle translate message.yaml
  spanstyle translate message.json -f yaml -o styled.yaml
  spanstyle kinds`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "버전 정보 표시",
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "spanstyle %s\n", version)
		return err
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "설정 파일 경로 (기본: ~/.spanstyle/config.yaml)")
	rootCmd.AddCommand(versionCmd)
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func newLoader() (*config.Loader, error) {
	if configFile != "" {
		return config.NewLoaderWithPath(configFile), nil
	}
	return config.NewLoader()
}

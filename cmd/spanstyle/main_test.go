package main

import (
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/roboco-io/spanstyle/internal/marked"
)

// binaryName returns the appropriate binary name for the current OS
func binaryName() string {
	if runtime.GOOS == "windows" {
		return "spanstyle_test.exe"
	}
	return "spanstyle_test"
}

// buildTestBinary builds the test binary and returns a cleanup function
func buildTestBinary(t *testing.T) (string, func()) {
	t.Helper()
	binName := binaryName()
	buildCmd := exec.Command("go", "build", "-o", binName, ".")
	if out, err := buildCmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build binary: %v\n%s", err, out)
	}
	return binName, func() { os.Remove(binName) }
}

// command runs the binary against an isolated home directory so a user
// config file cannot leak into the test.
func command(t *testing.T, binPath string, args ...string) *exec.Cmd {
	t.Helper()
	cmd := exec.Command("./"+binPath, args...)
	cmd.Env = append(os.Environ(), "HOME="+t.TempDir(), "SPANSTYLE_OFFSETS=", "SPANSTYLE_FORMAT=", "SPANSTYLE_LINK_COLOR=")
	return cmd
}

type styledDoc struct {
	Text   string `json:"text"`
	Styles []struct {
		Start int            `json:"start"`
		End   int            `json:"end"`
		Style map[string]any `json:"style"`
	} `json:"styles"`
	Annotations []struct {
		Start int    `json:"start"`
		End   int    `json:"end"`
		Tag   string `json:"tag"`
		Value string `json:"value"`
	} `json:"annotations"`
}

func TestTestdataFixtures(t *testing.T) {
	tests := []struct {
		file        string
		markers     int
		wantInvalid int
	}{
		{"link.yaml", 3, 0},
		{"out_of_range.json", 2, 1},
	}

	for _, tc := range tests {
		t.Run(tc.file, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join("testdata", tc.file))
			if err != nil {
				t.Fatalf("fixture missing: %v", err)
			}
			s, err := marked.Parse(data)
			if err != nil {
				t.Fatalf("fixture does not parse: %v", err)
			}
			if len(s.Markers) != tc.markers {
				t.Errorf("expected %d markers, got %d", tc.markers, len(s.Markers))
			}
			if errs := marked.Validate(s); len(errs) != tc.wantInvalid {
				t.Errorf("expected %d invalid markers, got %v", tc.wantInvalid, errs)
			}
		})
	}
}

func TestTranslateCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	input := filepath.Join("testdata", "link.yaml")
	output, err := command(t, binPath, "translate", input).Output()
	if err != nil {
		t.Fatalf("translate command failed: %v", err)
	}

	var doc styledDoc
	if err := json.Unmarshal(output, &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, output)
	}

	if doc.Text != "Tap here for more" {
		t.Errorf("unexpected text %q", doc.Text)
	}
	if len(doc.Styles) != 3 {
		t.Fatalf("expected 3 styles, got %d: %s", len(doc.Styles), output)
	}
	if doc.Styles[0].Style["color"] != "#ff0000ff" {
		t.Errorf("expected blue link color, got %v", doc.Styles[0].Style)
	}
	if doc.Styles[1].Style["font_weight"] == nil {
		t.Errorf("expected bold second style, got %v", doc.Styles[1].Style)
	}
	if len(doc.Annotations) != 1 || doc.Annotations[0].Value != "https://example.com/more" {
		t.Errorf("unexpected annotations %+v", doc.Annotations)
	}
}

func TestTranslateCommand_Formats(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	input := filepath.Join("testdata", "link.yaml")

	tests := []struct {
		name       string
		args       []string
		wantOutput []string
	}{
		{
			name:       "yaml",
			args:       []string{"translate", input, "-f", "yaml"},
			wantOutput: []string{"text: Tap here for more", "tag: url-link"},
		},
		{
			name:       "text",
			args:       []string{"translate", input, "-f", "text"},
			wantOutput: []string{"\"here\"", "font-size-scale=0.75 (12sp)", "https://example.com/more"},
		},
		{
			name:       "compact json",
			args:       []string{"translate", input, "--compact"},
			wantOutput: []string{`{"text":"Tap here for more",`},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output, err := command(t, binPath, tc.args...).Output()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			for _, want := range tc.wantOutput {
				if !strings.Contains(string(output), want) {
					t.Errorf("output should contain %q, got: %s", want, output)
				}
			}
		})
	}
}

func TestTranslateCommand_Offsets(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	input := filepath.Join("testdata", "out_of_range.json")

	t.Run("strict rejects", func(t *testing.T) {
		output, err := command(t, binPath, "translate", input).CombinedOutput()
		if err == nil {
			t.Fatalf("expected error, got: %s", output)
		}
		if !strings.Contains(string(output), "markers[1]") {
			t.Errorf("error should name the offending marker, got: %s", output)
		}
	})

	t.Run("clamp keeps going", func(t *testing.T) {
		output, err := command(t, binPath, "translate", input, "--offsets", "clamp").Output()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var doc styledDoc
		if err := json.Unmarshal(output, &doc); err != nil {
			t.Fatalf("output is not JSON: %v\n%s", err, output)
		}
		if len(doc.Styles) != 2 || doc.Styles[1].End != 5 {
			t.Errorf("expected second style clamped to 5, got %+v", doc.Styles)
		}
	})
}

func TestTranslateCommand_Stdin(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	cmd := command(t, binPath, "translate", "-", "--compact")
	cmd.Stdin = strings.NewReader(`{"text": "ab", "markers": [{"start": 0, "end": 2, "kind": "strikethrough"}]}`)
	output, err := cmd.Output()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(output), `"text_decoration":"line-through"`) {
		t.Errorf("expected strikethrough, got: %s", output)
	}
}

func TestTranslateCommand_OutputFile(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	outPath := filepath.Join(t.TempDir(), "styled.yaml")
	input := filepath.Join("testdata", "link.yaml")
	if output, err := command(t, binPath, "translate", input, "-f", "yaml", "-o", outPath, "-q").CombinedOutput(); err != nil {
		t.Fatalf("unexpected error: %v\noutput: %s", err, output)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if !strings.Contains(string(data), "value: https://example.com/more") {
		t.Errorf("unexpected output file:\n%s", data)
	}
}

func TestTranslateCommand_NonExistent(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	if output, err := command(t, binPath, "translate", "nonexistent.yaml").CombinedOutput(); err == nil {
		t.Errorf("expected error, got: %s", output)
	}
}

func TestKindsCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	output, err := command(t, binPath, "kinds").CombinedOutput()
	if err != nil {
		t.Fatalf("unexpected error: %v\noutput: %s", err, output)
	}

	kinds := []string{"foreground_color", "relative_size", "strikethrough", "underline", "superscript", "subscript", "style", "url", "bullet"}
	for _, k := range kinds {
		if !strings.Contains(string(output), k) {
			t.Errorf("output should contain kind %q, got: %s", k, output)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	output, err := command(t, binPath, "version").CombinedOutput()
	if err != nil {
		t.Errorf("unexpected error: %v\noutput: %s", err, output)
	}

	if !strings.Contains(string(output), "spanstyle dev") {
		t.Errorf("output should contain 'spanstyle dev', got: %s", output)
	}
}

func TestConfigCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	t.Run("config show", func(t *testing.T) {
		output, err := command(t, binPath, "config", "show").CombinedOutput()
		if err != nil {
			t.Errorf("unexpected error: %v\noutput: %s", err, output)
		}
		if !strings.Contains(string(output), "bullet_font_size") {
			t.Errorf("output should contain 'bullet_font_size', got: %s", output)
		}
	})

	t.Run("config path", func(t *testing.T) {
		output, err := command(t, binPath, "config", "path").CombinedOutput()
		if err != nil {
			t.Errorf("unexpected error: %v\noutput: %s", err, output)
		}
		if !strings.Contains(string(output), "config.yaml") {
			t.Errorf("output should contain 'config.yaml', got: %s", output)
		}
	})
}

func TestHelpCommand(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	output, err := command(t, binPath, "--help").CombinedOutput()
	if err != nil {
		t.Errorf("unexpected error: %v\noutput: %s", err, output)
	}

	expectedStrings := []string{"spanstyle", "translate", "kinds", "config"}
	for _, s := range expectedStrings {
		if !strings.Contains(string(output), s) {
			t.Errorf("output should contain %q, got: %s", s, output)
		}
	}
}

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/lottiedoc/pkg/errors"
	"github.com/matzehuels/lottiedoc/pkg/render"
)

func TestBuildWritesNextToInput(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir, "scene.json", scene)

	if _, err := runCLI(t, "build", input); err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "scene.xml"))
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(string(data), render.Header) {
		t.Errorf("output does not start with the xml header:\n%.100s", data)
	}
}

func TestBuildNeverOverwritesInput(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir, "scene.json", scene)

	if _, err := runCLI(t, "build", "-f", "json,yaml", "--no-cache", input); err != nil {
		t.Fatalf("build: %v", err)
	}
	got, _ := os.ReadFile(input)
	if string(got) != scene {
		t.Error("input scene was overwritten")
	}
	for _, name := range []string{"scene.doc.json", "scene.yaml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
}

func TestBuildStdout(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir, "scene.json", scene)

	out, err := runCLI(t, "build", "-f", "json", "-o", "-", input)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.Contains(out, `"name": "LottieComposition"`) {
		t.Errorf("stdout is not the json document:\n%.200s", out)
	}

	_, err = runCLI(t, "build", "-f", "json,xml", "-o", "-", input)
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("two formats to stdout error = %v", err)
	}
}

func TestBuildExplicitOutput(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir, "scene.json", scene)
	output := filepath.Join(dir, "out", "doc.txt")

	if _, err := runCLI(t, "build", "--compact", "-o", output, input); err != nil {
		t.Fatalf("build: %v", err)
	}
	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if lines := strings.Count(strings.TrimSpace(string(data)), "\n"); lines != 1 {
		t.Errorf("compact output has %d line breaks, want 1", lines)
	}
}

func TestBuildMany(t *testing.T) {
	dir := isolate(t)
	a := writeScene(t, dir, "a.json", scene)
	b := writeScene(t, dir, "b.json", strings.Replace(scene, `"dot"`, `"other"`, 1))
	outDir := filepath.Join(dir, "docs")

	if _, err := runCLI(t, "build", "-j", "2", "-o", outDir, a, b); err != nil {
		t.Fatalf("build: %v", err)
	}
	for _, name := range []string{"a.xml", "b.xml"} {
		if _, err := os.Stat(filepath.Join(outDir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}

	bad := writeScene(t, dir, "bad.json", "{")
	_, err := runCLI(t, "build", "-o", outDir, a, bad)
	if err == nil || !strings.Contains(err.Error(), "1 of 2 scenes failed") {
		t.Errorf("error = %v, want one failure", err)
	}
}

func TestBuildErrors(t *testing.T) {
	dir := isolate(t)
	input := writeScene(t, dir, "scene.json", scene)

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"missing file", []string{"build", filepath.Join(dir, "nope.json")}, errors.ErrCodeNotFound},
		{"bad format", []string{"build", "-f", "pdf", input}, errors.ErrCodeInvalidFormat},
		{"bad indent", []string{"build", "--indent", "40", input}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := runCLI(t, tt.args...); !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
}

func TestOutputBase(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		output  string
		dirMode bool
		want    string
	}{
		{"next to input", "scenes/a.json", "", false, "scenes/a"},
		{"known extension stripped", "a.json", "out/doc.yaml", false, "out/doc"},
		{"unknown extension kept", "a.json", "out/doc.txt", false, "out/doc.txt"},
		{"directory", "scenes/a.json", "docs", true, filepath.Join("docs", "a")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outputBase(tt.input, tt.output, tt.dirMode); got != tt.want {
				t.Errorf("outputBase = %q, want %q", got, tt.want)
			}
		})
	}
}

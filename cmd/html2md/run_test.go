package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestOutputNameFor(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"-", "stdin.md"},
		{"page.html", "page.md"},
		{"docs/guide.htm", "guide.md"},
		{"README", "README.md"},
		{"https://example.com/blog/post.html", "post.md"},
		{"https://example.com/blog/post/", "post.md"},
		{"https://example.com/", "example.com.md"},
		{"https://example.com", "example.com.md"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := outputNameFor(tt.input); got != tt.want {
				t.Errorf("outputNameFor(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsURL(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"https://example.com", true},
		{"http://example.com/page", true},
		{"page.html", false},
		{"ftp://example.com", false},
		{"-", false},
	}

	for _, tt := range tests {
		if got := isURL(tt.input); got != tt.want {
			t.Errorf("isURL(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestResolveSettings_Defaults(t *testing.T) {
	s, err := resolveSettings(&cliFlags{})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.gfm || s.detectLang || s.rendered || s.extractMain {
		t.Errorf("settings = %+v, want all features off", s)
	}
	if s.timeout != defaultFetchTimeout {
		t.Errorf("timeout = %v, want %v", s.timeout, defaultFetchTimeout)
	}
}

func TestResolveSettings_FlagsOverrideConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `output:
  defaultDir: confout
fetch:
  timeout: 5s
extract:
  selector: "div.content"
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	flags := &cliFlags{
		common:  commonFlags{config: path},
		output:  "cliout",
		fetch:   fetchFlags{timeout: "90s"},
		extract: extractFlags{selector: "article"},
	}

	s, err := resolveSettings(flags)
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if s.output != "cliout" {
		t.Errorf("output = %q, want %q", s.output, "cliout")
	}
	if s.timeout != 90*time.Second {
		t.Errorf("timeout = %v, want 90s", s.timeout)
	}
	if s.selector != "article" {
		t.Errorf("selector = %q, want %q", s.selector, "article")
	}
}

func TestResolveSettings_ConfigApplies(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site.yaml")
	content := `convert:
  gfm: true
  detectLanguages: true
fetch:
  rendered: true
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := resolveSettings(&cliFlags{common: commonFlags{config: path}})
	if err != nil {
		t.Fatalf("resolveSettings() error = %v", err)
	}

	if !s.gfm || !s.detectLang || !s.rendered {
		t.Errorf("settings = %+v, want config features on", s)
	}
}

func TestResolveSettings_InvalidTimeout(t *testing.T) {
	_, err := resolveSettings(&cliFlags{fetch: fetchFlags{timeout: "soon"}})
	if !errors.Is(err, ErrInvalidTimeout) {
		t.Errorf("resolveSettings() error = %v, want ErrInvalidTimeout", err)
	}
}

func TestRun_NoInput(t *testing.T) {
	var out strings.Builder
	err := run(nil, &cliFlags{}, &out)
	if !errors.Is(err, ErrNoInput) {
		t.Errorf("run() error = %v, want ErrNoInput", err)
	}
}

func TestRun_FileToStdout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	src := `<h1>Hi</h1><p>Some <strong>bold</strong> text.</p>`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	if err := run([]string{path}, &cliFlags{}, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	want := "# Hi\n\nSome **bold** text.\n"
	if out.String() != want {
		t.Errorf("run() output = %q, want %q", out.String(), want)
	}
}

func TestRun_SelectorNarrowsOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	src := `<nav>skip</nav><article><p>keep</p></article>`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	flags := &cliFlags{extract: extractFlags{selector: "article"}}
	if err := run([]string{path}, flags, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got := out.String(); got != "keep\n" {
		t.Errorf("run() output = %q, want %q", got, "keep\n")
	}
}

func TestRun_GFMFlag(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.html")
	src := `<p><del>old</del> new</p>`
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	flags := &cliFlags{convert: convertFlags{gfm: true}}
	if err := run([]string{path}, flags, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	if got := out.String(); got != "~~old~~ new\n" {
		t.Errorf("run() output = %q, want %q", got, "~~old~~ new\n")
	}
}

func TestRun_OutputDirectory(t *testing.T) {
	dir := t.TempDir()
	pageA := filepath.Join(dir, "a.html")
	pageB := filepath.Join(dir, "b.html")
	for path, src := range map[string]string{pageA: "<p>A</p>", pageB: "<p>B</p>"} {
		if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	outDir := filepath.Join(dir, "out")
	var out strings.Builder
	flags := &cliFlags{output: outDir, common: commonFlags{quiet: true}}
	if err := run([]string{pageA, pageB}, flags, &out); err != nil {
		t.Fatalf("run() error = %v", err)
	}

	for name, want := range map[string]string{"a.md": "A", "b.md": "B"} {
		data, err := os.ReadFile(filepath.Join(outDir, name))
		if err != nil {
			t.Fatalf("reading %s: %v", name, err)
		}
		if string(data) != want {
			t.Errorf("%s = %q, want %q", name, data, want)
		}
	}
}

func TestRun_MissingFileContinues(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.html")
	if err := os.WriteFile(good, []byte("<p>ok</p>"), 0o600); err != nil {
		t.Fatal(err)
	}

	var out strings.Builder
	err := run([]string{filepath.Join(dir, "missing.html"), good}, &cliFlags{}, &out)
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("run() error = %v, want ErrReadInput", err)
	}
	// The good input is still converted.
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("run() output = %q, want surviving conversion", out.String())
	}
}

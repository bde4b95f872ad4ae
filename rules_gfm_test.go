package html2md

import (
	"strings"
	"testing"
)

func TestConvert_GFM(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "strikethrough",
			input: "<p><del>gone</del></p>",
			want:  "~~gone~~",
		},
		{
			name:  "strike alias",
			input: "<p><s>old</s></p>",
			want:  "~~old~~",
		},
		{
			name:  "line break is a bare newline",
			input: "<p>a<br>b</p>",
			want:  "a\nb",
		},
		{
			name:  "task list",
			input: `<ul><li><input type="checkbox" checked>done</li><li><input type="checkbox">todo</li></ul>`,
			want:  "*   [x] done\n*   [ ] todo",
		},
		{
			name: "table with header",
			input: `<table><thead><tr><th>A</th><th>B</th></tr></thead>` +
				`<tbody><tr><td>1</td><td>2</td></tr></tbody></table>`,
			want: "| A | B |\n| --- | --- |\n| 1 | 2 |",
		},
		{
			name: "table with aligned columns",
			input: `<table><thead><tr><th align="left">L</th><th align="center">C</th>` +
				`<th align="right">R</th></tr></thead>` +
				`<tbody><tr><td>1</td><td>2</td><td>3</td></tr></tbody></table>`,
			want: "| L | C | R |\n| :-- | :-: | --: |\n| 1 | 2 | 3 |",
		},
		{
			name:  "fenced code block with language class",
			input: `<pre><code class="language-go">fmt.Println(1)</code></pre>`,
			want:  "```go\nfmt.Println(1)\n```",
		},
		{
			name:  "fenced code block without language",
			input: "<pre><code>plain text here</code></pre>",
			want:  "```\nplain text here\n```",
		},
		{
			name:  "fenced code keeps a blank line",
			input: "<pre><code>a = 1\n\nb = 2</code></pre>",
			want:  "```\na = 1\n\nb = 2\n```",
		},
		{
			name:  "highlight wrapper supplies the language",
			input: `<div class="highlight highlight-ruby"><pre>puts 1</pre></div>`,
			want:  "```ruby\nputs 1\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Convert(tt.input, WithGFM())
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConvert_GFMRulesNeedOptIn(t *testing.T) {
	t.Parallel()

	// Without WithGFM, del has no rule and falls to the inline catch-all.
	got, err := Convert("<p><del>gone</del></p>")
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if got != "gone" {
		t.Errorf("Convert() = %q, want %q", got, "gone")
	}
}

func TestFenceLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		class  string
		text   string
		detect bool
		want   string
	}{
		{
			name:  "language class wins",
			class: "language-go",
			text:  "import os",
			want:  "go",
		},
		{
			name:  "lang class variant",
			class: "lang-python",
			text:  "x",
			want:  "python",
		},
		{
			name:  "no class and no detection",
			class: "",
			text:  "anything",
			want:  "",
		},
		{
			name:   "detection skips empty code",
			class:  "",
			text:   "   \n  ",
			detect: true,
			want:   "",
		},
		{
			name:   "class wins over detection",
			class:  "language-go",
			text:   "#!/usr/bin/env python\nprint(1)",
			detect: true,
			want:   "go",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := parseBody(t, `<pre><code class="`+tt.class+`"></code></pre>`)
			code := findTag(body, "code")
			if got := fenceLanguage(code, tt.text, tt.detect); got != tt.want {
				t.Errorf("fenceLanguage() = %q, want %q", got, tt.want)
			}
		})
	}
}

// Detection output depends on the analyzers the highlighting library
// ships, so only the shape of the result is asserted.
func TestConvert_LanguageDetection(t *testing.T) {
	t.Parallel()

	input := "<pre><code>#!/bin/bash\necho hi\n</code></pre>"
	got, err := Convert(input, WithGFM(), WithLanguageDetection())
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if !strings.HasPrefix(got, "```") {
		t.Errorf("Convert() = %q, want a fenced code block", got)
	}
	if !strings.Contains(got, "echo hi") {
		t.Errorf("Convert() = %q, want the code body preserved", got)
	}
}

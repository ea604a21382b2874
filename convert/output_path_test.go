package convert

import (
	"path/filepath"
	"slices"
	"testing"

	"dtree/config"
)

func TestBuildOutputPath(t *testing.T) {
	tests := []struct {
		name          string
		src           string
		nodirs        bool
		template      string
		transliterate bool
		format        config.OutputFmt
		want          string
	}{
		{name: "single file", src: "doc.dom", format: config.OutputFmtHtml, want: "doc.html"},
		{name: "keep dirs", src: filepath.Join("a", "b", "doc.dom"), format: config.OutputFmtXml, want: filepath.Join("a", "b", "doc.xml")},
		{name: "nodirs", src: filepath.Join("a", "b", "doc.dom"), nodirs: true, format: config.OutputFmtTree, want: "doc.txt"},
		{name: "template", src: "doc.dom", template: "{{ .Format }}/{{ .Name | upper }}", format: config.OutputFmtHtml, want: filepath.Join("html", "DOC.html")},
		{name: "template cannot escape", src: "doc.dom", template: "../../{{ .Name }}", format: config.OutputFmtHtml, want: "doc.html"},
		{name: "empty template result", src: "doc.dom", template: "{{ if false }}x{{ end }}", format: config.OutputFmtHtml, want: "doc.html"},
		{name: "broken template", src: "doc.dom", template: "{{ .Missing", format: config.OutputFmtHtml, want: "doc.html"},
		{name: "transliterate", src: "Привет мир.dom", transliterate: true, format: config.OutputFmtHtml, want: "privet-mir.html"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, env := setupTestEnv(t)
			env.NoDirs = tt.nodirs
			env.Format = tt.format
			env.Cfg.Document.OutputNameTemplate = tt.template
			env.Cfg.Document.FileNameTransliterate = tt.transliterate

			dst := t.TempDir()
			c := &Content{srcName: tt.src}
			if got := buildOutputPath(c, tt.src, dst, env); got != filepath.Join(dst, tt.want) {
				t.Errorf("buildOutputPath() = %q, want %q", got, filepath.Join(dst, tt.want))
			}
		})
	}
}

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"a/b/c", []string{"a", "b", "c"}},
		{"/a//b/", []string{"a", "b"}},
		{"./a/../b", []string{"a", "b"}},
		{"  ", nil},
	}
	for _, tt := range tests {
		if got := splitSegments(tt.in); !slices.Equal(got, tt.want) {
			t.Errorf("splitSegments(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

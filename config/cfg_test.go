package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rupor-github/gencfg"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfiguration_NoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() with empty path error = %v", err)
	}
	if cfg.Version != 1 {
		t.Errorf("Default config version = %d, want 1", cfg.Version)
	}
	if cfg.Document.OutputFormat != OutputFmtHtml {
		t.Errorf("OutputFormat = %v, want html", cfg.Document.OutputFormat)
	}
	if len(cfg.Document.Extensions) == 0 {
		t.Error("default extensions must not be empty")
	}
	if len(cfg.Document.Operations) != 0 {
		t.Errorf("default operations = %v, want none", cfg.Document.Operations)
	}
	// template is expanded in test mode
	if cfg.Logging.ConsoleLogger.Level != "none" {
		t.Errorf("console level = %q, want none under test", cfg.Logging.ConsoleLogger.Level)
	}
}

func TestLoadConfiguration_WithFile(t *testing.T) {
	path := writeConfig(t, `version: 1
document:
  extensions: [".dom"]
  input_encoding: windows-1251
  output_format: xml
  output_name_template: "{{ .Name | upper }}"
  file_name_transliterate: true
  operations:
    - { op: replace, old: i, new: em }
    - { op: bold, row: 1 }
    - { op: remove, tag: ul }
    - { op: add, word: todo, tag: b }
logging:
  console:
    level: normal
  file:
    level: debug
    destination: `+filepath.Join(t.TempDir(), "test.log")+`
    mode: append
`)

	cfg, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}

	doc := cfg.Document
	if doc.OutputFormat != OutputFmtXml {
		t.Errorf("OutputFormat = %v, want xml", doc.OutputFormat)
	}
	if doc.InputEncoding != "windows-1251" {
		t.Errorf("InputEncoding = %q", doc.InputEncoding)
	}
	if doc.OutputNameTemplate != "{{ .Name | upper }}" {
		t.Errorf("OutputNameTemplate must not be expanded, got %q", doc.OutputNameTemplate)
	}
	if !doc.FileNameTransliterate {
		t.Error("Expected FileNameTransliterate to be true")
	}

	want := []OperationConfig{
		{Kind: OpKindReplace, Old: "i", New: "em"},
		{Kind: OpKindBold, Row: 1},
		{Kind: OpKindRemove, Tag: "ul"},
		{Kind: OpKindAdd, Word: "todo", Tag: "b"},
	}
	if len(doc.Operations) != len(want) {
		t.Fatalf("Operations = %v, want %v", doc.Operations, want)
	}
	for i := range want {
		if doc.Operations[i] != want[i] {
			t.Errorf("Operations[%d] = %+v, want %+v", i, doc.Operations[i], want[i])
		}
	}
	if cfg.Logging.FileLogger.Mode != "append" {
		t.Errorf("FileLogger.Mode = %q", cfg.Logging.FileLogger.Mode)
	}
}

func TestLoadConfiguration_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "invalid yaml",
			content: "version: 1\ndocument:\n  output_format: html\n  invalid indent\n",
		},
		{
			name:    "unknown field",
			content: "version: 1\nunknown_field: value\n",
		},
		{
			name:    "version",
			content: "version: 2\n",
		},
		{
			name:    "unknown output format",
			content: "version: 1\ndocument:\n  output_format: epub\n",
		},
		{
			name:    "unknown operation",
			content: "version: 1\ndocument:\n  operations:\n    - { op: delete, tag: p }\n",
		},
		{
			name:    "replace without new",
			content: "version: 1\ndocument:\n  operations:\n    - { op: replace, old: p }\n",
		},
		{
			name:    "add without word",
			content: "version: 1\ndocument:\n  operations:\n    - { op: add, tag: b }\n",
		},
		{
			name:    "extension without dot",
			content: "version: 1\ndocument:\n  extensions: [dom]\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadConfiguration(writeConfig(t, tt.content)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadConfiguration_NonExistentFile(t *testing.T) {
	if _, err := LoadConfiguration("/nonexistent/config.yaml"); err == nil {
		t.Error("Expected error for nonexistent file")
	}
}

func TestLoadConfiguration_WithOptions(t *testing.T) {
	option := func(opts *gencfg.ProcessingOptions) {}
	cfg, err := LoadConfiguration("", option)
	if err != nil {
		t.Fatalf("LoadConfiguration() with options error = %v", err)
	}
	if cfg == nil {
		t.Fatal("LoadConfiguration() returned nil config")
	}
}

func TestParseOperations(t *testing.T) {
	ops, err := ParseOperations([]byte(`
- op: remove
  tag: ol
- op: BOLD
  row: 2
`))
	if err != nil {
		t.Fatalf("ParseOperations() error = %v", err)
	}
	if len(ops) != 2 || ops[0].Kind != OpKindRemove || ops[1].Kind != OpKindBold || ops[1].Row != 2 {
		t.Errorf("ParseOperations() = %+v", ops)
	}

	bad := []string{
		"- { op: bold }",
		"- { op: remove }",
		"- { op: add, word: x, tag: '<b>' }",
		"- { op: replace, old: a, new: '<b>' }",
		"- { op: replace, old: a, new: b, extra: c }",
		"op: remove",
	}
	for _, src := range bad {
		if _, err := ParseOperations([]byte(src)); err == nil {
			t.Errorf("ParseOperations(%q) expected error", src)
		}
	}
}

func TestPrepare(t *testing.T) {
	data, err := Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}
	if !strings.Contains(string(data), "output_name_template") {
		t.Error("prepared configuration misses document section")
	}
	if _, err := unmarshalConfig(data, &Config{}, true); err != nil {
		t.Errorf("Prepared config is not valid: %v", err)
	}
}

func TestDump(t *testing.T) {
	cfg, err := LoadConfiguration("")
	if err != nil {
		t.Fatalf("LoadConfiguration() error = %v", err)
	}
	cfg.Document.OutputFormat = OutputFmtTree
	cfg.Document.Operations = []OperationConfig{{Kind: OpKindAdd, Word: "w", Tag: "b"}}

	data, err := Dump(cfg)
	if err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	for _, want := range []string{"output_format: tree", "op: add", "word: w"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("dump misses %q:\n%s", want, data)
		}
	}

	again, err := unmarshalConfig(data, &Config{}, true)
	if err != nil {
		t.Fatalf("dumped configuration does not load: %v", err)
	}
	if again.Document.OutputFormat != OutputFmtTree {
		t.Errorf("OutputFormat = %v after reload", again.Document.OutputFormat)
	}
}

func TestOutputFmt(t *testing.T) {
	for _, name := range OutputFmtNames() {
		f, err := ParseOutputFmt(name)
		if err != nil {
			t.Fatalf("ParseOutputFmt(%q) error = %v", name, err)
		}
		if f.String() != name || !strings.HasPrefix(f.Ext(), ".") {
			t.Errorf("%q: String() = %q, Ext() = %q", name, f.String(), f.Ext())
		}
	}
	if _, err := ParseOutputFmt("kfx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestEnableColorOutput_NoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	if EnableColorOutput(os.Stdout) {
		t.Error("NO_COLOR must disable colors")
	}
}

func TestCleanFileName(t *testing.T) {
	tests := []struct{ in, want string }{
		{"simple", "simple"},
		{"a" + string(os.PathSeparator) + "b", "ab"},
		{"  .hidden doc ", "hidden doc"},
		{"tab\there", "tabhere"},
		{"...", badFileName},
		{"", badFileName},
	}
	for _, tt := range tests {
		if got := CleanFileName(tt.in); got != tt.want {
			t.Errorf("CleanFileName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

package convert

import (
	"testing"

	"github.com/google/uuid"

	"dtree/config"
)

func TestExpandTemplate(t *testing.T) {
	id := uuid.MustParse("01890a5d-ac96-774b-bcce-b302099a8057")

	tests := []struct {
		name    string
		src     string
		tmpl    string
		format  config.OutputFmt
		want    string
		wantErr bool
	}{
		{
			name:   "all values",
			src:    "a/b/doc.dom",
			tmpl:   "{{ .Context }}|{{ .Name }}|{{ .Ext }}|{{ .Format }}|{{ .SourceDir }}|{{ .ID }}",
			format: config.OutputFmtXml,
			want:   "output_name_template|doc|.xml|xml|a/b|" + id.String(),
		},
		{
			name:   "single file has no source dir",
			src:    "doc.dom",
			tmpl:   "[{{ .SourceDir }}]",
			format: config.OutputFmtHtml,
			want:   "[]",
		},
		{
			name:   "sprig functions",
			src:    "document.dom",
			tmpl:   `{{ .Name | upper | trunc 3 }}-{{ .ID | trunc 8 }}`,
			format: config.OutputFmtHtml,
			want:   "DOC-01890a5d",
		},
		{name: "unknown function", src: "doc.dom", tmpl: "{{ nosuch .Name }}", format: config.OutputFmtHtml, wantErr: true},
		{name: "unknown field", src: "doc.dom", tmpl: "{{ .Missing }}", format: config.OutputFmtHtml, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Content{srcName: tt.src, id: id}
			got, err := expandTemplate(c, config.OutputNameTemplateFieldName, tt.tmpl, tt.format)
			if (err != nil) != tt.wantErr {
				t.Fatalf("expandTemplate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("expandTemplate() = %q, want %q", got, tt.want)
			}
		})
	}
}

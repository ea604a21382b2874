package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"dtree/config"
)

// Values is a struct that holds variables we make available for template expansion
type Values struct {
	Context string
	// Name is source file name without extension
	Name string
	// Ext is extension of the output format including dot
	Ext    string
	Format string
	// SourceDir is directory of the source relative to processed directory
	// or archive, empty for a single file
	SourceDir string
	ID        string
}

func expandTemplate(c *Content, name config.TemplateFieldName, field string, format config.OutputFmt) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	dir := filepath.ToSlash(filepath.Dir(c.srcName))
	if dir == "." {
		dir = ""
	}
	values := Values{
		Context:   string(name),
		Name:      strings.TrimSuffix(filepath.Base(c.srcName), filepath.Ext(c.srcName)),
		Ext:       format.Ext(),
		Format:    format.String(),
		SourceDir: dir,
		ID:        c.id.String(),
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, values); err != nil {
		return "", err
	}
	return buf.String(), nil
}

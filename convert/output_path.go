package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"dtree/config"
	"dtree/state"
)

// buildOutputPath returns output file name for document. "src" is source
// path relative to the processed directory or archive (just base name for a
// single file). Unless nodirs is requested relative directory is kept under
// "dst". Name is either derived from source or expanded from the configured
// template, where slashes produce subdirectories. Every path segment is
// cleaned and transliterated when requested.
func buildOutputPath(c *Content, src, dst string, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}

	segments := []string{strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))}
	if tmpl := env.Cfg.Document.OutputNameTemplate; tmpl != "" {
		expanded, err := expandTemplate(c, config.OutputNameTemplateFieldName, tmpl, env.Format)
		if err != nil {
			env.Log.Warn("Unable to prepare output filename, using default", zap.Error(err))
		} else if s := splitSegments(expanded); len(s) > 0 {
			segments = s
		}
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, outDir)
	for _, s := range segments {
		parts = append(parts, cleanPathSegment(s, env.Cfg.Document.FileNameTransliterate))
	}
	parts[len(parts)-1] += env.Format.Ext()
	return filepath.Join(parts...)
}

// splitSegments splits expanded template on slashes dropping empty and
// relative segments, so template cannot escape destination directory.
func splitSegments(name string) []string {
	var segments []string
	for s := range strings.SplitSeq(filepath.ToSlash(name), "/") {
		s = strings.TrimSpace(s)
		if s == "" || s == "." || s == ".." {
			continue
		}
		segments = append(segments, s)
	}
	return segments
}

func cleanPathSegment(segment string, transliterate bool) string {
	if transliterate {
		segment = slug.Make(segment)
	}
	return config.CleanFileName(segment)
}

package convert

import (
	"path/filepath"
	"strings"

	"github.com/gosimple/slug"
	"go.uber.org/zap"

	"rbc/config"
	"rbc/content"
	"rbc/state"
)

// buildOutputPath returns path of the file rendered from source src. File
// name comes from output name template when configured and from source name
// otherwise. Unless NoDirs is set source directory structure is kept under
// dst. suffix is appended to the name before extension.
func buildOutputPath(c *content.Content, src, dst, suffix string, env *state.LocalEnv) string {
	outDir := dst
	if !env.NoDirs {
		outDir = filepath.Join(dst, filepath.Dir(src))
	}

	name := strings.TrimSuffix(filepath.Base(src), filepath.Ext(src))
	if tmpl := env.Cfg.Document.OutputNameTemplate; len(tmpl) > 0 {
		expanded, err := expandTemplate(c, config.OutputNameTemplateFieldName, tmpl)
		if err != nil {
			env.Log.Warn("Unable to prepare output file name, using source name", zap.Error(err))
		} else if len(strings.TrimSpace(expanded)) > 0 {
			name = filepath.FromSlash(expanded)
		}
	}
	return joinCleanPath(outDir, name, suffix+env.Cfg.Document.OutputExt, env.Cfg.Document.FileNameTransliterate)
}

// joinCleanPath puts name, which may have subdirectories, under dir cleaning
// every path segment.
func joinCleanPath(dir, name, ext string, transliterate bool) string {
	var segments []string
	for s := range strings.SplitSeq(filepath.ToSlash(name), "/") {
		if len(s) > 0 && s != "." && s != ".." {
			segments = append(segments, s)
		}
	}
	if len(segments) == 0 {
		return dir
	}

	parts := make([]string, 0, len(segments)+1)
	parts = append(parts, dir)
	for _, s := range segments {
		if transliterate {
			s = slug.Make(s)
		}
		parts = append(parts, config.CleanFileName(s))
	}
	parts[len(parts)-1] += ext
	return filepath.Join(parts...)
}

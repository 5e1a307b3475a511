package convert

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/h2non/filetype"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// headSize is how much of a file is looked at to recognize it.
const headSize = 1024

var yamlType = filetype.NewType("yaml", "application/yaml")

func init() {
	filetype.AddMatcher(yamlType, yamlMatcher)
}

// yamlMatcher accepts text which first meaningful line is a document marker
// or a mapping key. Sources are always mappings at the top level.
func yamlMatcher(buf []byte) bool {
	if len(buf) == 0 {
		return false
	}
	text := decodeHead(buf)
	if strings.ContainsRune(text, 0) || strings.ContainsRune(text, utf8.RuneError) {
		return false
	}
	for line := range strings.Lines(text) {
		line = strings.TrimSpace(line)
		switch {
		case len(line) == 0, strings.HasPrefix(line, "#"), strings.HasPrefix(line, "%"):
			continue
		case line == "---":
			return true
		}
		key, _, found := strings.Cut(line, ":")
		return found && len(key) > 0 && !strings.ContainsAny(key, "<>{}[]")
	}
	return false
}

// decodeHead converts head of UTF-16 (with BOM) or UTF-8 text to UTF-8.
// Last incomplete line is dropped.
func decodeHead(buf []byte) string {
	out, _ := io.ReadAll(transform.NewReader(bytes.NewReader(buf), unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	text := string(out)
	if len(buf) >= headSize {
		if i := strings.LastIndexByte(text, '\n'); i >= 0 {
			text = text[:i+1]
		}
	}
	return text
}

func readHead(r io.Reader) ([]byte, error) {
	head := make([]byte, headSize)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return head[:n], nil
}

func hasExt(name string, exts ...string) bool {
	ext := filepath.Ext(name)
	for _, e := range exts {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

func isSourceName(name string) bool {
	return hasExt(name, ".yaml", ".yml")
}

// isArchiveFile checks both extension and content of zip archive.
func isArchiveFile(path string) (bool, error) {
	if !hasExt(path, ".zip") {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, err
	}
	return filetype.Is(head, "zip"), nil
}

// isSourceFile checks whether path looks like rulebook source.
func isSourceFile(path string) (bool, error) {
	if !isSourceName(path) {
		return false, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	head, err := readHead(f)
	if err != nil {
		return false, err
	}
	return filetype.IsType(head, yamlType), nil
}

// isSourceInArchive is isSourceFile for archived files.
func isSourceInArchive(f *zip.File) (bool, error) {
	if !isSourceName(f.Name) {
		return false, nil
	}
	r, err := f.Open()
	if err != nil {
		return false, err
	}
	defer r.Close()

	head, err := readHead(r)
	if err != nil {
		return false, err
	}
	return filetype.IsType(head, yamlType), nil
}

package convert

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"

	"rbc/config"
	"rbc/content"
)

// Values are available to output name template.
type Values struct {
	Context    string
	Title      string
	Watermark  string
	SourceFile string
	BuildID    string
	Chapters   []string
	Bestiary   string
	Beasts     int
	Items      int
}

func templateValues(c *content.Content, name config.TemplateFieldName) Values {
	src := c.Source
	v := Values{
		Context:    string(name),
		Title:      src.Title,
		Watermark:  src.Watermark,
		SourceFile: strings.TrimSuffix(filepath.Base(c.SrcName), filepath.Ext(c.SrcName)),
		BuildID:    c.BuildID.String(),
	}
	for i := range src.Chapters {
		v.Chapters = append(v.Chapters, src.Chapters[i].Title)
	}
	if src.Bestiary != nil {
		v.Bestiary = src.Bestiary.Title
		v.Beasts = len(src.Bestiary.Beasts())
	}
	if src.Equipment != nil {
		for i := range src.Equipment.Categories {
			v.Items += len(src.Equipment.Categories[i].Items)
		}
	}
	return v
}

func expandTemplate(c *content.Content, name config.TemplateFieldName, field string) (string, error) {
	tmpl, err := template.New(string(name)).Funcs(sprig.FuncMap()).Parse(field)
	if err != nil {
		return "", fmt.Errorf("unable to parse template field %s: %w", name, err)
	}

	buf := new(bytes.Buffer)
	if err := tmpl.Execute(buf, templateValues(c, name)); err != nil {
		return "", fmt.Errorf("unable to expand template field %s: %w", name, err)
	}
	return buf.String(), nil
}

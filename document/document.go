// Package document stitches rendered chapters and externally rendered
// chapters into the final rulebook text.
package document

import (
	"fmt"
	"strings"

	"rbc/markup"
	"rbc/rulebook"
)

// Whole chapter placeholders resolved by assembler.
const (
	TokenEquipment  rulebook.Token = "[EQUIPMENT]"
	TokenBestiary   rulebook.Token = "[BESTIARY]"
	TokenEncounters rulebook.Token = "[ENCOUNTERS]"
)

// ChapterRenderer produces complete text of a chapter assembled elsewhere.
type ChapterRenderer interface {
	RenderChapter() (string, error)
}

// Document is the authored rulebook.
type Document struct {
	Title     string             `yaml:"title" validate:"required"`
	Watermark string             `yaml:"watermark,omitempty"`
	Chapters  []rulebook.Chapter `yaml:"chapters,omitempty" validate:"dive"`
}

// Assembler renders documents. Any collaborator may be nil, its placeholder
// is then removed.
type Assembler struct {
	Equipment  ChapterRenderer
	Bestiary   ChapterRenderer
	Encounters ChapterRenderer
}

// Assemble renders doc from scratch. Collaborator output is inserted as is
// and never scanned for tokens, only newline escapes are expanded last.
func (a *Assembler) Assemble(doc *Document) (string, error) {
	var b strings.Builder

	if len(doc.Watermark) > 0 {
		b.WriteString(markup.Container(markup.ContainerWatermark, doc.Watermark))
	}
	if len(doc.Title) > 0 {
		b.WriteString(markup.Container(markup.ContainerTitle, doc.Title))
	}
	for i := range doc.Chapters {
		text, err := doc.Chapters[i].Render()
		if err != nil {
			return "", err
		}
		b.WriteString(text)
	}

	r := rulebook.NewReplacements()
	for _, c := range []struct {
		tok rulebook.Token
		cr  ChapterRenderer
	}{
		{TokenEquipment, a.Equipment},
		{TokenBestiary, a.Bestiary},
		{TokenEncounters, a.Encounters},
	} {
		text, err := render(c.cr)
		if err != nil {
			return "", fmt.Errorf("rendering %s: %w", c.tok, err)
		}
		r.SetVerbatim(c.tok, text)
	}
	return markup.Unescape(r.Apply(b.String())), nil
}

func render(cr ChapterRenderer) (string, error) {
	if cr == nil {
		return "", nil
	}
	return cr.RenderChapter()
}

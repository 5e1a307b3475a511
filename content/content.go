// Package content loads authored rulebook sources and prepares them for
// rendering.
package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	yaml "gopkg.in/yaml.v3"

	"rbc/bestiary"
	"rbc/document"
	"rbc/equipment"
	"rbc/misc"
	"rbc/state"
)

// ErrEmptySource is returned for sources without any YAML document.
var ErrEmptySource = errors.New("source is empty")

// Source is a rulebook as authored.
type Source struct {
	document.Document `yaml:",inline"`

	Equipment *equipment.Catalog `yaml:"equipment,omitempty"`
	Bestiary  *bestiary.Chapter  `yaml:"bestiary,omitempty"`
}

// Content is a decoded and checked source ready for rendering.
type Content struct {
	SrcName string
	BuildID uuid.UUID
	Source  *Source

	// Encounters is set when source has bestiary.
	Encounters *bestiary.EncounterTable

	// WorkDir holds debug artifacts, only created when debug report is
	// requested.
	WorkDir string
}

// Prepare reads and decodes source, fills defaults from configuration and
// checks it. All problems found in the source are reported at once.
func Prepare(ctx context.Context, r io.Reader, srcName string, log *zap.Logger) (*Content, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	env := state.EnvFromContext(ctx)

	src, err := decode(r)
	if err != nil {
		return nil, fmt.Errorf("unable to decode %s: %w", srcName, err)
	}

	doc := &env.Cfg.Document
	if len(src.Title) == 0 {
		src.Title = doc.Title
	}
	if len(src.Watermark) == 0 {
		src.Watermark = doc.Watermark
	}
	if src.Equipment != nil && len(src.Equipment.TraitsTitle) == 0 {
		src.Equipment.TraitsTitle = doc.Equipment.TraitsTitle
	}

	if err := Validate(src); err != nil {
		return nil, fmt.Errorf("source %s has problems: %w", srcName, err)
	}

	if src.Bestiary != nil && doc.Bestiary.WarnDuplicateAbilities {
		for _, name := range src.Bestiary.AbilityTable().Duplicates() {
			log.Warn("Ability defined more than once, first definition is used", zap.String("ability", name))
		}
	}
	if src.Equipment != nil && doc.Equipment.WarnUnknownTraits {
		for _, name := range src.Equipment.UnknownTraits() {
			log.Warn("Item references undefined trait", zap.String("trait", name))
		}
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("unable to generate build id: %w", err)
	}

	c := &Content{
		SrcName: srcName,
		BuildID: id,
		Source:  src,
	}
	if src.Bestiary != nil {
		c.Encounters = bestiary.NewEncounterTable(doc.Bestiary.EncountersTitle, src.Bestiary)
	}

	if env.Rpt != nil {
		if c.WorkDir, err = os.MkdirTemp("", misc.GetAppName()+"-"); err != nil {
			return nil, fmt.Errorf("unable to create temporary directory: %w", err)
		}
		env.Rpt.Store(fmt.Sprintf("%s-%s", misc.GetAppName(), id), c.WorkDir)
		if err := os.WriteFile(filepath.Join(c.WorkDir, filepath.Base(srcName)+"_prepared"), []byte(c.String()), 0644); err != nil {
			return nil, fmt.Errorf("unable to write prepared source for debugging: %w", err)
		}
	}

	log.Debug("Source prepared", zap.String("source", srcName), zap.Stringer("build_id", id),
		zap.Int("chapters", len(src.Chapters)))
	return c, nil
}

// decode accepts UTF-8 with or without BOM and UTF-16 with BOM. Unknown
// fields are errors.
func decode(r io.Reader) (*Source, error) {
	r = transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	src := &Source{}
	if err := dec.Decode(src); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptySource
		}
		return nil, err
	}
	return src, nil
}

// Assembler returns document assembler wired to rendered chapters present
// in the source.
func (c *Content) Assembler() *document.Assembler {
	a := &document.Assembler{}
	if c.Source.Equipment != nil {
		a.Equipment = c.Source.Equipment
	}
	if c.Source.Bestiary != nil {
		a.Bestiary = c.Source.Bestiary
	}
	if c.Encounters != nil {
		a.Encounters = c.Encounters
	}
	return a
}

// Render produces complete document text.
func (c *Content) Render() (string, error) {
	return c.Assembler().Assemble(&c.Source.Document)
}

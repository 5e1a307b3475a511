package document

import (
	"errors"
	"strings"
	"testing"

	"rbc/rulebook"
)

type staticChapter struct {
	text  string
	err   error
	calls int
}

func (s *staticChapter) RenderChapter() (string, error) {
	s.calls++
	return s.text, s.err
}

func testDocument() *Document {
	return &Document{
		Title:     "Main Rulebook",
		Watermark: "Author 2025",
		Chapters: []rulebook.Chapter{
			{Title: "Rules", Entries: []rulebook.Entry{{Title: "Gear", Content: []string{"[EQUIPMENT]", `one[\n]two`}}}},
			{Title: "Monsters", Entries: []rulebook.Entry{{Content: []string{"[BESTIARY]", "[ENCOUNTERS]"}}}},
		},
	}
}

func TestAssembler_Assemble(t *testing.T) {
	eq := &staticChapter{text: "EQUIPMENT CHAPTER [BESTIARY]"}
	be := &staticChapter{text: "BESTIARY CHAPTER"}
	a := &Assembler{Equipment: eq, Bestiary: be}

	got, err := a.Assemble(testDocument())
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}

	if want := "watermark(\nAuthor 2025\n)\ntitle(\nMain Rulebook\n)\nhead(\n# Rules\n\n)\n"; !strings.HasPrefix(got, want) {
		t.Errorf("Assemble() prefix = %q, want %q", got[:min(len(want), len(got))], want)
	}
	if !strings.Contains(got, "EQUIPMENT CHAPTER [BESTIARY]") {
		t.Error("collaborator output must be inserted as is")
	}
	if strings.Count(got, "BESTIARY CHAPTER") != 1 {
		t.Error("bestiary chapter expected exactly once")
	}
	if strings.Contains(got, "[ENCOUNTERS]") || strings.Contains(got, "[EQUIPMENT]") {
		t.Error("placeholders left in output")
	}
	if !strings.Contains(got, "one\ntwo") || strings.Contains(got, `[\n]`) {
		t.Error("newline escape not expanded")
	}
	if strings.Index(got, "head(\n# Rules") > strings.Index(got, "head(\n# Monsters") {
		t.Error("chapters out of declared order")
	}
}

func TestAssembler_Idempotent(t *testing.T) {
	a := &Assembler{Bestiary: &staticChapter{text: "B"}}
	doc := testDocument()

	first, err := a.Assemble(doc)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	second, err := a.Assemble(doc)
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if first != second {
		t.Error("repeated Assemble() produced different output")
	}
	if doc.Chapters[0].Output() == "" {
		t.Error("chapter output not kept after render")
	}
}

func TestAssembler_NoWatermark(t *testing.T) {
	var a Assembler
	got, err := a.Assemble(&Document{Title: "T"})
	if err != nil {
		t.Fatalf("Assemble() error = %v", err)
	}
	if got != "title(\nT\n)\n" {
		t.Errorf("Assemble() = %q", got)
	}
}

func TestAssembler_CollaboratorError(t *testing.T) {
	boom := errors.New("boom")
	a := &Assembler{Encounters: &staticChapter{err: boom}}
	if _, err := a.Assemble(testDocument()); !errors.Is(err, boom) {
		t.Errorf("Assemble() error = %v, want %v", err, boom)
	}
}

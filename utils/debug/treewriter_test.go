package debug

import (
	"strings"
	"testing"
)

func TestTreeWriter_Line(t *testing.T) {
	tests := []struct {
		name   string
		depth  int
		format string
		args   []any
		want   string
	}{
		{"no depth", 0, "test", nil, "test\n"},
		{"depth 1", 1, "indented", nil, "  indented\n"},
		{"depth 2", 2, "double indent", nil, "    double indent\n"},
		{"with formatting", 1, "Beast[%q] threat[%d]", []any{"Wolf", 3}, "  Beast[\"Wolf\"] threat[3]\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := NewTreeWriter()
			tw.Line(tt.depth, tt.format, tt.args...)
			if got := tw.String(); got != tt.want {
				t.Errorf("Line() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTreeWriter_Text(t *testing.T) {
	tw := NewTreeWriter()
	tw.Text(1, "title", "Bestiary\nof the North")
	tw.Text(1, "empty", "")
	if got, want := tw.String(), "  title: \"Bestiary\\nof the North\"\n"; got != want {
		t.Errorf("Text() = %q, want %q", got, want)
	}

	tw = NewTreeWriter()
	tw.Text(0, "long", strings.Repeat("ж", MaxTextLen+5))
	want := "long: \"" + strings.Repeat("ж", MaxTextLen) + "...\"\n"
	if got := tw.String(); got != want {
		t.Errorf("Text() long value = %q, want %q", got, want)
	}
}

func TestTreeWriter_List(t *testing.T) {
	tw := NewTreeWriter()
	tw.List(0, "none", nil)
	tw.List(1, "traits", []string{"Heavy", "Sharp"})
	if got, want := tw.String(), "  traits (2): Heavy, Sharp\n"; got != want {
		t.Errorf("List() = %q, want %q", got, want)
	}
}

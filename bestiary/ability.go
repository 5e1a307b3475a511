package bestiary

import (
	"fmt"

	"rbc/common"
)

// AbilityEntry is defined once per chapter and referenced by name from
// beasts.
type AbilityEntry struct {
	Title       string            `yaml:"title" validate:"required"`
	Type        common.ActionType `yaml:"type"`
	Description string            `yaml:"description"`
}

func (a AbilityEntry) Render() string {
	return fmt.Sprintf("**%s [%s] -** %s", a.Title, a.Type, a.Description)
}

// AbilityResolver looks abilities up by exact (case sensitive) name.
type AbilityResolver interface {
	Resolve(name string) (AbilityEntry, error)
}

// UnknownAbilityError means authored beasts and ability table diverged.
type UnknownAbilityError struct {
	Name string
}

func (e *UnknownAbilityError) Error() string {
	return fmt.Sprintf("unknown ability %q", e.Name)
}

// AbilityTable is a chapter wide ability index. When name is defined more
// than once the first definition wins.
type AbilityTable struct {
	entries    []AbilityEntry
	index      map[string]int
	duplicates []string
}

func NewAbilityTable(entries []AbilityEntry) *AbilityTable {
	t := &AbilityTable{
		entries: entries,
		index:   make(map[string]int, len(entries)),
	}
	for i, a := range entries {
		if _, exists := t.index[a.Title]; exists {
			t.duplicates = append(t.duplicates, a.Title)
			continue
		}
		t.index[a.Title] = i
	}
	return t
}

func (t *AbilityTable) Resolve(name string) (AbilityEntry, error) {
	if i, ok := t.index[name]; ok {
		return t.entries[i], nil
	}
	return AbilityEntry{}, &UnknownAbilityError{Name: name}
}

// Duplicates returns names defined more than once, in definition order.
func (t *AbilityTable) Duplicates() []string {
	return t.duplicates
}

func (t *AbilityTable) Len() int {
	return len(t.entries)
}

// Package vocabulary holds the set of skills recognized during extraction.
package vocabulary

import (
	"strings"
)

const (
	CategoryLanguages  = "languages"
	CategoryFrameworks = "frameworks"
	CategoryData       = "data"
	CategoryTooling    = "cloud & tooling"
	CategorySoftSkills = "soft skills"
	CategoryOther      = "other"
)

// Entry is a single recognized skill.
type Entry struct {
	Name     string `mapstructure:"name"`
	Category string `mapstructure:"category"`
}

// Vocabulary is an immutable, ordered set of lower-case skill names.
type Vocabulary struct {
	entries []Entry
	index   map[string]int
}

// New normalizes the entries and drops blanks and duplicates, keeping the
// first occurrence of every name.
func New(entries []Entry) *Vocabulary {
	v := &Vocabulary{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}

	for _, e := range entries {
		name := Normalize(e.Name)
		if name == "" {
			continue
		}
		if _, ok := v.index[name]; ok {
			continue
		}

		category := strings.TrimSpace(strings.ToLower(e.Category))
		if category == "" {
			category = CategoryOther
		}

		v.index[name] = len(v.entries)
		v.entries = append(v.entries, Entry{Name: name, Category: category})
	}

	return v
}

// FromNames builds a vocabulary of uncategorized entries.
func FromNames(names ...string) *Vocabulary {
	entries := make([]Entry, 0, len(names))
	for _, n := range names {
		entries = append(entries, Entry{Name: n})
	}
	return New(entries)
}

// Normalize lower-cases the name and collapses whitespace runs.
func Normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

func (v *Vocabulary) Len() int {
	if v == nil {
		return 0
	}
	return len(v.entries)
}

func (v *Vocabulary) Contains(name string) bool {
	if v == nil {
		return false
	}
	_, ok := v.index[Normalize(name)]
	return ok
}

// Names returns the skill names in configuration order.
func (v *Vocabulary) Names() []string {
	if v == nil {
		return nil
	}

	names := make([]string, 0, len(v.entries))
	for _, e := range v.entries {
		names = append(names, e.Name)
	}
	return names
}

// Entries returns a copy of the entries in configuration order.
func (v *Vocabulary) Entries() []Entry {
	if v == nil {
		return nil
	}
	return append([]Entry(nil), v.entries...)
}

// Categories groups skill names by category. Category order follows the
// first appearance in the vocabulary.
func (v *Vocabulary) Categories() ([]string, map[string][]string) {
	if v == nil {
		return nil, map[string][]string{}
	}

	var order []string
	grouped := make(map[string][]string)
	for _, e := range v.entries {
		if _, ok := grouped[e.Category]; !ok {
			order = append(order, e.Category)
		}
		grouped[e.Category] = append(grouped[e.Category], e.Name)
	}

	return order, grouped
}

package vocabulary

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"
)

const skillsKey = "skills"

// Load reads a vocabulary file. Any format viper understands is accepted;
// the file must have a top-level "skills" key (see Decode for its shape).
func Load(path string) (*Vocabulary, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading vocabulary file %q: %w", path, err)
	}

	entries, err := Decode(v.Get(skillsKey))
	if err != nil {
		return nil, fmt.Errorf("decoding vocabulary file %q: %w", path, err)
	}

	vocab := New(entries)
	if vocab.Len() == 0 {
		return nil, fmt.Errorf("vocabulary file %q has no skills", path)
	}

	return vocab, nil
}

// Decode converts a loosely typed skills value into entries. Accepted shapes:
//
//	skills: [python, "machine learning"]
//	skills: [{name: python, category: languages}]
//	skills: {languages: [python, java], soft skills: [communication]}
func Decode(raw any) ([]Entry, error) {
	switch value := raw.(type) {
	case nil:
		return nil, nil
	case string:
		return Decode(strings.Split(value, ","))
	case []string:
		entries := make([]Entry, 0, len(value))
		for _, name := range value {
			entries = append(entries, Entry{Name: name})
		}
		return entries, nil
	case []any:
		return decodeList(value, "")
	case map[string]any:
		categories := make([]string, 0, len(value))
		for category := range value {
			categories = append(categories, category)
		}
		sort.Strings(categories)

		var entries []Entry
		for _, category := range categories {
			items, ok := value[category].([]any)
			if !ok {
				return nil, fmt.Errorf("category %q: expected a list of skills, got %T", category, value[category])
			}
			decoded, err := decodeList(items, category)
			if err != nil {
				return nil, fmt.Errorf("category %q: %w", category, err)
			}
			entries = append(entries, decoded...)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("unsupported skills value of type %T", raw)
	}
}

func decodeList(items []any, category string) ([]Entry, error) {
	entries := make([]Entry, 0, len(items))
	for i, item := range items {
		var entry Entry

		switch typed := item.(type) {
		case string:
			entry.Name = typed
		default:
			if err := mapstructure.Decode(item, &entry); err != nil {
				return nil, fmt.Errorf("entry %d: %w", i, err)
			}
		}

		if entry.Category == "" {
			entry.Category = category
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

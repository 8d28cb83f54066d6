package resume

import (
	"regexp"
	"sort"

	"github.com/spigell/cv-screener/internal/vocabulary"
)

// A skill matches only as a standalone token or exact phrase: the
// characters around it must not be letters, digits or underscores.
const (
	tokenStart = `(?:^|[^\p{L}\p{N}_])`
	tokenEnd   = `(?:$|[^\p{L}\p{N}_])`
)

type skillMatcher struct {
	name    string
	pattern *regexp.Regexp
}

// Parser extracts candidate records using a fixed skill vocabulary.
// It holds no mutable state and is safe for concurrent use.
type Parser struct {
	vocabulary *vocabulary.Vocabulary
	skills     []skillMatcher
}

func NewParser(vocab *vocabulary.Vocabulary) *Parser {
	if vocab == nil {
		vocab = vocabulary.Default()
	}

	names := vocab.Names()
	skills := make([]skillMatcher, 0, len(names))
	for _, name := range names {
		skills = append(skills, skillMatcher{
			name:    name,
			pattern: regexp.MustCompile(tokenStart + regexp.QuoteMeta(name) + tokenEnd),
		})
	}

	return &Parser{vocabulary: vocab, skills: skills}
}

func (p *Parser) Vocabulary() *vocabulary.Vocabulary {
	return p.vocabulary
}

// Parse never fails: every field falls back to its sentinel or zero value.
func (p *Parser) Parse(text string) CandidateRecord {
	return CandidateRecord{
		Name:            ExtractName(text),
		Email:           ExtractEmail(text),
		Phone:           ExtractPhone(text),
		Skills:          p.ExtractSkills(text),
		YearsExperience: ExtractExperience(text),
		RawText:         text,
	}
}

// ExtractSkills returns the sorted vocabulary entries found in the text.
func (p *Parser) ExtractSkills(text string) []string {
	normalized := Normalize(text)

	found := make([]string, 0)
	for _, s := range p.skills {
		if s.pattern.MatchString(normalized) {
			found = append(found, s.name)
		}
	}

	sort.Strings(found)
	return found
}

// Package highlight implements the per-language rule table and the
// stateless, line-local syntax classifier described in spec.md §4.10.
//
// Grounded on original_source/editor.c's struct Highlight and the
// highlights[LanguageC] table; the table contents are shipped as YAML
// data (highlight/rules/c.yaml) rather than hardcoded Go, per spec.md
// Non-goal (iii).
package highlight

import (
	"embed"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed rules/c.yaml
var defaultRules embed.FS

// Language is one entry of a highlight rule set.
type Language struct {
	Name                 string           `yaml:"name"`
	Extensions           []string         `yaml:"extensions"`
	SingleLineComment    string           `yaml:"single_line_comment"`
	MultilineCommentOpen string           `yaml:"multiline_comment_start"`
	MultilineCommentEnd  string           `yaml:"multiline_comment_end"`
	Comments             bool             `yaml:"comments"`
	MultilineComments    bool             `yaml:"multiline_comments"`
	Strings              bool             `yaml:"strings"`
	Chars                bool             `yaml:"chars"`
	Numbers              bool             `yaml:"numbers"`
	Keywords             map[int][]string `yaml:"keywords"`

	keywordSets map[int]map[string]struct{}
}

func (l *Language) compile() {
	l.keywordSets = make(map[int]map[string]struct{}, len(l.Keywords))
	for length, words := range l.Keywords {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		l.keywordSets[length] = set
	}
}

// IsKeyword reports whether word matches this language's keyword table
// for word's own length — the table is length-indexed, per spec.md §4.10.
func (l *Language) IsKeyword(word string) bool {
	set, ok := l.keywordSets[len(word)]
	if !ok {
		return false
	}
	_, found := set[word]
	return found
}

// RuleSet is the full collection of languages the highlighter consumes.
type RuleSet struct {
	Languages []*Language `yaml:"languages"`
}

type ruleSetFile struct {
	Languages []*Language `yaml:"languages"`
}

// ParseRuleSet accepts either a multi-language document ({languages: [...]})
// or a bare single-language document (as shipped in rules/c.yaml).
func ParseRuleSet(data []byte) (*RuleSet, error) {
	var multi ruleSetFile
	if err := yaml.Unmarshal(data, &multi); err == nil && len(multi.Languages) > 0 {
		for _, l := range multi.Languages {
			l.compile()
		}
		return &RuleSet{Languages: multi.Languages}, nil
	}

	var single Language
	if err := yaml.Unmarshal(data, &single); err != nil {
		return nil, err
	}
	single.compile()
	return &RuleSet{Languages: []*Language{&single}}, nil
}

// LoadRuleSet reads and parses a rule set from path.
func LoadRuleSet(path string) (*RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRuleSet(data)
}

// DefaultRuleSet returns the rule set embedded at build time.
func DefaultRuleSet() *RuleSet {
	data, err := defaultRules.ReadFile("rules/c.yaml")
	if err != nil {
		panic("highlight: embedded default rule set missing: " + err.Error())
	}
	rs, err := ParseRuleSet(data)
	if err != nil {
		panic("highlight: embedded default rule set invalid: " + err.Error())
	}
	return rs
}

// ForExtension returns the language whose Extensions list contains ext
// (case-sensitive, leading-dot form, e.g. ".c"), or nil.
func (rs *RuleSet) ForExtension(ext string) *Language {
	for _, l := range rs.Languages {
		for _, e := range l.Extensions {
			if e == ext {
				return l
			}
		}
	}
	return nil
}

// ForPath resolves a language from a file path's extension.
func (rs *RuleSet) ForPath(path string) *Language {
	return rs.ForExtension(filepath.Ext(path))
}

// ByName looks up a language by its declared name.
func (rs *RuleSet) ByName(name string) *Language {
	for _, l := range rs.Languages {
		if strings.EqualFold(l.Name, name) {
			return l
		}
	}
	return nil
}

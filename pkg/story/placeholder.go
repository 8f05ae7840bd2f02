package story

import (
	"regexp"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var placeholderPattern = regexp.MustCompile(`<[^>]+>`)

// Prompter asks the user for the text that replaces one placeholder.
type Prompter interface {
	Ask(placeholder string) (string, error)
}

// Replacements maps placeholder tokens to user text in the order the tokens
// first appear in the template.
type Replacements struct {
	m *orderedmap.OrderedMap[string, string]
}

func NewReplacements() *Replacements {
	return &Replacements{m: orderedmap.New[string, string]()}
}

// Set stores value for token. Setting a known token keeps its position.
func (r *Replacements) Set(token, value string) {
	r.m.Set(token, value)
}

func (r *Replacements) Get(token string) (string, bool) {
	return r.m.Get(token)
}

func (r *Replacements) Len() int {
	return r.m.Len()
}

// Each calls fn for every pair in first-appearance order.
func (r *Replacements) Each(fn func(token, value string)) {
	for pair := r.m.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Apply replaces every occurrence of every known token in template.
// Tokens without a replacement are left untouched.
func (r *Replacements) Apply(template string) string {
	return placeholderPattern.ReplaceAllStringFunc(template, func(token string) string {
		if value, ok := r.m.Get(token); ok {
			return value
		}
		return token
	})
}

// FindPlaceholders returns the distinct placeholder tokens of template in
// order of first appearance.
func FindPlaceholders(template string) []string {
	seen := make(map[string]struct{})
	tokens := make([]string, 0)
	for _, token := range placeholderPattern.FindAllString(template, -1) {
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// Resolve asks p once for each distinct placeholder and returns the
// completed story along with the collected replacements.
func Resolve(template string, p Prompter) (string, *Replacements, error) {
	replacements := NewReplacements()
	for _, token := range FindPlaceholders(template) {
		value, err := p.Ask(token)
		if err != nil {
			return "", nil, err
		}
		replacements.Set(token, strings.TrimSpace(value))
	}
	return replacements.Apply(template), replacements, nil
}

package eliza

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Wildcard is the pattern token that matches any run of input tokens
// (including an empty one) and binds the run as a fragment.
const Wildcard = "*"

// Decomposition splits normalized input into literal and wildcard segments.
// Templates reference wildcard fragments positionally as {0}, {1}, ...
// counted over the wildcards in the pattern.
type Decomposition struct {
	Pattern   []string `yaml:"pattern"`
	Templates []string `yaml:"templates"`
}

// Rule is one keyword group: all decompositions tried, in order, when the
// keyword wins the rank contest for an input.
type Rule struct {
	Keyword string          `yaml:"keyword"`
	Rank    int             `yaml:"rank"`
	Decomp  []Decomposition `yaml:"decomp"`
}

// FarewellGroup terminates a session when one of its keywords appears as a
// whole normalized token.
type FarewellGroup struct {
	Keywords  []string `yaml:"keywords"`
	Templates []string `yaml:"templates"`
}

// MemoryGroup stashes a reply built from the fragment following its keyword;
// stashed replies are drained by the fallback path on later turns.
type MemoryGroup struct {
	Keyword   string   `yaml:"keyword"`
	Templates []string `yaml:"templates"`
}

// Script is the full rule set for the conversation engine: rule table,
// synonym and reflection tables, farewell detection, memory, and the
// fallback group. A Script is read-only after Compile and safe to share
// across sessions without locking.
type Script struct {
	Rules       []Rule            `yaml:"rules"`
	Synonyms    map[string]string `yaml:"synonyms"`
	Reflections map[string]string `yaml:"reflections"`
	Farewell    FarewellGroup     `yaml:"farewell"`
	Memory      MemoryGroup       `yaml:"memory"`
	// Fallback templates require no decomposition; they rotate like any
	// other template set.
	Fallback []string `yaml:"fallback"`
	// EmptyPrompt is returned verbatim for empty or whitespace-only input.
	EmptyPrompt string `yaml:"empty_prompt"`

	byKeyword map[string]*Rule
	farewells map[string]struct{}
	reflector *Reflector
}

// Compile validates the script and builds the lookup structures. It must be
// called once before the script is handed to an Engine.
func (s *Script) Compile() error {
	if len(s.Rules) == 0 {
		return fmt.Errorf("script has no rules")
	}
	if len(s.Fallback) == 0 {
		return fmt.Errorf("script has no fallback templates")
	}
	if s.EmptyPrompt == "" {
		return fmt.Errorf("script has no empty-input prompt")
	}
	s.byKeyword = make(map[string]*Rule, len(s.Rules))
	for i := range s.Rules {
		r := &s.Rules[i]
		if r.Keyword == "" {
			return fmt.Errorf("rule %d has an empty keyword", i)
		}
		if _, dup := s.byKeyword[r.Keyword]; dup {
			return fmt.Errorf("duplicate rule keyword %q", r.Keyword)
		}
		if len(r.Decomp) == 0 {
			return fmt.Errorf("rule %q has no decompositions", r.Keyword)
		}
		for _, d := range r.Decomp {
			if err := validateDecomp(r.Keyword, d); err != nil {
				return err
			}
		}
		s.byKeyword[r.Keyword] = r
	}
	s.farewells = make(map[string]struct{}, len(s.Farewell.Keywords))
	for _, k := range s.Farewell.Keywords {
		s.farewells[k] = struct{}{}
	}
	if len(s.Farewell.Templates) == 0 {
		return fmt.Errorf("script has no farewell templates")
	}
	s.reflector = NewReflector(s.Reflections)
	return nil
}

func validateDecomp(keyword string, d Decomposition) error {
	if len(d.Pattern) == 0 {
		return fmt.Errorf("rule %q has an empty decomposition pattern", keyword)
	}
	if len(d.Templates) == 0 {
		return fmt.Errorf("rule %q has a decomposition without templates", keyword)
	}
	wildcards := 0
	hasKeyword := false
	for _, tok := range d.Pattern {
		if tok == Wildcard {
			wildcards++
		} else if tok == keyword {
			hasKeyword = true
		}
	}
	if !hasKeyword {
		return fmt.Errorf("rule %q decomposition does not contain its keyword", keyword)
	}
	for _, tpl := range d.Templates {
		for _, idx := range placeholderIndices(tpl) {
			if idx < 0 || idx >= wildcards {
				return fmt.Errorf("rule %q template %q references fragment %d, pattern has %d wildcards", keyword, tpl, idx, wildcards)
			}
		}
	}
	return nil
}

// placeholderIndices extracts the positional indices referenced by {n}
// placeholders in a template.
func placeholderIndices(tpl string) []int {
	var out []int
	for i := 0; i < len(tpl); i++ {
		if tpl[i] != '{' {
			continue
		}
		end := strings.IndexByte(tpl[i:], '}')
		if end < 0 {
			break
		}
		if n, err := strconv.Atoi(tpl[i+1 : i+end]); err == nil {
			out = append(out, n)
		}
		i += end
	}
	return out
}

// Rule returns the compiled rule for a keyword, if any.
func (s *Script) Rule(keyword string) (*Rule, bool) {
	r, ok := s.byKeyword[keyword]
	return r, ok
}

// IsFarewell reports whether a normalized token is a farewell keyword.
func (s *Script) IsFarewell(token string) bool {
	_, ok := s.farewells[token]
	return ok
}

// Reflector returns the script's compiled perspective-swap table.
func (s *Script) Reflector() *Reflector {
	return s.reflector
}

// Match applies a decomposition pattern to a full token sequence. Wildcards
// match any run of tokens, including an empty run, binding the run as one
// space-joined fragment; literals must match a token exactly. The whole
// sequence must be consumed. Wildcards are non-greedy: each one binds the
// shortest run that lets the rest of the pattern match.
func (d Decomposition) Match(tokens []string) ([]string, bool) {
	return matchPattern(d.Pattern, tokens)
}

func matchPattern(pattern, tokens []string) ([]string, bool) {
	if len(pattern) == 0 {
		if len(tokens) == 0 {
			return []string{}, true
		}
		return nil, false
	}
	head, rest := pattern[0], pattern[1:]
	if head != Wildcard {
		if len(tokens) == 0 || tokens[0] != head {
			return nil, false
		}
		return matchPattern(rest, tokens[1:])
	}
	// Try successively longer bindings for the wildcard.
	for take := 0; take <= len(tokens); take++ {
		if frags, ok := matchPattern(rest, tokens[take:]); ok {
			bound := strings.Join(tokens[:take], " ")
			return append([]string{bound}, frags...), true
		}
	}
	return nil, false
}

// LoadScript reads and compiles a YAML script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if err := s.Compile(); err != nil {
		return nil, fmt.Errorf("compile script %s: %w", path, err)
	}
	return &s, nil
}

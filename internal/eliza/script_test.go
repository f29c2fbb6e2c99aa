package eliza

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecompositionMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern []string
		tokens  []string
		frags   []string
		ok      bool
	}{
		{
			name:    "wildcard binds middle",
			pattern: []string{"*", "i", "am", "*"},
			tokens:  []string{"well", "i", "am", "very", "sad"},
			frags:   []string{"well", "very sad"},
			ok:      true,
		},
		{
			name:    "empty wildcard binding",
			pattern: []string{"*", "i", "am", "*"},
			tokens:  []string{"i", "am", "sad"},
			frags:   []string{"", "sad"},
			ok:      true,
		},
		{
			name:    "trailing wildcard empty",
			pattern: []string{"*", "sorry", "*"},
			tokens:  []string{"so", "sorry"},
			frags:   []string{"so", ""},
			ok:      true,
		},
		{
			name:    "literal mismatch",
			pattern: []string{"i", "am", "*"},
			tokens:  []string{"you", "are", "sad"},
			ok:      false,
		},
		{
			name:    "pattern longer than input",
			pattern: []string{"i", "am", "*"},
			tokens:  []string{"i"},
			ok:      false,
		},
		{
			name:    "keyword present but structure differs",
			pattern: []string{"i", "am", "*"},
			tokens:  []string{"maybe", "i", "am", "not"},
			ok:      false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Decomposition{Pattern: tt.pattern}
			frags, ok := d.Match(tt.tokens)
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.frags, frags)
			}
		})
	}
}

func TestDefaultScriptCompiles(t *testing.T) {
	s := DefaultScript()
	require.NotNil(t, s)

	r, ok := s.Rule("sorry")
	require.True(t, ok)
	assert.Equal(t, 9, r.Rank)

	assert.True(t, s.IsFarewell("goodbye"))
	assert.False(t, s.IsFarewell("hello"))
}

func TestCompileRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Script)
	}{
		{"no rules", func(s *Script) { s.Rules = nil }},
		{"no fallback", func(s *Script) { s.Fallback = nil }},
		{"no empty prompt", func(s *Script) { s.EmptyPrompt = "" }},
		{"duplicate keyword", func(s *Script) { s.Rules = append(s.Rules, s.Rules[0]) }},
		{"placeholder out of range", func(s *Script) {
			s.Rules[0].Decomp[0].Templates = []string{"echo {7}"}
		}},
		{"pattern missing keyword", func(s *Script) {
			s.Rules[0].Decomp[0].Pattern = []string{Wildcard, "other", Wildcard}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScript()
			tt.mutate(s)
			assert.Error(t, s.Compile())
		})
	}
}

func TestLoadScript(t *testing.T) {
	const doc = `
rules:
  - keyword: cat
    rank: 5
    decomp:
      - pattern: ["*", "cat", "*"]
        templates: ["Tell me about {1}."]
farewell:
  keywords: [bye]
  templates: ["See you."]
fallback:
  - "Go on."
empty_prompt: "Say something."
`
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s, err := LoadScript(path)
	require.NoError(t, err)

	r, ok := s.Rule("cat")
	require.True(t, ok)
	assert.Equal(t, 5, r.Rank)
	assert.True(t, s.IsFarewell("bye"))

	_, err = LoadScript(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

package eliza

import "strings"

// contractions are expanded before synonym folding so that decomposition
// patterns only ever see the long forms.
var contractions = map[string][]string{
	"i'm":     {"i", "am"},
	"i'd":     {"i", "would"},
	"i've":    {"i", "have"},
	"i'll":    {"i", "will"},
	"you're":  {"you", "are"},
	"you've":  {"you", "have"},
	"you'll":  {"you", "will"},
	"can't":   {"cannot"},
	"won't":   {"will", "not"},
	"don't":   {"do", "not"},
	"dont":    {"do", "not"},
	"it's":    {"it", "is"},
	"that's":  {"that", "is"},
	"there's": {"there", "is"},
}

// Normalize lowercases raw input, strips punctuation, tokenizes, expands
// contractions, and folds synonyms to their canonical keyword using the
// script's synonym table. Empty or whitespace-only input yields an empty
// slice. Normalization is idempotent: normalizing already-normalized text
// returns the same tokens.
func Normalize(raw string, synonyms map[string]string) []string {
	fields := strings.Fields(strings.ToLower(raw))
	if len(fields) == 0 {
		return nil
	}
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		w := stripPunct(f)
		if w == "" {
			continue
		}
		expanded, ok := contractions[w]
		if !ok {
			expanded = []string{w}
		}
		for _, t := range expanded {
			if canon, ok := synonyms[t]; ok {
				t = canon
			}
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// stripPunct removes everything except letters, digits, and interior
// apostrophes (kept so contractions survive until expansion).
func stripPunct(w string) string {
	var b strings.Builder
	runes := []rune(w)
	for i, r := range runes {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '\'' && i > 0 && i < len(runes)-1:
			b.WriteRune(r)
		}
	}
	return b.String()
}

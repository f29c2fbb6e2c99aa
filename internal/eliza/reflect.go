package eliza

import "strings"

// Reflector swaps conversational perspective in a text fragment so that a
// reply reads as addressed back to the speaker ("my dog" -> "your dog").
// The table maps normalized tokens to their swapped forms; tokens without an
// entry pass through unchanged, and relative token order is always preserved.
type Reflector struct {
	table map[string]string
	// leads are the first-/second-person pronouns and possessives that mark a
	// fragment as needing reflection at all.
	leads map[string]struct{}
}

// NewReflector builds a Reflector from a substitution table. Lead detection
// derives from the table keys plus the bare pronoun set.
func NewReflector(table map[string]string) *Reflector {
	leads := map[string]struct{}{
		"i": {}, "me": {}, "my": {}, "mine": {}, "myself": {},
		"you": {}, "your": {}, "yours": {}, "yourself": {},
		"we": {}, "us": {}, "our": {},
	}
	return &Reflector{table: table, leads: leads}
}

// NeedsReflection reports whether a fragment begins with a first- or
// second-person pronoun or possessive.
func (r *Reflector) NeedsReflection(fragment string) bool {
	first, _, _ := strings.Cut(fragment, " ")
	_, ok := r.leads[first]
	return ok
}

// Reflect swaps perspective token by token. Input is expected to be
// normalized (lowercase, punctuation-free).
func (r *Reflector) Reflect(fragment string) string {
	if fragment == "" {
		return fragment
	}
	tokens := strings.Fields(fragment)
	for i, t := range tokens {
		if swapped, ok := r.table[t]; ok {
			tokens[i] = swapped
		}
	}
	return strings.Join(tokens, " ")
}

// defaultReflections is the stock perspective-swap table.
func defaultReflections() map[string]string {
	return map[string]string{
		"am":       "are",
		"was":      "were",
		"i":        "you",
		"my":       "your",
		"mine":     "yours",
		"are":      "am",
		"your":     "my",
		"yours":    "mine",
		"you":      "i",
		"me":       "you",
		"myself":   "yourself",
		"yourself": "myself",
		"we":       "you",
		"us":       "you",
		"our":      "your",
	}
}

package eliza

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	syn := map[string]string{"unhappy": "sad", "mom": "mother"}

	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   \t\n ", nil},
		{"lowercases", "HELLO There", []string{"hello", "there"}},
		{"strips punctuation", "well... hello!!!", []string{"well", "hello"}},
		{"folds synonyms", "I feel unhappy", []string{"i", "feel", "sad"}},
		{"expands contractions", "I'm tired", []string{"i", "am", "tired"}},
		{"folds synonym mid-sentence", "my MOM called twice", []string{"my", "mother", "called", "twice"}},
		{"numeric survives", "route 66", []string{"route", "66"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in, syn))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	syn := map[string]string{"unhappy": "sad"}
	inputs := []string{
		"I'M REALLY... unhappy!!",
		"Mixed CASE, with;; punctuation?!",
		"plain words",
	}
	for _, in := range inputs {
		once := Normalize(in, syn)
		twice := Normalize(strings.Join(once, " "), syn)
		require.Equal(t, once, twice, "normalize must be idempotent for %q", in)
	}
}

func TestReflectorPreservesOrder(t *testing.T) {
	r := NewReflector(defaultReflections())

	got := r.Reflect("my dog chased my brother around my house")
	assert.Equal(t, "your dog chased your brother around your house", got)

	// Non-pronoun tokens keep their relative positions.
	got = r.Reflect("i am quite sure you are wrong")
	assert.Equal(t, "you are quite sure i am wrong", got)
}

func TestReflectorNeedsReflection(t *testing.T) {
	r := NewReflector(defaultReflections())
	assert.True(t, r.NeedsReflection("my dog"))
	assert.True(t, r.NeedsReflection("i am sad"))
	assert.True(t, r.NeedsReflection("you never listen"))
	assert.False(t, r.NeedsReflection("sad"))
	assert.False(t, r.NeedsReflection("the weather"))
	assert.False(t, r.NeedsReflection(""))
}

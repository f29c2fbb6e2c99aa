// Package eliza implements a deterministic rule-based conversational
// responder: keyword-ranked decomposition rules, perspective reflection,
// round-robin reassembly templates, a small memory, and farewell detection.
package eliza

import (
	"strconv"
	"strings"
)

// Engine matches normalized input against a compiled Script and assembles
// replies. The engine itself is stateless; all per-conversation state lives
// in the Session passed to Respond, so one Engine serves any number of
// sessions concurrently.
type Engine struct {
	script *Script
}

// NewEngine wraps a compiled script.
func NewEngine(script *Script) *Engine {
	return &Engine{script: script}
}

// Script returns the engine's rule set.
func (e *Engine) Script() *Script { return e.script }

// Respond produces the reply for one input message and reports whether the
// session is terminated. Once a farewell has been detected the session stays
// terminated: later inputs are answered with farewell replies and never
// matched against other rules.
func (e *Engine) Respond(sess *Session, raw string) (string, bool) {
	tokens := Normalize(raw, e.script.Synonyms)

	if sess.terminated {
		return sess.nextTemplate(farewellCursorKey, e.script.Farewell.Templates), true
	}

	if len(tokens) == 0 {
		sess.appendHistory(tokens)
		return e.script.EmptyPrompt, false
	}

	for _, t := range tokens {
		if e.script.IsFarewell(t) {
			sess.terminated = true
			return sess.nextTemplate(farewellCursorKey, e.script.Farewell.Templates), true
		}
	}

	e.stashMemory(sess, tokens)

	reply := e.matchReply(sess, tokens)
	sess.appendHistory(tokens)
	return reply, false
}

// Cursor keys that cannot collide with rule keywords, which are always
// non-empty single tokens.
const (
	farewellCursorKey = "\x00farewell"
	fallbackCursorKey = "\x00fallback"
	memoryCursorKey   = "\x00memory"
)

// matchReply selects the highest-ranked matching rule and reassembles a
// reply from it, falling back through the defined fallback chain. Ties on
// rank go to the keyword occurring first in the input.
func (e *Engine) matchReply(sess *Session, tokens []string) string {
	rule := e.selectRule(tokens)
	if rule == nil {
		return e.fallback(sess)
	}
	for _, d := range rule.Decomp {
		frags, ok := d.Match(tokens)
		if !ok {
			continue
		}
		tpl := sess.nextTemplate(rule.Keyword, d.Templates)
		return e.fill(tpl, frags)
	}
	// Keyword present but no decomposition matched structurally: first
	// template of the first decomposition, no substitution.
	return rule.Decomp[0].Templates[0]
}

// selectRule scans the token sequence for known keywords and returns the
// highest-ranked rule among those present, or nil when none matches.
func (e *Engine) selectRule(tokens []string) *Rule {
	var best *Rule
	for _, t := range tokens {
		r, ok := e.script.Rule(t)
		if !ok {
			continue
		}
		if best == nil || r.Rank > best.Rank {
			best = r
		}
	}
	return best
}

// fallback answers when no keyword matched: stashed memory replies drain
// first, then the fallback templates rotate.
func (e *Engine) fallback(sess *Session) string {
	if reply, ok := sess.recallMemory(); ok {
		return reply
	}
	return sess.nextTemplate(fallbackCursorKey, e.script.Fallback)
}

// stashMemory records a reply built from the fragment after the memory
// keyword whenever that keyword appears, for the fallback path to drain on a
// later turn.
func (e *Engine) stashMemory(sess *Session, tokens []string) {
	mem := e.script.Memory
	if mem.Keyword == "" || len(mem.Templates) == 0 {
		return
	}
	pattern := Decomposition{Pattern: []string{Wildcard, mem.Keyword, Wildcard}}
	frags, ok := pattern.Match(tokens)
	if !ok || frags[1] == "" {
		return
	}
	tpl := sess.nextTemplate(memoryCursorKey, mem.Templates)
	sess.remember(e.fill(tpl, frags))
}

// fill substitutes wildcard fragments into {n} placeholders, reflecting any
// fragment that begins with a first- or second-person pronoun or possessive
// so the reply addresses the speaker.
func (e *Engine) fill(tpl string, frags []string) string {
	refl := e.script.Reflector()
	var b strings.Builder
	for i := 0; i < len(tpl); i++ {
		if tpl[i] != '{' {
			b.WriteByte(tpl[i])
			continue
		}
		end := strings.IndexByte(tpl[i:], '}')
		if end < 0 {
			b.WriteString(tpl[i:])
			break
		}
		n, err := strconv.Atoi(tpl[i+1 : i+end])
		if err != nil || n < 0 || n >= len(frags) {
			b.WriteString(tpl[i : i+end+1])
			i += end
			continue
		}
		frag := frags[n]
		if refl.NeedsReflection(frag) {
			frag = refl.Reflect(frag)
		}
		b.WriteString(frag)
		i += end
	}
	return b.String()
}
